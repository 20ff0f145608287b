package decor

import (
	"math"

	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/shape"
)

// MaxNotches amount = 1 时的缺口数量
const MaxNotches = 6

// SilhouetteSteps 翅膀轮廓展开成折线时每段曲线的采样数
const SilhouetteSteps = 16

// tatterSeedStride 上下翅的缺口使用不同的种子
const tatterSeedStride = 101

// TatterSeed 某一片翅膀的缺口种子
func TatterSeed(b params.Bundle, part shape.Part) int {
	return b.DistortSeed + int(part)*tatterSeedStride
}

// Silhouette 翅膀实际填充的轮廓多边形，poly[0] 为翅根
//
// tattered 为 true 时按 TatterAmount 咬出缺口。
// 填充、翅脉与斑点共用这一轮廓，装饰不会越出它。
func Silhouette(b params.Bundle, part shape.Part, openness float64, side shape.Side, scale float64, tattered bool) []shape.Point {
	poly := shape.Wing(b, part, openness, side, scale).Flatten(SilhouetteSteps)
	if tattered {
		poly = Tatter(poly, b.TatterAmount, TatterSeed(b, part))
	}
	return poly
}

// Tatter 在翅膀多边形的边缘咬出缺口
//
// 每个缺口选中一段连续顶点，按三角形衰减把它们向翅根 (0, 0) 收拢，
// 顶点只会沿着指向翅根的方向移动，结果始终落在原多边形的包围盒内。
// 缺口位置只取决于 (顶点序号, seed)，对镜像后的多边形得到镜像的缺口。
//
// 参数:
//   - poly: 翅膀折线多边形，poly[0] 为翅根，保持不动
//   - amount: 破损程度 ∈ [0, 1]，<= 0 时原样返回副本
//   - seed: 通常为 DistortSeed
func Tatter(poly []shape.Point, amount float64, seed int) []shape.Point {
	out := make([]shape.Point, len(poly))
	copy(out, poly)
	n := len(poly)
	if amount <= 0 || n < 4 {
		return out
	}

	notches := int(math.Round(math.Min(amount, 1) * MaxNotches))
	for k := 0; k < notches; k++ {
		center := 1 + int(params.Hash01(seed, 3*k)*float64(n-1))
		halfWidth := 1 + int(params.Hash01(seed, 3*k+1)*3)
		depth := 0.2 + params.Hash01(seed, 3*k+2)*0.3*amount

		for off := -halfWidth; off <= halfWidth; off++ {
			i := center + off
			if i <= 0 || i >= n {
				continue
			}
			falloff := 1 - math.Abs(float64(off))/float64(halfWidth+1)
			f := 1 - depth*falloff
			out[i] = shape.Point{X: out[i].X * f, Y: out[i].Y * f}
		}
	}
	return out
}
