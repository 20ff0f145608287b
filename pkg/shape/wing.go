package shape

import (
	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/utils"
)

// Side 左右翅膀
// 数值即镜像符号：左 = -1，右 = +1
type Side int

const (
	Left  Side = -1
	Right Side = 1
)

// Sign 返回镜像系数
func (s Side) Sign() float64 {
	if s == Left {
		return -1
	}
	return 1
}

// String 便于日志输出
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Part 翅膀部位
type Part int

const (
	UpperWing Part = iota
	LowerWing
)

// SqueezeFactor 翅膀合拢时的水平压缩系数
const SqueezeFactor = 0.65

// UnitScale 原始造型的设计尺寸，s = scale / UnitScale
const UnitScale = 40.0

// jitterStride 相邻控制点抖动种子的间隔
const jitterStride = 73

// Squeeze 根据开合度计算水平压缩比
//
// openness = 0 完全张开（squeeze = 1），openness = 1 合拢（squeeze = 1 - k）
func Squeeze(openness float64) float64 {
	return 1 - utils.Clamp01(openness)*SqueezeFactor
}

// ctrl 原始造型中的一个控制点：设计坐标 + 抖动序号
// 序号为 0 表示该点固定不抖动（翅根）
type ctrl struct {
	x, y float64
	jx   int
	jy   int
}

// 上翅：三段三次贝塞尔，起止于翅根 (0, 0)
var upperWingCtrl = [3][3]ctrl{
	{{15, -60, 1, 2}, {80, -90, 3, 4}, {95, -55, 5, 6}},
	{{105, -30, 7, 8}, {90, -5, 9, 10}, {50, 5, 11, 12}},
	{{25, 10, 13, 14}, {5, 5, 15, 16}, {0, 0, 0, 0}},
}

// 下翅
var lowerWingCtrl = [3][3]ctrl{
	{{30, 10, 20, 21}, {75, 15, 22, 23}, {70, 45, 24, 25}},
	{{65, 65, 26, 27}, {35, 70, 28, 29}, {15, 55, 30, 31}},
	{{5, 40, 32, 33}, {0, 20, 0, 0}, {0, 0, 0, 0}},
}

// Wing 生成一侧翅膀的闭合轮廓
//
// 抖动作用在镜像之前的坐标上，之后才乘以 side 符号，
// 因此右翅恰好等于左翅的水平镜像，双侧使用同一 distortSeed。
//
// 参数:
//   - b: 参数包（使用 DistortSeed）
//   - part: 上翅或下翅
//   - openness: 开合度 ∈ [0, 1]，1 为合拢
//   - side: 左或右
//   - scale: 整体尺寸（像素），> 0
func Wing(b params.Bundle, part Part, openness float64, side Side, scale float64) Path {
	s := scale / UnitScale
	sq := Squeeze(openness)
	mirror := side.Sign()
	d := float64(b.DistortSeed)

	j := func(v float64, idx int) float64 {
		if idx == 0 {
			return v
		}
		return params.Jitter(v, d+float64(idx*jitterStride), 3*s)
	}
	pt := func(c ctrl) (float64, float64) {
		return mirror * j(c.x*sq*s, c.jx), j(c.y*s, c.jy)
	}

	table := upperWingCtrl
	if part == LowerWing {
		table = lowerWingCtrl
	}

	var p Path
	p.MoveTo(0, 0)
	for _, seg := range table {
		x1, y1 := pt(seg[0])
		x2, y2 := pt(seg[1])
		x3, y3 := pt(seg[2])
		p.CubicTo(x1, y1, x2, y2, x3, y3)
	}
	p.Close()
	return p
}
