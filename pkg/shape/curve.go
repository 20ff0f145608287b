package shape

import (
	"math"

	"github.com/decker502/modfly/pkg/params"
)

// Mode 翅膀造型模式
type Mode int

const (
	// ModeBezier 上下翅各由三段贝塞尔曲线构成，实心填充
	ModeBezier Mode = iota
	// ModeCurve 由极坐标蝴蝶曲线构成轮廓，内部用散点粒子填充
	ModeCurve
)

// ParseMode 解析主题配置中的模式名，未知名称返回 ModeBezier
func ParseMode(name string) Mode {
	if name == "curve" {
		return ModeCurve
	}
	return ModeBezier
}

// String 返回配置名
func (m Mode) String() string {
	if m == ModeCurve {
		return "curve"
	}
	return "bezier"
}

// CurveSteps 蝴蝶曲线半边的默认采样数
const CurveSteps = 96

// curveUnit 曲线半径到设计坐标的缩放（r 最大约 5.7，对应约 90 个设计单位）
const curveUnit = 16.0

// ButterflyRadius 蝴蝶曲线的极径
//
//	r(θ) = e^{sin θ} − 2cos(4θ) + sin⁵((2θ − π) / 24)
func ButterflyRadius(theta float64) float64 {
	return math.Exp(math.Sin(theta)) - 2*math.Cos(4*theta) + math.Pow(math.Sin((2*theta-math.Pi)/24), 5)
}

// CurveWing 用蝴蝶曲线生成一侧完整翅膀（上下翅连成一体）的多边形
//
// 只对右半边 θ ∈ [0, π] 采样，左侧是其镜像。
// θ ≈ 0 附近极径为负，sinθ·r 会越过中线，这些点的 x 被截到 0，
// 翅膀因此只贴着身体而不会伸到另一侧。
// 每个采样点的极径带一点由 DistortSeed 决定的抖动。
//
// 参数:
//   - steps: 采样数，< 8 时按 8 处理
func CurveWing(b params.Bundle, openness float64, side Side, scale float64, steps int) []Point {
	if steps < 8 {
		steps = 8
	}
	s := scale / UnitScale
	sq := Squeeze(openness)
	mirror := side.Sign()
	d := float64(b.DistortSeed)

	pts := make([]Point, 0, steps+2)
	pts = append(pts, Point{0, 0})
	for i := 0; i <= steps; i++ {
		theta := math.Pi * float64(i) / float64(steps)
		r := params.Jitter(ButterflyRadius(theta), d+float64(i*jitterStride), 0.08)
		x := math.Max(0, math.Sin(theta)*r*curveUnit)
		y := -math.Cos(theta) * r * curveUnit
		pts = append(pts, Point{mirror * x * sq * s, y * s})
	}
	return pts
}

// Scatter 在多边形内部确定性地撒 n 个点
//
// 在包围盒内用 Hash01 做拒绝采样，最多尝试 8n 次；
// 同一 (poly, n, seed) 永远得到同一组点。
func Scatter(poly []Point, n, seed int) []Point {
	if n <= 0 || len(poly) < 3 {
		return nil
	}
	bounds := Polygon(poly).Bounds()
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y

	out := make([]Point, 0, n)
	for k := 0; k < n*8 && len(out) < n; k++ {
		pt := Point{
			X: bounds.Min.X + params.Hash01(seed, 2*k)*w,
			Y: bounds.Min.Y + params.Hash01(seed, 2*k+1)*h,
		}
		if PointInPolygon(pt, poly) {
			out = append(out, pt)
		}
	}
	return out
}

// Place 把单位空间（右侧、张开、s = 1）中的点放到指定姿态
func (p Point) Place(side Side, squeeze, s float64) Point {
	return Point{side.Sign() * p.X * squeeze * s, p.Y * s}
}
