// Package decor 在基础轮廓之上添加风格化细节
//
// 翅脉、斑点、破损缺口和渐变配色都是 (Bundle, 部位, 侧别) 的纯函数，
// 抖动只来自 DistortSeed/SpotSeed，因此同一种子下每一帧都完全一致。
package decor

import (
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/shape"
	"github.com/decker502/modfly/pkg/utils"
)

// HSL 色相（度）+ 饱和度/亮度（百分比）
type HSL struct {
	H, S, L float64
}

// Shift 返回相对偏移后的颜色，饱和度/亮度截断到 [0, 100]
func (c HSL) Shift(dh, ds, dl float64) HSL {
	return HSL{
		H: utils.WrapDegrees(c.H + dh),
		S: utils.Clamp(c.S+ds, 0, 100),
		L: utils.Clamp(c.L+dl, 0, 100),
	}
}

// Colorful 转换为 go-colorful 颜色
func (c HSL) Colorful() colorful.Color {
	return colorful.Hsl(utils.WrapDegrees(c.H), utils.Clamp01(c.S/100), utils.Clamp01(c.L/100)).Clamped()
}

// BaseColor 参数包的基础色，hueShift 为配色方案带来的额外色相偏移
func BaseColor(b params.Bundle, hueShift float64) HSL {
	return HSL{H: b.Hue, S: b.Saturation, L: b.Lightness}.Shift(hueShift, 0, 0)
}

// HSLA 把 CSS 风格的 hsla 转成非预乘 NRGBA
func HSLA(h, s, l, a float64) color.NRGBA {
	r, g, bl := HSL{H: h, S: s, L: l}.Shift(0, 0, 0).Colorful().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(utils.Clamp01(a) * 255))}
}

// StopSpec 渐变停靠点的相对定义
//
// 颜色 = 基础色 + (DH, DS, DL)，不透明度为 Alpha
type StopSpec struct {
	Offset float64
	DH     float64
	DS     float64
	DL     float64
	Alpha  float64
}

// ColorStop 解析后的渐变停靠点
type ColorStop struct {
	Offset float64
	Color  colorful.Color
	Alpha  float64
}

// Gradient 按相对定义生成停靠点，结果按 Offset 排序
func Gradient(specs []StopSpec, base HSL) []ColorStop {
	stops := make([]ColorStop, 0, len(specs))
	for _, sp := range specs {
		stops = append(stops, ColorStop{
			Offset: utils.Clamp01(sp.Offset),
			Color:  base.Shift(sp.DH, sp.DS, sp.DL).Colorful(),
			Alpha:  utils.Clamp01(sp.Alpha),
		})
	}
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	return stops
}

// SampleStops 在停靠点之间插值，t 超出两端时取端点颜色
func SampleStops(stops []ColorStop, t float64) (colorful.Color, float64) {
	if len(stops) == 0 {
		return colorful.Color{}, 0
	}
	if t <= stops[0].Offset {
		return stops[0].Color, stops[0].Alpha
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color, last.Alpha
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if t >= a.Offset && t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color, b.Alpha
			}
			k := (t - a.Offset) / span
			return a.Color.BlendRgb(b.Color, k), utils.Lerp(a.Alpha, b.Alpha, k)
		}
	}
	return last.Color, last.Alpha
}

// LinearGradient 线性渐变（坐标与被填充的路径相同）
type LinearGradient struct {
	From, To shape.Point
	Stops    []ColorStop
}

// At 返回点 pt 在渐变轴上的投影颜色
func (g LinearGradient) At(pt shape.Point) (colorful.Color, float64) {
	dx, dy := g.To.X-g.From.X, g.To.Y-g.From.Y
	den := dx*dx + dy*dy
	if den == 0 {
		return SampleStops(g.Stops, 0)
	}
	t := ((pt.X-g.From.X)*dx + (pt.Y-g.From.Y)*dy) / den
	return SampleStops(g.Stops, t)
}

// RadialGradient 径向渐变
type RadialGradient struct {
	Center shape.Point
	Radius float64
	Stops  []ColorStop
}

// At 按到中心的距离取色
func (g RadialGradient) At(pt shape.Point) (colorful.Color, float64) {
	if g.Radius <= 0 {
		return SampleStops(g.Stops, 1)
	}
	d := math.Hypot(pt.X-g.Center.X, pt.Y-g.Center.Y)
	return SampleStops(g.Stops, d/g.Radius)
}

// Shader 可以逐点取色的填充方式
type Shader interface {
	At(pt shape.Point) (colorful.Color, float64)
}

// Solid 纯色填充
type Solid struct {
	Color colorful.Color
	Alpha float64
}

// At 实现 Shader
func (s Solid) At(shape.Point) (colorful.Color, float64) {
	return s.Color, s.Alpha
}

// SolidHSLA 由 hsla 构造纯色填充
func SolidHSLA(h, s, l, a float64) Solid {
	return Solid{Color: HSL{H: h, S: s, L: l}.Shift(0, 0, 0).Colorful(), Alpha: utils.Clamp01(a)}
}

// WingGradient 翅膀的线性渐变
//
// 渐变轴沿用原始造型：上翅从翅尖上方斜向翅根下方，下翅从翅根斜向翅尾。
// 轴端点同样乘以侧别符号，保证左右翅配色互为镜像。
func WingGradient(part shape.Part, stops []ColorStop, openness float64, side shape.Side, scale float64) LinearGradient {
	s := scale / shape.UnitScale
	sq := shape.Squeeze(openness)
	m := side.Sign()
	if part == shape.LowerWing {
		return LinearGradient{
			From:  shape.Point{X: m * 20 * sq * s, Y: 10 * s},
			To:    shape.Point{X: m * 50 * sq * s, Y: 65 * s},
			Stops: stops,
		}
	}
	return LinearGradient{
		From:  shape.Point{X: 0, Y: -80 * s},
		To:    shape.Point{X: m * 60 * sq * s, Y: 10 * s},
		Stops: stops,
	}
}
