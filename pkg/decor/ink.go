package decor

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/shape"
)

// InkStroke 一层描边样式
type InkStroke struct {
	Width float64
	Color colorful.Color
	Alpha float64
}

// Outline 翅膀的双层描边：外层粗黑线 + 内层带色相的细线（填充之后绘制）
//
// ink 为外层线条颜色，主题可以改成非黑色。
func Outline(b params.Bundle, part shape.Part, scale float64, ink HSL) [2]InkStroke {
	s := scale / shape.UnitScale
	inner := InkStroke{Width: 1.5 * s, Color: HSL{H: b.Hue - 10, S: 40, L: 20}.Colorful(), Alpha: 0.5}
	if part == shape.LowerWing {
		inner.Color = HSL{H: b.Hue - 10, S: 30, L: 18}.Colorful()
		inner.Alpha = 0.4
	}
	return [2]InkStroke{
		{Width: 4 * s, Color: ink.Colorful(), Alpha: 1},
		inner,
	}
}

// SpotStyle 斑点的填充与描边
type SpotStyle struct {
	Fill Solid
	Ring InkStroke
}

// SpotInk 按部位返回斑点样式：上翅偏黄更亮，下翅略暗
func SpotInk(part shape.Part, scale float64) SpotStyle {
	s := scale / shape.UnitScale
	if part == shape.LowerWing {
		return SpotStyle{
			Fill: SolidHSLA(40, 70, 80, 0.6),
			Ring: InkStroke{Width: 1.2 * s, Color: HSL{0, 0, 5}.Colorful(), Alpha: 0.35},
		}
	}
	return SpotStyle{
		Fill: SolidHSLA(45, 80, 85, 0.7),
		Ring: InkStroke{Width: 1.5 * s, Color: HSL{0, 0, 5}.Colorful(), Alpha: 0.4},
	}
}

// VeinColor 翅脉颜色（透明度由 Stroke.Alpha 决定）
var VeinColor = HSL{H: 0, S: 0, L: 3}

// DefaultInk 默认外描边颜色
var DefaultInk = HSL{H: 0, S: 0, L: 2}

// CelStops 赛璐璐风格的双色分界渐变
//
// 上翅在 0.45/0.46 处、下翅在 0.5/0.51 处形成硬分界。
func CelStops(part shape.Part) []StopSpec {
	if part == shape.LowerWing {
		return []StopSpec{
			{Offset: 0, DH: 3, DS: -5, DL: 12, Alpha: 1},
			{Offset: 0.5, DH: -4, DS: -8, DL: -2, Alpha: 1},
			{Offset: 0.51, DH: -10, DS: -15, DL: -12, Alpha: 1},
			{Offset: 1, DH: -15, DS: -20, DL: -22, Alpha: 1},
		}
	}
	return []StopSpec{
		{Offset: 0, DH: 8, DL: 18, Alpha: 1},
		{Offset: 0.45, DL: 5, Alpha: 1},
		{Offset: 0.46, DH: -5, DS: -10, DL: -8, Alpha: 1},
		{Offset: 1, DH: -12, DS: -15, DL: -18, Alpha: 1},
	}
}
