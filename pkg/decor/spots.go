package decor

import (
	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/shape"
)

// Spots 生成一侧翅膀上的斑点（歪斜的椭圆）
//
// 上翅 SpotCount 个，下翅 max(2, SpotCount-1) 个。
// 斑点中心被收进 outline 内部，并尽量与边界保持一个半径的距离，
// 放不下时退到轮廓的内点。
func Spots(b params.Bundle, part shape.Part, openness float64, side shape.Side, scale float64, outline []shape.Point) []shape.Ellipse {
	s := scale / shape.UnitScale
	sq := shape.Squeeze(openness)
	m := side.Sign()

	count := b.SpotCount
	if part == shape.LowerWing {
		count = max(2, b.SpotCount-1)
	}

	out := make([]shape.Ellipse, 0, count)
	for i := 0; i < count; i++ {
		var (
			seed      int
			sx, sy, r float64
			rx, ry    float64
			rotation  float64
			jxs, jys  int
		)
		if part == shape.LowerWing {
			seed = (b.SpotSeed + i*251 + 500) % params.SeedRange
			sx = float64(28+seed%35) * sq * s
			sy = float64(38+seed%25) * s
			r = (1.5 + float64(seed%3)) * s
			rx, ry = r, r*0.7
			rotation = float64(seed%20) * 0.15
			jxs, jys = seed+100, seed+150
		} else {
			seed = (b.SpotSeed + i*197) % params.SeedRange
			sx = float64(55+seed%40) * sq * s
			sy = float64(-65+seed%55) * s
			r = (2 + float64(seed%4)) * s
			rx, ry = r*1.2, r*0.8
			rotation = float64(seed%30) * 0.1
			jxs, jys = seed, seed+50
		}

		center := shape.Point{
			X: m * params.Jitter(sx, float64(jxs), 2*s),
			Y: params.Jitter(sy, float64(jys), 2*s),
		}
		out = append(out, shape.Ellipse{
			Center:   shape.Confine(center, outline, shape.Point{}, max(rx, ry)),
			RX:       rx,
			RY:       ry,
			Rotation: m * rotation,
		})
	}
	return out
}
