package decor

import (
	"math"

	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/shape"
)

// Stroke 一条折线描边
type Stroke struct {
	Points []shape.Point
	Width  float64
	Alpha  float64
}

// veinSpec 一组翅脉的造型参数
type veinSpec struct {
	angles     []float64 // 角度（度），以翅根为圆心
	segments   int
	xScale     float64
	length     func(angle, bend float64) float64
	wobbleAmp  float64
	wobbleY    float64
	wobbleSeed func(d float64, vi, seg int) float64
	alpha      func(d float64, vi int) float64
	width      func(d float64, vi int) float64
}

var upperVeins = veinSpec{
	angles:    []float64{-75, -50, -25, 0, 10},
	segments:  6,
	xScale:    1,
	length:    func(a, bend float64) float64 { return (55 + math.Abs(a)*0.4) * bend },
	wobbleAmp: 4,
	wobbleY:   0.5,
	wobbleSeed: func(d float64, vi, seg int) float64 {
		return d + float64(vi*50) + float64(seg*30)
	},
	alpha: func(d float64, vi int) float64 { return 0.6 + math.Sin(d+float64(vi))*0.2 },
	width: func(d float64, vi int) float64 { return 0.7 + math.Sin(d+float64(vi*20))*0.4 },
}

var lowerVeins = veinSpec{
	angles:    []float64{15, 35, 55},
	segments:  5,
	xScale:    0.8,
	length:    func(_, bend float64) float64 { return 50 * bend },
	wobbleAmp: 3,
	wobbleY:   0.3,
	wobbleSeed: func(d float64, vi, seg int) float64 {
		return d + float64(vi*80) + float64(seg*40)
	},
	alpha: func(d float64, vi int) float64 { return 0.5 + math.Sin(d+float64(vi*11))*0.15 },
	width: func(d float64, vi int) float64 { return 0.8 * (0.6 + math.Sin(d+float64(vi*30))*0.4) },
}

// Veins 生成一侧翅膀的翅脉
//
// 每条翅脉从翅根出发，由若干段带抖动的短折线组成；
// 抖动在镜像前计算。翅根以外的每个点都被收进 outline 内部，
// 越界的点沿着指向翅根的方向后退。
//
// 参数:
//   - outline: 翅膀轮廓多边形，通常来自 Silhouette
func Veins(b params.Bundle, part shape.Part, openness float64, side shape.Side, scale float64, outline []shape.Point) []Stroke {
	spec := upperVeins
	if part == shape.LowerWing {
		spec = lowerVeins
	}
	s := scale / shape.UnitScale
	sq := shape.Squeeze(openness)
	m := side.Sign()
	d := float64(b.DistortSeed)

	out := make([]Stroke, 0, len(spec.angles))
	for vi, angle := range spec.angles {
		rad := angle * math.Pi / 180
		length := spec.length(angle, b.VeinBend)

		pts := make([]shape.Point, 0, spec.segments+1)
		pts = append(pts, shape.Point{})
		for seg := 1; seg <= spec.segments; seg++ {
			t := float64(seg) / float64(spec.segments)
			baseX := length * t * sq * s * math.Cos(rad) * spec.xScale
			baseY := length * t * s * math.Sin(rad)
			wobble := math.Sin(spec.wobbleSeed(d, vi, seg)) * spec.wobbleAmp * s
			pts = append(pts, shape.Confine(shape.Point{
				X: m * (baseX + wobble),
				Y: baseY + wobble*spec.wobbleY,
			}, outline, shape.Point{}, 0))
		}

		out = append(out, Stroke{
			Points: pts,
			Width:  math.Max(0.5, b.StripeWidth*s*spec.width(d, vi)),
			Alpha:  spec.alpha(d, vi),
		})
	}
	return out
}
