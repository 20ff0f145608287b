package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/modfly/pkg/anim"
	"github.com/decker502/modfly/pkg/decor"
	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/shape"
)

// curveFillAlpha curve 模式下轮廓内底色的透明度倍率
const curveFillAlpha = 0.3

// 身体配色
var (
	bodyInk       = decor.DefaultInk
	antennaColor  = decor.HSL{H: 0, S: 0, L: 4}
	pupilColor    = decor.HSL{H: 0, S: 0, L: 3}
	segmentColor  = decor.HSLA(30, 20, 25, 0.6)
	highlightTint = decor.SolidHSLA(0, 0, 100, 0.9)
)

// curveMemo 缓存单位空间中的散点，种子不变时每帧只做姿态变换
type curveMemo struct {
	valid bool
	seed  int
	count int
	pts   []shape.Point
}

func (m *curveMemo) get(b params.Bundle, count int) []shape.Point {
	if m.valid && m.seed == b.Seed && m.count == count {
		return m.pts
	}
	// 张开（squeeze = 1）、右侧、s = 1 的单位空间
	unit := shape.CurveWing(b, 0, shape.Right, shape.UnitScale, shape.CurveSteps)
	m.pts = shape.Scatter(unit, count, b.DistortSeed)
	m.seed, m.count, m.valid = b.Seed, count, true
	return m.pts
}

// paintCreature 先远侧（右）翅、再近侧（左）翅、最后身体与触角
func (r *Renderer) paintCreature(dst *ebiten.Image, f *anim.Frame, base decor.HSL) {
	if f.Scale <= 0 {
		return
	}
	for _, side := range [2]shape.Side{shape.Right, shape.Left} {
		if r.theme.Mode == shape.ModeCurve {
			r.paintCurveWing(dst, f, side, base)
			continue
		}
		r.paintWingPart(dst, f, shape.UpperWing, side, base)
		r.paintWingPart(dst, f, shape.LowerWing, side, base)
	}
	r.paintBody(dst, f)
}

// paintWingPart 填充、双层描边、翅脉、斑点
//
// 四者共用同一条轮廓（开启破损时带缺口）；翅脉与斑点再经遮罩裁剪到填充区域内。
func (r *Renderer) paintWingPart(dst *ebiten.Image, f *anim.Frame, part shape.Part, side shape.Side, base decor.HSL) {
	b, open, sc := f.Bundle, f.Flap, f.Scale
	ox, oy := f.X, f.Y

	outline := decor.Silhouette(b, part, open, side, sc, r.theme.Tatter)
	vp := toVector(shape.Polygon(outline), ox, oy)

	grad := decor.WingGradient(part, decor.Gradient(r.theme.Stops(part), base), open, side, sc)
	r.mask.fillLinear(dst, vp, grad, ox, oy)
	r.strokeOutline(dst, vp, b, part, sc)

	veins := decor.Veins(b, part, open, side, sc, outline)
	spots := decor.Spots(b, part, open, side, sc, outline)
	style := decor.SpotInk(part, sc)
	r.mask.clip(dst, vp, func(layer *ebiten.Image) {
		for _, v := range veins {
			stroke(layer, polyline(v.Points, ox, oy), v.Width, decor.VeinColor.Colorful(), v.Alpha)
		}
		for _, e := range spots {
			sp := toVector(shape.EllipsePath(e), ox, oy)
			fillShaded(layer, sp, style.Fill, ox, oy)
			strokeInk(layer, sp, style.Ring)
		}
	})
}

func (r *Renderer) strokeOutline(dst *ebiten.Image, vp *vector.Path, b params.Bundle, part shape.Part, sc float64) {
	if !r.theme.Outline {
		return
	}
	ink := decor.Outline(b, part, sc, r.theme.Ink)
	ink[0].Alpha = r.theme.InkA
	strokeInk(dst, vp, ink[0])
	strokeInk(dst, vp, ink[1])
}

// paintCurveWing curve 模式：蝴蝶曲线轮廓 + 淡底色 + 散点粒子
func (r *Renderer) paintCurveWing(dst *ebiten.Image, f *anim.Frame, side shape.Side, base decor.HSL) {
	b, open, sc := f.Bundle, f.Flap, f.Scale
	ox, oy := f.X, f.Y
	s := sc / shape.UnitScale

	poly := shape.CurveWing(b, open, side, sc, shape.CurveSteps)
	if r.theme.Tatter {
		poly = decor.Tatter(poly, b.TatterAmount, decor.TatterSeed(b, shape.UpperWing))
	}
	vp := toVector(shape.Polygon(poly), ox, oy)

	fillStops := decor.Gradient(r.theme.Upper, base)
	for i := range fillStops {
		fillStops[i].Alpha *= curveFillAlpha
	}
	r.mask.fillLinear(dst, vp, decor.LinearGradient{
		From:  shape.Point{X: 0, Y: -90 * s},
		To:    shape.Point{X: 0, Y: 90 * s},
		Stops: fillStops,
	}, ox, oy)
	r.strokeOutline(dst, vp, b, shape.UpperWing, sc)

	unit := r.curve.get(b, r.theme.CurveParticles)
	if len(unit) == 0 {
		return
	}
	sq := shape.Squeeze(open)
	dotR := math.Max(0.8, 0.6*s)
	var dots vector.Path
	for _, u := range unit {
		pt := u.Place(side, sq, s)
		x, y := float32(pt.X+ox), float32(pt.Y+oy)
		dots.MoveTo(x+float32(dotR), y)
		dots.Arc(x, y, float32(dotR), 0, 2*math.Pi, vector.Clockwise)
		dots.Close()
	}
	fillShaded(dst, &dots, decor.RadialGradient{
		Radius: 90 * s,
		Stops:  decor.Gradient(r.theme.Lower, base),
	}, ox, oy)
}

// paintBody 腹部、胸部、头部、复眼、触角、腹部环节线
func (r *Renderer) paintBody(dst *ebiten.Image, f *anim.Frame) {
	sc := f.Scale
	s := sc / shape.UnitScale
	ox, oy := f.X, f.Y
	ink := bodyInk.Colorful()

	body := shape.Body(sc)
	ellipse := func(e shape.Ellipse, fill decor.HSL, width float64) {
		p := toVector(shape.EllipsePath(e), ox, oy)
		fillSolid(dst, p, fill.Colorful(), 1)
		stroke(dst, p, width, ink, 1)
	}
	ellipse(body.Abdomen, r.theme.BodyFill, 3*s)
	ellipse(body.Thorax, r.theme.BodyFill.Shift(0, 0, 2), 3*s)
	ellipse(body.Head, r.theme.BodyFill, 3*s)

	for _, eye := range body.Eyes {
		ellipse(eye.White, r.theme.Eye, 2*s)
		fillSolid(dst, toVector(shape.EllipsePath(eye.Pupil), ox, oy), pupilColor.Colorful(), 1)
		fillShaded(dst, toVector(shape.EllipsePath(eye.Highlight), ox, oy), highlightTint, ox, oy)
	}

	tip := decor.HSL{H: r.theme.TipHue, S: 60, L: 30}.Colorful()
	for _, a := range shape.Antennae(sc, f.Clock) {
		stroke(dst, toVector(a.Stroke, ox, oy), 2.5*s, antennaColor.Colorful(), 1)
		blob := circle(a.Tip.X+ox, a.Tip.Y+oy, a.TipRadius)
		fillSolid(dst, blob, tip, 1)
		stroke(dst, blob, 2*s, ink, 1)
	}

	for _, seg := range body.Segments {
		line(dst, seg[0].X+ox, seg[0].Y+oy, seg[1].X+ox, seg[1].Y+oy, s, segmentColor)
	}
}
