package render

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/modfly/pkg/anim"
	"github.com/decker502/modfly/pkg/decor"
)

// 虚线整圈：4 像素实线 + 6 像素间隔
const (
	dashLength = 4.0
	dashGap    = 6.0
)

// 故障条纹
const (
	glitchBands     = 3
	glitchThreshold = 0.55
)

// flickerThreshold sin(17·clock) 超过该值时整屏闪白
const flickerThreshold = 0.97

// paintBackground 不透明清屏；拖尾模式下改为半透明覆盖，保留上一帧的残影
func (r *Renderer) paintBackground(dst *ebiten.Image, f *anim.Frame) {
	bg := r.theme.Background
	if !r.opts.Trail {
		dst.Fill(decor.HSLA(bg.H, bg.S, bg.L, r.theme.BackgroundAlpha))
		return
	}
	vector.DrawFilledRect(dst, 0, 0, float32(f.Width), float32(f.Height),
		decor.HSLA(bg.H, bg.S, bg.L, r.opts.TrailFade), false)
}

// paintAmbient 浮尘：大部分是圆点，每隔 ScratchEvery 个是一条短划痕
func (r *Renderer) paintAmbient(dst *ebiten.Image, f *anim.Frame, hue float64) {
	w, h := float64(f.Width), float64(f.Height)
	for _, m := range r.motes {
		pl := r.theme.Ambient.Place(m, w, h, f.Clock)
		if pl.Alpha <= 0 {
			continue
		}
		x := pl.X
		if m.Drift != 0 {
			x += r.cosmetic.Noise(m.Seed*0.01, f.Clock*0.2) * m.Drift
		}
		if m.Scratch {
			sin, cos := math.Sincos(pl.Rotation)
			line(dst, x-cos*m.Size, pl.Y-sin*m.Size, x+cos*m.Size, pl.Y+sin*m.Size,
				0.8, decor.HSLA(hue+10, 50, 50, pl.Alpha*2))
			continue
		}
		c, a := nrgba(decor.HSLA(hue, 40, 45, pl.Alpha))
		fillSolid(dst, circle(x, pl.Y, m.Size), c, a)
	}
}

// paintGlow 生物背后的径向光晕
func (r *Renderer) paintGlow(dst *ebiten.Image, f *anim.Frame, base decor.HSL) {
	g := decor.RadialGradient{
		Radius: f.Scale * r.theme.GlowRadius,
		Stops:  decor.Gradient(r.theme.GlowStops, base),
	}
	fillRadial(dst, g, f.X, f.Y, f.Width, f.Height)
}

// paintRing 进度弧、虚线整圈、环绕读数、脉冲点、闪光
func (r *Renderer) paintRing(dst *ebiten.Image, f *anim.Frame) {
	cx, cy := f.X, f.Y
	radius := f.Scale * r.theme.RingRadius
	if radius <= 0 {
		return
	}
	rc := r.theme.RingColor
	progress := ProgressFraction(f.StepCount, f.Modulus)

	if sweep := ProgressSweep(f.StepCount, f.Modulus); sweep > 0 {
		for _, p := range RingPasses(radius, progress) {
			stroke(dst, arc(cx+p.DX, cy+p.DY, p.Radius, -math.Pi/2, sweep), p.Width, rc.Colorful(), p.Alpha)
		}
	}
	stroke(dst, dashedCircle(cx, cy, radius), 1, white, 0.04)

	readout := rc.Shift(7, -10, 10)
	for _, ro := range OrbitReadouts(f.History, r.theme.Readouts, f.Clock, radius) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx+ro.X, cy+ro.Y)
		op.ColorScale.ScaleWithColor(decor.HSLA(readout.H, readout.S, readout.L, ro.Alpha))
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(dst, ro.Text, r.faces.Face(ro.Size), op)
	}

	dot := rc.Shift(2, 10, 5)
	for _, d := range PulseDots(r.theme.Dots, f.Clock, radius) {
		c, a := nrgba(decor.HSLA(dot.H, dot.S, dot.L, d.Alpha))
		fillSolid(dst, circle(cx+d.X, cy+d.Y, d.Radius), c, a)
	}

	if !r.theme.Flash {
		return
	}
	flash := FlashIntensity(f.Clock)
	fc := rc.Shift(7, 0, 5)
	for _, l := range FlashLines(f.Seed, flash, radius) {
		line(dst, cx+l.From.X, cy+l.From.Y, cx+l.To.X, cy+l.To.Y, 1.5,
			decor.HSLA(fc.H, fc.S, fc.L, flash*0.25))
	}
}

// dashedCircle 由若干短弧组成的虚线圆
func dashedCircle(cx, cy, radius float64) *vector.Path {
	var vp vector.Path
	circumference := 2 * math.Pi * radius
	n := int(circumference / (dashLength + dashGap))
	dash := dashLength / radius
	for k := 0; k < n; k++ {
		start := float64(k) * (dashLength + dashGap) / radius
		sin, cos := math.Sincos(start)
		vp.MoveTo(float32(cx+cos*radius), float32(cy+sin*radius))
		vp.Arc(float32(cx), float32(cy), float32(radius), float32(start), float32(start+dash), vector.Clockwise)
	}
	return &vp
}

// paintEffects 扫描线、故障条纹、偶发闪白
func (r *Renderer) paintEffects(dst *ebiten.Image, f *anim.Frame) {
	w, h := float32(f.Width), float32(f.Height)
	if r.theme.Scanlines && r.theme.ScanlineAlpha > 0 {
		clr := decor.HSLA(0, 0, 0, r.theme.ScanlineAlpha)
		for y := float32(0); y < h; y += 3 {
			vector.DrawFilledRect(dst, 0, y, w, 1, clr, false)
		}
	}
	if r.theme.Glitch {
		r.paintGlitch(dst, f)
	}
	if r.theme.Flicker && math.Sin(f.Clock*17) > flickerThreshold {
		vector.DrawFilledRect(dst, 0, 0, w, h, decor.HSLA(0, 0, 100, 0.04), false)
	}
}

// paintGlitch 噪声超过阈值时把一条水平条带错位重绘，并偏色
func (r *Renderer) paintGlitch(dst *ebiten.Image, f *anim.Frame) {
	for k := 0; k < glitchBands; k++ {
		fk := float64(k) * 10
		n := r.cosmetic.Noise(f.Clock*0.8, fk)
		if n <= glitchThreshold {
			continue
		}
		y := int((r.cosmetic.Noise(f.Clock*0.3, fk+5) + 1) / 2 * float64(f.Height))
		bandH := 4 + int((n-glitchThreshold)*40)
		dx := r.cosmetic.Noise(f.Clock*2, fk+9) * 12

		band := image.Rect(0, y, f.Width, min(f.Height, y+bandH))
		if band.Empty() {
			continue
		}
		scratch := r.mask.ensure(f.Width, f.Height)
		scratch.DrawImage(dst.SubImage(band).(*ebiten.Image), &ebiten.DrawImageOptions{
			GeoM: translate(0, float64(y)),
		})

		op := &ebiten.DrawImageOptions{GeoM: translate(dx, float64(y))}
		op.ColorScale.Scale(1, 0.6, 1.2, 1)
		dst.DrawImage(scratch.SubImage(band).(*ebiten.Image), op)
	}
}

func translate(x, y float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(x, y)
	return g
}

