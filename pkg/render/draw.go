package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/modfly/pkg/decor"
	"github.com/decker502/modfly/pkg/shape"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage 取中心像素，避免采样到边缘
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	white = colorful.Color{R: 1, G: 1, B: 1}
)

func init() {
	whiteImage.Fill(color.White)
}

// toVector 把 shape.Path 平移到 (ox, oy) 后转换为 vector.Path
func toVector(p shape.Path, ox, oy float64) *vector.Path {
	var vp vector.Path
	f := func(v float64, o float64) float32 { return float32(v + o) }
	for _, seg := range p.Segments {
		pt := seg.Pts
		switch seg.Kind {
		case shape.SegMoveTo:
			vp.MoveTo(f(pt[0].X, ox), f(pt[0].Y, oy))
		case shape.SegLineTo:
			vp.LineTo(f(pt[0].X, ox), f(pt[0].Y, oy))
		case shape.SegQuadTo:
			vp.QuadTo(f(pt[0].X, ox), f(pt[0].Y, oy), f(pt[1].X, ox), f(pt[1].Y, oy))
		case shape.SegCubicTo:
			vp.CubicTo(f(pt[0].X, ox), f(pt[0].Y, oy), f(pt[1].X, ox), f(pt[1].Y, oy), f(pt[2].X, ox), f(pt[2].Y, oy))
		case shape.SegClose:
			vp.Close()
		}
	}
	return &vp
}

// polyline 折线（不闭合）
func polyline(pts []shape.Point, ox, oy float64) *vector.Path {
	var vp vector.Path
	for i, pt := range pts {
		if i == 0 {
			vp.MoveTo(float32(pt.X+ox), float32(pt.Y+oy))
			continue
		}
		vp.LineTo(float32(pt.X+ox), float32(pt.Y+oy))
	}
	return &vp
}

// circle 整圆路径
func circle(cx, cy, r float64) *vector.Path {
	var vp vector.Path
	vp.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	vp.Close()
	return &vp
}

// arc 从 start 顺时针扫过 sweep 弧度的圆弧
func arc(cx, cy, r, start, sweep float64) *vector.Path {
	var vp vector.Path
	vp.Arc(float32(cx), float32(cy), float32(r), float32(start), float32(start+sweep), vector.Clockwise)
	return &vp
}

// colorize 给顶点统一上色（预乘 alpha）
func colorize(vs []ebiten.Vertex, c colorful.Color, alpha float64) {
	for i := range vs {
		setVertexColor(&vs[i], c, alpha)
	}
}

func setVertexColor(v *ebiten.Vertex, c colorful.Color, alpha float64) {
	a := float32(alpha)
	v.SrcX, v.SrcY = 1, 1
	v.ColorR = float32(c.R) * a
	v.ColorG = float32(c.G) * a
	v.ColorB = float32(c.B) * a
	v.ColorA = a
}

// fillSolid 非零环绕规则填充纯色
func fillSolid(dst *ebiten.Image, p *vector.Path, c colorful.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(is) == 0 {
		return
	}
	colorize(vs, c, alpha)
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

// fillShaded 逐顶点取色填充，只适合颜色在路径内线性变化的 Shader（如纯色）
func fillShaded(dst *ebiten.Image, p *vector.Path, sh decor.Shader, ox, oy float64) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(is) == 0 {
		return
	}
	for i := range vs {
		c, a := sh.At(shape.Point{X: float64(vs[i].DstX) - ox, Y: float64(vs[i].DstY) - oy})
		setVertexColor(&vs[i], c, a)
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

// stroke 圆角描边
func stroke(dst *ebiten.Image, p *vector.Path, width float64, c colorful.Color, alpha float64) {
	if alpha <= 0 || width <= 0 {
		return
	}
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	if len(is) == 0 {
		return
	}
	colorize(vs, c, alpha)
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokeInk 按 decor.InkStroke 描边
func strokeInk(dst *ebiten.Image, p *vector.Path, ink decor.InkStroke) {
	stroke(dst, p, ink.Width, ink.Color, ink.Alpha)
}

// nrgba 非预乘颜色 → go-colorful + alpha
func nrgba(c color.NRGBA) (colorful.Color, float64) {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}, float64(c.A) / 255
}

// line 两点之间的线段
func line(dst *ebiten.Image, x0, y0, x1, y1, width float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}
