package render

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/modfly/pkg/decor"
	"github.com/decker502/modfly/pkg/shape"
)

// radialSegments 径向渐变每圈的扇段数
const radialSegments = 72

// maskPainter 借助离屏遮罩实现带硬分界的线性渐变填充
//
// 顶点插值只能表达线性变化，赛璐璐风格在 0.45/0.46 处的硬分界会被抹平。
// 做法：先把路径画成白色遮罩，再用 BlendSourceIn 把按停靠点切好的色带
// 叠到遮罩上，最后整张贴回目标。
type maskPainter struct {
	scratch *ebiten.Image
	layer   *ebiten.Image // clip 的内容层
}

// ensure 保证遮罩与目标同尺寸，返回清空后的遮罩
func (m *maskPainter) ensure(w, h int) *ebiten.Image {
	return fitScratch(&m.scratch, w, h)
}

func fitScratch(img **ebiten.Image, w, h int) *ebiten.Image {
	if *img != nil {
		b := (*img).Bounds()
		if b.Dx() != w || b.Dy() != h {
			(*img).Deallocate()
			*img = nil
		}
	}
	if *img == nil {
		*img = ebiten.NewImage(w, h)
	}
	(*img).Clear()
	return *img
}

func (m *maskPainter) release() {
	for _, img := range []**ebiten.Image{&m.scratch, &m.layer} {
		if *img != nil {
			(*img).Deallocate()
			*img = nil
		}
	}
}

// clip 把 paint 画出的内容裁剪到路径 p 的填充区域内，再贴回 dst
//
// paint 画在独立的内容层上；随后用 BlendDestinationIn 叠上路径的白色遮罩，
// 遮罩透明处的内容被清除。
func (m *maskPainter) clip(dst *ebiten.Image, p *vector.Path, paint func(layer *ebiten.Image)) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(is) == 0 {
		return
	}
	b := dst.Bounds()
	mask := m.ensure(b.Dx(), b.Dy())
	colorize(vs, white, 1)
	mask.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})

	layer := fitScratch(&m.layer, b.Dx(), b.Dy())
	paint(layer)
	layer.DrawImage(mask, &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn})
	dst.DrawImage(layer, nil)
}

// fillLinear 用线性渐变填充路径；(ox, oy) 为渐变坐标系原点在画布上的位置
func (m *maskPainter) fillLinear(dst *ebiten.Image, p *vector.Path, g decor.LinearGradient, ox, oy float64) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(is) == 0 || len(g.Stops) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range vs {
		x, y := float64(vs[i].DstX), float64(vs[i].DstY)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	b := dst.Bounds()
	mask := m.ensure(b.Dx(), b.Dy())
	colorize(vs, white, 1)
	mask.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})

	bvs, bis := bandQuads(g, ox, oy, shape.Rect{
		Min: shape.Point{X: minX - 1, Y: minY - 1},
		Max: shape.Point{X: maxX + 1, Y: maxY + 1},
	})
	mask.DrawTriangles(bvs, bis, whiteSubImage, &ebiten.DrawTrianglesOptions{
		Blend: ebiten.BlendSourceIn,
	})
	dst.DrawImage(mask, nil)
}

// bandQuads 覆盖 bounds 的色带四边形：停靠点之间各一条，色带内沿渐变轴线性插值
func bandQuads(g decor.LinearGradient, ox, oy float64, bounds shape.Rect) ([]ebiten.Vertex, []uint16) {
	from := shape.Point{X: g.From.X + ox, Y: g.From.Y + oy}
	dx, dy := g.To.X-g.From.X, g.To.Y-g.From.Y
	length := math.Hypot(dx, dy)
	solid := length == 0
	if solid {
		// 退化为纯色：一条覆盖全部范围的色带
		dx, dy, length = 1, 0, 1
		g.Stops = []decor.ColorStop{g.Stops[0]}
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux

	corners := [4]shape.Point{
		bounds.Min, {X: bounds.Max.X, Y: bounds.Min.Y},
		bounds.Max, {X: bounds.Min.X, Y: bounds.Max.Y},
	}
	tMin, tMax := math.Inf(1), math.Inf(-1)
	sMin, sMax := math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		rx, ry := c.X-from.X, c.Y-from.Y
		t := (rx*ux + ry*uy) / length
		s := rx*nx + ry*ny
		tMin, tMax = math.Min(tMin, t), math.Max(tMax, t)
		sMin, sMax = math.Min(sMin, s), math.Max(sMax, s)
	}

	breaks := []float64{tMin, tMax}
	for _, st := range g.Stops {
		if !solid && st.Offset > tMin && st.Offset < tMax {
			breaks = append(breaks, st.Offset)
		}
	}
	sort.Float64s(breaks)

	var vs []ebiten.Vertex
	var is []uint16
	at := func(t, s float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(from.X + ux*length*t + nx*s),
			DstY: float32(from.Y + uy*length*t + ny*s),
		}
	}
	for i := 0; i+1 < len(breaks); i++ {
		t0, t1 := breaks[i], breaks[i+1]
		if t1 <= t0 {
			continue
		}
		c0, a0 := decor.SampleStops(g.Stops, t0)
		c1, a1 := decor.SampleStops(g.Stops, t1)
		quad := [4]ebiten.Vertex{at(t0, sMin), at(t0, sMax), at(t1, sMin), at(t1, sMax)}
		setVertexColor(&quad[0], c0, a0)
		setVertexColor(&quad[1], c0, a0)
		setVertexColor(&quad[2], c1, a1)
		setVertexColor(&quad[3], c1, a1)

		base := uint16(len(vs))
		vs = append(vs, quad[:]...)
		is = append(is, base, base+1, base+2, base+1, base+3, base+2)
	}
	return vs, is
}

// fillRadial 以 (ox, oy) 为原点绘制覆盖 w×h 画布的径向渐变
//
// 最后一个停靠点不透明时，半径以外的部分用它的颜色填满。
func fillRadial(dst *ebiten.Image, g decor.RadialGradient, ox, oy float64, w, h int) {
	if len(g.Stops) == 0 || g.Radius <= 0 {
		return
	}
	cx, cy := g.Center.X+ox, g.Center.Y+oy

	radii := []float64{0, 1}
	for _, st := range g.Stops {
		if st.Offset > 0 && st.Offset < 1 {
			radii = append(radii, st.Offset)
		}
	}
	if last := g.Stops[len(g.Stops)-1]; last.Alpha > 0 {
		far := math.Hypot(math.Max(cx, float64(w)-cx), math.Max(cy, float64(h)-cy))
		radii = append(radii, math.Max(far/g.Radius, 1)+0.01)
	}
	sort.Float64s(radii)

	var vs []ebiten.Vertex
	var is []uint16
	for i := 0; i+1 < len(radii); i++ {
		t0, t1 := radii[i], radii[i+1]
		if t1 <= t0 {
			continue
		}
		c0, a0 := decor.SampleStops(g.Stops, t0)
		c1, a1 := decor.SampleStops(g.Stops, t1)
		if a0 <= 0 && a1 <= 0 {
			continue
		}
		base := uint16(len(vs))
		for j := 0; j <= radialSegments; j++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(j) / radialSegments)
			inner := ebiten.Vertex{
				DstX: float32(cx + cos*g.Radius*t0),
				DstY: float32(cy + sin*g.Radius*t0),
			}
			outer := ebiten.Vertex{
				DstX: float32(cx + cos*g.Radius*t1),
				DstY: float32(cy + sin*g.Radius*t1),
			}
			setVertexColor(&inner, c0, a0)
			setVertexColor(&outer, c1, a1)
			vs = append(vs, inner, outer)
		}
		for j := uint16(0); j < radialSegments; j++ {
			k := base + 2*j
			is = append(is, k, k+1, k+2, k+1, k+3, k+2)
		}
	}
	if len(is) == 0 {
		return
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
