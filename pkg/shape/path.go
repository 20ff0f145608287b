// Package shape 生成蝴蝶各部位的几何轮廓
//
// 所有函数都是纯函数，坐标以身体中心为原点（y 轴向下），
// 不依赖任何绘图后端；渲染层负责把 Path 转换成 ebiten 的 vector.Path。
package shape

import "math"

// Point 二维点
type Point struct {
	X, Y float64
}

// Add 返回 p + q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Lerp 在 p 与 q 之间线性插值
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// SegmentKind 路径片段类型
type SegmentKind int

const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegQuadTo
	SegCubicTo
	SegClose
)

// Segment 路径片段
//
// Pts 的使用方式：
//   - MoveTo/LineTo: Pts[0] 为目标点
//   - QuadTo: Pts[0] 控制点，Pts[1] 终点
//   - CubicTo: Pts[0]、Pts[1] 控制点，Pts[2] 终点
//   - Close: 不使用
type Segment struct {
	Kind SegmentKind
	Pts  [3]Point
}

// Path 由有序片段组成的轮廓
type Path struct {
	Segments []Segment
}

// MoveTo 开始新的子路径
func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Kind: SegMoveTo, Pts: [3]Point{{x, y}}})
}

// LineTo 添加直线
func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Kind: SegLineTo, Pts: [3]Point{{x, y}}})
}

// QuadTo 添加二次贝塞尔曲线
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.Segments = append(p.Segments, Segment{Kind: SegQuadTo, Pts: [3]Point{{cx, cy}, {x, y}}})
}

// CubicTo 添加三次贝塞尔曲线
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Segments = append(p.Segments, Segment{Kind: SegCubicTo, Pts: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Close 闭合当前子路径
func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Kind: SegClose})
}

// pointCount 返回片段实际使用的点数
func (s Segment) pointCount() int {
	switch s.Kind {
	case SegMoveTo, SegLineTo:
		return 1
	case SegQuadTo:
		return 2
	case SegCubicTo:
		return 3
	}
	return 0
}

// Map 对每个点（含控制点）应用 f，返回新路径
func (p Path) Map(f func(Point) Point) Path {
	out := Path{Segments: make([]Segment, len(p.Segments))}
	for i, seg := range p.Segments {
		out.Segments[i] = seg
		for k := 0; k < seg.pointCount(); k++ {
			out.Segments[i].Pts[k] = f(seg.Pts[k])
		}
	}
	return out
}

// Mirror 水平镜像（所有 x 坐标与控制点 x 取反）
func (p Path) Mirror() Path {
	return p.Map(func(pt Point) Point { return Point{-pt.X, pt.Y} })
}

// Translate 平移
func (p Path) Translate(dx, dy float64) Path {
	return p.Map(func(pt Point) Point { return Point{pt.X + dx, pt.Y + dy} })
}

// Rect 轴对齐包围盒
type Rect struct {
	Min, Max Point
}

// Contains 点是否落在包围盒内（含边界）
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Bounds 返回路径顶点与控制点的包围盒
// 贝塞尔曲线一定落在控制点凸包内，因此这是曲线的保守包围盒
func (p Path) Bounds() Rect {
	r := Rect{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
	empty := true
	for _, seg := range p.Segments {
		for k := 0; k < seg.pointCount(); k++ {
			pt := seg.Pts[k]
			r.Min.X = math.Min(r.Min.X, pt.X)
			r.Min.Y = math.Min(r.Min.Y, pt.Y)
			r.Max.X = math.Max(r.Max.X, pt.X)
			r.Max.Y = math.Max(r.Max.Y, pt.Y)
			empty = false
		}
	}
	if empty {
		return Rect{}
	}
	return r
}

// Flatten 把路径展开为折线多边形（只取第一个子路径）
//
// 参数:
//   - stepsPerCurve: 每段曲线的采样数，< 1 时按 1 处理
func (p Path) Flatten(stepsPerCurve int) []Point {
	if stepsPerCurve < 1 {
		stepsPerCurve = 1
	}
	var out []Point
	var cur Point
	for _, seg := range p.Segments {
		switch seg.Kind {
		case SegMoveTo:
			if len(out) > 0 {
				return out
			}
			cur = seg.Pts[0]
			out = append(out, cur)
		case SegLineTo:
			cur = seg.Pts[0]
			out = append(out, cur)
		case SegQuadTo:
			for i := 1; i <= stepsPerCurve; i++ {
				out = append(out, quadAt(cur, seg.Pts[0], seg.Pts[1], float64(i)/float64(stepsPerCurve)))
			}
			cur = seg.Pts[1]
		case SegCubicTo:
			for i := 1; i <= stepsPerCurve; i++ {
				out = append(out, cubicAt(cur, seg.Pts[0], seg.Pts[1], seg.Pts[2], float64(i)/float64(stepsPerCurve)))
			}
			cur = seg.Pts[2]
		case SegClose:
			return out
		}
	}
	return out
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
		Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
	}
}

// Polygon 把折线点序列转换成闭合路径
func Polygon(pts []Point) Path {
	var p Path
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// PointInPolygon 奇偶规则判断点是否在多边形内
func PointInPolygon(pt Point, poly []Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
