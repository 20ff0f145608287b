package shape

import (
	"math"
	"sort"
)

// confineSteps 沿线段后退时的采样数
const confineSteps = 48

// interiorScanlines 求内点时扫描的水平线条数
const interiorScanlines = 9

// Confine 把点收进多边形内部，并与边界保持至少 margin 的距离
//
// 点已满足条件时原样返回；否则先沿着指向 toward（通常是翅根）的线段后退，
// 再沿着指向多边形内点的线段后退，取第一个满足条件的位置。
// 都找不到时返回内点本身。
func Confine(pt Point, poly []Point, toward Point, margin float64) Point {
	if len(poly) < 3 {
		return pt
	}
	fits := func(q Point) bool {
		return PointInPolygon(q, poly) && (margin <= 0 || EdgeDistance(q, poly) >= margin)
	}
	if fits(pt) {
		return pt
	}
	if q, ok := retreat(pt, toward, fits); ok {
		return q
	}
	anchor, ok := InteriorPoint(poly)
	if !ok {
		return pt
	}
	if q, ok := retreat(pt, anchor, fits); ok {
		return q
	}
	return anchor
}

// retreat 从 from 向 to 逐步后退，返回第一个满足 fits 的点
func retreat(from, to Point, fits func(Point) bool) (Point, bool) {
	for k := 1; k <= confineSteps; k++ {
		q := from.Lerp(to, float64(k)/confineSteps)
		if fits(q) {
			return q, true
		}
	}
	return Point{}, false
}

// EdgeDistance 点到多边形各条边的最短距离
func EdgeDistance(pt Point, poly []Point) float64 {
	best := math.Inf(1)
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		best = math.Min(best, segmentDistance(pt, poly[j], poly[i]))
	}
	return best
}

func segmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// InteriorPoint 多边形的一个确定性内点
//
// 在包围盒内取若干条水平扫描线，按奇偶规则求出每条线落在多边形内的区间，
// 返回最宽区间的中点。多边形退化（面积为零）时返回 false。
func InteriorPoint(poly []Point) (Point, bool) {
	if len(poly) < 3 {
		return Point{}, false
	}
	bounds := Polygon(poly).Bounds()
	h := bounds.Max.Y - bounds.Min.Y
	if h <= 0 {
		return Point{}, false
	}

	var best Point
	bestWidth := 0.0
	xs := make([]float64, 0, len(poly))
	for k := 1; k <= interiorScanlines; k++ {
		y := bounds.Min.Y + h*float64(k)/float64(interiorScanlines+1)
		xs = xs[:0]
		n := len(poly)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := poly[i], poly[j]
			if (a.Y > y) != (b.Y > y) {
				xs = append(xs, (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X)
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			if w := xs[i+1] - xs[i]; w > bestWidth {
				bestWidth = w
				best = Point{X: (xs[i] + xs[i+1]) / 2, Y: y}
			}
		}
	}
	return best, bestWidth > 0
}
