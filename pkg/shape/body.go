package shape

import "math"

// Ellipse 轴对齐椭圆（Rotation 为弧度）
type Ellipse struct {
	Center   Point
	RX, RY   float64
	Rotation float64
}

// Eye 复眼：眼白、瞳孔、高光三个圆
type Eye struct {
	White     Ellipse
	Pupil     Ellipse
	Highlight Ellipse
}

// BodyShape 身体各部件
type BodyShape struct {
	Abdomen  Ellipse
	Thorax   Ellipse
	Head     Ellipse
	Eyes     [2]Eye
	Segments [][2]Point // 腹部环节线
}

// Antenna 触角：一段三次贝塞尔 + 末端小球
type Antenna struct {
	Stroke    Path
	Tip       Point
	TipRadius float64
}

// Body 生成身体轮廓（以身体中心为原点）
func Body(scale float64) BodyShape {
	s := scale / UnitScale
	body := BodyShape{
		Abdomen: Ellipse{Center: Point{0, 15 * s}, RX: 5 * s, RY: 22 * s},
		Thorax:  Ellipse{Center: Point{0, -5 * s}, RX: 6 * s, RY: 11 * s},
		Head:    Ellipse{Center: Point{0, -19 * s}, RX: 7 * s, RY: 7 * s},
	}

	for i, dir := range [2]float64{-1, 1} {
		ex, ey := dir*3.5*s, -20*s
		body.Eyes[i] = Eye{
			White:     Ellipse{Center: Point{ex, ey}, RX: 3 * s, RY: 3 * s},
			Pupil:     Ellipse{Center: Point{ex + dir*0.5*s, ey + 0.3*s}, RX: 1.8 * s, RY: 1.8 * s},
			Highlight: Ellipse{Center: Point{ex + dir*s, ey - s}, RX: 0.8 * s, RY: 0.8 * s},
		}
	}

	// 环节线带一点固定的歪斜，模拟手绘
	for i := 0; i < 5; i++ {
		y := 5*s + float64(i)*6*s
		body.Segments = append(body.Segments, [2]Point{
			{-4 * s, y + math.Sin(float64(i)*2.3)*s},
			{4 * s, y - math.Sin(float64(i)*1.7)*s},
		})
	}
	return body
}

// Antennae 生成两根触角
//
// clock 驱动触角摆动，左右相位不同；这是唯一随时间变化的身体部件。
func Antennae(scale, clock float64) [2]Antenna {
	s := scale / UnitScale
	var out [2]Antenna
	for i, dir := range [2]float64{-1, 1} {
		wiggle := math.Sin(clock*3+dir*2) * 5 * s
		tip := Point{dir*28*s + wiggle*0.3, -52 * s}

		var p Path
		p.MoveTo(dir*3*s, -25*s)
		p.CubicTo(
			dir*12*s+wiggle, -45*s,
			dir*22*s-wiggle*0.5, -55*s,
			tip.X, tip.Y,
		)
		out[i] = Antenna{Stroke: p, Tip: tip, TipRadius: 3 * s}
	}
	return out
}

// EllipsePath 用四段三次贝塞尔近似椭圆
func EllipsePath(e Ellipse) Path {
	const k = 0.5522847498 // 4/3 * (sqrt(2) - 1)
	sin, cos := math.Sincos(e.Rotation)
	tr := func(x, y float64) (float64, float64) {
		return e.Center.X + x*cos - y*sin, e.Center.Y + x*sin + y*cos
	}
	rx, ry := e.RX, e.RY

	var p Path
	x0, y0 := tr(rx, 0)
	p.MoveTo(x0, y0)
	quarter := [4][6]float64{
		{rx, ry * k, rx * k, ry, 0, ry},
		{-rx * k, ry, -rx, ry * k, -rx, 0},
		{-rx, -ry * k, -rx * k, -ry, 0, -ry},
		{rx * k, -ry, rx, -ry * k, rx, 0},
	}
	for _, q := range quarter {
		c1x, c1y := tr(q[0], q[1])
		c2x, c2y := tr(q[2], q[3])
		x, y := tr(q[4], q[5])
		p.CubicTo(c1x, c1y, c2x, c2y, x, y)
	}
	p.Close()
	return p
}
