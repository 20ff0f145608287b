package render

import (
	"fmt"
	"math"

	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/shape"
)

// maxReadouts 环绕读数最多显示的历史数
const maxReadouts = 12

// 环绕读数的字号范围（像素）
const (
	readoutMaxSize = 13.0
	readoutMinSize = 8.0
)

// ProgressSweep 进度弧扫过的弧度：2π·(stepCount mod modulus)/modulus
//
// stepCount 为 modulus 的整数倍时为 0，接近下一个整数倍时趋近 2π。
// modulus <= 0 时按 params.SeedRange 处理。
func ProgressSweep(stepCount, modulus int) float64 {
	return 2 * math.Pi * ProgressFraction(stepCount, modulus)
}

// ProgressFraction 进度 ∈ [0, 1)
func ProgressFraction(stepCount, modulus int) float64 {
	if modulus <= 0 {
		modulus = params.SeedRange
	}
	r := stepCount % modulus
	if r < 0 {
		r += modulus
	}
	return float64(r) / float64(modulus)
}

// Readout 一个环绕读数（坐标相对环心）
type Readout struct {
	Value int
	Text  string
	X, Y  float64
	Alpha float64
	Size  float64
}

// OrbitReadouts 排布最近的种子读数
//
// i = 0 为最新值。age = i/count，越旧的读数离环心越远、越淡、字越小；
// 整圈随 clock 缓慢转动。
func OrbitReadouts(history []int, limit int, clock, radius float64) []Readout {
	if limit > maxReadouts {
		limit = maxReadouts
	}
	count := len(history)
	if limit < count {
		count = limit
	}
	if count <= 0 {
		return nil
	}

	out := make([]Readout, 0, count)
	for i := 0; i < count; i++ {
		v := history[len(history)-1-i]
		age := float64(i) / float64(count)
		angle := -math.Pi/2 + age*2*math.Pi + clock*0.12
		r := radius * (0.7 + age*0.6)
		out = append(out, Readout{
			Value: v,
			Text:  fmt.Sprintf("%03d", v),
			X:     math.Cos(angle) * r,
			Y:     math.Sin(angle) * r,
			Alpha: 0.7 - age*0.6,
			Size:  math.Max(readoutMinSize, readoutMaxSize-age*5),
		})
	}
	return out
}

// FlashIntensity 每个整数时钟单位开头的闪光强度 ∈ [0, 1]
//
// max(0, 1 − frac(clock)·3)：整数时刻为 1，三分之一个单位后衰减为 0。
func FlashIntensity(clock float64) float64 {
	frac := math.Mod(clock, 1)
	if frac < 0 {
		frac++
	}
	return math.Max(0, 1-frac*3)
}

// FlashLine 闪光时的一条放射线（坐标相对环心）
type FlashLine struct {
	From, To shape.Point
}

// FlashLines 8 条放射线，角度由种子决定，外端长度随闪光强度伸长
func FlashLines(seed int, flash, radius float64) []FlashLine {
	if flash <= 0 {
		return nil
	}
	lines := make([]FlashLine, 8)
	inner := radius * 0.25
	outer := radius * (0.45 + flash*0.35)
	for i := range lines {
		fi := float64(i)
		sin, cos := math.Sincos(fi/8*2*math.Pi + float64(seed)*0.01)
		lines[i] = FlashLine{
			From: shape.Point{X: cos*inner + math.Sin(fi*7)*2, Y: sin*inner + math.Cos(fi*5)*2},
			To:   shape.Point{X: cos * outer, Y: sin * outer},
		}
	}
	return lines
}

// PulseDot 环上的脉冲点（坐标相对环心）
type PulseDot struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}

// PulseDots n 个沿环缓慢转动、半径与透明度随时钟起伏的小点
func PulseDots(n int, clock, radius float64) []PulseDot {
	dots := make([]PulseDot, 0, n)
	for i := 0; i < n; i++ {
		fi := float64(i)
		angle := fi/float64(n)*2*math.Pi + clock*0.25
		wobble := math.Sin(clock*2+fi*3) * 3
		dots = append(dots, PulseDot{
			X:      math.Cos(angle) * (radius + wobble),
			Y:      math.Sin(angle) * (radius + wobble),
			Radius: 1.5 + math.Sin(clock*3+fi)*0.8,
			Alpha:  0.15 + math.Sin(clock*2+fi)*0.1,
		})
	}
	return dots
}

// RingPass 手绘风格进度弧的一遍
type RingPass struct {
	DX, DY float64 // 圆心偏移
	Radius float64
	Width  float64
	Alpha  float64
}

// RingPasses 三遍略微错开的进度弧，透明度随进度增加
func RingPasses(radius, progress float64) [3]RingPass {
	var out [3]RingPass
	for p := range out {
		fp := float64(p)
		out[p] = RingPass{
			DX:     math.Sin(fp) * 0.5,
			DY:     math.Cos(fp) * 0.5,
			Radius: radius + math.Sin(fp*50)*2,
			Width:  1.5 + fp*0.5,
			Alpha:  0.08 + progress*0.15,
		}
	}
	return out
}
