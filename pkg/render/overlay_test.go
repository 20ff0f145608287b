package render

import (
	"math"
	"testing"
)

func TestProgressSweep(t *testing.T) {
	tests := []struct {
		name      string
		stepCount int
		modulus   int
		want      float64
	}{
		{"起点", 0, 1000, 0},
		{"整圈回到零", 1000, 1000, 0},
		{"一半", 500, 1000, math.Pi},
		{"接近整圈", 999, 1000, 2 * math.Pi * 0.999},
		{"模数非正按 1000", 250, 0, math.Pi / 2},
		{"负步数", -250, 1000, 2 * math.Pi * 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressSweep(tt.stepCount, tt.modulus)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ProgressSweep(%d, %d) = %v, want %v", tt.stepCount, tt.modulus, got, tt.want)
			}
			if got < 0 || got >= 2*math.Pi {
				t.Errorf("sweep %v outside [0, 2π)", got)
			}
		})
	}
}

func TestOrbitReadouts(t *testing.T) {
	history := make([]int, 20)
	for i := range history {
		history[i] = i * 7
	}

	got := OrbitReadouts(history, 12, 0, 100)
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	if got[0].Value != history[len(history)-1] || got[0].Text != "133" {
		t.Errorf("newest readout = %+v", got[0])
	}
	if math.Abs(got[0].X) > 1e-9 || math.Abs(got[0].Y+70) > 1e-9 {
		t.Errorf("newest readout at (%v, %v), want straight up at 0.7·radius", got[0].X, got[0].Y)
	}

	for i, ro := range got {
		d := math.Hypot(ro.X, ro.Y)
		if d < 70-1e-9 || d > 130+1e-9 {
			t.Errorf("readout %d distance %v outside [0.7r, 1.3r]", i, d)
		}
		if i == 0 {
			continue
		}
		prev := got[i-1]
		if !(ro.Alpha < prev.Alpha) {
			t.Errorf("alpha not decreasing at %d: %v >= %v", i, ro.Alpha, prev.Alpha)
		}
		if !(ro.Size < prev.Size) {
			t.Errorf("size not decreasing at %d: %v >= %v", i, ro.Size, prev.Size)
		}
		if ro.Size < readoutMinSize {
			t.Errorf("size %v below minimum", ro.Size)
		}
	}

	t.Run("历史不足", func(t *testing.T) {
		if n := len(OrbitReadouts([]int{5, 9}, 12, 0, 100)); n != 2 {
			t.Errorf("len = %d, want 2", n)
		}
		if OrbitReadouts(nil, 12, 0, 100) != nil {
			t.Error("empty history should give no readouts")
		}
	})

	t.Run("上限不超过 12", func(t *testing.T) {
		if n := len(OrbitReadouts(history, 50, 0, 100)); n != maxReadouts {
			t.Errorf("len = %d, want %d", n, maxReadouts)
		}
	})

	t.Run("零填充", func(t *testing.T) {
		if got := OrbitReadouts([]int{7}, 12, 0, 1)[0].Text; got != "007" {
			t.Errorf("Text = %q, want 007", got)
		}
	})
}

func TestFlashIntensity(t *testing.T) {
	tests := []struct {
		clock float64
		want  float64
	}{
		{0, 1},
		{1, 1},
		{0.1, 0.7},
		{1.5, 0},
		{2.9, 0},
		{-0.9, 0.7},
	}
	for _, tt := range tests {
		if got := FlashIntensity(tt.clock); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FlashIntensity(%v) = %v, want %v", tt.clock, got, tt.want)
		}
	}
}

func TestFlashLines(t *testing.T) {
	if FlashLines(1, 0, 100) != nil {
		t.Error("no lines without flash")
	}
	weak := FlashLines(1, 0.1, 100)
	strong := FlashLines(1, 1, 100)
	if len(strong) != 8 {
		t.Fatalf("len = %d, want 8", len(strong))
	}
	for i := range strong {
		if math.Hypot(strong[i].To.X, strong[i].To.Y) <= math.Hypot(weak[i].To.X, weak[i].To.Y) {
			t.Errorf("line %d should reach further with a stronger flash", i)
		}
		if d := math.Hypot(strong[i].To.X, strong[i].To.Y); math.Abs(d-80) > 1e-9 {
			t.Errorf("line %d outer radius = %v, want 80", i, d)
		}
	}
}

func TestPulseDotsAndRingPasses(t *testing.T) {
	dots := PulseDots(8, 3.3, 100)
	if len(dots) != 8 {
		t.Fatalf("len = %d", len(dots))
	}
	for i, d := range dots {
		r := math.Hypot(d.X, d.Y)
		if r < 97-1e-9 || r > 103+1e-9 {
			t.Errorf("dot %d radius %v outside wobble band", i, r)
		}
		if d.Radius < 0.7-1e-9 || d.Radius > 2.3+1e-9 || d.Alpha < 0.05-1e-9 || d.Alpha > 0.25+1e-9 {
			t.Errorf("dot %d = %+v", i, d)
		}
	}
	if len(PulseDots(0, 0, 100)) != 0 {
		t.Error("zero dots requested")
	}

	passes := RingPasses(100, 0.5)
	for i, p := range passes {
		if math.Abs(p.Alpha-0.155) > 1e-9 {
			t.Errorf("pass %d alpha = %v", i, p.Alpha)
		}
		if math.Abs(p.Radius-100) > 2+1e-9 {
			t.Errorf("pass %d radius = %v", i, p.Radius)
		}
	}
	if passes[2].Width <= passes[0].Width {
		t.Error("later passes should be wider")
	}
}
