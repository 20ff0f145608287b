package particle

import (
	"math"
	"math/rand"
	"testing"
)

func TestParseValue_FixedAndRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{"Integer", "1500", 1500, 1500},
		{"Float", "3.14", 3.14, 3.14},
		{"Negative", "-10.5", -10.5, -10.5},
		{"Empty", "   ", 0, 0},
		{"Float range", "[0.7 0.9]", 0.7, 0.9},
		{"Single value range", "[4]", 4, 4},
		{"Reversed range", "[5 -2]", -2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.input)
			if err != nil {
				t.Fatalf("ParseValue(%q) error: %v", tt.input, err)
			}
			if v.Min != tt.wantMin || v.Max != tt.wantMax {
				t.Errorf("ParseValue(%q) = [%v %v], want [%v %v]", tt.input, v.Min, v.Max, tt.wantMin, tt.wantMax)
			}
			if v.IsCurve() {
				t.Errorf("ParseValue(%q) should not be a curve", tt.input)
			}
		})
	}
}

func TestParseValue_Keyframes(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantCount  int
		wantFirst  Keyframe
		wantLast   Keyframe
		wantInterp string
	}{
		{"Simple keyframes", "0,2 0.5,2 1,21", 3, Keyframe{0, 2}, Keyframe{1, 21}, InterpLinear},
		{"Unsorted input", "1,0 0,1", 2, Keyframe{0, 1}, Keyframe{1, 0}, InterpLinear},
		{"EaseOut", "0,0 EaseOut 1,100", 2, Keyframe{0, 0}, Keyframe{1, 100}, InterpEaseOut},
		{"Smooth", "0,0.06 0.25,0.1 Smooth", 2, Keyframe{0, 0.06}, Keyframe{0.25, 0.1}, InterpSmooth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.input)
			if err != nil {
				t.Fatalf("ParseValue(%q) error: %v", tt.input, err)
			}
			if len(v.Keyframes) != tt.wantCount {
				t.Fatalf("keyframe count = %d, want %d", len(v.Keyframes), tt.wantCount)
			}
			if v.Keyframes[0] != tt.wantFirst || v.Keyframes[len(v.Keyframes)-1] != tt.wantLast {
				t.Errorf("keyframes = %v", v.Keyframes)
			}
			if v.Interpolation != tt.wantInterp {
				t.Errorf("interpolation = %q, want %q", v.Interpolation, tt.wantInterp)
			}
		})
	}
}

func TestParseValue_Errors(t *testing.T) {
	for _, input := range []string{
		"abc",
		"[10",
		"[1 2 3]",
		"[a b]",
		"0,",
		"0,1,2",
		"2,5 3,4",
		"EaseIn",
		"NaN",
	} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseValue(input); err == nil {
				t.Errorf("ParseValue(%q) should fail", input)
			}
		})
	}
}

func TestEvaluateKeyframes(t *testing.T) {
	kf := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 100}}
	tests := []struct {
		name   string
		interp string
		t      float64
		want   float64
	}{
		{"Linear start", InterpLinear, 0, 0},
		{"Linear mid", InterpLinear, 0.5, 50},
		{"Linear clamped", InterpLinear, 2, 100},
		{"EaseIn mid", InterpEaseIn, 0.5, 25},
		{"EaseOut mid", InterpEaseOut, 0.5, 87.5},
		{"Smooth mid", InterpSmooth, 0.5, 50},
		{"Unknown falls back to linear", "Bouncy", 0.25, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateKeyframes(kf, tt.t, tt.interp); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EvaluateKeyframes(t=%v, %s) = %v, want %v", tt.t, tt.interp, got, tt.want)
			}
		})
	}

	if EvaluateKeyframes(nil, 0.5, "") != 0 {
		t.Error("empty keyframes should evaluate to 0")
	}
	if EvaluateKeyframes([]Keyframe{{0.5, 7}}, 0.1, "") != 7 {
		t.Error("single keyframe should be constant")
	}
	late := []Keyframe{{0.4, 3}, {0.8, 9}}
	if EvaluateKeyframes(late, 0.1, "") != 3 || EvaluateKeyframes(late, 0.95, "") != 9 {
		t.Error("values outside keyframe span should hold the end values")
	}
}

func TestRandomInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := RandomInRange(rng, 2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("RandomInRange = %v outside [2, 5]", v)
		}
	}
	if RandomInRange(rng, 3, 3) != 3 {
		t.Error("degenerate range should return min")
	}
	if RandomInRange(nil, 2, 4) != 3 {
		t.Error("nil rng should return the midpoint")
	}
}

func TestValueSampleAndAt(t *testing.T) {
	curve := mustParse(t, "0,1 1,3")
	if curve.Sample(nil) != 1 {
		t.Error("curve Sample should return the t=0 value")
	}
	if curve.At(0.5) != 2 {
		t.Errorf("curve At(0.5) = %v", curve.At(0.5))
	}
	if mustParse(t, "[2 6]").At(0.9) != 4 {
		t.Error("range At should return the midpoint")
	}
}

func mustParse(t *testing.T, s string) Value {
	t.Helper()
	v, err := ParseValue(s)
	if err != nil {
		t.Fatalf("ParseValue(%q) error = %v", s, err)
	}
	return v
}
