package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("开始快于线性", func(t *testing.T) {
		for p := 0.1; p < 0.5; p += 0.1 {
			if EaseOutCubic(p) <= p {
				t.Errorf("EaseOutCubic(%v) 应该大于线性值（开始快）", p)
			}
		}
	})
}

// TestEaseInOutSine 测试正弦缓入缓出的对称性
func TestEaseInOutSine(t *testing.T) {
	if math.Abs(EaseInOutSine(0)) > 1e-9 {
		t.Errorf("EaseInOutSine(0) = %v, 期望 0", EaseInOutSine(0))
	}
	if math.Abs(EaseInOutSine(1)-1) > 1e-9 {
		t.Errorf("EaseInOutSine(1) = %v, 期望 1", EaseInOutSine(1))
	}
	for p := 0.05; p < 0.5; p += 0.05 {
		a := EaseInOutSine(p)
		b := 1 - EaseInOutSine(1-p)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("EaseInOutSine 在 %v 处不对称: %v vs %v", p, a, b)
		}
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"t=0 返回 a", 10, 20, 0, 10},
		{"t=1 返回 b", 10, 20, 1, 20},
		{"中点", 10, 20, 0.5, 15},
		{"反向区间", 20, 10, 0.25, 17.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"区间内", 0.4, 0.4},
		{"下溢", -3, 0},
		{"上溢", 7, 1},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp01(tt.v); got != tt.expected {
				t.Errorf("Clamp01(%v) = %v, want %v", tt.v, got, tt.expected)
			}
		})
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{725, 5},
		{-10, 350},
	}
	for _, tt := range tests {
		if got := WrapDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestSmoothingAlpha 验证平滑系数的帧率无关换算
func TestSmoothingAlpha(t *testing.T) {
	t.Run("参考帧率下等于原始系数", func(t *testing.T) {
		got := SmoothingAlpha(0.05, 1.0/60.0, 60)
		if math.Abs(got-0.05) > 1e-9 {
			t.Errorf("SmoothingAlpha(0.05, 1/60, 60) = %v, want 0.05", got)
		}
	})

	t.Run("两个半帧等价于一个整帧", func(t *testing.T) {
		full := SmoothingAlpha(0.08, 1.0/60.0, 60)
		half := SmoothingAlpha(0.08, 1.0/120.0, 60)

		v1 := Approach(0, 1, full)
		v2 := Approach(Approach(0, 1, half), 1, half)
		if math.Abs(v1-v2) > 1e-9 {
			t.Errorf("120Hz 两步 = %v, 60Hz 一步 = %v，应该相等", v2, v1)
		}
	})

	t.Run("边界值", func(t *testing.T) {
		if SmoothingAlpha(0.05, 0, 60) != 0 {
			t.Error("dt=0 时系数应为 0")
		}
		if SmoothingAlpha(1, 0.016, 60) != 1 {
			t.Error("factor=1 时系数应为 1")
		}
		if SmoothingAlpha(0.05, 0.016, 0) != 0.05 {
			t.Error("refRate<=0 时应退化为原始系数")
		}
	})
}

// TestApproachNeverOvershoots 验证指数平滑单调收敛且不越过目标
func TestApproachNeverOvershoots(t *testing.T) {
	v := 0.0
	prevErr := 1.0
	for i := 0; i < 100; i++ {
		v = Approach(v, 1, 0.05)
		if v > 1 {
			t.Fatalf("第 %d 帧越过目标: %v", i, v)
		}
		e := 1 - v
		if e > prevErr {
			t.Fatalf("第 %d 帧误差增大: %v > %v", i, e, prevErr)
		}
		prevErr = e
	}
	if prevErr >= 0.01 {
		t.Errorf("100 帧后误差 = %v, 期望 < 0.01", prevErr)
	}
}
