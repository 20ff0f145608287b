package params

import (
	"math"
	"testing"
)

// TestDeriveDeterministic 同一种子两次推导结果必须逐位相同
func TestDeriveDeterministic(t *testing.T) {
	for seed := -1500; seed < 2500; seed += 7 {
		a := Derive(seed)
		b := Derive(seed)
		if a != b {
			t.Fatalf("Derive(%d) not deterministic:\n%+v\n%+v", seed, a, b)
		}
	}
}

// TestDeriveBounded 所有字段都在约定范围内，且没有 NaN/Inf
func TestDeriveBounded(t *testing.T) {
	seeds := []int{math.MinInt32, -1001, -1, 0, 1, 250, 500, 999, 1000, 12345, math.MaxInt32}
	for s := 0; s < SeedRange; s++ {
		seeds = append(seeds, s)
	}

	for _, seed := range seeds {
		b := Derive(seed)
		if err := b.Validate(); err != nil {
			t.Errorf("Derive(%d): %v", seed, err)
		}
	}
}

// TestDeriveWrapsOutOfRange 超出范围的种子通过取模折回
func TestDeriveWrapsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		in   int
		same int
	}{
		{"正溢出", 1500, 500},
		{"负数", -1, 999},
		{"负溢出", -2101, 899},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Derive(tt.in) != Derive(tt.same) {
				t.Errorf("Derive(%d) should equal Derive(%d)", tt.in, tt.same)
			}
		})
	}
}

func TestDeriveKnownValues(t *testing.T) {
	t.Run("种子500翅膀完全张开", func(t *testing.T) {
		b := Derive(500)
		if b.FlapAngle > 1e-9 {
			t.Errorf("Derive(500).FlapAngle = %v, want ≈0", b.FlapAngle)
		}
	})

	t.Run("种子250翅膀完全合拢", func(t *testing.T) {
		b := Derive(250)
		if math.Abs(b.FlapAngle-1) > 1e-9 {
			t.Errorf("Derive(250).FlapAngle = %v, want 1", b.FlapAngle)
		}
	})

	t.Run("种子399", func(t *testing.T) {
		b := Derive(399)
		want := math.Abs(math.Sin(2 * math.Pi * 0.399))
		if math.Abs(b.FlapAngle-want) > 1e-12 {
			t.Errorf("FlapAngle = %v, want %v", b.FlapAngle, want)
		}
		if b.SpotCount != 3+(399*7)%5 {
			t.Errorf("SpotCount = %d, want %d", b.SpotCount, 3+(399*7)%5)
		}
		if b.DistortSeed != (399*31)%1000 {
			t.Errorf("DistortSeed = %d, want %d", b.DistortSeed, (399*31)%1000)
		}
	})
}

// TestSecondarySeedsDecorrelated 不同质数乘子产生的字段不应完全同步
func TestSecondarySeedsDecorrelated(t *testing.T) {
	equal := 0
	for s := 0; s < SeedRange; s++ {
		b := Derive(s)
		if b.SpotSeed == b.DistortSeed {
			equal++
		}
	}
	if equal > SeedRange/10 {
		t.Errorf("spotSeed == distortSeed for %d of %d seeds", equal, SeedRange)
	}
}

func TestMemo(t *testing.T) {
	var m Memo
	a := m.Get(42)
	if a != Derive(42) {
		t.Fatal("Memo.Get(42) differs from Derive(42)")
	}
	// 命中缓存时返回同一结果
	if m.Get(42) != a {
		t.Error("cached bundle changed")
	}
	if m.Get(43) != Derive(43) {
		t.Error("Memo did not recompute on seed change")
	}
}

func TestJitterDeterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		seed := float64(i * 73)
		a := Jitter(10, seed, 3)
		b := Jitter(10, seed, 3)
		if a != b {
			t.Fatalf("Jitter not deterministic for seed %v", seed)
		}
		if math.Abs(a-10) > 3 {
			t.Errorf("Jitter(10, %v, 3) = %v, offset exceeds amount", seed, a)
		}
	}
	if Jitter(5, 123, 0) != 5 {
		t.Error("zero amount must not move the value")
	}
}

func TestHash01Range(t *testing.T) {
	for seed := -50; seed < 50; seed++ {
		for i := 0; i < 50; i++ {
			h := Hash01(seed, i)
			if h < 0 || h >= 1 {
				t.Fatalf("Hash01(%d, %d) = %v outside [0,1)", seed, i, h)
			}
			if h != Hash01(seed, i) {
				t.Fatalf("Hash01(%d, %d) not deterministic", seed, i)
			}
		}
	}
}
