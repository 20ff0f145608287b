package sequence

import "testing"

func TestStepRecurrence(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name string
		want int
	}{
		{"第1步", 399},
		{"第2步", 298},
		{"第3步", 197},
		{"第4步", 96},
		{"第5步（回绕）", 995},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Step(); got != tt.want {
				t.Errorf("Step() = %d, want %d", got, tt.want)
			}
		})
	}

	if c.StepCount() != 5 {
		t.Errorf("StepCount() = %d, want 5", c.StepCount())
	}
}

func TestFullCycleVisitsEveryValue(t *testing.T) {
	c := NewDefault()
	for i := 0; i < 999; i++ {
		c.Step()
	}

	if !c.CycleComplete() {
		t.Errorf("expected full cycle after 999 steps, visited %d", c.UniqueVisited())
	}
	// 第 1000 步回到起点
	if got := c.Step(); got != DefaultInitial {
		t.Errorf("step 1000 = %d, want %d", got, DefaultInitial)
	}
}

func TestHistoryCapKeepsNewestLast(t *testing.T) {
	c := New(500, 101, 1000, 3)
	c.Step() // 399
	c.Step() // 298
	c.Step() // 197

	h := c.History()
	want := []int{399, 298, 197}
	if len(h) != len(want) {
		t.Fatalf("len(History()) = %d, want %d", len(h), len(want))
	}
	for i := range want {
		if h[i] != want[i] {
			t.Errorf("History()[%d] = %d, want %d", i, h[i], want[i])
		}
	}

	// 返回的是副本
	h[0] = -1
	if c.History()[0] == -1 {
		t.Error("History() must return a copy")
	}
}

func TestResetAndNormalisation(t *testing.T) {
	c := New(-1, 101, 0, 0)
	if c.Current() != 999 {
		t.Errorf("Current() = %d, want 999 (negative initial wrapped)", c.Current())
	}
	if c.Modulus() != DefaultModulus {
		t.Errorf("Modulus() = %d, want %d", c.Modulus(), DefaultModulus)
	}

	c.Step()
	c.Reset(1234)
	if c.Current() != 234 || c.StepCount() != 0 || c.UniqueVisited() != 1 {
		t.Errorf("after Reset(1234): current=%d steps=%d visited=%d", c.Current(), c.StepCount(), c.UniqueVisited())
	}
}

func TestValueAtStep(t *testing.T) {
	c := NewDefault()
	if got := c.ValueAtStep(1, 500); got != 399 {
		t.Errorf("ValueAtStep(1, 500) = %d, want 399", got)
	}
	if got := c.ValueAtStep(1000, 500); got != 500 {
		t.Errorf("ValueAtStep(1000, 500) = %d, want 500", got)
	}
	if c.StepCount() != 0 {
		t.Error("ValueAtStep must not mutate state")
	}
}

func TestLargeDecrementWraps(t *testing.T) {
	c := New(10, 2500, 1000, 10)
	// 10 - 2500 = -2490 -> 510
	if got := c.Step(); got != 510 {
		t.Errorf("Step() = %d, want 510", got)
	}
}
