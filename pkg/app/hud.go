package app

import (
	"fmt"
	"math"
)

// HUD 左上角信息面板的数据
type HUD struct {
	Seed      int
	StepCount int
	Visited   int
	Modulus   int
	Decrement int
	FlapAngle float64
	FlapSpeed float64
	Complete  bool // 模数内的值已全部访问
}

// Lines 面板文本，每个元素一行
//
// ebitenutil 的调试字体只含 ASCII，这里不使用其他字符。
func (h HUD) Lines() []string {
	step := fmt.Sprintf("Step %d - %d/%d", h.StepCount, h.Visited, h.Modulus)
	if h.Complete {
		step += " complete"
	}
	return []string{
		fmt.Sprintf("Seed %03d", h.Seed),
		step,
		fmt.Sprintf("Angle %d%%", int(math.Round(h.FlapAngle*100))),
		fmt.Sprintf("Speed %.1fx", h.FlapSpeed),
		fmt.Sprintf("n -> (n - %d) mod %d", h.Decrement, h.Modulus),
	}
}
