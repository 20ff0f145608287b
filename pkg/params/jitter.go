package params

import "math"

// Jitter 为坐标加上确定性的"手绘"抖动
//
// 公式: value + sin(seed * 137.508) * amount
// 137.508 为黄金角，让相邻整数种子的偏移分布得足够散。
// 同一 (seed, amount) 永远得到同一偏移，因此每帧的轮廓都完全一致，不会闪烁。
func Jitter(value, seed, amount float64) float64 {
	return value + math.Sin(seed*137.508)*amount
}

// Hash01 把 (seed, index) 映射到 [0, 1) 内的伪随机数
//
// 经典的 fract(sin(x) * 43758.5453) 哈希，用于散点采样等需要
// "像随机但可复现"的场合。
func Hash01(seed, index int) float64 {
	x := math.Sin(float64(seed)*12.9898+float64(index)*78.233) * 43758.5453
	f := x - math.Floor(x)
	if f >= 1 {
		// x 为极小负数时 x-floor(x) 会舍入到 1
		return 0
	}
	return f
}
