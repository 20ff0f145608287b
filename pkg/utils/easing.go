package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（粒子曲线的 EaseOut 插值）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出
// 特点：两端平缓，中间最快（用于呼吸摆动）
// 公式：f(t) = -(cos(πt) - 1) / 2
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 区间内
// NaN 输入返回 lo，保证下游计算不会被 NaN 污染
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 将 v 限制在 [0, 1] 区间内
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// WrapDegrees 将角度折回 [0, 360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SmoothingAlpha 将"每帧固定比例"的平滑系数换算为与帧率无关的系数
//
// 原始做法是每帧 value += (target - value) * factor，效果依赖帧率。
// 这里把 factor 视为参考帧率 refRate 下的每帧系数，按实际经过的时间 dt 换算：
//
//	α = 1 - (1 - factor)^(dt * refRate)
//
// 在 dt = 1/refRate 时结果恰好等于 factor。
//
// 参数:
//   - factor: 参考帧率下的每帧平滑系数，取值 (0, 1]
//   - dt: 实际经过的时间（秒）
//   - refRate: 参考帧率（Hz），如 60
//
// 返回:
//   - 本次更新应使用的插值系数 ∈ [0, 1]
func SmoothingAlpha(factor, dt, refRate float64) float64 {
	if dt <= 0 || factor <= 0 {
		return 0
	}
	if factor >= 1 {
		return 1
	}
	if refRate <= 0 {
		return factor
	}
	return 1 - math.Pow(1-factor, dt*refRate)
}

// Approach 按系数 alpha 让 value 向 target 靠近一步（指数平滑）
// alpha ∈ [0, 1]，结果永远位于 value 与 target 之间，不会越过目标
func Approach(value, target, alpha float64) float64 {
	return value + (target-value)*Clamp01(alpha)
}
