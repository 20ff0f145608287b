// Package particle 解析主题中环境粒子（浮尘、划痕）的数值描述并计算其布局
//
// 数值字符串沿用一套紧凑语法，可以写在 YAML 的任意字段里：
//   - 固定值: "10"
//   - 范围: "[0.8 3.8]"（生成粒子时在区间内取值）
//   - 关键帧: "0,0.02 0.5,0.1 1,0.02"（time,value 对，time ∈ [0, 1]）
//   - 关键帧 + 插值: "0,0 EaseOut 1,1"
package particle

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/decker502/modfly/pkg/utils"
)

// Keyframe 曲线上的一个关键帧
type Keyframe struct {
	Time  float64 // 归一化时间 [0, 1]
	Value float64
}

// 支持的插值方式
const (
	InterpLinear  = "Linear"
	InterpEaseIn  = "EaseIn"
	InterpEaseOut = "EaseOut"
	InterpSmooth  = "Smooth"
)

var interpolationKeywords = []string{InterpLinear, InterpEaseIn, InterpEaseOut, InterpSmooth}

// Value 解析后的数值描述
//
// Keyframes 非空时为曲线，否则为 [Min, Max] 区间（Min == Max 即固定值）。
type Value struct {
	Min, Max      float64
	Keyframes     []Keyframe
	Interpolation string
}

// Fixed 返回固定值描述
func Fixed(v float64) Value {
	return Value{Min: v, Max: v}
}

// IsCurve 是否为关键帧曲线
func (v Value) IsCurve() bool {
	return len(v.Keyframes) > 0
}

// Sample 在区间内取一个值；曲线取 t=0 处的值
func (v Value) Sample(rng *rand.Rand) float64 {
	if v.IsCurve() {
		return EvaluateKeyframes(v.Keyframes, 0, v.Interpolation)
	}
	return RandomInRange(rng, v.Min, v.Max)
}

// At 计算曲线在 t 处的值；区间描述返回区间中点
func (v Value) At(t float64) float64 {
	if v.IsCurve() {
		return EvaluateKeyframes(v.Keyframes, t, v.Interpolation)
	}
	return (v.Min + v.Max) / 2
}

// ParseValue 解析数值字符串
//
// 空串返回零值且不报错，调用方据此决定是否使用默认值。
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, nil
	}

	// 区间格式: "[min max]" 或 "[value]"
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Value{}, fmt.Errorf("unterminated range %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		nums, err := parseFloats(parts)
		if err != nil {
			return Value{}, fmt.Errorf("range %q: %w", s, err)
		}
		switch len(nums) {
		case 1:
			return Fixed(nums[0]), nil
		case 2:
			lo, hi := nums[0], nums[1]
			if lo > hi {
				lo, hi = hi, lo
			}
			return Value{Min: lo, Max: hi}, nil
		}
		return Value{}, fmt.Errorf("range %q must hold one or two numbers", s)
	}

	var interp string
	for _, kw := range interpolationKeywords {
		if strings.Contains(s, kw) {
			interp = kw
			s = strings.TrimSpace(strings.ReplaceAll(s, kw, ""))
			break
		}
	}

	if !strings.Contains(s, ",") {
		if interp != "" {
			return Value{}, fmt.Errorf("interpolation %s without keyframes", interp)
		}
		nums, err := parseFloats([]string{s})
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", s, err)
		}
		return Fixed(nums[0]), nil
	}

	fields := strings.Fields(s)
	keyframes := make([]Keyframe, 0, len(fields))
	for _, f := range fields {
		pair := strings.Split(f, ",")
		if len(pair) != 2 {
			return Value{}, fmt.Errorf("keyframe %q must be time,value", f)
		}
		nums, err := parseFloats(pair)
		if err != nil {
			return Value{}, fmt.Errorf("keyframe %q: %w", f, err)
		}
		if nums[0] < 0 || nums[0] > 1 {
			return Value{}, fmt.Errorf("keyframe %q: time outside [0, 1]", f)
		}
		keyframes = append(keyframes, Keyframe{Time: nums[0], Value: nums[1]})
	}
	sort.SliceStable(keyframes, func(i, j int) bool { return keyframes[i].Time < keyframes[j].Time })
	if interp == "" {
		interp = InterpLinear
	}
	return Value{Keyframes: keyframes, Interpolation: interp}, nil
}

func parseFloats(parts []string) ([]float64, error) {
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-finite number %q", p)
		}
		out[i] = v
	}
	return out, nil
}

// EvaluateKeyframes 计算曲线在 t ∈ [0, 1] 处的插值
//
// keyframes 必须按 Time 升序；t 落在第一个关键帧之前返回首值，之后返回末值。
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = utils.Clamp01(t)
	if t <= keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0, k1 := keyframes[i], keyframes[i+1]
		if t < k0.Time || t > k1.Time {
			continue
		}
		span := k1.Time - k0.Time
		if span <= 0 {
			return k1.Value
		}
		ratio := (t - k0.Time) / span
		switch interpolation {
		case InterpEaseIn:
			ratio = ratio * ratio
		case InterpEaseOut:
			ratio = utils.EaseOutCubic(ratio)
		case InterpSmooth:
			ratio = utils.EaseInOutSine(ratio)
		}
		return utils.Lerp(k0.Value, k1.Value, ratio)
	}

	return keyframes[len(keyframes)-1].Value
}

// RandomInRange 在 [min, max] 内取随机数；rng 为 nil 时返回中点
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	if rng == nil {
		return (min + max) / 2
	}
	return min + rng.Float64()*(max-min)
}
