// Package params 从整数种子推导出蝴蝶的全部视觉参数
//
// Derive 是纯函数：相同的种子永远得到逐位相同的 Bundle。
// 这里不允许出现任何真随机数，所有"看起来随机"的字段都来自
// (seed * 质数) mod 1000 或者 Jitter/Hash01 这样的确定性函数。
package params

import (
	"fmt"
	"math"

	"github.com/decker502/modfly/pkg/utils"
)

// SeedRange 种子取值范围 [0, SeedRange)
const SeedRange = 1000

// ColorSchemeCount 配色方案数量（由主题决定每个方案的色相偏移）
const ColorSchemeCount = 4

const tau = 2 * math.Pi

// Bundle 单个种子对应的全部视觉参数
type Bundle struct {
	// Seed 折回 [0, 1000) 之后的种子
	Seed int `yaml:"seed"`

	// 颜色基准
	Hue        float64 `yaml:"hue"`        // 色相（度），[0, 360)
	Saturation float64 `yaml:"saturation"` // 饱和度（百分比），[0, 100]
	Lightness  float64 `yaml:"lightness"`  // 亮度（百分比），[0, 100]

	VeinBend  float64 `yaml:"veinBend"`  // 翅脉弯曲程度，>= 0
	SpotSeed  int     `yaml:"spotSeed"`  // 斑点布局种子
	SpotCount int     `yaml:"spotCount"` // 斑点数量，>= 2

	SizeMultiplier float64 `yaml:"sizeMultiplier"` // 整体尺寸倍率，> 0
	OffsetX        float64 `yaml:"offsetX"`        // 相对画布中心的目标水平偏移（像素）
	OffsetY        float64 `yaml:"offsetY"`        // 相对画布中心的目标垂直偏移（像素）

	FlapAngle   float64 `yaml:"flapAngle"`   // 目标翅膀开合度 ∈ [0, 1]
	FlapSpeed   float64 `yaml:"flapSpeed"`   // 动画速度倍率，> 0
	StripeWidth float64 `yaml:"stripeWidth"` // 翅脉描边宽度，> 0
	DistortSeed int     `yaml:"distortSeed"` // 手绘抖动种子

	TatterAmount float64 `yaml:"tatterAmount"` // 破损程度 ∈ [0, 1)，仅 acid 主题使用
	ColorScheme  int     `yaml:"colorScheme"`  // 配色方案索引 ∈ [0, ColorSchemeCount)
}

// WrapSeed 将任意整数折回 [0, SeedRange)
func WrapSeed(seed int) int {
	v := seed % SeedRange
	if v < 0 {
		v += SeedRange
	}
	return v
}

// Derive 根据种子计算参数
//
// 对任意整数都有定义，超出 [0, 1000) 的种子先取模。
// 各个字段使用不同的质数乘子，使字段之间互不相关。
func Derive(seed int) Bundle {
	v := WrapSeed(seed)
	p := float64(v) / SeedRange
	frac := func(mul int) float64 {
		return float64((v*mul)%SeedRange) / SeedRange
	}

	return Bundle{
		Seed: v,

		Hue:        utils.WrapDegrees(15 + float64(v%300)/300*40 + 12*math.Sin(p*tau)),
		Saturation: utils.Clamp(55+float64(v%250)/250*35, 0, 100),
		Lightness:  utils.Clamp(35+float64(v%200)/200*20, 0, 100),

		VeinBend:  0.6 + frac(3)*0.8,
		SpotSeed:  (v * 13) % SeedRange,
		SpotCount: 3 + (v*7)%5,

		SizeMultiplier: 0.8 + frac(11)*0.35,
		OffsetX:        math.Sin(p*tau*3) * 40,
		OffsetY:        math.Cos(p*tau*2) * 30,

		FlapAngle:   math.Abs(math.Sin(p * tau)),
		FlapSpeed:   0.5 + frac(7)*2,
		StripeWidth: 2 + frac(17)*3,
		DistortSeed: (v * 31) % SeedRange,

		TatterAmount: frac(23),
		ColorScheme:  ((v * 19) % SeedRange) % ColorSchemeCount,
	}
}

// Validate 检查所有字段都在文档约定的范围内
//
// 仅用于测试和 inspect 工具；Derive 本身从不返回错误。
func (b Bundle) Validate() error {
	floats := []struct {
		name   string
		v      float64
		lo, hi float64
	}{
		{"hue", b.Hue, 0, 360},
		{"saturation", b.Saturation, 0, 100},
		{"lightness", b.Lightness, 0, 100},
		{"veinBend", b.VeinBend, 0, math.MaxFloat64},
		{"sizeMultiplier", b.SizeMultiplier, math.SmallestNonzeroFloat64, math.MaxFloat64},
		{"offsetX", b.OffsetX, -40, 40},
		{"offsetY", b.OffsetY, -30, 30},
		{"flapAngle", b.FlapAngle, 0, 1},
		{"flapSpeed", b.FlapSpeed, math.SmallestNonzeroFloat64, math.MaxFloat64},
		{"stripeWidth", b.StripeWidth, math.SmallestNonzeroFloat64, math.MaxFloat64},
		{"tatterAmount", b.TatterAmount, 0, 1},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s is not finite: %v", f.name, f.v)
		}
		if f.v < f.lo || f.v > f.hi {
			return fmt.Errorf("%s out of range [%g, %g]: %v", f.name, f.lo, f.hi, f.v)
		}
	}
	if b.Hue >= 360 {
		return fmt.Errorf("hue must wrap below 360: %v", b.Hue)
	}
	if b.SpotCount < 2 {
		return fmt.Errorf("spotCount must be >= 2: %d", b.SpotCount)
	}
	if b.Seed < 0 || b.Seed >= SeedRange {
		return fmt.Errorf("seed not wrapped: %d", b.Seed)
	}
	if b.SpotSeed < 0 || b.SpotSeed >= SeedRange || b.DistortSeed < 0 || b.DistortSeed >= SeedRange {
		return fmt.Errorf("secondary seeds out of range: spot=%d distort=%d", b.SpotSeed, b.DistortSeed)
	}
	if b.ColorScheme < 0 || b.ColorScheme >= ColorSchemeCount {
		return fmt.Errorf("colorScheme out of range: %d", b.ColorScheme)
	}
	return nil
}

// Memo 按种子缓存最近一次推导结果
//
// 种子不变时直接返回缓存的 Bundle；零值可直接使用。
type Memo struct {
	valid  bool
	seed   int
	bundle Bundle
}

// Get 返回 seed 对应的 Bundle，命中缓存时不重新计算
func (m *Memo) Get(seed int) Bundle {
	if m.valid && m.seed == seed {
		return m.bundle
	}
	m.seed = seed
	m.bundle = Derive(seed)
	m.valid = true
	return m.bundle
}
