package particle

import (
	"fmt"
	"math"
	"math/rand"
)

// goldenSeed 相邻粒子种子的间隔，让粒子在画面上均匀散开
const goldenSeed = 137.508

// margin 粒子在画面上下边缘外留出的回绕空间（像素）
const margin = 20.0

// DefaultFieldSpec 与默认主题一致的浮尘场
func DefaultFieldSpec() FieldSpec {
	return FieldSpec{
		Count:        30,
		ScratchEvery: 3,
		FallSpeed:    "10",
		Size:         "[0.8 3.8]",
		Alpha:        "0,0.06 0.25,0.1 0.75,0.02 1,0.06 Smooth",
		Twinkle:      "0.111",
		Spin:         "0.3",
		Drift:        "0",
	}
}

// Compile 解析 FieldSpec 中的所有数值字符串
//
// 空字段回落到 DefaultFieldSpec 中的同名字段；任何字段解析失败都返回带字段名的错误。
func Compile(spec FieldSpec) (Field, error) {
	def := DefaultFieldSpec()
	if spec.Count < 0 {
		return Field{}, fmt.Errorf("ambient count must be >= 0, got %d", spec.Count)
	}

	f := Field{Count: spec.Count, ScratchEvery: spec.ScratchEvery}
	fields := []struct {
		name     string
		raw, def string
		dst      *Value
	}{
		{"fallSpeed", spec.FallSpeed, def.FallSpeed, &f.FallSpeed},
		{"size", spec.Size, def.Size, &f.Size},
		{"alpha", spec.Alpha, def.Alpha, &f.Alpha},
		{"twinkle", spec.Twinkle, def.Twinkle, &f.Twinkle},
		{"spin", spec.Spin, def.Spin, &f.Spin},
		{"drift", spec.Drift, def.Drift, &f.Drift},
	}
	for _, fd := range fields {
		raw := fd.raw
		if raw == "" {
			raw = fd.def
		}
		v, err := ParseValue(raw)
		if err != nil {
			return Field{}, fmt.Errorf("ambient %s: %w", fd.name, err)
		}
		*fd.dst = v
	}
	if f.Size.IsCurve() {
		return Field{}, fmt.Errorf("ambient size must be a fixed value or range")
	}
	return f, nil
}

// Spawn 生成全部粒子
//
// 区间字段在这里取值，rng 为 nil 时取区间中点（测试用，结果确定）。
func (f Field) Spawn(rng *rand.Rand) []Mote {
	motes := make([]Mote, f.Count)
	for i := range motes {
		motes[i] = Mote{
			Index:   i,
			Seed:    float64(i) * goldenSeed,
			Size:    math.Max(0.1, f.Size.Sample(rng)),
			Spin:    f.Spin.Sample(rng),
			Twinkle: f.Twinkle.Sample(rng),
			Drift:   f.Drift.Sample(rng),
			Scratch: f.ScratchEvery > 0 && i%f.ScratchEvery == 0,
		}
	}
	return motes
}

// Place 计算粒子在 (w, h) 画面、时钟 clock 时的位置
//
// 水平位置固定，垂直方向匀速下落并在 [-margin, h+margin) 内回绕。
// 水平噪声漂移由调用方叠加（它不属于确定性布局）。
func (f Field) Place(m Mote, w, h, clock float64) Placement {
	if w <= 0 || h <= 0 {
		return Placement{}
	}
	fall := f.FallSpeed.At(0)
	phase := clock*m.Twinkle + float64(m.Index)/(2*math.Pi)
	phase -= math.Floor(phase)
	return Placement{
		X:        wrap(m.Seed*7.3, w),
		Y:        wrap(m.Seed*3.7+clock*fall, h+2*margin) - margin,
		Rotation: clock*m.Spin + float64(m.Index),
		Alpha:    math.Max(0, f.Alpha.At(phase)),
	}
}

func wrap(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}
