// Package render 把一帧动画状态画到 ebiten 图像上
//
// Renderer 按固定顺序合成整幅画面：背景、浮尘、光晕、进度环与读数、
// 翅膀与身体、后期效果。几何与配色都来自 shape/decor 的纯函数，
// 本包只负责转换成 ebiten 的三角形绘制；唯一的随机性（浮尘初始值、
// 故障条纹、噪声漂移）来自 Cosmetic，不影响蝴蝶本身。
package render

import (
	"fmt"

	"github.com/decker502/modfly/internal/particle"
	"github.com/decker502/modfly/pkg/config"
	"github.com/decker502/modfly/pkg/decor"
	"github.com/decker502/modfly/pkg/shape"
)

// Theme 编译后的主题
type Theme struct {
	Name string
	Mode shape.Mode

	Background      decor.HSL
	BackgroundAlpha float64

	Upper []decor.StopSpec
	Lower []decor.StopSpec

	schemes []float64

	Outline bool
	Ink     decor.HSL
	InkA    float64

	Glow       bool
	GlowRadius float64
	GlowStops  []decor.StopSpec

	Ring       bool
	RingRadius float64
	RingColor  decor.HSL
	Readouts   int
	Dots       int
	Flash      bool

	BodyFill decor.HSL
	Eye      decor.HSL
	TipHue   float64

	Scanlines     bool
	ScanlineAlpha float64
	Flicker       bool
	Glitch        bool

	Tatter         bool
	CurveParticles int

	Ambient particle.Field
}

// CompileTheme 把配置转换成渲染用的主题
//
// 上下翅渐变为空时使用赛璐璐默认配色。
func CompileTheme(cfg *config.ThemeConfig) (*Theme, error) {
	if cfg == nil {
		return nil, fmt.Errorf("compile theme: nil config")
	}
	ambient, err := particle.Compile(cfg.Ambient)
	if err != nil {
		return nil, fmt.Errorf("compile theme %q: %w", cfg.Name, err)
	}

	t := &Theme{
		Name:            cfg.Name,
		Mode:            shape.ParseMode(cfg.Mode),
		Background:      hsl(cfg.Background),
		BackgroundAlpha: cfg.Background.A,
		Upper:           stops(cfg.Upper),
		Lower:           stops(cfg.Lower),
		schemes:         append([]float64(nil), cfg.Schemes...),
		Outline:         cfg.Outline.Enabled,
		Ink:             hsl(cfg.Outline.Ink),
		InkA:            cfg.Outline.Ink.A,
		Glow:            cfg.Glow.Enabled,
		GlowRadius:      cfg.Glow.RadiusScale,
		GlowStops:       stops(cfg.Glow.Stops),
		Ring:            cfg.Ring.Enabled,
		RingRadius:      cfg.Ring.RadiusScale,
		RingColor:       hsl(cfg.Ring.Color),
		Readouts:        cfg.Ring.Readouts,
		Dots:            cfg.Ring.Dots,
		Flash:           cfg.Ring.Flash,
		BodyFill:        hsl(cfg.Body.Fill),
		Eye:             hsl(cfg.Body.Eye),
		TipHue:          cfg.Body.TipHue,
		Scanlines:       cfg.Effects.Scanlines,
		ScanlineAlpha:   cfg.Effects.ScanlineAlpha,
		Flicker:         cfg.Effects.Flicker,
		Glitch:          cfg.Effects.Glitch,
		Tatter:          cfg.Tatter,
		CurveParticles:  cfg.CurveParticles,
		Ambient:         ambient,
	}
	if len(t.Upper) == 0 {
		t.Upper = decor.CelStops(shape.UpperWing)
	}
	if len(t.Lower) == 0 {
		t.Lower = decor.CelStops(shape.LowerWing)
	}
	if t.Readouts > maxReadouts {
		t.Readouts = maxReadouts
	}
	return t, nil
}

// LoadTheme 加载并编译内置主题
func LoadTheme(name string) (*Theme, error) {
	cfg, err := config.LoadNamedTheme(name)
	if err != nil {
		return nil, err
	}
	return CompileTheme(cfg)
}

// HueShift 配色方案对应的额外色相偏移
func (t *Theme) HueShift(scheme int) float64 {
	if len(t.schemes) == 0 || scheme < 0 {
		return 0
	}
	return t.schemes[scheme%len(t.schemes)]
}

// Stops 部位对应的渐变定义
func (t *Theme) Stops(part shape.Part) []decor.StopSpec {
	if part == shape.LowerWing {
		return t.Lower
	}
	return t.Upper
}

func hsl(c config.ColorConfig) decor.HSL {
	return decor.HSL{H: c.H, S: c.S, L: c.L}
}

func stops(in []config.StopConfig) []decor.StopSpec {
	out := make([]decor.StopSpec, 0, len(in))
	for _, s := range in {
		out = append(out, decor.StopSpec{Offset: s.Offset, DH: s.DH, DS: s.DS, DL: s.DL, Alpha: s.Alpha})
	}
	return out
}
