package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/modfly/internal/particle"
	"github.com/decker502/modfly/pkg/embedded"
	"github.com/decker502/modfly/pkg/params"
)

// ThemeDir 内置主题目录
const ThemeDir = "data/themes"

// ThemeConfig 渲染主题
//
// 配置文件位置: data/themes/<name>.yaml
// 颜色均为 HSL（色相为度，饱和度/亮度为百分比），渐变停靠点为相对基础色的偏移。
type ThemeConfig struct {
	Name string `yaml:"name"`

	// Mode 翅膀造型: "bezier" 或 "curve"
	Mode string `yaml:"mode"`

	Background ColorConfig `yaml:"background"`

	Upper []StopConfig `yaml:"upper"`
	Lower []StopConfig `yaml:"lower"`

	// Schemes 每个配色方案的额外色相偏移；为空表示不区分方案
	Schemes []float64 `yaml:"schemes"`

	Outline OutlineConfig `yaml:"outline"`
	Glow    GlowConfig    `yaml:"glow"`
	Ring    RingConfig    `yaml:"ring"`
	Body    BodyConfig    `yaml:"body"`
	Effects EffectsConfig `yaml:"effects"`

	// Tatter 是否按 TatterAmount 给翅膀咬出缺口
	Tatter bool `yaml:"tatter"`

	// CurveParticles curve 模式下每侧翅膀的散点数
	CurveParticles int `yaml:"curveParticles"`

	Ambient particle.FieldSpec `yaml:"ambient"`
}

// ColorConfig 绝对颜色
type ColorConfig struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	L float64 `yaml:"l"`
	A float64 `yaml:"a"` // 省略时为 1
}

// UnmarshalYAML 省略 a 的颜色默认不透明
func (c *ColorConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain ColorConfig
	raw := plain{A: 1}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*c = ColorConfig(raw)
	return nil
}

// StopConfig 相对基础色的渐变停靠点
type StopConfig struct {
	Offset float64 `yaml:"offset"`
	DH     float64 `yaml:"dh"`
	DS     float64 `yaml:"ds"`
	DL     float64 `yaml:"dl"`
	Alpha  float64 `yaml:"alpha"` // 省略时为 1
}

// UnmarshalYAML 省略 alpha 的停靠点默认不透明
func (s *StopConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain StopConfig
	raw := plain{Alpha: 1}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*s = StopConfig(raw)
	return nil
}

// OutlineConfig 翅膀描边
type OutlineConfig struct {
	Enabled bool        `yaml:"enabled"`
	Ink     ColorConfig `yaml:"ink"`
}

// GlowConfig 生物背后的径向光晕
type GlowConfig struct {
	Enabled     bool         `yaml:"enabled"`
	RadiusScale float64      `yaml:"radiusScale"` // 光晕半径 = scale * RadiusScale
	Stops       []StopConfig `yaml:"stops"`
}

// RingConfig 进度环、环绕读数、脉冲点与闪光
type RingConfig struct {
	Enabled     bool        `yaml:"enabled"`
	RadiusScale float64     `yaml:"radiusScale"` // 环半径 = scale * RadiusScale
	Color       ColorConfig `yaml:"color"`
	Readouts    int         `yaml:"readouts"` // 环绕读数最多显示个数
	Dots        int         `yaml:"dots"`
	Flash       bool        `yaml:"flash"`
}

// BodyConfig 身体配色
type BodyConfig struct {
	Fill   ColorConfig `yaml:"fill"`
	Eye    ColorConfig `yaml:"eye"`
	TipHue float64     `yaml:"tipHue"`
}

// EffectsConfig 后期效果开关
type EffectsConfig struct {
	Scanlines     bool    `yaml:"scanlines"`
	ScanlineAlpha float64 `yaml:"scanlineAlpha"`
	Flicker       bool    `yaml:"flicker"`
	Glitch        bool    `yaml:"glitch"`
}

// DefaultThemeConfig 内置的 gothic 主题（赛璐璐 + 粗描边）
func DefaultThemeConfig() *ThemeConfig {
	return &ThemeConfig{
		Name:       "gothic",
		Mode:       "bezier",
		Background: ColorConfig{H: 20, S: 8, L: 4, A: 1},
		Upper: []StopConfig{
			{Offset: 0, DH: 8, DL: 18, Alpha: 1},
			{Offset: 0.45, DL: 5, Alpha: 1},
			{Offset: 0.46, DH: -5, DS: -10, DL: -8, Alpha: 1},
			{Offset: 1, DH: -12, DS: -15, DL: -18, Alpha: 1},
		},
		Lower: []StopConfig{
			{Offset: 0, DH: 3, DS: -5, DL: 12, Alpha: 1},
			{Offset: 0.5, DH: -4, DS: -8, DL: -2, Alpha: 1},
			{Offset: 0.51, DH: -10, DS: -15, DL: -12, Alpha: 1},
			{Offset: 1, DH: -15, DS: -20, DL: -22, Alpha: 1},
		},
		Outline: OutlineConfig{Enabled: true, Ink: ColorConfig{H: 0, S: 0, L: 2, A: 1}},
		Glow: GlowConfig{
			Enabled:     true,
			RadiusScale: 3.5,
			Stops: []StopConfig{
				{Offset: 0, DS: -20, DL: -10, Alpha: 0.08},
				{Offset: 0.4, DS: -30, DL: -20, Alpha: 0.04},
				{Offset: 1, DL: -100, Alpha: 0},
			},
		},
		Ring: RingConfig{
			Enabled:     true,
			RadiusScale: 3.2,
			Color:       ColorConfig{H: 28, S: 70, L: 50, A: 1},
			Readouts:    12,
			Dots:        8,
			Flash:       true,
		},
		Body: BodyConfig{
			Fill:   ColorConfig{H: 0, S: 0, L: 6, A: 1},
			Eye:    ColorConfig{H: 30, S: 60, L: 35, A: 1},
			TipHue: 25,
		},
		Effects:        EffectsConfig{Scanlines: true, ScanlineAlpha: 0.03, Flicker: true},
		CurveParticles: 260,
		Ambient:        particle.DefaultFieldSpec(),
	}
}

// ThemePath 主题名对应的嵌入路径
func ThemePath(name string) string {
	return ThemeDir + "/" + name + ".yaml"
}

// ThemeNames 列出内置主题
func ThemeNames() ([]string, error) {
	return embedded.Names(ThemeDir, ".yaml")
}

// LoadThemeConfig 加载主题配置（以 DefaultThemeConfig 为底）
func LoadThemeConfig(path string) (*ThemeConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme config: %w", err)
	}
	return ParseThemeConfig(data)
}

// LoadNamedTheme 按名称加载内置主题，Name 以文件名为准
func LoadNamedTheme(name string) (*ThemeConfig, error) {
	cfg, err := LoadThemeConfig(ThemePath(name))
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	cfg.Name = name
	return cfg, nil
}

// ParseThemeConfig 从 YAML 文本解析主题并校验
func ParseThemeConfig(data []byte) (*ThemeConfig, error) {
	cfg := DefaultThemeConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme config: %w", err)
	}
	return cfg, nil
}

// Validate 验证主题有效性
//
// 检查：
//   - mode 只能是 bezier 或 curve
//   - 上下翅渐变非空，offset ∈ [0, 1] 且升序，alpha ∈ [0, 1]
//   - schemes 为空或恰好 params.ColorSchemeCount 个
//   - ambient 中的数值字符串都能解析
func (c *ThemeConfig) Validate() error {
	if c.Mode != "bezier" && c.Mode != "curve" {
		return fmt.Errorf("mode must be bezier or curve, got %q", c.Mode)
	}
	if err := validateStops("upper", c.Upper); err != nil {
		return err
	}
	if err := validateStops("lower", c.Lower); err != nil {
		return err
	}
	if c.Glow.Enabled {
		if c.Glow.RadiusScale <= 0 {
			return fmt.Errorf("glow radiusScale must be positive, got %v", c.Glow.RadiusScale)
		}
		if err := validateStops("glow", c.Glow.Stops); err != nil {
			return err
		}
	}
	if c.Ring.Enabled && (c.Ring.RadiusScale <= 0 || c.Ring.Readouts < 0 || c.Ring.Dots < 0) {
		return fmt.Errorf("ring radiusScale must be positive and counts >= 0")
	}
	if n := len(c.Schemes); n != 0 && n != params.ColorSchemeCount {
		return fmt.Errorf("schemes must list %d hue offsets, got %d", params.ColorSchemeCount, n)
	}
	if c.Effects.ScanlineAlpha < 0 || c.Effects.ScanlineAlpha > 1 {
		return fmt.Errorf("scanlineAlpha must be in [0, 1], got %v", c.Effects.ScanlineAlpha)
	}
	if c.CurveParticles < 0 {
		return fmt.Errorf("curveParticles must be >= 0, got %d", c.CurveParticles)
	}
	if _, err := particle.Compile(c.Ambient); err != nil {
		return err
	}
	return nil
}

func validateStops(name string, stops []StopConfig) error {
	if len(stops) == 0 {
		return fmt.Errorf("%s gradient has no stops", name)
	}
	prev := -1.0
	for i, s := range stops {
		if s.Offset < 0 || s.Offset > 1 {
			return fmt.Errorf("%s stop %d offset %v outside [0, 1]", name, i, s.Offset)
		}
		if s.Offset < prev {
			return fmt.Errorf("%s stops must be sorted by offset (stop %d)", name, i)
		}
		if s.Alpha < 0 || s.Alpha > 1 {
			return fmt.Errorf("%s stop %d alpha %v outside [0, 1]", name, i, s.Alpha)
		}
		prev = s.Offset
	}
	return nil
}

// SchemeHueShift 配色方案对应的色相偏移
func (c *ThemeConfig) SchemeHueShift(scheme int) float64 {
	if len(c.Schemes) == 0 || scheme < 0 {
		return 0
	}
	return c.Schemes[scheme%len(c.Schemes)]
}
