package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decker502/modfly/pkg/embedded"
)

// DefaultAppConfigPath 内置应用配置的位置
const DefaultAppConfigPath = "data/modfly.yaml"

// AppConfig 应用配置
//
// 配置文件位置: data/modfly.yaml（可用 --config 指向磁盘文件覆盖）
type AppConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Sequence  SequenceConfig  `yaml:"sequence"`
	Animation AnimationConfig `yaml:"animation"`

	// AutoStep 自动步进间隔（秒），0 表示不自动步进
	AutoStep float64 `yaml:"autoStep"`

	// Theme 默认主题名，对应 data/themes/<name>.yaml
	Theme string `yaml:"theme"`

	// Trail 拖影模式：每帧只用半透明背景覆盖上一帧
	Trail bool `yaml:"trail"`
	// TrailFade 拖影模式下背景覆盖的不透明度 (0, 1]
	TrailFade float64 `yaml:"trailFade"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// SequenceConfig 取模序列配置
type SequenceConfig struct {
	Initial    int `yaml:"initial"`
	Decrement  int `yaml:"decrement"`
	Modulus    int `yaml:"modulus"`
	HistoryCap int `yaml:"historyCap"`
}

// AnimationConfig 动画器配置
type AnimationConfig struct {
	// FrameDelta 时钟每帧推进量（乘以 flapSpeed 之前），按 ReferenceRate 计
	FrameDelta float64 `yaml:"frameDelta"`
	// FlapSmoothing 开合度平滑系数（参考帧率下的每帧系数）
	FlapSmoothing float64 `yaml:"flapSmoothing"`
	// PoseSmoothing 位置与尺寸平滑系数
	PoseSmoothing float64 `yaml:"poseSmoothing"`
	// ReferenceRate 平滑系数对应的参考帧率（Hz）
	ReferenceRate float64 `yaml:"referenceRate"`

	BreatheAmplitude float64 `yaml:"breatheAmplitude"`
	BreatheFrequency float64 `yaml:"breatheFrequency"`

	// ScaleFactor 基础尺寸 = min(w, h) * ScaleFactor
	ScaleFactor float64 `yaml:"scaleFactor"`

	// HistoryCap 动画器保留的最近种子数
	HistoryCap int `yaml:"historyCap"`
}

// DefaultAppConfig 返回内置默认值
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{Width: 960, Height: 720, Title: "Modulo Butterfly", Resizable: true},
		Sequence: SequenceConfig{
			Initial:    500,
			Decrement:  101,
			Modulus:    1000,
			HistoryCap: 100,
		},
		Animation: AnimationConfig{
			FrameDelta:       0.016,
			FlapSmoothing:    0.08,
			PoseSmoothing:    0.05,
			ReferenceRate:    60,
			BreatheAmplitude: 0.03,
			BreatheFrequency: 1.5,
			ScaleFactor:      0.2,
			HistoryCap:       20,
		},
		AutoStep:  1.2,
		Theme:     "gothic",
		TrailFade: 0.25,
	}
}

// LoadAppConfig 加载应用配置
//
// 以 DefaultAppConfig 为底，YAML 中出现的字段覆盖默认值。
//
// 参数:
//   - path: "data/..." 路径优先从嵌入资源读取，其余路径从磁盘读取
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app config: %w", err)
	}
	return ParseAppConfig(data)
}

// ParseAppConfig 从 YAML 文本解析应用配置并校验
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Sequence.Modulus <= 0 {
		return fmt.Errorf("sequence modulus must be positive, got %d", c.Sequence.Modulus)
	}
	if c.Sequence.HistoryCap <= 0 || c.Animation.HistoryCap <= 0 {
		return fmt.Errorf("history caps must be positive (sequence=%d, animation=%d)",
			c.Sequence.HistoryCap, c.Animation.HistoryCap)
	}

	a := c.Animation
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"flapSmoothing", a.FlapSmoothing},
		{"poseSmoothing", a.PoseSmoothing},
	} {
		if f.v <= 0 || f.v > 1 {
			return fmt.Errorf("animation %s must be in (0, 1], got %v", f.name, f.v)
		}
	}
	if a.FrameDelta <= 0 || a.ReferenceRate <= 0 || a.ScaleFactor <= 0 {
		return fmt.Errorf("animation frameDelta/referenceRate/scaleFactor must be positive")
	}
	if a.BreatheAmplitude < 0 {
		return fmt.Errorf("animation breatheAmplitude must be >= 0, got %v", a.BreatheAmplitude)
	}

	if c.AutoStep < 0 {
		return fmt.Errorf("autoStep must be >= 0, got %v", c.AutoStep)
	}
	if strings.TrimSpace(c.Theme) == "" {
		return fmt.Errorf("theme name is empty")
	}
	if c.TrailFade <= 0 || c.TrailFade > 1 {
		return fmt.Errorf("trailFade must be in (0, 1], got %v", c.TrailFade)
	}
	return nil
}

// readConfigFile "data/" 前缀且已嵌入时读嵌入资源，否则读磁盘
func readConfigFile(path string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
