// Package app 提供渲染器的 ebiten 宿主
//
// 把取模序列、动画器和画布串起来，实现 ebiten.Game。
// main.go 只负责解析命令行并调用 NewApp。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/modfly/pkg/anim"
	"github.com/decker502/modfly/pkg/config"
	"github.com/decker502/modfly/pkg/render"
	"github.com/decker502/modfly/pkg/sequence"
)

// hudLineHeight ebitenutil 调试字体的行高
const hudLineHeight = 16

// Config 定义应用启动配置
//
// 字符串字段为空时使用配置文件中的值；Seed 与 AutoStep 用负数表示
// 使用配置文件，零值是有效取值（种子 0、关闭自动步进）。
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 应用配置路径，为空使用 config.DefaultAppConfigPath
	ConfigPath string
	// Theme 主题名，为空使用配置文件中的主题
	Theme string
	// Seed 初始种子，< 0 使用配置文件中的 sequence.initial
	Seed int
	// AutoStep 自动步进间隔（秒），< 0 使用配置文件中的值，0 关闭
	AutoStep float64
	// Trail 强制开启拖影模式
	Trail bool
}

// App 渲染器宿主，实现 ebiten.Game 接口
type App struct {
	cfg      *config.AppConfig
	cycle    *sequence.Cycle
	animator *anim.Animator
	canvas   *render.Canvas
	sched    *FrameScheduler

	autoStep  float64
	sinceStep float64
	width     int
	height    int
	closed    bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultAppConfigPath
	}
	appCfg, err := config.LoadAppConfig(path)
	if err != nil {
		return nil, fmt.Errorf("应用配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载应用配置: %s", path)

	themeName := appCfg.Theme
	if cfg.Theme != "" {
		themeName = cfg.Theme
	}
	theme, err := render.LoadTheme(themeName)
	if err != nil {
		return nil, fmt.Errorf("主题 %q 加载失败: %w", themeName, err)
	}

	seq := appCfg.Sequence
	cycle := sequence.New(cfg.initialSeed(seq.Initial), seq.Decrement, seq.Modulus, seq.HistoryCap)

	animator := anim.New(animOptions(appCfg))
	animator.SetInput(cycle.Current(), cycle.StepCount())

	renderer, err := render.NewRenderer(theme, render.Options{
		Trail:     appCfg.Trail || cfg.Trail,
		TrailFade: appCfg.TrailFade,
	})
	if err != nil {
		return nil, fmt.Errorf("渲染器创建失败: %w", err)
	}

	a := &App{
		cfg:      appCfg,
		cycle:    cycle,
		animator: animator,
		canvas:   render.NewCanvas(renderer, appCfg.Window.Width, appCfg.Window.Height),
		sched:    NewFrameScheduler(ebiten.TPS()),
		autoStep: cfg.autoStepInterval(appCfg.AutoStep),
		width:    appCfg.Window.Width,
		height:   appCfg.Window.Height,
	}
	if err := animator.Mount(a.canvas, a.sched); err != nil {
		renderer.Release()
		return nil, fmt.Errorf("动画器挂载失败: %w", err)
	}

	log.Printf("[App] 初始化完成: theme=%s seed=%03d autoStep=%.2fs", theme.Name, cycle.Current(), a.autoStep)
	return a, nil
}

// initialSeed 命令行种子优先，负数时使用配置文件的值
func (c Config) initialSeed(fromFile int) int {
	if c.Seed >= 0 {
		return c.Seed
	}
	return fromFile
}

// autoStepInterval 命令行间隔优先，负数时使用配置文件的值
func (c Config) autoStepInterval(fromFile float64) float64 {
	if c.AutoStep >= 0 {
		return c.AutoStep
	}
	return fromFile
}

// animOptions 把 YAML 中的动画配置转换为 anim.Options
func animOptions(c *config.AppConfig) anim.Options {
	a := c.Animation
	return anim.Options{
		FrameDelta:       a.FrameDelta,
		FlapSmoothing:    a.FlapSmoothing,
		PoseSmoothing:    a.PoseSmoothing,
		ReferenceRate:    a.ReferenceRate,
		BreatheAmplitude: a.BreatheAmplitude,
		BreatheFrequency: a.BreatheFrequency,
		ScaleFactor:      a.ScaleFactor,
		HistoryCap:       a.HistoryCap,
		Modulus:          c.Sequence.Modulus,
	}
}

// Update 实现 ebiten.Game 接口
//
// 先处理自动步进，再驱动调度器执行动画器注册的帧回调。
func (a *App) Update() error {
	if a.closed {
		return ebiten.Termination
	}
	a.advanceSequence(1 / float64(ebiten.TPS()))
	a.sched.Tick()
	return nil
}

// advanceSequence 累计时间，满 autoStep 秒前进一步
func (a *App) advanceSequence(dt float64) {
	if a.autoStep <= 0 {
		return
	}
	a.sinceStep += dt
	if a.sinceStep < a.autoStep {
		return
	}
	a.sinceStep -= a.autoStep
	if a.sinceStep >= a.autoStep {
		// 卡顿后不补步
		a.sinceStep = 0
	}
	a.Step()
}

// Step 序列前进一步并更新动画器输入
func (a *App) Step() {
	next := a.cycle.Step()
	a.animator.SetInput(next, a.cycle.StepCount())
}

// Draw 实现 ebiten.Game 接口
func (a *App) Draw(screen *ebiten.Image) {
	if img := a.canvas.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	for i, line := range a.HUD().Lines() {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*hudLineHeight)
	}
}

// Layout 实现 ebiten.Game 接口
//
// 画布跟随窗口尺寸；尺寸变化时通知动画器。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.animator.Resize(outsideWidth, outsideHeight)
		log.Printf("[App] 窗口尺寸变化: %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Close 卸载动画器并释放画布；可重复调用
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.animator.Unmount()
	log.Printf("[App] 已关闭，共绘制 %d 帧", a.animator.Frames())
}

// Config 生效的应用配置
func (a *App) Config() *config.AppConfig { return a.cfg }

// HUD 当前状态的信息面板
func (a *App) HUD() HUD {
	b := a.animator.Bundle()
	return HUD{
		Seed:      a.cycle.Current(),
		StepCount: a.cycle.StepCount(),
		Visited:   a.cycle.UniqueVisited(),
		Modulus:   a.cycle.Modulus(),
		Decrement: a.cfg.Sequence.Decrement,
		FlapAngle: b.FlapAngle,
		FlapSpeed: b.FlapSpeed,
		Complete:  a.cycle.CycleComplete(),
	}
}
