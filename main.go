package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/modfly/pkg/app"
	"github.com/decker502/modfly/pkg/embedded"
)

func main() {
	seed := flag.Int("seed", -1, "初始种子 [0, 1000)，-1 使用配置文件")
	theme := flag.String("theme", "", "主题名（gothic、clean、acid、curve）")
	configPath := flag.String("config", "", "应用配置文件路径")
	autoStep := flag.Float64("auto-step", -1, "自动步进间隔（秒），0 关闭，-1 使用配置文件")
	trail := flag.Bool("trail", false, "拖影模式")
	verbose := flag.Bool("verbose", false, "输出详细日志")
	flag.Parse()

	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Theme:      *theme,
		Seed:       *seed,
		AutoStep:   *autoStep,
		Trail:      *trail,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer a.Close()

	w := a.Config().Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	if w.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
