// cmd/theme_gallery/main.go
// 主题对比程序 - 同一个种子在所有内置主题下并排渲染
//
// 用法：
//
//	go run ./cmd/theme_gallery --seed 500 --interval 1.5
//
// 需要在项目根目录运行：主题从磁盘上的 data/themes 读取。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/modfly/pkg/anim"
	"github.com/decker502/modfly/pkg/config"
	"github.com/decker502/modfly/pkg/embedded"
	"github.com/decker502/modfly/pkg/render"
	"github.com/decker502/modfly/pkg/sequence"
)

const (
	cellWidth  = 320
	cellHeight = 320
	margin     = 10
	headerH    = 40
)

// cell 一个主题的独立渲染管线
type cell struct {
	name     string
	animator *anim.Animator
	canvas   *render.Canvas
	sched    *anim.ManualScheduler
}

type Gallery struct {
	cells    []*cell
	cycle    *sequence.Cycle
	interval float64
	elapsed  float64
}

func newGallery(seed int, interval float64) (*Gallery, error) {
	names, err := config.ThemeNames()
	if err != nil {
		return nil, fmt.Errorf("列出主题失败: %w", err)
	}

	g := &Gallery{
		cycle:    sequence.New(seed, sequence.DefaultDecrement, sequence.DefaultModulus, sequence.DefaultHistoryCap),
		interval: interval,
	}
	for _, name := range names {
		theme, err := render.LoadTheme(name)
		if err != nil {
			return nil, fmt.Errorf("加载主题 %s 失败: %w", name, err)
		}
		r, err := render.NewRenderer(theme, render.Options{})
		if err != nil {
			return nil, err
		}
		c := &cell{
			name:     name,
			animator: anim.New(anim.DefaultOptions()),
			canvas:   render.NewCanvas(r, cellWidth, cellHeight),
			sched:    anim.NewManualScheduler(),
		}
		c.animator.SetInput(g.cycle.Current(), 0)
		if err := c.animator.Mount(c.canvas, c.sched); err != nil {
			return nil, err
		}
		g.cells = append(g.cells, c)
		log.Printf("✓ 主题 %s", name)
	}
	return g, nil
}

func (g *Gallery) Update() error {
	dt := 1 / float64(ebiten.TPS())
	g.elapsed += dt
	if g.interval > 0 && g.elapsed >= g.interval {
		g.elapsed = 0
		next := g.cycle.Step()
		for _, c := range g.cells {
			c.animator.SetInput(next, g.cycle.StepCount())
		}
	}
	for _, c := range g.cells {
		c.sched.Advance(dt)
	}
	return nil
}

func (g *Gallery) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Seed %03d  Step %d", g.cycle.Current(), g.cycle.StepCount()), margin, margin)
	for i, c := range g.cells {
		x := margin + i*(cellWidth+margin)
		ebitenutil.DebugPrintAt(screen, c.name, x, headerH-16)
		if img := c.canvas.Image(); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), headerH)
			screen.DrawImage(img, op)
		}
	}
}

func (g *Gallery) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size()
}

func (g *Gallery) size() (int, int) {
	n := len(g.cells)
	return margin + n*(cellWidth+margin), headerH + cellHeight + margin
}

func (g *Gallery) close() {
	for _, c := range g.cells {
		c.animator.Unmount()
	}
}

func main() {
	seed := flag.Int("seed", sequence.DefaultInitial, "起始种子")
	interval := flag.Float64("interval", 1.5, "自动步进间隔（秒），0 关闭")
	flag.Parse()

	embedded.Init(os.DirFS("."))

	g, err := newGallery(*seed, *interval)
	if err != nil {
		log.Fatal(err)
	}
	defer g.close()

	w, h := g.size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Modulo Butterfly - 主题对比")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
