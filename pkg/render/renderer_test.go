package render

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/modfly/pkg/anim"
	"github.com/decker502/modfly/pkg/config"
	"github.com/decker502/modfly/pkg/decor"
	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/shape"
)

var shippedThemes = []string{"gothic", "clean", "acid", "curve"}

func loadTestTheme(t *testing.T, name string) *Theme {
	t.Helper()
	cfg, err := config.LoadThemeConfig("../../data/themes/" + name + ".yaml")
	if err != nil {
		t.Fatalf("load theme %s: %v", name, err)
	}
	theme, err := CompileTheme(cfg)
	if err != nil {
		t.Fatalf("compile theme %s: %v", name, err)
	}
	return theme
}

func newTestRenderer(t *testing.T, theme *Theme, opts Options) *Renderer {
	t.Helper()
	if opts.CosmeticSeed == 0 {
		opts.CosmeticSeed = 42
	}
	r, err := NewRenderer(theme, opts)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r
}

func testFrame(seed, w, h int, clock float64) *anim.Frame {
	b := params.Derive(seed)
	return &anim.Frame{
		Width:     w,
		Height:    h,
		Seed:      b.Seed,
		StepCount: 37,
		Modulus:   params.SeedRange,
		Bundle:    b,
		History:   []int{500, 399, 298, b.Seed},
		Clock:     clock,
		Flap:      b.FlapAngle,
		X:         float64(w)/2 + b.OffsetX,
		Y:         float64(h)/2 + b.OffsetY,
		Scale:     anim.BaseScale(w, h, 0.2) * b.SizeMultiplier,
	}
}

func TestCompileTheme(t *testing.T) {
	t.Run("默认主题", func(t *testing.T) {
		theme, err := CompileTheme(config.DefaultThemeConfig())
		if err != nil {
			t.Fatalf("CompileTheme() error = %v", err)
		}
		if theme.Mode != shape.ModeBezier || !theme.Outline || theme.Ambient.Count != 30 {
			t.Errorf("theme = %+v", theme)
		}
		if theme.HueShift(3) != 0 {
			t.Error("gothic has no colour schemes")
		}
	})

	t.Run("空渐变回落到赛璐璐配色", func(t *testing.T) {
		cfg := config.DefaultThemeConfig()
		cfg.Upper, cfg.Lower = nil, nil
		theme, err := CompileTheme(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if len(theme.Stops(shape.UpperWing)) != 4 || theme.Stops(shape.LowerWing)[1].Offset != 0.5 {
			t.Errorf("stops = %+v / %+v", theme.Upper, theme.Lower)
		}
	})

	t.Run("浮尘描述错误", func(t *testing.T) {
		cfg := config.DefaultThemeConfig()
		cfg.Ambient.Size = "[1"
		if _, err := CompileTheme(cfg); err == nil {
			t.Error("expected error for malformed ambient size")
		}
	})

	t.Run("nil", func(t *testing.T) {
		if _, err := CompileTheme(nil); err == nil {
			t.Error("expected error for nil config")
		}
	})

	t.Run("配色方案", func(t *testing.T) {
		theme := loadTestTheme(t, "acid")
		for scheme, want := range []float64{0, 90, 180, 270} {
			if got := theme.HueShift(scheme); got != want {
				t.Errorf("HueShift(%d) = %v, want %v", scheme, got, want)
			}
		}
		if !theme.Tatter || !theme.Glitch {
			t.Error("acid enables tatter and glitch")
		}
	})
}

func TestPaintShippedThemes(t *testing.T) {
	for _, name := range shippedThemes {
		t.Run(name, func(t *testing.T) {
			r := newTestRenderer(t, loadTestTheme(t, name), Options{})
			defer r.Release()
			dst := ebiten.NewImage(320, 240)
			defer dst.Deallocate()

			for _, seed := range []int{0, 250, 399, 500, 999} {
				for _, clock := range []float64{0, 0.5, 1.0, 17.3} {
					r.Paint(dst, testFrame(seed, 320, 240, clock))
				}
			}
		})
	}
}

func TestPaintDegenerateFrames(t *testing.T) {
	r := newTestRenderer(t, loadTestTheme(t, "gothic"), Options{})
	dst := ebiten.NewImage(64, 64)

	r.Paint(dst, nil)
	r.Paint(dst, &anim.Frame{})

	f := testFrame(1, 64, 64, 0)
	f.Scale = 0
	f.History = nil
	r.Paint(dst, f)
}

func TestCurveMemo(t *testing.T) {
	var m curveMemo
	b := params.Derive(123)
	first := m.get(b, 100)
	if len(first) == 0 || len(first) > 100 {
		t.Fatalf("scatter returned %d points", len(first))
	}
	again := m.get(b, 100)
	if &first[0] != &again[0] {
		t.Error("same seed should reuse cached points")
	}
	other := m.get(params.Derive(124), 100)
	if len(other) > 0 && &other[0] == &first[0] {
		t.Error("new seed should rescatter")
	}
}

func TestCanvasLifecycle(t *testing.T) {
	r := newTestRenderer(t, loadTestTheme(t, "clean"), Options{Trail: true, TrailFade: 0.25})

	c := NewCanvas(r, 0, 0)
	if err := c.Draw(testFrame(1, 0, 0, 0)); !errors.Is(err, anim.ErrSurfaceUnavailable) {
		t.Errorf("Draw on zero-size canvas error = %v", err)
	}
	if c.Image() != nil {
		t.Error("zero-size canvas should not allocate")
	}

	c.Resize(200, 100)
	if w, h := c.Size(); w != 200 || h != 100 {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if err := c.Draw(testFrame(1, 200, 100, 0)); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	c.Resize(300, 150)
	if b := c.Image().Bounds(); b.Dx() != 300 || b.Dy() != 150 {
		t.Errorf("image bounds = %v", b)
	}

	c.Release()
	c.Release()
	if !c.Released() || c.Image() != nil {
		t.Error("Release should drop the image")
	}
	c.Resize(10, 10)
	if c.Image() != nil {
		t.Error("released canvas must not reallocate")
	}
	if err := c.Draw(testFrame(1, 10, 10, 0)); !errors.Is(err, anim.ErrSurfaceUnavailable) {
		t.Errorf("Draw after release error = %v", err)
	}
}

func TestCanvasDrivenByAnimator(t *testing.T) {
	r := newTestRenderer(t, loadTestTheme(t, "gothic"), Options{})
	a := anim.New(anim.DefaultOptions())
	a.SetInput(500, 0)

	c := NewCanvas(r, 160, 120)
	sched := anim.NewManualScheduler()
	if err := a.Mount(c, sched); err != nil {
		t.Fatal(err)
	}
	sched.Run(5, 1.0/60)
	a.SetInput(399, 1)
	sched.Run(5, 1.0/60)
	if a.Frames() != 10 {
		t.Errorf("frames = %d, want 10", a.Frames())
	}
	a.Unmount()
	if !c.Released() {
		t.Error("unmount should release the canvas")
	}
}

func TestBandQuads(t *testing.T) {
	stops := decor.Gradient(decor.CelStops(shape.UpperWing), decor.HSL{H: 30, S: 60, L: 45})
	g := decor.LinearGradient{
		From:  shape.Point{X: 0, Y: 0},
		To:    shape.Point{X: 100, Y: 0},
		Stops: stops,
	}
	bounds := shape.Rect{Min: shape.Point{X: -10, Y: -5}, Max: shape.Point{X: 110, Y: 5}}

	vs, is := bandQuads(g, 0, 0, bounds)
	// 边界 -0.1、0、0.45、0.46、1、1.1 → 5 条色带
	if len(vs) != 20 || len(is) != 30 {
		t.Fatalf("vertices = %d indices = %d, want 20/30", len(vs), len(is))
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		minX = math.Min(minX, float64(v.DstX))
		maxX = math.Max(maxX, float64(v.DstX))
	}
	if minX > -10+1e-3 || maxX < 110-1e-3 {
		t.Errorf("bands cover [%v, %v], want at least [-10, 110]", minX, maxX)
	}

	t.Run("退化轴", func(t *testing.T) {
		g.To = g.From
		vs, _ := bandQuads(g, 0, 0, bounds)
		if len(vs) != 4 {
			t.Errorf("degenerate gradient should be a single band, got %d vertices", len(vs))
		}
		first := vs[0]
		for _, v := range vs {
			if v.ColorR != first.ColorR || v.ColorA != first.ColorA {
				t.Error("degenerate gradient should be solid")
			}
		}
	})
}

func TestFaceCache(t *testing.T) {
	fc, err := NewFaceCache()
	if err != nil {
		t.Fatal(err)
	}
	if fc.Face(12.9) != fc.Face(13.1) {
		t.Error("sizes within half a pixel should share a face")
	}
	fc.Face(8)
	if fc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fc.Len())
	}
}
