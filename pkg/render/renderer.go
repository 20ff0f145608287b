package render

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/modfly/internal/particle"
	"github.com/decker502/modfly/pkg/anim"
	"github.com/decker502/modfly/pkg/decor"
)

// Options 渲染选项
type Options struct {
	// Trail 拖尾模式：背景改为半透明覆盖，画面留下残影
	Trail bool
	// TrailFade 拖尾模式下每帧背景覆盖的不透明度 ∈ (0, 1]
	TrailFade float64
	// CosmeticSeed 装饰随机源的种子，0 表示按当前时间
	CosmeticSeed int64
}

// Renderer 场景合成器
//
// 绘制顺序固定：
//  1. 背景（或拖尾覆盖）
//  2. 浮尘
//  3. 径向光晕
//  4. 进度环、环绕读数、脉冲点、闪光
//  5. 远侧翅膀、近侧翅膀、身体与触角
//  6. 扫描线、故障条纹、闪白
type Renderer struct {
	theme    *Theme
	opts     Options
	faces    *FaceCache
	cosmetic *Cosmetic
	motes    []particle.Mote

	mask  maskPainter
	curve curveMemo
}

// NewRenderer 创建渲染器
func NewRenderer(theme *Theme, opts Options) (*Renderer, error) {
	if theme == nil {
		return nil, fmt.Errorf("new renderer: nil theme")
	}
	if opts.TrailFade <= 0 || opts.TrailFade > 1 {
		opts.TrailFade = 1
	}
	faces, err := NewFaceCache()
	if err != nil {
		return nil, err
	}

	cosmetic := NewTimeCosmetic()
	if opts.CosmeticSeed != 0 {
		cosmetic = NewCosmetic(opts.CosmeticSeed)
	}

	r := &Renderer{
		theme:    theme,
		opts:     opts,
		faces:    faces,
		cosmetic: cosmetic,
		motes:    theme.Ambient.Spawn(cosmetic.Rand()),
	}
	log.Printf("[Renderer] theme %q (%s), %d motes, trail=%v", theme.Name, theme.Mode, len(r.motes), opts.Trail)
	return r, nil
}

// Theme 当前主题
func (r *Renderer) Theme() *Theme { return r.theme }

// Paint 把一帧画到 dst 上
func (r *Renderer) Paint(dst *ebiten.Image, f *anim.Frame) {
	if f == nil || f.Width <= 0 || f.Height <= 0 {
		return
	}
	base := decor.BaseColor(f.Bundle, r.theme.HueShift(f.Bundle.ColorScheme))

	r.paintBackground(dst, f)
	r.paintAmbient(dst, f, base.H)
	if r.theme.Glow {
		r.paintGlow(dst, f, base)
	}
	if r.theme.Ring {
		r.paintRing(dst, f)
	}
	r.paintCreature(dst, f, base)
	r.paintEffects(dst, f)
}

// Release 释放离屏资源
func (r *Renderer) Release() {
	r.mask.release()
}
