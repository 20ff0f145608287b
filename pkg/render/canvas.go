package render

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/modfly/pkg/anim"
)

// Canvas 离屏绘图表面，实现 anim.Surface
//
// 画面先画到自己持有的图像上，宿主每帧把它贴到屏幕；
// 这样拖尾模式可以在帧与帧之间保留内容。
type Canvas struct {
	renderer *Renderer
	img      *ebiten.Image
	w, h     int
	released bool
}

var _ anim.Surface = (*Canvas)(nil)

// NewCanvas 创建表面；尺寸非正时暂不分配图像
func NewCanvas(r *Renderer, w, h int) *Canvas {
	c := &Canvas{renderer: r}
	c.Resize(w, h)
	return c
}

// Size 实现 anim.Surface
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Resize 实现 anim.Surface
//
// 重新分配图像；拖尾模式下把旧内容复制到新图像左上角。
func (c *Canvas) Resize(w, h int) {
	if c.released {
		return
	}
	if c.img != nil && w == c.w && h == c.h {
		return
	}
	old := c.img
	c.w, c.h = w, h
	c.img = nil
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
		if old != nil && c.renderer.opts.Trail {
			c.img.DrawImage(old, nil)
		}
	}
	if old != nil {
		old.Deallocate()
	}
}

// Draw 实现 anim.Surface；图像未分配时返回 anim.ErrSurfaceUnavailable
func (c *Canvas) Draw(f *anim.Frame) error {
	if c.img == nil || c.w <= 0 || c.h <= 0 {
		return anim.ErrSurfaceUnavailable
	}
	c.renderer.Paint(c.img, f)
	return nil
}

// Release 实现 anim.Surface；只生效一次
func (c *Canvas) Release() {
	if c.released {
		return
	}
	c.released = true
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.renderer.Release()
	log.Printf("[Canvas] released %dx%d", c.w, c.h)
}

// Image 当前图像，未分配或已释放时为 nil
func (c *Canvas) Image() *ebiten.Image { return c.img }

// Released 是否已释放
func (c *Canvas) Released() bool { return c.released }
