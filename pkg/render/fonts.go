package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomonobold"
)

// FaceCache 按字号缓存的等宽粗体字体
//
// 字体源只解析一次；字号按 0.5 像素取整，避免读数字号连续变化时无限增长。
type FaceCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewFaceCache 加载内置的 Go Mono Bold
func NewFaceCache() (*FaceCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &FaceCache{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face 返回指定字号的字体
func (c *FaceCache) Face(size float64) *text.GoTextFace {
	key := math.Round(size*2) / 2
	if face, ok := c.faces[key]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    c.source,
		Size:      key,
		Direction: text.DirectionLeftToRight,
	}
	c.faces[key] = face
	return face
}

// Len 已缓存的字号数
func (c *FaceCache) Len() int { return len(c.faces) }
