package render

import (
	"math/rand"
	"time"

	"github.com/ojrac/opensimplex-go"
)

// Cosmetic 纯装饰用的随机源
//
// 浮尘的初始大小、漂移噪声、故障条纹都从这里取值。它与蝴蝶的几何完全无关：
// 同一种子下翅膀、斑点、翅脉永远逐位一致，只有这些背景细节每次运行不同。
type Cosmetic struct {
	rng   *rand.Rand
	noise opensimplex.Noise
}

// NewCosmetic 以固定种子创建（测试用）
func NewCosmetic(seed int64) *Cosmetic {
	return &Cosmetic{
		rng:   rand.New(rand.NewSource(seed)),
		noise: opensimplex.New(seed),
	}
}

// NewTimeCosmetic 以当前时间为种子创建
func NewTimeCosmetic() *Cosmetic {
	return NewCosmetic(time.Now().UnixNano())
}

// Rand 底层随机数发生器
func (c *Cosmetic) Rand() *rand.Rand { return c.rng }

// Noise 二维噪声 ∈ [-1, 1]
func (c *Cosmetic) Noise(x, y float64) float64 {
	return c.noise.Eval2(x, y)
}
