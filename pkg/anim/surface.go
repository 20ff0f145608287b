package anim

import (
	"errors"
	"math"

	"github.com/decker502/modfly/pkg/params"
)

// ErrSurfaceUnavailable 绘图表面暂时不可用（尚未分配或尺寸为零）
//
// Animator 把它当作跳过本帧的信号，下一帧自动重试。
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// ErrAlreadyMounted 对已挂载的 Animator 再次调用 Mount
var ErrAlreadyMounted = errors.New("animator already mounted")

// Surface 可绘制表面
//
// Mount 时获取，Unmount 时 Release 且只 Release 一次。
type Surface interface {
	Size() (w, h int)
	Resize(w, h int)
	Draw(f *Frame) error
	Release()
}

// Frame 绘制一帧所需的全部数据
//
// History 是快照，Surface 可以安全持有到下一帧。
type Frame struct {
	Index         uint64
	Width, Height int

	Seed      int
	StepCount int
	Modulus   int
	Bundle    params.Bundle
	History   []int

	Clock float64
	Flap  float64 // 含呼吸摆动的有效开合度 ∈ [0, 1]
	X, Y  float64 // 身体中心（像素）
	Scale float64 // 生物尺寸（像素）
}

// BaseScale 基础尺寸 = min(w, h) * factor；尺寸非正时返回 0
func BaseScale(w, h int, factor float64) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	return math.Min(float64(w), float64(h)) * factor
}
