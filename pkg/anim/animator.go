package anim

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/decker502/modfly/pkg/params"
	"github.com/decker502/modfly/pkg/utils"
)

// maxFrameDelta 单帧最多推进的时间，防止窗口卡顿后动画瞬移
const maxFrameDelta = 0.25

// Options 动画器参数
type Options struct {
	FrameDelta       float64 // 参考帧率下每帧的时钟推进量
	FlapSmoothing    float64
	PoseSmoothing    float64
	ReferenceRate    float64
	BreatheAmplitude float64
	BreatheFrequency float64
	ScaleFactor      float64
	HistoryCap       int
	Modulus          int
}

// DefaultOptions 与 data/modfly.yaml 默认值一致
func DefaultOptions() Options {
	return Options{
		FrameDelta:       0.016,
		FlapSmoothing:    0.08,
		PoseSmoothing:    0.05,
		ReferenceRate:    60,
		BreatheAmplitude: 0.03,
		BreatheFrequency: 1.5,
		ScaleFactor:      0.2,
		HistoryCap:       DefaultHistoryCap,
		Modulus:          params.SeedRange,
	}
}

// State 动画状态，只由 Animator 自己修改
type State struct {
	Clock float64
	Flap  float64 // 平滑后的开合度（不含呼吸）
	X, Y  float64
	Scale float64
}

// Animator 逐帧动画循环
//
// 状态机: Unmounted → Running (Mount) → Unmounted (Unmount)
type Animator struct {
	opts Options

	memo      params.Memo
	bundle    params.Bundle
	seed      int
	stepCount int
	hasInput  bool

	state   State
	history *History

	surface Surface
	sched   Scheduler
	handle  Handle
	mounted bool

	// needsSnap 挂载时表面尺寸无效，第一帧有效画面直接落在目标上
	needsSnap bool
	skipped   int
	frames    uint64
}

// New 创建动画器（未挂载）
func New(opts Options) *Animator {
	if opts.ReferenceRate <= 0 {
		opts.ReferenceRate = 60
	}
	if opts.Modulus <= 0 {
		opts.Modulus = params.SeedRange
	}
	a := &Animator{
		opts:    opts,
		history: NewHistory(opts.HistoryCap),
	}
	a.bundle = a.memo.Get(0)
	return a
}

// SetInput 更新外部输入
//
// 种子变化时重新推导参数包并把新种子记入历史；动画状态保持不变，
// 只有目标改变，所以画面会平滑过渡到新的目标。
func (a *Animator) SetInput(seed, stepCount int) {
	wrapped := params.WrapSeed(seed)
	changed := !a.hasInput || wrapped != a.seed
	a.seed = wrapped
	a.stepCount = stepCount
	a.hasInput = true
	if !changed {
		return
	}
	a.bundle = a.memo.Get(wrapped)
	a.history.Push(wrapped)
	if a.mounted {
		log.Printf("[Animator] seed -> %03d (step %d, flap %.2f, speed %.2fx)",
			wrapped, stepCount, a.bundle.FlapAngle, a.bundle.FlapSpeed)
	}
}

// Mount 挂载表面并注册帧回调
//
// 初始状态直接取当前目标值，避免挂载瞬间的跳变。
func (a *Animator) Mount(surface Surface, sched Scheduler) error {
	if a.mounted {
		return ErrAlreadyMounted
	}
	if surface == nil || sched == nil {
		return fmt.Errorf("mount: surface and scheduler are required")
	}
	a.surface = surface
	a.sched = sched
	a.mounted = true
	a.skipped = 0

	w, h := surface.Size()
	a.state.Clock = 0
	a.needsSnap = !a.snapToTargets(w, h)
	a.handle = sched.ScheduleNextFrame(a.tick)
	log.Printf("[Animator] mounted on %dx%d surface, seed %03d", w, h, a.seed)
	return nil
}

// Unmount 取消帧回调并释放表面；重复调用无副作用
func (a *Animator) Unmount() {
	if !a.mounted {
		return
	}
	a.sched.Cancel(a.handle)
	a.handle = 0
	a.surface.Release()
	a.surface = nil
	a.sched = nil
	a.mounted = false
	log.Printf("[Animator] unmounted after %d frames", a.frames)
}

// Resize 转发视口尺寸变化；布局每帧根据尺寸重新计算，状态不重置
func (a *Animator) Resize(w, h int) {
	if !a.mounted {
		return
	}
	ow, oh := a.surface.Size()
	if ow == w && oh == h {
		return
	}
	a.surface.Resize(w, h)
	log.Printf("[Animator] resize %dx%d -> %dx%d", ow, oh, w, h)
	if a.needsSnap {
		a.needsSnap = !a.snapToTargets(a.surface.Size())
	}
}

// Mounted 是否处于运行状态
func (a *Animator) Mounted() bool { return a.mounted }

// Seed 当前种子（已折回）
func (a *Animator) Seed() int { return a.seed }

// StepCount 当前步数
func (a *Animator) StepCount() int { return a.stepCount }

// Bundle 当前种子的参数包
func (a *Animator) Bundle() params.Bundle { return a.bundle }

// History 种子历史快照（最新在末尾）
func (a *Animator) History() []int { return a.history.Values() }

// Frames 已成功绘制的帧数
func (a *Animator) Frames() uint64 { return a.frames }

// targets 当前参数包在 (w, h) 画面下的目标位姿
func (a *Animator) targets(w, h int) (x, y, scale float64) {
	x = float64(w)/2 + a.bundle.OffsetX
	y = float64(h)/2 + a.bundle.OffsetY
	scale = BaseScale(w, h, a.opts.ScaleFactor) * a.bundle.SizeMultiplier
	return x, y, scale
}

// snapToTargets 把状态直接设为目标值；尺寸无效时返回 false
func (a *Animator) snapToTargets(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	a.state.Flap = a.bundle.FlapAngle
	a.state.X, a.state.Y, a.state.Scale = a.targets(w, h)
	return true
}

// advance 推进时钟并让状态向目标靠近一步
func (a *Animator) advance(dt float64, w, h int) {
	o := a.opts
	a.state.Clock += o.FrameDelta * a.bundle.FlapSpeed * dt * o.ReferenceRate

	flapAlpha := utils.SmoothingAlpha(o.FlapSmoothing, dt, o.ReferenceRate)
	poseAlpha := utils.SmoothingAlpha(o.PoseSmoothing, dt, o.ReferenceRate)

	tx, ty, ts := a.targets(w, h)
	a.state.Flap = utils.Approach(a.state.Flap, a.bundle.FlapAngle, flapAlpha)
	a.state.X = utils.Approach(a.state.X, tx, poseAlpha)
	a.state.Y = utils.Approach(a.state.Y, ty, poseAlpha)
	a.state.Scale = utils.Approach(a.state.Scale, ts, poseAlpha)
}

// effectiveFlap 平滑开合度叠加呼吸摆动
func (a *Animator) effectiveFlap() float64 {
	breathe := math.Sin(a.state.Clock*a.opts.BreatheFrequency) * a.opts.BreatheAmplitude
	return utils.Clamp01(a.state.Flap + breathe)
}

// tick 帧回调
func (a *Animator) tick(dt float64) {
	if !a.mounted {
		return
	}
	defer a.reschedule()

	if math.IsNaN(dt) || dt <= 0 {
		dt = 1 / a.opts.ReferenceRate
	}
	dt = math.Min(dt, maxFrameDelta)

	w, h := a.surface.Size()
	if w <= 0 || h <= 0 {
		a.skip("non-positive size")
		return
	}
	if a.needsSnap {
		a.snapToTargets(w, h)
		a.needsSnap = false
	}

	a.advance(dt, w, h)
	frame := &Frame{
		Index:     a.frames,
		Width:     w,
		Height:    h,
		Seed:      a.seed,
		StepCount: a.stepCount,
		Modulus:   a.opts.Modulus,
		Bundle:    a.bundle,
		History:   a.history.Values(),
		Clock:     a.state.Clock,
		Flap:      a.effectiveFlap(),
		X:         a.state.X,
		Y:         a.state.Y,
		Scale:     a.state.Scale,
	}

	if err := a.surface.Draw(frame); err != nil {
		if errors.Is(err, ErrSurfaceUnavailable) {
			a.skip("surface unavailable")
			return
		}
		log.Printf("[Animator] draw failed: %v", err)
		return
	}
	if a.skipped > 0 {
		log.Printf("[Animator] surface recovered after %d skipped frames", a.skipped)
		a.skipped = 0
	}
	a.frames++
}

// skip 记录跳过的帧，只在连续跳帧的第一帧打日志
func (a *Animator) skip(reason string) {
	if a.skipped == 0 {
		log.Printf("[Animator] skipping frames: %s", reason)
	}
	a.skipped++
}

func (a *Animator) reschedule() {
	if a.mounted {
		a.handle = a.sched.ScheduleNextFrame(a.tick)
	}
}
