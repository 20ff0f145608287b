package app

import (
	"time"

	"github.com/decker502/modfly/pkg/anim"
)

// FrameScheduler 基于 ebiten tick 的帧调度器，实现 anim.Scheduler
//
// App.Update 每个 tick 调用一次 Tick，执行上一帧注册的回调；
// dt 取两次 Tick 之间的真实时间，第一次 Tick 使用 fallback。
type FrameScheduler struct {
	now      func() time.Time
	fallback float64
	last     time.Time

	next    anim.Handle
	handle  anim.Handle
	pending anim.FrameFunc
}

// NewFrameScheduler 创建调度器；tps 为 ebiten 的逻辑帧率
func NewFrameScheduler(tps int) *FrameScheduler {
	if tps <= 0 {
		tps = 60
	}
	return &FrameScheduler{now: time.Now, fallback: 1 / float64(tps)}
}

// ScheduleNextFrame 实现 anim.Scheduler
func (s *FrameScheduler) ScheduleNextFrame(fn anim.FrameFunc) anim.Handle {
	s.next++
	s.handle = s.next
	s.pending = fn
	return s.handle
}

// Cancel 实现 anim.Scheduler
func (s *FrameScheduler) Cancel(h anim.Handle) {
	if h != 0 && h == s.handle {
		s.pending = nil
		s.handle = 0
	}
}

// Tick 执行待执行的回调，返回本次的 dt（无回调时为 0）
func (s *FrameScheduler) Tick() float64 {
	now := s.now()
	dt := s.fallback
	if !s.last.IsZero() {
		dt = now.Sub(s.last).Seconds()
	}
	s.last = now

	fn := s.pending
	if fn == nil {
		return 0
	}
	s.pending = nil
	s.handle = 0
	fn(dt)
	return dt
}

// Pending 是否有待执行的回调
func (s *FrameScheduler) Pending() bool { return s.pending != nil }
