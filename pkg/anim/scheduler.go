// Package anim 实现逐帧动画循环
//
// Animator 持有唯一的动画状态（时钟、平滑后的开合度与位姿、种子历史），
// 通过注入的 Scheduler 注册"下一帧"回调，通过注入的 Surface 绘制。
// 两者都是接口，单元测试可以用 ManualScheduler 同步驱动每一帧。
//
// 整个包是单线程的：同一时刻只有一个帧回调在执行。
package anim

// FrameFunc 帧回调，dt 为距上一帧经过的真实时间（秒）
type FrameFunc func(dt float64)

// Handle 已注册回调的句柄，0 表示无效
type Handle uint64

// Scheduler 宿主环境提供的逐帧调度能力
//
// 每次 ScheduleNextFrame 只注册一次回调；回调执行后若要继续，需要再次注册。
type Scheduler interface {
	ScheduleNextFrame(fn FrameFunc) Handle
	Cancel(h Handle)
}

// ManualScheduler 同步调度器，用于测试和离线渲染
//
// 同一时刻最多保存一个待执行回调，Advance 取出并执行它。
type ManualScheduler struct {
	next    Handle
	pending FrameFunc
	handle  Handle

	// Scheduled/Cancelled 统计调用次数，便于断言
	Scheduled int
	Cancelled int
}

// NewManualScheduler 创建同步调度器
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// ScheduleNextFrame 实现 Scheduler；新注册会替换尚未执行的旧回调
func (s *ManualScheduler) ScheduleNextFrame(fn FrameFunc) Handle {
	s.next++
	s.pending = fn
	s.handle = s.next
	s.Scheduled++
	return s.handle
}

// Cancel 实现 Scheduler；句柄不匹配时忽略
func (s *ManualScheduler) Cancel(h Handle) {
	if h == 0 || h != s.handle {
		return
	}
	s.pending = nil
	s.handle = 0
	s.Cancelled++
}

// Pending 是否有待执行的回调
func (s *ManualScheduler) Pending() bool {
	return s.pending != nil
}

// Advance 执行待执行的回调，返回是否真正执行了
func (s *ManualScheduler) Advance(dt float64) bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	s.handle = 0
	fn(dt)
	return true
}

// Run 连续推进 n 帧，返回实际执行的帧数
func (s *ManualScheduler) Run(n int, dt float64) int {
	ran := 0
	for i := 0; i < n; i++ {
		if !s.Advance(dt) {
			break
		}
		ran++
	}
	return ran
}
