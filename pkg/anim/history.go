package anim

// DefaultHistoryCap 默认保留的种子数
const DefaultHistoryCap = 20

// History 有界先进先出队列，最新的在末尾
type History struct {
	cap    int
	values []int
}

// NewHistory 创建容量为 capacity 的队列，<= 0 时使用 DefaultHistoryCap
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCap
	}
	return &History{cap: capacity, values: make([]int, 0, capacity)}
}

// Push 追加一个值，超出容量时淘汰最旧的
func (h *History) Push(v int) {
	if len(h.values) == h.cap {
		copy(h.values, h.values[1:])
		h.values = h.values[:h.cap-1]
	}
	h.values = append(h.values, v)
}

// Values 返回副本
func (h *History) Values() []int {
	out := make([]int, len(h.values))
	copy(out, h.values)
	return out
}

// Len 当前长度
func (h *History) Len() int { return len(h.values) }

// Cap 容量
func (h *History) Cap() int { return h.cap }

// Last 最新的值；为空时 ok = false
func (h *History) Last() (v int, ok bool) {
	if len(h.values) == 0 {
		return 0, false
	}
	return h.values[len(h.values)-1], true
}
