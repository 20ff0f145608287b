// Package sequence 实现驱动渲染器的取模序列生成器
//
// 递推公式: x(n+1) = (x(n) - decrement) mod modulus
//
// 默认参数 (500, 101, 1000) 下，由于 gcd(101, 1000) = 1，
// 序列会在 1000 步内恰好访问 [0, 1000) 中的每个值一次。
// 渲染器只从这里读取 (seed, stepCount)，序列本身不影响绘制逻辑。
package sequence

// 默认参数
const (
	DefaultInitial    = 500
	DefaultDecrement  = 101
	DefaultModulus    = 1000
	DefaultHistoryCap = 100
)

// Cycle 取模序列状态
//
// 非线程安全：由游戏主循环单线程驱动。
type Cycle struct {
	initial    int
	decrement  int
	modulus    int
	historyCap int

	current   int
	stepCount int
	history   []int
	visited   map[int]struct{}
}

// New 创建取模序列
//
// 参数:
//   - initial: 初始值，会被折回 [0, modulus)
//   - decrement: 每步减去的值
//   - modulus: 模数，<= 0 时使用 DefaultModulus
//   - historyCap: 历史记录容量，<= 0 时使用 DefaultHistoryCap
func New(initial, decrement, modulus, historyCap int) *Cycle {
	if modulus <= 0 {
		modulus = DefaultModulus
	}
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	c := &Cycle{
		initial:    wrap(initial, modulus),
		decrement:  decrement,
		modulus:    modulus,
		historyCap: historyCap,
	}
	c.Reset(c.initial)
	return c
}

// NewDefault 使用默认参数创建序列 (500, 101, 1000)
func NewDefault() *Cycle {
	return New(DefaultInitial, DefaultDecrement, DefaultModulus, DefaultHistoryCap)
}

// wrap 非负取模
func wrap(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

// Step 前进一步并返回新值
func (c *Cycle) Step() int {
	next := wrap(c.current-c.decrement, c.modulus)
	c.current = next
	c.stepCount++

	c.history = append(c.history, next)
	if len(c.history) > c.historyCap {
		// 丢弃最旧的记录，保持顺序（最新在末尾）
		c.history = append(c.history[:0], c.history[len(c.history)-c.historyCap:]...)
	}
	c.visited[next] = struct{}{}
	return next
}

// Reset 重置序列到指定初始值
func (c *Cycle) Reset(initial int) {
	initial = wrap(initial, c.modulus)
	c.current = initial
	c.stepCount = 0
	c.history = make([]int, 0, c.historyCap+1)
	c.history = append(c.history, initial)
	c.visited = map[int]struct{}{initial: {}}
}

// Current 返回当前值
func (c *Cycle) Current() int {
	return c.current
}

// StepCount 返回已经走过的步数
func (c *Cycle) StepCount() int {
	return c.stepCount
}

// Modulus 返回模数
func (c *Cycle) Modulus() int {
	return c.modulus
}

// Initial 返回构造时的初始值
func (c *Cycle) Initial() int {
	return c.initial
}

// History 返回历史记录副本（最新在末尾）
func (c *Cycle) History() []int {
	out := make([]int, len(c.history))
	copy(out, c.history)
	return out
}

// UniqueVisited 返回已访问过的不同值的数量
func (c *Cycle) UniqueVisited() int {
	return len(c.visited)
}

// CycleComplete 所有值是否都已访问过
func (c *Cycle) CycleComplete() bool {
	return len(c.visited) == c.modulus
}

// ValueAtStep 计算从 start 出发走 steps 步后的值，不修改状态
func (c *Cycle) ValueAtStep(steps, start int) int {
	v := wrap(start, c.modulus)
	for i := 0; i < steps; i++ {
		v = wrap(v-c.decrement, c.modulus)
	}
	return v
}
