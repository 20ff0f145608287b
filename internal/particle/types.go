package particle

// FieldSpec 主题 YAML 中的环境粒子描述（ambient 节点）
//
// 所有数值字段都是 ParseValue 语法的字符串，留空取默认值。
type FieldSpec struct {
	// Count 粒子数量，0 表示关闭浮尘
	Count int `yaml:"count"`
	// ScratchEvery 每隔多少个粒子出现一条划痕（其余为圆点），<= 0 表示全是圆点
	ScratchEvery int `yaml:"scratchEvery"`

	FallSpeed string `yaml:"fallSpeed"` // 下落速度（像素 / 时钟单位）
	Size      string `yaml:"size"`      // 半径或划痕半长（像素）
	Alpha     string `yaml:"alpha"`     // 闪烁曲线，自变量为闪烁相位 [0, 1)
	Twinkle   string `yaml:"twinkle"`   // 闪烁频率（相位 / 时钟单位）
	Spin      string `yaml:"spin"`      // 自转速度（弧度 / 时钟单位）
	Drift     string `yaml:"drift"`     // 水平噪声漂移幅度（像素）
}

// Field 编译后的环境粒子场
type Field struct {
	Count        int
	ScratchEvery int

	FallSpeed Value
	Size      Value
	Alpha     Value
	Twinkle   Value
	Spin      Value
	Drift     Value
}

// Mote 单个浮尘粒子，生成后不再变化；位置由时钟推导
type Mote struct {
	Index   int
	Seed    float64 // 黄金角序列种子 i·137.508
	Size    float64
	Spin    float64
	Twinkle float64
	Drift   float64
	Scratch bool
}

// Placement 某一时刻粒子的绘制参数
type Placement struct {
	X, Y     float64
	Rotation float64
	Alpha    float64
}
