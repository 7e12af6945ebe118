package components

// FollowerState 自定义光标状态
type FollowerState int

const (
	// FollowerResting 常态：朝向与拉伸由速度驱动
	FollowerResting FollowerState = iota
	// FollowerHovering 悬停文字/可交互元素：放大且冻结朝向与拉伸
	FollowerHovering
)

// String 用于日志和调试显示
func (s FollowerState) String() string {
	switch s {
	case FollowerResting:
		return "Resting"
	case FollowerHovering:
		return "Hovering"
	default:
		return "Unknown"
	}
}

// PointerFollowerComponent 自定义光标状态
//
// 原始采样由指针事件写入，平滑后的位置和速度由每帧的弹簧滤波更新。
type PointerFollowerComponent struct {
	// 原始指针采样（视口坐标）
	RawX, RawY float64
	// HasSample 是否收到过至少一次采样
	HasSample bool

	// RawVX, RawVY 原始速度：本次采样相对上次采样的位移（像素/采样）
	RawVX, RawVY float64

	// X, Y 平滑后的位置；PosVX, PosVY 为位置弹簧的内部速度
	X, Y         float64
	PosVX, PosVY float64

	// VX, VY 平滑后的速度；VelVX, VelVY 为速度弹簧的内部速度
	VX, VY       float64
	VelVX, VelVY float64

	// State 当前状态
	State FollowerState

	// Highlight 悬停高亮
	Highlight HoverHighlightComponent
}
