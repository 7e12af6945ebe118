// Package events 定义输入事件和事件总线
//
// 所有事件在 Ebitengine 的 Update 协程上同步分发，监听器不需要加锁，
// 但必须只做简单的字段写入，不能阻塞。
package events

// Type 事件类型
type Type int

const (
	// PointerMove 鼠标在视口内移动
	PointerMove Type = iota
	// PointerLeave 鼠标离开视口或窗口失去焦点
	PointerLeave
	// TouchMove 第一个触点移动（或刚按下）
	TouchMove
	// TouchEnd 所有触点释放
	TouchEnd
	// Scroll 页面滚动偏移变化，ScrollY 为新的绝对偏移
	Scroll
	// Resize 视口尺寸变化
	Resize
	// Click 鼠标点击或轻触
	Click
	// Wheel 滚动请求（滚轮或翻页键），DeltaY > 0 表示向下
	Wheel
)

var typeNames = [...]string{
	PointerMove:  "PointerMove",
	PointerLeave: "PointerLeave",
	TouchMove:    "TouchMove",
	TouchEnd:     "TouchEnd",
	Scroll:       "Scroll",
	Resize:       "Resize",
	Click:        "Click",
	Wheel:        "Wheel",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

// Event 输入事件
// 坐标均为视口坐标（不含滚动偏移）
type Event struct {
	Type Type

	// X, Y 指针/触点位置（PointerMove、TouchMove、Click）
	X, Y float64

	// ScrollY 页面滚动偏移（Scroll）
	ScrollY float64

	// DeltaY 滚动请求量（Wheel）
	DeltaY float64

	// Width, Height 视口尺寸（Resize）
	Width, Height int
}
