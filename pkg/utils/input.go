// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputFrame 一帧的原始输入快照
//
// 由 ReadInputFrame 从 Ebitengine 读取；测试中可以直接构造，
// 从而在没有窗口的情况下驱动输入系统。
type InputFrame struct {
	// CursorX, CursorY 鼠标位置（视口坐标）
	CursorX, CursorY int
	// Focused 窗口是否拥有焦点
	Focused bool

	// MousePressed 鼠标左键是否按下
	MousePressed bool

	// Touching 是否有活动的触点
	Touching bool
	// TouchX, TouchY 第一个触点位置
	TouchX, TouchY int

	// WheelY 本帧滚轮增量（向上为正，与 Ebitengine 一致）
	WheelY float64

	// Keys 本帧刚按下的按键
	Keys []ebiten.Key
}

// ReadInputFrame 读取当前帧的输入状态
// 同时支持鼠标和触摸输入，触摸以第一个触点为准
func ReadInputFrame() InputFrame {
	f := InputFrame{Focused: ebiten.IsFocused()}

	f.CursorX, f.CursorY = ebiten.CursorPosition()
	f.MousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		f.Touching = true
		f.TouchX, f.TouchY = ebiten.TouchPosition(touchIDs[0])
	}

	_, f.WheelY = ebiten.Wheel()
	f.Keys = inpututil.AppendJustPressedKeys(nil)

	return f
}

// CursorInside 鼠标是否位于 width×height 的视口内
func (f InputFrame) CursorInside(width, height int) bool {
	return f.Focused &&
		f.CursorX >= 0 && f.CursorY >= 0 &&
		f.CursorX < width && f.CursorY < height
}

// ============================================================================
// 拖拽状态跟踪 - 区分轻触（点击）和拖动（滚动页面）
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（视口坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置
	CurrentX, CurrentY int
	// LastX, LastY 上一帧位置（用于计算逐帧位移）
	LastX, LastY int
	// IsTouchInput 是否为触摸输入
	IsTouchInput bool
	// Moved 是否曾超出轻触阈值
	Moved bool
}

// DragTracker 拖拽跟踪器
//
// 每帧调用一次 Update，传入指针是否按下及其位置。
// Ended 状态只持续一帧，此时 WasTap 判断本次按下是否为轻触。
type DragTracker struct {
	// TapSlop 轻触允许的最大位移（像素），超过即视为拖动
	TapSlop int

	info DragInfo
}

// NewDragTracker 创建拖拽跟踪器
func NewDragTracker(tapSlop int) *DragTracker {
	return &DragTracker{TapSlop: tapSlop}
}

// Update 更新拖拽状态（每帧调用一次）
func (dt *DragTracker) Update(pressed bool, x, y int, isTouch bool) {
	switch dt.info.State {
	case DragStateNone:
		if pressed {
			dt.info = DragInfo{
				State:        DragStateStarted,
				StartX:       x,
				StartY:       y,
				CurrentX:     x,
				CurrentY:     y,
				LastX:        x,
				LastY:        y,
				IsTouchInput: isTouch,
			}
		}

	case DragStateStarted, DragStateDragging:
		if !pressed {
			dt.info.State = DragStateEnded
			dt.info.LastX, dt.info.LastY = dt.info.CurrentX, dt.info.CurrentY
			return
		}
		dt.info.State = DragStateDragging
		dt.info.LastX, dt.info.LastY = dt.info.CurrentX, dt.info.CurrentY
		dt.info.CurrentX, dt.info.CurrentY = x, y
		if !dt.info.Moved {
			dx, dy := dt.GetDragDistance()
			dt.info.Moved = abs(dx) > dt.TapSlop || abs(dy) > dt.TapSlop
		}

	case DragStateEnded:
		dt.Reset()
		// 同一帧内重新按下
		if pressed {
			dt.Update(pressed, x, y, isTouch)
		}
	}
}

// Reset 重置拖拽状态
func (dt *DragTracker) Reset() {
	dt.info = DragInfo{State: DragStateNone}
}

// GetState 获取当前拖拽状态
func (dt *DragTracker) GetState() DragState {
	return dt.info.State
}

// GetInfo 获取完整拖拽信息
func (dt *DragTracker) GetInfo() DragInfo {
	return dt.info
}

// IsDragging 是否正在拖拽（已超出轻触阈值）
func (dt *DragTracker) IsDragging() bool {
	return dt.info.State == DragStateDragging && dt.info.Moved
}

// JustStarted 是否刚开始拖拽（本帧）
func (dt *DragTracker) JustStarted() bool {
	return dt.info.State == DragStateStarted
}

// JustEnded 是否刚结束拖拽（本帧）
func (dt *DragTracker) JustEnded() bool {
	return dt.info.State == DragStateEnded
}

// WasTap 本帧结束的按下是否为轻触
func (dt *DragTracker) WasTap() bool {
	return dt.info.State == DragStateEnded && !dt.info.Moved
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dt *DragTracker) GetDragDistance() (dx, dy int) {
	return dt.info.CurrentX - dt.info.StartX, dt.info.CurrentY - dt.info.StartY
}

// GetFrameDelta 获取本帧位移
func (dt *DragTracker) GetFrameDelta() (dx, dy int) {
	return dt.info.CurrentX - dt.info.LastX, dt.info.CurrentY - dt.info.LastY
}

// IsTouchDrag 是否为触摸拖拽
func (dt *DragTracker) IsTouchDrag() bool {
	return dt.info.IsTouchInput
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
