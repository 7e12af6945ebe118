package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/events"
	"github.com/sriharicp/portfolio/pkg/game"
	"github.com/sriharicp/portfolio/pkg/utils"
)

// tapSlop 轻触允许的最大位移（像素）
const tapSlop = 8

// jumpDistance Home/End 使用的滚动量，由 ScrollSystem 截断到有效范围
const jumpDistance = 1e9

// InputSystem 把每帧轮询到的输入转换为事件
//
// Ebitengine 只提供轮询接口，这里与上一帧比较，只在状态变化时发布事件：
//   - 鼠标在视口内移动 → PointerMove，离开视口或窗口失焦 → PointerLeave（一次）
//   - 第一个触点移动或按下 → TouchMove，全部松开 → TouchEnd
//   - 轻触或单击 → Click
//   - 滚轮、方向键、翻页键、触摸拖动 → Wheel
//   - 视口尺寸变化 → Resize
type InputSystem struct {
	bus      *events.Bus
	viewport *game.Viewport
	cfg      config.PageConfig
	drag     *utils.DragTracker

	pointerInside  bool
	lastX, lastY   int
	touching       bool
	lastTX, lastTY int
	lastW, lastH   int
}

// NewInputSystem 创建输入系统
func NewInputSystem(bus *events.Bus, viewport *game.Viewport, cfg config.PageConfig) *InputSystem {
	w, h := viewport.Size()
	return &InputSystem{
		bus:      bus,
		viewport: viewport,
		cfg:      cfg,
		drag:     utils.NewDragTracker(tapSlop),
		lastW:    w,
		lastH:    h,
	}
}

// Update 处理一帧输入
func (s *InputSystem) Update(frame utils.InputFrame) {
	w, h := s.viewport.Size()
	if w != s.lastW || h != s.lastH {
		s.lastW, s.lastH = w, h
		s.bus.Publish(events.Event{Type: events.Resize, Width: w, Height: h})
	}

	s.updateTouch(frame)
	if !frame.Touching && !s.drag.IsTouchDrag() {
		s.updatePointer(frame, w, h)
	}
	s.updateGesture(frame)
	s.updateScrollInput(frame, h)
}

func (s *InputSystem) updateTouch(frame utils.InputFrame) {
	if frame.Touching {
		if !s.touching || frame.TouchX != s.lastTX || frame.TouchY != s.lastTY {
			s.touching = true
			s.lastTX, s.lastTY = frame.TouchX, frame.TouchY
			s.bus.Publish(events.Event{Type: events.TouchMove, X: float64(frame.TouchX), Y: float64(frame.TouchY)})
		}
		return
	}

	if s.touching {
		s.touching = false
		s.bus.Publish(events.Event{Type: events.TouchEnd})
	}
}

func (s *InputSystem) updatePointer(frame utils.InputFrame, w, h int) {
	inside := frame.CursorInside(w, h)
	switch {
	case inside && (!s.pointerInside || frame.CursorX != s.lastX || frame.CursorY != s.lastY):
		s.pointerInside = true
		s.lastX, s.lastY = frame.CursorX, frame.CursorY
		s.bus.Publish(events.Event{Type: events.PointerMove, X: float64(frame.CursorX), Y: float64(frame.CursorY)})
	case !inside && s.pointerInside:
		s.pointerInside = false
		s.bus.Publish(events.Event{Type: events.PointerLeave})
	}
}

// updateGesture 区分轻触与拖动：轻触发布 Click，触摸拖动让页面跟随手指滚动
func (s *InputSystem) updateGesture(frame utils.InputFrame) {
	if frame.Touching {
		s.drag.Update(true, frame.TouchX, frame.TouchY, true)
	} else {
		s.drag.Update(frame.MousePressed, frame.CursorX, frame.CursorY, false)
	}

	if s.drag.IsDragging() && s.drag.IsTouchDrag() {
		if _, dy := s.drag.GetFrameDelta(); dy != 0 {
			s.bus.Publish(events.Event{Type: events.Wheel, DeltaY: -float64(dy)})
		}
	}

	if s.drag.WasTap() {
		info := s.drag.GetInfo()
		s.bus.Publish(events.Event{Type: events.Click, X: float64(info.StartX), Y: float64(info.StartY)})
	}
}

func (s *InputSystem) updateScrollInput(frame utils.InputFrame, h int) {
	if frame.WheelY != 0 {
		s.bus.Publish(events.Event{Type: events.Wheel, DeltaY: -frame.WheelY * s.cfg.WheelStep})
	}

	page := float64(h) * 0.9
	for _, k := range frame.Keys {
		var dy float64
		switch k {
		case ebiten.KeyArrowDown:
			dy = s.cfg.KeyStep
		case ebiten.KeyArrowUp:
			dy = -s.cfg.KeyStep
		case ebiten.KeyPageDown, ebiten.KeySpace:
			dy = page
		case ebiten.KeyPageUp:
			dy = -page
		case ebiten.KeyHome:
			dy = -jumpDistance
		case ebiten.KeyEnd:
			dy = jumpDistance
		default:
			continue
		}
		s.bus.Publish(events.Event{Type: events.Wheel, DeltaY: dy})
	}
}
