package systems

import (
	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/events"
	"github.com/sriharicp/portfolio/pkg/utils"
)

// scrollAnimation 进行中的平滑滚动
type scrollAnimation struct {
	from, to float64
	elapsed  float64
	duration float64
}

// ScrollSystem 管理页面滚动偏移
//
// 偏移范围为 [0, max(0, 文档高度 - 视口高度)]，每次变化都会发布 Scroll 事件（绝对偏移）。
// 同时跟踪导航栏的显示状态：向下滚动且超过阈值时隐藏，向上滚动时显示。
type ScrollSystem struct {
	bus *events.Bus
	cfg config.PageConfig

	scrollY   float64
	maxScroll float64
	anim      *scrollAnimation

	headerHidden   bool
	headerProgress float64 // 0 = 完全显示，1 = 完全隐藏

	unsubscribe func()
}

// NewScrollSystem 创建滚动系统
func NewScrollSystem(bus *events.Bus, cfg config.PageConfig) *ScrollSystem {
	return &ScrollSystem{bus: bus, cfg: cfg}
}

// Mount 订阅滚动请求（Wheel）
func (s *ScrollSystem) Mount() {
	if s.unsubscribe != nil {
		return
	}
	s.unsubscribe = s.bus.Subscribe(events.Wheel, func(e events.Event) {
		s.ScrollBy(e.DeltaY)
	})
}

// Unmount 取消订阅并停止进行中的平滑滚动
func (s *ScrollSystem) Unmount() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.anim = nil
}

// SetBounds 更新可滚动范围（文档或视口尺寸变化后调用）
// 当前偏移超出新范围时会被截断
func (s *ScrollSystem) SetBounds(docHeight, viewportHeight float64) {
	s.maxScroll = max(0, docHeight-viewportHeight)
	if s.anim != nil {
		s.anim.to = utils.Clamp(s.anim.to, 0, s.maxScroll)
	}
	s.set(s.scrollY)
}

// ScrollY 当前滚动偏移
func (s *ScrollSystem) ScrollY() float64 {
	return s.scrollY
}

// MaxScroll 最大滚动偏移
func (s *ScrollSystem) MaxScroll() float64 {
	return s.maxScroll
}

// ScrollBy 立即滚动 dy（正数向下），并取消进行中的平滑滚动
func (s *ScrollSystem) ScrollBy(dy float64) {
	s.anim = nil
	s.set(s.scrollY + dy)
}

// ScrollTo 平滑滚动到 y（三次缓入缓出）
func (s *ScrollSystem) ScrollTo(y float64) {
	y = utils.Clamp(y, 0, s.maxScroll)
	if s.cfg.ScrollDuration <= 0 {
		s.anim = nil
		s.set(y)
		return
	}
	s.anim = &scrollAnimation{from: s.scrollY, to: y, duration: s.cfg.ScrollDuration}
}

// Scrolling 是否正在平滑滚动
func (s *ScrollSystem) Scrolling() bool {
	return s.anim != nil
}

// RevealHeader 立即把导航栏切换为显示状态（导航链接点击时调用）
func (s *ScrollSystem) RevealHeader() {
	s.headerHidden = false
}

// HeaderHidden 导航栏是否处于隐藏状态
func (s *ScrollSystem) HeaderHidden() bool {
	return s.headerHidden
}

// HeaderOffset 导航栏当前的竖直偏移（0 为完全显示，-HeaderHeight 为完全隐藏）
func (s *ScrollSystem) HeaderOffset() float64 {
	return -utils.EaseInOutCubic(s.headerProgress) * s.cfg.HeaderHeight
}

// Update 推进平滑滚动和导航栏动画
func (s *ScrollSystem) Update(dt float64) {
	if a := s.anim; a != nil {
		a.elapsed += dt
		t := utils.Clamp(a.elapsed/a.duration, 0, 1)
		s.set(utils.Lerp(a.from, a.to, utils.EaseInOutCubic(t)))
		if t >= 1 {
			s.anim = nil
		}
	}

	target := 0.0
	if s.headerHidden {
		target = 1
	}
	if s.cfg.HeaderSlideDuration <= 0 {
		s.headerProgress = target
		return
	}
	step := dt / s.cfg.HeaderSlideDuration
	if s.headerProgress < target {
		s.headerProgress = min(target, s.headerProgress+step)
	} else if s.headerProgress > target {
		s.headerProgress = max(target, s.headerProgress-step)
	}
}

// set 截断并更新偏移；变化时更新导航栏状态并发布 Scroll 事件
func (s *ScrollSystem) set(y float64) {
	y = utils.Clamp(y, 0, s.maxScroll)
	if y == s.scrollY {
		return
	}
	s.headerHidden = y > s.scrollY && y > s.cfg.HeaderHideThreshold
	s.scrollY = y

	s.bus.Publish(events.Event{Type: events.Scroll, ScrollY: y})
}
