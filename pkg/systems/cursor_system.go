package systems

import (
	"log"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/sriharicp/portfolio/pkg/components"
	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/events"
	"github.com/sriharicp/portfolio/pkg/page"
)

// HitTester 返回视口坐标处最深的页面元素，没有时返回 nil
type HitTester func(x, y float64) *page.Element

// CursorTransform 光标标记的绘制变换
type CursorTransform struct {
	// X, Y 平滑后的中心位置
	X, Y float64
	// Angle 旋转角度（度）
	Angle float64
	// ScaleLong 沿运动方向的缩放，ScaleCross 垂直于运动方向的缩放
	ScaleLong, ScaleCross float64
	// Base 整体缩放（常态 1，悬停 4）
	Base float64
}

// CursorSystem 自定义光标
//
// 每次指针移动采样：
//   - 原始速度 = 本次坐标 - 上次坐标（按采样而不是按时间计算）
//   - 查找指针下最近的文字/可交互元素，切换悬停状态并转移高亮样式类
//
// 每帧用两个阻尼弹簧分别平滑位置和速度，速度决定标记的朝向和拉伸。
type CursorSystem struct {
	cfg      config.CursorConfig
	hit      HitTester
	tags     []page.Tag
	follower components.PointerFollowerComponent

	posSpring harmonica.Spring
	velSpring harmonica.Spring

	mounted  bool
	cleanups []func()
}

// NewCursorSystem 创建自定义光标系统
//
// 参数:
//   - cfg: 光标配置（弹簧参数、悬停标签集合、高亮样式类等）
//   - hit: 命中测试，可为 nil（永不进入悬停状态）
func NewCursorSystem(cfg config.CursorConfig, hit HitTester) *CursorSystem {
	tags := make([]page.Tag, 0, len(cfg.HoverTags))
	for _, t := range cfg.HoverTags {
		tags = append(tags, page.Tag(t))
	}

	s := &CursorSystem{
		cfg:  cfg,
		hit:  hit,
		tags: tags,
		posSpring: harmonica.NewSpring(harmonica.FPS(config.TicksPerSecond),
			cfg.Position.AngularFrequency(), cfg.Position.DampingRatio()),
		velSpring: harmonica.NewSpring(harmonica.FPS(config.TicksPerSecond),
			cfg.Velocity.AngularFrequency(), cfg.Velocity.DampingRatio()),
	}
	s.reset()
	return s
}

func (s *CursorSystem) reset() {
	s.follower = components.PointerFollowerComponent{
		RawX: s.cfg.InitialX,
		RawY: s.cfg.InitialY,
		X:    s.cfg.InitialX,
		Y:    s.cfg.InitialY,
		Highlight: components.HoverHighlightComponent{
			Class: s.cfg.HighlightClass,
		},
	}
}

// Mount 订阅指针移动并注册帧回调
func (s *CursorSystem) Mount(bus *events.Bus, loop FrameRequester) {
	if s.mounted {
		return
	}
	s.mounted = true
	s.cleanups = append(s.cleanups,
		bus.Subscribe(events.PointerMove, func(e events.Event) { s.Sample(e.X, e.Y) }),
		loop.Request(func(float64) { s.Step() }),
	)
	log.Printf("[Cursor] Mounted (hover tags: %v)", s.cfg.HoverTags)
}

// Unmount 注销监听器，清除高亮并恢复初始状态
func (s *CursorSystem) Unmount() {
	for _, cleanup := range s.cleanups {
		cleanup()
	}
	s.cleanups = nil
	s.ClearHighlight()
	s.reset()
	s.mounted = false
}

// Mounted 是否已挂载
func (s *CursorSystem) Mounted() bool {
	return s.mounted
}

// Sample 处理一次指针移动采样（视口坐标）
func (s *CursorSystem) Sample(x, y float64) {
	f := &s.follower

	// 首次采样没有上一次坐标，速度记为 0
	if f.HasSample {
		f.RawVX, f.RawVY = x-f.RawX, y-f.RawY
	} else {
		f.RawVX, f.RawVY = 0, 0
		f.HasSample = true
	}
	f.RawX, f.RawY = x, y

	var target *page.Element
	if s.hit != nil {
		if el := s.hit(x, y); el != nil {
			target = el.Closest(s.tags...)
		}
	}
	s.setHover(target)
}

// setHover 切换悬停目标：先移除旧元素的高亮，再给新元素添加
func (s *CursorSystem) setHover(target *page.Element) {
	f := &s.follower
	h := &f.Highlight

	if target == nil {
		f.State = components.FollowerResting
		s.ClearHighlight()
		return
	}

	f.State = components.FollowerHovering
	if h.Element == target {
		return
	}
	if h.Element != nil {
		h.Element.RemoveClass(h.Class)
	}
	target.AddClass(h.Class)
	h.Element = target
}

// ClearHighlight 移除当前高亮（页面重新布局时旧元素失效，也需要调用）
func (s *CursorSystem) ClearHighlight() {
	h := &s.follower.Highlight
	if h.Element != nil {
		h.Element.RemoveClass(h.Class)
		h.Element = nil
	}
}

// ResetHover 清除高亮并回到常态（页面重新布局后调用）
func (s *CursorSystem) ResetHover() {
	s.ClearHighlight()
	s.follower.State = components.FollowerResting
}

// Step 推进一帧弹簧平滑
func (s *CursorSystem) Step() {
	f := &s.follower
	f.X, f.PosVX = s.posSpring.Update(f.X, f.PosVX, f.RawX)
	f.Y, f.PosVY = s.posSpring.Update(f.Y, f.PosVY, f.RawY)
	f.VX, f.VelVX = s.velSpring.Update(f.VX, f.VelVX, f.RawVX)
	f.VY, f.VelVY = s.velSpring.Update(f.VY, f.VelVY, f.RawVY)
}

// Follower 返回光标状态（只读）
func (s *CursorSystem) Follower() *components.PointerFollowerComponent {
	return &s.follower
}

// State 当前状态
func (s *CursorSystem) State() components.FollowerState {
	return s.follower.State
}

// Highlighted 当前高亮的元素
func (s *CursorSystem) Highlighted() *page.Element {
	return s.follower.Highlight.Element
}

// StretchFactor 拉伸系数 min(速度 / 饱和速度, 1)
func (s *CursorSystem) StretchFactor() float64 {
	speed := math.Hypot(s.follower.VX, s.follower.VY)
	return math.Min(speed/s.cfg.StretchSpeed, 1)
}

// Transform 计算当前帧的绘制变换
// 悬停时朝向锁定为 0°，拉伸锁定为 1，整体放大
func (s *CursorSystem) Transform() CursorTransform {
	f := &s.follower
	t := CursorTransform{X: f.X, Y: f.Y}

	if f.State == components.FollowerHovering {
		t.ScaleLong, t.ScaleCross = 1, 1
		t.Base = s.cfg.HoverScale
		return t
	}

	stretch := s.StretchFactor()
	t.Angle = math.Atan2(f.VY, f.VX)*180/math.Pi + s.cfg.AngleOffset
	t.ScaleLong = 1 + stretch
	t.ScaleCross = 1 - stretch/2
	t.Base = s.cfg.RestScale
	return t
}
