package systems

import (
	"log"
	"math"

	"github.com/sriharicp/portfolio/pkg/components"
	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/events"
	"github.com/sriharicp/portfolio/pkg/game"
)

// Surface 绘图表面（视口），nil 表示不可用
type Surface interface {
	Size() (width, height int)
}

// FrameRequester 每帧回调调度（由 game.FrameLoop 实现）
type FrameRequester interface {
	Request(fn game.FrameFunc) (cancel func())
}

// ParticleFieldSystem 交互式粒子背景
//
// 维护一个居中的网格，每个格点一个弹簧阻尼粒子：
//   - 指针靠近时粒子放大、提亮，离开后半径每帧回落 10%
//   - 弹簧把粒子拉回锚点，速度每帧乘以摩擦系数（显式欧拉积分）
//   - 页面滚动时，所有粒子的竖直速度统一加上 滚动增量 × 系数
//   - 视口尺寸变化时整个网格重建
//
// 物理常量按帧定义，与 dt 无关（逻辑帧率固定为 60）。
type ParticleFieldSystem struct {
	cfg config.FieldConfig

	dots       []components.DotComponent
	cols, rows int
	spacing    float64

	pointerX, pointerY float64
	lastScrollY        float64

	mounted  bool
	cleanups []func()
}

// NewParticleFieldSystem 创建粒子背景系统
func NewParticleFieldSystem(cfg config.FieldConfig) *ParticleFieldSystem {
	return &ParticleFieldSystem{
		cfg:      cfg,
		pointerX: cfg.Sentinel,
		pointerY: cfg.Sentinel,
	}
}

// Mount 挂载到事件总线和帧循环
//
// 参数:
//   - bus: 事件总线
//   - loop: 帧回调调度
//   - surface: 绘图表面，为 nil 时系统保持静默（不模拟、不注册任何监听器）
//   - scrollY: 当前页面滚动偏移
func (s *ParticleFieldSystem) Mount(bus *events.Bus, loop FrameRequester, surface Surface, scrollY float64) {
	if s.mounted {
		return
	}
	if surface == nil {
		log.Printf("[ParticleField] Drawing surface unavailable, background disabled")
		return
	}

	s.mounted = true
	s.pointerX, s.pointerY = s.cfg.Sentinel, s.cfg.Sentinel
	s.lastScrollY = scrollY

	w, h := surface.Size()
	s.Rebuild(w, h)

	s.cleanups = append(s.cleanups,
		bus.Subscribe(events.PointerMove, s.onPointer),
		bus.Subscribe(events.TouchMove, s.onPointer),
		bus.Subscribe(events.PointerLeave, s.onPointerGone),
		bus.Subscribe(events.TouchEnd, s.onPointerGone),
		bus.Subscribe(events.Scroll, func(e events.Event) { s.ApplyScroll(e.ScrollY) }),
		bus.Subscribe(events.Resize, func(e events.Event) { s.Rebuild(e.Width, e.Height) }),
		loop.Request(func(float64) { s.Step() }),
	)
}

// Unmount 注销所有监听器和帧回调，并丢弃粒子
func (s *ParticleFieldSystem) Unmount() {
	for _, cleanup := range s.cleanups {
		cleanup()
	}
	s.cleanups = nil
	s.dots = nil
	s.cols, s.rows = 0, 0
	s.mounted = false
}

// Mounted 是否已挂载
func (s *ParticleFieldSystem) Mounted() bool {
	return s.mounted
}

func (s *ParticleFieldSystem) onPointer(e events.Event) {
	s.pointerX, s.pointerY = e.X, e.Y
}

func (s *ParticleFieldSystem) onPointerGone(events.Event) {
	s.pointerX, s.pointerY = s.cfg.Sentinel, s.cfg.Sentinel
}

// Rebuild 按视口尺寸重建网格，丢弃所有粒子的运动状态
//
// 列数 = ⌊宽 / 间距⌋，行数 = ⌊高 / 间距⌋；剩余空间平分到两侧，
// 再加半个间距，使粒子位于格子中心。
func (s *ParticleFieldSystem) Rebuild(width, height int) {
	spacing := s.cfg.SpacingFor(width)
	cols := int(math.Floor(float64(width) / spacing))
	rows := int(math.Floor(float64(height) / spacing))
	cols, rows = max(cols, 0), max(rows, 0)

	offsetX := (float64(width)-float64(cols)*spacing)/2 + spacing/2
	offsetY := (float64(height)-float64(rows)*spacing)/2 + spacing/2

	dots := make([]components.DotComponent, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			x := offsetX + float64(i)*spacing
			y := offsetY + float64(j)*spacing
			dots = append(dots, components.DotComponent{
				BaseX:  x,
				BaseY:  y,
				X:      x,
				Y:      y,
				Radius: s.cfg.BaseRadius,
			})
		}
	}

	s.dots = dots
	s.cols, s.rows = cols, rows
	s.spacing = spacing
}

// ApplyScroll 根据新的滚动偏移给所有粒子施加竖直冲量
func (s *ParticleFieldSystem) ApplyScroll(scrollY float64) {
	delta := scrollY - s.lastScrollY
	s.lastScrollY = scrollY

	impulse := delta * s.cfg.ScrollImpulse
	for i := range s.dots {
		s.dots[i].VY += impulse
	}
}

// Step 推进一帧物理
func (s *ParticleFieldSystem) Step() {
	c := &s.cfg
	for i := range s.dots {
		d := &s.dots[i]

		dist := math.Hypot(d.X-s.pointerX, d.Y-s.pointerY)
		if dist < c.ProximityRadius {
			d.Influence = 1 - dist/c.ProximityRadius
			d.Radius = c.BaseRadius + c.RadiusBoost*d.Influence
			d.Active = true
		} else {
			d.Radius += (c.BaseRadius - d.Radius) * c.RadiusEase
			d.Influence = 0
			d.Active = false
		}

		d.VX += (d.BaseX - d.X) * c.Spring
		d.VY += (d.BaseY - d.Y) * c.Spring
		d.VX *= c.Friction
		d.VY *= c.Friction
		d.X += d.VX
		d.Y += d.VY
	}
}

// SetPointer 设置指针位置（视口坐标）
func (s *ParticleFieldSystem) SetPointer(x, y float64) {
	s.pointerX, s.pointerY = x, y
}

// Pointer 返回当前指针位置，指针不在画布上时为哨兵坐标
func (s *ParticleFieldSystem) Pointer() (x, y float64) {
	return s.pointerX, s.pointerY
}

// Dots 返回当前粒子（只读）
func (s *ParticleFieldSystem) Dots() []components.DotComponent {
	return s.dots
}

// GridSize 返回网格列数和行数
func (s *ParticleFieldSystem) GridSize() (cols, rows int) {
	return s.cols, s.rows
}

// Spacing 返回当前网格间距
func (s *ParticleFieldSystem) Spacing() float64 {
	return s.spacing
}
