package scenes

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/events"
	"github.com/sriharicp/portfolio/pkg/game"
	"github.com/sriharicp/portfolio/pkg/page"
	"github.com/sriharicp/portfolio/pkg/resume"
	"github.com/sriharicp/portfolio/pkg/systems"
	"github.com/sriharicp/portfolio/pkg/utils"
)

// Options PortfolioScene 的创建参数
type Options struct {
	// Resume 简历数据（必填）
	Resume *resume.Data
	// Effects 视觉效果配置，为 nil 时使用默认配置
	Effects *config.EffectsConfig
	// Viewport 视口尺寸，由 App.Layout 写入（必填）
	Viewport *game.Viewport
	// Settings 观看偏好，为 nil 时使用内存中的默认值
	Settings *game.SettingsManager

	// Fonts 页面字体，为 nil 时不绘制页面文字（用于无窗口测试）
	Fonts *page.Fonts
	// Measurer 文字测量，为 nil 时使用 Fonts
	Measurer page.Measurer

	// Year 页脚年份，为 0 时使用当前年份
	Year int
}

// PortfolioScene 简历页面场景
//
// 组合页面元素树、滚动、导航、粒子背景和自定义光标。
// 输入每帧轮询一次并转换为事件，通过事件总线同步分发给各系统；
// 粒子背景和光标的逐帧更新通过 FrameLoop 调度。
//
// 绘制顺序：粒子背景 → 页面内容 → 导航栏 → 光标。
type PortfolioScene struct {
	cfg      *config.EffectsConfig
	data     *resume.Data
	viewport *game.Viewport
	settings *game.SettingsManager
	measurer page.Measurer
	year     int

	bus  *events.Bus
	loop *game.FrameLoop
	doc  *page.Document

	inputSystem  *systems.InputSystem
	scrollSystem *systems.ScrollSystem
	navigation   *systems.NavigationSystem
	field        *systems.ParticleFieldSystem
	fieldRender  *systems.ParticleFieldRenderSystem
	cursor       *systems.CursorSystem
	cursorRender *systems.CursorRenderSystem
	pageRender   *systems.PageRenderSystem

	cleanups []func()
	mounted  bool
}

// NewPortfolioScene 创建并挂载简历页面场景
//
// 参数:
//   - opts: 创建参数，Resume 和 Viewport 必须非 nil
//
// 返回:
//   - *PortfolioScene: 已挂载的场景，由 SceneManager 在切换或关闭时卸载
func NewPortfolioScene(opts Options) *PortfolioScene {
	cfg := opts.Effects
	if cfg == nil {
		cfg = config.DefaultEffectsConfig()
	}
	settings := opts.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}
	measurer := opts.Measurer
	if measurer == nil && opts.Fonts != nil {
		measurer = opts.Fonts
	}
	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}

	s := &PortfolioScene{
		cfg:      cfg,
		data:     opts.Resume,
		viewport: opts.Viewport,
		settings: settings,
		measurer: measurer,
		year:     year,
		bus:      events.NewBus(),
		loop:     game.NewFrameLoop(),
	}

	s.inputSystem = systems.NewInputSystem(s.bus, s.viewport, cfg.Page)
	s.scrollSystem = systems.NewScrollSystem(s.bus, cfg.Page)
	s.navigation = systems.NewNavigationSystem(s.bus, s.scrollSystem, s.hitTest, s.Document, cfg.Page.HeaderOffset)
	s.field = systems.NewParticleFieldSystem(cfg.Field)
	s.fieldRender = systems.NewParticleFieldRenderSystem(s.field, cfg.Field)
	s.cursor = systems.NewCursorSystem(cfg.Cursor, s.hitTest)
	s.cursorRender = systems.NewCursorRenderSystem(s.cursor, cfg.Cursor)
	if opts.Fonts != nil {
		s.pageRender = systems.NewPageRenderSystem(opts.Fonts, cfg.Cursor.HighlightClass)
	}

	s.relayout()
	s.mount()

	return s
}

// mount 注册场景自身的监听器，并按观看偏好挂载效果系统
func (s *PortfolioScene) mount() {
	s.mounted = true
	s.cleanups = append(s.cleanups,
		s.bus.Subscribe(events.Resize, func(events.Event) { s.relayout() }),
	)
	s.scrollSystem.Mount()
	s.navigation.Mount()

	prefs := s.settings.GetSettings()
	if prefs.ParticlesEnabled {
		s.mountField()
	}
	if prefs.CustomCursor {
		s.cursor.Mount(s.bus, s.loop)
	}

	log.Printf("[Portfolio] Scene mounted (particles=%v, cursor=%v)", prefs.ParticlesEnabled, prefs.CustomCursor)
}

func (s *PortfolioScene) mountField() {
	var surface systems.Surface
	if s.viewport.Available() {
		surface = s.viewport
	}
	s.field.Mount(s.bus, s.loop, surface, s.scrollSystem.ScrollY())
}

// Unmount 卸载场景：注销所有监听器和帧回调，并停止帧循环
func (s *PortfolioScene) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false

	s.field.Unmount()
	s.cursor.Unmount()
	s.navigation.Unmount()
	s.scrollSystem.Unmount()
	for _, cleanup := range s.cleanups {
		cleanup()
	}
	s.cleanups = nil
	s.loop.Stop()

	log.Printf("[Portfolio] Scene unmounted (remaining listeners: %d)", s.bus.ListenerCount())
}

// relayout 按当前视口宽度重新生成页面元素树
func (s *PortfolioScene) relayout() {
	w, h := s.viewport.Size()
	s.doc = page.Build(s.data, s.measurer, page.Options{
		Width:  float64(w),
		Height: float64(h),
		Year:   s.year,
		Config: s.cfg.Page,
	})
	s.scrollSystem.SetBounds(s.doc.Height, float64(h))
	s.doc.HeaderY = s.scrollSystem.HeaderOffset()

	// 旧元素树已丢弃，高亮引用随之失效
	s.cursor.ResetHover()

	log.Printf("[Portfolio] Layout rebuilt for %dx%d (document height %.0f)", w, h, s.doc.Height)
}

// hitTest 视口坐标命中测试
func (s *PortfolioScene) hitTest(x, y float64) *page.Element {
	if s.doc == nil {
		return nil
	}
	return s.doc.ElementAt(x, y, s.scrollSystem.ScrollY())
}

// Update 轮询输入并推进一帧
func (s *PortfolioScene) Update(deltaTime float64) {
	s.Step(utils.ReadInputFrame(), deltaTime)
}

// Step 使用给定的输入快照推进一帧
//
// 顺序：输入事件分发 → 平滑滚动与导航栏动画 → 帧回调（粒子、光标）。
func (s *PortfolioScene) Step(frame utils.InputFrame, deltaTime float64) {
	if !s.mounted {
		return
	}
	s.inputSystem.Update(frame)
	s.scrollSystem.Update(deltaTime)
	s.doc.HeaderY = s.scrollSystem.HeaderOffset()
	s.loop.Tick(deltaTime)
}

// Draw 绘制场景
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)

	if s.field.Mounted() {
		s.fieldRender.Draw(screen)
	}
	if s.pageRender != nil {
		s.pageRender.Draw(screen, s.doc, s.scrollSystem.ScrollY())
	}
	s.cursorRender.Draw(screen)
}

// SetParticlesEnabled 开关粒子背景并保存偏好
func (s *PortfolioScene) SetParticlesEnabled(enabled bool) {
	s.settings.SetParticlesEnabled(enabled)
	s.saveSettings()
	if !s.mounted {
		return
	}
	if enabled && !s.field.Mounted() {
		s.mountField()
	} else if !enabled && s.field.Mounted() {
		s.field.Unmount()
	}
	log.Printf("[Portfolio] Particles enabled: %v", enabled)
}

// SetCustomCursor 开关自定义光标并保存偏好
func (s *PortfolioScene) SetCustomCursor(enabled bool) {
	s.settings.SetCustomCursor(enabled)
	s.saveSettings()
	if !s.mounted {
		return
	}
	if enabled && !s.cursor.Mounted() {
		s.cursor.Mount(s.bus, s.loop)
	} else if !enabled && s.cursor.Mounted() {
		s.cursor.Unmount()
	}
	log.Printf("[Portfolio] Custom cursor enabled: %v", enabled)
}

func (s *PortfolioScene) saveSettings() {
	if err := s.settings.Save(); err != nil {
		log.Printf("[Portfolio] Warning: %v", err)
	}
}

// ToggleParticles 切换粒子背景
func (s *PortfolioScene) ToggleParticles() {
	s.SetParticlesEnabled(!s.settings.GetSettings().ParticlesEnabled)
}

// ToggleCustomCursor 切换自定义光标
func (s *PortfolioScene) ToggleCustomCursor() {
	s.SetCustomCursor(!s.settings.GetSettings().CustomCursor)
}

// CustomCursorActive 自定义光标是否正在显示（为 false 时应显示系统光标）
func (s *PortfolioScene) CustomCursorActive() bool {
	return s.cursor.Mounted()
}

// Document 当前页面文档
func (s *PortfolioScene) Document() *page.Document {
	return s.doc
}

// Bus 场景的事件总线
func (s *PortfolioScene) Bus() *events.Bus {
	return s.bus
}

// FrameLoop 场景的帧循环
func (s *PortfolioScene) FrameLoop() *game.FrameLoop {
	return s.loop
}

// ScrollY 当前滚动偏移
func (s *PortfolioScene) ScrollY() float64 {
	return s.scrollSystem.ScrollY()
}

// Field 粒子背景系统
func (s *PortfolioScene) Field() *systems.ParticleFieldSystem {
	return s.field
}

// Cursor 光标系统
func (s *PortfolioScene) Cursor() *systems.CursorSystem {
	return s.cursor
}
