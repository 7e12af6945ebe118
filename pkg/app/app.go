// Package app 提供简历查看器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器端（wasm）和移动端共用。
// 桌面端和浏览器端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/embedded"
	"github.com/sriharicp/portfolio/pkg/game"
	"github.com/sriharicp/portfolio/pkg/page"
	"github.com/sriharicp/portfolio/pkg/resume"
	"github.com/sriharicp/portfolio/pkg/scenes"
	"github.com/sriharicp/portfolio/pkg/utils"
)

// StoreName gdata 存储使用的应用名
const StoreName = "sriharicp_portfolio"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ResumePath 简历数据文件路径，为空则使用内嵌的 data/resume.yaml
	ResumePath string
	// EffectsPath 效果配置文件路径，为空则使用内嵌的 data/config/effects.yaml
	EffectsPath string
	// Store 偏好设置存储，为 nil 时自动打开 gdata 存储（失败则只保存在内存中）
	Store *gdata.Manager
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.PortfolioScene
	settings     *game.SettingsManager
	viewport     *game.Viewport
	title        string
	verbose      bool

	cursorHidden             bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	effects, err := loadEffects(cfg.EffectsPath)
	if err != nil {
		return nil, fmt.Errorf("效果配置加载失败: %w", err)
	}

	data, err := loadResume(cfg.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("简历数据加载失败: %w", err)
	}
	log.Printf("[App] Resume loaded: %s (%d experience, %d projects)", data.Name, len(data.Experience), len(data.Projects))

	fonts, err := page.NewFonts()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	store := cfg.Store
	if store == nil {
		store = openStore()
	}
	settings := game.NewSettingsManager(store)

	// 触摸设备没有悬停，自定义光标只会停在最后一次触点上
	if utils.IsMobile() {
		settings.SetCustomCursor(false)
		log.Printf("[App] Mobile platform detected, custom cursor disabled")
	}

	viewport := game.NewViewport(config.DefaultWindowWidth, config.DefaultWindowHeight)
	scene := scenes.NewPortfolioScene(scenes.Options{
		Resume:   data,
		Effects:  effects,
		Viewport: viewport,
		Settings: settings,
		Fonts:    fonts,
	})

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		scene:        scene,
		settings:     settings,
		viewport:     viewport,
		title:        data.Name + " | " + data.Title,
		verbose:      cfg.Verbose,
	}, nil
}

func loadEffects(path string) (*config.EffectsConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading effects config from %s", path)
		return config.LoadEffectsConfig(path)
	}
	return config.LoadEmbeddedEffectsConfig()
}

func loadResume(path string) (*resume.Data, error) {
	if path != "" {
		log.Printf("[App] Loading resume from %s", path)
		return resume.Load(path)
	}
	raw, err := embedded.ReadFile(resume.DefaultPath)
	if err != nil {
		return nil, err
	}
	return resume.Parse(raw)
}

// openStore 打开偏好设置存储，失败时返回 nil（降级为内存设置）
func openStore() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: StoreName})
	if err != nil {
		log.Printf("[App] Warning: settings store unavailable: %v (settings will not persist)", err)
		return nil
	}
	return m
}

// Update 更新应用逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.DefaultWindowWidth, config.DefaultWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.scene.ToggleParticles()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.scene.ToggleCustomCursor()
	}

	a.syncCursorMode()

	deltaTime := 1.0 / float64(config.TicksPerSecond)
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settings.SetFullscreen(!a.settings.GetSettings().Fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// syncCursorMode 自定义光标显示时隐藏系统光标，关闭后恢复
func (a *App) syncCursorMode() {
	hide := a.scene.CustomCursorActive()
	if hide == a.cursorHidden {
		return
	}
	a.cursorHidden = hide
	if hide {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
//
// 页面是响应式的：逻辑尺寸等于窗口尺寸，尺寸变化写入 Viewport，
// 下一帧由 InputSystem 发布 Resize 事件，触发页面重新布局和粒子网格重建。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.viewport.Set(outsideWidth, outsideHeight) {
		log.Printf("[App] Viewport resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Shutdown 卸载场景并保存偏好设置
// 在 ebiten.RunGame 返回后调用
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Scene 返回简历页面场景
func (a *App) Scene() *scenes.PortfolioScene {
	return a.scene
}

// Settings 返回偏好设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Title 窗口标题（姓名 | 头衔）
func (a *App) Title() string {
	return a.title
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
