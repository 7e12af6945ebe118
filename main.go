// Package main 简历查看器入口（桌面端和浏览器端）
//
// Usage:
//
//	go run . [flags]
//	GOOS=js GOARCH=wasm go build -o web/static/portfolio.wasm .
//
// Flags:
//
//	--verbose          输出详细日志
//	--resume <path>    使用外部简历数据文件（默认使用内嵌的 data/resume.yaml）
//	--config <path>    使用外部效果配置文件（默认使用内嵌的 data/config/effects.yaml）
//
// Controls:
//
//	Mouse Wheel / Arrow / PageUp / PageDown / Home / End / Space - 滚动页面
//	Click                                                        - 导航链接跳转
//	P                                                            - 开关粒子背景
//	C                                                            - 开关自定义光标
//	F11                                                          - 切换全屏
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sriharicp/portfolio/pkg/app"
	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	resumeFlag  = flag.String("resume", "", "Path to an external resume YAML file")
	configFlag  = flag.String("config", "", "Path to an external effects config YAML file")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	portfolio, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		ResumePath:  *resumeFlag,
		EffectsPath: *configFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer portfolio.Shutdown()

	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle(portfolio.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)
	if portfolio.Settings().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(portfolio); err != nil {
		log.Printf("[Main] %v", err)
	}
}
