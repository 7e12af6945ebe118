// Package main provides a viewer for tuning the particle background and the
// custom cursor without the resume page on top.
//
// Usage:
//
//	go run ./cmd/fieldview [flags]
//
// Flags:
//
//	--width <px>      Initial window width (default 1280)
//	--height <px>     Initial window height (default 800)
//	--config <path>   Effects config YAML (default data/config/effects.yaml)
//	--verbose         Enable verbose logging
//
// Controls:
//
//	Mouse / Touch     - Move the pointer through the field
//	Wheel / Arrows    - Scroll a virtual page five screens tall (kicks the dots vertically)
//	R                 - Remount the field and the cursor (checks listener cleanup)
//	H                 - Toggle the debug overlay
//	Q/Escape          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/events"
	"github.com/sriharicp/portfolio/pkg/game"
	"github.com/sriharicp/portfolio/pkg/page"
	"github.com/sriharicp/portfolio/pkg/systems"
	"github.com/sriharicp/portfolio/pkg/utils"
)

var (
	widthFlag   = flag.Int("width", config.DefaultWindowWidth, "Initial window width")
	heightFlag  = flag.Int("height", config.DefaultWindowHeight, "Initial window height")
	configFlag  = flag.String("config", config.EffectsConfigPath, "Effects config YAML")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// virtualPages 虚拟页面高度（屏数），用于产生滚动事件
const virtualPages = 5

var errQuit = errors.New("quit")

type viewer struct {
	cfg      *config.EffectsConfig
	bus      *events.Bus
	loop     *game.FrameLoop
	viewport *game.Viewport

	input  *systems.InputSystem
	scroll *systems.ScrollSystem
	field  *systems.ParticleFieldSystem
	cursor *systems.CursorSystem

	fieldRender  *systems.ParticleFieldRenderSystem
	cursorRender *systems.CursorRenderSystem

	showOverlay bool
}

func newViewer(cfg *config.EffectsConfig, width, height int) *viewer {
	bus := events.NewBus()
	viewport := game.NewViewport(width, height)

	v := &viewer{
		cfg:         cfg,
		bus:         bus,
		loop:        game.NewFrameLoop(),
		viewport:    viewport,
		input:       systems.NewInputSystem(bus, viewport, cfg.Page),
		scroll:      systems.NewScrollSystem(bus, cfg.Page),
		field:       systems.NewParticleFieldSystem(cfg.Field),
		showOverlay: true,
	}
	// 没有页面内容，光标始终处于常态
	v.cursor = systems.NewCursorSystem(cfg.Cursor, func(x, y float64) *page.Element { return nil })
	v.fieldRender = systems.NewParticleFieldRenderSystem(v.field, cfg.Field)
	v.cursorRender = systems.NewCursorRenderSystem(v.cursor, cfg.Cursor)

	v.scroll.SetBounds(float64(height*virtualPages), float64(height))
	bus.Subscribe(events.Resize, func(e events.Event) {
		v.scroll.SetBounds(float64(e.Height*virtualPages), float64(e.Height))
	})
	v.mount()
	return v
}

func (v *viewer) mount() {
	v.scroll.Mount()
	v.field.Mount(v.bus, v.loop, v.viewport, v.scroll.ScrollY())
	v.cursor.Mount(v.bus, v.loop)
}

func (v *viewer) unmount() {
	v.field.Unmount()
	v.cursor.Unmount()
	v.scroll.Unmount()
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.showOverlay = !v.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.unmount()
		log.Printf("[FieldView] Unmounted: listeners=%d, frame callbacks=%d", v.bus.ListenerCount(), v.loop.Pending())
		v.mount()
		log.Printf("[FieldView] Remounted: listeners=%d, frame callbacks=%d", v.bus.ListenerCount(), v.loop.Pending())
	}

	dt := 1.0 / float64(config.TicksPerSecond)
	v.input.Update(utils.ReadInputFrame())
	v.scroll.Update(dt)
	v.loop.Tick(dt)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	v.fieldRender.Draw(screen)
	v.cursorRender.Draw(screen)

	if !v.showOverlay {
		return
	}
	cols, rows := v.field.GridSize()
	px, py := v.field.Pointer()
	t := v.cursor.Transform()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.0f\nGrid: %dx%d (%d dots, spacing %.0f)\nPointer: (%.0f, %.0f)\nScroll: %.0f / %.0f\n"+
			"Cursor: %s angle=%.1f stretch=%.2fx%.2f\nListeners: %d  Frame callbacks: %d\n[R] remount  [H] overlay  [Q] quit",
		ebiten.ActualFPS(),
		cols, rows, len(v.field.Dots()), v.field.Spacing(),
		px, py,
		v.scroll.ScrollY(), v.scroll.MaxScroll(),
		v.cursor.State(), t.Angle, t.ScaleLong, t.ScaleCross,
		v.bus.ListenerCount(), v.loop.Pending(),
	))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.viewport.Set(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadEffectsConfig(*configFlag)
	if err != nil {
		fmt.Printf("Warning: %v, using defaults\n", err)
		cfg = config.DefaultEffectsConfig()
	}

	v := newViewer(cfg, *widthFlag, *heightFlag)
	defer v.unmount()

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Field Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
