package scenes

import (
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/game"
	"github.com/sriharicp/portfolio/pkg/page"
	"github.com/sriharicp/portfolio/pkg/resume"
	"github.com/sriharicp/portfolio/pkg/utils"
)

const frameDT = 1.0 / 60.0

// monoMeasurer 等宽假字体：每个字符宽度为字号的一半
type monoMeasurer struct{}

func (monoMeasurer) Measure(s string, size float64, bold bool) float64 {
	return float64(utf8.RuneCountInString(s)) * size / 2
}

func newTestScene(t *testing.T, width, height int) (*PortfolioScene, *game.Viewport) {
	t.Helper()
	data, err := resume.Load(filepath.Join("..", "..", "data", "resume.yaml"))
	if err != nil {
		t.Fatalf("failed to load resume: %v", err)
	}
	vp := game.NewViewport(width, height)
	s := NewPortfolioScene(Options{
		Resume:   data,
		Viewport: vp,
		Measurer: monoMeasurer{},
		Year:     2025,
	})
	t.Cleanup(s.Unmount)
	return s, vp
}

func mouseAt(x, y float64) utils.InputFrame {
	return utils.InputFrame{CursorX: int(x), CursorY: int(y), Focused: true}
}

func findLink(doc *page.Document, href string) *page.Element {
	var found *page.Element
	doc.Walk(func(e *page.Element) {
		if found == nil && e.Href == href {
			found = e
		}
	})
	return found
}

func TestPortfolioSceneMountsEffects(t *testing.T) {
	s, _ := newTestScene(t, 1280, 800)

	if !s.Field().Mounted() || !s.Cursor().Mounted() {
		t.Fatal("default settings should mount both effects")
	}
	if cols, rows := s.Field().GridSize(); cols != 32 || rows != 20 {
		t.Errorf("grid = %dx%d, want 32x20", cols, rows)
	}
	if s.FrameLoop().Pending() != 2 {
		t.Errorf("pending frame callbacks = %d, want 2 (field and cursor)", s.FrameLoop().Pending())
	}
	if s.Document().ElementByID("experience") == nil {
		t.Error("document should contain the experience section")
	}
}

func TestPortfolioSceneUnmountRemovesEverything(t *testing.T) {
	s, _ := newTestScene(t, 1280, 800)
	if s.Bus().ListenerCount() == 0 {
		t.Fatal("mounted scene should have listeners")
	}

	s.Step(mouseAt(400, 300), frameDT)
	s.Unmount()

	if n := s.Bus().ListenerCount(); n != 0 {
		t.Errorf("listener count after unmount = %d, want 0", n)
	}
	if n := s.FrameLoop().Pending(); n != 0 {
		t.Errorf("pending frame callbacks after unmount = %d, want 0", n)
	}
	if !s.FrameLoop().Stopped() {
		t.Error("frame loop should be stopped")
	}
	class := config.DefaultEffectsConfig().Cursor.HighlightClass
	if n := len(s.Document().ElementsWithClass(class)); n != 0 {
		t.Errorf("%d elements still highlighted after unmount", n)
	}

	// 卸载后继续推进不会产生任何效果
	s.Step(mouseAt(10, 10), frameDT)
	s.Unmount()
}

func TestPortfolioSceneResizeRebuilds(t *testing.T) {
	s, vp := newTestScene(t, 1280, 800)

	link := findLink(s.Document(), "#skills")
	s.Step(mouseAt(link.Bounds.X+2, link.Bounds.Y+2), frameDT)
	if s.Cursor().Highlighted() == nil {
		t.Fatal("hovering a nav link should highlight it")
	}

	vp.Set(500, 300)
	s.Step(mouseAt(-1, -1), frameDT)

	if s.Document().Width != 500 {
		t.Errorf("document width = %v, want 500", s.Document().Width)
	}
	if cols, rows := s.Field().GridSize(); cols != 8 || rows != 5 {
		t.Errorf("grid after resize = %dx%d, want 8x5", cols, rows)
	}
	if s.Cursor().Highlighted() != nil {
		t.Error("relayout should drop the highlight on the discarded element tree")
	}
}

func TestPortfolioSceneHoverHighlightsSingleElement(t *testing.T) {
	s, _ := newTestScene(t, 1280, 800)
	class := config.DefaultEffectsConfig().Cursor.HighlightClass

	for _, href := range []string{"#about", "#experience", "#projects"} {
		link := findLink(s.Document(), href)
		s.Step(mouseAt(link.Bounds.X+2, link.Bounds.Y+2), frameDT)

		highlighted := s.Document().ElementsWithClass(class)
		if len(highlighted) != 1 {
			t.Fatalf("hovering %s: %d elements highlighted, want 1", href, len(highlighted))
		}
		if highlighted[0].Closest(page.TagA) != link {
			t.Errorf("hovering %s highlighted %v", href, highlighted[0])
		}
	}
}

func TestPortfolioSceneNavigationScrolls(t *testing.T) {
	s, _ := newTestScene(t, 1280, 800)
	doc := s.Document()

	link := findLink(doc, "#experience")
	x, y := link.Bounds.X+link.Bounds.W/2, link.Bounds.Y+link.Bounds.H/2

	pressed := mouseAt(x, y)
	pressed.MousePressed = true
	s.Step(pressed, frameDT)
	s.Step(mouseAt(x, y), frameDT)

	for i := 0; i < 60; i++ {
		s.Step(mouseAt(x, y), frameDT)
	}

	section := doc.ElementByID("experience")
	want := min(section.Bounds.Y-64, doc.MaxScroll(800))
	if got := s.ScrollY(); got != want {
		t.Errorf("ScrollY after navigation = %v, want %v", got, want)
	}
}

func TestPortfolioSceneWheelScrolls(t *testing.T) {
	s, _ := newTestScene(t, 1280, 800)

	f := mouseAt(400, 400)
	f.WheelY = -2
	s.Step(f, frameDT)

	if got := s.ScrollY(); got != 120 {
		t.Errorf("ScrollY after two wheel notches = %v, want 120", got)
	}

	// 粒子收到滚动冲量
	if vy := s.Field().Dots()[0].VY; vy == 0 {
		t.Error("scrolling should nudge the particle field")
	}
}

func TestPortfolioSceneToggles(t *testing.T) {
	s, _ := newTestScene(t, 1280, 800)
	before := s.Bus().ListenerCount()

	s.ToggleParticles()
	if s.Field().Mounted() {
		t.Error("toggle should unmount the particle field")
	}
	if s.Bus().ListenerCount() >= before {
		t.Error("unmounting the field should remove its listeners")
	}

	s.ToggleCustomCursor()
	if s.CustomCursorActive() {
		t.Error("toggle should unmount the custom cursor")
	}
	if s.FrameLoop().Pending() != 0 {
		t.Errorf("pending frame callbacks with both effects off = %d, want 0", s.FrameLoop().Pending())
	}

	s.SetParticlesEnabled(true)
	s.SetCustomCursor(true)
	if !s.Field().Mounted() || !s.CustomCursorActive() {
		t.Error("effects should mount again")
	}
	if n := s.Bus().ListenerCount(); n != before {
		t.Errorf("listener count after remount = %d, want %d", n, before)
	}
}

func TestPortfolioSceneRespectsSettings(t *testing.T) {
	data, err := resume.Load(filepath.Join("..", "..", "data", "resume.yaml"))
	if err != nil {
		t.Fatalf("failed to load resume: %v", err)
	}
	settings := game.NewSettingsManager(nil)
	settings.SetParticlesEnabled(false)

	s := NewPortfolioScene(Options{
		Resume:   data,
		Viewport: game.NewViewport(1280, 800),
		Settings: settings,
		Measurer: monoMeasurer{},
		Year:     2025,
	})
	defer s.Unmount()

	if s.Field().Mounted() {
		t.Error("particles disabled in settings should not mount the field")
	}
	if !s.CustomCursorActive() {
		t.Error("custom cursor should still be mounted")
	}
}
