package systems

import (
	"strings"
	"testing"

	"github.com/sriharicp/portfolio/pkg/events"
	"github.com/sriharicp/portfolio/pkg/page"
)

// fakeScroller 记录滚动请求
type fakeScroller struct {
	targets  []float64
	revealed int
}

func (f *fakeScroller) ScrollTo(y float64) { f.targets = append(f.targets, y) }
func (f *fakeScroller) RevealHeader()      { f.revealed++ }

func newTestNavigation(doc *page.Document, scrollY float64) (*NavigationSystem, *fakeScroller, *events.Bus) {
	bus := events.NewBus()
	sc := &fakeScroller{}
	hit := func(x, y float64) *page.Element { return doc.ElementAt(x, y, scrollY) }
	return NewNavigationSystem(bus, sc, hit, func() *page.Document { return doc }, 64), sc, bus
}

func centre(r page.Rect) (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func TestNavigationAnchorLink(t *testing.T) {
	doc := testDocument(1280, 800)
	nav, sc, _ := newTestNavigation(doc, 0)

	link := findElement(doc, func(e *page.Element) bool { return e.Href == "#experience" })
	if link == nil {
		t.Fatal("header should contain an #experience link")
	}
	section := doc.ElementByID("experience")

	x, y := centre(link.Bounds)
	if got := nav.HandleClick(x, y); got != "#experience" {
		t.Fatalf("HandleClick = %q, want #experience", got)
	}
	if len(sc.targets) != 1 || sc.targets[0] != section.Bounds.Y-64 {
		t.Errorf("scroll targets = %v, want [%v]", sc.targets, section.Bounds.Y-64)
	}
	if sc.revealed != 1 {
		t.Errorf("RevealHeader called %d times, want 1", sc.revealed)
	}
}

func TestNavigationExternalLink(t *testing.T) {
	doc := testDocument(1280, 800)
	link := findElement(doc, func(e *page.Element) bool { return strings.HasPrefix(e.Href, "mailto:") })
	if link == nil {
		t.Fatal("document should contain a mailto link")
	}

	// 滚动到链接所在位置，使其位于视口中部
	x, docY := centre(link.Bounds)
	scrollY := docY - 400
	nav, sc, _ := newTestNavigation(doc, scrollY)

	if got := nav.HandleClick(x, 400); got != "mailto:test@example.com" {
		t.Errorf("HandleClick = %q, want mailto:test@example.com", got)
	}
	if len(sc.targets) != 0 || sc.revealed != 0 {
		t.Error("external links must not scroll the page")
	}
}

func TestNavigationPlainArea(t *testing.T) {
	doc := testDocument(1280, 800)
	nav, sc, _ := newTestNavigation(doc, 0)

	tests := []struct {
		name string
		x, y float64
	}{
		{"导航栏空白处", 2, 2},
		{"页面空白处", 2, 700},
		{"视口外", -50, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nav.HandleClick(tt.x, tt.y); got != "" {
				t.Errorf("HandleClick = %q, want empty", got)
			}
		})
	}
	if len(sc.targets) != 0 {
		t.Errorf("plain clicks scrolled to %v", sc.targets)
	}
}

func TestNavigationMissingAnchor(t *testing.T) {
	body := page.NewElement(page.TagBody)
	body.Bounds = page.Rect{W: 100, H: 100}
	a := body.AppendChild(page.NewElement(page.TagA))
	a.Href = "#nowhere"
	a.Bounds = page.Rect{W: 50, H: 20}
	doc := &page.Document{Body: body, Height: 100}

	nav, sc, _ := newTestNavigation(doc, 0)
	if got := nav.HandleClick(10, 10); got != "#nowhere" {
		t.Errorf("HandleClick = %q, want #nowhere", got)
	}
	if len(sc.targets) != 0 {
		t.Error("missing anchor should not scroll")
	}
}

func TestNavigationClickSubscription(t *testing.T) {
	doc := testDocument(1280, 800)
	nav, sc, bus := newTestNavigation(doc, 0)
	link := findElement(doc, func(e *page.Element) bool { return e.Href == "#skills" })
	x, y := centre(link.Bounds)

	nav.Mount()
	nav.Mount()
	bus.Publish(events.Event{Type: events.Click, X: x, Y: y})
	if len(sc.targets) != 1 {
		t.Fatalf("click through the bus scrolled %d times, want 1", len(sc.targets))
	}

	nav.Unmount()
	if bus.ListenerCount() != 0 {
		t.Errorf("listener count after unmount = %d, want 0", bus.ListenerCount())
	}
	bus.Publish(events.Event{Type: events.Click, X: x, Y: y})
	if len(sc.targets) != 1 {
		t.Error("unmounted navigation should ignore clicks")
	}
}
