package systems

import (
	"unicode/utf8"

	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/events"
	"github.com/sriharicp/portfolio/pkg/page"
	"github.com/sriharicp/portfolio/pkg/resume"
)

// fakeSurface 固定尺寸的绘图表面
type fakeSurface struct {
	w, h int
}

func (s fakeSurface) Size() (int, int) { return s.w, s.h }

// monoMeasurer 等宽假字体：每个字符宽度为字号的一半
type monoMeasurer struct{}

func (monoMeasurer) Measure(s string, size float64, bold bool) float64 {
	return float64(utf8.RuneCountInString(s)) * size / 2
}

// eventRecorder 记录总线上发布的事件
type eventRecorder struct {
	events []events.Event
	stop   []func()
}

func newEventRecorder(bus *events.Bus, types ...events.Type) *eventRecorder {
	r := &eventRecorder{}
	for _, t := range types {
		r.stop = append(r.stop, bus.Subscribe(t, func(e events.Event) {
			r.events = append(r.events, e)
		}))
	}
	return r
}

func (r *eventRecorder) ofType(t events.Type) []events.Event {
	var out []events.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (r *eventRecorder) reset() {
	r.events = nil
}

// testResume 测试用的最小简历
func testResume() *resume.Data {
	return &resume.Data{
		Name:    "Test Person",
		Title:   "Tester",
		Summary: "Writes tests for a living.",
		Contact: resume.Contact{
			Email:    "test@example.com",
			Phone:    "+1 555 0100",
			Location: "Nowhere",
			LinkedIn: "https://www.linkedin.com/in/test",
		},
		Experience: []resume.Experience{
			{Role: "Engineer", Company: "Acme", Period: "2024", Description: []string{"Built things."}},
		},
		Education: []resume.Education{
			{Institution: "School", Degree: "Degree", Period: "2020", Description: []string{"Studied."}},
		},
		Skills:         []resume.Skill{{Name: "Go"}},
		Certifications: []resume.Certification{{Title: "Cert"}},
		Projects: []resume.Project{
			{Title: "Project", Focus: "Focus", Role: "Lead", Result: "Done"},
		},
		Languages: []string{"English"},
		Clubs:     []string{"Chess"},
	}
}

// testDocument 使用等宽字体排版测试简历
func testDocument(width, height float64) *page.Document {
	return page.Build(testResume(), monoMeasurer{}, page.Options{
		Width:  width,
		Height: height,
		Year:   2025,
		Config: config.DefaultEffectsConfig().Page,
	})
}

// findElement 返回第一个满足条件的元素
func findElement(doc *page.Document, match func(*page.Element) bool) *page.Element {
	var found *page.Element
	doc.Walk(func(e *page.Element) {
		if found == nil && match(e) {
			found = e
		}
	})
	return found
}
