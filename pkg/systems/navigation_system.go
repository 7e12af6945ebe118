package systems

import (
	"log"
	"strings"

	"github.com/sriharicp/portfolio/pkg/events"
	"github.com/sriharicp/portfolio/pkg/page"
)

// Scroller 平滑滚动目标（由 ScrollSystem 实现）
type Scroller interface {
	ScrollTo(y float64)
	RevealHeader()
}

// NavigationSystem 处理链接点击
//
// 点击位置最近的 a 元素：
//   - "#id" 锚点：显示导航栏，平滑滚动到 目标顶部 - 导航栏高度
//   - 其他链接（mailto:、tel:、外部网址）只记录日志
type NavigationSystem struct {
	bus          *events.Bus
	scroller     Scroller
	hit          HitTester
	document     func() *page.Document
	headerOffset float64

	unsubscribe func()
}

// NewNavigationSystem 创建导航系统
//
// 参数:
//   - bus: 事件总线
//   - scroller: 平滑滚动
//   - hit: 命中测试（视口坐标）
//   - document: 返回当前文档（重新布局后文档会被替换）
//   - headerOffset: 锚点跳转时为固定导航栏预留的距离
func NewNavigationSystem(bus *events.Bus, scroller Scroller, hit HitTester, document func() *page.Document, headerOffset float64) *NavigationSystem {
	return &NavigationSystem{
		bus:          bus,
		scroller:     scroller,
		hit:          hit,
		document:     document,
		headerOffset: headerOffset,
	}
}

// Mount 订阅点击事件
func (s *NavigationSystem) Mount() {
	if s.unsubscribe != nil {
		return
	}
	s.unsubscribe = s.bus.Subscribe(events.Click, func(e events.Event) {
		s.HandleClick(e.X, e.Y)
	})
}

// Unmount 取消订阅
func (s *NavigationSystem) Unmount() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// HandleClick 处理视口坐标 (x, y) 处的点击
//
// 返回:
//   - string: 被点击链接的 href，未点中链接时为空
func (s *NavigationSystem) HandleClick(x, y float64) string {
	el := s.hit(x, y)
	if el == nil {
		return ""
	}
	link := el.Closest(page.TagA)
	if link == nil || link.Href == "" {
		return ""
	}

	if id, ok := strings.CutPrefix(link.Href, "#"); ok {
		s.scrollToAnchor(id)
		return link.Href
	}

	log.Printf("[Navigation] External link clicked: %s", link.Href)
	return link.Href
}

func (s *NavigationSystem) scrollToAnchor(id string) {
	doc := s.document()
	if doc == nil {
		return
	}
	target := doc.ElementByID(id)
	if target == nil {
		log.Printf("[Navigation] Anchor #%s not found", id)
		return
	}

	s.scroller.RevealHeader()
	s.scroller.ScrollTo(target.Bounds.Y - s.headerOffset)
}
