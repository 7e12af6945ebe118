package page

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/resume"
	"github.com/sriharicp/portfolio/pkg/utils"
)

// Measurer 文字宽度测量
// 由 Fonts 实现；测试中可以使用等宽的假实现
type Measurer interface {
	Measure(s string, size float64, bold bool) float64
}

// LineHeight 返回字号对应的行高
func LineHeight(size float64) float64 {
	return size * 1.5
}

// NavItems 导航栏条目
var NavItems = []string{"About", "Experience", "Education", "Skills", "Projects", "Reach Me"}

// NavTargetID 返回导航条目对应的区块 ID（"Reach Me" → "reach-me"）
func NavTargetID(item string) string {
	return strings.Replace(strings.ToLower(item), " ", "-", 1)
}

// ReachMeMessage 联系区块的引导语
const ReachMeMessage = "I'm always open to discussing new projects, creative ideas, or opportunities to be part of an amazing team. Let's connect!"

const (
	// narrowWidth 视口宽度小于此值时使用紧凑排版
	narrowWidth = 640
	cardPadding = 24
	gridGap     = 32
)

// Options 布局参数
type Options struct {
	// Width, Height 视口尺寸
	Width, Height float64
	// Year 页脚显示的年份
	Year int
	// Config 页面布局配置
	Config config.PageConfig
}

type align int

const (
	alignLeft align = iota
	alignCenter
)

type builder struct {
	m    Measurer
	cfg  config.PageConfig
	data *resume.Data

	width, height     float64
	contentX, contentW float64
	narrow            bool
}

// Build 根据简历数据生成页面元素树
//
// 参数:
//   - data: 简历数据
//   - m: 文字宽度测量
//   - opts: 视口尺寸、年份和布局配置
//
// 返回:
//   - *Document: 排版完成的文档，元素坐标已确定
func Build(data *resume.Data, m Measurer, opts Options) *Document {
	cfg := opts.Config
	b := &builder{
		m:      m,
		cfg:    cfg,
		data:   data,
		width:  opts.Width,
		height: opts.Height,
		narrow: opts.Width < narrowWidth,
	}
	b.contentW = min(cfg.MaxContentWidth, max(0, opts.Width-2*cfg.SidePadding))
	b.contentX = (opts.Width - b.contentW) / 2

	doc := &Document{Width: opts.Width}
	doc.Header = b.header()

	body := NewElement(TagBody)
	main := body.AppendChild(NewElement(TagMain))

	y := 0.0
	y = b.about(main, y).Bounds.Bottom()
	y = b.section(main, "summary", "Professional Summary", y, b.summary).Bounds.Bottom()
	y = b.section(main, "experience", "Experience", y, b.experience).Bounds.Bottom()
	y = b.section(main, "education", "Education", y, b.education).Bounds.Bottom()
	y = b.section(main, "skills", "Skills & Certifications", y, b.skills).Bounds.Bottom()
	y = b.section(main, "projects", "Projects", y, b.projects).Bounds.Bottom()
	y = b.section(main, "more-info", "More Info", y, b.moreInfo).Bounds.Bottom()
	y = b.section(main, "reach-me", "Reach Me", y, b.reachMe).Bounds.Bottom()
	main.Bounds = Rect{X: 0, Y: 0, W: b.width, H: y}

	footer := body.AppendChild(NewElement(TagFooter))
	copyright := fmt.Sprintf("© %d %s All rights reserved.", opts.Year, data.Name)
	p := b.block(footer, TagP, copyright, colored(14, config.ColorFaint), b.contentX, y+32, b.contentW, alignCenter)
	footer.Bounds = Rect{X: 0, Y: y, W: b.width, H: p.Bounds.Bottom() + 32 - y}

	body.Bounds = Rect{X: 0, Y: 0, W: b.width, H: footer.Bounds.Bottom()}
	doc.Body = body
	doc.Height = body.Bounds.H

	return doc
}

// ============================================================================
// 区块
// ============================================================================

func (b *builder) header() *Element {
	hdr := NewElement(TagHeader)
	hdr.Bounds = Rect{X: 0, Y: 0, W: b.width, H: b.cfg.HeaderHeight}
	hdr.Box.Fill = config.ColorHeaderBar

	nav := hdr.AppendChild(NewElement(TagNav))
	nav.Bounds = hdr.Bounds
	ul := nav.AppendChild(NewElement(TagUl))

	size, gap := 16.0, 32.0
	if b.narrow {
		size, gap = 14, 16
	}
	st := colored(size, config.ColorBody)

	links := make([]*Element, 0, len(NavItems))
	total := 0.0
	for i, item := range NavItems {
		a := b.inline(TagA, item, st, 0, 0)
		a.Href = "#" + NavTargetID(item)
		links = append(links, a)
		total += a.Bounds.W
		if i > 0 {
			total += gap
		}
	}

	// 放不下时左对齐（超出部分被裁剪），否则居中
	x := (b.width - total) / 2
	if total > b.width-2*b.cfg.SidePadding {
		x = b.cfg.SidePadding
	}
	y := (b.cfg.HeaderHeight - LineHeight(size)) / 2

	for _, a := range links {
		li := ul.AppendChild(NewElement(TagLi))
		a.translate(x, y)
		li.AppendChild(a)
		li.Bounds = a.Bounds
		ul.Bounds = ul.Bounds.Union(li.Bounds)
		x += a.Bounds.W + gap
	}

	return hdr
}

func (b *builder) about(main *Element, y float64) *Element {
	sec := main.AppendChild(NewElement(TagSection))
	sec.ID = "about"

	wrap := sec.AppendChild(NewElement(TagDiv))
	x, w := b.contentX, b.contentW

	nameSize, titleSize := 72.0, 30.0
	if b.narrow {
		nameSize, titleSize = 36, 20
	}

	cy := 0.0
	cy = b.block(wrap, TagH3, "MY PORTFOLIO", bold(16, config.ColorAccent), x, cy, w, alignCenter).Bounds.Bottom() + 8
	cy = b.block(wrap, TagH1, b.data.Name, heading(nameSize), x, cy, w, alignCenter).Bounds.Bottom() + 16
	cy = b.block(wrap, TagH2, b.data.Title, colored(titleSize, config.ColorAccent), x, cy, w, alignCenter).Bounds.Bottom() + 32

	c := b.data.Contact
	st := colored(15, config.ColorMuted)
	items := []*Element{
		b.link(c.Email, "mailto:"+c.Email, st),
		b.link(c.Phone, "tel:"+c.Phone, st),
		b.link("LinkedIn", c.LinkedIn, st),
		b.inline(TagSpan, c.Location, st, 0, 0),
	}
	contactW := min(w, 448)
	contacts := wrap.AppendChild(NewElement(TagDiv))
	contacts.Bounds = b.flow(contacts, items, x+(w-contactW)/2, cy, contactW, 24, 12, true)
	cy = contacts.Bounds.Bottom()

	wrap.Bounds = Rect{X: x, Y: 0, W: w, H: cy}

	// 首屏区块至少占满一屏，内容竖直居中
	height := max(b.height, cy+160)
	wrap.translate(0, y+(height-cy)/2)
	sec.Bounds = Rect{X: 0, Y: y, W: b.width, H: height}

	return sec
}

func (b *builder) summary(sec *Element, y float64) float64 {
	size := 20.0
	if b.narrow {
		size = 16
	}
	w := min(b.contentW, 768)
	p := b.block(sec, TagP, b.data.Summary, colored(size, config.ColorBody), b.contentX+(b.contentW-w)/2, y, w, alignCenter)
	return p.Bounds.Bottom()
}

func (b *builder) experience(sec *Element, y float64) float64 {
	wrap := sec.AppendChild(NewElement(TagDiv))

	// 时间线竖线先添加，条目覆盖在其上
	line := wrap.AppendChild(NewElement(TagDiv))
	line.Box.Fill = config.ColorAccent

	indent := 80.0
	if b.narrow {
		indent = 56
	}
	x := b.contentX + indent
	w := b.contentW - indent

	cy := y
	for i, exp := range b.data.Experience {
		item := wrap.AppendChild(NewElement(TagDiv))

		marker := item.AppendChild(NewElement(TagDiv))
		marker.Bounds = Rect{X: b.contentX, Y: cy, W: 48, H: 48}
		marker.Box = BoxStyle{Fill: config.ColorBadge, Border: config.ColorAccentDim, Pill: true}

		top := cy
		cy = b.block(item, TagH3, exp.Role, heading(18), x, cy+4, w, alignLeft).Bounds.Bottom()
		cy = b.block(item, TagP, exp.Company, colored(16, config.ColorAccentDim), x, cy, w, alignLeft).Bounds.Bottom() + 4
		cy = b.block(item, TagP, exp.Period, colored(14, config.ColorFaint), x, cy, w, alignLeft).Bounds.Bottom() + 12
		cy = b.list(item, exp.Description, colored(16, config.ColorBody), x, cy, w, 4).Bounds.Bottom()

		item.Bounds = Rect{X: b.contentX, Y: top, W: b.contentW, H: max(cy, marker.Bounds.Bottom()) - top}
		cy = item.Bounds.Bottom()
		if i < len(b.data.Experience)-1 {
			cy += 32
		}
	}

	line.Bounds = Rect{X: b.contentX + 23, Y: y, W: 2, H: cy - y}
	wrap.Bounds = Rect{X: b.contentX, Y: y, W: b.contentW, H: cy - y}
	return cy
}

func (b *builder) education(sec *Element, y float64) float64 {
	edu := b.data.Education
	return b.grid(sec, len(edu), y, gridGap, func(parent *Element, i int, x, y, w float64) *Element {
		e := edu[i]
		return b.card(parent, x, y, w, func(card *Element, x, y, w float64) float64 {
			y = b.block(card, TagH3, e.Institution, heading(20), x, y, w, alignLeft).Bounds.Bottom()
			y = b.block(card, TagP, e.Degree, colored(16, config.ColorAccent), x, y, w, alignLeft).Bounds.Bottom() + 4
			y = b.block(card, TagP, e.Period, colored(14, config.ColorFaint), x, y, w, alignLeft).Bounds.Bottom() + 16
			return b.list(card, e.Description, colored(16, config.ColorMuted), x, y, w, 4).Bounds.Bottom()
		})
	})
}

func (b *builder) skills(sec *Element, y float64) float64 {
	x, w := b.contentX, b.contentW

	y = b.block(sec, TagH3, "Core Skills", heading(24), x, y, w, alignCenter).Bounds.Bottom() + 24

	badgeStyle := colored(14, config.ColorBody)
	badges := make([]*Element, 0, len(b.data.Skills))
	for _, s := range b.data.Skills {
		badge := b.inline(TagSpan, s.Name, badgeStyle, 16, 6)
		badge.Box = BoxStyle{Fill: config.ColorBadge, Border: config.ColorCardBorder, Pill: true}
		badges = append(badges, badge)
	}
	wrap := sec.AppendChild(NewElement(TagDiv))
	wrap.Bounds = b.flow(wrap, badges, x, y, w, 12, 12, true)
	y = wrap.Bounds.Bottom() + 48

	y = b.block(sec, TagH3, "Certifications", heading(24), x, y, w, alignCenter).Bounds.Bottom() + 24

	certs := b.data.Certifications
	return b.grid(sec, len(certs), y, 16, func(parent *Element, i int, x, y, w float64) *Element {
		div := parent.AppendChild(NewElement(TagDiv))
		span := b.block(div, TagSpan, "• "+certs[i].Title, colored(16, config.ColorBody), x, y, w, alignLeft)
		div.Bounds = span.Bounds
		return div
	})
}

func (b *builder) projects(sec *Element, y float64) float64 {
	projects := b.data.Projects
	return b.grid(sec, len(projects), y, gridGap, func(parent *Element, i int, x, y, w float64) *Element {
		p := projects[i]
		return b.card(parent, x, y, w, func(card *Element, x, y, w float64) float64 {
			y = b.block(card, TagH3, p.Title, heading(20), x, y, w, alignLeft).Bounds.Bottom() + 16

			rows := []string{"Focus: " + p.Focus}
			if p.Problem != "" {
				rows = append(rows, "Problem: "+p.Problem)
			}
			rows = append(rows, "Role: "+p.Role)
			if p.Skill != "" {
				rows = append(rows, "Skill Applied: "+p.Skill)
			}
			if p.Tools != "" {
				rows = append(rows, "Tools: "+p.Tools)
			}
			y = b.list(card, rows, colored(14, config.ColorMuted), x, y, w, 8).Bounds.Bottom() + 16

			divider := card.AppendChild(NewElement(TagDiv))
			divider.Bounds = Rect{X: x, Y: y, W: w, H: 1}
			divider.Box.Fill = config.ColorCardBorder
			y += 16

			return b.block(card, TagP, "Result: "+p.Result, bold(14, config.ColorAccent), x, y, w, alignLeft).Bounds.Bottom()
		})
	})
}

func (b *builder) moreInfo(sec *Element, y float64) float64 {
	cards := []struct {
		title string
		items []string
	}{
		{"Languages", b.data.Languages},
		{"Clubs", b.data.Clubs},
	}
	return b.grid(sec, len(cards), y, gridGap, func(parent *Element, i int, x, y, w float64) *Element {
		c := cards[i]
		return b.card(parent, x, y, w, func(card *Element, x, y, w float64) float64 {
			y = b.block(card, TagH3, c.title, heading(24), x, y, w, alignLeft).Bounds.Bottom() + 8
			return b.list(card, c.items, colored(16, config.ColorMuted), x, y, w, 8).Bounds.Bottom()
		})
	})
}

func (b *builder) reachMe(sec *Element, y float64) float64 {
	size := 20.0
	if b.narrow {
		size = 16
	}
	w := min(b.contentW, 672)
	x := b.contentX + (b.contentW-w)/2
	y = b.block(sec, TagP, ReachMeMessage, colored(size, config.ColorBody), x, y, w, alignCenter).Bounds.Bottom() + 32

	c := b.data.Contact
	st := colored(17, config.ColorBody)
	buttons := []*Element{
		b.link(c.Email, "mailto:"+c.Email, st),
		b.link("LinkedIn", c.LinkedIn, st),
	}
	for _, btn := range buttons {
		// 按钮样式：重新按内边距计算尺寸
		btn.Lines[0].X, btn.Lines[0].Y = 24, 12
		btn.Bounds.W += 48
		btn.Bounds.H += 24
		btn.Box = BoxStyle{Fill: config.ColorBadge, Border: config.ColorCardBorder}
	}

	wrap := sec.AppendChild(NewElement(TagDiv))
	wrap.Bounds = b.flow(wrap, buttons, x, y, w, 24, 16, true)
	return wrap.Bounds.Bottom()
}

// section 创建带标题的标准区块
func (b *builder) section(main *Element, id, title string, y float64, body func(sec *Element, y float64) float64) *Element {
	sec := main.AppendChild(NewElement(TagSection))
	sec.ID = id

	pad := b.cfg.SectionSpacing / 2
	titleSize := 36.0
	if b.narrow {
		titleSize = 30
	}

	top := y
	y += pad
	h := b.block(sec, TagH2, title, heading(titleSize), b.contentX, y, b.contentW, alignCenter)
	y = body(sec, h.Bounds.Bottom()+40) + pad

	sec.Bounds = Rect{X: 0, Y: top, W: b.width, H: y - top}
	return sec
}

// ============================================================================
// 排版基础
// ============================================================================

// block 创建块级文字元素，宽度占满 w，文字自动换行
func (b *builder) block(parent *Element, tag Tag, s string, st TextStyle, x, y, w float64, al align) *Element {
	e := parent.AppendChild(NewElement(tag))
	e.Text = s
	e.Style = st

	measure := func(t string) float64 { return b.m.Measure(t, st.Size, st.Bold) }
	lh := LineHeight(st.Size)
	for i, line := range utils.WrapText(s, measure, w) {
		lx := x
		if al == alignCenter {
			lx = x + max(0, w-measure(line))/2
		}
		e.Lines = append(e.Lines, Line{Text: line, X: lx, Y: y + float64(i)*lh})
	}

	e.Bounds = Rect{X: x, Y: y, W: w, H: float64(len(e.Lines)) * lh}
	return e
}

// inline 创建单行的行内元素，位于原点，由 flow 或调用方定位
func (b *builder) inline(tag Tag, s string, st TextStyle, padX, padY float64) *Element {
	e := NewElement(tag)
	e.Text = s
	e.Style = st
	e.Lines = []Line{{Text: s, X: padX, Y: padY}}
	e.Bounds = Rect{W: b.m.Measure(s, st.Size, st.Bold) + 2*padX, H: LineHeight(st.Size) + 2*padY}
	return e
}

func (b *builder) link(s, href string, st TextStyle) *Element {
	a := b.inline(TagA, s, st, 0, 0)
	a.Href = href
	return a
}

// flow 将行内元素从左到右排列，超出宽度时换行
//
// 返回:
//   - Rect: 所有元素占据的区域（宽度为 w）
func (b *builder) flow(parent *Element, items []*Element, x, y, w, gapX, gapY float64, center bool) Rect {
	top := y
	for start := 0; start < len(items); {
		// 找出本行能放下的元素
		end, rowW, rowH := start, 0.0, 0.0
		for end < len(items) {
			iw := items[end].Bounds.W
			next := rowW + iw
			if end > start {
				next += gapX
			}
			if end > start && next > w {
				break
			}
			rowW = next
			rowH = max(rowH, items[end].Bounds.H)
			end++
		}

		cx := x
		if center {
			cx = x + max(0, w-rowW)/2
		}
		for _, it := range items[start:end] {
			it.translate(cx-it.Bounds.X, y-it.Bounds.Y)
			parent.AppendChild(it)
			cx += it.Bounds.W + gapX
		}

		y += rowH
		start = end
		if start < len(items) {
			y += gapY
		}
	}
	return Rect{X: x, Y: top, W: w, H: y - top}
}

// grid 按一列或两列网格排列，同一行的元素等高
func (b *builder) grid(parent *Element, n int, y, gap float64, build func(parent *Element, i int, x, y, w float64) *Element) float64 {
	cols := 2
	if b.contentW < narrowWidth {
		cols = 1
	}
	colW := (b.contentW - float64(cols-1)*gap) / float64(cols)

	for row := 0; row*cols < n; row++ {
		if row > 0 {
			y += gap
		}
		var cells []*Element
		rowH := 0.0
		for c := 0; c < cols && row*cols+c < n; c++ {
			x := b.contentX + float64(c)*(colW+gap)
			cell := build(parent, row*cols+c, x, y, colW)
			cells = append(cells, cell)
			rowH = max(rowH, cell.Bounds.H)
		}
		for _, cell := range cells {
			cell.Bounds.H = rowH
		}
		y += rowH
	}
	return y
}

// card 创建带背景和边框的卡片，fill 返回内容底部坐标
func (b *builder) card(parent *Element, x, y, w float64, fill func(card *Element, x, y, w float64) float64) *Element {
	card := parent.AppendChild(NewElement(TagDiv))
	card.Box = BoxStyle{Fill: config.ColorCard, Border: config.ColorCardBorder}

	bottom := fill(card, x+cardPadding, y+cardPadding, w-2*cardPadding)
	card.Bounds = Rect{X: x, Y: y, W: w, H: bottom + cardPadding - y}
	return card
}

// list 创建 ul，每个条目一个 li
func (b *builder) list(parent *Element, items []string, st TextStyle, x, y, w, gap float64) *Element {
	ul := parent.AppendChild(NewElement(TagUl))
	cy := y
	for i, it := range items {
		li := b.block(ul, TagLi, "• "+it, st, x, cy, w, alignLeft)
		cy = li.Bounds.Bottom()
		if i < len(items)-1 {
			cy += gap
		}
	}
	ul.Bounds = Rect{X: x, Y: y, W: w, H: cy - y}
	return ul
}

// translate 平移元素及其子树
func (e *Element) translate(dx, dy float64) {
	e.Bounds.X += dx
	e.Bounds.Y += dy
	for i := range e.Lines {
		e.Lines[i].X += dx
		e.Lines[i].Y += dy
	}
	for _, c := range e.Children {
		c.translate(dx, dy)
	}
}

func heading(size float64) TextStyle {
	return TextStyle{Size: size, Bold: true, Color: config.ColorHeading}
}

func bold(size float64, c color.NRGBA) TextStyle {
	return TextStyle{Size: size, Bold: true, Color: c}
}

func colored(size float64, c color.NRGBA) TextStyle {
	return TextStyle{Size: size, Color: c}
}
