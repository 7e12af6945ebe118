// Package page 维护页面元素树（相当于浏览器中的 DOM）
//
// 元素树由 Build 根据简历数据和视口宽度生成，悬停检测、高亮样式类
// 和锚点导航都在这棵树上进行。元素坐标在布局时一次性算好，
// 视口尺寸变化时整棵树重新生成。
package page

import "image/color"

// Tag 元素标签
type Tag string

const (
	TagBody    Tag = "body"
	TagHeader  Tag = "header"
	TagNav     Tag = "nav"
	TagMain    Tag = "main"
	TagSection Tag = "section"
	TagFooter  Tag = "footer"
	TagDiv     Tag = "div"
	TagUl      Tag = "ul"
	TagLi      Tag = "li"
	TagP       Tag = "p"
	TagSpan    Tag = "span"
	TagA       Tag = "a"
	TagButton  Tag = "button"
	TagH1      Tag = "h1"
	TagH2      Tag = "h2"
	TagH3      Tag = "h3"
	TagH4      Tag = "h4"
	TagH5      Tag = "h5"
	TagH6      Tag = "h6"
)

// Rect 轴对齐矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（左闭右开）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bottom 矩形下边缘
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Right 矩形右边缘
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Union 返回同时包含 r 和 o 的最小矩形
func (r Rect) Union(o Rect) Rect {
	if r.W == 0 && r.H == 0 {
		return o
	}
	if o.W == 0 && o.H == 0 {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// TextStyle 文字样式
type TextStyle struct {
	Size  float64
	Bold  bool
	Color color.NRGBA
}

// BoxStyle 背景框样式，颜色 A 为 0 时不绘制
type BoxStyle struct {
	Fill   color.NRGBA
	Border color.NRGBA
	// Pill 是否绘制为胶囊形（两端半圆）
	Pill bool
}

// Line 一行已排版的文字，坐标与元素 Bounds 使用同一坐标系
type Line struct {
	Text string
	X, Y float64
}

// Element 页面元素
type Element struct {
	ID   string
	Tag  Tag
	Href string

	// Text 原始文字，Lines 为换行后的结果
	Text  string
	Lines []Line

	Bounds Rect
	Style  TextStyle
	Box    BoxStyle

	Parent   *Element
	Children []*Element

	classes map[string]struct{}
}

// NewElement 创建元素
func NewElement(tag Tag) *Element {
	return &Element{Tag: tag}
}

// AppendChild 添加子元素并返回它
func (e *Element) AppendChild(child *Element) *Element {
	child.Parent = e
	e.Children = append(e.Children, child)
	return child
}

// AddClass 添加样式类
func (e *Element) AddClass(class string) {
	if e.classes == nil {
		e.classes = make(map[string]struct{})
	}
	e.classes[class] = struct{}{}
}

// RemoveClass 移除样式类（不存在时无操作）
func (e *Element) RemoveClass(class string) {
	delete(e.classes, class)
}

// HasClass 判断是否带有样式类
func (e *Element) HasClass(class string) bool {
	_, ok := e.classes[class]
	return ok
}

// Closest 从自身开始向上查找第一个标签属于 tags 的元素
//
// 返回：
//   - *Element: 最近的匹配元素（可能是自身），找不到时返回 nil
func (e *Element) Closest(tags ...Tag) *Element {
	for cur := e; cur != nil; cur = cur.Parent {
		for _, t := range tags {
			if cur.Tag == t {
				return cur
			}
		}
	}
	return nil
}

// Walk 先序遍历以 e 为根的子树
func (e *Element) Walk(fn func(*Element)) {
	if e == nil {
		return
	}
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// hit 返回包含点 (x, y) 的最深元素
// 后添加的兄弟元素覆盖在先添加的之上，所以逆序检查
func (e *Element) hit(x, y float64) *Element {
	if !e.Bounds.Contains(x, y) {
		return nil
	}
	for i := len(e.Children) - 1; i >= 0; i-- {
		if found := e.Children[i].hit(x, y); found != nil {
			return found
		}
	}
	return e
}

// String 用于日志
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	s := "<" + string(e.Tag)
	if e.ID != "" {
		s += " #" + e.ID
	}
	if e.Text != "" {
		t := e.Text
		if len(t) > 24 {
			t = t[:24] + "..."
		}
		s += " " + t
	}
	return s + ">"
}
