package page

// Document 页面文档
//
// Header 固定在视口顶部，使用视口坐标；Body 随页面滚动，使用文档坐标
// （视口坐标 y 加上滚动偏移）。
type Document struct {
	Header *Element
	Body   *Element

	// Width 布局宽度，Height 文档总高度
	Width, Height float64

	// HeaderY 导航栏当前的竖直偏移（0 为完全显示，-Header 高度为完全隐藏）
	HeaderY float64
}

// ElementAt 返回视口坐标 (x, y) 处最深的元素
//
// 导航栏在页面内容之上，优先检测。点不在任何元素内时返回 nil。
func (d *Document) ElementAt(x, y, scrollY float64) *Element {
	if d.Header != nil {
		if found := d.Header.hit(x, y-d.HeaderY); found != nil {
			return found
		}
	}
	if d.Body != nil {
		return d.Body.hit(x, y+scrollY)
	}
	return nil
}

// Walk 遍历导航栏和页面内容的所有元素
func (d *Document) Walk(fn func(*Element)) {
	d.Header.Walk(fn)
	d.Body.Walk(fn)
}

// ElementByID 按 ID 查找元素
func (d *Document) ElementByID(id string) *Element {
	var found *Element
	d.Walk(func(e *Element) {
		if found == nil && e.ID == id {
			found = e
		}
	})
	return found
}

// ElementsWithClass 返回带有指定样式类的所有元素（文档顺序）
func (d *Document) ElementsWithClass(class string) []*Element {
	var out []*Element
	d.Walk(func(e *Element) {
		if e.HasClass(class) {
			out = append(out, e)
		}
	})
	return out
}

// MaxScroll 返回视口高度为 viewportHeight 时允许的最大滚动偏移
func (d *Document) MaxScroll(viewportHeight float64) float64 {
	return max(0, d.Height-viewportHeight)
}
