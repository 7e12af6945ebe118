package components

import "github.com/sriharicp/portfolio/pkg/page"

// HoverHighlightComponent 悬停高亮组件
// 记录当前带有高亮样式类的页面元素（最多一个）
//
// 组件不拥有元素的生命周期，只负责在切换时移除旧元素的样式类、给新元素添加样式类。
type HoverHighlightComponent struct {
	// Element 当前高亮的元素，nil 表示没有
	Element *page.Element

	// Class 高亮样式类名
	Class string
}
