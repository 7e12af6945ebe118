package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sriharicp/portfolio/pkg/config"
	"github.com/sriharicp/portfolio/pkg/page"
)

// glowOffsets 高亮光晕的偏移（在文字四周各绘制一次半透明副本）
var glowOffsets = [][2]float64{{-1.5, 0}, {1.5, 0}, {0, -1.5}, {0, 1.5}}

// PageRenderSystem 绘制页面元素树
//
// 页面内容随滚动偏移移动，导航栏固定在顶部（带滑入滑出偏移）。
// 带有高亮样式类的元素在文字周围绘制青色光晕，文字改为白色。
type PageRenderSystem struct {
	fonts          *page.Fonts
	highlightClass string
}

// NewPageRenderSystem 创建页面渲染系统
func NewPageRenderSystem(fonts *page.Fonts, highlightClass string) *PageRenderSystem {
	return &PageRenderSystem{fonts: fonts, highlightClass: highlightClass}
}

// Draw 绘制页面内容和导航栏
func (r *PageRenderSystem) Draw(screen *ebiten.Image, doc *page.Document, scrollY float64) {
	if doc == nil {
		return
	}
	viewH := float64(screen.Bounds().Dy())

	r.drawTree(screen, doc.Body, -scrollY, viewH)
	if doc.Header != nil && doc.HeaderY > -doc.Header.Bounds.H {
		r.drawTree(screen, doc.Header, doc.HeaderY, viewH)
	}
}

// drawTree 先序绘制子树，跳过完全不在视口内的元素
func (r *PageRenderSystem) drawTree(screen *ebiten.Image, e *page.Element, dy, viewH float64) {
	top := e.Bounds.Y + dy
	if top > viewH || top+e.Bounds.H < 0 {
		return
	}

	r.drawBox(screen, e, dy)
	r.drawText(screen, e, dy)
	for _, c := range e.Children {
		r.drawTree(screen, c, dy, viewH)
	}
}

func (r *PageRenderSystem) drawBox(screen *ebiten.Image, e *page.Element, dy float64) {
	b := e.Box
	if b.Fill.A == 0 && b.Border.A == 0 {
		return
	}
	x, y := float32(e.Bounds.X), float32(e.Bounds.Y+dy)
	w, h := float32(e.Bounds.W), float32(e.Bounds.H)

	if b.Pill {
		// 胶囊形：两端半圆 + 中间矩形
		rad := h / 2
		if b.Border.A > 0 {
			vector.DrawFilledCircle(screen, x+rad, y+rad, rad+1, b.Border, true)
			vector.DrawFilledCircle(screen, x+w-rad, y+rad, rad+1, b.Border, true)
			vector.DrawFilledRect(screen, x+rad, y-1, w-2*rad, h+2, b.Border, true)
		}
		vector.DrawFilledCircle(screen, x+rad, y+rad, rad, b.Fill, true)
		vector.DrawFilledCircle(screen, x+w-rad, y+rad, rad, b.Fill, true)
		vector.DrawFilledRect(screen, x+rad, y, w-2*rad, h, b.Fill, true)
		return
	}

	if b.Fill.A > 0 {
		vector.DrawFilledRect(screen, x, y, w, h, b.Fill, true)
	}
	if b.Border.A > 0 {
		vector.StrokeRect(screen, x, y, w, h, 1, b.Border, true)
	}
}

func (r *PageRenderSystem) drawText(screen *ebiten.Image, e *page.Element, dy float64) {
	if len(e.Lines) == 0 {
		return
	}
	face := r.fonts.Face(e.Style.Size, e.Style.Bold)
	highlighted := e.HasClass(r.highlightClass)

	for _, line := range e.Lines {
		// 行高为字号的 1.5 倍，文字在行内竖直居中
		x, y := line.X, line.Y+dy+e.Style.Size*0.25

		if highlighted {
			for _, off := range glowOffsets {
				op := &text.DrawOptions{}
				op.GeoM.Translate(x+off[0], y+off[1])
				op.ColorScale.ScaleWithColor(config.ColorGlow)
				text.Draw(screen, line.Text, face, op)
			}
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		if highlighted {
			op.ColorScale.ScaleWithColor(config.ColorHeading)
		} else {
			op.ColorScale.ScaleWithColor(e.Style.Color)
		}
		text.Draw(screen, line.Text, face, op)
	}
}
