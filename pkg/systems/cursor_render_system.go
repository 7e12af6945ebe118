package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sriharicp/portfolio/pkg/components"
	"github.com/sriharicp/portfolio/pkg/config"
)

// CursorRenderSystem 绘制自定义光标标记
//
// 标记是一张预先绘制的白色圆形图像，通过 GeoM 缩放、旋转后绘制：
// 本地 Y 轴使用沿运动方向的缩放，X 轴使用垂直方向的缩放，
// 旋转 (运动角 + 90°) 后本地 Y 轴恰好与运动方向对齐。
type CursorRenderSystem struct {
	cursor *CursorSystem
	cfg    config.CursorConfig
	marker *ebiten.Image
}

// NewCursorRenderSystem 创建光标渲染系统
func NewCursorRenderSystem(cursor *CursorSystem, cfg config.CursorConfig) *CursorRenderSystem {
	return &CursorRenderSystem{cursor: cursor, cfg: cfg}
}

// Draw 在页面内容之上绘制光标
func (r *CursorRenderSystem) Draw(screen *ebiten.Image) {
	if !r.cursor.Mounted() {
		return
	}
	if r.marker == nil {
		r.marker = newMarkerImage(r.cfg.Radius)
	}

	t := r.cursor.Transform()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = MarkerGeoM(t, float64(r.marker.Bounds().Dx()))
	op.Filter = ebiten.FilterLinear
	op.ColorScale.ScaleWithColor(r.markerColor())
	screen.DrawImage(r.marker, op)
}

func (r *CursorRenderSystem) markerColor() color.NRGBA {
	if r.cursor.State() == components.FollowerHovering {
		return r.cfg.HoverColor.NRGBA()
	}
	return r.cfg.Color.NRGBA()
}

// MarkerGeoM 计算标记图像的变换矩阵
//
// 参数:
//   - t: 光标变换
//   - size: 标记图像边长（像素）
func MarkerGeoM(t CursorTransform, size float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-size/2, -size/2)
	g.Scale(t.Base*t.ScaleCross, t.Base*t.ScaleLong)
	g.Rotate(t.Angle * math.Pi / 180)
	g.Translate(t.X, t.Y)
	return g
}

func newMarkerImage(radius float64) *ebiten.Image {
	size := int(math.Ceil(radius*2)) + 2
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, float32(radius), color.White, true)
	return img
}
