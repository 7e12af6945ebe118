package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sriharicp/portfolio/pkg/components"
	"github.com/sriharicp/portfolio/pkg/config"
)

// ParticleFieldRenderSystem 绘制粒子背景
// 背景层位于页面内容之下，坐标为视口坐标（不随页面滚动）
type ParticleFieldRenderSystem struct {
	field *ParticleFieldSystem
	cfg   config.FieldConfig
}

// NewParticleFieldRenderSystem 创建粒子背景渲染系统
func NewParticleFieldRenderSystem(field *ParticleFieldSystem, cfg config.FieldConfig) *ParticleFieldRenderSystem {
	return &ParticleFieldRenderSystem{field: field, cfg: cfg}
}

// Draw 绘制所有粒子
func (r *ParticleFieldRenderSystem) Draw(screen *ebiten.Image) {
	for _, d := range r.field.Dots() {
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.Radius), r.DotColor(d), true)
	}
}

// DotColor 返回粒子颜色
// 影响范围内：activeColor，不透明度 = 基础值 + 范围 × influence；范围外：静止色调
func (r *ParticleFieldRenderSystem) DotColor(d components.DotComponent) color.NRGBA {
	if !d.Active {
		return r.cfg.RestColor.NRGBA()
	}
	return r.cfg.ActiveColor.WithAlpha(r.cfg.ActiveColor.A + r.cfg.ActiveAlphaRange*d.Influence)
}
