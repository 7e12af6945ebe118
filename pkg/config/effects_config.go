package config

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/sriharicp/portfolio/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EffectsConfigPath 内嵌效果配置文件路径
const EffectsConfigPath = "data/config/effects.yaml"

// EffectsConfig 视觉效果总配置
//
// 包含粒子背景、自定义光标和页面布局三部分。
//
// 配置文件位置: data/config/effects.yaml
type EffectsConfig struct {
	// Field 粒子背景配置
	Field FieldConfig `yaml:"field"`

	// Cursor 自定义光标配置
	Cursor CursorConfig `yaml:"cursor"`

	// Page 页面布局与滚动配置
	Page PageConfig `yaml:"page"`
}

// RGBA 配置文件中的颜色，A 为 0.0 ~ 1.0 的不透明度
type RGBA struct {
	R uint8   `yaml:"r"`
	G uint8   `yaml:"g"`
	B uint8   `yaml:"b"`
	A float64 `yaml:"a"`
}

// NRGBA 转换为非预乘颜色
func (c RGBA) NRGBA() color.NRGBA {
	return c.WithAlpha(c.A)
}

// WithAlpha 使用指定不透明度生成颜色（0.0 ~ 1.0，超出范围会被截断）
func (c RGBA) WithAlpha(alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}

// FieldConfig 粒子背景配置
type FieldConfig struct {
	// Spacing 宽屏网格间距（像素）
	Spacing float64 `yaml:"spacing"`
	// NarrowSpacing 窄屏网格间距（像素）
	NarrowSpacing float64 `yaml:"narrowSpacing"`
	// NarrowBreakpoint 视口宽度小于此值时使用 NarrowSpacing
	NarrowBreakpoint int `yaml:"narrowBreakpoint"`

	// ProximityRadius 指针影响半径，距离小于此值的粒子会被放大、提亮
	ProximityRadius float64 `yaml:"proximityRadius"`
	// BaseRadius 粒子静止半径
	BaseRadius float64 `yaml:"baseRadius"`
	// RadiusBoost influence=1 时的半径增量
	RadiusBoost float64 `yaml:"radiusBoost"`
	// RadiusEase 超出影响范围后半径每帧回落的比例
	RadiusEase float64 `yaml:"radiusEase"`

	// Spring 弹簧系数（指向锚点的加速度 = 偏移 × Spring）
	Spring float64 `yaml:"spring"`
	// Friction 每帧速度衰减系数
	Friction float64 `yaml:"friction"`
	// ScrollImpulse 滚动增量转换为竖直速度的系数
	ScrollImpulse float64 `yaml:"scrollImpulse"`
	// Sentinel 指针离开画布后使用的哨兵坐标（X、Y 相同）
	Sentinel float64 `yaml:"sentinel"`

	// RestColor 静止色调
	RestColor RGBA `yaml:"restColor"`
	// ActiveColor 受指针影响时的颜色，A 为 influence=0 时的不透明度
	ActiveColor RGBA `yaml:"activeColor"`
	// ActiveAlphaRange influence 从 0 到 1 时不透明度的增量
	ActiveAlphaRange float64 `yaml:"activeAlphaRange"`
}

// SpacingFor 根据视口宽度返回网格间距
func (c FieldConfig) SpacingFor(width int) float64 {
	if width < c.NarrowBreakpoint {
		return c.NarrowSpacing
	}
	return c.Spacing
}

// SpringConfig 阻尼弹簧参数（阻尼、刚度、质量）
type SpringConfig struct {
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
	Mass      float64 `yaml:"mass"`
}

// AngularFrequency 无阻尼角频率 ω = √(k/m)
func (s SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio 阻尼比 ζ = c / (2√(k·m))
func (s SpringConfig) DampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// CursorConfig 自定义光标配置
type CursorConfig struct {
	// Position 位置平滑弹簧
	Position SpringConfig `yaml:"position"`
	// Velocity 速度平滑弹簧
	Velocity SpringConfig `yaml:"velocity"`

	// AngleOffset 朝向角度偏移（度）
	AngleOffset float64 `yaml:"angleOffset"`
	// StretchSpeed 拉伸饱和速度（像素/采样）
	StretchSpeed float64 `yaml:"stretchSpeed"`
	// RestScale 常态基础缩放
	RestScale float64 `yaml:"restScale"`
	// HoverScale 悬停文字/可交互元素时的基础缩放
	HoverScale float64 `yaml:"hoverScale"`
	// Radius 光标标记半径（像素，缩放前）
	Radius float64 `yaml:"radius"`

	// InitialX, InitialY 首次移动前的光标位置
	InitialX float64 `yaml:"initialX"`
	InitialY float64 `yaml:"initialY"`

	// HighlightClass 悬停元素上添加的样式类
	HighlightClass string `yaml:"highlightClass"`
	// HoverTags 触发悬停状态的元素标签
	HoverTags []string `yaml:"hoverTags"`

	Color      RGBA `yaml:"color"`
	HoverColor RGBA `yaml:"hoverColor"`
}

// PageConfig 页面布局与滚动配置
type PageConfig struct {
	MaxContentWidth float64 `yaml:"maxContentWidth"`
	SidePadding     float64 `yaml:"sidePadding"`

	// HeaderHeight 顶部导航栏高度
	HeaderHeight float64 `yaml:"headerHeight"`
	// HeaderOffset 锚点跳转时为固定导航栏预留的距离
	HeaderOffset float64 `yaml:"headerOffset"`
	// HeaderHideThreshold 向下滚动超过此距离后隐藏导航栏
	HeaderHideThreshold float64 `yaml:"headerHideThreshold"`
	// HeaderSlideDuration 导航栏显示/隐藏动画时长（秒）
	HeaderSlideDuration float64 `yaml:"headerSlideDuration"`

	// ScrollDuration 平滑滚动时长（秒）
	ScrollDuration float64 `yaml:"scrollDuration"`
	// WheelStep 滚轮每格滚动距离
	WheelStep float64 `yaml:"wheelStep"`
	// KeyStep 方向键每次滚动距离
	KeyStep float64 `yaml:"keyStep"`

	SectionSpacing float64 `yaml:"sectionSpacing"`
}

// DefaultEffectsConfig 返回默认配置
func DefaultEffectsConfig() *EffectsConfig {
	return &EffectsConfig{
		Field: FieldConfig{
			Spacing:          40,
			NarrowSpacing:    60,
			NarrowBreakpoint: 768,
			ProximityRadius:  150,
			BaseRadius:       2,
			RadiusBoost:      5,
			RadiusEase:       0.1,
			Spring:           0.06,
			Friction:         0.85,
			ScrollImpulse:    0.4,
			Sentinel:         -1000,
			RestColor:        RGBA{R: 34, G: 211, B: 238, A: 0.2},
			ActiveColor:      RGBA{R: 103, G: 232, B: 249, A: 0.4},
			ActiveAlphaRange: 0.6,
		},
		Cursor: CursorConfig{
			Position:       SpringConfig{Damping: 25, Stiffness: 400, Mass: 0.5},
			Velocity:       SpringConfig{Damping: 20, Stiffness: 200, Mass: 1},
			AngleOffset:    90,
			StretchSpeed:   200,
			RestScale:      1,
			HoverScale:     4,
			Radius:         8,
			InitialX:       -100,
			InitialY:       -100,
			HighlightClass: "text-glow-hover",
			HoverTags:      []string{"p", "h1", "h2", "h3", "h4", "h5", "h6", "a", "span", "li", "button"},
			Color:          RGBA{R: 34, G: 211, B: 238, A: 0.9},
			HoverColor:     RGBA{R: 255, G: 255, B: 255, A: 0.25},
		},
		Page: PageConfig{
			MaxContentWidth:     768,
			SidePadding:         24,
			HeaderHeight:        64,
			HeaderOffset:        64,
			HeaderHideThreshold: 100,
			HeaderSlideDuration: 0.35,
			ScrollDuration:      0.6,
			WheelStep:           60,
			KeyStep:             48,
			SectionSpacing:      72,
		},
	}
}

// ParseEffectsConfig 解析 YAML 配置
//
// 在默认配置基础上覆盖，文件中未出现的字段保持默认值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *EffectsConfig: 解析并校验后的配置
//   - error: 解析或校验失败时返回错误
func ParseEffectsConfig(data []byte) (*EffectsConfig, error) {
	cfg := DefaultEffectsConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effects config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid effects config: %w", err)
	}

	return cfg, nil
}

// LoadEffectsConfig 从文件系统加载配置（用于 --config 参数）
func LoadEffectsConfig(path string) (*EffectsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects config: %w", err)
	}
	return ParseEffectsConfig(data)
}

// LoadEmbeddedEffectsConfig 从内嵌资源加载配置
func LoadEmbeddedEffectsConfig() (*EffectsConfig, error) {
	data, err := embedded.ReadFile(EffectsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects config: %w", err)
	}
	return ParseEffectsConfig(data)
}

// Validate 验证配置的合法性
func (c *EffectsConfig) Validate() error {
	f := c.Field
	if f.Spacing <= 0 || f.NarrowSpacing <= 0 {
		return fmt.Errorf("field spacing must be positive (spacing=%v, narrowSpacing=%v)", f.Spacing, f.NarrowSpacing)
	}
	if f.ProximityRadius <= 0 {
		return fmt.Errorf("field proximityRadius must be positive, got %v", f.ProximityRadius)
	}
	if f.Friction <= 0 || f.Friction >= 1 {
		return fmt.Errorf("field friction must be in (0, 1), got %v", f.Friction)
	}
	if f.Spring <= 0 {
		return fmt.Errorf("field spring must be positive, got %v", f.Spring)
	}
	if f.RadiusEase <= 0 || f.RadiusEase > 1 {
		return fmt.Errorf("field radiusEase must be in (0, 1], got %v", f.RadiusEase)
	}

	cur := c.Cursor
	for name, s := range map[string]SpringConfig{"position": cur.Position, "velocity": cur.Velocity} {
		if s.Damping < 0 || s.Stiffness <= 0 || s.Mass <= 0 {
			return fmt.Errorf("cursor %s spring invalid (damping=%v, stiffness=%v, mass=%v)", name, s.Damping, s.Stiffness, s.Mass)
		}
	}
	if cur.StretchSpeed <= 0 {
		return fmt.Errorf("cursor stretchSpeed must be positive, got %v", cur.StretchSpeed)
	}
	if cur.HighlightClass == "" {
		return fmt.Errorf("cursor highlightClass must not be empty")
	}
	if len(cur.HoverTags) == 0 {
		return fmt.Errorf("cursor hoverTags must not be empty")
	}

	p := c.Page
	if p.MaxContentWidth <= 0 || p.HeaderHeight < 0 || p.ScrollDuration < 0 {
		return fmt.Errorf("page layout invalid (maxContentWidth=%v, headerHeight=%v, scrollDuration=%v)",
			p.MaxContentWidth, p.HeaderHeight, p.ScrollDuration)
	}

	return nil
}
