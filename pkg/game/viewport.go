package game

// Viewport 记录当前视口（窗口或浏览器画布）的逻辑尺寸
//
// 由 App.Layout 写入，供系统查询。尺寸为 0 表示绘图表面尚不可用。
type Viewport struct {
	width, height int
}

// NewViewport 创建指定尺寸的视口
func NewViewport(width, height int) *Viewport {
	return &Viewport{width: width, height: height}
}

// Set 更新视口尺寸，返回尺寸是否发生变化
func (v *Viewport) Set(width, height int) bool {
	if width == v.width && height == v.height {
		return false
	}
	v.width, v.height = width, height
	return true
}

// Size 返回视口尺寸
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Available 返回绘图表面是否可用
func (v *Viewport) Available() bool {
	return v.width > 0 && v.height > 0
}
