// Package components 定义系统使用的纯数据组件
//
// 组件只保存状态，不包含行为；更新逻辑在 pkg/systems 中。
package components

// DotComponent represents a single point of the interactive background grid.
//
// BaseX/BaseY are fixed when the grid is built and never change afterwards.
// Radius and Influence are recomputed every frame from the current pointer
// distance and are not meaningful across a grid rebuild.
//
// This is a pure data component - it contains no methods.
type DotComponent struct {
	// Anchor (锚点，网格重建前保持不变)
	BaseX float64
	BaseY float64

	// Current position (当前位置，像素)
	X float64
	Y float64

	// Velocity (速度，像素/帧)
	VX float64
	VY float64

	// Radius 当前绘制半径
	Radius float64

	// Influence 指针影响强度 0.0 ~ 1.0
	Influence float64

	// Active 本帧是否处于指针影响范围内
	// false 时使用静止色调绘制
	Active bool
}
