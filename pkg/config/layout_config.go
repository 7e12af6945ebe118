package config

import "image/color"

// 窗口与页面布局常量
// 页面的逻辑尺寸跟随窗口尺寸（响应式），这里只定义初始窗口大小和配色

const (
	// DefaultWindowWidth 桌面端初始窗口宽度
	DefaultWindowWidth = 1280

	// DefaultWindowHeight 桌面端初始窗口高度
	DefaultWindowHeight = 800

	// TicksPerSecond 逻辑帧率
	// 光标弹簧按固定步长积分，步长 = 1 / TicksPerSecond
	TicksPerSecond = 60
)

// 页面配色（Tailwind 调色板）
var (
	// ColorBackground 页面背景（gray-950）
	ColorBackground = color.NRGBA{R: 3, G: 7, B: 18, A: 255}

	// ColorHeading 标题文字（white）
	ColorHeading = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// ColorAccent 强调色（cyan-400）
	ColorAccent = color.NRGBA{R: 34, G: 211, B: 238, A: 255}

	// ColorAccentDim 次强调色（cyan-500）
	ColorAccentDim = color.NRGBA{R: 6, G: 182, B: 212, A: 255}

	// ColorBody 正文（gray-300）
	ColorBody = color.NRGBA{R: 209, G: 213, B: 219, A: 255}

	// ColorMuted 次要文字（gray-400）
	ColorMuted = color.NRGBA{R: 156, G: 163, B: 175, A: 255}

	// ColorFaint 日期等弱化文字（gray-500）
	ColorFaint = color.NRGBA{R: 107, G: 114, B: 128, A: 255}

	// ColorCard 卡片背景（gray-900/50）
	ColorCard = color.NRGBA{R: 17, G: 24, B: 39, A: 128}

	// ColorCardBorder 卡片边框（white/10）
	ColorCardBorder = color.NRGBA{R: 255, G: 255, B: 255, A: 26}

	// ColorBadge 技能徽章背景（gray-800/70）
	ColorBadge = color.NRGBA{R: 31, G: 41, B: 55, A: 179}

	// ColorHeaderBar 顶部导航栏背景（black/30）
	ColorHeaderBar = color.NRGBA{R: 0, G: 0, B: 0, A: 77}

	// ColorGlow 悬停高亮光晕
	ColorGlow = color.NRGBA{R: 34, G: 211, B: 238, A: 90}
)
