package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a full-screen view of the application.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Unmountable 是一个可选接口，用于在场景被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Unmount()：
//   - SceneManager.SwitchTo 切换到其他场景
//   - SceneManager.Shutdown（窗口关闭）
//
// Unmount 必须注销场景挂载时注册的所有事件监听器和帧回调。
type Unmountable interface {
	Unmount()
}
