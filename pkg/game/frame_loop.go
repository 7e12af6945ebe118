package game

// FrameFunc 每帧回调，dt 为距上一帧的秒数
type FrameFunc func(dt float64)

type frameEntry struct {
	id uint64
	fn FrameFunc
}

// FrameLoop 帧回调调度器
//
// 相当于浏览器中的 requestAnimationFrame / cancelAnimationFrame：
// 组件挂载时通过 Request 注册每帧回调，卸载时调用返回的取消函数。
// Stop 之后 Tick 不再执行任何回调。
//
// 所有方法都只能在 Update 协程上调用。
type FrameLoop struct {
	nextID  uint64
	entries []frameEntry
	stopped bool
}

// NewFrameLoop 创建帧回调调度器
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{nextID: 1}
}

// Request 注册每帧回调
//
// 返回：
//   - func(): 取消函数，可重复调用
func (l *FrameLoop) Request(fn FrameFunc) func() {
	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, frameEntry{id: id, fn: fn})

	cancelled := false
	return func() {
		if cancelled {
			return
		}
		cancelled = true
		l.cancel(id)
	}
}

func (l *FrameLoop) cancel(id uint64) {
	for i, e := range l.entries {
		if e.id == id {
			next := make([]frameEntry, 0, len(l.entries)-1)
			next = append(next, l.entries[:i]...)
			l.entries = append(next, l.entries[i+1:]...)
			return
		}
	}
}

// Tick 按注册顺序执行一帧
func (l *FrameLoop) Tick(dt float64) {
	if l.stopped {
		return
	}
	for _, e := range l.entries {
		e.fn(dt)
		if l.stopped {
			return
		}
	}
}

// Stop 停止调度并丢弃所有回调
func (l *FrameLoop) Stop() {
	l.stopped = true
	l.entries = nil
}

// Stopped 返回是否已停止
func (l *FrameLoop) Stopped() bool {
	return l.stopped
}

// Pending 返回已注册的回调数量
func (l *FrameLoop) Pending() int {
	return len(l.entries)
}
