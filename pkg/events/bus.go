package events

// Handler 事件处理函数
type Handler func(Event)

type listener struct {
	id      uint64
	handler Handler
}

// Bus 事件总线
//
// Subscribe 返回的取消函数是移除监听器的唯一途径，
// 组件卸载时必须调用它注册时拿到的每一个取消函数。
type Bus struct {
	nextID    uint64
	listeners map[Type][]listener
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return &Bus{
		nextID:    1,
		listeners: make(map[Type][]listener),
	}
}

// Subscribe 注册监听器
//
// 返回：
//   - func(): 取消订阅函数，可重复调用
func (b *Bus) Subscribe(t Type, h Handler) func() {
	id := b.nextID
	b.nextID++
	b.listeners[t] = append(b.listeners[t], listener{id: id, handler: h})

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		b.remove(t, id)
	}
}

func (b *Bus) remove(t Type, id uint64) {
	list := b.listeners[t]
	for i, l := range list {
		if l.id == id {
			// 复制而不是原地删除：Publish 可能正在遍历旧切片
			next := make([]listener, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			if len(next) == 0 {
				delete(b.listeners, t)
			} else {
				b.listeners[t] = next
			}
			return
		}
	}
}

// Publish 按注册顺序同步分发事件
// 分发过程中新增或移除的监听器从下一次 Publish 开始生效
func (b *Bus) Publish(e Event) {
	for _, l := range b.listeners[e.Type] {
		l.handler(e)
	}
}

// ListenerCount 返回当前注册的监听器总数
func (b *Bus) ListenerCount() int {
	n := 0
	for _, list := range b.listeners {
		n += len(list)
	}
	return n
}
