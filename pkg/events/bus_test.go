package events

import "testing"

func TestBusPublishInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []int

	bus.Subscribe(Scroll, func(Event) { order = append(order, 1) })
	bus.Subscribe(Scroll, func(Event) { order = append(order, 2) })
	bus.Subscribe(Resize, func(Event) { order = append(order, 99) })

	bus.Publish(Event{Type: Scroll, ScrollY: 10})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected [1 2], got %v", order)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0

	unsubscribe := bus.Subscribe(PointerMove, func(Event) { calls++ })
	if bus.ListenerCount() != 1 {
		t.Fatalf("expected 1 listener, got %d", bus.ListenerCount())
	}

	unsubscribe()
	unsubscribe() // 重复调用无副作用

	bus.Publish(Event{Type: PointerMove})
	if calls != 0 {
		t.Errorf("handler called %d times after unsubscribe", calls)
	}
	if bus.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners, got %d", bus.ListenerCount())
	}
}

func TestBusUnsubscribeOnlyRemovesOwnListener(t *testing.T) {
	bus := NewBus()
	var got []string

	unA := bus.Subscribe(Click, func(Event) { got = append(got, "a") })
	bus.Subscribe(Click, func(Event) { got = append(got, "b") })

	unA()
	bus.Publish(Event{Type: Click})

	if len(got) != 1 || got[0] != "b" {
		t.Errorf("expected [b], got %v", got)
	}
}

func TestBusSubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	inner := 0

	bus.Subscribe(Wheel, func(Event) {
		bus.Subscribe(Wheel, func(Event) { inner++ })
	})

	bus.Publish(Event{Type: Wheel})
	if inner != 0 {
		t.Errorf("listener added during publish should not run in the same publish, ran %d times", inner)
	}

	bus.Publish(Event{Type: Wheel})
	if inner != 1 {
		t.Errorf("expected listener added during first publish to run once, ran %d times", inner)
	}
}

func TestBusNestedPublish(t *testing.T) {
	bus := NewBus()
	var scrolls []float64

	bus.Subscribe(Wheel, func(e Event) {
		bus.Publish(Event{Type: Scroll, ScrollY: e.DeltaY})
	})
	bus.Subscribe(Scroll, func(e Event) { scrolls = append(scrolls, e.ScrollY) })

	bus.Publish(Event{Type: Wheel, DeltaY: 40})

	if len(scrolls) != 1 || scrolls[0] != 40 {
		t.Errorf("expected nested scroll 40, got %v", scrolls)
	}
}

func TestTypeString(t *testing.T) {
	if PointerLeave.String() != "PointerLeave" {
		t.Errorf("unexpected name %q", PointerLeave.String())
	}
	if Type(42).String() != "Unknown" {
		t.Errorf("unexpected name %q", Type(42).String())
	}
}
