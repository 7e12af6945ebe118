package utils

import (
	"testing"
)

func TestDragTrackerInitialState(t *testing.T) {
	dt := NewDragTracker(6)

	if dt.GetState() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", dt.GetState())
	}
	if dt.IsDragging() {
		t.Error("Expected IsDragging to be false initially")
	}
	if dt.JustStarted() {
		t.Error("Expected JustStarted to be false initially")
	}
	if dt.JustEnded() {
		t.Error("Expected JustEnded to be false initially")
	}
}

func TestDragTrackerTap(t *testing.T) {
	dt := NewDragTracker(6)

	dt.Update(true, 100, 200, true)
	if !dt.JustStarted() {
		t.Fatalf("Expected DragStateStarted, got %v", dt.GetState())
	}

	dt.Update(true, 102, 203, true)
	if dt.IsDragging() {
		t.Error("Movement within slop should not count as dragging")
	}

	dt.Update(false, 0, 0, true)
	if !dt.JustEnded() {
		t.Fatalf("Expected DragStateEnded, got %v", dt.GetState())
	}
	if !dt.WasTap() {
		t.Error("Expected release within slop to be a tap")
	}

	dt.Update(false, 0, 0, true)
	if dt.GetState() != DragStateNone {
		t.Errorf("Ended state should last one frame, got %v", dt.GetState())
	}
}

func TestDragTrackerDrag(t *testing.T) {
	dt := NewDragTracker(6)

	dt.Update(true, 100, 300, true)
	dt.Update(true, 100, 280, true)
	if !dt.IsDragging() {
		t.Fatal("Expected dragging after moving beyond slop")
	}
	if dx, dy := dt.GetFrameDelta(); dx != 0 || dy != -20 {
		t.Errorf("Expected frame delta (0, -20), got (%d, %d)", dx, dy)
	}

	dt.Update(true, 100, 250, true)
	if dx, dy := dt.GetDragDistance(); dx != 0 || dy != -50 {
		t.Errorf("Expected drag distance (0, -50), got (%d, %d)", dx, dy)
	}
	if dx, dy := dt.GetFrameDelta(); dx != 0 || dy != -30 {
		t.Errorf("Expected frame delta (0, -30), got (%d, %d)", dx, dy)
	}

	dt.Update(false, 0, 0, true)
	if dt.WasTap() {
		t.Error("A drag should not be reported as a tap")
	}
	if !dt.IsTouchDrag() {
		t.Error("Expected touch drag")
	}
}

func TestDragTrackerReset(t *testing.T) {
	dt := NewDragTracker(6)
	dt.Update(true, 10, 20, false)
	dt.Update(true, 50, 60, false)

	dt.Reset()

	info := dt.GetInfo()
	if info.State != DragStateNone {
		t.Errorf("Expected state to be DragStateNone after reset, got %v", info.State)
	}
	if info.StartX != 0 || info.StartY != 0 || info.Moved {
		t.Errorf("Expected zeroed info after reset, got %+v", info)
	}
}

func TestInputFrameCursorInside(t *testing.T) {
	tests := []struct {
		name  string
		frame InputFrame
		want  bool
	}{
		{"inside", InputFrame{CursorX: 10, CursorY: 10, Focused: true}, true},
		{"unfocused", InputFrame{CursorX: 10, CursorY: 10}, false},
		{"left of viewport", InputFrame{CursorX: -1, CursorY: 10, Focused: true}, false},
		{"right edge", InputFrame{CursorX: 800, CursorY: 10, Focused: true}, false},
		{"bottom edge", InputFrame{CursorX: 10, CursorY: 600, Focused: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.frame.CursorInside(800, 600); got != tt.want {
				t.Errorf("CursorInside() = %v, want %v", got, tt.want)
			}
		})
	}
}
