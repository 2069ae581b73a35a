package testing

import (
	"testing"
	"time"

	"github.com/go-drift/pullzoom/pkg/gestures"
)

type recordingHandler struct {
	events []gestures.PointerEvent
}

func (h *recordingHandler) HandlePointer(event gestures.PointerEvent) bool {
	h.events = append(h.events, event)
	return event.Phase == gestures.PointerPhaseMove
}

func TestGestureDriver_Drag(t *testing.T) {
	h := &recordingHandler{}
	d := NewGestureDriver(h)

	moves := d.Drag(100, 50, 5)

	if len(moves) != 5 {
		t.Fatalf("got %d move results, want 5", len(moves))
	}
	if len(h.events) != 7 {
		t.Fatalf("handler saw %d events, want 7", len(h.events))
	}
	if h.events[0].Phase != gestures.PointerPhaseDown || h.events[6].Phase != gestures.PointerPhaseUp {
		t.Errorf("sequence should start with down and end with up, got %v ... %v", h.events[0].Phase, h.events[6].Phase)
	}
	if got := h.events[5].Position.Y; got != 150 {
		t.Errorf("last move at y=%v, want 150", got)
	}
	for _, ev := range h.events {
		if ev.PointerID != h.events[0].PointerID {
			t.Fatal("all events of a drag should share a pointer id")
		}
	}
	if len(d.Consumed) != 7 || !d.Consumed[1] || d.Consumed[0] {
		t.Errorf("Consumed = %v", d.Consumed)
	}
}

func TestGestureDriver_PumpAndSettle(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()
	frames := 0
	d := &GestureDriver{
		Handler: &recordingHandler{},
		Clock:   clk,
		Step: func(now time.Time) bool {
			frames++
			return now.Sub(start) < 100*time.Millisecond
		},
	}

	if err := d.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if frames != 7 {
		t.Errorf("pumped %d frames, want 7", frames)
	}
}

func TestGestureDriver_PumpAndSettleTimeout(t *testing.T) {
	d := &GestureDriver{
		Handler: &recordingHandler{},
		Clock:   NewFakeClock(),
		Step:    func(time.Time) bool { return true },
	}
	if err := d.PumpAndSettle(100 * time.Millisecond); err == nil {
		t.Error("expected timeout error")
	}
}

func TestGestureDriver_PumpWithoutClock(t *testing.T) {
	d := NewGestureDriver(&recordingHandler{})
	if d.Pump() {
		t.Error("Pump without clock should do nothing")
	}
	if err := d.PumpAndSettle(time.Second); err == nil {
		t.Error("PumpAndSettle without clock should fail")
	}
}
