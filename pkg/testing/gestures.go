package testing

import (
	"fmt"
	"time"

	"github.com/go-drift/pullzoom/pkg/gestures"
	"github.com/go-drift/pullzoom/pkg/graphics"
)

// DefaultFrameInterval is the frame spacing used when pumping, ~60fps.
const DefaultFrameInterval = 16 * time.Millisecond

// nextPointerID is incremented for each allocated pointer to avoid collisions.
var nextPointerID int64

// AllocPointerID returns a fresh pointer id.
func AllocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// GestureDriver feeds synthetic pointer events to a handler and optionally
// pumps frames on a FakeClock.
type GestureDriver struct {
	Handler gestures.PointerHandler
	// Clock is advanced by Pump. Required for pumping.
	Clock *FakeClock
	// Step runs once per pumped frame with the frame time and reports
	// whether more frames are needed.
	Step func(now time.Time) bool
	// FrameInterval defaults to DefaultFrameInterval.
	FrameInterval time.Duration
	// Consumed records the result of every event sent, in order.
	Consumed []bool
}

// NewGestureDriver returns a driver for h.
func NewGestureDriver(h gestures.PointerHandler) *GestureDriver {
	return &GestureDriver{Handler: h}
}

// Send delivers one event and records whether it was consumed.
func (d *GestureDriver) Send(event gestures.PointerEvent) bool {
	consumed := d.Handler.HandlePointer(event)
	d.Consumed = append(d.Consumed, consumed)
	return consumed
}

func (d *GestureDriver) send(phase gestures.PointerPhase, id int64, y float64) bool {
	return d.Send(gestures.PointerEvent{
		PointerID: id,
		Position:  graphics.Offset{Y: y},
		Phase:     phase,
	})
}

// Down sends a pointer-down.
func (d *GestureDriver) Down(id int64, y float64) bool {
	return d.send(gestures.PointerPhaseDown, id, y)
}

// Move sends a pointer-move.
func (d *GestureDriver) Move(id int64, y float64) bool {
	return d.send(gestures.PointerPhaseMove, id, y)
}

// Up sends a pointer-up.
func (d *GestureDriver) Up(id int64, y float64) bool {
	return d.send(gestures.PointerPhaseUp, id, y)
}

// Cancel sends a cancel naming the pointer that remains down, or
// gestures.NoPointer.
func (d *GestureDriver) Cancel(remaining int64, y float64) bool {
	return d.send(gestures.PointerPhaseCancel, remaining, y)
}

// SecondaryDown sends an additional finger touching down.
func (d *GestureDriver) SecondaryDown(id int64, y float64) bool {
	return d.send(gestures.PointerPhaseSecondaryDown, id, y)
}

// SecondaryUp sends a finger lifting while others stay down.
func (d *GestureDriver) SecondaryUp(id int64, y float64) bool {
	return d.send(gestures.PointerPhaseSecondaryUp, id, y)
}

// Drag sends a down at startY, steps evenly spaced moves covering deltaY,
// and an up at the end position. It returns the consumed flags of the moves.
func (d *GestureDriver) Drag(startY, deltaY float64, steps int) []bool {
	if steps < 1 {
		steps = 1
	}
	id := AllocPointerID()
	d.Down(id, startY)
	moves := make([]bool, 0, steps)
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		moves = append(moves, d.Move(id, startY+deltaY*frac))
	}
	d.Up(id, startY+deltaY)
	return moves
}

func (d *GestureDriver) interval() time.Duration {
	if d.FrameInterval <= 0 {
		return DefaultFrameInterval
	}
	return d.FrameInterval
}

// Pump advances the clock by one frame and runs Step. It returns Step's
// result.
func (d *GestureDriver) Pump() bool {
	if d.Clock == nil || d.Step == nil {
		return false
	}
	d.Clock.Advance(d.interval())
	return d.Step(d.Clock.Now())
}

// PumpFor pumps frames until at least dur has elapsed, even if Step has
// stopped asking for frames.
func (d *GestureDriver) PumpFor(dur time.Duration) {
	for elapsed := time.Duration(0); elapsed < dur; elapsed += d.interval() {
		d.Pump()
	}
}

// PumpAndSettle pumps frames until Step reports no more work or timeout
// elapses.
func (d *GestureDriver) PumpAndSettle(timeout time.Duration) error {
	if d.Clock == nil || d.Step == nil {
		return fmt.Errorf("PumpAndSettle: driver has no clock or step function")
	}
	for elapsed := time.Duration(0); elapsed <= timeout; elapsed += d.interval() {
		if !d.Pump() {
			return nil
		}
	}
	return fmt.Errorf("PumpAndSettle: still animating after %v", timeout)
}
