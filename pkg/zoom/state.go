package zoom

import (
	"fmt"

	"github.com/go-drift/pullzoom/pkg/gestures"
)

// Phase is the controller's state machine discriminator.
//
//	        down (at top, enabled, laid out)
//	Idle ─────────────────────────────────► Dragging
//	 ▲                                         │ up / outside / cancel without successor
//	 │      snap completes or is aborted       ▼
//	 └─────────────────────────────────── Snapping
//
// Toggle moves any phase to Snapping.
type Phase int

const (
	// PhaseIdle means no gesture or snap is in progress.
	PhaseIdle Phase = iota
	// PhaseDragging means a pointer owns the gesture.
	PhaseDragging
	// PhaseSnapping means the header is easing toward a resting scale.
	PhaseSnapping
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSnapping:
		return "snapping"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// GestureState is a snapshot of the controller's gesture bookkeeping.
type GestureState struct {
	// ActivePointer is the tracked pointer, or gestures.NoPointer.
	ActivePointer int64
	// LastY is the last committed position of the active pointer.
	LastY    float64
	HasLastY bool
	// Scale is the last committed scale factor, clamped to [1, MaxScale].
	Scale    float64
	MaxScale float64
	// AtTop reports whether the surrounding content is scrolled to the top.
	AtTop bool
	Phase Phase
}

// HasPointer reports whether a pointer is being tracked.
func (s GestureState) HasPointer() bool {
	return s.ActivePointer != gestures.NoPointer
}
