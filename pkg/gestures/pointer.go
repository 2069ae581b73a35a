// Package gestures defines the pointer event model fed to gesture handlers
// and the single-finger tracker used by the pull-to-zoom controller.
package gestures

import (
	"fmt"

	"github.com/go-drift/pullzoom/pkg/graphics"
)

// NoPointer marks the absence of a pointer id, for example a cancel event
// with no remaining pointer.
const NoPointer int64 = -1

// PointerPhase identifies what happened to a pointer.
type PointerPhase int

const (
	// PointerPhaseDown is the first finger touching the surface.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a finger moving while down.
	PointerPhaseMove
	// PointerPhaseUp is the last finger leaving the surface.
	PointerPhaseUp
	// PointerPhaseCancel aborts the current stream. PointerID names the
	// pointer that remains down, or NoPointer.
	PointerPhaseCancel
	// PointerPhaseSecondaryDown is an additional finger touching down.
	PointerPhaseSecondaryDown
	// PointerPhaseSecondaryUp is a finger lifting while others remain down.
	PointerPhaseSecondaryUp
	// PointerPhaseOutside is a touch that landed outside the host's bounds.
	PointerPhaseOutside
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	case PointerPhaseSecondaryDown:
		return "secondary_down"
	case PointerPhaseSecondaryUp:
		return "secondary_up"
	case PointerPhaseOutside:
		return "outside"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// ParsePointerPhase is the inverse of PointerPhase.String.
func ParsePointerPhase(s string) (PointerPhase, bool) {
	for p := PointerPhaseDown; p <= PointerPhaseOutside; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// PointerEvent is a single pointer sample delivered by the host.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
}

// PointerHandler consumes pointer events. The return value reports whether
// the handler consumed the event, in which case the host suppresses its own
// default scroll handling.
type PointerHandler interface {
	HandlePointer(event PointerEvent) bool
}
