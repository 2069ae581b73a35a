package gestures

import "slices"

// Tracker follows the one pointer that owns a vertical drag and reports its
// movement as scalar deltas. Other pointers are remembered so that lifting
// the owning finger can hand the gesture to a finger that is still down
// without a jump in position.
//
// The zero value is not ready for use; call NewTracker.
type Tracker struct {
	active   int64
	lastY    float64
	hasLastY bool
	pointers map[int64]float64 // last known Y of every pointer currently down
}

// NewTracker returns a tracker with no active pointer.
func NewTracker() *Tracker {
	return &Tracker{
		active:   NoPointer,
		pointers: make(map[int64]float64),
	}
}

// Active returns the tracked pointer id, if any.
func (t *Tracker) Active() (int64, bool) {
	return t.active, t.active != NoPointer
}

// LastY returns the last committed vertical position of the active pointer.
func (t *Tracker) LastY() (float64, bool) {
	return t.lastY, t.hasLastY
}

// Known reports whether id is a pointer the tracker has seen go down.
func (t *Tracker) Known(id int64) bool {
	_, ok := t.pointers[id]
	return ok
}

// PointerDown records a pointer touching down. It becomes the active pointer
// only if no pointer is active yet.
func (t *Tracker) PointerDown(id int64, y float64) {
	t.pointers[id] = y
	if t.active != NoPointer {
		return
	}
	t.active = id
	t.lastY = y
	t.hasLastY = true
}

// Delta returns the movement of the active pointer since the last committed
// position without committing y. It returns false for any other pointer.
// If no position has been committed yet, y is committed as the seed and the
// delta is zero.
func (t *Tracker) Delta(id int64, y float64) (float64, bool) {
	if _, ok := t.pointers[id]; ok && id != t.active {
		t.pointers[id] = y
	}
	if t.active == NoPointer || id != t.active {
		return 0, false
	}
	if !t.hasLastY {
		t.Commit(y)
	}
	return y - t.lastY, true
}

// Commit makes y the reference position for the next delta.
func (t *Tracker) Commit(y float64) {
	t.lastY = y
	t.hasLastY = true
	if t.active != NoPointer {
		t.pointers[t.active] = y
	}
}

// PointerMove is Delta followed by Commit for the active pointer.
func (t *Tracker) PointerMove(id int64, y float64) (float64, bool) {
	delta, ok := t.Delta(id, y)
	if ok {
		t.Commit(y)
	}
	return delta, ok
}

// SecondaryPointerUp handles a finger lifting while another stays down. If
// the lifted pointer was the active one, replacement becomes active and its
// position becomes the new reference, so the next move reports the
// replacement's own movement.
func (t *Tracker) SecondaryPointerUp(lifted, replacement int64, replacementY float64) {
	delete(t.pointers, lifted)
	if lifted != t.active {
		return
	}
	t.pointers[replacement] = replacementY
	t.active = replacement
	t.lastY = replacementY
	t.hasLastY = true
}

// Handoff lifts a pointer and, when it was the active one, picks the
// remaining pointer with the lowest id as the replacement. It returns the
// replacement id, or false if the gesture has no pointer left to follow.
func (t *Tracker) Handoff(lifted int64) (int64, bool) {
	if lifted != t.active {
		delete(t.pointers, lifted)
		return t.active, t.active != NoPointer
	}
	ids := make([]int64, 0, len(t.pointers))
	for id := range t.pointers {
		if id != lifted {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		delete(t.pointers, lifted)
		t.active = NoPointer
		t.hasLastY = false
		return NoPointer, false
	}
	slices.Sort(ids)
	replacement := ids[0]
	t.SecondaryPointerUp(lifted, replacement, t.pointers[replacement])
	return replacement, true
}

// Reseed makes id the active pointer at y, keeping other pointers.
func (t *Tracker) Reseed(id int64, y float64) {
	t.pointers[id] = y
	t.active = id
	t.lastY = y
	t.hasLastY = true
}

// Reset forgets every pointer.
func (t *Tracker) Reset() {
	t.active = NoPointer
	t.lastY = 0
	t.hasLastY = false
	clear(t.pointers)
}
