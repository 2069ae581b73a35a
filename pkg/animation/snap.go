package animation

import (
	"fmt"
	"time"
)

// SnapStatus describes where a SnapAnimator is in its lifecycle.
//
//	          Start()
//	Idle ─────────────► Running ──── t >= 1 ───► Completed
//	                       │
//	                       └──── Abort() ──────► Aborted
//
// Start may be called from any status and always moves to Running.
type SnapStatus int

const (
	// SnapIdle means no snap has been started.
	SnapIdle SnapStatus = iota
	// SnapRunning means a snap is in progress and Tick yields values.
	SnapRunning
	// SnapCompleted means the last snap reached its duration.
	SnapCompleted
	// SnapAborted means the last snap was interrupted.
	SnapAborted
)

// String returns a human-readable representation of the snap status.
func (s SnapStatus) String() string {
	switch s {
	case SnapIdle:
		return "idle"
	case SnapRunning:
		return "running"
	case SnapCompleted:
		return "completed"
	case SnapAborted:
		return "aborted"
	default:
		return fmt.Sprintf("SnapStatus(%d)", int(s))
	}
}

// SnapRun is one easing run from StartScale to TargetScale.
type SnapRun struct {
	StartScale  float64
	TargetScale float64
	StartTime   time.Time
	Duration    time.Duration
}

// Progress returns the linear progress of the run at now. It is not clamped.
func (r SnapRun) Progress(now time.Time) float64 {
	if r.Duration <= 0 {
		return 1
	}
	return float64(now.Sub(r.StartTime)) / float64(r.Duration)
}

// SnapAnimator eases a scale factor from its current value to a resting
// target over a fixed duration. It keeps no timer of its own; the caller
// passes the frame time to Tick.
type SnapAnimator struct {
	// Curve transforms linear progress. Defaults to QuinticEaseOut.
	Curve Curve

	run             SnapRun
	status          SnapStatus
	statusListeners map[int]func(SnapStatus)
	nextListenerID  int
}

// NewSnapAnimator returns an idle animator using QuinticEaseOut.
func NewSnapAnimator() *SnapAnimator {
	return &SnapAnimator{
		Curve:           QuinticEaseOut,
		statusListeners: make(map[int]func(SnapStatus)),
	}
}

// Start begins a run from startScale toward target. Any run in flight is
// replaced. A non-positive duration completes the run immediately.
func (a *SnapAnimator) Start(startScale, target float64, duration time.Duration, now time.Time) {
	a.run = SnapRun{
		StartScale:  startScale,
		TargetScale: target,
		StartTime:   now,
		Duration:    duration,
	}
	if duration <= 0 {
		a.setStatus(SnapCompleted)
		return
	}
	a.setStatus(SnapRunning)
}

// Tick returns the eased scale at now. Once progress reaches 1 the run is
// marked completed and Tick returns false; callers stop polling then.
func (a *SnapAnimator) Tick(now time.Time) (float64, bool) {
	if a.status != SnapRunning {
		return 0, false
	}
	t := a.run.Progress(now)
	if t >= 1 {
		a.setStatus(SnapCompleted)
		return 0, false
	}
	if t < 0 {
		t = 0
	}
	eased := t
	if a.Curve != nil {
		eased = a.Curve(t)
	}
	return a.run.StartScale - (a.run.StartScale-a.run.TargetScale)*eased, true
}

// Abort ends the current run where it stands.
func (a *SnapAnimator) Abort() {
	if a.status != SnapRunning {
		return
	}
	a.setStatus(SnapAborted)
}

// IsFinished reports whether no run is in progress.
func (a *SnapAnimator) IsFinished() bool {
	return a.status != SnapRunning
}

// Run returns the most recent run.
func (a *SnapAnimator) Run() SnapRun {
	return a.run
}

// Status returns the current status.
func (a *SnapAnimator) Status() SnapStatus {
	return a.status
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (a *SnapAnimator) AddStatusListener(fn func(SnapStatus)) func() {
	if a.statusListeners == nil {
		a.statusListeners = make(map[int]func(SnapStatus))
	}
	id := a.nextListenerID
	a.nextListenerID++
	a.statusListeners[id] = fn
	return func() {
		delete(a.statusListeners, id)
	}
}

func (a *SnapAnimator) setStatus(status SnapStatus) {
	if a.status == status {
		return
	}
	a.status = status
	for _, listener := range a.statusListeners {
		listener(status)
	}
}
