// Package animation provides the timing primitives behind the pull-to-zoom
// snap: a replaceable clock, easing curves, a frame ticker and the
// SnapAnimator that eases a scale factor toward a resting value.
//
// # Frame loop
//
// Nothing in this package sleeps or spawns goroutines. A host drives it from
// its own per-frame callback:
//
//	ticker := animation.NewTicker(func(now time.Time) {
//	    if !controller.Tick(now) {
//	        ticker.Stop()
//	    }
//	})
//	ticker.Start()
//
//	// once per frame
//	animation.StepTickers()
//
// [SnapAnimator] is a pure function of the time passed to Tick, so tests can
// drive it with fabricated timestamps and no frame loop at all.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the frame time read from the package clock. Tickers
// are advanced by [StepTickers].
type Ticker struct {
	callback func(now time.Time)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(now time.Time)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker. It is safe to call from inside the callback.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers with a single frame time.
// Call it once per frame from the host's frame loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
