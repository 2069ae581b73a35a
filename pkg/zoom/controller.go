// Package zoom implements the pull-to-zoom header of a vertical scroll
// container as a host-independent state machine.
//
// A host feeds pointer events to [Controller.HandlePointer], reports its
// content scroll offset through [Controller.ScrollChanged], and once per
// frame reads [Controller.RenderedHeight] and applies it to both the zoomed
// surface and the header that contains it. While a snap is running the host
// calls [Controller.Tick] every frame until it returns false.
//
// Dragging down while the content is at the top stretches the header:
//
//	raw   = (delta + extent) / natural
//	scale = (raw - last) * damping + last
//
// Releasing eases the header back to its natural size. Dragging up while the
// header is at natural size is left to the host's ordinary scrolling.
package zoom

import (
	"time"

	"github.com/go-drift/pullzoom/pkg/animation"
	"github.com/go-drift/pullzoom/pkg/errors"
	"github.com/go-drift/pullzoom/pkg/gestures"
)

// Controller owns the gesture state of one zoom-scroll container.
//
// A Controller is not safe for concurrent use; every method is expected to
// run on the host's UI thread.
type Controller struct {
	config  Config
	tracker *gestures.Tracker
	snap    *animation.SnapAnimator
	ticker  *animation.Ticker

	screenHeight  int
	naturalHeight int
	height        int // rendered extent of the zoom surface and its header
	headerOffset  int
	scrollOffset  float64

	scale    float64
	maxScale float64
	atTop    bool
	phase    Phase
	consumed bool

	listeners       map[int]func()
	scrollListeners map[int]func(ScrollChange)
	nextListenerID  int
}

// NewController returns an idle controller. Call Layout before the first
// gesture; until then gestures are deferred.
func NewController(cfg Config) *Controller {
	cfg = cfg.withDefaults()
	snap := animation.NewSnapAnimator()
	snap.Curve = cfg.SnapCurve
	return &Controller{
		config:          cfg,
		tracker:         gestures.NewTracker(),
		snap:            snap,
		scale:           1,
		maxScale:        1,
		atTop:           true,
		listeners:       make(map[int]func()),
		scrollListeners: make(map[int]func(ScrollChange)),
	}
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	return c.config
}

// Layout records the screen height and the header's natural height as
// measured by the host. The natural height is taken from the first layout
// that reports a non-zero value; use SetNaturalHeight to change it later.
func (c *Controller) Layout(screenHeight, naturalHeight int) {
	c.screenHeight = screenHeight
	if c.naturalHeight == 0 && naturalHeight > 0 {
		c.naturalHeight = naturalHeight
	}
	if c.height == 0 {
		c.setHeight(c.naturalHeight)
	}
	c.updateMaxScale()
}

// SetNaturalHeight overrides the header's natural height. An idle header is
// reset to the new natural size.
func (c *Controller) SetNaturalHeight(height int) {
	if height < 0 {
		height = 0
	}
	c.naturalHeight = height
	if c.phase == PhaseIdle {
		c.scale = 1
		c.setHeight(height)
	}
	c.updateMaxScale()
}

// SetEnabled turns gesture handling on or off.
func (c *Controller) SetEnabled(enabled bool) {
	c.config.DisableZoom = !enabled
}

// Enabled reports whether gestures are handled.
func (c *Controller) Enabled() bool {
	return !c.config.DisableZoom
}

// HandlePointer routes one pointer event through the state machine and
// reports whether it was consumed. A consumed event must not reach the
// host's default scroll handling.
func (c *Controller) HandlePointer(event gestures.PointerEvent) bool {
	c.consumed = c.handlePointer(event)
	return c.consumed
}

func (c *Controller) handlePointer(event gestures.PointerEvent) bool {
	if !c.atTop || c.config.DisableZoom {
		switch event.Phase {
		case gestures.PointerPhaseUp, gestures.PointerPhaseOutside, gestures.PointerPhaseCancel:
			// The gesture left zoom territory; forget it without snapping.
			if c.phase == PhaseDragging {
				c.tracker.Reset()
				c.setPhase(PhaseIdle)
			}
		}
		return false
	}

	y := event.Position.Y
	switch event.Phase {
	case gestures.PointerPhaseDown:
		c.pointerDown(event.PointerID, y)
	case gestures.PointerPhaseMove:
		return c.pointerMove(event.PointerID, y)
	case gestures.PointerPhaseUp, gestures.PointerPhaseOutside:
		if c.phase != PhaseDragging {
			c.reportUnknownPointer(event.PointerID)
			return false
		}
		c.pointerUp()
	case gestures.PointerPhaseCancel:
		c.pointerCancel(event.PointerID, y)
	case gestures.PointerPhaseSecondaryDown:
		if c.phase == PhaseDragging {
			c.tracker.PointerDown(event.PointerID, y)
		}
	case gestures.PointerPhaseSecondaryUp:
		c.secondaryUp(event.PointerID)
	}
	return false
}

func (c *Controller) pointerDown(id int64, y float64) {
	if c.naturalHeight == 0 {
		errors.Report(&errors.ZoomError{
			Op:         "zoom.HandlePointer",
			Kind:       errors.KindConfig,
			Err:        errors.ErrNotLaidOut,
			PointerID:  id,
			HasPointer: true,
		})
		return
	}
	if !c.snap.IsFinished() {
		c.snap.Abort()
	}
	c.stopTicker()
	c.tracker.Reset()
	c.tracker.PointerDown(id, y)
	c.updateMaxScale()
	c.scale = c.extentScale()
	c.setPhase(PhaseDragging)
}

func (c *Controller) pointerMove(id int64, y float64) bool {
	if c.phase != PhaseDragging {
		return false
	}
	delta, ok := c.tracker.Delta(id, y)
	if !ok {
		if !c.tracker.Known(id) {
			c.reportUnknownPointer(id)
		}
		return false
	}
	if c.height < c.naturalHeight {
		c.tracker.Commit(y)
		return false
	}
	next := RubberBand(delta, float64(c.height), float64(c.naturalHeight), c.scale, c.config.Damping)
	if !c.setZoomScale(next) {
		// The reference position stays put, so dragging back past it
		// resumes zooming from where the lock started.
		return false
	}
	c.tracker.Commit(y)
	return true
}

// setZoomScale applies a drag-driven scale. It refuses to shrink a header
// that is already at or below natural size: the header is pinned to its
// natural height, the committed scale is left untouched, and false is
// returned so the move falls through to ordinary scrolling.
func (c *Controller) setZoomScale(scale float64) bool {
	if c.scale <= 1 && scale < c.scale {
		c.setHeight(c.naturalHeight)
		return false
	}
	c.scale = ClampScale(scale, c.maxScale)
	height := int(float64(c.naturalHeight) * c.scale)
	if height < c.screenHeight {
		c.setHeight(height)
	}
	return true
}

func (c *Controller) pointerUp() {
	c.tracker.Reset()
	if c.phase == PhaseDragging {
		c.setPhase(PhaseIdle)
	}
	c.ScaleDown()
}

func (c *Controller) pointerCancel(remaining int64, y float64) {
	if c.phase != PhaseDragging {
		if remaining == gestures.NoPointer {
			c.reportUnknownPointer(remaining)
		}
		return
	}
	if remaining == gestures.NoPointer {
		c.pointerUp()
		return
	}
	c.tracker.Reseed(remaining, y)
}

// reportUnknownPointer reports an event for a pointer outside any tracked
// gesture. The event is ignored.
func (c *Controller) reportUnknownPointer(id int64) {
	errors.Report(&errors.ZoomError{
		Op:         "zoom.HandlePointer",
		Kind:       errors.KindPointer,
		Err:        errors.ErrUnknownPointer,
		PointerID:  id,
		HasPointer: id != gestures.NoPointer,
	})
}

func (c *Controller) secondaryUp(lifted int64) {
	if c.phase != PhaseDragging {
		return
	}
	if _, ok := c.tracker.Handoff(lifted); !ok {
		c.pointerUp()
	}
}

// Toggle snaps an enlarged header back to natural size, or a header at
// natural size up to the maximum scale.
func (c *Controller) Toggle() {
	if c.scale > 1 {
		c.tracker.Reset()
		if c.phase == PhaseDragging {
			c.setPhase(PhaseIdle)
		}
		c.ScaleDown()
		return
	}
	c.ScaleUp()
}

// ScaleDown snaps the header back to natural size if it is at least that
// tall.
func (c *Controller) ScaleDown() {
	if c.naturalHeight == 0 || c.height < c.naturalHeight {
		return
	}
	c.startSnap(1)
}

// ScaleUp snaps the header to the size that fills the screen.
func (c *Controller) ScaleUp() {
	if c.naturalHeight == 0 {
		errors.Report(&errors.ZoomError{
			Op:   "zoom.ScaleUp",
			Kind: errors.KindConfig,
			Err:  errors.ErrNotLaidOut,
		})
		return
	}
	c.tracker.Reset()
	c.updateMaxScale()
	c.startSnap(c.maxScale)
}

func (c *Controller) startSnap(target float64) {
	c.snap.Start(c.extentScale(), target, c.config.SnapDuration, animation.Now())
	if c.snap.IsFinished() {
		c.applySnapScale(target)
		c.setPhase(PhaseIdle)
		return
	}
	c.setPhase(PhaseSnapping)
	if c.config.UseFrameTicker {
		c.startTicker()
	}
}

// Tick advances a running snap to now and applies the eased height. It
// returns false once no snap is running; the host stops calling it then.
// When the snap reaches its duration the header lands exactly on the
// target height.
func (c *Controller) Tick(now time.Time) bool {
	if c.phase != PhaseSnapping {
		return false
	}
	scale, ok := c.snap.Tick(now)
	if !ok {
		if c.snap.Status() == animation.SnapCompleted {
			c.applySnapScale(c.snap.Run().TargetScale)
		}
		c.setPhase(PhaseIdle)
		return false
	}
	c.applySnapScale(scale)
	return true
}

func (c *Controller) applySnapScale(scale float64) {
	c.scale = ClampScale(scale, c.maxScale)
	c.setHeight(int(scale * float64(c.naturalHeight)))
}

func (c *Controller) startTicker() {
	if c.ticker == nil {
		c.ticker = animation.NewTicker(func(now time.Time) {
			if !c.Tick(now) {
				c.stopTicker()
			}
		})
	}
	c.ticker.Start()
}

func (c *Controller) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
}

func (c *Controller) updateMaxScale() {
	if c.naturalHeight <= 0 {
		c.maxScale = 1
		return
	}
	c.maxScale = max(float64(c.screenHeight)/float64(c.naturalHeight), 1)
}

func (c *Controller) extentScale() float64 {
	if c.naturalHeight == 0 {
		return 1
	}
	return float64(c.height) / float64(c.naturalHeight)
}

func (c *Controller) setPhase(phase Phase) {
	c.phase = phase
}

func (c *Controller) setHeight(height int) {
	if c.height == height {
		return
	}
	c.height = height
	for _, listener := range c.listeners {
		listener()
	}
}

// RenderedHeight returns the height the host applies to the zoom surface
// and its header container.
func (c *Controller) RenderedHeight() int {
	return c.height
}

// NaturalHeight returns the header's unscaled height, or 0 before layout.
func (c *Controller) NaturalHeight() int {
	return c.naturalHeight
}

// Consumed reports whether the last pointer event was consumed.
func (c *Controller) Consumed() bool {
	return c.consumed
}

// Scale returns the last committed scale factor.
func (c *Controller) Scale() float64 {
	return ClampScale(c.scale, c.maxScale)
}

// MaxScale returns the scale at which the header fills the screen.
func (c *Controller) MaxScale() float64 {
	return c.maxScale
}

// Phase returns the current state machine phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// SnapStatus returns the status of the most recent snap.
func (c *Controller) SnapStatus() animation.SnapStatus {
	return c.snap.Status()
}

// State returns a snapshot of the gesture bookkeeping.
func (c *Controller) State() GestureState {
	id, _ := c.tracker.Active()
	y, hasY := c.tracker.LastY()
	return GestureState{
		ActivePointer: id,
		LastY:         y,
		HasLastY:      hasY,
		Scale:         c.Scale(),
		MaxScale:      c.maxScale,
		AtTop:         c.atTop,
		Phase:         c.phase,
	}
}

// AddListener adds a callback that fires whenever the rendered height
// changes. Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}
