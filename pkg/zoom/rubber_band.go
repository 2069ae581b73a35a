package zoom

// DefaultDamping is the share of the raw drag-driven scale change that is
// applied on each move.
const DefaultDamping = 0.5

// RubberBand returns the scale produced by dragging delta pixels while the
// zoom surface is extent pixels tall. Only damping of the change relative to
// lastScale is applied, which gives the drag its elastic resistance.
//
// The result is unclamped.
func RubberBand(delta, extent, naturalHeight, lastScale, damping float64) float64 {
	raw := (delta + extent) / naturalHeight
	return (raw-lastScale)*damping + lastScale
}
