package zoom

import "math"

// ClampScale confines scale to [1, maxScale]: the header never shrinks below
// its natural size and never grows past the size that fills the screen.
func ClampScale(scale, maxScale float64) float64 {
	return math.Max(1.0, math.Min(scale, maxScale))
}
