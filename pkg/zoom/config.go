package zoom

import (
	"fmt"
	"time"

	"github.com/go-drift/pullzoom/pkg/animation"
)

const (
	// DefaultSnapDuration is how long the header takes to settle after release.
	DefaultSnapDuration = 200 * time.Millisecond
	// DefaultParallaxFactor is the share of the scroll distance the header
	// moves by while parallax is on.
	DefaultParallaxFactor = 0.65
)

// Config tunes a Controller. The zero value is valid: zero fields take
// their defaults.
type Config struct {
	// SnapDuration is the length of the settle animation.
	SnapDuration time.Duration
	// Damping scales each drag-driven change in scale. Must be in [0, 1];
	// zero means DefaultDamping.
	Damping float64
	// SnapCurve eases the settle animation. Defaults to QuinticEaseOut.
	SnapCurve animation.Curve
	// Parallax shifts the header while the content scrolls under it.
	Parallax bool
	// ParallaxFactor is the header shift per scrolled pixel.
	ParallaxFactor float64
	// DisableZoom turns gesture handling off; events are never consumed.
	DisableZoom bool
	// DisableOverscroll makes AllowedOverscroll report zero.
	DisableOverscroll bool
	// UseFrameTicker registers an animation.Ticker for every snap, so a host
	// only needs to call animation.StepTickers once per frame.
	UseFrameTicker bool
}

// DefaultConfig returns the configuration matching the zero value with all
// defaults filled in.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

// Validate reports settings that cannot be defaulted away.
func (c Config) Validate() error {
	if c.Damping < 0 || c.Damping > 1 {
		return fmt.Errorf("damping %v outside [0, 1]", c.Damping)
	}
	if c.SnapDuration < 0 {
		return fmt.Errorf("negative snap duration %v", c.SnapDuration)
	}
	if c.ParallaxFactor < 0 {
		return fmt.Errorf("negative parallax factor %v", c.ParallaxFactor)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.SnapDuration <= 0 {
		c.SnapDuration = DefaultSnapDuration
	}
	if c.Damping <= 0 || c.Damping > 1 {
		c.Damping = DefaultDamping
	}
	if c.SnapCurve == nil {
		c.SnapCurve = animation.QuinticEaseOut
	}
	if c.ParallaxFactor <= 0 {
		c.ParallaxFactor = DefaultParallaxFactor
	}
	return c
}
