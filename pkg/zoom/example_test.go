package zoom_test

import (
	"fmt"

	"github.com/go-drift/pullzoom/pkg/animation"
	"github.com/go-drift/pullzoom/pkg/gestures"
	"github.com/go-drift/pullzoom/pkg/graphics"
	zoomtest "github.com/go-drift/pullzoom/pkg/testing"
	"github.com/go-drift/pullzoom/pkg/zoom"
)

// This example stretches a 300px header by dragging 150px and lets it snap
// back after release.
func ExampleController() {
	clk := zoomtest.NewFakeClock()
	defer animation.SetClock(animation.SetClock(clk))

	c := zoom.NewController(zoom.Config{})
	c.Layout(600, 300)

	c.HandlePointer(gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{Y: 100}, Phase: gestures.PointerPhaseDown})
	consumed := c.HandlePointer(gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{Y: 250}, Phase: gestures.PointerPhaseMove})
	fmt.Println("consumed:", consumed, "height:", c.RenderedHeight())

	c.HandlePointer(gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{Y: 250}, Phase: gestures.PointerPhaseUp})
	fmt.Println("phase:", c.Phase())

	for c.Tick(clk.Now()) {
		clk.Advance(16 * 1e6)
	}
	fmt.Println("height:", c.RenderedHeight(), "phase:", c.Phase())
	// Output:
	// consumed: true height: 375
	// phase: snapping
	// height: 300 phase: idle
}
