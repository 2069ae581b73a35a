// Package testing provides helpers for deterministic gesture tests.
//
// # Gesture simulation
//
// A GestureDriver sends synthetic pointer sequences to any
// gestures.PointerHandler and records whether each event was consumed:
//
//	controller := zoom.NewController(zoom.Config{})
//	controller.Layout(600, 300)
//	driver := zoomtest.NewGestureDriver(controller)
//	driver.Down(1, 100)
//	driver.Move(1, 250)
//	driver.Up(1, 250)
//
// # Animation Testing
//
// Control time for deterministic snap tests by installing a FakeClock and
// pumping frames:
//
//	clk := zoomtest.NewFakeClock()
//	defer animation.SetClock(animation.SetClock(clk))
//	driver.Clock = clk
//	driver.Step = controller.Tick
//	driver.PumpAndSettle(time.Second)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import zoomtest "github.com/go-drift/pullzoom/pkg/testing"
package testing
