package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/pullzoom/pkg/animation"
)

// This example eases a header scale from 2x back to natural size.
func ExampleSnapAnimator() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := animation.NewSnapAnimator()
	snap.Start(2.0, 1.0, 200*time.Millisecond, start)

	for _, ms := range []int{0, 50, 100, 200} {
		scale, ok := snap.Tick(start.Add(time.Duration(ms) * time.Millisecond))
		if !ok {
			fmt.Printf("%3dms done\n", ms)
			continue
		}
		fmt.Printf("%3dms %.3f\n", ms, scale)
	}
	// Output:
	//   0ms 2.000
	//  50ms 1.237
	// 100ms 1.031
	// 200ms done
}

// This example selects a snap curve by its configuration name.
func ExampleCurveByName() {
	curve, err := animation.CurveByName("linear")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(curve(0.25))
	// Output: 0.25
}
