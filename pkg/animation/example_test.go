package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/refresh/pkg/animation"
)

// This example shows how a host drives an animation one frame at a time.
func ExampleAnimationController() {
	controller := animation.NewAnimationController(0)
	controller.Curve = animation.EaseInOut

	controller.AddStatusListener(func(status animation.AnimationStatus) {
		fmt.Println("status:", status)
	})

	controller.Forward()
	// A zero duration completes on the first frame.
	animation.StepTickers()
	fmt.Printf("value: %.1f\n", controller.Value)
	controller.Dispose()

	// Output:
	// status: forward
	// status: completed
	// value: 1.0
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	ease := animation.CubicBezier(0.42, 0.0, 0.58, 1.0)

	fmt.Printf("Progress 0.0 -> %.2f\n", ease(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", ease(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", ease(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.50
	// Progress 1.0 -> 1.00
}

func ExampleTicker() {
	ticker := animation.NewTicker(func(elapsed time.Duration) {})
	ticker.Start()
	fmt.Println(animation.HasActiveTickers())
	ticker.Stop()
	fmt.Println(animation.HasActiveTickers())

	// Output:
	// true
	// false
}

// This example springs an overscrolled offset back to the edge.
func ExampleSpringSimulation() {
	sim := animation.NewSpringSimulation(animation.IOSSpring(), -80, 0, 0)
	for !sim.Step(1.0 / 60) {
	}
	fmt.Printf("%.1f\n", sim.Position())

	// Output:
	// 0.0
}
