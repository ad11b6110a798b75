package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/kinema"
	"github.com/akmonengine/kinema/geometry"
	"github.com/akmonengine/kinema/linalg"
	"github.com/go-gl/mathgl/mgl64"
)

// A spinning cube rides an animated pivot: the cube spins half a turn around
// Y over one second while its parent pivot slides 10 units along X. The demo
// prints the composed pose at a few sample times and the conservative bounds
// swept over the whole interval.
func main() {
	cube := kinema.New([]linalg.Keyframe{
		linalg.NewKeyframe(0,
			mgl64.Vec3{0, 1, 0},
			mgl64.QuatIdent(),
			mgl64.Vec3{1, 1, 1}),
		linalg.NewKeyframe(1,
			mgl64.Vec3{0, 1, 0},
			mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0}),
			mgl64.Vec3{1, 1, 1}),
	})

	pivot := kinema.New([]linalg.Keyframe{
		linalg.NewKeyframe(0,
			mgl64.Vec3{0, 0, 0},
			mgl64.QuatIdent(),
			mgl64.Vec3{1, 1, 1}),
		linalg.NewKeyframe(1,
			mgl64.Vec3{10, 0, 0},
			mgl64.QuatIdent(),
			mgl64.Vec3{1, 1, 1}),
	})

	chain := pivot.Mul(cube)

	fmt.Printf("animated: %v\n", chain.IsAnimated())
	for _, time := range []float64{0, 0.25, 0.5, 0.75, 1} {
		origin := chain.Transform(time).Point(mgl64.Vec3{0, 0, 0})
		corner := chain.Transform(time).Point(mgl64.Vec3{0.5, 0.5, 0.5})
		fmt.Printf("t=%.2f  origin=%v  corner=%v\n", time, origin, corner)
	}

	box := geometry.BBox{
		Min: mgl64.Vec3{-0.5, -0.5, -0.5},
		Max: mgl64.Vec3{0.5, 0.5, 0.5},
	}
	bounds := chain.AnimationBounds(box, 0, 1)
	fmt.Printf("motion bounds: min=%v max=%v\n", bounds.Min, bounds.Max)
}
