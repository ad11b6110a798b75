package kinema

import (
	"github.com/akmonengine/kinema/geometry"
	"github.com/akmonengine/kinema/linalg"
)

// boundsSamples is the fixed number of time samples taken over the animation
// interval. Exact bounds for a rotating box are expensive in closed form;
// sampling bounds the cost at the risk of under-sampling fast rotations.
const boundsSamples = 128

// AnimationBounds computes the bounds of the box moving through the
// animation sequence over [start, end] by sampling time. A static transform
// is resolved exactly with a single evaluation at start.
func (at AnimatedTransform) AnimationBounds(b geometry.BBox, start, end float64) geometry.BBox {
	if !at.IsAnimated() {
		return b.Transformed(at.Transform(start))
	}

	ret := geometry.NewBBox()
	for i := 0; i < boundsSamples; i++ {
		time := linalg.Lerp(float64(i)/(boundsSamples-1), start, end)
		ret = ret.Union(b.Transformed(at.Transform(time)))
	}

	return ret
}

// MotionVolume pairs an animated transform with the object-space bounds it
// moves, e.g. one entry per primitive when building an acceleration
// structure over a scene
type MotionVolume struct {
	Transform AnimatedTransform
	Box       geometry.BBox
}

// AnimationBoundsAll computes the swept bounds of every volume over
// [start, end], spreading the volumes across the given number of workers
func AnimationBoundsAll(volumes []MotionVolume, start, end float64, workers int) []geometry.BBox {
	bounds := make([]geometry.BBox, len(volumes))
	task(max(DEFAULT_WORKERS, workers), volumes, func(i int, volume MotionVolume) {
		bounds[i] = volume.Transform.AnimationBounds(volume.Box, start, end)
	})

	return bounds
}
