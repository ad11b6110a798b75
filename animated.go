// Package kinema blends an object's transformation between sparse keyframes
// over time, composes animated transforms across a scene hierarchy, and
// computes conservative bounds for objects in motion.
package kinema

import (
	"sort"

	"github.com/akmonengine/kinema/bspline"
	"github.com/akmonengine/kinema/linalg"
)

// AnimatedTransform blends between the keyframes in its transformation list
// over time. The levels are stored in hierarchical order: the lowest index is
// the object's own animation, index 1 holds its direct parent's, etc.
type AnimatedTransform struct {
	levels []*bspline.BSpline[linalg.Keyframe]
}

// New creates an animated transformation blending between the passed
// keyframes. The keyframes may arrive in any order; they are sorted by time
// and their rotations corrected in place, so the caller hands over ownership
// of the slice. An empty keyframe list is a programming error and panics.
func New(keyframes []linalg.Keyframe) AnimatedTransform {
	if len(keyframes) == 0 {
		panic("kinema: an animated transform requires at least one keyframe")
	}

	normalizeKeyframes(keyframes)

	curve := bspline.New(1, keyframes, knotVector(keyframes))

	return AnimatedTransform{levels: []*bspline.BSpline[linalg.Keyframe]{curve}}
}

// normalizeKeyframes sorts the keyframes by time, then flips quaternion signs
// so every adjacent pair of rotations interpolates along the shorter arc.
// The correction uses the already corrected predecessor, so it must run after
// sorting.
func normalizeKeyframes(keyframes []linalg.Keyframe) {
	sort.SliceStable(keyframes, func(i, j int) bool {
		return keyframes[i].Time < keyframes[j].Time
	})

	for i := 1; i < len(keyframes); i++ {
		// q and -q represent the same rotation; a negative dot product
		// means interpolation would take the long way around
		if keyframes[i-1].Rotation.Dot(keyframes[i].Rotation) < 0 {
			keyframes[i].Rotation = keyframes[i].Rotation.Scale(-1)
		}
	}
}

// knotVector derives the degree-1 knot vector from already sorted keyframe
// times: an open knot vector with the first and last times doubled, so the
// curve passes through every keyframe at its own time. A single keyframe
// yields its time at full multiplicity, a degenerate but constructible curve.
func knotVector(keyframes []linalg.Keyframe) []float64 {
	if len(keyframes) == 1 {
		t := keyframes[0].Time
		return []float64{t, t, t}
	}

	knots := make([]float64, 0, len(keyframes)+2)
	knots = append(knots, keyframes[0].Time)
	for _, k := range keyframes {
		knots = append(knots, k.Time)
	}
	knots = append(knots, keyframes[len(keyframes)-1].Time)

	return knots
}

// Mul composes two animated transformations: at is the outer (ancestor)
// transform and rhs the inner one, so during evaluation rhs's levels are
// applied first, matching the child-then-parent order of t.Mul(rhs) on plain
// transforms. Both operands are absorbed into the result and must not be
// used afterward.
func (at AnimatedTransform) Mul(rhs AnimatedTransform) AnimatedTransform {
	return AnimatedTransform{levels: append(rhs.levels, at.levels...)}
}

// Transform computes the transformation matrix for the animation at some
// time point, stepping through the level stack and applying each level's
// pose as we move up the hierarchy. Times outside the keyframe range clamp
// to the curve domain.
func (at AnimatedTransform) Transform(time float64) linalg.Transform {
	transform := linalg.Identity()
	for _, level := range at.levels {
		var pose linalg.Keyframe
		if controls := level.ControlPoints(); len(controls) == 1 {
			// a single keyframe is constant in time, read it directly
			pose = controls[0]
		} else {
			pose = level.PointAt(time)
		}
		transform = pose.Transform().Mul(transform)
	}

	return transform
}

// IsAnimated checks if the transform actually varies over time: it reports
// true only when every level of a non-empty hierarchy holds more than one
// keyframe. A single-keyframe level anywhere in the chain makes the whole
// chain static for the fast path in AnimationBounds.
func (at AnimatedTransform) IsAnimated() bool {
	if len(at.levels) == 0 {
		return false
	}
	for _, level := range at.levels {
		if len(level.ControlPoints()) <= 1 {
			return false
		}
	}

	return true
}
