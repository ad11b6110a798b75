package linalg

import "github.com/go-gl/mathgl/mgl64"

// Keyframe represents the pose of an object at one instant on the timeline
type Keyframe struct {
	Time        float64
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// NewKeyframe creates a keyframe with the given pose components
func NewKeyframe(time float64, translation mgl64.Vec3, rotation mgl64.Quat, scale mgl64.Vec3) Keyframe {
	return Keyframe{
		Time:        time,
		Translation: translation,
		Rotation:    rotation,
		Scale:       scale,
	}
}

// Transform materializes the pose as a full transform, translation applied
// last: T * R * S
func (k Keyframe) Transform() Transform {
	return Translate(k.Translation).Mul(Rotate(k.Rotation)).Mul(Scale(k.Scale))
}

// Interpolate blends between two keyframes. Translation and scale are
// interpolated linearly, rotation along the arc between the two quaternions.
// Adjacent rotations are expected to already be on the same hemisphere
// (dot >= 0), otherwise the arc is the long way around.
func (k Keyframe) Interpolate(other Keyframe, alpha float64) Keyframe {
	return Keyframe{
		Time:        Lerp(alpha, k.Time, other.Time),
		Translation: LerpVec3(alpha, k.Translation, other.Translation),
		Rotation:    mgl64.QuatSlerp(k.Rotation, other.Rotation, alpha),
		Scale:       LerpVec3(alpha, k.Scale, other.Scale),
	}
}
