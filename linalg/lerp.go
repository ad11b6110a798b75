package linalg

import "github.com/go-gl/mathgl/mgl64"

// Lerp linearly interpolates between a and b, alpha=0 giving a and alpha=1
// giving b
func Lerp(alpha, a, b float64) float64 {
	return (1-alpha)*a + alpha*b
}

// LerpVec3 linearly interpolates between two vectors component-wise
func LerpVec3(alpha float64, a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		Lerp(alpha, a.X(), b.X()),
		Lerp(alpha, a.Y(), b.Y()),
		Lerp(alpha, a.Z(), b.Z()),
	}
}
