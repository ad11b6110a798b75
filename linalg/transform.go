package linalg

import "github.com/go-gl/mathgl/mgl64"

// Transform represents an affine transformation of 3D space, stored together
// with its inverse so that both directions are available without re-inverting.
type Transform struct {
	Mat mgl64.Mat4
	Inv mgl64.Mat4
}

// Identity creates the identity transform
func Identity() Transform {
	return Transform{
		Mat: mgl64.Ident4(),
		Inv: mgl64.Ident4(),
	}
}

// Translate creates a translation by v
func Translate(v mgl64.Vec3) Transform {
	return Transform{
		Mat: mgl64.Translate3D(v.X(), v.Y(), v.Z()),
		Inv: mgl64.Translate3D(-v.X(), -v.Y(), -v.Z()),
	}
}

// Rotate creates a rotation from a unit quaternion
func Rotate(q mgl64.Quat) Transform {
	return Transform{
		Mat: q.Mat4(),
		Inv: q.Inverse().Mat4(),
	}
}

// Scale creates a non-uniform scaling. The components must be non-zero.
func Scale(v mgl64.Vec3) Transform {
	return Transform{
		Mat: mgl64.Scale3D(v.X(), v.Y(), v.Z()),
		Inv: mgl64.Scale3D(1/v.X(), 1/v.Y(), 1/v.Z()),
	}
}

// Mul composes two transforms. The result applies rhs first, then t,
// following the usual matrix convention t.Mat * rhs.Mat.
func (t Transform) Mul(rhs Transform) Transform {
	return Transform{
		Mat: t.Mat.Mul4(rhs.Mat),
		Inv: rhs.Inv.Mul4(t.Inv),
	}
}

// Inverse returns the opposite transformation
func (t Transform) Inverse() Transform {
	return Transform{Mat: t.Inv, Inv: t.Mat}
}

// Point applies the transform to a point
func (t Transform) Point(p mgl64.Vec3) mgl64.Vec3 {
	return t.Mat.Mul4x1(p.Vec4(1)).Vec3()
}

// Vector applies the transform to a direction, ignoring translation
func (t Transform) Vector(v mgl64.Vec3) mgl64.Vec3 {
	return t.Mat.Mul4x1(v.Vec4(0)).Vec3()
}
