package geometry

import (
	"math"

	"github.com/akmonengine/kinema/linalg"
	"github.com/go-gl/mathgl/mgl64"
)

// BBox represents an axis-aligned bounding box
type BBox struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBBox creates an empty box that any union or extension will overwrite
func NewBBox() BBox {
	inf := math.Inf(1)
	return BBox{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// NewBBoxPoints creates the smallest box enclosing both points
func NewBBoxPoints(a, b mgl64.Vec3) BBox {
	return NewBBox().ExtendPoint(a).ExtendPoint(b)
}

// IsEmpty checks if the box contains no points (max < min on some axis)
func (b BBox) IsEmpty() bool {
	return b.Max.X() < b.Min.X() || b.Max.Y() < b.Min.Y() || b.Max.Z() < b.Min.Z()
}

// ExtendPoint grows the box to enclose the point
func (b BBox) ExtendPoint(p mgl64.Vec3) BBox {
	return BBox{
		Min: mgl64.Vec3{
			math.Min(b.Min.X(), p.X()),
			math.Min(b.Min.Y(), p.Y()),
			math.Min(b.Min.Z(), p.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(b.Max.X(), p.X()),
			math.Max(b.Max.Y(), p.Y()),
			math.Max(b.Max.Z(), p.Z()),
		},
	}
}

// Union returns the smallest box enclosing both boxes. The empty box is the
// neutral element.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Min: mgl64.Vec3{
			math.Min(b.Min.X(), other.Min.X()),
			math.Min(b.Min.Y(), other.Min.Y()),
			math.Min(b.Min.Z(), other.Min.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(b.Max.X(), other.Max.X()),
			math.Max(b.Max.Y(), other.Max.Y()),
			math.Max(b.Max.Z(), other.Max.Z()),
		},
	}
}

// ContainsPoint checks if a point is inside the box
func (b BBox) ContainsPoint(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// ContainsBox checks if the other box lies entirely inside the box
func (b BBox) ContainsBox(other BBox) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Transformed applies an affine transform to the box and returns the
// axis-aligned bounds of the result, computed from the eight transformed
// corners. The result is conservative for any rotation.
func (b BBox) Transformed(t linalg.Transform) BBox {
	corners := [8]mgl64.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}

	out := NewBBox()
	for _, corner := range corners {
		out = out.ExtendPoint(t.Point(corner))
	}

	return out
}
