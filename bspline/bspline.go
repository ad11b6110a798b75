// Package bspline evaluates basis splines over arbitrary control values,
// e.g. scalars, points or animation keyframes.
package bspline

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Interpolatable is the constraint on control values: anything that can be
// linearly blended with another value of the same type.
type Interpolatable[T any] interface {
	Interpolate(other T, alpha float64) T
}

// BSpline is a basis spline of some degree over a list of control values,
// parameterized by a knot vector. The curve is only defined within its
// domain; queries outside are clamped to the domain boundaries.
type BSpline[T Interpolatable[T]] struct {
	degree   int
	controls []T
	knots    []float64
}

// New creates a spline of the given degree from control values and a
// non-decreasing knot vector. The knot vector must hold exactly
// len(controls) + degree + 1 entries. A spline with degree or fewer control
// values can be constructed, but only read through ControlPoints, not
// evaluated.
func New[T Interpolatable[T]](degree int, controls []T, knots []float64) *BSpline[T] {
	if degree < 1 {
		panic("bspline: degree must be at least 1")
	}
	if len(controls) == 0 {
		panic("bspline: at least one control value is required")
	}
	if len(knots) != len(controls)+degree+1 {
		panic("bspline: knot vector must hold len(controls) + degree + 1 entries")
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			panic("bspline: knot vector must be non-decreasing")
		}
	}

	return &BSpline[T]{degree: degree, controls: controls, knots: knots}
}

// Degree returns the degree of the curve
func (s *BSpline[T]) Degree() int {
	return s.degree
}

// ControlPoints returns the control values defining the curve. The slice is
// owned by the spline and must not be modified.
func (s *BSpline[T]) ControlPoints() []T {
	return s.controls
}

// Knots returns the knot vector. The slice is owned by the spline and must
// not be modified.
func (s *BSpline[T]) Knots() []float64 {
	return s.knots
}

// Domain returns the parameter range [start, end] within which the curve is
// defined
func (s *BSpline[T]) Domain() (float64, float64) {
	return s.knots[s.degree], s.knots[len(s.knots)-1-s.degree]
}

// PointAt evaluates the curve at parameter t, clamped to the domain.
// The spline needs more control values than its degree to be evaluated.
func (s *BSpline[T]) PointAt(t float64) T {
	if len(s.controls) <= s.degree {
		panic("bspline: too few control values to evaluate the curve")
	}

	lo, hi := s.Domain()
	t = mgl64.Clamp(t, lo, hi)

	// First knot strictly greater than t picks the span to evaluate in
	i := sort.Search(len(s.knots), func(j int) bool { return s.knots[j] > t })
	if i == 0 {
		i = s.degree + 1
	} else if i >= len(s.knots)-s.degree-1 {
		i = len(s.knots) - s.degree - 1
	}

	return s.deBoor(t, i)
}

// deBoor runs the iterative de Boor recurrence on the span ending at knot
// index start
func (s *BSpline[T]) deBoor(t float64, start int) T {
	tmp := make([]T, s.degree+1)
	for j := range tmp {
		tmp[j] = s.controls[j+start-s.degree-1]
	}

	for lvl := 0; lvl < s.degree; lvl++ {
		k := lvl + 1
		for j := 0; j < s.degree-lvl; j++ {
			i := j + k + start - s.degree
			alpha := (t - s.knots[i-1]) / (s.knots[i+s.degree-k] - s.knots[i-1])
			tmp[j] = tmp[j].Interpolate(tmp[j+1], alpha)
		}
	}

	return tmp[0]
}
