package slicer

import "math"

// Matrix is a 2x2 linear transform applied to Point2 values. It is used
// exclusively to rotate the beam pattern into an orientation-independent
// frame before voxelizing, and to rotate the result back afterwards.
// Rotation is the only place floating point appears inside the polygon
// pipeline: every other operation stays in exact integer arithmetic.
type Matrix struct {
	M00, M01 float64
	M10, M11 float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{M00: 1, M01: 0, M10: 0, M11: 1}
}

// NewRotationMatrix builds a rotation matrix for the given angle, in degrees,
// counter-clockwise around the origin.
func NewRotationMatrix(degrees float64) Matrix {
	r := degrees / 180.0 * math.Pi
	cos := math.Cos(r)
	sin := math.Sin(r)
	return Matrix{M00: cos, M01: -sin, M10: sin, M11: cos}
}

// Inverse returns the matrix that undoes m. Rotation matrices built by
// NewRotationMatrix are orthonormal, so the inverse is the transpose; this
// also works for the general case via the 2x2 adjugate.
func (m Matrix) Inverse() Matrix {
	det := m.M00*m.M11 - m.M01*m.M10
	if det == 0 {
		return Identity()
	}
	inv := 1.0 / det
	return Matrix{
		M00: m.M11 * inv,
		M01: -m.M01 * inv,
		M10: -m.M10 * inv,
		M11: m.M00 * inv,
	}
}

// Apply transforms a point, rounding to the nearest integer coordinate.
// The rounding convention only needs to be consistent with itself: rotation
// composed with its inverse is allowed to drift by up to one integer unit
// per coordinate, which later union/clip steps absorb.
func (m Matrix) Apply(p Point2) Point2 {
	x := m.M00*float64(p.X) + m.M01*float64(p.Y)
	y := m.M10*float64(p.X) + m.M11*float64(p.Y)
	return Point2{X: round(x), Y: round(y)}
}

func round(v float64) Coord {
	if v >= 0 {
		return Coord(v + 0.5)
	}
	return Coord(v - 0.5)
}
