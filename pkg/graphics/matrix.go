package graphics

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix4 is a 4x4 transform applied to points as column vectors.
// Storage is row major; Entry(row, col) addresses it directly.
//
// Methods that build up a transform (Scale, RotateX, RotateY, Translate)
// post-multiply, so the last call is applied to a point first.
type Matrix4 struct {
	m f64.Mat4
}

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{m: f64.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Entry returns the value at row, col.
func (m Matrix4) Entry(row, col int) float64 {
	return m.m[row*4+col]
}

// SetEntry returns a copy with the value at row, col replaced.
func (m Matrix4) SetEntry(row, col int, v float64) Matrix4 {
	m.m[row*4+col] = v
	return m
}

// Multiply returns m * other.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var out f64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.m[r*4+k] * other.m[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return Matrix4{m: out}
}

// Scale returns m scaled uniformly on x, y and z.
func (m Matrix4) Scale(s float64) Matrix4 {
	return m.Multiply(Matrix4{m: f64.Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}})
}

// Translate returns m translated by (dx, dy).
func (m Matrix4) Translate(dx, dy float64) Matrix4 {
	return m.Multiply(Matrix4{m: f64.Mat4{
		1, 0, 0, dx,
		0, 1, 0, dy,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}})
}

// RotateX returns m rotated about the horizontal axis by radians.
func (m Matrix4) RotateX(radians float64) Matrix4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return m.Multiply(Matrix4{m: f64.Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}})
}

// RotateY returns m rotated about the vertical axis by radians.
func (m Matrix4) RotateY(radians float64) Matrix4 {
	c, s := math.Cos(radians), math.Sin(radians)
	return m.Multiply(Matrix4{m: f64.Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}})
}

// TransformPoint maps a point on the z=0 plane, applying the perspective
// divide.
func (m Matrix4) TransformPoint(p Offset) Offset {
	x := m.m[0]*p.X + m.m[1]*p.Y + m.m[3]
	y := m.m[4]*p.X + m.m[5]*p.Y + m.m[7]
	w := m.m[12]*p.X + m.m[13]*p.Y + m.m[15]
	if w == 0 {
		return Offset{X: x, Y: y}
	}
	return Offset{X: x / w, Y: y / w}
}

// AroundOrigin returns the transform that applies m relative to origin
// instead of (0,0).
func (m Matrix4) AroundOrigin(origin Offset) Matrix4 {
	return Identity().Translate(origin.X, origin.Y).Multiply(m).Translate(-origin.X, -origin.Y)
}
