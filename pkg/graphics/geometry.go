package graphics

import "math"

// Offset represents a 2D point or vector in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns o + other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Distance returns the length of the vector.
func (o Offset) Distance() float64 {
	return math.Hypot(o.X, o.Y)
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsZero reports whether either dimension is zero. A zero size is used
// throughout as "not measured yet".
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// LongestSide returns the larger of width and height.
func (s Size) LongestSide() float64 {
	return math.Max(s.Width, s.Height)
}

// Center returns the midpoint of a box of this size anchored at the origin.
func (s Size) Center() Offset {
	return Offset{X: s.Width / 2, Y: s.Height / 2}
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// RectFromOffsetSize constructs a Rect at origin with the given size.
func RectFromOffsetSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the rectangle's origin.
func (r Rect) TopLeft() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{X: (r.Left + r.Right) * 0.5, Y: (r.Top + r.Bottom) * 0.5}
}

// Contains reports whether p lies inside r (right and bottom exclusive).
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Alignment is a point within a rectangle where (-1,-1) is the top left,
// (0,0) the center and (1,1) the bottom right.
type Alignment struct {
	X float64
	Y float64
}

// Common alignments.
var (
	AlignTopLeft     = Alignment{X: -1, Y: -1}
	AlignTopCenter   = Alignment{X: 0, Y: -1}
	AlignTopRight    = Alignment{X: 1, Y: -1}
	AlignCenterLeft  = Alignment{X: -1, Y: 0}
	AlignCenter      = Alignment{X: 0, Y: 0}
	AlignCenterRight = Alignment{X: 1, Y: 0}
	AlignBottomLeft  = Alignment{X: -1, Y: 1}
	AlignBottomRight = Alignment{X: 1, Y: 1}
)

// WithinRect returns the point in r that this alignment refers to.
func (a Alignment) WithinRect(r Rect) Offset {
	halfW := r.Width() / 2
	halfH := r.Height() / 2
	return Offset{
		X: r.Left + halfW + a.X*halfW,
		Y: r.Top + halfH + a.Y*halfH,
	}
}
