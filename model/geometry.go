package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle in top-down page coordinates.
// (X0, Y0) is the top-left corner and (X1, Y1) the bottom-right one.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect builds a rectangle from two opposite corners in any order.
func NewRect(a, b Point) Rect {
	return Rect{
		X0: math.Min(a.X, b.X),
		Y0: math.Min(a.Y, b.Y),
		X1: math.Max(a.X, b.X),
		Y1: math.Max(a.Y, b.Y),
	}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Area returns the area, or 0 for an invalid rectangle
func (r Rect) Area() float64 {
	if !r.IsValid() {
		return 0
	}
	return r.Width() * r.Height()
}

// IsValid reports whether the rectangle has positive width and height.
func (r Rect) IsValid() bool {
	return r.X0 < r.X1 && r.Y0 < r.Y1
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return !r.IsValid()
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Intersect returns the overlapping region of two rectangles. The boolean
// is false when the overlap has no area.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	out := Rect{
		X0: math.Max(r.X0, other.X0),
		Y0: math.Max(r.Y0, other.Y0),
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
	}
	return out, out.IsValid()
}

// IntersectionArea returns the area shared by two rectangles.
func (r Rect) IntersectionArea(other Rect) float64 {
	w := math.Min(r.X1, other.X1) - math.Max(r.X0, other.X0)
	h := math.Min(r.Y1, other.Y1) - math.Max(r.Y0, other.Y0)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Intersects reports whether two rectangles share a region with positive area.
func (r Rect) Intersects(other Rect) bool {
	_, ok := r.Intersect(other)
	return ok
}

// Union returns the smallest rectangle containing both rectangles
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Contains reports whether other lies entirely inside r, borders included.
func (r Rect) Contains(other Rect) bool {
	return other.X0 >= r.X0 && other.Y0 >= r.Y0 &&
		other.X1 <= r.X1 && other.Y1 <= r.Y1
}

// ContainsPoint reports whether p lies inside r, borders included.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Inset shrinks the rectangle by d on every side. The result may be invalid.
func (r Rect) Inset(d float64) Rect {
	return Rect{X0: r.X0 + d, Y0: r.Y0 + d, X1: r.X1 - d, Y1: r.Y1 - d}
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float64) Rect {
	return r.Inset(-d)
}

// Segment is a straight line between two points.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// IsHorizontal reports whether both endpoints share the same y.
func (s Segment) IsHorizontal() bool {
	return s.Y0 == s.Y1
}

// IsVertical reports whether both endpoints share the same x.
func (s Segment) IsVertical() bool {
	return s.X0 == s.X1
}

// Length returns the Euclidean length
func (s Segment) Length() float64 {
	return s.Start().Distance(s.End())
}

// Start returns the first endpoint
func (s Segment) Start() Point {
	return Point{X: s.X0, Y: s.Y0}
}

// End returns the second endpoint
func (s Segment) End() Point {
	return Point{X: s.X1, Y: s.Y1}
}

// BBox returns the bounding rectangle of the segment. It is degenerate
// (zero width or height) for axis-aligned segments.
func (s Segment) BBox() Rect {
	return NewRect(s.Start(), s.End())
}

// Normalized returns the segment with X0 <= X1 and Y0 <= Y1.
func (s Segment) Normalized() Segment {
	return Segment{
		X0: math.Min(s.X0, s.X1),
		Y0: math.Min(s.Y0, s.Y1),
		X1: math.Max(s.X0, s.X1),
		Y1: math.Max(s.Y0, s.Y1),
	}
}
