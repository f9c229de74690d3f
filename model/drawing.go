package model

// DrawingKind tags a raw vector drawing command.
type DrawingKind int

const (
	DrawLine DrawingKind = iota
	DrawCurve
	DrawRect
	DrawQuad
	DrawPoint
)

// String returns the kind name
func (k DrawingKind) String() string {
	switch k {
	case DrawLine:
		return "line"
	case DrawCurve:
		return "curve"
	case DrawRect:
		return "rect"
	case DrawQuad:
		return "quad"
	case DrawPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Drawing is one vector command in page coordinates. Lines carry their
// two endpoints, rectangles two opposite corners, curves their four
// control points and quads their four corners.
type Drawing struct {
	Kind   DrawingKind
	Points []Point
}

// LineDrawing returns a line command between a and b
func LineDrawing(a, b Point) Drawing {
	return Drawing{Kind: DrawLine, Points: []Point{a, b}}
}

// RectDrawing returns a rectangle command for r
func RectDrawing(r Rect) Drawing {
	return Drawing{Kind: DrawRect, Points: []Point{{X: r.X0, Y: r.Y0}, {X: r.X1, Y: r.Y1}}}
}
