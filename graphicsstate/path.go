package graphicsstate

import (
	"math"

	"github.com/tsawler/pdfstruct/model"
)

// PathSegmentType is the path construction operator of a segment
type PathSegmentType int

const (
	PathMoveTo    PathSegmentType = iota // m
	PathLineTo                           // l
	PathCurveTo                          // c, v and y
	PathClosePath                        // h
)

// PathSegment is one construction step of a path
type PathSegment struct {
	Type PathSegmentType

	// One point for move and line, control points then end point for curves
	Points []model.Point
}

// Path is a path under construction. Points are stored already mapped
// to page coordinates.
type Path struct {
	Segments []PathSegment

	// CurrentPoint is the current point in page coordinates
	CurrentPoint model.Point

	// Target of a close
	SubpathStart model.Point

	// False until the first move
	HasCurrentPoint bool
}

// NewPath returns an empty path
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at pt
func (p *Path) MoveTo(pt model.Point) {
	p.Segments = append(p.Segments, PathSegment{Type: PathMoveTo, Points: []model.Point{pt}})
	p.CurrentPoint = pt
	p.SubpathStart = pt
	p.HasCurrentPoint = true
}

// LineTo appends a line from the current point to pt. Without a current
// point it acts as MoveTo.
func (p *Path) LineTo(pt model.Point) {
	if !p.HasCurrentPoint {
		p.MoveTo(pt)
		return
	}
	p.Segments = append(p.Segments, PathSegment{Type: PathLineTo, Points: []model.Point{pt}})
	p.CurrentPoint = pt
}

// CurveTo appends a cubic Bézier curve with control points c1, c2 ending at end
func (p *Path) CurveTo(c1, c2, end model.Point) {
	if !p.HasCurrentPoint {
		p.MoveTo(c1)
	}
	p.Segments = append(p.Segments, PathSegment{Type: PathCurveTo, Points: []model.Point{c1, c2, end}})
	p.CurrentPoint = end
}

// ClosePath closes the current subpath
func (p *Path) ClosePath() {
	if !p.HasCurrentPoint {
		return
	}
	p.Segments = append(p.Segments, PathSegment{Type: PathClosePath})
	p.CurrentPoint = p.SubpathStart
}

// Clear drops all segments, as after a painting operator
func (p *Path) Clear() {
	p.Segments = p.Segments[:0]
	p.HasCurrentPoint = false
}

// IsEmpty reports whether no segment was added
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Subpaths splits the path at each MoveTo.
func (p *Path) Subpaths() [][]PathSegment {
	var out [][]PathSegment
	var cur []PathSegment
	for _, seg := range p.Segments {
		if seg.Type == PathMoveTo && len(cur) > 0 {
			out = append(out, cur)
			cur = nil
		}
		cur = append(cur, seg)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// axisTolerance is how far, in points, a rectangle corner may sit off
// the axis before the subpath stops counting as a rectangle.
const axisTolerance = 0.5

// subpathDrawings converts one subpath into drawings. An axis-aligned
// four-corner closed subpath becomes a rectangle; anything else is emitted
// line by line and curve by curve.
func subpathDrawings(segs []PathSegment) []model.Drawing {
	if r, ok := rectangle(segs); ok {
		return []model.Drawing{model.RectDrawing(r)}
	}

	var out []model.Drawing
	var cur, start model.Point
	for _, seg := range segs {
		switch seg.Type {
		case PathMoveTo:
			cur = seg.Points[0]
			start = cur
		case PathLineTo:
			end := seg.Points[0]
			out = append(out, model.LineDrawing(cur, end))
			cur = end
		case PathCurveTo:
			pts := []model.Point{cur, seg.Points[0], seg.Points[1], seg.Points[2]}
			out = append(out, model.Drawing{Kind: model.DrawCurve, Points: pts})
			cur = seg.Points[2]
		case PathClosePath:
			if !pointsEqual(cur, start, 0.1) {
				out = append(out, model.LineDrawing(cur, start))
			}
			cur = start
		}
	}
	return out
}

func rectangle(segs []PathSegment) (model.Rect, bool) {
	if len(segs) < 4 || segs[0].Type != PathMoveTo {
		return model.Rect{}, false
	}
	corners := []model.Point{segs[0].Points[0]}
	for _, seg := range segs[1:] {
		switch seg.Type {
		case PathLineTo:
			corners = append(corners, seg.Points[0])
		case PathClosePath:
		default:
			return model.Rect{}, false
		}
	}
	if len(corners) == 5 && pointsEqual(corners[0], corners[4], 0.1) {
		corners = corners[:4]
	}
	if len(corners) != 4 || !isAxisRectangle(corners, axisTolerance) {
		return model.Rect{}, false
	}
	return boundingBox(corners), true
}

// isAxisRectangle reports whether the four corners, taken in order, have
// every edge horizontal or vertical with alternating direction.
func isAxisRectangle(c []model.Point, tol float64) bool {
	horizontal := func(a, b model.Point) bool { return math.Abs(a.Y-b.Y) <= tol }
	vertical := func(a, b model.Point) bool { return math.Abs(a.X-b.X) <= tol }

	hv := horizontal(c[0], c[1]) && vertical(c[1], c[2]) && horizontal(c[2], c[3]) && vertical(c[3], c[0])
	vh := vertical(c[0], c[1]) && horizontal(c[1], c[2]) && vertical(c[2], c[3]) && horizontal(c[3], c[0])
	return hv || vh
}

func boundingBox(points []model.Point) model.Rect {
	r := model.Rect{X0: points[0].X, Y0: points[0].Y, X1: points[0].X, Y1: points[0].Y}
	for _, p := range points[1:] {
		r.X0 = math.Min(r.X0, p.X)
		r.Y0 = math.Min(r.Y0, p.Y)
		r.X1 = math.Max(r.X1, p.X)
		r.Y1 = math.Max(r.Y1, p.Y)
	}
	return r
}

func pointsEqual(a, b model.Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
