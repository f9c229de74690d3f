package tables

import (
	"math"
	"sort"

	"github.com/tsawler/pdfstruct/model"
)

// Intersect solves the intersection of the infinite lines through a and b
// and accepts the point only if it lies within both segments' extents
// widened by snap. Parallel and coincident segments never intersect.
func Intersect(a, b model.Segment, snap float64) (model.Point, bool) {
	a, b = a.Normalized(), b.Normalized()
	x1, y1, x2, y2 := a.X0, a.Y0, a.X1, a.Y1
	x3, y3, x4, y4 := b.X0, b.Y0, b.X1, b.Y1

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return model.Point{}, false
	}
	cross12 := x1*y2 - y1*x2
	cross34 := x3*y4 - y3*x4
	p := model.Point{
		X: (cross12*(x3-x4) - (x1-x2)*cross34) / denom,
		Y: (cross12*(y3-y4) - (y1-y2)*cross34) / denom,
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return model.Point{}, false
	}
	if !withinExtent(p, a, snap) || !withinExtent(p, b, snap) {
		return model.Point{}, false
	}
	return p, true
}

func withinExtent(p model.Point, s model.Segment, snap float64) bool {
	return s.X0-snap <= p.X && p.X <= s.X1+snap &&
		s.Y0-snap <= p.Y && p.Y <= s.Y1+snap
}

// Intersections returns the unique intersection points among all pairs
// of segments, sorted by x then y.
func Intersections(segs []model.Segment, snap float64) []model.Point {
	seen := make(map[model.Point]bool)
	var out []model.Point
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			p, ok := Intersect(segs[i], segs[j], snap)
			if !ok || seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	sortPoints(out)
	return out
}

func sortPoints(points []model.Point) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].X != points[j].X {
			return points[i].X < points[j].X
		}
		return points[i].Y < points[j].Y
	})
}
