package tables

import (
	"sort"

	"github.com/tsawler/pdfstruct/model"
)

// borderSet answers exact segment membership queries.
type borderSet map[model.Segment]bool

func newBorderSet(segs []model.Segment) borderSet {
	set := make(borderSet, len(segs))
	for _, s := range segs {
		set[s.Normalized()] = true
	}
	return set
}

// bordered reports whether all four borders of r are segments of the set.
func (b borderSet) bordered(r model.Rect) bool {
	return b[model.Segment{X0: r.X0, Y0: r.Y0, X1: r.X0, Y1: r.Y1}] && // left
		b[model.Segment{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y0}] && // top
		b[model.Segment{X0: r.X1, Y0: r.Y0, X1: r.X1, Y1: r.Y1}] && // right
		b[model.Segment{X0: r.X0, Y0: r.Y1, X1: r.X1, Y1: r.Y1}] // bottom
}

// UnitCells builds the merge-free grid spanned by the distinct x and y
// coordinates of points.
func UnitCells(points []model.Point) []model.Rect {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	xs, ys = uniqueSorted(xs), uniqueSorted(ys)

	var cells []model.Rect
	for i := 0; i+1 < len(xs); i++ {
		for j := 0; j+1 < len(ys); j++ {
			cells = append(cells, model.Rect{X0: xs[i], Y0: ys[j], X1: xs[i+1], Y1: ys[j+1]})
		}
	}
	return cells
}

// RecombineSegments returns segs plus every segment obtained by chaining
// collinear segments end to start, repeated until nothing new appears.
func RecombineSegments(segs []model.Segment) []model.Segment {
	set := newBorderSet(segs)
	combined := uniqueSegments(append([]model.Segment(nil), segs...))

	for {
		starts := make(map[model.Point][]model.Segment)
		for _, s := range combined {
			starts[s.Start()] = append(starts[s.Start()], s)
		}

		var added []model.Segment
		for _, s := range combined {
			for _, next := range starts[s.End()] {
				if !collinear(s, next) {
					continue
				}
				joined := model.Segment{X0: s.X0, Y0: s.Y0, X1: next.X1, Y1: next.Y1}
				if !set[joined] {
					set[joined] = true
					added = append(added, joined)
				}
			}
		}
		if len(added) == 0 {
			return combined
		}
		combined = uniqueSegments(append(combined, added...))
	}
}

func collinear(a, b model.Segment) bool {
	if a.IsVertical() && b.IsVertical() {
		return a.X0 == b.X0
	}
	if a.IsHorizontal() && b.IsHorizontal() {
		return a.Y0 == b.Y0
	}
	return false
}

// Cells returns the cells of one table. When every unit cell is fully
// bordered by segs the unit grid is the answer. Otherwise each unbordered
// unit cell is replaced by the smallest bordered rectangle sharing its
// top-left corner, which is how merged cells appear.
func Cells(points []model.Point, segs []model.Segment) []model.Rect {
	units := UnitCells(points)
	borders := newBorderSet(segs)

	var valid, broken []model.Rect
	for _, c := range units {
		if borders.bordered(c) {
			valid = append(valid, c)
		} else {
			broken = append(broken, c)
		}
	}
	if len(broken) == 0 {
		return valid
	}

	recombined := newBorderSet(RecombineSegments(segs))
	out := valid
	for _, c := range broken {
		if merged, ok := mergedCell(model.Point{X: c.X0, Y: c.Y0}, points, recombined); ok {
			out = append(out, merged)
		}
	}
	return uniqueRects(out)
}

// mergedCell finds the bordered rectangle with top-left corner at
// corner that contains no other bordered candidate.
func mergedCell(corner model.Point, points []model.Point, borders borderSet) (model.Rect, bool) {
	var candidates []model.Rect
	for _, p := range points {
		if p.X <= corner.X || p.Y <= corner.Y {
			continue
		}
		r := model.Rect{X0: corner.X, Y0: corner.Y, X1: p.X, Y1: p.Y}
		if borders.bordered(r) {
			candidates = append(candidates, r)
		}
	}

	for i, c := range candidates {
		nests := false
		for j, other := range candidates {
			if i != j && c.Contains(other) {
				nests = true
				break
			}
		}
		if !nests {
			return c, true
		}
	}
	return model.Rect{}, false
}

// sortRects orders rectangles top to bottom, then left to right.
func sortRects(rects []model.Rect) {
	sort.Slice(rects, func(i, j int) bool {
		a, b := rects[i], rects[j]
		if a.Y0 != b.Y0 {
			return a.Y0 < b.Y0
		}
		if a.X0 != b.X0 {
			return a.X0 < b.X0
		}
		if a.Y1 != b.Y1 {
			return a.Y1 < b.Y1
		}
		return a.X1 < b.X1
	})
}

func uniqueRects(rects []model.Rect) []model.Rect {
	sortRects(rects)
	var out []model.Rect
	for _, r := range rects {
		if len(out) > 0 && r == out[len(out)-1] {
			continue
		}
		out = append(out, r)
	}
	return out
}
