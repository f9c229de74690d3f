package tables

import (
	"math"
	"sort"

	"github.com/tidwall/rtree"

	"github.com/tsawler/pdfstruct/model"
)

// NormalizeGrid clusters near-equal coordinates. Each axis is handled on
// its own: sorted values start a new cluster whenever the gap to the
// previous value reaches threshold, and every value is replaced by its
// cluster mean. The result is unique and sorted.
func NormalizeGrid(points []model.Point, threshold float64) []model.Point {
	if len(points) == 0 {
		return nil
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	xmap := clusterMeans(xs, threshold)
	ymap := clusterMeans(ys, threshold)

	seen := make(map[model.Point]bool)
	var out []model.Point
	for _, p := range points {
		q := model.Point{X: xmap[p.X], Y: ymap[p.Y]}
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	sortPoints(out)
	return out
}

// clusterMeans maps each input value to the mean of its cluster.
func clusterMeans(values []float64, threshold float64) map[float64]float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	out := make(map[float64]float64, len(sorted))
	flush := func(group []float64) {
		var sum float64
		for _, v := range group {
			sum += v
		}
		mean := sum / float64(len(group))
		for _, v := range group {
			out[v] = mean
		}
	}

	group := []float64{sorted[0]}
	for _, v := range sorted[1:] {
		if v-group[len(group)-1] >= threshold {
			flush(group)
			group = group[:0:0]
		}
		group = append(group, v)
	}
	flush(group)
	return out
}

// axisTargets holds the distinct grid coordinates of one axis and the
// midpoints between them.
type axisTargets struct {
	values []float64
	bins   []float64
}

func newAxisTargets(values []float64) axisTargets {
	u := uniqueSorted(values)
	bins := make([]float64, 0, len(u))
	for i := 0; i+1 < len(u); i++ {
		bins = append(bins, (u[i]+u[i+1])/2)
	}
	return axisTargets{values: u, bins: bins}
}

// snap moves v to its nearest target. The index is the number of
// midpoints at or below v.
func (a axisTargets) snap(v float64) float64 {
	if len(a.values) == 0 {
		return v
	}
	idx := sort.Search(len(a.bins), func(i int) bool { return a.bins[i] > v })
	return a.values[idx]
}

// SnapSegments moves every segment endpoint onto the nearest grid
// coordinate of points, per axis, and normalizes endpoint order.
func SnapSegments(segs []model.Segment, points []model.Point) []model.Segment {
	if len(points) == 0 {
		return segs
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	tx := newAxisTargets(xs)
	ty := newAxisTargets(ys)

	out := make([]model.Segment, len(segs))
	for i, s := range segs {
		out[i] = model.Segment{
			X0: tx.snap(s.X0), Y0: ty.snap(s.Y0),
			X1: tx.snap(s.X1), Y1: ty.snap(s.Y1),
		}.Normalized()
	}
	return out
}

const onSegmentEpsilon = 1e-6

// onSegment reports whether p lies on s, endpoints included.
func onSegment(p model.Point, s model.Segment) bool {
	cross := (p.X-s.X0)*(s.Y1-s.Y0) - (p.Y-s.Y0)*(s.X1-s.X0)
	if math.Abs(cross) > onSegmentEpsilon {
		return false
	}
	return s.BBox().ContainsPoint(p)
}

// Subdivide cuts every segment at the grid points lying on it. Pieces
// are unique and never zero-length.
func Subdivide(segs []model.Segment, points []model.Point) []model.Segment {
	var tr rtree.RTreeG[model.Point]
	for _, p := range points {
		tr.Insert([2]float64{p.X, p.Y}, [2]float64{p.X, p.Y}, p)
	}

	var out []model.Segment
	for _, s := range segs {
		start := s.Start()
		stops := []model.Point{start, s.End()}
		box := s.BBox()
		tr.Search([2]float64{box.X0, box.Y0}, [2]float64{box.X1, box.Y1},
			func(_, _ [2]float64, p model.Point) bool {
				if onSegment(p, s) {
					stops = append(stops, p)
				}
				return true
			})

		sort.SliceStable(stops, func(i, j int) bool {
			return manhattan(stops[i], start) < manhattan(stops[j], start)
		})
		for i := 0; i+1 < len(stops); i++ {
			a, b := stops[i], stops[i+1]
			out = append(out, model.Segment{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y}.Normalized())
		}
	}
	return uniqueSegments(out)
}

func manhattan(a, b model.Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

func uniqueSorted(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	var out []float64
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}
