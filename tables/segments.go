package tables

import (
	"math"
	"sort"

	"github.com/tsawler/pdfstruct/model"
)

// SegmentsFromDrawings converts drawing commands into the axis-aligned
// segments table detection works on. Coordinates are rounded to whole
// points. Rectangles thinner than the line width threshold become their
// centerline; wider rectangles only contribute borders when
// RectBorders is set. Curves, quads and points are ignored. The result
// is sorted so detection does not depend on drawing order.
func SegmentsFromDrawings(drawings []model.Drawing, config FinderConfig) []model.Segment {
	var segs []model.Segment
	for _, d := range drawings {
		switch d.Kind {
		case model.DrawLine:
			if len(d.Points) < 2 {
				continue
			}
			segs = append(segs, model.Segment{
				X0: d.Points[0].X, Y0: d.Points[0].Y,
				X1: d.Points[1].X, Y1: d.Points[1].Y,
			})
		case model.DrawRect:
			if len(d.Points) < 2 {
				continue
			}
			segs = append(segs, rectSegments(model.NewRect(d.Points[0], d.Points[1]), config)...)
		}
	}

	var out []model.Segment
	for _, s := range segs {
		s = model.Segment{
			X0: math.Round(s.X0), Y0: math.Round(s.Y0),
			X1: math.Round(s.X1), Y1: math.Round(s.Y1),
		}
		if !s.IsHorizontal() && !s.IsVertical() {
			continue
		}
		if math.Abs(s.X1-s.X0) <= config.MinSegmentLength && math.Abs(s.Y1-s.Y0) <= config.MinSegmentLength {
			continue
		}
		out = append(out, s)
	}
	sortSegments(out)
	return out
}

func rectSegments(r model.Rect, config FinderConfig) []model.Segment {
	switch {
	case r.Width() < config.LineWidthThreshold:
		mid := r.X0 + r.Width()/2
		return []model.Segment{{X0: mid, Y0: r.Y0, X1: mid, Y1: r.Y1}}
	case r.Height() < config.LineWidthThreshold:
		mid := r.Y0 + r.Height()/2
		return []model.Segment{{X0: r.X0, Y0: mid, X1: r.X1, Y1: mid}}
	case config.RectBorders:
		return []model.Segment{
			{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y0},
			{X0: r.X0, Y0: r.Y1, X1: r.X1, Y1: r.Y1},
			{X0: r.X0, Y0: r.Y0, X1: r.X0, Y1: r.Y1},
			{X0: r.X1, Y0: r.Y0, X1: r.X1, Y1: r.Y1},
		}
	}
	return nil
}

func sortSegments(segs []model.Segment) {
	sort.Slice(segs, func(i, j int) bool {
		return lessSegment(segs[i], segs[j])
	})
}

func lessSegment(a, b model.Segment) bool {
	if a.X0 != b.X0 {
		return a.X0 < b.X0
	}
	if a.Y0 != b.Y0 {
		return a.Y0 < b.Y0
	}
	if a.X1 != b.X1 {
		return a.X1 < b.X1
	}
	return a.Y1 < b.Y1
}

// uniqueSegments sorts segs and removes exact duplicates and
// zero-length segments.
func uniqueSegments(segs []model.Segment) []model.Segment {
	sortSegments(segs)
	var out []model.Segment
	for _, s := range segs {
		if s.X0 == s.X1 && s.Y0 == s.Y1 {
			continue
		}
		if len(out) > 0 && s == out[len(out)-1] {
			continue
		}
		out = append(out, s)
	}
	return out
}
