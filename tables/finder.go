package tables

import (
	"math"
	"sort"

	"github.com/tsawler/pdfstruct/model"
)

// FinderConfig holds configuration for line-based table detection
type FinderConfig struct {
	// Distance within which segments count as touching or intersecting
	SnapTolerance float64

	// Rectangles thinner than this become lines; also the gap that
	// separates two grid coordinates
	LineWidthThreshold float64

	// Segments no longer than this along both axes are ignored
	MinSegmentLength float64

	// Maximum relative difference between cell area and bounding box area
	AreaTolerance float64

	// Minimum number of cells for a table
	MinCells int

	// Treat the borders of filled rectangles as lines
	RectBorders bool
}

// DefaultFinderConfig returns sensible default configuration
func DefaultFinderConfig() FinderConfig {
	return FinderConfig{
		SnapTolerance:      3,
		LineWidthThreshold: 5,
		MinSegmentLength:   5,
		AreaTolerance:      0.02,
		MinCells:           2,
		RectBorders:        false,
	}
}

// Finder detects ruled tables from the vector drawings of a page.
type Finder struct {
	config FinderConfig
}

// NewFinder creates a finder with default configuration
func NewFinder() *Finder {
	return NewFinderWithConfig(DefaultFinderConfig())
}

// NewFinderWithConfig creates a finder with custom configuration
func NewFinderWithConfig(config FinderConfig) *Finder {
	return &Finder{config: config}
}

// Name returns the detector name
func (f *Finder) Name() string {
	return "lines"
}

// Detect implements Detector
func (f *Finder) Detect(page int, drawings []model.Drawing) []model.Table {
	return f.FindTables(page, drawings)
}

// FindTables returns the table candidates of one page. Cells carry no
// spans yet. The result does not depend on the order of drawings.
func (f *Finder) FindTables(page int, drawings []model.Drawing) []model.Table {
	segs := SegmentsFromDrawings(drawings, f.config)
	if len(segs) == 0 {
		return nil
	}

	var out []model.Table
	for _, group := range GroupSegments(segs, f.config.SnapTolerance) {
		cells := f.buildCells(group)
		if len(cells) == 0 {
			continue
		}
		table := model.Table{Page: page, Cells: make([]model.Cell, len(cells))}
		for i, c := range cells {
			table.Cells[i] = model.Cell{Rect: c}
		}
		if !f.plausible(table) {
			continue
		}
		out = append(out, table)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].BBox(), out[j].BBox()
		if a.Y0 != b.Y0 {
			return a.Y0 < b.Y0
		}
		return a.X0 < b.X0
	})
	return out
}

// buildCells runs grid normalization and cell construction for the
// segments of one table candidate.
func (f *Finder) buildCells(segs []model.Segment) []model.Rect {
	points := Intersections(segs, f.config.SnapTolerance)
	if len(points) == 0 {
		return nil
	}
	points = NormalizeGrid(points, f.config.LineWidthThreshold)
	segs = SnapSegments(segs, points)
	segs = Subdivide(segs, points)

	cells := Cells(points, segs)
	sortRects(cells)
	return cells
}

// plausible rejects candidates whose cells do not tile their bounding box.
func (f *Finder) plausible(t model.Table) bool {
	if len(t.Cells) < f.config.MinCells {
		return false
	}
	bboxArea := t.BBox().Area()
	if bboxArea == 0 {
		return false
	}
	return math.Abs(t.CellArea()-bboxArea)/bboxArea <= f.config.AreaTolerance
}
