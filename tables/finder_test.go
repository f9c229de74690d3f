package tables

import (
	"math"
	"reflect"
	"testing"

	"github.com/tsawler/pdfstruct/model"
)

func line(x0, y0, x1, y1 float64) model.Drawing {
	return model.LineDrawing(model.Point{X: x0, Y: y0}, model.Point{X: x1, Y: y1})
}

// mergedBox is a 20x20 box split in half horizontally, with only the
// bottom half split vertically.
func mergedBox(scale float64) []model.Drawing {
	s := scale
	return []model.Drawing{
		line(0, 0, 20*s, 0),
		line(0, 20*s, 20*s, 20*s),
		line(0, 0, 0, 20*s),
		line(20*s, 0, 20*s, 20*s),
		line(0, 10*s, 20*s, 10*s),
		line(10*s, 10*s, 10*s, 20*s),
	}
}

func cellRects(t model.Table) []model.Rect {
	out := make([]model.Rect, len(t.Cells))
	for i, c := range t.Cells {
		out[i] = c.Rect
	}
	return out
}

// ============================================================================
// Intersection Tests
// ============================================================================

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   model.Segment
		want   model.Point
		wantOK bool
	}{
		{
			name:   "crossing",
			a:      model.Segment{X0: 0, Y0: 0, X1: 10, Y1: 0},
			b:      model.Segment{X0: 5, Y0: -5, X1: 5, Y1: 5},
			want:   model.Point{X: 5, Y: 0},
			wantOK: true,
		},
		{
			name:   "parallel",
			a:      model.Segment{X0: 0, Y0: 0, X1: 10, Y1: 0},
			b:      model.Segment{X0: 0, Y0: 5, X1: 10, Y1: 5},
			wantOK: false,
		},
		{
			name:   "within snap of the end",
			a:      model.Segment{X0: 0, Y0: 0, X1: 10, Y1: 0},
			b:      model.Segment{X0: 12, Y0: -5, X1: 12, Y1: 5},
			want:   model.Point{X: 12, Y: 0},
			wantOK: true,
		},
		{
			name:   "beyond snap",
			a:      model.Segment{X0: 0, Y0: 0, X1: 10, Y1: 0},
			b:      model.Segment{X0: 20, Y0: -5, X1: 20, Y1: 5},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a, tt.b, 3)
			if ok != tt.wantOK {
				t.Fatalf("Intersect() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectionsUnique(t *testing.T) {
	segs := []model.Segment{
		{X0: 0, Y0: 0, X1: 10, Y1: 0},
		{X0: 0, Y0: 0, X1: 0, Y1: 10},
		{X0: 0, Y0: 0, X1: 0, Y1: 10},
	}
	got := Intersections(segs, 3)
	want := []model.Point{{X: 0, Y: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Intersections() = %v, want %v", got, want)
	}
}

// ============================================================================
// Grid Tests
// ============================================================================

func TestNormalizeGrid(t *testing.T) {
	points := []model.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 50, Y: 1}, {X: 51, Y: 40}}
	got := NormalizeGrid(points, 5)
	want := []model.Point{{X: 1, Y: 1.0 / 3}, {X: 50.5, Y: 1.0 / 3}, {X: 50.5, Y: 40}}
	if len(got) != len(want) {
		t.Fatalf("NormalizeGrid() = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > 1e-9 || math.Abs(got[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSnapSegments(t *testing.T) {
	points := []model.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 50}}
	segs := []model.Segment{{X0: 98, Y0: 1, X1: 2, Y1: 1}}
	got := SnapSegments(segs, points)
	want := []model.Segment{{X0: 0, Y0: 0, X1: 100, Y1: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SnapSegments() = %v, want %v", got, want)
	}
}

func TestSubdivide(t *testing.T) {
	segs := []model.Segment{{X0: 0, Y0: 0, X1: 30, Y1: 0}}
	points := []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}, {X: 10, Y: 5}}
	got := Subdivide(segs, points)
	want := []model.Segment{
		{X0: 0, Y0: 0, X1: 10, Y1: 0},
		{X0: 10, Y0: 0, X1: 20, Y1: 0},
		{X0: 20, Y0: 0, X1: 30, Y1: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Subdivide() = %v, want %v", got, want)
	}
}

func TestRecombineSegments(t *testing.T) {
	segs := []model.Segment{
		{X0: 0, Y0: 0, X1: 10, Y1: 0},
		{X0: 10, Y0: 0, X1: 20, Y1: 0},
		{X0: 20, Y0: 0, X1: 30, Y1: 0},
		{X0: 10, Y0: 0, X1: 10, Y1: 10},
	}
	got := RecombineSegments(segs)
	for _, want := range []model.Segment{
		{X0: 0, Y0: 0, X1: 20, Y1: 0},
		{X0: 10, Y0: 0, X1: 30, Y1: 0},
		{X0: 0, Y0: 0, X1: 30, Y1: 0},
	} {
		found := false
		for _, s := range got {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("RecombineSegments() missing %v", want)
		}
	}
	if len(got) != 7 {
		t.Errorf("RecombineSegments() returned %d segments, want 7", len(got))
	}
}

// ============================================================================
// Finder Tests
// ============================================================================

func TestFinderMergedCells(t *testing.T) {
	tables := NewFinder().FindTables(0, mergedBox(1))
	if len(tables) != 1 {
		t.Fatalf("FindTables() found %d tables, want 1", len(tables))
	}

	got := cellRects(tables[0])
	want := []model.Rect{
		{X0: 0, Y0: 0, X1: 20, Y1: 10},
		{X0: 0, Y0: 10, X1: 10, Y1: 20},
		{X0: 10, Y0: 10, X1: 20, Y1: 20},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cells = %v, want %v", got, want)
	}
}

func TestFinderFullGrid(t *testing.T) {
	drawings := []model.Drawing{
		line(0, 0, 100, 0), line(0, 50, 100, 50), line(0, 100, 100, 100),
		line(0, 0, 0, 100), line(50, 0, 50, 100), line(100, 0, 100, 100),
	}
	tables := NewFinder().FindTables(2, drawings)
	if len(tables) != 1 {
		t.Fatalf("FindTables() found %d tables, want 1", len(tables))
	}
	if got := len(tables[0].Cells); got != 4 {
		t.Errorf("got %d cells, want 4", got)
	}
	if tables[0].Page != 2 {
		t.Errorf("Page = %d, want 2", tables[0].Page)
	}
}

func TestFinderThinRectangles(t *testing.T) {
	var drawings []model.Drawing
	for _, y := range []float64{0, 50, 100} {
		drawings = append(drawings, model.RectDrawing(model.Rect{X0: 0, Y0: y - 1, X1: 100, Y1: y + 1}))
	}
	for _, x := range []float64{0, 100} {
		drawings = append(drawings, model.RectDrawing(model.Rect{X0: x - 1, Y0: 0, X1: x + 1, Y1: 100}))
	}
	tables := NewFinder().FindTables(0, drawings)
	if len(tables) != 1 || len(tables[0].Cells) != 2 {
		t.Fatalf("FindTables() = %+v, want one table with 2 cells", tables)
	}
}

func TestFinderRejects(t *testing.T) {
	tests := []struct {
		name     string
		drawings []model.Drawing
	}{
		{"no drawings", nil},
		{"parallel lines", []model.Drawing{line(0, 0, 100, 0), line(0, 20, 100, 20)}},
		{"single cell", []model.Drawing{
			line(0, 0, 100, 0), line(0, 100, 100, 100),
			line(0, 0, 0, 100), line(100, 0, 100, 100),
		}},
		{"short segments", []model.Drawing{line(0, 0, 4, 0), line(2, -2, 2, 2)}},
		{"large filled rectangle", []model.Drawing{model.RectDrawing(model.Rect{X1: 100, Y1: 100})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewFinder().FindTables(0, tt.drawings); len(got) != 0 {
				t.Errorf("FindTables() = %+v, want none", got)
			}
		})
	}
}

func TestFinderAreaInvariant(t *testing.T) {
	for _, table := range NewFinder().FindTables(0, mergedBox(3)) {
		bbox := table.BBox().Area()
		if diff := math.Abs(table.CellArea()-bbox) / bbox; diff > 0.02 {
			t.Errorf("cell area differs from bbox area by %.3f", diff)
		}
	}
}

func TestFinderOrderIndependent(t *testing.T) {
	drawings := mergedBox(5)
	reversed := make([]model.Drawing, len(drawings))
	for i, d := range drawings {
		reversed[len(drawings)-1-i] = d
	}

	a := NewFinder().FindTables(0, drawings)
	b := NewFinder().FindTables(0, reversed)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("FindTables() depends on drawing order:\n%v\n%v", a, b)
	}
}

func TestFinderSeparateTables(t *testing.T) {
	drawings := mergedBox(1)
	for _, d := range mergedBox(1) {
		shifted := model.Drawing{Kind: d.Kind}
		for _, p := range d.Points {
			shifted.Points = append(shifted.Points, model.Point{X: p.X, Y: p.Y + 200})
		}
		drawings = append(drawings, shifted)
	}
	tables := NewFinder().FindTables(0, drawings)
	if len(tables) != 2 {
		t.Fatalf("FindTables() found %d tables, want 2", len(tables))
	}
	if tables[0].BBox().Y0 > tables[1].BBox().Y0 {
		t.Error("tables are not sorted top to bottom")
	}
}

// ============================================================================
// Registry Tests
// ============================================================================

func TestRegistry(t *testing.T) {
	detector, err := GetDetector(DefaultDetector)
	if err != nil {
		t.Fatalf("GetDetector(%q) error = %v", DefaultDetector, err)
	}
	if got := detector.Detect(0, mergedBox(1)); len(got) != 1 {
		t.Errorf("Detect() found %d tables, want 1", len(got))
	}

	if _, err := GetDetector("whitespace"); err == nil {
		t.Error("GetDetector(\"whitespace\") returned no error")
	}

	r := NewRegistry()
	r.Register(NewFinder())
	if got := r.List(); !reflect.DeepEqual(got, []string{"lines"}) {
		t.Errorf("List() = %v, want [lines]", got)
	}
	if got := ListDetectors(); !reflect.DeepEqual(got, []string{"lines"}) {
		t.Errorf("ListDetectors() = %v, want [lines]", got)
	}
}
