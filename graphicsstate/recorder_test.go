package graphicsstate

import (
	"testing"

	"github.com/tsawler/pdfstruct/model"
)

type op struct {
	name     string
	operands []float64
}

func record(t *testing.T, base Matrix, ops []op) []model.Drawing {
	t.Helper()
	rec := NewRecorder(base)
	for _, o := range ops {
		if err := rec.Apply(o.name, o.operands); err != nil {
			t.Fatalf("Apply(%s) failed: %v", o.name, err)
		}
	}
	return rec.Drawings()
}

func TestRecorder_HorizontalLine(t *testing.T) {
	// 0 100 m 200 100 l S
	got := record(t, Identity(), []op{
		{"m", []float64{0, 100}},
		{"l", []float64{200, 100}},
		{"S", nil},
	})

	if len(got) != 1 {
		t.Fatalf("Expected 1 drawing, got %d", len(got))
	}
	want := model.LineDrawing(pt(0, 100), pt(200, 100))
	if got[0].Kind != want.Kind || got[0].Points[0] != want.Points[0] || got[0].Points[1] != want.Points[1] {
		t.Errorf("Expected %v, got %v", want, got[0])
	}
}

func TestRecorder_RectangleFlipped(t *testing.T) {
	page := model.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}
	got := record(t, PageMatrix(page), []op{
		{"re", []float64{72, 700, 200, 0.5}},
		{"f", nil},
	})

	if len(got) != 1 || got[0].Kind != model.DrawRect {
		t.Fatalf("Expected one rectangle, got %v", got)
	}
	r := model.NewRect(got[0].Points[0], got[0].Points[1])
	want := model.Rect{X0: 72, Y0: 91.5, X1: 272, Y1: 92}
	if r != want {
		t.Errorf("Expected %v, got %v", want, r)
	}
}

func TestRecorder_Transform(t *testing.T) {
	got := record(t, Identity(), []op{
		{"q", nil},
		{"cm", []float64{1, 0, 0, 1, 50, 50}},
		{"m", []float64{0, 0}},
		{"l", []float64{10, 0}},
		{"S", nil},
		{"Q", nil},
		{"m", []float64{0, 0}},
		{"l", []float64{10, 0}},
		{"S", nil},
	})

	if len(got) != 2 {
		t.Fatalf("Expected 2 drawings, got %d", len(got))
	}
	if got[0].Points[0] != pt(50, 50) {
		t.Errorf("Expected translated start (50, 50), got %v", got[0].Points[0])
	}
	if got[1].Points[0] != pt(0, 0) {
		t.Errorf("Expected restored start (0, 0), got %v", got[1].Points[0])
	}
}

func TestRecorder_EndPathDiscards(t *testing.T) {
	got := record(t, Identity(), []op{
		{"re", []float64{0, 0, 100, 100}},
		{"W", nil},
		{"n", nil},
		{"m", []float64{0, 0}},
		{"l", []float64{10, 0}},
		{"S", nil},
	})

	if len(got) != 1 || got[0].Kind != model.DrawLine {
		t.Errorf("Expected only the stroked line, got %v", got)
	}
}

func TestRecorder_CloseAndStroke(t *testing.T) {
	got := record(t, Identity(), []op{
		{"m", []float64{0, 0}},
		{"l", []float64{100, 0}},
		{"l", []float64{50, 50}},
		{"s", nil},
	})

	if len(got) != 3 {
		t.Errorf("Expected 3 lines for a closed triangle, got %d", len(got))
	}
}

func TestRecorder_Curves(t *testing.T) {
	got := record(t, Identity(), []op{
		{"m", []float64{0, 0}},
		{"c", []float64{10, 10, 20, 10, 30, 0}},
		{"v", []float64{40, 10, 50, 0}},
		{"y", []float64{60, 10, 70, 0}},
		{"S", nil},
	})

	if len(got) != 3 {
		t.Fatalf("Expected 3 curves, got %d", len(got))
	}
	for i, d := range got {
		if d.Kind != model.DrawCurve || len(d.Points) != 4 {
			t.Errorf("drawing %d = %v, want a 4-point curve", i, d)
		}
	}
	if got[1].Points[1] != pt(30, 0) {
		t.Errorf("v curve first control point = %v, want current point (30, 0)", got[1].Points[1])
	}
	if got[2].Points[2] != pt(70, 0) {
		t.Errorf("y curve second control point = %v, want end point (70, 0)", got[2].Points[2])
	}
}

func TestRecorder_Errors(t *testing.T) {
	rec := NewRecorder(Identity())
	if err := rec.Apply("Q", nil); err == nil {
		t.Error("Expected error for unbalanced Q")
	}
	// wrong operand counts are ignored
	if err := rec.Apply("m", []float64{1}); err != nil {
		t.Errorf("Apply(m) with one operand returned %v", err)
	}
	if err := rec.Apply("S", nil); err != nil {
		t.Errorf("Apply(S) returned %v", err)
	}
	if len(rec.Drawings()) != 0 {
		t.Errorf("Expected no drawings, got %v", rec.Drawings())
	}
}

func TestRecorder_LineWidth(t *testing.T) {
	rec := NewRecorder(Identity())
	_ = rec.Apply("w", []float64{3})
	if rec.State().LineWidth != 3 {
		t.Errorf("Expected line width 3, got %f", rec.State().LineWidth)
	}
}
