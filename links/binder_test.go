package links

import (
	"testing"

	"github.com/tsawler/pdfstruct/model"
)

func TestChoose(t *testing.T) {
	tests := []struct {
		name   string
		cands  []candidate
		want   int
		wantOK bool
	}{
		{"no candidates", nil, 0, false},
		{"single candidate", []candidate{{span: 4, area: 3}}, 4, true},
		{"clear winner", []candidate{{span: 1, area: 45}, {span: 2, area: 100}}, 2, true},
		{"close call takes runner-up", []candidate{{span: 1, area: 100}, {span: 2, area: 60}}, 2, true},
		{"tie at the top", []candidate{{span: 1, area: 50}, {span: 2, area: 50}, {span: 3, area: 30}}, 3, true},
		{"all tied", []candidate{{span: 1, area: 50}, {span: 2, area: 50}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := choose(tt.cands)
			if ok != tt.wantOK {
				t.Fatalf("choose() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("choose() = %d, want %d", got, tt.want)
			}
		})
	}
}

func span(text string, x0, x1 float64) model.Span {
	return model.Span{
		Text:   text,
		BBox:   model.Rect{X0: x0, Y0: 0, X1: x1, Y1: 10},
		Origin: model.Point{X: x0, Y: 10},
		Size:   10,
	}
}

func TestBind(t *testing.T) {
	doc := model.NewDocument(2, []model.PageContent{
		{
			Number: 0,
			Spans:  []model.Span{span("see ", 0, 10), span("here", 10, 20)},
			Links: []model.Link{
				{URI: "https://example.com/a", BBox: model.Rect{X0: 0, Y0: 0, X1: 14.5, Y1: 10}},
				{URI: "https://example.com/b", BBox: model.Rect{X0: 100, Y0: 100, X1: 120, Y1: 110}},
			},
		},
		{
			Number: 1,
			Spans:  []model.Span{span("other", 0, 10)},
		},
	})

	if got := Bind(doc); got != 1 {
		t.Fatalf("Bind() = %d, want 1", got)
	}

	a := doc.Links[0]
	if !a.Bound || a.Span != 0 {
		t.Errorf("link a = %+v, want bound to span 0", a)
	}
	if cl := doc.Classes.Of(0); !cl.HasLink || cl.Link != 0 {
		t.Errorf("span 0 class = %+v, want link 0", cl)
	}
	if doc.Links[1].Bound {
		t.Error("link without overlap was bound")
	}
	if doc.Classes.Of(2).HasLink {
		t.Error("span on another page received a link")
	}
}
