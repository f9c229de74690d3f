package tables

import (
	"math"
	"sort"

	"github.com/tidwall/rtree"

	"github.com/tsawler/pdfstruct/model"
)

// BinderConfig holds configuration for span to cell binding
type BinderConfig struct {
	// Amount a span box is shrunk before testing containment
	Inset float64

	// Tables with a smaller share of non-empty cells are discarded
	MinFilledRatio float64
}

// DefaultBinderConfig returns sensible default configuration
func DefaultBinderConfig() BinderConfig {
	return BinderConfig{
		Inset:          3,
		MinFilledRatio: 0.5,
	}
}

// Binder assigns spans to table cells.
type Binder struct {
	config BinderConfig
}

// NewBinder creates a binder with default configuration
func NewBinder() *Binder {
	return NewBinderWithConfig(DefaultBinderConfig())
}

// NewBinderWithConfig creates a binder with custom configuration
func NewBinderWithConfig(config BinderConfig) *Binder {
	return &Binder{config: config}
}

// Bind fills the cells of candidate tables with the spans of their page,
// header/footer spans excepted, and returns the tables that are kept,
// sorted by reading order.
//
// A span whose shrunk box lies inside a cell is bound whole. A span
// straddling a cell border is split: the cell receives a derived span
// holding the share of characters proportional to the overlap width.
// Derived spans are added to the arena and keep the original Order.
//
// Spans whose origin falls inside a kept table are flagged InTable.
func (b *Binder) Bind(doc *model.Document, candidates []model.Table) []model.Table {
	byPage := doc.SpansByPage()

	var kept []model.Table
	for _, table := range candidates {
		bound, ok := b.bindTable(doc, table, byPage[table.Page])
		if ok {
			kept = append(kept, bound)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Order < kept[j].Order
	})

	for _, t := range kept {
		bbox := t.BBox()
		for _, id := range byPage[t.Page] {
			if bbox.ContainsPoint(doc.Spans[id].Origin) {
				doc.Classes.MarkInTable(id)
			}
		}
	}
	return kept
}

// bindTable binds spans to one table. Derived spans only reach the arena
// when the table is kept.
func (b *Binder) bindTable(doc *model.Document, table model.Table, spanIDs []int) (model.Table, bool) {
	var tr rtree.RTreeG[int]
	for i, c := range table.Cells {
		tr.Insert([2]float64{c.Rect.X0, c.Rect.Y0}, [2]float64{c.Rect.X1, c.Rect.Y1}, i)
	}

	// pending holds either an arena ID or a derived span per cell
	type pending struct {
		id      int
		derived *model.Span
	}
	cells := make([][]pending, len(table.Cells))

	for _, id := range spanIDs {
		if doc.Classes.Of(id).HeaderFooter {
			continue
		}
		span := doc.Spans[id]
		small := b.shrink(span.BBox)

		var hits []int
		tr.Search([2]float64{span.BBox.X0, span.BBox.Y0}, [2]float64{span.BBox.X1, span.BBox.Y1},
			func(_, _ [2]float64, i int) bool {
				hits = append(hits, i)
				return true
			})
		sort.Ints(hits)

		for _, i := range hits {
			cell := table.Cells[i].Rect
			switch {
			case cell.Contains(small):
				cells[i] = append(cells[i], pending{id: id})
			case cell.Intersects(small):
				part, ok := splitSpan(cell, span)
				if ok {
					cells[i] = append(cells[i], pending{derived: &part})
				}
			}
		}
	}

	filled := 0
	for _, c := range cells {
		if len(c) > 0 {
			filled++
		}
	}
	if len(cells) == 0 || float64(filled) < b.config.MinFilledRatio*float64(len(cells)) {
		return model.Table{}, false
	}

	out := model.Table{Page: table.Page, Cells: make([]model.Cell, len(table.Cells)), Order: math.MaxInt}
	for i, c := range table.Cells {
		out.Cells[i].Rect = c.Rect
		for _, p := range cells[i] {
			id := p.id
			if p.derived != nil {
				id = doc.AddSpan(*p.derived)
			}
			out.Cells[i].Spans = append(out.Cells[i].Spans, id)
			if o := doc.Spans[id].Order; o < out.Order {
				out.Order = o
			}
		}
	}
	return out, true
}

// shrink insets a span box, falling back to its center point when the
// inset box would be invalid.
func (b *Binder) shrink(r model.Rect) model.Rect {
	small := r.Inset(b.config.Inset)
	if !small.IsValid() {
		c := r.Center()
		return model.Rect{X0: c.X, Y0: c.Y, X1: c.X, Y1: c.Y}
	}
	return small
}

// splitSpan returns the part of span that lies within cell. The kept
// characters are a prefix when the overlap starts at the span's left
// edge and a suffix otherwise.
func splitSpan(cell model.Rect, span model.Span) (model.Span, bool) {
	overlap, ok := cell.Intersect(span.BBox)
	if !ok || span.BBox.Width() == 0 {
		return model.Span{}, false
	}
	runes := []rune(span.Text)
	n := int(math.Round(overlap.Width() / span.BBox.Width() * float64(len(runes))))
	if n > len(runes) {
		n = len(runes)
	}

	part := span
	if overlap.X0 == span.BBox.X0 {
		part.Text = string(runes[:n])
	} else {
		part.Text = string(runes[len(runes)-n:])
	}
	part.BBox = overlap
	part.Origin = model.Point{X: overlap.X0, Y: span.Origin.Y}
	return part, true
}
