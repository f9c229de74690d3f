// Package links binds URI link annotations to the text spans they cover.
//
// A link annotation is an invisible clickable box layered over some text.
// Binding compares the box with every span of its page by overlap area.
// When one span clearly dominates it wins. When the overlaps are close,
// the largest overlap usually belongs to a neighbouring span that the box
// only grazes, so the runner-up is taken instead.
package links

import (
	"sort"

	"github.com/tsawler/pdfstruct/model"
)

// candidate is a span overlapping a link box.
type candidate struct {
	span int
	area float64
}

// Bind matches every link of doc to a span of its page and records the
// binding on both the link and the classification table. It returns the
// number of bound links. Links without any overlapping span stay unbound.
func Bind(doc *model.Document) int {
	byPage := doc.SpansByPage()
	bound := 0
	for i := range doc.Links {
		link := &doc.Links[i]
		id, ok := choose(overlaps(doc, link.BBox, byPage[link.Page]))
		if !ok {
			continue
		}
		link.Span = id
		link.Bound = true
		doc.Classes.BindLink(id, i)
		bound++
	}
	return bound
}

func overlaps(doc *model.Document, box model.Rect, ids []int) []candidate {
	var out []candidate
	for _, id := range ids {
		if area := doc.Spans[id].BBox.IntersectionArea(box); area > 0 {
			out = append(out, candidate{span: id, area: area})
		}
	}
	return out
}

// choose picks the span for one link from its overlapping candidates.
//
// A single candidate wins. Otherwise the best candidate wins when its
// area is more than twice the runner-up's; failing that, the first
// candidate with an area strictly below the best one wins.
func choose(cands []candidate) (int, bool) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].area > cands[j].area
	})
	if len(cands) == 0 {
		return 0, false
	}
	best := cands[0]
	if len(cands) == 1 || best.area/2 > cands[1].area {
		return best.span, true
	}
	for _, c := range cands[1:] {
		if c.area < best.area {
			return c.span, true
		}
	}
	return 0, false
}
