package model

// PageContent is what an extraction adapter produces for one page. Span
// IDs and orders are assigned later by NewDocument.
type PageContent struct {
	Number   int // 0-based
	Rect     Rect
	Spans    []Span
	Drawings []Drawing
	Links    []Link
}

// HasText reports whether any span carries non-whitespace text.
func (p PageContent) HasText() bool {
	for _, s := range p.Spans {
		if !s.IsEmpty() {
			return true
		}
	}
	return false
}

// OutlineEntry is one bookmark of the document's embedded outline.
type OutlineEntry struct {
	Title string
	Level int // 1-based depth
	Page  int // 0-based destination page
}
