package model

// Link is a URI attached to an invisible clickable region of a page.
type Link struct {
	URI  string
	BBox Rect
	Page int

	// Span is the ID of the bound span when Bound is true.
	Span  int
	Bound bool
}
