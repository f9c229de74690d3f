package model

// SpanClass holds the flags a pipeline stage attached to one span.
type SpanClass struct {
	HeaderFooter bool
	InTable      bool
	HasLink      bool
	Link         int // index into Document.Links when HasLink
}

// Classification is the side table of per-span flags, keyed by span ID.
// The zero value is not usable; call NewClassification.
type Classification struct {
	classes map[int]SpanClass
}

// NewClassification returns an empty classification table
func NewClassification() *Classification {
	return &Classification{classes: make(map[int]SpanClass)}
}

// Of returns the flags recorded for span id.
func (c *Classification) Of(id int) SpanClass {
	return c.classes[id]
}

// MarkHeaderFooter flags span id as repeating page furniture
func (c *Classification) MarkHeaderFooter(id int) {
	cl := c.classes[id]
	cl.HeaderFooter = true
	c.classes[id] = cl
}

// MarkInTable flags span id as covered by a table
func (c *Classification) MarkInTable(id int) {
	cl := c.classes[id]
	cl.InTable = true
	c.classes[id] = cl
}

// BindLink records that span id is the anchor of link.
func (c *Classification) BindLink(id, link int) {
	cl := c.classes[id]
	cl.HasLink = true
	cl.Link = link
	c.classes[id] = cl
}

// Excluded reports whether span id is kept out of line building.
func (c *Classification) Excluded(id int) bool {
	cl := c.classes[id]
	return cl.HeaderFooter || cl.InTable
}

// Clone returns an independent copy of the table
func (c *Classification) Clone() *Classification {
	out := NewClassification()
	for k, v := range c.classes {
		out.classes[k] = v
	}
	return out
}
