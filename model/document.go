package model

import "strings"

// Orientation of a page or block
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// String returns the orientation name
func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// PageInfo describes one page of the parsed range.
type PageInfo struct {
	Number   int // 0-based index in the source document
	Rect     Rect
	Drawings []Drawing
}

// Orientation derives the page orientation from its rectangle
func (p PageInfo) Orientation() Orientation {
	if p.Rect.Height() > p.Rect.Width() {
		return Portrait
	}
	return Landscape
}

// Document is the per-parse arena. Every structural element refers to
// others by index into these slices.
type Document struct {
	PageCount int // pages in the source document, not only the parsed range
	Pages     []PageInfo
	Spans     []Span
	Lines     []Line
	Blocks    []Block
	Tables    []Table
	Links     []Link
	Classes   *Classification
}

// NewDocument freezes extracted page content into an arena. Spans receive
// IDs and a reading order following page order then extraction order, and
// their text is normalized.
func NewDocument(pageCount int, pages []PageContent) *Document {
	doc := &Document{
		PageCount: pageCount,
		Classes:   NewClassification(),
	}
	for _, p := range pages {
		doc.Pages = append(doc.Pages, PageInfo{Number: p.Number, Rect: p.Rect, Drawings: p.Drawings})
		for _, s := range p.Spans {
			s.ID = len(doc.Spans)
			s.Order = s.ID
			s.Page = p.Number
			s.Text = NormalizeText(s.Text)
			doc.Spans = append(doc.Spans, s)
		}
		for _, l := range p.Links {
			l.Page = p.Number
			doc.Links = append(doc.Links, l)
		}
	}
	return doc
}

// AddSpan appends a derived span to the arena, giving it a fresh ID while
// keeping its Order. It returns the new ID.
func (d *Document) AddSpan(s Span) int {
	s.ID = len(d.Spans)
	d.Spans = append(d.Spans, s)
	return s.ID
}

// Page returns the info for page number n and whether it is in range.
func (d *Document) Page(n int) (PageInfo, bool) {
	for _, p := range d.Pages {
		if p.Number == n {
			return p, true
		}
	}
	return PageInfo{}, false
}

// Orientation returns the orientation of the first parsed page.
func (d *Document) Orientation() Orientation {
	if len(d.Pages) == 0 {
		return Portrait
	}
	return d.Pages[0].Orientation()
}

// SpansByPage groups span IDs by page, preserving arena order. Derived
// spans created by the table binder are skipped.
func (d *Document) SpansByPage() map[int][]int {
	out := make(map[int][]int)
	for _, s := range d.Spans {
		if s.ID != s.Order {
			continue
		}
		out[s.Page] = append(out[s.Page], s.ID)
	}
	return out
}

// Line is an ordered group of spans sharing a baseline. Derived values are
// computed once by NewLine.
type Line struct {
	Spans  []int // span IDs
	Page   int
	Order  int
	BBox   Rect
	Origin Point
	Size   float64
	Height float64
	Text   string

	// IsTocElement is set when the line matched a table-of-contents pattern.
	IsTocElement bool

	empty        bool
	bold         bool
	headerFooter bool
	horizontal   bool
}

// NewLine derives a line from spans in the arena. ids must not be empty.
func NewLine(arena []Span, ids []int, classes *Classification) Line {
	first := arena[ids[0]]
	l := Line{
		Spans:      append([]int(nil), ids...),
		Page:       first.Page,
		Order:      first.Order,
		BBox:       first.BBox,
		Origin:     first.Origin,
		horizontal: first.IsHorizontal(),
		empty:      true,
	}

	var sb strings.Builder
	sizes := newTally()
	heights := newTally()
	var chars, boldChars, hfChars int
	for _, id := range ids {
		s := arena[id]
		sb.WriteString(s.Text)
		l.BBox = l.BBox.Union(s.BBox)
		if s.Order < l.Order {
			l.Order = s.Order
		}
		if s.Origin.X < l.Origin.X {
			l.Origin.X = s.Origin.X
		}
		if s.Origin.Y > l.Origin.Y {
			l.Origin.Y = s.Origin.Y
		}
		if !s.IsEmpty() {
			l.empty = false
		}
		n := s.CharCount()
		sizes.add(s.Size, n)
		heights.add(s.LineHeight(), n)
		chars += n
		if s.Flags.IsBold() {
			boldChars += n
		}
		if classes != nil && classes.Of(id).HeaderFooter {
			hfChars += n
		}
	}
	l.Text = sb.String()
	l.Size = sizes.best()
	l.Height = heights.best()
	l.bold = chars > 0 && boldChars*2 > chars
	l.headerFooter = chars > 0 && hfChars*2 > chars
	return l
}

// IsEmpty reports whether every span in the line is whitespace
func (l Line) IsEmpty() bool { return l.empty }

// IsBullet reports whether the line starts with a normalized bullet marker
func (l Line) IsBullet() bool { return strings.HasPrefix(l.Text, "- ") }

// IsBold reports whether most characters of the line are bold
func (l Line) IsBold() bool { return l.bold }

// IsHeaderFooter reports whether most characters are page furniture
func (l Line) IsHeaderFooter() bool { return l.headerFooter }

// IsHorizontal reports whether the line is written left to right
func (l Line) IsHorizontal() bool { return l.horizontal }

// SectionTitle is the heading annotation attached to a block.
type SectionTitle struct {
	Text   string
	Level  int
	Source TocSource
}

// Block is an ordered group of lines with no extra spacing between them.
type Block struct {
	Lines []int // indices into Document.Lines
	Page  int
	Order int
	BBox  Rect
	Size  float64
	Text  string

	// SectionTitle is set by heading inference.
	SectionTitle *SectionTitle

	empty        bool
	headerFooter bool
	horizontal   bool
	bold         bool
}

// NewBlock derives a block from lines in the arena. idx must not be empty.
func NewBlock(lines []Line, idx []int) Block {
	first := lines[idx[0]]
	b := Block{
		Lines:        append([]int(nil), idx...),
		Page:         first.Page,
		Order:        first.Order,
		BBox:         first.BBox,
		empty:        true,
		headerFooter: true,
		horizontal:   first.IsHorizontal(),
	}
	var sb strings.Builder
	sizes := newTally()
	var chars, boldChars int
	for _, i := range idx {
		l := lines[i]
		sb.WriteString(l.Text)
		b.BBox = b.BBox.Union(l.BBox)
		if l.Order < b.Order {
			b.Order = l.Order
		}
		if !l.IsEmpty() {
			b.empty = false
		}
		if !l.IsHeaderFooter() {
			b.headerFooter = false
		}
		n := len([]rune(l.Text))
		sizes.add(l.Size, n)
		chars += n
		if l.IsBold() {
			boldChars += n
		}
	}
	b.Text = sb.String()
	b.Size = sizes.best()
	b.bold = chars > 0 && boldChars*2 > chars
	return b
}

// IsEmpty reports whether every line in the block is empty
func (b Block) IsEmpty() bool { return b.empty }

// IsHeaderFooter reports whether every line in the block is page furniture
func (b Block) IsHeaderFooter() bool { return b.headerFooter }

// IsHorizontal reports whether the block's text runs left to right
func (b Block) IsHorizontal() bool { return b.horizontal }

// IsBold reports whether most of the block's characters are bold
func (b Block) IsBold() bool { return b.bold }

// tally picks the value carrying the most weight. Ties go to the value
// seen first.
type tally struct {
	keys    []float64
	weights map[float64]int
}

func newTally() *tally {
	return &tally{weights: make(map[float64]int)}
}

func (t *tally) add(v float64, w int) {
	if _, ok := t.weights[v]; !ok {
		t.keys = append(t.keys, v)
	}
	t.weights[v] += w
}

func (t *tally) best() float64 {
	var out float64
	bestW := -1
	for _, k := range t.keys {
		if t.weights[k] > bestW {
			out, bestW = k, t.weights[k]
		}
	}
	return out
}
