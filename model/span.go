package model

import (
	"strings"
	"unicode/utf8"
)

// SpanFlags is the style bitmask carried by a span.
type SpanFlags int

// Style bits, matching the bit layout of common PDF text extractors.
const (
	FlagSuperscript SpanFlags = 1 << iota
	FlagItalic
	FlagSerif
	FlagMonospace
	FlagBold
)

// IsSuperscript reports whether the superscript bit is set
func (f SpanFlags) IsSuperscript() bool { return f&FlagSuperscript != 0 }

// IsItalic reports whether the italic bit is set
func (f SpanFlags) IsItalic() bool { return f&FlagItalic != 0 }

// IsSerif reports whether the serif bit is set
func (f SpanFlags) IsSerif() bool { return f&FlagSerif != 0 }

// IsMonospace reports whether the monospace bit is set
func (f SpanFlags) IsMonospace() bool { return f&FlagMonospace != 0 }

// IsBold reports whether the bold bit is set
func (f SpanFlags) IsBold() bool { return f&FlagBold != 0 }

// String returns the set flags joined with "|", or "none".
func (f SpanFlags) String() string {
	var parts []string
	names := []struct {
		flag SpanFlags
		name string
	}{
		{FlagSuperscript, "superscript"},
		{FlagItalic, "italic"},
		{FlagSerif, "serif"},
		{FlagMonospace, "monospace"},
		{FlagBold, "bold"},
	}
	for _, n := range names {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Span is a positioned run of same-styled text.
//
// ID is the span's index in Document.Spans. Order is its position in the
// document-wide reading order; spans split across table cells share the
// Order of the span they came from but get a fresh ID.
type Span struct {
	ID     int
	Order  int
	Page   int // 0-based
	Text   string
	BBox   Rect
	Origin Point // baseline origin
	Font   string
	Size   float64
	Color  uint32
	Flags  SpanFlags
	Dir    Point // writing direction, (1, 0) for horizontal text
}

// IsEmpty reports whether the span carries only whitespace.
func (s Span) IsEmpty() bool {
	return strings.TrimSpace(s.Text) == ""
}

// IsHorizontal reports whether the span is written left to right.
// A zero direction is treated as horizontal.
func (s Span) IsHorizontal() bool {
	return (s.Dir == Point{}) || (s.Dir == Point{X: 1, Y: 0})
}

// CharCount returns the number of runes in the text
func (s Span) CharCount() int {
	return utf8.RuneCountInString(s.Text)
}

// LineHeight returns the height of the span's box
func (s Span) LineHeight() float64 {
	return s.BBox.Height()
}

var invalidChars = strings.NewReplacer(
	"\u00a0", " ",
	"\uf0a7", "",
	"\uf0b7", "- ",
	"\u2013", "- ",
	"\u2022", "- ",
	"\u25cf", "- ",
	"\u25ba", "- ",
	"\uf0d8", "- ",
	"\uf07d", "- ",
)

// NormalizeText replaces non-breaking spaces and private-use or typographic
// bullet glyphs with plain Markdown equivalents.
func NormalizeText(text string) string {
	return invalidChars.Replace(text)
}
