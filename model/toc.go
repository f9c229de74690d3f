package model

// TocSource identifies which evidence produced a heading hierarchy.
type TocSource int

const (
	SourceMetadata TocSource = iota
	SourceRegex
	SourceFontSize
)

// String returns the source tag
func (s TocSource) String() string {
	switch s {
	case SourceMetadata:
		return "metadata"
	case SourceRegex:
		return "regex"
	case SourceFontSize:
		return "fontsize"
	default:
		return "unknown"
	}
}

// TocTitle is one entry of an inferred table of contents.
type TocTitle struct {
	Text  string
	Level int // 1-based; 0 until resolved
	Page  int // declared destination page, 0-based

	// SourcePage and XOffset are only set for entries found by pattern
	// matching on a table-of-contents page.
	SourcePage int
	XOffset    float64

	Source TocSource
	Found  bool
}
