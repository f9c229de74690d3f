package export

import (
	"fmt"
	"strings"
)

// TableFormat selects how tables are rendered in the exported flow
type TableFormat int

const (
	// FormatMarkdown renders a pipe table with the first row as header
	FormatMarkdown TableFormat = iota
	// FormatJSONLines renders one JSON object per data row, keyed by header cell
	FormatJSONLines
	// FormatCSV renders comma-separated rows, header first
	FormatCSV
)

// String returns the format name
func (f TableFormat) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatJSONLines:
		return "jsonl"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// ParseTableFormat parses a format name as printed by String
func ParseTableFormat(s string) (TableFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md", "":
		return FormatMarkdown, nil
	case "jsonl", "json-lines", "json":
		return FormatJSONLines, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatMarkdown, fmt.Errorf("unknown table format %q", s)
	}
}
