package pdfstruct

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem met during a parse. The parse
// carries on and the affected element is skipped or degraded.
type Warning struct {
	Page    int // 0-based, -1 when not tied to a page
	Message string
	Err     error
}

// String formats the warning on one line.
func (w Warning) String() string {
	var b strings.Builder
	if w.Page >= 0 {
		fmt.Fprintf(&b, "page %d: ", w.Page)
	}
	b.WriteString(w.Message)
	if w.Err != nil {
		b.WriteString(": ")
		b.WriteString(w.Err.Error())
	}
	return b.String()
}

// FormatWarnings joins warnings into a human readable list, one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = "- " + w.String()
	}
	return strings.Join(lines, "\n")
}
