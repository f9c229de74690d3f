package layout

import (
	"math"

	"github.com/tsawler/pdfstruct/model"
)

// LineConfig holds configuration for line detection
type LineConfig struct {
	// OriginTolerance is the maximum difference between baseline origins for
	// two consecutive spans to share a line.
	// Default: 3 points
	OriginTolerance float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		OriginTolerance: 3.0,
	}
}

// LineDetector groups consecutive spans into lines.
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a line detector with default configuration
func NewLineDetector() *LineDetector {
	return &LineDetector{config: DefaultLineConfig()}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{config: config}
}

// Detect builds lines from the spans of doc in reading order. Spans
// classified as header/footer or in-table are skipped, as are the derived
// spans the table binder adds. A span continues the current line when it
// is on the same page and either its baseline matches the previous span's
// within tolerance or it is superscript.
func (d *LineDetector) Detect(doc *model.Document) []model.Line {
	var lines []model.Line
	var buffer []int
	flush := func() {
		if len(buffer) > 0 {
			lines = append(lines, model.NewLine(doc.Spans, buffer, doc.Classes))
			buffer = nil
		}
	}

	for _, s := range doc.Spans {
		if s.ID != s.Order || doc.Classes.Excluded(s.ID) {
			continue
		}
		if len(buffer) == 0 {
			buffer = append(buffer, s.ID)
			continue
		}
		prev := doc.Spans[buffer[len(buffer)-1]]
		if s.Page == prev.Page && (d.sameBaseline(prev, s) || s.Flags.IsSuperscript()) {
			buffer = append(buffer, s.ID)
			continue
		}
		flush()
		buffer = append(buffer, s.ID)
	}
	flush()

	return lines
}

func (d *LineDetector) sameBaseline(a, b model.Span) bool {
	return math.Abs(a.Origin.Y-b.Origin.Y) <= d.config.OriginTolerance
}

// InferLineSpacing returns the document's body line spacing: the most
// frequent gap between consecutive lines on the same page, rounded to one
// decimal, plus margin. It returns margin when there are fewer than two
// lines on any page.
func InferLineSpacing(lines []model.Line, margin float64) float64 {
	counts := make(map[float64]int)
	var order []float64
	for i := 1; i < len(lines); i++ {
		prev, cur := lines[i-1], lines[i]
		if prev.Page != cur.Page {
			continue
		}
		gap := math.Round((cur.BBox.Y0-prev.BBox.Y1)*10) / 10
		if _, ok := counts[gap]; !ok {
			order = append(order, gap)
		}
		counts[gap]++
	}

	var best float64
	bestCount := 0
	for _, g := range order {
		if counts[g] > bestCount {
			best, bestCount = g, counts[g]
		}
	}
	return best + margin
}
