package layout

import "github.com/tsawler/pdfstruct/model"

// HeaderFooterConfig holds configuration for header/footer detection
type HeaderFooterConfig struct {
	// MinPages is the page count the document must exceed before detection
	// runs at all. Short documents do not repeat enough to be reliable.
	// Default: 2
	MinPages int

	// OccurrenceRatio is the fraction of the document's page count a bounding
	// box must recur more often than to be considered page furniture.
	// Default: 1/3
	OccurrenceRatio float64
}

// DefaultHeaderFooterConfig returns sensible default configuration
func DefaultHeaderFooterConfig() HeaderFooterConfig {
	return HeaderFooterConfig{
		MinPages:        2,
		OccurrenceRatio: 1.0 / 3.0,
	}
}

// HeaderFooterDetector flags spans that repeat at the exact same position
// on many pages.
type HeaderFooterDetector struct {
	config HeaderFooterConfig
}

// NewHeaderFooterDetector creates a detector with default configuration
func NewHeaderFooterDetector() *HeaderFooterDetector {
	return &HeaderFooterDetector{config: DefaultHeaderFooterConfig()}
}

// NewHeaderFooterDetectorWithConfig creates a detector with custom configuration
func NewHeaderFooterDetectorWithConfig(config HeaderFooterConfig) *HeaderFooterDetector {
	return &HeaderFooterDetector{config: config}
}

// Detect marks header/footer spans in doc.Classes and returns how many
// spans were marked.
func (d *HeaderFooterDetector) Detect(doc *model.Document) int {
	if doc.PageCount <= d.config.MinPages {
		return 0
	}

	counts := make(map[model.Rect]int)
	for _, s := range doc.Spans {
		counts[s.BBox]++
	}

	threshold := float64(doc.PageCount) * d.config.OccurrenceRatio
	marked := 0
	for _, s := range doc.Spans {
		if float64(counts[s.BBox]) > threshold {
			doc.Classes.MarkHeaderFooter(s.ID)
			marked++
		}
	}
	return marked
}
