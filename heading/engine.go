// Package heading infers the section hierarchy of a document and tags
// the blocks that carry section titles.
//
// Evidence comes in three tiers, tried in order:
//
//  1. The embedded outline (bookmarks) of the source document
//  2. A table of contents printed in the document, found by its dotted
//     leaders and page numbers
//  3. Font sizes: text set larger than the body is a heading
//
// The first two tiers only produce a list of titles. Each title is then
// looked up among the blocks near its destination page, and a tier is
// adopted only when enough of its titles are found. The font-size tier
// always succeeds.
//
//	engine := heading.NewEngine()
//	result := engine.Infer(doc, outline)
//	fmt.Println(result.Source, len(result.Titles))
package heading

import "github.com/tsawler/pdfstruct/model"

// Config holds the heuristic thresholds of heading inference
type Config struct {
	// Minimum fuzzy ratio (0-100) for a title to match a block
	MatchThreshold int

	// A tier needs at least this many titles...
	MinTierEntries int

	// ...and at least this share of them matched
	MinFoundRatio float64

	// Number of leading pages scanned for a printed table of contents
	TocScanPages int

	// Scanning stops after this many consecutive non-matching lines...
	TocMaxMisses int

	// ...once at least this many entries were found
	TocMinMatches int

	// Number of font sizes above the body size that become heading levels
	MaxHeadingSizes int

	// Blocks up to this many pages away from a title's page are candidates
	PageWindow int

	// Body text counts as bold when more than this share of body lines is bold
	BoldBodyRatio float64

	// Main title spans must be larger than body size times this factor
	TitleSizeFactor float64

	// Main titles longer than this many characters are truncated
	TitleMaxLen int
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		MatchThreshold:  75,
		MinTierEntries:  3,
		MinFoundRatio:   0.5,
		TocScanPages:    15,
		TocMaxMisses:    10,
		TocMinMatches:   3,
		MaxHeadingSizes: 5,
		PageWindow:      1,
		BoldBodyRatio:   0.3,
		TitleSizeFactor: 1.1,
		TitleMaxLen:     100,
	}
}

// Engine runs heading inference
type Engine struct {
	config Config
}

// NewEngine creates an engine with default configuration
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates an engine with custom configuration
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{config: config}
}

// Attempt records how one evidence tier fared.
type Attempt struct {
	Source   model.TocSource
	Entries  int
	Found    int
	Accepted bool
}

// Result is the outcome of heading inference.
type Result struct {
	// Titles of the adopted tier. Only titles with Found set were
	// attached to a block.
	Titles []model.TocTitle

	// Source is the adopted tier
	Source model.TocSource

	// MainTitle is the inferred document title, possibly empty
	MainTitle string

	// Attempts lists every tier that was tried, in order
	Attempts []Attempt
}

// Infer runs the tier escalation on doc, whose lines and blocks must
// already be built. outline is the embedded outline, possibly empty.
// Matched blocks receive their SectionTitle in place.
//
// The printed table of contents is always scanned so its lines are
// flagged IsTocElement, even when the outline wins.
func (e *Engine) Infer(doc *model.Document, outline []model.OutlineEntry) Result {
	result := Result{MainTitle: e.MainTitle(doc)}
	clearSectionTitles(doc)

	printed := e.DetectToc(doc.Lines)
	if len(printed) > 0 {
		AssignSchemaLevels(printed)
		if !allLeveled(printed) {
			AssignOffsetLevels(printed)
		}
	}

	tiers := []struct {
		source model.TocSource
		titles []model.TocTitle
	}{
		{model.SourceMetadata, FromOutline(outline)},
		{model.SourceRegex, printed},
	}
	for _, tier := range tiers {
		if len(tier.titles) == 0 {
			continue
		}
		matches := e.matchEntries(doc, tier.titles)
		attempt := Attempt{Source: tier.source, Entries: len(tier.titles), Found: len(matches)}
		attempt.Accepted = e.accepts(attempt)
		result.Attempts = append(result.Attempts, attempt)
		if !attempt.Accepted {
			continue
		}
		applyMatches(doc, tier.titles, matches)
		result.Titles = tier.titles
		result.Source = tier.source
		return result
	}

	result.Titles = e.FontSizeHeadings(doc)
	result.Source = model.SourceFontSize
	result.Attempts = append(result.Attempts, Attempt{
		Source:   model.SourceFontSize,
		Entries:  len(result.Titles),
		Found:    len(result.Titles),
		Accepted: true,
	})
	return result
}

// accepts applies the tier validation rule.
func (e *Engine) accepts(a Attempt) bool {
	if a.Entries < e.config.MinTierEntries {
		return false
	}
	return float64(a.Found) >= e.config.MinFoundRatio*float64(a.Entries)
}

func allLeveled(titles []model.TocTitle) bool {
	for _, t := range titles {
		if t.Level == 0 {
			return false
		}
	}
	return true
}

func clearSectionTitles(doc *model.Document) {
	for i := range doc.Blocks {
		doc.Blocks[i].SectionTitle = nil
	}
}
