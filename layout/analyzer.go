package layout

import "github.com/tsawler/pdfstruct/model"

// AnalyzerConfig holds configuration for the full reconstruction
type AnalyzerConfig struct {
	HeaderFooter HeaderFooterConfig
	Line         LineConfig
	Block        BlockConfig
}

// DefaultAnalyzerConfig returns sensible default configuration
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		HeaderFooter: DefaultHeaderFooterConfig(),
		Line:         DefaultLineConfig(),
		Block:        DefaultBlockConfig(),
	}
}

// Analyzer orchestrates header/footer, line and block detection.
type Analyzer struct {
	config       AnalyzerConfig
	headerFooter *HeaderFooterDetector
	lines        *LineDetector
	blocks       *BlockDetector
}

// Result holds the outcome of line and block reconstruction.
type Result struct {
	Lines   []model.Line
	Blocks  []model.Block
	Spacing float64 // body line spacing used for block breaks
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultAnalyzerConfig())
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config AnalyzerConfig) *Analyzer {
	return &Analyzer{
		config:       config,
		headerFooter: NewHeaderFooterDetectorWithConfig(config.HeaderFooter),
		lines:        NewLineDetectorWithConfig(config.Line),
		blocks:       NewBlockDetectorWithConfig(config.Block),
	}
}

// DetectHeaderFooter runs the statistics pass that flags repeating page
// furniture. It must run before Analyze.
func (a *Analyzer) DetectHeaderFooter(doc *model.Document) int {
	return a.headerFooter.Detect(doc)
}

// Analyze builds lines and blocks for doc and stores them in the arena.
// Spans must already be classified; header/footer and in-table spans are
// left out. Running Analyze twice yields the same partition.
func (a *Analyzer) Analyze(doc *model.Document) Result {
	lines := a.lines.Detect(doc)
	spacing := a.blocks.Spacing(lines)
	blocks := a.blocks.Detect(lines, spacing)

	doc.Lines = lines
	doc.Blocks = blocks

	return Result{Lines: lines, Blocks: blocks, Spacing: spacing}
}
