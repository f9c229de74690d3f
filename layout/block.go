package layout

import "github.com/tsawler/pdfstruct/model"

// BlockConfig holds configuration for block detection
type BlockConfig struct {
	// LineSpacing is the body line spacing. A gap between two line boxes
	// larger than this starts a new block. Zero means infer it from the
	// document with InferLineSpacing.
	// Default: 0
	LineSpacing float64

	// SpacingMargin is added to the inferred line spacing.
	// Default: 0.2 points
	SpacingMargin float64
}

// DefaultBlockConfig returns sensible default configuration
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		LineSpacing:   0,
		SpacingMargin: 0.2,
	}
}

// BlockDetector groups consecutive lines into blocks.
type BlockDetector struct {
	config BlockConfig
}

// NewBlockDetector creates a block detector with default configuration
func NewBlockDetector() *BlockDetector {
	return &BlockDetector{config: DefaultBlockConfig()}
}

// NewBlockDetectorWithConfig creates a block detector with custom configuration
func NewBlockDetectorWithConfig(config BlockConfig) *BlockDetector {
	return &BlockDetector{config: config}
}

// Spacing returns the line spacing the detector uses for lines.
func (d *BlockDetector) Spacing(lines []model.Line) float64 {
	if d.config.LineSpacing > 0 {
		return d.config.LineSpacing
	}
	return InferLineSpacing(lines, d.config.SpacingMargin)
}

// Detect groups lines into blocks using the given body line spacing.
// A new block starts when:
//   - the previous line is empty
//   - the page changes
//   - the dominant font size changes
//   - the gap to the previous line exceeds spacing
//   - the line's bottom is above the previous line's top (column break)
func (d *BlockDetector) Detect(lines []model.Line, spacing float64) []model.Block {
	if len(lines) == 0 {
		return nil
	}

	var blocks []model.Block
	buffer := []int{0}
	for i := 1; i < len(lines); i++ {
		prev := lines[buffer[len(buffer)-1]]
		if breaksBlock(prev, lines[i], spacing) {
			blocks = append(blocks, model.NewBlock(lines, buffer))
			buffer = []int{i}
			continue
		}
		buffer = append(buffer, i)
	}
	blocks = append(blocks, model.NewBlock(lines, buffer))

	return blocks
}

func breaksBlock(prev, line model.Line, spacing float64) bool {
	switch {
	case prev.IsEmpty():
		return true
	case prev.Page != line.Page:
		return true
	case prev.Size != line.Size:
		return true
	case line.BBox.Y0-spacing > prev.BBox.Y1:
		return true
	case line.BBox.Y1 <= prev.BBox.Y0:
		return true
	}
	return false
}
