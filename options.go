package pdfstruct

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tsawler/pdfstruct/export"
	"github.com/tsawler/pdfstruct/ocr"
	"github.com/tsawler/pdfstruct/tables"
)

// allPages marks an open page range end
const allPages = -1

// ParseOptions holds configuration for a parse.
type ParseOptions struct {
	// Page range, 0-based and half open. end is allPages for no limit.
	start, end int

	// Pipeline stages
	tables   bool
	headings bool
	detector string // registered table detector

	// OCR
	ocrMode     ocr.Mode
	ocrLanguage string

	// Body line spacing override, 0 infers it
	lineSpacing float64

	// Pages whose tables are detected concurrently
	workers int

	tableFormat export.TableFormat

	logger     *zap.Logger
	registerer prometheus.Registerer
}

// defaultOptions returns the default parse options.
func defaultOptions() ParseOptions {
	return ParseOptions{
		start:       0,
		end:         allPages,
		tables:      true,
		headings:    true,
		detector:    tables.DefaultDetector,
		ocrMode:     ocr.Never,
		ocrLanguage: ocr.DefaultLanguage,
		lineSpacing: 0,
		workers:     1,
		tableFormat: export.FormatMarkdown,
		logger:      zap.NewNop(),
	}
}

// clone creates a copy of ParseOptions. Logger and registerer are shared.
func (o ParseOptions) clone() ParseOptions {
	return o
}

// pageRange resolves the configured range against the page count of the
// source. The end is clamped; an empty or negative range is ErrPageRange.
func (o ParseOptions) pageRange(pageCount int) (int, int, error) {
	end := o.end
	if end == allPages || end > pageCount {
		end = pageCount
	}
	if o.start < 0 || o.start >= end {
		return 0, 0, ErrPageRange
	}
	return o.start, end, nil
}
