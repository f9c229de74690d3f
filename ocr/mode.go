package ocr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// DefaultLanguage is the Tesseract language set used when none is given
const DefaultLanguage = "fra+eng"

// Mode selects when pages are recognized instead of read from the text layer
type Mode int

const (
	// Never reads the text layer only
	Never Mode = iota
	// Auto recognizes a page only when it has no text and carries images
	Auto
	// Always recognizes every page that carries images
	Always
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case Never:
		return "never"
	case Auto:
		return "auto"
	case Always:
		return "always"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name as printed by String
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "never", "off", "":
		return Never, nil
	case "auto":
		return Auto, nil
	case "always", "on":
		return Always, nil
	default:
		return Never, fmt.Errorf("unknown OCR mode %q", s)
	}
}

// ShouldRecognize reports whether a page is recognized under mode m.
func (m Mode) ShouldRecognize(hasText, hasImages bool) bool {
	switch m {
	case Auto:
		return !hasText && hasImages
	case Always:
		return hasImages
	default:
		return false
	}
}

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes, numbered as in Tesseract.
const (
	PSM_AUTO_OSD      PageSegMode = 1  // Automatic with OSD
	PSM_AUTO          PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK  PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE   PageSegMode = 7  // Single text line
	PSM_SPARSE_TEXT   PageSegMode = 11 // Find as much text as possible
)
