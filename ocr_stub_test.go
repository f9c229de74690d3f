//go:build !ocr

package pdfstruct

import (
	"context"
	"errors"
	"testing"

	"github.com/tsawler/pdfstruct/ocr"
	"github.com/tsawler/pdfstruct/pdfsource"
)

func TestParseOCRUnavailable(t *testing.T) {
	src := pdfsource.NewMemory(textPage("Text layer present"))
	res, err := FromSource(src).OCR(ocr.Always).Parse(context.Background())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(res.Warnings) == 0 || !errors.Is(res.Warnings[0].Err, ocr.ErrOCRNotEnabled) {
		t.Fatalf("Warnings = %v, want ErrOCRNotEnabled", res.Warnings)
	}
	if len(res.Doc.Spans) != 1 {
		t.Errorf("spans = %d, want the text layer kept", len(res.Doc.Spans))
	}
}
