// Package pdfstruct provides a fluent API for reconstructing the logical
// structure of PDF files: lines, blocks, tables, section headings and a
// Markdown rendering of the whole.
//
// Basic usage:
//
//	res, err := pdfstruct.Open("document.pdf").Parse(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(res.Warnings) > 0 {
//	    log.Println("Warnings:", pdfstruct.FormatWarnings(res.Warnings))
//	}
//	fmt.Println(res.Markdown())
//
// With options:
//
//	res, err := pdfstruct.Open("report.pdf").
//	    PageRange(0, 10).
//	    Tables(true).
//	    OCR(ocr.Auto).
//	    Parse(ctx)
//
// For documents decoded by other means, build a pdfsource.Memory and use
// FromSource.
package pdfstruct

import (
	"github.com/tsawler/pdfstruct/pdfsource"
)

// Open returns a Parser for the PDF file at filename. The file is opened
// lazily by Parse and closed again when Parse returns.
//
// Example:
//
//	res, err := pdfstruct.Open("document.pdf").Parse(ctx)
func Open(filename string) *Parser {
	return &Parser{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates a Parser reading from an already-opened source.
// The caller is responsible for closing the source.
//
// Example:
//
//	src := pdfsource.NewMemory(pages...)
//	res, err := pdfstruct.FromSource(src).Tables(false).Parse(ctx)
func FromSource(src pdfsource.Source) *Parser {
	return &Parser{
		source:  src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := pdfstruct.Must(pdfstruct.Open("document.pdf").Parse(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
