package pdfstruct

import "errors"

var (
	// ErrNoPages is returned when the source has no pages.
	ErrNoPages = errors.New("pdfstruct: document has no pages")

	// ErrNoText is returned when no usable text remains once page
	// furniture is removed. Retrying with OCR may help.
	ErrNoText = errors.New("pdfstruct: document has no text")

	// ErrPageRange is returned for an empty or negative page range.
	ErrPageRange = errors.New("pdfstruct: invalid page range")
)
