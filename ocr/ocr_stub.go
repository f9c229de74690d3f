//go:build !ocr

// Package ocr recognizes text in scanned page images and returns it as
// spans in page coordinates.
//
// Without the "ocr" build tag every Client method fails with
// ErrOCRNotEnabled. Recognition needs Tesseract and a tagged build:
//
//	go build -tags ocr
package ocr

import "github.com/tsawler/pdfstruct/model"

// Client stands in for the Tesseract client in untagged builds.
type Client struct{}

// New always fails with ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close does nothing, also on a nil client.
func (c *Client) Close() error {
	return nil
}

func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

func (c *Client) RecognizeBoxes(imageData []byte) ([]Box, error) {
	return nil, ErrOCRNotEnabled
}

func (c *Client) RecognizeSpans(imageData []byte, page model.Rect) ([]model.Span, error) {
	return nil, ErrOCRNotEnabled
}

func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
