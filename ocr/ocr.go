//go:build ocr

// Package ocr recognizes text in scanned page images and returns it as
// spans in page coordinates.
//
// Recognition runs Tesseract through gosseract, so the library and its
// language data must be installed (brew install tesseract, or apt-get
// install tesseract-ocr).
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/pdfstruct/model"
)

// Client holds one Tesseract session. It is not safe for concurrent use.
type Client struct {
	client *gosseract.Client
}

// New starts a session for DefaultLanguage. Close releases it.
func New() (*Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(strings.Split(DefaultLanguage, "+")...); err != nil {
		client.Close()
		return nil, fmt.Errorf("set language %q: %w", DefaultLanguage, err)
	}
	return &Client{client: client}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeImage returns the trimmed text of an encoded image.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("load image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// RecognizeBoxes returns one box per recognized text line, in pixels.
func (c *Client) RecognizeBoxes(imageData []byte) ([]Box, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	found, err := c.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("recognize: %w", err)
	}

	boxes := make([]Box, 0, len(found))
	for _, b := range found {
		boxes = append(boxes, Box{Text: b.Word, Rect: b.Box, Confidence: b.Confidence})
	}
	return boxes, nil
}

// RecognizeSpans recognizes a full-page scan and maps its text lines onto
// the page rectangle.
func (c *Client) RecognizeSpans(imageData []byte, page model.Rect) ([]model.Span, error) {
	width, height, err := ImageSize(imageData)
	if err != nil {
		return nil, err
	}
	boxes, err := c.RecognizeBoxes(imageData)
	if err != nil {
		return nil, err
	}
	return SpansFromBoxes(boxes, width, height, page), nil
}

// SetLanguage takes "+" separated Tesseract languages, as in "eng+fra".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
