package pdfsource

import (
	"errors"
	"fmt"

	"github.com/tsawler/pdfstruct/model"
)

// ErrPageOutOfRange is returned when a page index is outside the document
var ErrPageOutOfRange = errors.New("page out of range")

// Source yields the raw primitives of a document, page by page.
// Pages are 0-based.
type Source interface {
	PageCount() int
	Page(i int) (model.PageContent, error)
	Outline() ([]model.OutlineEntry, error)
	PageImages(i int) ([][]byte, error)
	Close() error
}

// Memory is a Source over pages held in memory
type Memory struct {
	Pages     []model.PageContent
	Bookmarks []model.OutlineEntry
	Images    map[int][][]byte
}

// NewMemory returns a Memory source over pages. Page numbers are
// reassigned from the slice position.
func NewMemory(pages ...model.PageContent) *Memory {
	m := &Memory{Pages: make([]model.PageContent, len(pages))}
	for i, p := range pages {
		p.Number = i
		m.Pages[i] = p
	}
	return m
}

// PageCount returns the number of pages
func (m *Memory) PageCount() int {
	return len(m.Pages)
}

// Page returns page i
func (m *Memory) Page(i int) (model.PageContent, error) {
	if i < 0 || i >= len(m.Pages) {
		return model.PageContent{}, fmt.Errorf("page %d: %w", i, ErrPageOutOfRange)
	}
	return m.Pages[i], nil
}

// Outline returns the bookmarks
func (m *Memory) Outline() ([]model.OutlineEntry, error) {
	return m.Bookmarks, nil
}

// PageImages returns the images registered for page i
func (m *Memory) PageImages(i int) ([][]byte, error) {
	if i < 0 || i >= len(m.Pages) {
		return nil, fmt.Errorf("page %d: %w", i, ErrPageOutOfRange)
	}
	return m.Images[i], nil
}

// Close does nothing
func (m *Memory) Close() error {
	return nil
}
