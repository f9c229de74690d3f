package pdfstruct

import (
	"io"

	"github.com/tsawler/pdfstruct/export"
	"github.com/tsawler/pdfstruct/heading"
	"github.com/tsawler/pdfstruct/model"
)

// Result is the reconstructed structure of a document.
type Result struct {
	// Doc is the arena holding spans, lines, blocks and tables
	Doc *model.Document

	// Toc is the adopted table of contents, TocSource its tier
	Toc       []model.TocTitle
	TocSource model.TocSource

	// Attempts lists the heading tiers tried, empty when headings are off
	Attempts []heading.Attempt

	// MainTitle is the inferred document title, possibly empty
	MainTitle string

	// Warnings collects the non-fatal problems of the parse
	Warnings []Warning

	exporter *export.Exporter
}

// Markdown renders the whole document, prefixed by the main title.
func (r *Result) Markdown() string {
	return r.exporter.Markdown(r.Doc, r.MainTitle)
}

// PageMarkdown renders the document page by page. Keys are 1-based page
// numbers; key 0 holds the main title heading.
func (r *Result) PageMarkdown() map[int]string {
	return r.exporter.PageMarkdown(r.Doc, r.MainTitle)
}

// Lines returns the rendered blocks and tables with their line index and
// page, for chunking.
func (r *Result) Lines() []export.MarkdownLine {
	return r.exporter.Lines(r.Doc)
}

// WriteLines writes Lines to w as JSON Lines.
func (r *Result) WriteLines(w io.Writer) error {
	return r.exporter.WriteLines(r.Doc, w)
}

// WriteHTML renders the Markdown output as HTML to w.
func (r *Result) WriteHTML(w io.Writer) error {
	return r.exporter.WriteHTML(r.Doc, r.MainTitle, w)
}

// Tables returns the detected tables of the document in reading order.
func (r *Result) Tables() []model.Table {
	return r.Doc.Tables
}
