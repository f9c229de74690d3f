// Package export renders a reconstructed document as Markdown.
//
// Blocks and tables are emitted in reading order. Blocks tagged with a
// section title become Markdown headings one level below the document
// title; links, bold, italic and superscript spans keep their styling.
//
//	exporter := export.NewExporter()
//	md := exporter.Markdown(doc, mainTitle)
//
// The exporter also produces a per-page partition and the line items
// consumed by downstream chunkers.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/tsawler/pdfstruct/model"
)

// Config holds configuration options for export
type Config struct {
	// TableFormat selects how tables are rendered
	TableFormat TableFormat
}

// DefaultConfig returns sensible defaults for export configuration
func DefaultConfig() Config {
	return Config{TableFormat: FormatMarkdown}
}

// Exporter renders documents
type Exporter struct {
	config Config
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return NewExporterWithConfig(DefaultConfig())
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config Config) *Exporter {
	return &Exporter{config: config}
}

// MarkdownLine is one exported item in the shape chunkers consume.
type MarkdownLine struct {
	Text    string `json:"text"`
	LineIdx int    `json:"line_idx"` // index of the item's first text line in the flow
	Page    int    `json:"page"`     // 0-based
}

var (
	emptyBold   = regexp.MustCompile(`\*\* *\*\*`)
	extraBreaks = regexp.MustCompile(`\n{3,}`)
)

// cleanup merges adjacent bold runs, breaks after dangling bold
// markers and collapses blank lines.
func cleanup(md string) string {
	md = emptyBold.ReplaceAllString(md, " ")
	md = strings.ReplaceAll(md, " ** ", "**\n")
	md = extraBreaks.ReplaceAllString(md, "\n\n")
	return strings.TrimSpace(md)
}

// item is a block or a table in reading order.
type item struct {
	order int
	page  int
	block int // index into doc.Blocks, or -1
	table int // index into doc.Tables, or -1
}

func items(doc *model.Document) []item {
	out := make([]item, 0, len(doc.Blocks)+len(doc.Tables))
	for i, b := range doc.Blocks {
		if b.IsHeaderFooter() {
			continue
		}
		out = append(out, item{order: b.Order, page: b.Page, block: i, table: -1})
	}
	for i, t := range doc.Tables {
		out = append(out, item{order: t.Order, page: t.Page, block: -1, table: i})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].order < out[j].order
	})
	return out
}

func (e *Exporter) render(doc *model.Document, it item) string {
	if it.table >= 0 {
		return e.renderTable(doc, doc.Tables[it.table])
	}
	return blockMarkdown(doc, doc.Blocks[it.block])
}

// pages renders the cleaned Markdown of every page that has content.
func (e *Exporter) pages(doc *model.Document) map[int]string {
	raw := make(map[int]*strings.Builder)
	for _, it := range items(doc) {
		sb, ok := raw[it.page]
		if !ok {
			sb = &strings.Builder{}
			raw[it.page] = sb
		}
		sb.WriteString("\n\n")
		sb.WriteString(e.render(doc, it))
	}
	out := make(map[int]string, len(raw))
	for page, sb := range raw {
		out[page] = cleanup(sb.String())
	}
	return out
}

// Markdown renders the whole document. A non-empty title becomes the
// level 1 heading.
func (e *Exporter) Markdown(doc *model.Document, title string) string {
	pages := e.pages(doc)
	numbers := make([]int, 0, len(pages))
	for n := range pages {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, pages[n])
	}

	prefix := ""
	if title != "" {
		prefix = "# " + title + "\n\n"
	}
	return prefix + strings.Join(parts, "\n\n")
}

// PageMarkdown renders each page separately. Keys are 1-based page
// numbers; key 0 holds the title heading when title is not empty.
func (e *Exporter) PageMarkdown(doc *model.Document, title string) map[int]string {
	out := make(map[int]string)
	for page, md := range e.pages(doc) {
		out[page+1] = md
	}
	if title != "" {
		out[0] = "# " + title
	}
	return out
}

// Lines returns one MarkdownLine per block or table, in reading order.
func (e *Exporter) Lines(doc *model.Document) []MarkdownLine {
	var out []MarkdownLine
	idx := 0
	for _, it := range items(doc) {
		text := "\n\n" + cleanup(e.render(doc, it)) + "\n\n"
		out = append(out, MarkdownLine{Text: text, LineIdx: idx, Page: it.page})
		idx += strings.Count(text, "\n") + 1
	}
	return out
}

// WriteLines writes the line items as JSON Lines
func (e *Exporter) WriteLines(doc *model.Document, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for i, line := range e.Lines(doc) {
		if err := encoder.Encode(line); err != nil {
			return fmt.Errorf("encoding line %d: %w", i, err)
		}
	}
	return nil
}

// WriteHTML renders the Markdown export to HTML with GitHub flavored
// extensions so pipe tables survive.
func (e *Exporter) WriteHTML(doc *model.Document, title string, w io.Writer) error {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(e.Markdown(doc, title)), w); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}

// ExportToFile writes the Markdown export to a file
func (e *Exporter) ExportToFile(doc *model.Document, title, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, e.Markdown(doc, title)); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// HTMLString renders the HTML export to a string
func (e *Exporter) HTMLString(doc *model.Document, title string) (string, error) {
	var buf bytes.Buffer
	if err := e.WriteHTML(doc, title, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
