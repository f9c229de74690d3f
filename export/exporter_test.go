package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/tsawler/pdfstruct/model"
)

// sampleDoc builds a two-page document: a heading, a paragraph with a
// link followed by a bullet, and a plain line on the second page.
func sampleDoc() *model.Document {
	pages := []model.PageContent{
		{
			Number: 0,
			Spans: []model.Span{
				{Text: "Intro", Size: 14, Flags: model.FlagBold},
				{Text: "Hello ", Size: 10},
				{Text: "world", Size: 10},
				{Text: "- item", Size: 10},
			},
			Links: []model.Link{{URI: "https://example.com"}},
		},
		{
			Number: 1,
			Spans:  []model.Span{{Text: "Second page", Size: 10}},
		},
	}
	doc := model.NewDocument(2, pages)
	doc.Classes.BindLink(2, 0)

	doc.Lines = []model.Line{
		model.NewLine(doc.Spans, []int{0}, doc.Classes),
		model.NewLine(doc.Spans, []int{1, 2}, doc.Classes),
		model.NewLine(doc.Spans, []int{3}, doc.Classes),
		model.NewLine(doc.Spans, []int{4}, doc.Classes),
	}
	doc.Blocks = []model.Block{
		model.NewBlock(doc.Lines, []int{0}),
		model.NewBlock(doc.Lines, []int{1, 2}),
		model.NewBlock(doc.Lines, []int{3}),
	}
	doc.Blocks[0].SectionTitle = &model.SectionTitle{Text: "Intro", Level: 1, Source: model.SourceFontSize}
	return doc
}

// tableDoc builds a page holding a single 2x2 table.
func tableDoc() *model.Document {
	pages := []model.PageContent{{
		Number: 0,
		Spans: []model.Span{
			{Text: "Name"}, {Text: "Qty"}, {Text: "apple"}, {Text: "3"},
		},
	}}
	doc := model.NewDocument(1, pages)
	doc.Tables = []model.Table{{
		Page: 0,
		Cells: []model.Cell{
			{Rect: model.Rect{X0: 0, Y0: 0, X1: 50, Y1: 10}, Spans: []int{0}},
			{Rect: model.Rect{X0: 50, Y0: 0, X1: 100, Y1: 10}, Spans: []int{1}},
			{Rect: model.Rect{X0: 0, Y0: 10, X1: 50, Y1: 20}, Spans: []int{2}},
			{Rect: model.Rect{X0: 50, Y0: 10, X1: 100, Y1: 20}, Spans: []int{3}},
		},
	}}
	return doc
}

func parse(t *testing.T, md string) ast.Node {
	t.Helper()
	p := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()
	return p.Parse(text.NewReader([]byte(md)))
}

// ============================================================================
// Markdown Tests
// ============================================================================

func TestMarkdown(t *testing.T) {
	got := NewExporter().Markdown(sampleDoc(), "Title")
	want := "# Title\n\n## **Intro**\n\nHello [world](https://example.com)\n\n- item\n\nSecond page"
	if got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}

func TestMarkdownWithoutTitle(t *testing.T) {
	got := NewExporter().Markdown(sampleDoc(), "")
	if strings.HasPrefix(got, "# ") {
		t.Errorf("Markdown() without title starts with a level 1 heading: %q", got)
	}
	if !strings.HasPrefix(got, "## **Intro**") {
		t.Errorf("Markdown() = %q, want section heading first", got)
	}
}

func TestMarkdownParseTree(t *testing.T) {
	src := NewExporter().Markdown(sampleDoc(), "Title")
	doc := parse(t, src)

	var levels []int
	var links []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			levels = append(levels, node.Level)
		case *ast.Link:
			links = append(links, string(node.Destination))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(levels) != 2 || levels[0] != 1 || levels[1] != 2 {
		t.Errorf("heading levels = %v, want [1 2]", levels)
	}
	if len(links) != 1 || links[0] != "https://example.com" {
		t.Errorf("links = %v, want [https://example.com]", links)
	}
}

func TestMarkdownSkipsHeaderFooterBlocks(t *testing.T) {
	doc := sampleDoc()
	doc.Classes.MarkHeaderFooter(4)
	doc.Lines[3] = model.NewLine(doc.Spans, []int{4}, doc.Classes)
	doc.Blocks[2] = model.NewBlock(doc.Lines, []int{3})

	got := NewExporter().Markdown(doc, "")
	if strings.Contains(got, "Second page") {
		t.Errorf("Markdown() = %q, want header/footer block omitted", got)
	}
}

func TestMarkdownEmptyBlock(t *testing.T) {
	doc := model.NewDocument(1, []model.PageContent{{Spans: []model.Span{{Text: "   "}}}})
	doc.Lines = []model.Line{model.NewLine(doc.Spans, []int{0}, doc.Classes)}
	doc.Blocks = []model.Block{model.NewBlock(doc.Lines, []int{0})}

	if got := NewExporter().Markdown(doc, ""); got != "" {
		t.Errorf("Markdown() = %q, want empty", got)
	}
}

// ============================================================================
// Span Rendering Tests
// ============================================================================

func TestSpanMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		span  model.Span
		link  bool
		want  string
	}{
		{"plain", model.Span{Text: " text "}, false, "text"},
		{"empty", model.Span{Text: ""}, false, ""},
		{"bold", model.Span{Text: "b", Flags: model.FlagBold}, false, " **b** "},
		{"italic", model.Span{Text: "i", Flags: model.FlagItalic}, false, " *i* "},
		{"superscript", model.Span{Text: "2", Flags: model.FlagSuperscript}, false, "<sup>2</sup>"},
		{"bold italic", model.Span{Text: "x", Flags: model.FlagBold | model.FlagItalic}, false, " * **x** * "},
		{"link", model.Span{Text: "here"}, true, "[here](https://example.com)"},
		{"bold link", model.Span{Text: "here", Flags: model.FlagBold}, true, " **[here](https://example.com)** "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := model.NewDocument(1, []model.PageContent{{
				Spans: []model.Span{tt.span},
				Links: []model.Link{{URI: "https://example.com"}},
			}})
			if tt.link {
				doc.Classes.BindLink(0, 0)
			}
			if got := spanMarkdown(doc, 0); got != tt.want {
				t.Errorf("spanMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**a** **b**", "**a b**"},
		{"a ** b", "a**\nb"},
		{"x\n\n\n\ny", "x\n\ny"},
		{"  text  ", "text"},
	}

	for _, tt := range tests {
		if got := cleanup(tt.in); got != tt.want {
			t.Errorf("cleanup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBlockHeadingLevel(t *testing.T) {
	doc := sampleDoc()
	doc.Blocks[1].SectionTitle = &model.SectionTitle{Level: 3}

	got := blockMarkdown(doc, doc.Blocks[1])
	if !strings.HasPrefix(got, "\n\n#### Hello") {
		t.Errorf("blockMarkdown() = %q, want level 4 heading", got)
	}
}

// ============================================================================
// Page and Line Tests
// ============================================================================

func TestPageMarkdown(t *testing.T) {
	pages := NewExporter().PageMarkdown(sampleDoc(), "Title")

	if len(pages) != 3 {
		t.Fatalf("PageMarkdown() returned %d pages, want 3", len(pages))
	}
	if pages[0] != "# Title" {
		t.Errorf("pages[0] = %q, want %q", pages[0], "# Title")
	}
	if !strings.HasPrefix(pages[1], "## **Intro**") {
		t.Errorf("pages[1] = %q, want section heading", pages[1])
	}
	if pages[2] != "Second page" {
		t.Errorf("pages[2] = %q, want %q", pages[2], "Second page")
	}
}

func TestPageMarkdownWithoutTitle(t *testing.T) {
	pages := NewExporter().PageMarkdown(sampleDoc(), "")
	if _, ok := pages[0]; ok {
		t.Error("PageMarkdown() without title has key 0")
	}
}

func TestLines(t *testing.T) {
	lines := NewExporter().Lines(sampleDoc())

	if len(lines) != 3 {
		t.Fatalf("Lines() returned %d items, want 3", len(lines))
	}
	if lines[0].Text != "\n\n## **Intro**\n\n" {
		t.Errorf("lines[0].Text = %q", lines[0].Text)
	}
	if lines[0].LineIdx != 0 || lines[1].LineIdx != 5 {
		t.Errorf("LineIdx = %d, %d, want 0, 5", lines[0].LineIdx, lines[1].LineIdx)
	}
	if lines[1].Page != 0 || lines[2].Page != 1 {
		t.Errorf("Page = %d, %d, want 0, 1", lines[1].Page, lines[2].Page)
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := NewExporter().WriteLines(sampleDoc(), &buf); err != nil {
		t.Fatalf("WriteLines() error = %v", err)
	}

	rows := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(rows) != 3 {
		t.Fatalf("WriteLines() wrote %d rows, want 3", len(rows))
	}
	var line MarkdownLine
	if err := json.Unmarshal([]byte(rows[2]), &line); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if line.Page != 1 || !strings.Contains(line.Text, "Second page") {
		t.Errorf("last line = %+v", line)
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func TestTableMarkdown(t *testing.T) {
	src := NewExporter().Markdown(tableDoc(), "")
	want := "| Name | Qty |\n|---|---|\n| apple | 3 |"
	if src != want {
		t.Errorf("Markdown() = %q, want %q", src, want)
	}

	found := false
	_ = ast.Walk(parse(t, src), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if _, ok := n.(*east.Table); ok && entering {
			found = true
		}
		return ast.WalkContinue, nil
	})
	if !found {
		t.Error("rendered table does not parse as a GFM table")
	}
}

func TestTableFormats(t *testing.T) {
	tests := []struct {
		format TableFormat
		want   string
	}{
		{FormatJSONLines, `{"Name":"apple","Qty":"3"}`},
		{FormatCSV, "Name,Qty\napple,3"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			e := NewExporterWithConfig(Config{TableFormat: tt.format})
			if got := e.Markdown(tableDoc(), ""); got != tt.want {
				t.Errorf("Markdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderKeys(t *testing.T) {
	got := headerKeys([]string{"a", "", "a"})
	want := []string{"a", "column_2", "a_2"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("headerKeys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseTableFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    TableFormat
		wantErr bool
	}{
		{"markdown", FormatMarkdown, false},
		{"", FormatMarkdown, false},
		{"JSONL", FormatJSONLines, false},
		{"csv", FormatCSV, false},
		{"xml", FormatMarkdown, true},
	}

	for _, tt := range tests {
		got, err := ParseTableFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTableFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseTableFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// ============================================================================
// Output Tests
// ============================================================================

func TestHTMLString(t *testing.T) {
	html, err := NewExporter().HTMLString(tableDoc(), "Report")
	if err != nil {
		t.Fatalf("HTMLString() error = %v", err)
	}
	for _, want := range []string{"<h1>Report</h1>", "<table>", "<td>apple</td>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTMLString() missing %q in %q", want, html)
		}
	}
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	if err := NewExporter().ExportToFile(sampleDoc(), "Title", path); err != nil {
		t.Fatalf("ExportToFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# Title\n\n") {
		t.Errorf("file content = %q", data)
	}
}
