package export

import (
	"strings"

	"github.com/tsawler/pdfstruct/model"
)

// spanMarkdown renders one span with its link and style markers.
func spanMarkdown(doc *model.Document, id int) string {
	s := doc.Spans[id]
	if s.Text == "" {
		return ""
	}
	text := strings.TrimSpace(s.Text)
	if cl := doc.Classes.Of(id); cl.HasLink && cl.Link >= 0 && cl.Link < len(doc.Links) {
		text = "[" + s.Text + "](" + doc.Links[cl.Link].URI + ")"
	}
	if s.Flags.IsSuperscript() {
		text = "<sup>" + text + "</sup>"
	}
	if s.Flags.IsBold() {
		text = " **" + text + "** "
	}
	if s.Flags.IsItalic() {
		text = " *" + text + "* "
	}
	return text
}

func lineMarkdown(doc *model.Document, l model.Line) string {
	parts := make([]string, 0, len(l.Spans))
	for _, id := range l.Spans {
		parts = append(parts, spanMarkdown(doc, id))
	}
	return strings.Join(parts, " ")
}

// blockMarkdown renders a block. Bullets and table-of-contents lines
// start a new paragraph; other lines are joined with a space. A block with
// a section title becomes a heading one level below the document title.
func blockMarkdown(doc *model.Document, b model.Block) string {
	if b.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for _, i := range b.Lines {
		l := doc.Lines[i]
		md := strings.TrimSpace(lineMarkdown(doc, l))
		if l.IsBullet() || l.IsTocElement {
			sb.WriteString("\n\n")
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(md)
	}
	md := strings.TrimSpace(sb.String())
	if b.SectionTitle != nil {
		level := b.SectionTitle.Level
		if level < 1 {
			level = 1
		}
		return "\n\n#" + strings.Repeat("#", level) + " " + md + "\n\n"
	}
	return md
}
