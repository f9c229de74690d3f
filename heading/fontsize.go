package heading

import (
	"sort"
	"strings"

	"github.com/tsawler/pdfstruct/model"
)

// counter tallies values by occurrence. Ties go to the value seen first.
type counter struct {
	keys   []float64
	counts map[float64]int
}

func newCounter() *counter {
	return &counter{counts: make(map[float64]int)}
}

func (c *counter) add(v float64) {
	if _, ok := c.counts[v]; !ok {
		c.keys = append(c.keys, v)
	}
	c.counts[v]++
}

func (c *counter) mode() (float64, bool) {
	var out float64
	best := 0
	for _, k := range c.keys {
		if c.counts[k] > best {
			out, best = k, c.counts[k]
		}
	}
	return out, best > 0
}

// descending returns the distinct values, largest first.
func (c *counter) descending() []float64 {
	out := append([]float64(nil), c.keys...)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}

// bodyStyle returns the body font size, the most frequent size among
// non-empty horizontal lines, and whether body text is bold.
func (e *Engine) bodyStyle(doc *model.Document) (size float64, bold bool, ok bool) {
	sizes := newCounter()
	for _, l := range doc.Lines {
		if !l.IsEmpty() && l.IsHorizontal() {
			sizes.add(l.Size)
		}
	}
	size, ok = sizes.mode()
	if !ok {
		return 0, false, false
	}

	var bodyLines, boldLines int
	for _, l := range doc.Lines {
		if l.IsEmpty() || !l.IsHorizontal() || l.Size != size {
			continue
		}
		bodyLines++
		if l.IsBold() {
			boldLines++
		}
	}
	bold = bodyLines > 0 && float64(boldLines) > e.config.BoldBodyRatio*float64(bodyLines)
	return size, bold, true
}

// FontSizeHeadings tags blocks set larger than the body as headings. The
// largest size is level 1, the next one level 2, up to MaxHeadingSizes
// levels. A bold block at body size is a level 1 heading unless the body
// itself is bold. It returns one title per tagged block.
func (e *Engine) FontSizeHeadings(doc *model.Document) []model.TocTitle {
	body, bodyBold, ok := e.bodyStyle(doc)
	if !ok {
		return nil
	}

	larger := newCounter()
	for _, b := range doc.Blocks {
		if !b.IsEmpty() && b.Size > body {
			larger.add(b.Size)
		}
	}
	sizes := larger.descending()
	if len(sizes) > e.config.MaxHeadingSizes {
		sizes = sizes[:e.config.MaxHeadingSizes]
	}
	levels := make(map[float64]int, len(sizes))
	for i, s := range sizes {
		levels[s] = i + 1
	}

	var titles []model.TocTitle
	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		if b.IsEmpty() {
			continue
		}
		level, ok := levels[b.Size]
		if !ok {
			if b.Size != body || !b.IsHorizontal() || !b.IsBold() || bodyBold {
				continue
			}
			level = 1
		}
		text := strings.TrimSpace(b.Text)
		b.SectionTitle = &model.SectionTitle{Text: text, Level: level, Source: model.SourceFontSize}
		titles = append(titles, model.TocTitle{
			Text:   text,
			Level:  level,
			Page:   b.Page,
			Source: model.SourceFontSize,
			Found:  true,
		})
	}
	return titles
}

// MainTitle infers the document title from the first parsed page: the
// text of spans set at one of the two largest sizes of that page, when
// those sizes exceed the body size by TitleSizeFactor.
func (e *Engine) MainTitle(doc *model.Document) string {
	if len(doc.Pages) == 0 {
		return ""
	}
	first := doc.Pages[0].Number

	all := newCounter()
	onFirst := newCounter()
	var candidates []model.Span
	for _, s := range doc.Spans {
		if s.ID != s.Order || s.IsEmpty() {
			continue
		}
		all.add(s.Size)
		if s.Page == first {
			onFirst.add(s.Size)
			candidates = append(candidates, s)
		}
	}
	body, ok := all.mode()
	if !ok {
		return ""
	}
	top := onFirst.descending()
	if len(top) > 2 {
		top = top[:2]
	}

	var parts []string
	for _, s := range candidates {
		if s.Size > body*e.config.TitleSizeFactor && (s.Size == top[0] || (len(top) > 1 && s.Size == top[1])) {
			parts = append(parts, s.Text)
		}
	}
	title := strings.TrimSpace(strings.Join(parts, " "))
	if r := []rune(title); len(r) > e.config.TitleMaxLen {
		title = string(r[:e.config.TitleMaxLen]) + "[...]"
	}
	return title
}
