package model

import (
	"sort"
	"strings"
)

// Cell is a table rectangle together with the spans it owns.
type Cell struct {
	Rect  Rect
	Spans []int // span IDs, in binding order
}

// Table is a grid of cells detected on one page.
type Table struct {
	Page  int
	Cells []Cell

	// Order is the smallest reading order among the bound spans. It is
	// set by the span binder.
	Order int
}

// BBox returns the union of all cell rectangles
func (t Table) BBox() Rect {
	if len(t.Cells) == 0 {
		return Rect{}
	}
	out := t.Cells[0].Rect
	for _, c := range t.Cells[1:] {
		out = out.Union(c.Rect)
	}
	return out
}

// CellArea returns the summed area of all cells
func (t Table) CellArea() float64 {
	var total float64
	for _, c := range t.Cells {
		total += c.Rect.Area()
	}
	return total
}

// FilledCells returns how many cells own at least one span
func (t Table) FilledCells() int {
	n := 0
	for _, c := range t.Cells {
		if len(c.Spans) > 0 {
			n++
		}
	}
	return n
}

// GridCells returns the merge-free grid of the table: one rectangle per
// pair of consecutive distinct x and y borders, row-major.
func (t Table) GridCells() [][]Rect {
	xs := make(map[float64]bool)
	ys := make(map[float64]bool)
	for _, c := range t.Cells {
		xs[c.Rect.X0], xs[c.Rect.X1] = true, true
		ys[c.Rect.Y0], ys[c.Rect.Y1] = true, true
	}
	xl := sortedKeys(xs)
	yl := sortedKeys(ys)

	var grid [][]Rect
	for i := 0; i+1 < len(yl); i++ {
		row := make([]Rect, 0, len(xl))
		for j := 0; j+1 < len(xl); j++ {
			row = append(row, Rect{X0: xl[j], Y0: yl[i], X1: xl[j+1], Y1: yl[i+1]})
		}
		grid = append(grid, row)
	}
	return grid
}

// Grid returns the row-major text grid. Each grid position takes the text
// of every cell that covers it, so a merged cell repeats its text across
// the positions it spans. The first row is the header; duplicate data
// rows are dropped.
func (t Table) Grid(arena []Span) [][]string {
	var out [][]string
	seen := make(map[string]bool)
	for i, row := range t.GridCells() {
		texts := make([]string, len(row))
		for j, g := range row {
			var sb strings.Builder
			for _, c := range t.Cells {
				if !c.Rect.Contains(g) {
					continue
				}
				for _, id := range c.Spans {
					sb.WriteString(" ")
					sb.WriteString(arena[id].Text)
				}
			}
			texts[j] = strings.TrimSpace(sb.String())
		}
		if i > 0 {
			key := strings.Join(texts, "\x00")
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out = append(out, texts)
	}
	return out
}

// ToMarkdown renders the table grid as a Markdown pipe table
func (t Table) ToMarkdown(arena []Span) string {
	rows := t.Grid(arena)
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(rows[0])
	for range rows[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func sortedKeys(m map[float64]bool) []float64 {
	out := make([]float64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Float64s(out)
	return out
}
