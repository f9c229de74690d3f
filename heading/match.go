package heading

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pdfstruct/model"
)

// fold normalizes text for comparison: NFKC, then Unicode case folding.
func fold(s string) string {
	return cases.Fold().String(norm.NFKC.String(strings.TrimSpace(s)))
}

// Ratio returns the similarity of a and b on a 0-100 scale: twice the
// length of their longest common subsequence over their combined length,
// after normalization. Empty input scores 0.
func Ratio(a, b string) int {
	ra, rb := []rune(fold(a)), []rune(fold(b))
	total := len(ra) + len(rb)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	lcs := longestCommonSubsequence(ra, rb)
	return int(math.Round(100 * float64(2*lcs) / float64(total)))
}

func longestCommonSubsequence(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// match pairs a title index with a block index.
type match struct {
	title int
	block int
}

// MatchEntries looks every title up among the blocks near its page. A
// matched title gets Found set and its block receives the SectionTitle.
// It returns the number of matched titles.
func (e *Engine) MatchEntries(doc *model.Document, titles []model.TocTitle) int {
	matches := e.matchEntries(doc, titles)
	applyMatches(doc, titles, matches)
	return len(matches)
}

// matchEntries finds the best block for each title without modifying
// anything.
func (e *Engine) matchEntries(doc *model.Document, titles []model.TocTitle) []match {
	var out []match
	for ti, t := range titles {
		best, bestRatio := -1, 0
		for bi, b := range doc.Blocks {
			if b.IsEmpty() || b.Page < t.Page-e.config.PageWindow || b.Page > t.Page+e.config.PageWindow {
				continue
			}
			r := e.blockRatio(doc, t.Text, b)
			if r > bestRatio {
				best, bestRatio = bi, r
			}
		}
		if best >= 0 && bestRatio >= e.config.MatchThreshold {
			out = append(out, match{title: ti, block: best})
		}
	}
	return out
}

// blockRatio scores a block against a title. A block whose first line is
// the title scores 100.
func (e *Engine) blockRatio(doc *model.Document, title string, b model.Block) int {
	if len(b.Lines) > 0 {
		if first := doc.Lines[b.Lines[0]].Text; fold(first) == fold(title) && fold(title) != "" {
			return 100
		}
	}
	return Ratio(title, b.Text)
}

func applyMatches(doc *model.Document, titles []model.TocTitle, matches []match) {
	for _, m := range matches {
		t := &titles[m.title]
		t.Found = true
		doc.Blocks[m.block].SectionTitle = &model.SectionTitle{
			Text:   t.Text,
			Level:  t.Level,
			Source: t.Source,
		}
	}
}
