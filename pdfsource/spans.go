package pdfsource

import (
	"math"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pdfstruct/graphicsstate"
	"github.com/tsawler/pdfstruct/model"
)

// SpanConfig controls how glyphs are merged into spans. Distances are
// fractions of the font size.
type SpanConfig struct {
	// BaselineTolerance is the largest baseline shift within a span
	BaselineTolerance float64
	// SpaceGap is the horizontal gap above which a space is inserted
	SpaceGap float64
	// BreakGap is the horizontal gap above which a new span starts
	BreakGap float64
	// Ascent and Descent place the span box around the baseline
	Ascent  float64
	Descent float64
	// SuperscriptSize is the largest size ratio to the previous span for
	// a raised run to count as superscript
	SuperscriptSize float64
	// SuperscriptRise is the smallest baseline rise, relative to the
	// previous span's size, for a run to count as superscript
	SuperscriptRise float64
}

// DefaultSpanConfig returns the merge settings used by Open
func DefaultSpanConfig() SpanConfig {
	return SpanConfig{
		BaselineTolerance: 0.1,
		SpaceGap:          0.15,
		BreakGap:          3.0,
		Ascent:            0.8,
		Descent:           0.2,
		SuperscriptSize:   0.85,
		SuperscriptRise:   0.2,
	}
}

// MergeGlyphs folds decoded glyph runs into spans in top-down page
// coordinates. Glyphs are kept in content stream order.
func MergeGlyphs(glyphs []pdf.Text, page graphicsstate.Matrix, config SpanConfig) []model.Span {
	var spans []model.Span
	var cur *model.Span
	var end float64 // right edge of the current span

	flush := func() {
		if cur != nil && cur.Text != "" {
			spans = append(spans, *cur)
		}
		cur = nil
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		origin := page.Transform(model.Point{X: g.X, Y: g.Y})
		size := math.Abs(g.FontSize)
		right := origin.X + g.W

		if cur != nil && cur.Font == g.Font && cur.Size == size &&
			math.Abs(origin.Y-cur.Origin.Y) <= config.BaselineTolerance*size {
			gap := origin.X - end
			if gap >= -config.SpaceGap*size && gap <= config.BreakGap*size {
				if gap > config.SpaceGap*size && !endsWithSpace(cur.Text) && !startsWithSpace(g.S) {
					cur.Text += " "
				}
				cur.Text += g.S
				end = math.Max(end, right)
				cur.BBox.X1 = end
				continue
			}
		}

		var prev *model.Span
		if cur != nil {
			prev = cur
		} else if len(spans) > 0 {
			prev = &spans[len(spans)-1]
		}
		next := newSpan(g, origin, size, config)
		if prev != nil && isSuperscript(*prev, next, config) {
			next.Flags |= model.FlagSuperscript
		}
		flush()
		cur = &next
		end = right
	}
	flush()
	return spans
}

func newSpan(g pdf.Text, origin model.Point, size float64, config SpanConfig) model.Span {
	return model.Span{
		Text:   g.S,
		Font:   g.Font,
		Size:   size,
		Origin: origin,
		BBox: model.Rect{
			X0: origin.X,
			Y0: origin.Y - config.Ascent*size,
			X1: origin.X + g.W,
			Y1: origin.Y + config.Descent*size,
		},
		Flags: FontFlags(g.Font),
		Dir:   model.Point{X: 1, Y: 0},
	}
}

// isSuperscript reports whether s is set smaller than prev and raised
// above its baseline.
func isSuperscript(prev, s model.Span, config SpanConfig) bool {
	if prev.Size == 0 || s.Size > prev.Size*config.SuperscriptSize {
		return false
	}
	rise := prev.Origin.Y - s.Origin.Y
	return rise >= prev.Size*config.SuperscriptRise && rise < prev.Size
}

// FontFlags infers style flags from a font name such as
// "ABCDEF+TimesNewRoman-BoldItalic".
func FontFlags(font string) model.SpanFlags {
	name := strings.ToLower(font)
	if i := strings.IndexByte(name, '+'); i >= 0 {
		name = name[i+1:]
	}

	var flags model.SpanFlags
	if containsAny(name, "bold", "black", "heavy", "semibold", "demi") {
		flags |= model.FlagBold
	}
	if containsAny(name, "italic", "oblique") {
		flags |= model.FlagItalic
	}
	if containsAny(name, "mono", "courier", "consolas", "menlo", "code") {
		flags |= model.FlagMonospace
	}
	if !containsAny(name, "sans", "arial", "helvetica", "verdana", "calibri") &&
		containsAny(name, "serif", "times", "georgia", "garamond", "cambria", "roman", "minion", "palatino", "courier") {
		flags |= model.FlagSerif
	}
	return flags
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func endsWithSpace(s string) bool {
	r := []rune(s)
	return len(r) > 0 && unicode.IsSpace(r[len(r)-1])
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}
