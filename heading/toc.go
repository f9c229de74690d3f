package heading

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/pdfstruct/model"
)

var (
	// label, a leader of dots, dashes or spaces, an optional "p." and a page number
	tocPattern = regexp.MustCompile(`^(.+?)(?:\s+)?[._\-\s….]{5,}(?:\s+)?(?:[pP]\.\s*)?(\d+)`)

	schemaPatterns = []struct {
		pattern *regexp.Regexp
		level   int
	}{
		{regexp.MustCompile(`^(\d+)[\s.)]+(\d+)[\s.)]+(\d+)`), 3},
		{regexp.MustCompile(`^(\d+)[\s.)]+(\d+)`), 2},
		{regexp.MustCompile(`^(\d+)[\s.)]*`), 1},
	}
)

// maxPageDigits bounds the page number of a table-of-contents entry.
// Longer numbers are postal codes or phone numbers.
const maxPageDigits = 3

// FromOutline converts the embedded outline into metadata-tier titles.
func FromOutline(outline []model.OutlineEntry) []model.TocTitle {
	if len(outline) == 0 {
		return nil
	}
	titles := make([]model.TocTitle, 0, len(outline))
	for _, o := range outline {
		titles = append(titles, model.TocTitle{
			Text:   o.Title,
			Level:  o.Level,
			Page:   o.Page,
			Source: model.SourceMetadata,
		})
	}
	return titles
}

// DetectToc scans the lines of the first pages for table-of-contents
// entries and flags the matching lines IsTocElement. A label spread over
// two lines is reassembled when the preceding line did not match but the
// one before it did. Printed page numbers are taken as 1-based.
func (e *Engine) DetectToc(lines []model.Line) []model.TocTitle {
	if len(lines) == 0 {
		return nil
	}
	firstPage := lines[0].Page
	for i := range lines {
		lines[i].IsTocElement = false
		if lines[i].Page < firstPage {
			firstPage = lines[i].Page
		}
	}

	var titles []model.TocTitle
	misses := 0
	for i := range lines {
		line := &lines[i]
		if line.Page-firstPage >= e.config.TocScanPages {
			continue
		}
		if len(titles) >= e.config.TocMinMatches && misses >= e.config.TocMaxMisses {
			break
		}

		m := tocPattern.FindStringSubmatch(line.Text)
		if m == nil || len(m[2]) > maxPageDigits {
			misses++
			continue
		}
		misses = 0
		line.IsTocElement = true

		text, offset := strings.TrimSpace(m[1]), line.Origin.X
		if i > 2 && !lines[i-1].IsTocElement && lines[i-2].IsTocElement {
			text = strings.TrimSpace(lines[i-1].Text) + " " + text
			offset = lines[i-1].Origin.X
			lines[i-1].IsTocElement = true
		}

		page, _ := strconv.Atoi(m[2])
		titles = append(titles, model.TocTitle{
			Text:       text,
			Page:       page - 1,
			SourcePage: line.Page,
			XOffset:    math.Trunc(offset),
			Source:     model.SourceRegex,
		})
	}
	return titles
}

// AssignSchemaLevels sets the level of titles numbered like "1", "1.2"
// or "1.2.3". Other titles keep level 0.
func AssignSchemaLevels(titles []model.TocTitle) {
	for i := range titles {
		for _, s := range schemaPatterns {
			if s.pattern.MatchString(titles[i].Text) {
				titles[i].Level = s.level
				break
			}
		}
	}
}

// AssignOffsetLevels levels titles by indentation: on each source page,
// the level of a title is the rank of its x offset among the distinct
// offsets of that page.
func AssignOffsetLevels(titles []model.TocTitle) {
	offsets := make(map[int][]float64)
	for _, t := range titles {
		offsets[t.SourcePage] = append(offsets[t.SourcePage], t.XOffset)
	}
	for page, xs := range offsets {
		sort.Float64s(xs)
		offsets[page] = dedupe(xs)
	}
	for i := range titles {
		xs := offsets[titles[i].SourcePage]
		titles[i].Level = sort.SearchFloat64s(xs, titles[i].XOffset) + 1
	}
}

func dedupe(sorted []float64) []float64 {
	var out []float64
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
