package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tsawler/pdfstruct/model"
)

// renderTable renders one table in the configured format.
func (e *Exporter) renderTable(doc *model.Document, t model.Table) string {
	switch e.config.TableFormat {
	case FormatJSONLines:
		return tableJSONLines(t.Grid(doc.Spans))
	case FormatCSV:
		return tableCSV(t.Grid(doc.Spans))
	default:
		return t.ToMarkdown(doc.Spans)
	}
}

// headerKeys turns the header row into unique, non-empty object keys.
func headerKeys(header []string) []string {
	keys := make([]string, len(header))
	seen := make(map[string]int)
	for i, h := range header {
		key := strings.TrimSpace(h)
		if key == "" {
			key = fmt.Sprintf("column_%d", i+1)
		}
		if n := seen[key]; n > 0 {
			seen[key]++
			key = fmt.Sprintf("%s_%d", key, n+1)
		} else {
			seen[key] = 1
		}
		keys[i] = key
	}
	return keys
}

func tableJSONLines(rows [][]string) string {
	if len(rows) < 2 {
		return ""
	}
	keys := headerKeys(rows[0])

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(keys))
		for i, key := range keys {
			if i < len(row) {
				record[key] = row[i]
			}
		}
		if err := encoder.Encode(record); err != nil {
			continue
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

func tableCSV(rows [][]string) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return ""
	}
	return strings.TrimRight(buf.String(), "\n")
}
