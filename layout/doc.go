// Package layout reconstructs lines and blocks from positioned spans.
//
// The [Analyzer] runs the whole reconstruction on a [model.Document]:
//
//	analyzer := layout.NewAnalyzer()
//	result := analyzer.Analyze(doc)
//
// Reconstruction is a two-pass process. The first pass computes the
// document-wide statistics that every page depends on (repeating header and
// footer boxes, body line spacing); the second pass groups spans into lines
// and lines into blocks using those statistics.
//
// # Detectors
//
//   - [HeaderFooterDetector] - flags spans whose exact box repeats across pages
//   - [LineDetector] - groups spans sharing a baseline into lines
//   - [BlockDetector] - groups lines not separated by extra spacing into blocks
//
// All detectors follow the same construction pattern: NewX() uses the
// defaults returned by DefaultXConfig(), NewXWithConfig(cfg) takes an
// explicit configuration.
package layout
