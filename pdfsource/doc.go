// Package pdfsource extracts the raw page primitives the reconstruction
// pipeline works on: positioned text spans, vector drawings, link boxes,
// the embedded outline and page images.
//
// # Sources
//
// A [Source] yields one [model.PageContent] per page. Two implementations
// are provided:
//
//   - [PDF] decodes a PDF file. Glyph runs, drawings and links come from
//     github.com/ledongthuc/pdf; the outline and page images come from
//     github.com/pdfcpu/pdfcpu.
//   - [Memory] serves pages built in memory, for tests and for callers that
//     decode PDFs with another library.
//
// Opening a file:
//
//	src, err := pdfsource.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	page, err := src.Page(0)
//
// # Coordinates
//
// All geometry is converted from PDF user space to top-down page
// coordinates: the origin is the top-left corner of the media box and y
// grows downward.
//
// # Spans
//
// Glyphs reported by the decoder are merged into spans when they share a
// font, a size and a baseline and follow each other closely. Style flags
// are inferred from the font name; a run set smaller and higher than the
// run before it is flagged as superscript.
package pdfsource
