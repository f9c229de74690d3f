package pdfsource

import (
	"bytes"
	"errors"
)

// ErrNotPDF is returned for data that does not start like a PDF file
var ErrNotPDF = errors.New("not a PDF file")

// headerWindow is how far into the file the %PDF- marker may appear.
// Readers tolerate leading junk up to this offset.
const headerWindow = 1024

var pdfMagic = []byte("%PDF-")

// HasPDFHeader reports whether data carries the %PDF- marker near its start
func HasPDFHeader(data []byte) bool {
	if len(data) > headerWindow {
		data = data[:headerWindow]
	}
	return bytes.Contains(data, pdfMagic)
}
