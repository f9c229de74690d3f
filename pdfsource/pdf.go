package pdfsource

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/ledongthuc/pdf"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/pdfstruct/graphicsstate"
	"github.com/tsawler/pdfstruct/model"
)

// letter is the page size assumed when no media box can be found
var letter = model.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}

// maxParentDepth bounds the walk up the page tree for inherited attributes
const maxParentDepth = 32

// PDF is a Source decoding a PDF file held in memory
type PDF struct {
	data   []byte
	reader *pdf.Reader
	config SpanConfig

	cpuOnce sync.Once
	cpuCtx  *pdfcpumodel.Context
	cpuErr  error
}

// Open reads a PDF file
func Open(filename string) (*PDF, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return NewPDF(data)
}

// NewPDF decodes a PDF from its bytes
func NewPDF(data []byte) (p *PDF, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("failed to open PDF: %v", r)
		}
	}()

	if !HasPDFHeader(data) {
		return nil, ErrNotPDF
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &PDF{data: data, reader: reader, config: DefaultSpanConfig()}, nil
}

// SetSpanConfig replaces the glyph merge settings
func (p *PDF) SetSpanConfig(config SpanConfig) {
	p.config = config
}

// PageCount returns the number of pages
func (p *PDF) PageCount() int {
	return p.reader.NumPage()
}

// Page extracts page i. The decoder panics on some malformed streams;
// those pages are reported as errors.
func (p *PDF) Page(i int) (content model.PageContent, err error) {
	if i < 0 || i >= p.PageCount() {
		return model.PageContent{}, fmt.Errorf("page %d: %w", i, ErrPageOutOfRange)
	}
	defer func() {
		if r := recover(); r != nil {
			content, err = model.PageContent{}, fmt.Errorf("page %d: decoding failed: %v", i, r)
		}
	}()

	page := p.reader.Page(i + 1)
	if page.V.IsNull() {
		return model.PageContent{}, fmt.Errorf("page %d: missing page object", i)
	}

	box := mediaBox(page.V)
	matrix := graphicsstate.PageMatrix(box)

	return model.PageContent{
		Number:   i,
		Rect:     model.Rect{X0: 0, Y0: 0, X1: box.Width(), Y1: box.Height()},
		Spans:    MergeGlyphs(page.Content().Text, matrix, p.config),
		Drawings: drawings(page.V.Key("Contents"), matrix),
		Links:    links(page.V, matrix),
	}, nil
}

// Close releases the document
func (p *PDF) Close() error {
	p.data = nil
	return nil
}

// mediaBox returns the page's media box, inherited from the page tree
// when the page does not set one.
func mediaBox(page pdf.Value) model.Rect {
	node := page
	for depth := 0; depth < maxParentDepth && !node.IsNull(); depth++ {
		if r, ok := rectValue(node.Key("MediaBox")); ok {
			return r
		}
		node = node.Key("Parent")
	}
	return letter
}

// rectValue reads a PDF rectangle array, normalizing inverted corners.
func rectValue(v pdf.Value) (model.Rect, bool) {
	if v.Kind() != pdf.Array || v.Len() != 4 {
		return model.Rect{}, false
	}
	var c [4]float64
	for i := range c {
		n := v.Index(i)
		if n.Kind() != pdf.Integer && n.Kind() != pdf.Real {
			return model.Rect{}, false
		}
		c[i] = n.Float64()
	}
	r := model.NewRect(model.Point{X: c[0], Y: c[1]}, model.Point{X: c[2], Y: c[3]})
	return r, r.IsValid()
}
