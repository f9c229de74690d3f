package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/tsawler/pdfstruct/model"
)

// Font is the font name given to recognized spans
const Font = "ocr"

// Box is one recognized text line in image pixels
type Box struct {
	Text       string
	Rect       image.Rectangle
	Confidence float64
}

// ImageSize decodes the pixel dimensions of an encoded image. PNG, JPEG,
// TIFF and BMP scans are supported.
func ImageSize(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// SpansFromBoxes maps recognized lines from a width x height image that
// covers the whole page onto page coordinates. The baseline is taken as
// the bottom of the box and the size as the box height, rounded to half a
// point.
func SpansFromBoxes(boxes []Box, width, height int, page model.Rect) []model.Span {
	if width <= 0 || height <= 0 {
		return nil
	}
	sx := page.Width() / float64(width)
	sy := page.Height() / float64(height)

	var spans []model.Span
	for _, b := range boxes {
		text := strings.TrimSpace(b.Text)
		if text == "" || b.Rect.Empty() {
			continue
		}
		r := model.Rect{
			X0: page.X0 + float64(b.Rect.Min.X)*sx,
			Y0: page.Y0 + float64(b.Rect.Min.Y)*sy,
			X1: page.X0 + float64(b.Rect.Max.X)*sx,
			Y1: page.Y0 + float64(b.Rect.Max.Y)*sy,
		}
		spans = append(spans, model.Span{
			Text:   text,
			BBox:   r,
			Origin: model.Point{X: r.X0, Y: r.Y1},
			Font:   Font,
			Size:   math.Round(r.Height()*2) / 2,
			Dir:    model.Point{X: 1, Y: 0},
		})
	}
	return spans
}
