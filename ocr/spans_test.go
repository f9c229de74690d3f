package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/tsawler/pdfstruct/model"
)

// createTestImage encodes a 100x50 white image with a black bar in the
// given format.
func createTestImage(t *testing.T, format string) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := 10; x < 50; x++ {
		for y := 10; y < 30; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "tiff":
		err = tiff.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		t.Fatalf("encoding %s: %v", format, err)
	}
	return buf.Bytes()
}

func TestImageSize(t *testing.T) {
	for _, format := range []string{"png", "tiff", "bmp"} {
		t.Run(format, func(t *testing.T) {
			w, h, err := ImageSize(createTestImage(t, format))
			if err != nil {
				t.Fatalf("ImageSize() error = %v", err)
			}
			if w != 100 || h != 50 {
				t.Errorf("ImageSize() = %dx%d, want 100x50", w, h)
			}
		})
	}

	if _, _, err := ImageSize([]byte("garbage")); err == nil {
		t.Error("ImageSize() accepted garbage")
	}
}

func TestSpansFromBoxes(t *testing.T) {
	page := model.Rect{X0: 0, Y0: 0, X1: 600, Y1: 800}
	boxes := []Box{
		{Text: "Hello world\n", Rect: image.Rect(100, 200, 500, 230)},
		{Text: "   ", Rect: image.Rect(0, 0, 10, 10)},
		{Text: "empty box", Rect: image.Rect(5, 5, 5, 5)},
	}

	// 1200x1600 scan of a 600x800 page: half a point per pixel
	spans := SpansFromBoxes(boxes, 1200, 1600, page)
	if len(spans) != 1 {
		t.Fatalf("SpansFromBoxes() returned %d spans, want 1", len(spans))
	}

	s := spans[0]
	if s.Text != "Hello world" {
		t.Errorf("Text = %q, want %q", s.Text, "Hello world")
	}
	want := model.Rect{X0: 50, Y0: 100, X1: 250, Y1: 115}
	if s.BBox != want {
		t.Errorf("BBox = %v, want %v", s.BBox, want)
	}
	if s.Origin != (model.Point{X: 50, Y: 115}) {
		t.Errorf("Origin = %v, want (50, 115)", s.Origin)
	}
	if s.Size != 15 {
		t.Errorf("Size = %v, want 15", s.Size)
	}
	if s.Font != Font || !s.IsHorizontal() {
		t.Errorf("Font = %q, horizontal = %v", s.Font, s.IsHorizontal())
	}
}

func TestSpansFromBoxesZeroImage(t *testing.T) {
	if spans := SpansFromBoxes([]Box{{Text: "x", Rect: image.Rect(0, 0, 1, 1)}}, 0, 0, model.Rect{X1: 1, Y1: 1}); spans != nil {
		t.Errorf("SpansFromBoxes() = %v, want nil", spans)
	}
}

// ============================================================================
// Mode Tests
// ============================================================================

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"never", Never, false},
		{"", Never, false},
		{"AUTO", Auto, false},
		{"always", Always, false},
		{"sometimes", Never, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" {
			if again, _ := ParseMode(got.String()); again != got {
				t.Errorf("ParseMode(%q.String()) = %v", got, again)
			}
		}
	}
}

func TestShouldRecognize(t *testing.T) {
	tests := []struct {
		mode      Mode
		hasText   bool
		hasImages bool
		want      bool
	}{
		{Never, false, true, false},
		{Auto, false, true, true},
		{Auto, true, true, false},
		{Auto, false, false, false},
		{Always, true, true, true},
		{Always, true, false, false},
	}

	for _, tt := range tests {
		if got := tt.mode.ShouldRecognize(tt.hasText, tt.hasImages); got != tt.want {
			t.Errorf("%v.ShouldRecognize(%v, %v) = %v, want %v", tt.mode, tt.hasText, tt.hasImages, got, tt.want)
		}
	}
}
