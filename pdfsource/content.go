package pdfsource

import (
	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pdfstruct/graphicsstate"
	"github.com/tsawler/pdfstruct/model"
)

// drawings interprets the page content streams and returns the painted
// vector paths. Contents may be a single stream or an array of streams
// sharing one graphics state.
func drawings(contents pdf.Value, matrix graphicsstate.Matrix) []model.Drawing {
	rec := graphicsstate.NewRecorder(matrix)
	switch contents.Kind() {
	case pdf.Stream:
		interpret(contents, rec)
	case pdf.Array:
		for i := 0; i < contents.Len(); i++ {
			interpret(contents.Index(i), rec)
		}
	}
	return rec.Drawings()
}

func interpret(strm pdf.Value, rec *graphicsstate.Recorder) {
	if strm.Kind() != pdf.Stream {
		return
	}
	pdf.Interpret(strm, func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		// unbalanced Q in producer output is common; keep going
		_ = rec.Apply(op, numbers(args))
	})
}

// numbers returns the numeric operands, or nil when any operand is not a
// number.
func numbers(args []pdf.Value) []float64 {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		switch a.Kind() {
		case pdf.Integer, pdf.Real:
			out = append(out, a.Float64())
		default:
			return nil
		}
	}
	return out
}

// links reads the URI link annotations of a page.
func links(page pdf.Value, matrix graphicsstate.Matrix) []model.Link {
	annots := page.Key("Annots")
	if annots.Kind() != pdf.Array {
		return nil
	}

	var out []model.Link
	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.Key("Subtype").Name() != "Link" {
			continue
		}
		action := annot.Key("A")
		if action.Key("S").Name() != "URI" {
			continue
		}
		uri := action.Key("URI").RawString()
		if uri == "" {
			continue
		}
		r, ok := rectValue(annot.Key("Rect"))
		if !ok {
			continue
		}
		a := matrix.Transform(model.Point{X: r.X0, Y: r.Y0})
		b := matrix.Transform(model.Point{X: r.X1, Y: r.Y1})
		out = append(out, model.Link{URI: uri, BBox: model.NewRect(a, b)})
	}
	return out
}
