package graphicsstate

import (
	"fmt"

	"github.com/tsawler/pdfstruct/model"
)

// Recorder collects the vector drawings painted by a content stream.
type Recorder struct {
	gs       *GraphicsState
	path     *Path
	drawings []model.Drawing
}

// NewRecorder creates a recorder whose CTM starts at base, usually
// PageMatrix of the page being interpreted.
func NewRecorder(base Matrix) *Recorder {
	return &Recorder{
		gs:   NewGraphicsState(base),
		path: NewPath(),
	}
}

// State returns the graphics state tracked by the recorder
func (r *Recorder) State() *GraphicsState {
	return r.gs
}

// Drawings returns the drawings painted so far, in paint order
func (r *Recorder) Drawings() []model.Drawing {
	return r.drawings
}

// Apply processes one operator with its numeric operands. Operators that
// do not affect geometry are ignored, as are operators with the wrong
// operand count. Only a Q without a matching q is an error.
func (r *Recorder) Apply(op string, operands []float64) error {
	n := len(operands)
	switch op {
	// Graphics state operators
	case "q":
		r.gs.Save()
	case "Q":
		return r.gs.Restore()
	case "cm":
		if n == 6 {
			var m Matrix
			copy(m[:], operands)
			r.gs.Transform(m)
		}
	case "w":
		if n == 1 {
			r.gs.SetLineWidth(operands[0])
		}

	// Path construction operators
	case "m":
		if n == 2 {
			r.path.MoveTo(r.gs.Device(operands[0], operands[1]))
		}
	case "l":
		if n == 2 {
			r.path.LineTo(r.gs.Device(operands[0], operands[1]))
		}
	case "c":
		if n == 6 {
			r.path.CurveTo(
				r.gs.Device(operands[0], operands[1]),
				r.gs.Device(operands[2], operands[3]),
				r.gs.Device(operands[4], operands[5]),
			)
		}
	case "v":
		if n == 4 && r.path.HasCurrentPoint {
			r.path.CurveTo(
				r.path.CurrentPoint,
				r.gs.Device(operands[0], operands[1]),
				r.gs.Device(operands[2], operands[3]),
			)
		}
	case "y":
		if n == 4 && r.path.HasCurrentPoint {
			end := r.gs.Device(operands[2], operands[3])
			r.path.CurveTo(r.gs.Device(operands[0], operands[1]), end, end)
		}
	case "h":
		r.path.ClosePath()
	case "re":
		if n == 4 {
			x, y, w, h := operands[0], operands[1], operands[2], operands[3]
			r.path.MoveTo(r.gs.Device(x, y))
			r.path.LineTo(r.gs.Device(x+w, y))
			r.path.LineTo(r.gs.Device(x+w, y+h))
			r.path.LineTo(r.gs.Device(x, y+h))
			r.path.ClosePath()
		}

	// Path painting operators
	case "S", "f", "F", "f*", "B", "B*":
		r.paint()
	case "s", "b", "b*":
		r.path.ClosePath()
		r.paint()
	case "n":
		r.path.Clear()
	}
	return nil
}

func (r *Recorder) paint() {
	for _, sub := range r.path.Subpaths() {
		r.drawings = append(r.drawings, subpathDrawings(sub)...)
	}
	r.path.Clear()
}

// String summarizes the recorder for debugging
func (r *Recorder) String() string {
	return fmt.Sprintf("Recorder{drawings: %d, depth: %d}", len(r.drawings), r.gs.Depth())
}
