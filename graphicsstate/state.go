package graphicsstate

import (
	"fmt"

	"github.com/tsawler/pdfstruct/model"
)

// Matrix represents a 2D affine transformation matrix [a b c d e f]
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// PageMatrix maps user space of a page with the given media box to
// top-down page coordinates.
func PageMatrix(mediaBox model.Rect) Matrix {
	return Matrix{1, 0, 0, -1, -mediaBox.X0, mediaBox.Y1}
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p model.Point) model.Point {
	return model.Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply returns m followed by other
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// GraphicsState is the part of the PDF graphics state that affects
// vector geometry.
type GraphicsState struct {
	ctm Matrix

	// Line attributes
	LineWidth float64

	// Graphics state stack (for q/Q operators)
	stack []saved
}

type saved struct {
	ctm       Matrix
	lineWidth float64
}

// NewGraphicsState creates a graphics state whose CTM starts at base
func NewGraphicsState(base Matrix) *GraphicsState {
	return &GraphicsState{ctm: base, LineWidth: 1.0}
}

// Matrix returns the current transformation matrix
func (gs *GraphicsState) Matrix() Matrix {
	return gs.ctm
}

// Save pushes the current graphics state onto the stack (q operator)
func (gs *GraphicsState) Save() {
	gs.stack = append(gs.stack, saved{ctm: gs.ctm, lineWidth: gs.LineWidth})
}

// Restore pops a graphics state from the stack (Q operator)
func (gs *GraphicsState) Restore() error {
	if len(gs.stack) == 0 {
		return fmt.Errorf("graphics state stack underflow")
	}
	top := gs.stack[len(gs.stack)-1]
	gs.stack = gs.stack[:len(gs.stack)-1]
	gs.ctm = top.ctm
	gs.LineWidth = top.lineWidth
	return nil
}

// Depth returns the number of saved states
func (gs *GraphicsState) Depth() int {
	return len(gs.stack)
}

// Transform concatenates m to the CTM (cm operator)
func (gs *GraphicsState) Transform(m Matrix) {
	gs.ctm = m.Multiply(gs.ctm)
}

// SetLineWidth sets the line width (w operator)
func (gs *GraphicsState) SetLineWidth(width float64) {
	gs.LineWidth = width
}

// Device maps a user space point through the CTM
func (gs *GraphicsState) Device(x, y float64) model.Point {
	return gs.ctm.Transform(model.Point{X: x, Y: y})
}
