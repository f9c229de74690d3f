// Package graphicsstate turns PDF path operators into vector drawings.
//
// A Recorder is fed the operators of a page content stream one at a time,
// in the order a content stream interpreter reports them. It tracks the
// graphics state stack (q, Q, cm, w), builds paths (m, l, c, v, y, h, re)
// and, when a path is painted (S, s, f, F, f*, B, B*, b, b*), emits one
// model.Drawing per line, curve or rectangle in top-down page coordinates.
// Paths ended with n, including clipping paths, produce nothing.
//
// Example usage:
//
//	rec := graphicsstate.NewRecorder(graphicsstate.PageMatrix(mediaBox))
//	rec.Apply("re", []float64{72, 700, 200, 0.5})
//	rec.Apply("f", nil)
//	drawings := rec.Drawings()
//
// # Coordinates
//
// PageMatrix maps PDF user space (origin bottom-left, y up) to the
// coordinate system used by the rest of the pipeline (origin top-left,
// y down). Points are transformed by the CTM when the path is built, so
// the recorded drawings are independent of later cm operators.
package graphicsstate
