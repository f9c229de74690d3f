// Package model provides the intermediate representation shared by every
// stage of the reconstruction pipeline.
//
// Coordinates are top-down: the origin is the top-left corner of the page
// and y grows downward, in PDF points. Adapters convert from PDF user space
// before handing content to this package.
//
// # Arena
//
// A [Document] owns flat slices of [Span], [Line], [Block], [Table] and
// [Link] values. Relationships are integer indices into those slices, so
// a Line refers to its spans by ID and a Block refers to its lines by
// index. Nothing holds a pointer to its parent.
//
//	doc := model.NewDocument(pageCount, pages)
//	for _, id := range doc.Lines[0].Spans {
//	    fmt.Println(doc.Spans[id].Text)
//	}
//
// # Classification
//
// Spans are immutable once [NewDocument] has assigned their IDs. Flags that
// later stages discover (header/footer, in-table, bound link) live in the
// [Classification] side table keyed by span ID.
//
// # Geometry
//
//   - [Rect] - axis-aligned rectangle with intersection and containment
//   - [Point] - 2D point
//   - [Segment] - straight line segment used by table detection
package model
