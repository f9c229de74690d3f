// Package tables detects ruled tables from vector line geometry and binds
// text spans to their cells.
//
// Detection never looks at text. A [Finder] works only on the drawing
// commands of a page:
//
//  1. Keep axis-aligned segments; turn thin rectangles into centerlines
//  2. Solve pairwise segment intersections
//  3. Group touching segments into connected components, one per table
//  4. Normalize the grid: cluster near-equal coordinates, re-snap segment
//     endpoints, subdivide segments at grid points
//  5. Build the merge-free grid of unit cells
//  6. Repair merged cells from recombined collinear segments
//  7. Reject candidates whose cell area does not cover their bounding box
//
// A [Binder] then assigns spans to cells, splitting spans that straddle a
// cell border, and drops tables that end up mostly empty.
//
//	finder := tables.NewFinder()
//	candidates := finder.FindTables(page.Number, page.Drawings)
//	kept := tables.NewBinder().Bind(doc, candidates)
//
// Detectors are also available by name through a registry:
//
//	detector, err := tables.GetDetector(tables.DefaultDetector)
package tables
