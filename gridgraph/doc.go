// Package gridgraph holds the 2D grid of cells that the vacuum domain's
// MSTVacuum uses for its bounds and walkability checks.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - InBounds checks whether a coordinate pair lies on the grid.
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors); it is
//     recorded on the GridGraph and not consulted by anything in this module.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
