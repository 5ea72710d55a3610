// Package tables reconstructs tabular data from positioned text fragments.
//
// The input is the flat list of fragments a PDF text layer or an OCR pass
// produces for one page. Tables rarely carry usable gridlines in that form,
// so detection works from text positions alone.
//
// # Detectors
//
// Table detection is performed by types implementing the [Detector] interface.
// The package provides:
//
//   - [AlignedDetector] - row grouping by vertical proximity and column
//     clustering by horizontal span adjacency
//
// Detectors are registered globally and can be retrieved by name:
//
//	detector := tables.GetDetector("aligned")
//	found, err := detector.Detect(page)
//
// For callers holding bare fragments, [ExtractTable] returns the grid
// directly:
//
//	grid := tables.ExtractTable(fragments, tables.DefaultConfig())
//
// # Algorithm
//
//  1. Fragments are sorted top to bottom and the median vertical gap
//     between neighbours becomes the row threshold. Each fragment joins the
//     first row anchored within the threshold, or starts a new row.
//  2. Rows with too few fragments are dropped.
//  3. The horizontal spans of the remaining fragments are sorted by left
//     edge and merged while each span starts within the tolerance of the
//     current cluster's right edge. Each cluster is a column.
//  4. Every fragment is placed in the column whose center is nearest.
//     Fragments sharing a cell are joined with a space.
//
// At most one table is returned per page; large vertical gaps do not split
// a page into several tables.
//
// # Configuration
//
//	config := tables.DefaultConfig()
//	config.MinRows = 3
//	config.ColumnTolerance = 6
//	detector.Configure(config)
//
// Configuration options include:
//
//   - MinFragmentsPerRow - fragments a row needs to survive grouping
//   - MinRows, MinCols - minimum table dimensions
//   - ColumnTolerance - adjacency tolerance for column clustering
//   - DefaultRowGap - row threshold when gaps cannot be measured
package tables
