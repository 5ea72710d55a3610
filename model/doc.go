// Package model provides the shared data types that flow through the
// toolbox pipelines.
//
// Fragment sources (pdftext, ocr) produce [Page] values holding positioned
// [TextFragment]s. The table heuristic consumes fragments and produces
// [Table]s, which the export package serialises.
//
// # Coordinates
//
// All positions use the PDF convention: the origin is the bottom-left
// corner of the page and Y grows upward. Sources with a top-left origin
// (scanned images) flip their coordinates before building fragments.
//
// # Tables
//
// A [Table] is a rectangular grid of [Cell] values. [Table.Grid] returns the
// plain string form, and [Table.ToMarkdown] / [Table.ToCSV] render it.
package model
