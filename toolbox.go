// Package toolbox provides a fluent API for reconstructing tables from PDF
// files and scanned images, plus the expression evaluator used by the
// toolbox command.
//
// Basic usage:
//
//	tables, warnings, err := toolbox.Open("invoice.pdf").Tables()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", toolbox.FormatWarnings(warnings))
//	}
//
// With options:
//
//	tables, _, err := toolbox.Open("scan.tiff").
//	    Language("eng+deu").
//	    MinCols(3).
//	    Tables()
//
// Scanned images are recognized with Tesseract, which requires building
// with -tags ocr. For lower-level control see the pdftext, ocr and tables
// packages.
package toolbox

import (
	"github.com/tsawler/toolbox/calc"
	"github.com/tsawler/toolbox/format"
	"github.com/tsawler/toolbox/model"
	"github.com/tsawler/toolbox/pdftext"
	"github.com/tsawler/toolbox/tables"
)

// Open returns an Extractor for a PDF or image file. Nothing is read until
// a terminal operation such as Tables() runs.
//
// Example:
//
//	tables, warnings, err := toolbox.Open("document.pdf").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened pdftext.Reader.
// The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := pdftext.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	tables, _, err := toolbox.FromReader(r).Tables()
func FromReader(r *pdftext.Reader) *Extractor {
	return &Extractor{
		pdf:          r,
		format:       format.PDF,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// ExtractTable reconstructs a grid of cell strings from positioned
// fragments using the default configuration.
func ExtractTable(fragments []model.TextFragment) [][]string {
	return tables.ExtractTable(fragments, tables.DefaultConfig())
}

// Evaluate computes the value of an infix arithmetic expression. Trig
// functions read their argument in the given angle mode.
//
// Example:
//
//	v, err := toolbox.Evaluate("2*sin(30)", calc.Degrees) // 1
func Evaluate(expression string, mode calc.AngleMode) (float64, error) {
	return calc.Evaluate(expression, mode)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	count := toolbox.Must(toolbox.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTables wraps a call to Tables() or Fragments() and panics if the
// error is non-nil. Warnings are discarded.
//
// Example:
//
//	tables := toolbox.MustTables(toolbox.Open("document.pdf").Tables())
func MustTables[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
