package toolbox

import (
	"fmt"
	"os"
	"sort"

	"github.com/tsawler/toolbox/format"
	"github.com/tsawler/toolbox/model"
	"github.com/tsawler/toolbox/ocr"
	"github.com/tsawler/toolbox/pdftext"
	"github.com/tsawler/toolbox/tables"
)

// Extractor provides a fluent interface for extracting fragments and tables
// from PDFs and scanned images.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	format   format.Format

	// Inputs (only one is used, based on format)
	pdf   *pdftext.Reader
	image []byte

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		format:       e.format,
		pdf:          e.pdf,
		image:        e.image,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureReader opens the input if not already open. The file content wins
// over its extension when the two disagree.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	f, err := os.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", e.filename, err)
	}
	detected, err := format.DetectFile(e.filename, f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to detect format of %s: %w", e.filename, err)
	}
	e.format = detected

	switch {
	case e.format == format.PDF:
		r, err := pdftext.Open(e.filename)
		if err != nil {
			return fmt.Errorf("failed to open PDF: %w", err)
		}
		e.pdf = r

	case e.format.IsImage():
		data, err := os.ReadFile(e.filename)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		e.image = data

	default:
		return fmt.Errorf("unsupported file format: %s", e.filename)
	}

	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if !e.ownsReader {
		return nil
	}
	e.ownsReader = false
	e.readerOpened = false
	e.image = nil
	if e.pdf != nil {
		err := e.pdf.Close()
		e.pdf = nil
		return err
	}
	return nil
}

// Format returns the detected input format. Detection is by extension
// until a terminal operation has inspected the file content.
func (e *Extractor) Format() format.Format {
	return e.format
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	tables, _, err := toolbox.Open("doc.pdf").Pages(1, 3, 5).Tables()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	tables, _, err := toolbox.Open("doc.pdf").PageRange(5, 10).Tables()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	if start > end {
		if newExt.err == nil {
			newExt.err = fmt.Errorf("invalid page range %d-%d", start, end)
		}
		return newExt
	}
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// MinRows sets how many rows a reconstructed table needs.
func (e *Extractor) MinRows(n int) *Extractor {
	newExt := e.clone()
	newExt.options.tables.MinRows = n
	return newExt
}

// MinCols sets how many columns a reconstructed table needs.
func (e *Extractor) MinCols(n int) *Extractor {
	newExt := e.clone()
	newExt.options.tables.MinCols = n
	return newExt
}

// MinFragmentsPerRow sets how many fragments a row needs to be kept.
func (e *Extractor) MinFragmentsPerRow(n int) *Extractor {
	newExt := e.clone()
	newExt.options.tables.MinFragmentsPerRow = n
	return newExt
}

// ColumnTolerance sets the horizontal distance within which fragment spans
// are merged into one column.
func (e *Extractor) ColumnTolerance(t float64) *Extractor {
	newExt := e.clone()
	newExt.options.tables.ColumnTolerance = t
	return newExt
}

// Language sets the OCR language(s) for image input, e.g. "eng+fra".
// It has no effect on PDFs.
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.language = lang
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the total number of pages in the input. Images always
// have one page.
// Note: This does NOT close the reader, allowing further operations.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	if e.format.IsImage() {
		return 1, nil
	}
	return e.pdf.PageCount(), nil
}

// Fragments returns the positioned text fragments of the selected pages in
// page order.
//
// Example:
//
//	fragments, warnings, err := toolbox.Open("document.pdf").Pages(1).Fragments()
func (e *Extractor) Fragments() ([]model.TextFragment, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pages, warnings, err := e.collectPages()
	if err != nil {
		return nil, nil, err
	}

	var all []model.TextFragment
	for _, p := range pages {
		all = append(all, p.RawText...)
	}
	return all, warnings, nil
}

// Tables reconstructs at most one table per selected page. Pages where no
// table is found are skipped silently; pages that could not be read are
// reported as warnings.
//
// Example:
//
//	tables, warnings, err := toolbox.Open("report.pdf").Tables()
//	for _, t := range tables {
//	    fmt.Print(t.ToMarkdown())
//	}
func (e *Extractor) Tables() ([]*model.Table, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	detector := tables.NewAlignedDetector()
	if err := detector.Configure(e.options.tables); err != nil {
		return nil, nil, err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pages, warnings, err := e.collectPages()
	if err != nil {
		return nil, nil, err
	}

	var result []*model.Table
	for _, p := range pages {
		found, err := detector.Detect(p)
		if err != nil {
			warnings = append(warnings, Warning{Page: p.Number, Message: err.Error()})
			continue
		}
		result = append(result, found...)
	}
	return result, warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// collectPages reads the selected pages. A page that fails to parse
// becomes a warning; an out of range selection is an error.
func (e *Extractor) collectPages() ([]*model.Page, []Warning, error) {
	if e.format.IsImage() {
		return e.recognizeImage()
	}

	numbers, err := e.resolvePages(e.pdf.PageCount())
	if err != nil {
		return nil, nil, err
	}

	var pages []*model.Page
	var warnings []Warning
	for _, n := range numbers {
		page, err := e.pdf.Page(n)
		if err != nil {
			warnings = append(warnings, Warning{Page: n, Message: err.Error()})
			continue
		}
		if page.FragmentCount() == 0 {
			warnings = append(warnings, Warning{Page: n, Message: "no text layer, page may be scanned"})
		}
		pages = append(pages, page)
	}
	return pages, warnings, nil
}

// recognizeImage runs OCR over the image input as a single page.
func (e *Extractor) recognizeImage() ([]*model.Page, []Warning, error) {
	if _, err := e.resolvePages(1); err != nil {
		return nil, nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start OCR: %w", err)
	}
	defer client.Close()

	if e.options.language != "" {
		if err := client.SetLanguage(e.options.language); err != nil {
			return nil, nil, fmt.Errorf("failed to set OCR language: %w", err)
		}
	}

	page, err := client.RecognizeFragments(e.image)
	if err != nil {
		return nil, nil, fmt.Errorf("OCR failed: %w", err)
	}

	var warnings []Warning
	if page.FragmentCount() == 0 {
		warnings = append(warnings, Warning{Page: page.Number, Message: "no words recognized"})
	}
	return []*model.Page{page}, warnings, nil
}

// resolvePages validates the 1-indexed page selection against pageCount.
// If no pages were specified, all pages are returned.
func (e *Extractor) resolvePages(pageCount int) ([]int, error) {
	if len(e.options.pages) == 0 {
		numbers := make([]int, pageCount)
		for i := range numbers {
			numbers[i] = i + 1
		}
		return numbers, nil
	}

	seen := make(map[int]bool)
	var numbers []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			numbers = append(numbers, p)
		}
	}

	sort.Ints(numbers)
	return numbers, nil
}
