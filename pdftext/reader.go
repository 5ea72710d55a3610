package pdftext

import (
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/tsawler/toolbox/model"
)

// US Letter, used when a page carries no usable MediaBox.
const (
	defaultPageWidth  = 612
	defaultPageHeight = 792
)

// Reader extracts text fragments from a PDF document.
type Reader struct {
	file *os.File // nil when the caller owns the underlying reader
	pdf  *pdf.Reader
}

// Open opens a PDF file for fragment extraction.
// The Reader must be closed when done.
func Open(filename string) (*Reader, error) {
	f, r, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", filename, err)
	}
	return &Reader{file: f, pdf: r}, nil
}

// NewReader reads a PDF from ra, which holds size bytes. Close is a no-op
// for readers created this way.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	r, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &Reader{pdf: r}, nil
}

// Close releases the underlying file, if the Reader opened one.
// It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Page extracts the fragments of a page (1-indexed). Pages without a text
// layer yield an empty fragment list.
func (r *Reader) Page(number int) (page *model.Page, err error) {
	if number < 1 || number > r.pdf.NumPage() {
		return nil, fmt.Errorf("page %d out of range (1-%d)", number, r.pdf.NumPage())
	}

	p := r.pdf.Page(number)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d: missing page object", number)
	}

	// The content parser panics on malformed streams
	defer func() {
		if rec := recover(); rec != nil {
			page = nil
			err = fmt.Errorf("page %d: malformed content stream: %v", number, rec)
		}
	}()

	width, height := pageSize(p)
	page = model.NewPage(number, width, height)
	for _, f := range mergeGlyphs(p.Content().Text) {
		page.AddFragment(f)
	}
	return page, nil
}

// pageSize reads the MediaBox, following the Parent chain for inherited
// values.
func pageSize(p pdf.Page) (float64, float64) {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Len() != 4 {
			continue
		}
		width := box.Index(2).Float64() - box.Index(0).Float64()
		height := box.Index(3).Float64() - box.Index(1).Float64()
		if width > 0 && height > 0 {
			return width, height
		}
	}
	return defaultPageWidth, defaultPageHeight
}
