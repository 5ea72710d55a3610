package model

// Page represents a single page of positioned text
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points (pixels for OCR input)
	Height float64 // Page height in points (pixels for OCR input)

	// All text fragments with positions, in source order
	RawText []TextFragment
}

// NewPage creates a new page with given dimensions
func NewPage(number int, width, height float64) *Page {
	return &Page{
		Number:  number,
		Width:   width,
		Height:  height,
		RawText: make([]TextFragment, 0),
	}
}

// AddFragment appends a text fragment to the page
func (p *Page) AddFragment(f TextFragment) {
	p.RawText = append(p.RawText, f)
}

// FragmentCount returns the number of fragments on the page
func (p *Page) FragmentCount() int {
	return len(p.RawText)
}
