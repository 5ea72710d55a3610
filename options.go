package toolbox

import "github.com/tsawler/toolbox/tables"

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Page selection (1-indexed)
	pages []int

	// Table reconstruction thresholds
	tables tables.Config

	// OCR language(s), "+" separated; empty uses Tesseract's default
	language string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:  nil, // nil means all pages
		tables: tables.DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		tables:   o.tables,
		language: o.language,
	}
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	return newOpts
}
