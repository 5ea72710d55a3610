// Package export serializes reconstructed tables for downstream consumers.
//
// Every writer receives the tables in page order and writes them to an
// io.Writer:
//
//	err := export.Write(os.Stdout, export.Markdown, tables)
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/toolbox/model"
)

// Format selects an output encoding.
type Format int

const (
	// CSV writes RFC 4180 records, one blank line between tables.
	CSV Format = iota
	// Markdown writes GitHub flavored pipe tables.
	Markdown
	// HTML writes one <table> element per table.
	HTML
	// Text writes space padded columns.
	Text
	// JSON writes an array of string grids.
	JSON
)

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case Markdown:
		return "md"
	case HTML:
		return "html"
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a format name to a Format. Matching is case-insensitive
// and accepts a few common aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "md", "markdown":
		return Markdown, nil
	case "html", "htm":
		return HTML, nil
	case "text", "txt", "":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("unknown output format %q", s)
	}
}

// Write encodes tables to w in the given format. Nil tables are skipped.
func Write(w io.Writer, f Format, tables []*model.Table) error {
	tables = nonNil(tables)

	var err error
	switch f {
	case CSV:
		err = writeCSV(w, tables)
	case Markdown:
		err = writeMarkdown(w, tables)
	case HTML:
		err = writeHTML(w, tables)
	case Text:
		err = writeText(w, tables)
	case JSON:
		err = writeJSON(w, tables)
	default:
		return fmt.Errorf("unsupported format %v", f)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", f, err)
	}
	return nil
}

func nonNil(tables []*model.Table) []*model.Table {
	out := make([]*model.Table, 0, len(tables))
	for _, t := range tables {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

func writeMarkdown(w io.Writer, tables []*model.Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, t.ToMarkdown()); err != nil {
			return err
		}
	}
	return nil
}
