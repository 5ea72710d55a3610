package export

import (
	"io"
	"strings"

	"github.com/tsawler/toolbox/model"
	"golang.org/x/text/width"
)

// columnGap separates adjacent columns in text output.
const columnGap = 2

// displayWidth counts terminal cells: wide and fullwidth runes take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func renderText(t *model.Table) string {
	grid := t.Grid()
	var widths []int
	for _, row := range grid {
		for j, cell := range row {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if w := displayWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		var line strings.Builder
		for j, cell := range row {
			line.WriteString(cell)
			if j < len(row)-1 {
				line.WriteString(strings.Repeat(" ", widths[j]-displayWidth(cell)+columnGap))
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeText(w io.Writer, tables []*model.Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, renderText(t)); err != nil {
			return err
		}
	}
	return nil
}
