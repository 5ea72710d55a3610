package export

import (
	"io"

	"github.com/tsawler/toolbox/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// tableNode builds a <table> whose first row is the header.
func tableNode(t *model.Table) *html.Node {
	table := element(atom.Table)
	if t.RowCount() == 0 {
		return table
	}

	addRow := func(parent *html.Node, row []model.Cell, cell atom.Atom) {
		tr := element(atom.Tr)
		for _, c := range row {
			n := element(cell)
			n.AppendChild(&html.Node{Type: html.TextNode, Data: c.Text})
			tr.AppendChild(n)
		}
		parent.AppendChild(tr)
	}

	thead := element(atom.Thead)
	addRow(thead, t.Rows[0], atom.Th)
	table.AppendChild(thead)

	if t.RowCount() > 1 {
		tbody := element(atom.Tbody)
		for _, row := range t.Rows[1:] {
			addRow(tbody, row, atom.Td)
		}
		table.AppendChild(tbody)
	}
	return table
}

func writeHTML(w io.Writer, tables []*model.Table) error {
	for _, t := range tables {
		if err := html.Render(w, tableNode(t)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
