package export

import (
	"encoding/json"
	"io"

	"github.com/tsawler/toolbox/model"
)

// jsonTable is the wire shape of one table.
type jsonTable struct {
	Page int        `json:"page,omitempty"`
	Rows [][]string `json:"rows"`
}

func writeJSON(w io.Writer, tables []*model.Table) error {
	out := make([]jsonTable, len(tables))
	for i, t := range tables {
		out[i] = jsonTable{Page: t.Page, Rows: t.Grid()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
