package export

import (
	"encoding/csv"
	"io"

	"github.com/tsawler/toolbox/model"
)

func writeCSV(w io.Writer, tables []*model.Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(t.Grid()); err != nil {
			return err
		}
	}
	return nil
}
