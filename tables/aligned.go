package tables

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/toolbox/model"
)

// AlignedDetector reconstructs a single table from a page by grouping
// fragments into rows by vertical proximity and into columns by horizontal
// span adjacency. It never fails: pages without table-like structure yield
// no tables.
//
// Configure must not be called concurrently with Detect.
type AlignedDetector struct {
	config Config
}

// NewAlignedDetector creates a new aligned table detector with default configuration.
func NewAlignedDetector() *AlignedDetector {
	return &AlignedDetector{
		config: DefaultConfig(),
	}
}

// Name returns the detector's identifier ("aligned").
func (d *AlignedDetector) Name() string {
	return "aligned"
}

// Configure sets the detector configuration.
func (d *AlignedDetector) Configure(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	d.config = config
	return nil
}

// Config returns the active configuration.
func (d *AlignedDetector) Config() Config {
	return d.config
}

// Detect returns at most one table for the page. The error is always nil.
func (d *AlignedDetector) Detect(page *model.Page) ([]*model.Table, error) {
	if page == nil || len(page.RawText) == 0 {
		return nil, nil
	}

	table := buildTable(page.RawText, d.config)
	if table == nil {
		return nil, nil
	}
	table.Page = page.Number
	return []*model.Table{table}, nil
}

// ExtractTable reconstructs the most likely table from unordered fragments
// and returns it as a grid of strings, or nil when no table is found.
func ExtractTable(fragments []model.TextFragment, config Config) [][]string {
	table := buildTable(fragments, config)
	if table == nil {
		return nil
	}
	return table.Grid()
}

// row is a group of fragments sharing a vertical anchor.
type row struct {
	y         float64
	fragments []model.TextFragment
}

// column is a cluster of horizontally adjacent spans.
type column struct {
	left, right float64
}

func (c column) center() float64 {
	return (c.left + c.right) / 2
}

func buildTable(fragments []model.TextFragment, config Config) *model.Table {
	rows := groupRows(fragments, config)
	if len(rows) == 0 || len(rows) < config.MinRows {
		return nil
	}

	cols := estimateColumns(rows, config)
	if len(cols) == 0 || len(cols) < config.MinCols {
		return nil
	}

	return alignCells(rows, cols)
}

// groupRows clusters fragments into rows. The threshold is the median gap
// between consecutive fragments sorted top to bottom, so it adapts to the
// line spacing of the page.
func groupRows(fragments []model.TextFragment, config Config) []row {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]model.TextFragment, len(fragments))
	copy(sorted, fragments)

	// PDF coordinates: top of page has the largest Y
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y() > sorted[j].Y()
	})

	threshold := config.DefaultRowGap
	if len(sorted) > 1 {
		gaps := make([]float64, 0, len(sorted)-1)
		for i := 1; i < len(sorted); i++ {
			gaps = append(gaps, math.Abs(sorted[i-1].Y()-sorted[i].Y()))
		}
		threshold = median(gaps)
	}

	var rows []row
	for _, frag := range sorted {
		placed := false
		for i := range rows {
			if math.Abs(rows[i].y-frag.Y()) <= threshold {
				rows[i].fragments = append(rows[i].fragments, frag)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: frag.Y(), fragments: []model.TextFragment{frag}})
		}
	}

	kept := rows[:0]
	for _, r := range rows {
		if len(r.fragments) < config.MinFragmentsPerRow {
			continue
		}
		sort.SliceStable(r.fragments, func(i, j int) bool {
			return r.fragments[i].X() < r.fragments[j].X()
		})
		kept = append(kept, r)
	}

	return kept
}

// estimateColumns clusters the horizontal spans of every fragment in the
// given rows. A span joins the current cluster when its left edge lies
// within the tolerance of the cluster's right edge.
func estimateColumns(rows []row, config Config) []column {
	var spans []column
	for _, r := range rows {
		for _, frag := range r.fragments {
			left, right := frag.Span()
			spans = append(spans, column{left: left, right: right})
		}
	}

	return clusterSpans(spans, config.ColumnTolerance)
}

func clusterSpans(spans []column, tolerance float64) []column {
	if len(spans) == 0 {
		return nil
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].left < spans[j].left
	})

	clusters := []column{spans[0]}
	for _, s := range spans[1:] {
		current := &clusters[len(clusters)-1]
		if s.left <= current.right+tolerance {
			current.right = math.Max(current.right, s.right)
			continue
		}
		clusters = append(clusters, s)
	}

	return clusters
}

// alignCells places each fragment in the column whose center is nearest
// its own horizontal center. Fragments sharing a cell are joined by a space.
func alignCells(rows []row, cols []column) *model.Table {
	table := model.NewTable(len(rows), len(cols))

	for i, r := range rows {
		for _, frag := range r.fragments {
			j := nearestColumn(frag.CenterX(), cols)
			cell := table.GetCell(i, j)

			if cell.Text == "" {
				cell.Text = frag.Text
			} else {
				cell.Text = strings.Join([]string{cell.Text, frag.Text}, " ")
			}
			cell.BBox = cell.BBox.Union(frag.BBox)
			table.BBox = table.BBox.Union(frag.BBox)
		}
	}

	return table
}

// nearestColumn returns the index of the column whose center is closest to
// x. Ties resolve to the leftmost column.
func nearestColumn(x float64, cols []column) int {
	best := 0
	bestDist := math.Inf(1)
	for j, c := range cols {
		if dist := math.Abs(x - c.center()); dist < bestDist {
			best = j
			bestDist = dist
		}
	}
	return best
}

// median returns the median of values without modifying the slice.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
