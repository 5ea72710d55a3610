package toolbox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/toolbox/calc"
	"github.com/tsawler/toolbox/format"
	"github.com/tsawler/toolbox/model"
)

// testPDFPath returns the path to a test PDF file
func testPDFPath(filename string) string {
	return filepath.Join("testdata", filename)
}

func requirePDF(t *testing.T, filename string) string {
	t.Helper()
	path := testPDFPath(filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("test PDF not found:", path)
	}
	return path
}

func TestOpen(t *testing.T) {
	// Test with non-existent file
	_, _, err := Open("nonexistent.pdf").Tables()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestOpen_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("just some text"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := Open(path).Tables()
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("Tables() error = %v, want unsupported format", err)
	}
}

func TestTables(t *testing.T) {
	path := requirePDF(t, "table.pdf")

	tables, warnings, err := Open(path).Tables()
	if err != nil {
		t.Fatalf("Tables() failed: %v", err)
	}
	if len(warnings) > 0 {
		t.Errorf("unexpected warnings: %s", FormatWarnings(warnings))
	}
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}

	tbl := tables[0]
	if tbl.RowCount() != 3 || tbl.ColCount() != 2 {
		t.Fatalf("table is %dx%d, want 3x2", tbl.RowCount(), tbl.ColCount())
	}
	want := [][]string{{"Item", "Qty"}, {"apple", "3"}, {"pear", "12"}}
	for i, row := range want {
		for j, text := range row {
			if got := tbl.GetCell(i, j).Text; got != text {
				t.Errorf("cell(%d,%d) = %q, want %q", i, j, got, text)
			}
		}
	}
	if tbl.Page != 1 {
		t.Errorf("table page = %d, want 1", tbl.Page)
	}
}

func TestTables_MinRowsFilters(t *testing.T) {
	path := requirePDF(t, "table.pdf")

	tables, _, err := Open(path).MinRows(10).Tables()
	if err != nil {
		t.Fatalf("Tables() failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("got %d tables, want none with MinRows(10)", len(tables))
	}
}

func TestTables_InvalidConfig(t *testing.T) {
	_, _, err := Open("whatever.pdf").ColumnTolerance(-1).Tables()
	if err == nil {
		t.Error("expected error for negative tolerance")
	}
}

func TestFragments(t *testing.T) {
	path := requirePDF(t, "table.pdf")

	fragments, _, err := Open(path).Pages(1).Fragments()
	if err != nil {
		t.Fatalf("Fragments() failed: %v", err)
	}
	var texts []string
	for _, f := range fragments {
		texts = append(texts, f.Text)
	}
	joined := strings.Join(texts, " ")
	for _, word := range []string{"Item", "Qty", "apple", "pear", "12"} {
		if !strings.Contains(joined, word) {
			t.Errorf("fragments %q missing %q", joined, word)
		}
	}
}

func TestPageCount(t *testing.T) {
	path := requirePDF(t, "table.pdf")

	ext := Open(path)
	defer ext.Close()
	count, err := ext.PageCount()
	if err != nil {
		t.Fatalf("PageCount() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("PageCount() = %d, want 1", count)
	}
	if ext.Format() != format.PDF {
		t.Errorf("Format() = %v, want PDF", ext.Format())
	}
}

func TestInvalidPage(t *testing.T) {
	path := requirePDF(t, "table.pdf")

	if _, _, err := Open(path).Pages(1000).Tables(); err == nil {
		t.Error("expected error for invalid page number")
	}
	// 1-indexed
	if _, _, err := Open(path).Pages(0).Tables(); err == nil {
		t.Error("expected error for page 0")
	}
}

func TestPageRange_Invalid(t *testing.T) {
	_, _, err := Open("doc.pdf").PageRange(5, 2).Tables()
	if err == nil || !strings.Contains(err.Error(), "invalid page range") {
		t.Errorf("error = %v, want invalid page range", err)
	}
}

func TestImmutability(t *testing.T) {
	base := Open("doc.pdf")
	withPages := base.Pages(1, 2)
	withMore := withPages.Pages(3).MinCols(4).Language("deu")

	if len(base.options.pages) != 0 {
		t.Errorf("base pages = %v, want none", base.options.pages)
	}
	if len(withPages.options.pages) != 2 {
		t.Errorf("withPages pages = %v, want 2 entries", withPages.options.pages)
	}
	if len(withMore.options.pages) != 3 {
		t.Errorf("withMore pages = %v, want 3 entries", withMore.options.pages)
	}
	if withPages.options.tables.MinCols != 2 || withMore.options.tables.MinCols != 4 {
		t.Error("MinCols leaked between extractors")
	}
	if withPages.options.language != "" {
		t.Error("Language leaked between extractors")
	}
}

func TestResolvePages(t *testing.T) {
	tests := []struct {
		name    string
		pages   []int
		count   int
		want    []int
		wantErr bool
	}{
		{"all", nil, 3, []int{1, 2, 3}, false},
		{"sorted and deduped", []int{3, 1, 3}, 3, []int{1, 3}, false},
		{"out of range", []int{4}, 3, nil, true},
		{"zero", []int{0}, 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Open("doc.pdf").Pages(tt.pages...)
			got, err := e.resolvePages(tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolvePages() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("resolvePages() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("resolvePages() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Page: 2, Message: "no text layer"},
		{Message: "document-wide"},
	}
	want := "page 2: no text layer; document-wide"
	if got := FormatWarnings(warnings); got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q", got)
	}
}

func TestExtractTable(t *testing.T) {
	fragments := []model.TextFragment{
		model.NewFragment("a", 10, 100), model.NewFragment("b", 100, 100),
		model.NewFragment("c", 10, 90), model.NewFragment("d", 100, 90),
	}
	got := ExtractTable(fragments)
	if len(got) != 2 || got[0][0] != "a" || got[1][1] != "d" {
		t.Errorf("ExtractTable() = %v", got)
	}
}

func TestEvaluate(t *testing.T) {
	v, err := Evaluate("2+2*2", calc.Radians)
	if err != nil || v != 6 {
		t.Errorf("Evaluate() = %v, %v; want 6", v, err)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must() = %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustTables() did not panic on error")
		}
	}()
	MustTables(Open("nonexistent.pdf").Tables())
}
