package parser

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ExtractRows(f2, sheetName, true)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	if len(grid) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(grid))
	}
	for i, row := range grid {
		if len(row) != 2 {
			t.Errorf("Row %d: expected width 2, got %d", i, len(row))
		}
	}
	if grid[2][1] != "" {
		t.Errorf("Expected padded empty cell, got %q", grid[2][1])
	}
}

func TestExtractRowsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ExtractRows(f, "Nope", false); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestBuildTable(t *testing.T) {
	grid := [][]string{
		{" Date ", "", "Amount", "Amount"},
		{"45662", "x", "50", ""},
		{"", "", "", ""},
		{"45663", "y", "abc", "1.5"},
	}

	typed := BuildTable(grid, true, true)
	wantCols := []string{"Date", "Unnamed: 1", "Amount", "Amount.1"}
	if len(typed.Columns) != len(wantCols) {
		t.Fatalf("Expected columns %v, got %v", wantCols, typed.Columns)
	}
	for i, c := range wantCols {
		if typed.Columns[i] != c {
			t.Errorf("Column %d: expected %q, got %q", i, c, typed.Columns[i])
		}
	}
	if typed.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", typed.Len())
	}
	if typed.Rows[0][2] != models.Number(50) {
		t.Errorf("Expected number 50, got %#v", typed.Rows[0][2])
	}
	if typed.Rows[2][2] != models.Text("abc") {
		t.Errorf("Expected text abc, got %#v", typed.Rows[2][2])
	}
	if !typed.Rows[1][0].IsMissing() {
		t.Errorf("Expected missing cell, got %#v", typed.Rows[1][0])
	}

	text := BuildTable(grid, false, false)
	if text.Columns[0] != " Date " {
		t.Errorf("Expected untrimmed header, got %q", text.Columns[0])
	}
	if text.Rows[0][2] != models.Text("50") {
		t.Errorf("Expected text 50, got %#v", text.Rows[0][2])
	}
}

func TestBuildTableEmpty(t *testing.T) {
	tbl := BuildTable(nil, true, true)
	if len(tbl.Columns) != 0 || tbl.Len() != 0 {
		t.Errorf("Expected empty table, got %+v", tbl)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{"1e3", models.Number(1000)},
		{"hello", models.Text("hello")},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %#v, expected %#v", tt.input, result, tt.expected)
		}
	}
}

func TestFindDataBounds(t *testing.T) {
	minRow, maxRow, minCol, maxCol := findDataBounds([][]string{
		{"", ""},
		{"", "a", ""},
		{"b"},
		{},
	})
	if minRow != 1 || maxRow != 2 || minCol != 0 || maxCol != 1 {
		t.Errorf("Unexpected bounds: %d %d %d %d", minRow, maxRow, minCol, maxCol)
	}

	minRow, _, _, _ = findDataBounds(nil)
	if minRow != -1 {
		t.Errorf("Expected -1 for empty grid, got %d", minRow)
	}
}
