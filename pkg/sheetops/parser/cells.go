package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
	"github.com/xuri/excelize/v2"
)

// ExtractRows reads the cell grid of a sheet.
// When raw is true, cell values are returned without number formatting applied.
// Trailing empty rows and columns are trimmed; every returned row has the same width.
func ExtractRows(f *excelize.File, sheetName string, raw bool) ([][]string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: raw})
	if err != nil {
		return nil, err
	}

	_, maxRow, _, maxCol := findDataBounds(rows)
	if maxRow < 0 {
		return nil, nil
	}

	grid := make([][]string, maxRow+1)
	for rowIdx := range grid {
		grid[rowIdx] = make([]string, maxCol+1)
		copy(grid[rowIdx], rows[rowIdx])
	}
	return grid, nil
}

// BuildTable converts a cell grid into a table using the first row as header.
// Empty cells become missing values. In typed mode non-empty cells are parsed
// as numbers where possible; otherwise every cell is kept as text.
func BuildTable(grid [][]string, typed, trimHeaders bool) *models.Table {
	if len(grid) == 0 {
		return models.NewTable()
	}

	t := models.NewTable(headerNames(grid[0], trimHeaders)...)
	for _, row := range grid[1:] {
		values := make([]models.Value, len(t.Columns))
		for colIdx := range values {
			var cell string
			if colIdx < len(row) {
				cell = row[colIdx]
			}
			switch {
			case cell == "":
				values[colIdx] = models.Missing()
			case typed:
				values[colIdx] = parseValue(cell)
			default:
				values[colIdx] = models.Text(cell)
			}
		}
		t.Rows = append(t.Rows, values)
	}
	return t
}

// headerNames names blank headers "Unnamed: <i>" and suffixes repeats with ".<n>".
func headerNames(row []string, trim bool) []string {
	names := make([]string, len(row))
	seen := make(map[string]int)
	for i, h := range row {
		if trim {
			h = strings.TrimSpace(h)
		}
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			h = fmt.Sprintf("%s.%d", h, n+1)
		} else {
			seen[h] = 0
		}
		names[i] = h
	}
	return names
}

// parseValue attempts to parse a string value as a number.
// Returns a number value when it parses, otherwise a text value.
func parseValue(s string) models.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	return models.Text(s)
}
