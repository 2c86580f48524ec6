// Package writer saves tables as sheets of an xlsx workbook.
package writer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/transform"
	"github.com/xuri/excelize/v2"
)

// DefaultSuffix is appended to the input stem to name the output workbook.
const DefaultSuffix = "_OUT.xlsx"

// defaultSheet is the sheet excelize.NewFile creates.
const defaultSheet = "Sheet1"

// NamedTable pairs a sheet name with its table.
type NamedTable struct {
	Name  string
	Table *models.Table
}

// OutputPath strips the extension of input and appends suffix.
// An empty suffix means DefaultSuffix.
func OutputPath(input, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	return filepath.ToSlash(stem) + suffix
}

// WriteSheets writes each table to its own sheet, in order, and saves the
// workbook at path, replacing any existing file.
func WriteSheets(path string, sheets []NamedTable) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F1F1F1"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, s := range sheets {
		switch {
		case i == 0 && s.Name != defaultSheet:
			err = f.SetSheetName(defaultSheet, s.Name)
		case i > 0:
			_, err = f.NewSheet(s.Name)
		}
		if err != nil {
			return fmt.Errorf("sheet %q: %w", s.Name, err)
		}
		if err := writeTable(f, s.Name, s.Table, headerStyle); err != nil {
			return fmt.Errorf("sheet %q: %w", s.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// WriteResult writes the pipeline tables to the sheets Cleaned, PositiveOnly,
// Totals and, when present, Pivot.
func WriteResult(path string, res *transform.Result) error {
	sheets := []NamedTable{
		{Name: "Cleaned", Table: res.Cleaned},
		{Name: "PositiveOnly", Table: res.Positive},
		{Name: "Totals", Table: res.Totals},
	}
	if res.Pivot != nil {
		sheets = append(sheets, NamedTable{Name: "Pivot", Table: res.Pivot})
	}
	return WriteSheets(path, sheets)
}

func writeTable(f *excelize.File, sheetName string, t *models.Table, headerStyle int) error {
	if len(t.Columns) == 0 {
		return nil
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheetName, 1, 1, headerStyle); err != nil {
		return err
	}

	for rowIdx, row := range t.Rows {
		for colIdx, v := range row {
			if v.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v.Interface()); err != nil {
				return err
			}
		}
	}

	last, err := excelize.ColumnNumberToName(len(t.Columns))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheetName, "A", last, 14)
}
