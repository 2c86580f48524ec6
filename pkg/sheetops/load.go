package sheetops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads the selected sheets of an Excel file into an ordered workbook.
func Load(path string, opts Options) (*models.Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	sheetNames, err := selectSheets(f, opts)
	if err != nil {
		return nil, err
	}

	wb := models.NewWorkbook(filepath.Base(path))
	for _, sheetName := range sheetNames {
		grid, err := parser.ExtractRows(f, sheetName, opts.Mode == ModeTyped)
		if err != nil {
			return nil, NewSheetError(sheetName, "rows", err)
		}
		wb.Add(sheetName, parser.BuildTable(grid, opts.Mode == ModeTyped, opts.TrimHeaders))
	}

	return wb, nil
}

// LoadFirst reads a single sheet: the one named in opts, or the first sheet.
func LoadFirst(path string, opts Options) (*models.Table, error) {
	if opts.WantsAllSheets() {
		opts.Sheet = ""
	}
	wb, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	t, _ := wb.Sheet(wb.Names()[0])
	return t, nil
}

// selectSheets resolves the sheet selector against the workbook's sheet list.
func selectSheets(f *excelize.File, opts Options) ([]string, error) {
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat)
	}

	switch {
	case opts.WantsAllSheets():
		return sheetList, nil
	case opts.Sheet == "":
		return sheetList[:1], nil
	}

	idx, err := f.GetSheetIndex(opts.Sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, opts.Sheet)
	}
	return []string{opts.Sheet}, nil
}
