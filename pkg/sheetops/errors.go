package sheetops

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist or cannot be read.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// SheetError represents an error while reading one sheet.
type SheetError struct {
	SheetName string
	Component string // "rows"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("read error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, component string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
