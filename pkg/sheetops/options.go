// Package sheetops loads xlsx workbooks into ordered tables.
package sheetops

import "strings"

// Mode represents how cell values are loaded.
type Mode string

const (
	// ModeText keeps every cell as its formatted text.
	ModeText Mode = "text"
	// ModeTyped parses raw cell values as numbers where possible.
	ModeTyped Mode = "typed"
)

// AllSheets selects every sheet of the workbook.
const AllSheets = "all"

// Options configures loading behavior.
type Options struct {
	// Sheet selects the sheet to load: empty for the first sheet,
	// "all" (any case) for every sheet, otherwise a sheet name.
	Sheet string
	// Mode specifies how cell values are interpreted.
	Mode Mode
	// TrimHeaders strips surrounding whitespace from column names.
	TrimHeaders bool
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeText,
	}
}

// WantsAllSheets returns whether every sheet is selected.
func (o Options) WantsAllSheets() bool {
	return strings.EqualFold(o.Sheet, AllSheets)
}
