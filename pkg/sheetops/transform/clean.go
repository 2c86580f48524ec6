// Package transform implements the table operations of the demo pipeline.
// Every operation returns a new table and leaves its input untouched.
package transform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
	"github.com/xuri/excelize/v2"
)

// dateLayouts are tried in order when a text cell is parsed as a date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"1/2/06 15:04",
	"01-02-06",
}

// DropEmptyRows removes rows where every cell is missing.
func DropEmptyRows(t *models.Table) *models.Table {
	out := models.NewTable(t.Columns...)
	for _, row := range t.Rows {
		for _, v := range row {
			if !v.IsMissing() {
				out.Rows = append(out.Rows, append([]models.Value(nil), row...))
				break
			}
		}
	}
	return out
}

// EnsureColumn appends a column holding v on every row when name is absent.
func EnsureColumn(t *models.Table, name string, v models.Value) *models.Table {
	if t.HasColumn(name) {
		return t.Clone()
	}
	values := make([]models.Value, t.Len())
	for i := range values {
		values[i] = v
	}
	out, _ := t.WithColumn(name, values)
	return out
}

// CoerceNumeric converts the named column to numbers. Numeric text is
// parsed; anything else becomes zero.
func CoerceNumeric(t *models.Table, col string) (*models.Table, error) {
	return mapColumn(t, col, toNumber)
}

func toNumber(v models.Value) models.Value {
	switch v.Kind {
	case models.KindNumber:
		return v
	case models.KindText:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64); err == nil {
			return models.Number(f)
		}
	}
	return models.Number(0)
}

// ParseDates converts the named column to dates. Numbers are read as Excel
// serial dates and text is tried against a fixed set of layouts. Anything
// that does not parse becomes missing.
func ParseDates(t *models.Table, col string) (*models.Table, error) {
	return mapColumn(t, col, toDate)
}

func toDate(v models.Value) models.Value {
	switch v.Kind {
	case models.KindDate:
		return v
	case models.KindNumber:
		if tm, err := excelize.ExcelDateToTime(v.Num, false); err == nil {
			return models.Date(tm)
		}
	case models.KindText:
		s := strings.TrimSpace(v.Str)
		for _, layout := range dateLayouts {
			if tm, err := time.Parse(layout, s); err == nil {
				return models.Date(tm)
			}
		}
	}
	return models.Missing()
}

// DeriveYearMonth adds out holding the "YYYY-MM" period of the date column.
// Missing dates give missing periods.
func DeriveYearMonth(t *models.Table, dateCol, out string) (*models.Table, error) {
	dates := t.Column(dateCol)
	if !t.HasColumn(dateCol) {
		return nil, fmt.Errorf("column %q not found", dateCol)
	}
	periods := make([]models.Value, len(dates))
	for i, d := range dates {
		if d.Kind == models.KindDate {
			periods[i] = models.Text(d.Time.Format("2006-01"))
		} else {
			periods[i] = models.Missing()
		}
	}
	return t.WithColumn(out, periods)
}

// DeriveVAT adds out holding round(amount * rate, 2) for every row.
// Rounding is half-to-even. The amount column must already be numeric.
func DeriveVAT(t *models.Table, amountCol, out string, rate float64) (*models.Table, error) {
	amounts := t.Column(amountCol)
	if !t.HasColumn(amountCol) {
		return nil, fmt.Errorf("column %q not found", amountCol)
	}
	r := decimal.NewFromFloat(rate)
	vat := make([]models.Value, len(amounts))
	for i, a := range amounts {
		if a.Kind != models.KindNumber {
			return nil, fmt.Errorf("column %q row %d is not numeric", amountCol, i)
		}
		vat[i] = models.Number(decimal.NewFromFloat(a.Num).Mul(r).RoundBank(2).InexactFloat64())
	}
	return t.WithColumn(out, vat)
}

// VATColumn names the VAT column for a rate, e.g. "VAT_20" for 0.20.
func VATColumn(rate float64) string {
	return "VAT_" + decimal.NewFromFloat(rate).Shift(2).String()
}

func mapColumn(t *models.Table, col string, fn func(models.Value) models.Value) (*models.Table, error) {
	idx := t.ColumnIndex(col)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", col)
	}
	out := t.Clone()
	for _, row := range out.Rows {
		row[idx] = fn(row[idx])
	}
	return out, nil
}
