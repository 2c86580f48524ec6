// Package sample builds the fixed expense workbook used by the demo.
package sample

import (
	"time"

	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/writer"
)

// SheetName is the sheet the sample rows are written to.
const SheetName = "Sheet1"

type expense struct {
	date     time.Time
	category string
	amount   float64
	note     string
}

var expenses = []expense{
	{day(2025, time.January, 5), "Food", 50, "Groceries"},
	{day(2025, time.January, 10), "Transport", 20, "Bus fare"},
	{day(2025, time.February, 3), "Food", 30, "Lunch"},
	{day(2025, time.February, 15), "Rent", 500, "Monthly rent"},
	{day(2025, time.March, 7), "Transport", 25, "Taxi"},
	{day(2025, time.March, 20), "Food", 45, "Dinner"},
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Rows returns the six sample rows as a table with Date, Category, Amount
// and Notes columns.
func Rows() *models.Table {
	t := models.NewTable("Date", "Category", "Amount", "Notes")
	for _, e := range expenses {
		t.Rows = append(t.Rows, []models.Value{
			models.Date(e.date),
			models.Text(e.category),
			models.Number(e.amount),
			models.Text(e.note),
		})
	}
	return t
}

// Create writes the sample rows to a new workbook at path, overwriting any
// existing file.
func Create(path string) error {
	return writer.WriteSheets(path, []writer.NamedTable{{Name: SheetName, Table: Rows()}})
}
