package models

import "fmt"

// Table represents a sheet as named columns and rows of values.
// Every row holds exactly len(Columns) values.
type Table struct {
	// Columns contains the header names in order.
	Columns []string `json:"columns"`
	// Rows contains the data rows aligned with Columns.
	Rows [][]Value `json:"rows,omitempty"`
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// AppendRow appends a row. It fails when the row width does not match the header.
func (t *Table) AppendRow(values ...Value) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.Columns))
	}
	t.Rows = append(t.Rows, append([]Value(nil), values...))
	return nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns a copy of the named column's values, or nil when absent.
func (t *Table) Column(name string) []Value {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]Value, len(t.Rows)),
	}
	for i, row := range t.Rows {
		c.Rows[i] = append([]Value(nil), row...)
	}
	return c
}

// WithColumn returns a copy of the table where the named column holds values.
// An existing column is replaced in place; otherwise it is appended.
func (t *Table) WithColumn(name string, values []Value) (*Table, error) {
	if len(values) != len(t.Rows) {
		return nil, fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), len(t.Rows))
	}
	c := t.Clone()
	idx := c.ColumnIndex(name)
	if idx < 0 {
		c.Columns = append(c.Columns, name)
		for i := range c.Rows {
			c.Rows[i] = append(c.Rows[i], values[i])
		}
		return c, nil
	}
	for i := range c.Rows {
		c.Rows[i][idx] = values[i]
	}
	return c, nil
}
