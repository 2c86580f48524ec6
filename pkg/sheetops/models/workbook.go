package models

// Workbook represents an insertion-ordered mapping of sheet name to table.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string
	names    []string
	sheets   map[string]*Table
}

// NewWorkbook creates an empty workbook.
func NewWorkbook(bookName string) *Workbook {
	return &Workbook{
		BookName: bookName,
		sheets:   make(map[string]*Table),
	}
}

// Add stores a sheet. Re-adding a name replaces the table but keeps its position.
func (w *Workbook) Add(name string, t *Table) {
	if _, ok := w.sheets[name]; !ok {
		w.names = append(w.names, name)
	}
	w.sheets[name] = t
}

// Names returns sheet names in insertion order.
func (w *Workbook) Names() []string {
	return append([]string(nil), w.names...)
}

// Sheet returns the named table.
func (w *Workbook) Sheet(name string) (*Table, bool) {
	t, ok := w.sheets[name]
	return t, ok
}

// Len returns the number of sheets.
func (w *Workbook) Len() int {
	return len(w.names)
}
