// Package render converts tables into a self-contained HTML page.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
)

var tableTmpl = template.Must(template.New("table").Parse(
	`<table border="0" class="dataframe tbl" id="{{.ID}}">
  <thead>
    <tr style="text-align: right;">
{{- range .Columns}}
      <th>{{.}}</th>
{{- end}}
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>
{{- range .}}
      <td>{{.}}</td>
{{- end}}
    </tr>
{{- end}}
  </tbody>
</table>`))

var sectionTmpl = template.Must(template.New("section").Parse("<h2>{{.Name}}</h2>\n{{.Table}}"))

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Excel to HTML</title>
<style>
    body { font-family: Arial, Helvetica, sans-serif; margin: 24px; }
    h2 { margin-top: 32px; }
    table.tbl { border-collapse: collapse; width: 100%; }
    table.tbl th, table.tbl td { border: 1px solid #ddd; padding: 8px; }
    table.tbl tr:nth-child(even) { background: #f9f9f9; }
    table.tbl th { background: #f1f1f1; text-align: left; }
</style>
</head>
<body>
{{.}}
</body>
</html>`))

// Table renders t as an HTML table with class "tbl" and the given id.
// Missing cells render as na. All text is escaped.
func Table(t *models.Table, id, na string) (string, error) {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			if v.IsMissing() {
				cells[j] = na
			} else {
				cells[j] = v.String()
			}
		}
		rows[i] = cells
	}

	var b strings.Builder
	err := tableTmpl.Execute(&b, struct {
		ID      string
		Columns []string
		Rows    [][]string
	}{id, t.Columns, rows})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Page renders a single table, with id "table1", as a complete HTML document.
func Page(t *models.Table, na string) (string, error) {
	table, err := Table(t, "table1", na)
	if err != nil {
		return "", err
	}
	return document(template.HTML(table))
}

// Workbook renders every sheet of wb, in order, as a heading followed by
// its table (ids "tbl_1", "tbl_2", ...) in one HTML document.
func Workbook(wb *models.Workbook, na string) (string, error) {
	var body strings.Builder
	for i, name := range wb.Names() {
		t, _ := wb.Sheet(name)
		table, err := Table(t, fmt.Sprintf("tbl_%d", i+1), na)
		if err != nil {
			return "", fmt.Errorf("sheet %q: %w", name, err)
		}
		err = sectionTmpl.Execute(&body, struct {
			Name  string
			Table template.HTML
		}{name, template.HTML(table)})
		if err != nil {
			return "", fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	return document(template.HTML(body.String()))
}

func document(body template.HTML) (string, error) {
	var b strings.Builder
	if err := pageTmpl.Execute(&b, body); err != nil {
		return "", err
	}
	return b.String(), nil
}
