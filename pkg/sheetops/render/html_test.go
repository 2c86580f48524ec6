package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
)

func sampleTable(t *testing.T) *models.Table {
	t.Helper()
	tbl := models.NewTable("Name", "Note")
	require.NoError(t, tbl.AppendRow(models.Text("a<b"), models.Missing()))
	require.NoError(t, tbl.AppendRow(models.Text("c"), models.Text("ok")))
	return tbl
}

func TestTable(t *testing.T) {
	html, err := Table(sampleTable(t), "table1", "N/A")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, `<table border="0" class="dataframe tbl" id="table1">`))
	assert.Contains(t, html, "<th>Name</th>")
	assert.Contains(t, html, "<td>a&lt;b</td>")
	assert.Contains(t, html, "<td>N/A</td>")
	assert.Equal(t, 3, strings.Count(html, "<tr"))
}

func TestTableDefaultPlaceholder(t *testing.T) {
	html, err := Table(sampleTable(t), "t", "")
	require.NoError(t, err)
	assert.Contains(t, html, "<td></td>")
}

func TestPage(t *testing.T) {
	html, err := Page(sampleTable(t), "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<style>")
	assert.Contains(t, html, "table.tbl tr:nth-child(even) { background: #f9f9f9; }")
	assert.Contains(t, html, `id="table1"`)
	assert.Equal(t, 1, strings.Count(html, "<table"))
	assert.NotContains(t, html, "<h2>")
}

func TestWorkbook(t *testing.T) {
	wb := models.NewWorkbook("book.xlsx")
	names := []string{"Zeta", "Alpha", "Q&A"}
	for _, n := range names {
		wb.Add(n, sampleTable(t))
	}

	html, err := Workbook(wb, "")
	require.NoError(t, err)

	assert.Equal(t, len(names), strings.Count(html, "<table"))
	zeta := strings.Index(html, "<h2>Zeta</h2>\n<table")
	alpha := strings.Index(html, "<h2>Alpha</h2>")
	qa := strings.Index(html, "<h2>Q&amp;A</h2>")
	require.True(t, zeta >= 0 && alpha >= 0 && qa >= 0, html)
	assert.Less(t, zeta, alpha)
	assert.Less(t, alpha, qa)
	assert.Contains(t, html, `id="tbl_1"`)
	assert.Contains(t, html, `id="tbl_3"`)
}
