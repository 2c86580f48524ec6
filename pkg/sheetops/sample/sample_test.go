package sample

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetops-go/pkg/sheetops"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
)

func TestRows(t *testing.T) {
	tbl := Rows()
	assert.Equal(t, []string{"Date", "Category", "Amount", "Notes"}, tbl.Columns)
	require.Equal(t, 6, tbl.Len())
	assert.Equal(t, models.Text("Rent"), tbl.Rows[3][1])
	assert.Equal(t, models.Number(500), tbl.Rows[3][2])

	// callers get their own copy
	tbl.Rows[0][1] = models.Text("changed")
	assert.Equal(t, models.Text("Food"), Rows().Rows[0][1])
}

func TestCreateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Input.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	require.NoError(t, Create(path))

	tbl, err := sheetops.LoadFirst(path, sheetops.Options{Mode: sheetops.ModeTyped, TrimHeaders: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Category", "Amount", "Notes"}, tbl.Columns)
	require.Equal(t, 6, tbl.Len())
	assert.Equal(t, models.Number(45662), tbl.Rows[0][0])
	assert.Equal(t, models.Text("Food"), tbl.Rows[0][1])
	assert.Equal(t, models.Number(50), tbl.Rows[0][2])
	assert.Equal(t, models.Text("Groceries"), tbl.Rows[0][3])
}
