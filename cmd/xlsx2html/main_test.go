package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeBook(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "January"))
	f.SetCellValue("January", "A1", "Item")
	f.SetCellValue("January", "B1", "Cost")
	f.SetCellValue("January", "A2", "Tea")
	f.SetCellValue("January", "A3", "Cake")
	f.SetCellValue("January", "B3", 4)

	_, err := f.NewSheet("February")
	require.NoError(t, err)
	f.SetCellValue("February", "A1", "Item")
	f.SetCellValue("February", "A2", "Soup")

	path := filepath.Join(dir, "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunStdoutFirstSheet(t *testing.T) {
	path := writeBook(t, t.TempDir())

	html, err := execute(t, path, "--na=-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Equal(t, 1, strings.Count(html, "<table"))
	assert.Contains(t, html, "<td>Tea</td>")
	assert.Contains(t, html, "<td>-</td>")
	assert.NotContains(t, html, "Soup")
}

func TestRunAllSheetsToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeBook(t, dir)
	outPath := filepath.Join(dir, "out.html")

	msg, err := execute(t, path, "--sheet", "all", "--out", outPath)
	require.NoError(t, err)
	assert.Equal(t, "Written HTML to: "+outPath+"\n", msg)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	html := string(data)
	assert.Equal(t, 2, strings.Count(html, "<table"))
	assert.Less(t, strings.Index(html, "<h2>January</h2>"), strings.Index(html, "<h2>February</h2>"))
}

func TestRunMissingSheetWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := writeBook(t, dir)
	outPath := filepath.Join(dir, "out.html")

	_, err := execute(t, path, "--sheet", "March", "--out", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet not found")

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	_, err = execute(t)
	assert.Error(t, err)
}
