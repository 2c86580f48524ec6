package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/sheetops-go/pkg/sheetops/models"
)

// Filter keeps the rows for which keep returns true.
func Filter(t *models.Table, keep func(row []models.Value) bool) *models.Table {
	out := models.NewTable(t.Columns...)
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, append([]models.Value(nil), row...))
		}
	}
	return out
}

// FilterPositive keeps the rows where the numeric column is greater than zero.
func FilterPositive(t *models.Table, col string) (*models.Table, error) {
	idx := t.ColumnIndex(col)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", col)
	}
	return Filter(t, func(row []models.Value) bool {
		return row[idx].Kind == models.KindNumber && row[idx].Num > 0
	}), nil
}

type group struct {
	keys []models.Value
	sum  decimal.Decimal
}

// GroupSum sums valueCol per distinct combination of keys and sorts the
// result ascending by the keys. Rows with a missing key are skipped and
// non-numeric values count as zero. The result has the key columns
// followed by valueCol.
func GroupSum(t *models.Table, keys []string, valueCol string) (*models.Table, error) {
	keyIdx, err := indexes(t, keys...)
	if err != nil {
		return nil, err
	}
	valIdx, err := indexes(t, valueCol)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*group)
	for _, row := range t.Rows {
		kv, ok := keyValues(row, keyIdx)
		if !ok {
			continue
		}
		id := groupID(kv)
		g, ok := groups[id]
		if !ok {
			g = &group{keys: kv}
			groups[id] = g
		}
		g.sum = g.sum.Add(numeric(row[valIdx[0]]))
	}

	sorted := make([]*group, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return compareKeys(sorted[i].keys, sorted[j].keys) < 0
	})

	out := models.NewTable(append(append([]string(nil), keys...), valueCol)...)
	for _, g := range sorted {
		row := append(append([]models.Value(nil), g.keys...), models.Number(g.sum.InexactFloat64()))
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// Pivot reshapes t so distinct index values become rows and distinct
// columns values become columns, each cell holding the sum of value.
// Rows and columns are sorted ascending; empty combinations are zero.
// The first result column is named after index.
func Pivot(t *models.Table, index, columns, value string) (*models.Table, error) {
	idx, err := indexes(t, index, columns, value)
	if err != nil {
		return nil, err
	}

	var rowKeys, colKeys []models.Value
	seenRow := make(map[string]bool)
	seenCol := make(map[string]bool)
	cells := make(map[[2]string]decimal.Decimal)
	for _, row := range t.Rows {
		r, c := row[idx[0]], row[idx[1]]
		if r.IsMissing() || c.IsMissing() {
			continue
		}
		rid, cid := groupID([]models.Value{r}), groupID([]models.Value{c})
		if !seenRow[rid] {
			seenRow[rid] = true
			rowKeys = append(rowKeys, r)
		}
		if !seenCol[cid] {
			seenCol[cid] = true
			colKeys = append(colKeys, c)
		}
		k := [2]string{rid, cid}
		cells[k] = cells[k].Add(numeric(row[idx[2]]))
	}

	sortValues(rowKeys)
	sortValues(colKeys)

	header := []string{index}
	for _, c := range colKeys {
		header = append(header, c.String())
	}
	out := models.NewTable(header...)
	for _, r := range rowKeys {
		rid := groupID([]models.Value{r})
		row := []models.Value{r}
		for _, c := range colKeys {
			// missing combinations read as the zero decimal
			sum := cells[[2]string{rid, groupID([]models.Value{c})}]
			row = append(row, models.Number(sum.InexactFloat64()))
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func indexes(t *models.Table, cols ...string) ([]int, error) {
	out := make([]int, len(cols))
	for i, c := range cols {
		out[i] = t.ColumnIndex(c)
		if out[i] < 0 {
			return nil, fmt.Errorf("column %q not found", c)
		}
	}
	return out, nil
}

func keyValues(row []models.Value, idx []int) ([]models.Value, bool) {
	kv := make([]models.Value, len(idx))
	for i, j := range idx {
		if row[j].IsMissing() {
			return nil, false
		}
		kv[i] = row[j]
	}
	return kv, true
}

// groupID builds an exact-match key; the kind prefix keeps 1 and "1" apart.
func groupID(kv []models.Value) string {
	var b strings.Builder
	for _, v := range kv {
		fmt.Fprintf(&b, "%d:%s\x00", v.Kind, v.String())
	}
	return b.String()
}

func compareKeys(a, b []models.Value) int {
	for i := range a {
		if c := models.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func sortValues(vs []models.Value) {
	sort.Slice(vs, func(i, j int) bool {
		return models.Compare(vs[i], vs[j]) < 0
	})
}

func numeric(v models.Value) decimal.Decimal {
	if v.Kind != models.KindNumber {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v.Num)
}
