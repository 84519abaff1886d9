package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayLayout is the canonical layout of pivot column dates.
const DayLayout = "2006-01-02"

// PivotCell is the content of a pivot cell. Present is false for a blank cell,
// which is not the same thing as a zero value.
type PivotCell struct {
	Value   decimal.Decimal
	Present bool
}

type pivotCoord struct {
	row string
	day string
}

// PivotTable is a wide table with one row per key and one column per calendar day.
type PivotTable struct {
	RowKeys     []string
	ColumnDates []time.Time
	RowMetadata map[string]SeriesMeta

	cells map[pivotCoord]decimal.Decimal
}

// NewPivotTable returns an empty table over the given axes.
func NewPivotTable(rowKeys []string, columnDates []time.Time) *PivotTable {
	return &PivotTable{
		RowKeys:     rowKeys,
		ColumnDates: columnDates,
		RowMetadata: make(map[string]SeriesMeta, len(rowKeys)),
		cells:       make(map[pivotCoord]decimal.Decimal),
	}
}

// Set stores a value for (rowKey, day).
func (t *PivotTable) Set(rowKey string, day time.Time, value decimal.Decimal) {
	t.cells[pivotCoord{row: rowKey, day: day.Format(DayLayout)}] = value
}

// Lookup returns the value at (rowKey, day). The boolean is false for blank cells and
// for coordinates outside the table; it never panics.
func (t *PivotTable) Lookup(rowKey string, day time.Time) (decimal.Decimal, bool) {
	if t == nil || t.cells == nil {
		return decimal.Zero, false
	}
	v, ok := t.cells[pivotCoord{row: rowKey, day: day.Format(DayLayout)}]
	return v, ok
}

// Cell returns the cell at row index r and column index c.
func (t *PivotTable) Cell(r, c int) PivotCell {
	if t == nil || r < 0 || r >= len(t.RowKeys) || c < 0 || c >= len(t.ColumnDates) {
		return PivotCell{}
	}
	v, ok := t.Lookup(t.RowKeys[r], t.ColumnDates[c])
	return PivotCell{Value: v, Present: ok}
}

// Filled returns the number of non-blank cells.
func (t *PivotTable) Filled() int {
	if t == nil {
		return 0
	}
	return len(t.cells)
}

// IsEmpty reports whether the table has no rows or no columns.
func (t *PivotTable) IsEmpty() bool {
	return t == nil || len(t.RowKeys) == 0 || len(t.ColumnDates) == 0
}
