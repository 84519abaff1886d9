package timeseries

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/market_prices_app/internal/apperrors"
	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// RowOrder selects how pivot rows are ordered.
type RowOrder int

const (
	// RowOrderAlphabetical sorts row keys ascending. It is the default.
	RowOrderAlphabetical RowOrder = iota
	// RowOrderFirstSeen keeps the order in which row keys first appear in the input.
	RowOrderFirstSeen
)

// DuplicatePolicy decides what happens when several records land on the same
// (row, day) cell.
type DuplicatePolicy int

const (
	// DuplicateKeepLatest keeps the most recent record of the day. It is the default.
	DuplicateKeepLatest DuplicatePolicy = iota
	// DuplicateKeepEarliest keeps the first record of the day.
	DuplicateKeepEarliest
	// DuplicateReject fails the pivot with ErrDuplicateCell.
	DuplicateReject
)

// ErrDuplicateCell is returned by BuildPivot under DuplicateReject.
var ErrDuplicateCell = fmt.Errorf("%w: more than one value for the same row and day", apperrors.ErrDuplicate)

// PivotOptions configures BuildPivot. The zero value pivots by series key, in UTC days,
// alphabetical rows and keeps the latest value of each day.
type PivotOptions[R Series] struct {
	Location   *time.Location
	RowOrder   RowOrder
	Duplicates DuplicatePolicy
	// RowKey overrides the row label; nil uses SeriesKey.
	RowKey func(R) string
}

type cellRef struct {
	row string
	day string
}

// BuildPivot reshapes long rows into a table with one row per key and one column per
// calendar day that has data. Days without any record never become columns, and a
// (row, day) pair without a record stays blank rather than zero.
func BuildPivot[R Series](records []R, opts PivotOptions[R]) (*domain.PivotTable, error) {
	loc := orUTC(opts.Location)
	rowKeyOf := opts.RowKey
	if rowKeyOf == nil {
		rowKeyOf = func(r R) string { return r.SeriesKey() }
	}

	chosen := make(map[cellRef]R)
	days := make(map[string]time.Time)
	newestInRow := make(map[string]R)
	var firstSeen []string

	for _, r := range records {
		row := rowKeyOf(r)
		day := civilDay(localTime(r, loc), loc)
		ref := cellRef{row: row, day: day.Format(domain.DayLayout)}

		days[ref.day] = day
		if current, ok := newestInRow[row]; !ok {
			firstSeen = append(firstSeen, row)
			newestInRow[row] = r
		} else if newer(r, current) {
			newestInRow[row] = r
		}

		existing, taken := chosen[ref]
		if !taken {
			chosen[ref] = r
			continue
		}
		switch opts.Duplicates {
		case DuplicateReject:
			return nil, fmt.Errorf("%w: %q on %s", ErrDuplicateCell, row, ref.day)
		case DuplicateKeepEarliest:
			if newer(existing, r) {
				chosen[ref] = r
			}
		default:
			if newer(r, existing) {
				chosen[ref] = r
			}
		}
	}

	columns := make([]time.Time, 0, len(days))
	for _, d := range days {
		columns = append(columns, d)
	}
	slices.SortFunc(columns, func(a, b time.Time) int { return a.Compare(b) })

	rows := slices.Clone(firstSeen)
	if opts.RowOrder == RowOrderAlphabetical {
		slices.Sort(rows)
	}
	if rows == nil {
		rows = []string{}
	}

	table := domain.NewPivotTable(rows, columns)
	for ref, r := range chosen {
		table.Set(ref.row, days[ref.day], r.Amount())
	}
	for row, r := range newestInRow {
		table.RowMetadata[row] = r.Meta()
	}
	return table, nil
}
