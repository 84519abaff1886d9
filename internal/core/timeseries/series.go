// Package timeseries holds the pure transformations applied to price and rate rows:
// latest value per key, variations, monthly summaries, pivots and filter normalization.
// Nothing in this package performs I/O.
package timeseries

import (
	"cmp"
	"slices"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Series is implemented by every record the engine works on.
type Series interface {
	SeriesKey() string
	ObservedAt() time.Time
	Sequence() int64
	Amount() decimal.Decimal
	Meta() domain.SeriesMeta
}

// compareRecords orders records chronologically: timestamp first, then ingestion sequence.
func compareRecords[R Series](a, b R) int {
	if c := a.ObservedAt().Compare(b.ObservedAt()); c != 0 {
		return c
	}
	return cmp.Compare(a.Sequence(), b.Sequence())
}

// newer reports whether a comes strictly after b in chronological order.
func newer[R Series](a, b R) bool {
	return compareRecords(a, b) > 0
}

// sortNewestFirst sorts records in place, most recent first.
func sortNewestFirst[R Series](records []R) {
	slices.SortStableFunc(records, func(a, b R) int {
		return compareRecords(b, a)
	})
}

// groupByKey splits records per series key. The returned slices are fresh copies and the
// keys come back sorted.
func groupByKey[R Series](records []R) (map[string][]R, []string) {
	groups := make(map[string][]R)
	for _, r := range records {
		groups[r.SeriesKey()] = append(groups[r.SeriesKey()], r)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return groups, keys
}

// dateOnly is implemented by records whose timestamp is a calendar date with no time of
// day, such as a DATE column. Their stored year, month and day are kept as is instead of
// being converted into the report location.
type dateOnly interface {
	DateOnly() bool
}

// localTime returns the observation time of r expressed in loc.
func localTime[R Series](r R, loc *time.Location) time.Time {
	if d, ok := any(r).(dateOnly); ok && d.DateOnly() {
		y, m, day := r.ObservedAt().Date()
		return time.Date(y, m, day, 0, 0, 0, 0, loc)
	}
	return r.ObservedAt().In(loc)
}

// civilDay truncates t to midnight of its calendar day in loc.
func civilDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
