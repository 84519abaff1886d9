package domain

import (
	"time"
)

// SeriesMeta carries the descriptive attributes of a time series row.
type SeriesMeta struct {
	Currency string `json:"currency"`
	Unit     string `json:"unit,omitempty"`
}

// HistoryFilter holds the raw, caller supplied history filter parameters.
// Dates use the YYYY-MM-DD layout and Month uses YYYY-MM.
type HistoryFilter struct {
	StartDate string
	EndDate   string
	Month     string
	Days      int
	Key       string
}

// SeriesCursor identifies the last row of a history page. From is the lower bound the
// first page was read with, so a relative window does not move while paging.
type SeriesCursor struct {
	Timestamp time.Time
	ID        int64
	From      *time.Time
}

// SeriesQuery is the canonical store query produced from a HistoryFilter.
// From is inclusive and Until is exclusive; nil means no bound.
type SeriesQuery struct {
	From   *time.Time
	Until  *time.Time
	Key    string
	Limit  int
	Before *SeriesCursor
}

// Unbounded reports whether the query has no lower time bound.
func (q SeriesQuery) Unbounded() bool {
	return q.From == nil
}

// HistoryPage is one page of history records, newest first. NextCursor is nil on the last page.
type HistoryPage[R any] struct {
	Records    []R
	NextCursor *SeriesCursor
}
