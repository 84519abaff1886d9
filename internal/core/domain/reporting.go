package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariationResult compares the latest value of a key to the value before it.
// VariationPercent is nil when there is no previous value or it is zero.
type VariationResult struct {
	Key              string           `json:"key"`
	CurrentValue     decimal.Decimal  `json:"currentValue"`
	CurrentAt        time.Time        `json:"currentAt"`
	PreviousValue    *decimal.Decimal `json:"previousValue"`
	PreviousAt       *time.Time       `json:"previousAt"`
	VariationPercent *decimal.Decimal `json:"variationPercent"`
}

// MonthlySummary is the month-closing view of one key for a target period.
// PeriodValue is the closing value of the preceding month, if any.
type MonthlySummary struct {
	Key          string           `json:"key"`
	Meta         SeriesMeta       `json:"meta"`
	ClosingValue decimal.Decimal  `json:"closingValue"`
	ClosingDate  time.Time        `json:"closingDate"`
	PeriodValue  *decimal.Decimal `json:"periodValue"`
	PeriodDate   *time.Time       `json:"periodDate"`
	YTDAverage   decimal.Decimal  `json:"ytdAverage"`
	YTDCount     int              `json:"ytdCount"`
}

// StoreStatistics are the aggregate counters the store computes over a whole table.
type StoreStatistics struct {
	TotalRecords int64      `json:"totalRecords"`
	TotalKeys    int64      `json:"totalKeys"`
	FirstRecord  *time.Time `json:"firstRecord"`
	LastUpdate   *time.Time `json:"lastUpdate"`
}

// Statistics combines store counters with the current per-key variations.
type Statistics struct {
	StoreStatistics
	Variations []VariationResult `json:"variations"`
}

// SyncLogEntry is a row of the ingestion job log. It is returned as stored.
type SyncLogEntry struct {
	ID              int64     `json:"id"`
	SyncType        string    `json:"syncType"`
	Status          string    `json:"status"`
	MetalsUpdated   int       `json:"metalsUpdated"`
	ErrorMessage    *string   `json:"errorMessage"`
	DurationSeconds *float64  `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
}
