package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// RateRecord is an exchange rate of QuoteCurrency against BaseCurrency effective on RefDate.
// Rates are grouped by QuoteCurrency.
type RateRecord struct {
	ID            int64           `json:"id"`
	BaseCurrency  string          `json:"baseCurrency"`
	QuoteCurrency string          `json:"quoteCurrency"`
	RefDate       time.Time       `json:"refDate"`
	Rate          decimal.Decimal `json:"rate"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SeriesKey returns the quote currency code.
func (r RateRecord) SeriesKey() string { return r.QuoteCurrency }

// ObservedAt returns the reference date of the rate.
func (r RateRecord) ObservedAt() time.Time { return r.RefDate }

// DateOnly reports that RefDate is a calendar date. Its year, month and day are used as
// stored, whatever the report location.
func (r RateRecord) DateOnly() bool { return true }

// Sequence returns the ingestion sequence number.
func (r RateRecord) Sequence() int64 { return r.ID }

// Amount returns the rate value.
func (r RateRecord) Amount() decimal.Decimal { return r.Rate }

// Meta describes a rate row: the base currency it is expressed in.
func (r RateRecord) Meta() SeriesMeta {
	return SeriesMeta{Currency: r.BaseCurrency}
}
