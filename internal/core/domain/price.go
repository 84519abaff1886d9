package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is a single metal price observation as ingested into metal_prices.
// ID is the ingestion sequence and breaks ties between records sharing a timestamp.
type PriceRecord struct {
	ID        int64           `json:"id"`
	Key       string          `json:"metalType"`
	Timestamp time.Time       `json:"createdAt"`
	Value     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Unit      string          `json:"unit"`
	Source    string          `json:"sourceProductName"`
}

// SeriesKey returns the metal type.
func (p PriceRecord) SeriesKey() string { return p.Key }

// ObservedAt returns the ingestion timestamp of the price.
func (p PriceRecord) ObservedAt() time.Time { return p.Timestamp }

// Sequence returns the ingestion sequence number.
func (p PriceRecord) Sequence() int64 { return p.ID }

// Amount returns the price value.
func (p PriceRecord) Amount() decimal.Decimal { return p.Value }

// Meta returns the currency and unit the price is quoted in.
func (p PriceRecord) Meta() SeriesMeta {
	return SeriesMeta{Currency: p.Currency, Unit: p.Unit}
}

// ProductLabel returns the source product name, falling back to the metal type.
func (p PriceRecord) ProductLabel() string {
	if p.Source == "" {
		return p.Key
	}
	return p.Source
}
