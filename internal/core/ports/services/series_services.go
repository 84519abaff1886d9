package services

import (
	"context"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// SeriesReaderSvc defines the read operations offered over a time series.
type SeriesReaderSvc[R any] interface {
	// Latest returns the most recent record per key, ordered by key.
	Latest(ctx context.Context) ([]R, error)

	// History returns a page of records matching the filter, newest first.
	History(ctx context.Context, filter domain.HistoryFilter, pageSize int, after *domain.SeriesCursor) (*domain.HistoryPage[R], error)

	// Statistics returns table-wide counters and the current variations.
	Statistics(ctx context.Context) (*domain.Statistics, error)
}

// SeriesAnalyticsSvc defines the derived views computed over a time series.
type SeriesAnalyticsSvc interface {
	// Variations compares the two most recent records of each key. A nil filter
	// considers the whole table; otherwise only records inside the filter window count.
	Variations(ctx context.Context, filter *domain.HistoryFilter) ([]domain.VariationResult, error)

	// MonthlySummary builds the closing, prior month closing and year-to-date average
	// per key for a calendar month. An empty key selects every key.
	MonthlySummary(ctx context.Context, period domain.Period, key string) ([]domain.MonthlySummary, error)

	// Pivot reshapes the filtered records into a key by day table.
	Pivot(ctx context.Context, filter domain.HistoryFilter) (*domain.PivotTable, error)
}

// SeriesSvc combines the read and analytics operations of a series.
type SeriesSvc[R any] interface {
	SeriesReaderSvc[R]
	SeriesAnalyticsSvc
}

// PriceSvcFacade serves the metal price series.
type PriceSvcFacade interface {
	SeriesSvc[domain.PriceRecord]
}

// RateSvcFacade serves the exchange rate series.
type RateSvcFacade interface {
	SeriesSvc[domain.RateRecord]
}
