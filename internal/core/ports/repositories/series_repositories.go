package repositories

import (
	"context"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// SeriesReader defines read operations over a time series table.
// Implementations return records newest first and never return a nil slice on success.
type SeriesReader[R any] interface {
	// FetchLatestPerKey retrieves up to depth of the newest records for every key.
	FetchLatestPerKey(ctx context.Context, depth int) ([]R, error)

	// FetchHistory retrieves records matching the query, newest first, honouring its Limit.
	FetchHistory(ctx context.Context, query domain.SeriesQuery) ([]R, error)

	// FetchStatistics retrieves table-wide counters.
	FetchStatistics(ctx context.Context) (*domain.StoreStatistics, error)
}

// PriceRepositoryFacade gives access to the metal price series.
type PriceRepositoryFacade interface {
	SeriesReader[domain.PriceRecord]
}

// RateRepositoryFacade gives access to the exchange rate series.
type RateRepositoryFacade interface {
	SeriesReader[domain.RateRecord]
}
