package services

import (
	"context"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// ExportSvc renders pivot tables as downloadable documents.
type ExportSvc interface {
	// ExportPrices renders the metal price pivot for the filter.
	ExportPrices(ctx context.Context, filter domain.HistoryFilter, format domain.ExportFormat) (*domain.ExportDocument, error)

	// ExportRates renders the exchange rate pivot for the filter.
	ExportRates(ctx context.Context, filter domain.HistoryFilter, format domain.ExportFormat) (*domain.ExportDocument, error)
}
