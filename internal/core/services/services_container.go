package services

import (
	portsrepo "github.com/SscSPs/market_prices_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
	"github.com/SscSPs/market_prices_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	shared := []SeriesServiceOption{
		WithReportLocation(cfg.ReportLocation),
		WithStoreTimeout(cfg.StoreTimeout),
		WithHistoryWindow(cfg.HistoryDefaultDays, cfg.HistoryMaxRows),
		WithExportWindow(cfg.ExportDefaultDays, cfg.ExportMaxRows),
		WithStrictFilters(cfg.StrictFilters),
	}

	container.Prices = NewPriceService(repos.PriceRepo,
		append(shared, WithProductRowLabels(cfg.ExportPriceRowLabel == config.RowLabelProduct))...)
	container.Rates = NewRateService(repos.RateRepo, shared...)

	priceLayout, rateLayout := DefaultPriceLayout, DefaultRateLayout
	priceLayout.Places = cfg.PriceDecimalPlaces
	rateLayout.Places = cfg.RateDecimalPlaces
	if cfg.ExportPriceRowLabel == config.RowLabelMetal {
		priceLayout.HeaderLabel = "Metal / Date"
	}

	container.Export = NewExportService(container.Prices, container.Rates,
		WithExportLayouts(priceLayout, rateLayout),
		WithExportDateLayout(cfg.ExportDateLayout),
		WithExportLocation(cfg.ReportLocation),
	)
	container.SyncLog = NewSyncLogService(repos.SyncLogRepo, cfg.StoreTimeout)
	container.Health = NewHealthService(repos.Health, cfg.StoreTimeout)

	return container
}
