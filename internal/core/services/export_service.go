package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/market_prices_app/internal/apperrors"
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
	"github.com/SscSPs/market_prices_app/internal/core/timeseries"
	"github.com/SscSPs/market_prices_app/internal/export"
)

// ExportLayout describes how one series is rendered.
type ExportLayout struct {
	FilePrefix  string
	SheetName   string
	HeaderLabel string
	Places      int32
}

// DefaultPriceLayout and DefaultRateLayout are the layouts used when none is configured.
var (
	DefaultPriceLayout = ExportLayout{FilePrefix: "Metal_Prices", SheetName: "Metal Prices", HeaderLabel: "Product / Date", Places: timeseries.PricePlaces}
	DefaultRateLayout  = ExportLayout{FilePrefix: "Exchange_Rates", SheetName: "Exchange Rates", HeaderLabel: "Currency / Date", Places: timeseries.RatePlaces}
)

type exportService struct {
	BaseService
	prices      portssvc.SeriesAnalyticsSvc
	rates       portssvc.SeriesAnalyticsSvc
	priceLayout ExportLayout
	rateLayout  ExportLayout
	dateLayout  string
	location    *time.Location
	now         func() time.Time
}

// ExportServiceOption is a functional option for configuring the export service
type ExportServiceOption func(*exportService)

// WithExportLayouts overrides the price and rate layouts.
func WithExportLayouts(prices, rates ExportLayout) ExportServiceOption {
	return func(s *exportService) {
		s.priceLayout = prices
		s.rateLayout = rates
	}
}

// WithExportDateLayout sets the layout of the date column headers.
func WithExportDateLayout(layout string) ExportServiceOption {
	return func(s *exportService) {
		s.dateLayout = layout
	}
}

// WithExportLocation sets the timezone used for the file name timestamp.
func WithExportLocation(loc *time.Location) ExportServiceOption {
	return func(s *exportService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithExportClock overrides the clock used for the file name timestamp.
func WithExportClock(now func() time.Time) ExportServiceOption {
	return func(s *exportService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewExportService creates a new export service rendering the pivots of prices and rates
func NewExportService(prices, rates portssvc.SeriesAnalyticsSvc, options ...ExportServiceOption) portssvc.ExportSvc {
	svc := &exportService{
		prices:      prices,
		rates:       rates,
		priceLayout: DefaultPriceLayout,
		rateLayout:  DefaultRateLayout,
		dateLayout:  domain.DefaultExportDateLayout,
		location:    time.UTC,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExportSvc = (*exportService)(nil)

// ExportPrices renders the metal price pivot for the filter.
func (s *exportService) ExportPrices(ctx context.Context, filter domain.HistoryFilter, format domain.ExportFormat) (*domain.ExportDocument, error) {
	return s.render(ctx, s.prices, s.priceLayout, filter, format)
}

// ExportRates renders the exchange rate pivot for the filter.
func (s *exportService) ExportRates(ctx context.Context, filter domain.HistoryFilter, format domain.ExportFormat) (*domain.ExportDocument, error) {
	return s.render(ctx, s.rates, s.rateLayout, filter, format)
}

func (s *exportService) render(ctx context.Context, series portssvc.SeriesAnalyticsSvc, layout ExportLayout, filter domain.HistoryFilter, format domain.ExportFormat) (*domain.ExportDocument, error) {
	table, err := series.Pivot(ctx, filter)
	if err != nil {
		return nil, err
	}
	if table.IsEmpty() {
		return nil, fmt.Errorf("nothing to export for %s: %w", layout.FilePrefix, apperrors.ErrEmptyResult)
	}

	opts := export.Options{
		SheetName:   layout.SheetName,
		HeaderLabel: layout.HeaderLabel,
		DateLayout:  s.dateLayout,
		Format:      timeseries.ValueFormat{Places: layout.Places},
		BOMPrefix:   true,
	}

	var body []byte
	switch format {
	case domain.ExportCSV:
		body, err = export.WriteCSV(table, opts)
	case domain.ExportXLSX, "":
		format = domain.ExportXLSX
		body, err = export.WriteXLSX(table, opts)
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to render export", slog.String("prefix", layout.FilePrefix), slog.String("format", string(format)))
		return nil, fmt.Errorf("failed to render %s export: %w", layout.FilePrefix, err)
	}

	doc := &domain.ExportDocument{
		Filename:    fmt.Sprintf("%s_%s.%s", layout.FilePrefix, s.now().In(s.location).Format("20060102_150405"), format),
		ContentType: format.ContentType(),
		Body:        body,
		Rows:        len(table.RowKeys),
		Columns:     len(table.ColumnDates),
	}
	s.LogInfo(ctx, "Export rendered",
		slog.String("filename", doc.Filename),
		slog.Int("rows", doc.Rows),
		slog.Int("columns", doc.Columns),
		slog.Int("bytes", len(body)))
	return doc, nil
}
