package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	portsrepo "github.com/SscSPs/market_prices_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
	"github.com/SscSPs/market_prices_app/internal/core/timeseries"
)

// seriesSettings holds the tunables shared by the price and rate services.
type seriesSettings struct {
	location       *time.Location
	storeTimeout   time.Duration
	historyDays    int
	historyMaxRows int
	exportDays     int
	exportMaxRows  int
	strict         bool
	productLabels  bool
	duplicates     timeseries.DuplicatePolicy
	now            func() time.Time
}

func defaultSeriesSettings() seriesSettings {
	return seriesSettings{
		location:       time.UTC,
		historyDays:    7,
		historyMaxRows: 500,
		exportDays:     30,
		exportMaxRows:  50000,
		strict:         true,
		duplicates:     timeseries.DuplicateKeepLatest,
		now:            time.Now,
	}
}

// SeriesServiceOption is a functional option for configuring the price and rate services
type SeriesServiceOption func(*seriesSettings)

// WithReportLocation sets the timezone calendar days and months are evaluated in.
func WithReportLocation(loc *time.Location) SeriesServiceOption {
	return func(s *seriesSettings) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithStoreTimeout bounds every record store call.
func WithStoreTimeout(d time.Duration) SeriesServiceOption {
	return func(s *seriesSettings) {
		s.storeTimeout = d
	}
}

// WithHistoryWindow sets the default history window in days and the history row cap.
func WithHistoryWindow(days, maxRows int) SeriesServiceOption {
	return func(s *seriesSettings) {
		s.historyDays = days
		s.historyMaxRows = maxRows
	}
}

// WithExportWindow sets the default pivot window in days and the pivot row cap.
func WithExportWindow(days, maxRows int) SeriesServiceOption {
	return func(s *seriesSettings) {
		s.exportDays = days
		s.exportMaxRows = maxRows
	}
}

// WithStrictFilters selects whether malformed filter values are rejected or ignored.
func WithStrictFilters(strict bool) SeriesServiceOption {
	return func(s *seriesSettings) {
		s.strict = strict
	}
}

// WithProductRowLabels labels price pivot rows with the source product name instead of the metal type.
func WithProductRowLabels(enabled bool) SeriesServiceOption {
	return func(s *seriesSettings) {
		s.productLabels = enabled
	}
}

// WithDuplicatePolicy sets how the pivot resolves several records on the same day.
func WithDuplicatePolicy(policy timeseries.DuplicatePolicy) SeriesServiceOption {
	return func(s *seriesSettings) {
		s.duplicates = policy
	}
}

// WithClock overrides the clock used to anchor relative windows.
func WithClock(now func() time.Time) SeriesServiceOption {
	return func(s *seriesSettings) {
		if now != nil {
			s.now = now
		}
	}
}

// seriesService implements the series read and analytics operations for any record type.
type seriesService[R timeseries.Series] struct {
	BaseService
	name     string
	repo     portsrepo.SeriesReader[R]
	settings seriesSettings
	rowKey   func(R) string
}

type priceService struct {
	*seriesService[domain.PriceRecord]
}

type rateService struct {
	*seriesService[domain.RateRecord]
}

func newSeriesService[R timeseries.Series](name string, repo portsrepo.SeriesReader[R], options ...SeriesServiceOption) *seriesService[R] {
	settings := defaultSeriesSettings()
	for _, option := range options {
		option(&settings)
	}
	return &seriesService[R]{
		BaseService: BaseService{StoreTimeout: settings.storeTimeout},
		name:        name,
		repo:        repo,
		settings:    settings,
	}
}

// NewPriceService creates the metal price service with the provided options
func NewPriceService(repo portsrepo.PriceRepositoryFacade, options ...SeriesServiceOption) portssvc.PriceSvcFacade {
	svc := newSeriesService[domain.PriceRecord]("prices", repo, options...)
	if svc.settings.productLabels {
		svc.rowKey = domain.PriceRecord.ProductLabel
	}
	return priceService{svc}
}

// NewRateService creates the exchange rate service with the provided options
func NewRateService(repo portsrepo.RateRepositoryFacade, options ...SeriesServiceOption) portssvc.RateSvcFacade {
	return rateService{newSeriesService[domain.RateRecord]("rates", repo, options...)}
}

var (
	_ portssvc.PriceSvcFacade = priceService{}
	_ portssvc.RateSvcFacade  = rateService{}
)

func (s *seriesService[R]) normalize(ctx context.Context, filter domain.HistoryFilter, window timeseries.Window, limit int) (domain.SeriesQuery, error) {
	query, issues, err := timeseries.NormalizeFilter(filter, timeseries.NormalizeOptions{
		Now:           s.settings.now(),
		Location:      s.settings.location,
		DefaultWindow: window,
		Strict:        s.settings.strict,
		Limit:         limit,
	})
	if err != nil {
		s.LogDebug(ctx, "Rejected history filter", slog.String("series", s.name), slog.String("error", err.Error()))
		return domain.SeriesQuery{}, err
	}
	for _, issue := range issues {
		s.LogWarn(ctx, "Ignoring malformed filter value",
			slog.String("series", s.name),
			slog.String("field", issue.Field),
			slog.String("value", issue.Value),
			slog.String("reason", issue.Reason))
	}
	return query, nil
}

func (s *seriesService[R]) fetchHistory(ctx context.Context, query domain.SeriesQuery) ([]R, error) {
	storeCtx, cancel := s.StoreContext(ctx)
	defer cancel()

	records, err := s.repo.FetchHistory(storeCtx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch history", slog.String("series", s.name))
		return nil, fmt.Errorf("failed to fetch %s history: %w", s.name, err)
	}
	return records, nil
}

func (s *seriesService[R]) fetchLatest(ctx context.Context, depth int) ([]R, error) {
	storeCtx, cancel := s.StoreContext(ctx)
	defer cancel()

	records, err := s.repo.FetchLatestPerKey(storeCtx, depth)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch latest records", slog.String("series", s.name), slog.Int("depth", depth))
		return nil, fmt.Errorf("failed to fetch latest %s: %w", s.name, err)
	}
	return records, nil
}

// Latest returns the most recent record per key, ordered by key.
func (s *seriesService[R]) Latest(ctx context.Context) ([]R, error) {
	records, err := s.fetchLatest(ctx, 1)
	if err != nil {
		return nil, err
	}
	latest := timeseries.ResolveLatest(records)
	s.LogDebug(ctx, "Resolved latest records", slog.String("series", s.name), slog.Int("keys", len(latest)))
	return latest, nil
}

// History returns a page of records matching the filter, newest first. A pageSize of
// zero or above the configured cap uses the cap.
func (s *seriesService[R]) History(ctx context.Context, filter domain.HistoryFilter, pageSize int, after *domain.SeriesCursor) (*domain.HistoryPage[R], error) {
	if pageSize <= 0 || pageSize > s.settings.historyMaxRows {
		pageSize = s.settings.historyMaxRows
	}

	query, err := s.normalize(ctx, filter, timeseries.LastDays(s.settings.historyDays), pageSize+1)
	if err != nil {
		return nil, err
	}
	query.Before = after
	if after != nil && after.From != nil {
		from := after.From.In(s.settings.location)
		query.From = &from
	}

	records, err := s.fetchHistory(ctx, query)
	if err != nil {
		return nil, err
	}

	page := &domain.HistoryPage[R]{Records: records}
	if len(records) > pageSize {
		page.Records = records[:pageSize]
		last := page.Records[pageSize-1]
		page.NextCursor = &domain.SeriesCursor{Timestamp: last.ObservedAt(), ID: last.Sequence(), From: query.From}
	}
	return page, nil
}

// Variations compares the two most recent records of each key. A filter without any date
// parameter only narrows the keys; it does not apply the default history window.
func (s *seriesService[R]) Variations(ctx context.Context, filter *domain.HistoryFilter) ([]domain.VariationResult, error) {
	var records []R
	var err error
	if filter == nil || !hasWindow(*filter) {
		key := ""
		if filter != nil {
			query, err := s.normalize(ctx, *filter, timeseries.Unbounded(), 0)
			if err != nil {
				return nil, err
			}
			key = query.Key
		}
		records, err = s.fetchLatest(ctx, 2)
		records = onlyKey(records, key)
	} else {
		var query domain.SeriesQuery
		query, err = s.normalize(ctx, *filter, timeseries.LastDays(s.settings.historyDays), s.settings.exportMaxRows)
		if err != nil {
			return nil, err
		}
		records, err = s.fetchHistory(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	return timeseries.ComputeVariations(records), nil
}

// MonthlySummary builds closing, prior month closing and year-to-date average per key.
func (s *seriesService[R]) MonthlySummary(ctx context.Context, period domain.Period, key string) ([]domain.MonthlySummary, error) {
	// Reuse filter normalization for the key so "all" behaves like everywhere else.
	query, err := s.normalize(ctx, domain.HistoryFilter{Month: period.String(), Key: key}, timeseries.Unbounded(), 0)
	if err != nil {
		return nil, err
	}

	loc := s.settings.location
	ytdFrom, ytdUntil := period.YearStart(loc), period.End(loc)
	query.From, query.Until = &ytdFrom, &ytdUntil
	yearToDate, err := s.fetchHistory(ctx, query)
	if err != nil {
		return nil, err
	}

	previousMonth := yearToDate
	if period.Month == time.January {
		prev := period.Previous()
		prevFrom, prevUntil := prev.Start(loc), prev.End(loc)
		query.From, query.Until = &prevFrom, &prevUntil
		if previousMonth, err = s.fetchHistory(ctx, query); err != nil {
			return nil, err
		}
	}

	summaries := timeseries.BuildMonthlySummaries(yearToDate, previousMonth, period, loc)
	s.LogInfo(ctx, "Monthly summary built",
		slog.String("series", s.name),
		slog.String("period", period.String()),
		slog.Int("keys", len(summaries)))
	return summaries, nil
}

// Pivot reshapes the filtered records into a key by day table.
func (s *seriesService[R]) Pivot(ctx context.Context, filter domain.HistoryFilter) (*domain.PivotTable, error) {
	query, err := s.normalize(ctx, filter, timeseries.LastDays(s.settings.exportDays), s.settings.exportMaxRows)
	if err != nil {
		return nil, err
	}

	records, err := s.fetchHistory(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(records) == s.settings.exportMaxRows {
		s.LogWarn(ctx, "Pivot input reached the row cap, older records are missing",
			slog.String("series", s.name), slog.Int("max_rows", s.settings.exportMaxRows))
	}

	table, err := timeseries.BuildPivot(records, timeseries.PivotOptions[R]{
		Location:   s.settings.location,
		Duplicates: s.settings.duplicates,
		RowKey:     s.rowKey,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build pivot", slog.String("series", s.name))
		return nil, err
	}
	return table, nil
}

// Statistics returns table-wide counters and the current variations.
func (s *seriesService[R]) Statistics(ctx context.Context) (*domain.Statistics, error) {
	storeCtx, cancel := s.StoreContext(ctx)
	stats, err := s.repo.FetchStatistics(storeCtx)
	cancel()
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch statistics", slog.String("series", s.name))
		return nil, fmt.Errorf("failed to fetch %s statistics: %w", s.name, err)
	}

	variations, err := s.Variations(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &domain.Statistics{StoreStatistics: *stats, Variations: variations}, nil
}

// hasWindow reports whether f carries any date parameter.
func hasWindow(f domain.HistoryFilter) bool {
	return f.Days != 0 ||
		strings.TrimSpace(f.Month) != "" ||
		strings.TrimSpace(f.StartDate) != "" ||
		strings.TrimSpace(f.EndDate) != ""
}

// onlyKey keeps the records of key. An empty key keeps everything.
func onlyKey[R timeseries.Series](records []R, key string) []R {
	if key == "" {
		return records
	}
	out := make([]R, 0, 2)
	for _, r := range records {
		if r.SeriesKey() == key {
			out = append(out, r)
		}
	}
	return out
}
