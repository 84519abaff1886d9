package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/market_prices_app/internal/apperrors"
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
	"github.com/SscSPs/market_prices_app/internal/dto"
	"github.com/SscSPs/market_prices_app/internal/middleware"
	"github.com/SscSPs/market_prices_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// filterQuery is implemented by the per-series query DTOs.
type filterQuery interface {
	Filter() domain.HistoryFilter
	HasAny() bool
}

// seriesRoutes serves the read endpoints of one series. R is the record type, Q the
// query DTO and T the response DTO of a single record.
type seriesRoutes[R any, Q filterQuery, T any] struct {
	name       string
	svc        portssvc.SeriesSvc[R]
	toResponse func([]R) []T
	location   *time.Location
	now        func() time.Time
}

func (s *seriesRoutes[R, Q, T]) latest(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("series", s.name))

	records, err := s.svc.Latest(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve latest values", true)
		return
	}

	data := s.toResponse(records)
	c.JSON(http.StatusOK, dto.SuccessList(data, len(data)))
}

func (s *seriesRoutes[R, Q, T]) history(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("series", s.name))

	var q Q
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, logger, err)
		return
	}

	var after *domain.SeriesCursor
	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			respondError(c, logger, apperrors.NewValidationError(err.Error()), "", true)
			return
		}
		after = &cursor
	}

	result, err := s.svc.History(c.Request.Context(), q.Filter(), page.Limit, after)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve history", true)
		return
	}

	data := s.toResponse(result.Records)
	resp := dto.SuccessList(data, len(data))
	if result.NextCursor != nil {
		resp.NextPageToken = pagination.EncodeCursor(*result.NextCursor)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *seriesRoutes[R, Q, T]) variations(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("series", s.name))

	var q Q
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	var filter *domain.HistoryFilter
	if q.HasAny() {
		f := q.Filter()
		filter = &f
	}

	variations, err := s.svc.Variations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to compute variations", true)
		return
	}

	data := dto.ToListVariationResponse(variations)
	c.JSON(http.StatusOK, dto.SuccessList(data, len(data)))
}

func (s *seriesRoutes[R, Q, T]) monthlySummary(c *gin.Context, key func(dto.MonthlySummaryQuery) string) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("series", s.name))

	var q dto.MonthlySummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	current := domain.PeriodOf(s.now(), s.location)
	if q.Year == 0 {
		q.Year = current.Year
	}
	if q.Month == 0 {
		q.Month = int(current.Month)
	}
	period, err := domain.NewPeriod(q.Year, q.Month)
	if err != nil {
		respondError(c, logger, apperrors.NewValidationError(err.Error()), "", true)
		return
	}

	summaries, err := s.svc.MonthlySummary(c.Request.Context(), period, key(q))
	if err != nil {
		respondError(c, logger, err, "Failed to build monthly summary", true)
		return
	}

	data := dto.ToListMonthlySummaryResponse(period, summaries)
	c.JSON(http.StatusOK, dto.SuccessList(data, len(data)))
}

func (s *seriesRoutes[R, Q, T]) statistics(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("series", s.name))

	stats, err := s.svc.Statistics(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve statistics", false)
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToStatisticsResponse(stats)))
}
