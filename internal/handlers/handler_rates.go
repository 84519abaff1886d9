package handlers

import (
	"strings"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
	"github.com/SscSPs/market_prices_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type rateHandler struct {
	routes *seriesRoutes[domain.RateRecord, dto.RateFilterQuery, dto.RateResponse]
}

func newRateHandler(svc portssvc.RateSvcFacade, loc *time.Location, now func() time.Time) *rateHandler {
	return &rateHandler{routes: &seriesRoutes[domain.RateRecord, dto.RateFilterQuery, dto.RateResponse]{
		name:       "rates",
		svc:        svc,
		toResponse: dto.ToListRateResponse,
		location:   loc,
		now:        now,
	}}
}

// registerRateRoutes registers routes related to exchange rates
func registerRateRoutes(rg *gin.RouterGroup, h *rateHandler) {
	rates := rg.Group("/rates")
	{
		rates.GET("/latest", h.latest)
		rates.GET("/history", h.history)
		rates.GET("/variations", h.variations)
		rates.GET("/monthly-summary", h.monthlySummary)
		rates.GET("/statistics", h.statistics)
	}
}

// latest godoc
// @Summary Latest exchange rates
// @Description Returns the most recent rate of every quote currency, ordered by currency.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.RateResponse}
// @Failure 503 {object} dto.Response
// @Router /rates/latest [get]
func (h *rateHandler) latest(c *gin.Context) {
	h.routes.latest(c)
}

// history godoc
// @Summary Exchange rate history
// @Description Lists exchange rates newest first. Defaults to the last 7 days.
// @Tags rates
// @Produce json
// @Param days query int false "Number of days back from today"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param month query string false "Calendar month (YYYY-MM)"
// @Param currency query string false "Quote currency code, or 'all'"
// @Param limit query int false "Page size"
// @Param page_token query string false "Token returned by the previous page"
// @Success 200 {object} dto.Response{data=[]dto.RateResponse}
// @Failure 400 {object} dto.Response
// @Failure 503 {object} dto.Response
// @Router /rates/history [get]
func (h *rateHandler) history(c *gin.Context) {
	h.routes.history(c)
}

// variations godoc
// @Summary Exchange rate variations
// @Description Compares the two most recent rates of each currency. Without filters the whole table is considered.
// @Tags rates
// @Produce json
// @Param days query int false "Number of days back from today"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param month query string false "Calendar month (YYYY-MM)"
// @Param currency query string false "Quote currency code, or 'all'"
// @Success 200 {object} dto.Response{data=[]dto.VariationResponse}
// @Failure 400 {object} dto.Response
// @Failure 503 {object} dto.Response
// @Router /rates/variations [get]
func (h *rateHandler) variations(c *gin.Context) {
	h.routes.variations(c)
}

// monthlySummary godoc
// @Summary Monthly exchange rate summary
// @Description Closing rate, previous month closing and year-to-date average per currency.
// @Tags rates
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month 1-12, defaults to the current month"
// @Param currency query string false "Quote currency code, or 'all'"
// @Success 200 {object} dto.Response{data=[]dto.MonthlySummaryResponse}
// @Failure 400 {object} dto.Response
// @Failure 503 {object} dto.Response
// @Router /rates/monthly-summary [get]
func (h *rateHandler) monthlySummary(c *gin.Context) {
	h.routes.monthlySummary(c, func(q dto.MonthlySummaryQuery) string { return strings.ToUpper(q.Currency) })
}

// statistics godoc
// @Summary Exchange rate statistics
// @Description Row counts, date range and current variations of the rate table.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.Response{data=dto.StatisticsResponse}
// @Failure 503 {object} dto.Response
// @Router /rates/statistics [get]
func (h *rateHandler) statistics(c *gin.Context) {
	h.routes.statistics(c)
}
