package handlers

import (
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
	"github.com/SscSPs/market_prices_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type priceHandler struct {
	routes *seriesRoutes[domain.PriceRecord, dto.PriceFilterQuery, dto.PriceResponse]
}

func newPriceHandler(svc portssvc.PriceSvcFacade, loc *time.Location, now func() time.Time) *priceHandler {
	return &priceHandler{routes: &seriesRoutes[domain.PriceRecord, dto.PriceFilterQuery, dto.PriceResponse]{
		name:       "prices",
		svc:        svc,
		toResponse: dto.ToListPriceResponse,
		location:   loc,
		now:        now,
	}}
}

// registerPriceRoutes registers routes related to metal prices
func registerPriceRoutes(rg *gin.RouterGroup, h *priceHandler) {
	prices := rg.Group("/prices")
	{
		prices.GET("/latest", h.latest)
		prices.GET("/history", h.history)
		prices.GET("/variations", h.variations)
		prices.GET("/monthly-summary", h.monthlySummary)
		prices.GET("/statistics", h.statistics)
	}
}

// latest godoc
// @Summary Latest metal prices
// @Description Returns the most recent price of every metal, ordered by metal type.
// @Tags prices
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.PriceResponse}
// @Failure 503 {object} dto.Response
// @Router /prices/latest [get]
func (h *priceHandler) latest(c *gin.Context) {
	h.routes.latest(c)
}

// history godoc
// @Summary Metal price history
// @Description Lists metal prices newest first. Defaults to the last 7 days.
// @Tags prices
// @Produce json
// @Param days query int false "Number of days back from today"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param month query string false "Calendar month (YYYY-MM)"
// @Param metal_type query string false "Metal type, or 'all'"
// @Param limit query int false "Page size"
// @Param page_token query string false "Token returned by the previous page"
// @Success 200 {object} dto.Response{data=[]dto.PriceResponse}
// @Failure 400 {object} dto.Response
// @Failure 503 {object} dto.Response
// @Router /prices/history [get]
func (h *priceHandler) history(c *gin.Context) {
	h.routes.history(c)
}

// variations godoc
// @Summary Metal price variations
// @Description Compares the two most recent prices of each metal. Without filters the whole table is considered.
// @Tags prices
// @Produce json
// @Param days query int false "Number of days back from today"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param month query string false "Calendar month (YYYY-MM)"
// @Param metal_type query string false "Metal type, or 'all'"
// @Success 200 {object} dto.Response{data=[]dto.VariationResponse}
// @Failure 400 {object} dto.Response
// @Failure 503 {object} dto.Response
// @Router /prices/variations [get]
func (h *priceHandler) variations(c *gin.Context) {
	h.routes.variations(c)
}

// monthlySummary godoc
// @Summary Monthly metal price summary
// @Description Closing price, previous month closing and year-to-date average per metal.
// @Tags prices
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month 1-12, defaults to the current month"
// @Param metal_type query string false "Metal type, or 'all'"
// @Success 200 {object} dto.Response{data=[]dto.MonthlySummaryResponse}
// @Failure 400 {object} dto.Response
// @Failure 503 {object} dto.Response
// @Router /prices/monthly-summary [get]
func (h *priceHandler) monthlySummary(c *gin.Context) {
	h.routes.monthlySummary(c, func(q dto.MonthlySummaryQuery) string { return q.MetalType })
}

// statistics godoc
// @Summary Metal price statistics
// @Description Row counts, date range and current variations of the price table.
// @Tags prices
// @Produce json
// @Success 200 {object} dto.Response{data=dto.StatisticsResponse}
// @Failure 503 {object} dto.Response
// @Router /prices/statistics [get]
func (h *priceHandler) statistics(c *gin.Context) {
	h.routes.statistics(c)
}
