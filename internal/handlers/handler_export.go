package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/market_prices_app/internal/apperrors"
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
	"github.com/SscSPs/market_prices_app/internal/dto"
	"github.com/SscSPs/market_prices_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	exportService portssvc.ExportSvc
}

func newExportHandler(exportService portssvc.ExportSvc) *exportHandler {
	return &exportHandler{exportService: exportService}
}

// registerExportRoutes registers the download routes. Extra middleware, such as the
// rate limiter, only applies to this group.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvc, mw ...gin.HandlerFunc) {
	h := newExportHandler(exportService)

	export := rg.Group("/export", mw...)
	{
		export.GET("/prices", h.exportPrices)
		export.GET("/rates", h.exportRates)
	}
}

type exportFunc func(ctx context.Context, filter domain.HistoryFilter, format domain.ExportFormat) (*domain.ExportDocument, error)

// serveExport binds the filter and format, renders the document and streams it as an attachment.
func serveExport[Q filterQuery](c *gin.Context, series string, render exportFunc) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("series", series))

	var q Q
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}
	var eq dto.ExportQuery
	if err := c.ShouldBindQuery(&eq); err != nil {
		respondBindError(c, logger, err)
		return
	}

	format, err := domain.ParseExportFormat(eq.Format)
	if err != nil {
		respondError(c, logger, apperrors.NewValidationError(err.Error()), "", false)
		return
	}

	doc, err := render(c.Request.Context(), q.Filter(), format)
	if err != nil {
		respondError(c, logger, err, "Failed to generate export", false)
		return
	}

	logger.Info("Export generated",
		slog.String("filename", doc.Filename),
		slog.String("format", string(format)),
		slog.Int("rows", doc.Rows),
		slog.Int("columns", doc.Columns),
		slog.Int("bytes", len(doc.Body)))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

// exportPrices godoc
// @Summary Export metal prices
// @Description Downloads a product by day pivot of metal prices. Defaults to the last 30 days.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "File format" Enums(xlsx, csv)
// @Param days query int false "Number of days back from today"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param month query string false "Calendar month (YYYY-MM)"
// @Param metal_type query string false "Metal type, or 'all'"
// @Success 200 {file} file
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 429 {object} dto.Response
// @Failure 503 {object} dto.Response
// @Router /export/prices [get]
func (h *exportHandler) exportPrices(c *gin.Context) {
	serveExport[dto.PriceFilterQuery](c, "prices", h.exportService.ExportPrices)
}

// exportRates godoc
// @Summary Export exchange rates
// @Description Downloads a currency by day pivot of exchange rates. Defaults to the last 30 days.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "File format" Enums(xlsx, csv)
// @Param days query int false "Number of days back from today"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param month query string false "Calendar month (YYYY-MM)"
// @Param currency query string false "Quote currency code, or 'all'"
// @Success 200 {file} file
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 429 {object} dto.Response
// @Failure 503 {object} dto.Response
// @Router /export/rates [get]
func (h *exportHandler) exportRates(c *gin.Context) {
	serveExport[dto.RateFilterQuery](c, "rates", h.exportService.ExportRates)
}
