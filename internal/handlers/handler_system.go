package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
	"github.com/SscSPs/market_prices_app/internal/dto"
	"github.com/SscSPs/market_prices_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type systemHandler struct {
	syncLogService portssvc.SyncLogSvc
	healthService  portssvc.HealthSvc
}

func newSystemHandler(syncLogService portssvc.SyncLogSvc, healthService portssvc.HealthSvc) *systemHandler {
	return &systemHandler{syncLogService: syncLogService, healthService: healthService}
}

// health godoc
// @Summary Health check
// @Description Reports service health and database connectivity. Always answers 200 while the process is up.
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *systemHandler) health(c *gin.Context) {
	report := h.healthService.Check(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToHealthResponse(report))
}

// listSyncLogs godoc
// @Summary List sync logs
// @Description Lists the most recent ingestion job runs, newest first.
// @Tags system
// @Produce json
// @Param limit query int false "Maximum number of entries" default(10)
// @Success 200 {object} dto.Response{data=[]dto.SyncLogResponse}
// @Failure 400 {object} dto.Response
// @Failure 503 {object} dto.Response
// @Router /sync/logs [get]
func (h *systemHandler) listSyncLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var q dto.SyncLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	entries, err := h.syncLogService.ListSyncLogs(c.Request.Context(), q.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve sync logs", true)
		return
	}

	data := dto.ToListSyncLogResponse(entries)
	c.JSON(http.StatusOK, dto.SuccessList(data, len(data)))
}
