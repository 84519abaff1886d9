package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/market_prices_app/internal/apperrors"
	"github.com/SscSPs/market_prices_app/internal/dto"
	"github.com/gin-gonic/gin"
)

const storeUnavailableMessage = "record store unavailable"

// respondError maps a service error to a status code and an envelope. List endpoints
// keep an empty data array on failure.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string, list bool) {
	status := apperrors.StatusCode(err)

	var body dto.Response
	switch status {
	case http.StatusBadRequest:
		logger.Warn("Rejected request", slog.String("error", err.Error()))
		body = dto.Failure(err.Error())
	case http.StatusServiceUnavailable:
		logger.Error("Record store unavailable", slog.String("error", err.Error()))
		body = dto.Failure(storeUnavailableMessage)
		if list {
			body = dto.EmptyFailure(storeUnavailableMessage)
		}
	case http.StatusNotFound:
		logger.Info("Nothing found", slog.String("error", err.Error()))
		body = dto.Failure(err.Error())
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		body = dto.Failure(fallback)
	}
	c.JSON(status, body)
}

// respondBindError reports a query binding failure.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Failure("Invalid query parameters: "+err.Error()))
}
