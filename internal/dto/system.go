package dto

import (
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// SyncLogResponse is one entry of the ingestion job log.
type SyncLogResponse struct {
	ID              int64     `json:"id"`
	SyncType        string    `json:"sync_type"`
	Status          string    `json:"status"`
	MetalsUpdated   int       `json:"metals_updated"`
	ErrorMessage    *string   `json:"error_message"`
	DurationSeconds *float64  `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToListSyncLogResponse converts sync log entries to DTOs.
func ToListSyncLogResponse(entries []domain.SyncLogEntry) []SyncLogResponse {
	responses := make([]SyncLogResponse, len(entries))
	for i, e := range entries {
		responses[i] = SyncLogResponse{
			ID:              e.ID,
			SyncType:        e.SyncType,
			Status:          e.Status,
			MetalsUpdated:   e.MetalsUpdated,
			ErrorMessage:    e.ErrorMessage,
			DurationSeconds: e.DurationSeconds,
			CreatedAt:       e.CreatedAt,
		}
	}
	return responses
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// ToHealthResponse converts a domain.HealthReport. The service itself is healthy
// whenever it can answer; database connectivity is reported separately.
func ToHealthResponse(r domain.HealthReport) HealthResponse {
	return HealthResponse{Status: "healthy", Database: r.Database, Timestamp: r.CheckedAt}
}
