package services

import (
	"context"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// SyncLogSvc exposes the ingestion job log.
type SyncLogSvc interface {
	ListSyncLogs(ctx context.Context, limit int) ([]domain.SyncLogEntry, error)
}

// HealthSvc reports on the reachability of the record store.
type HealthSvc interface {
	Check(ctx context.Context) domain.HealthReport
}
