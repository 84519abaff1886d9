package repositories

import (
	"context"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// SyncLogReader defines read operations for the ingestion job log
type SyncLogReader interface {
	// FetchSyncLog retrieves the newest limit entries.
	FetchSyncLog(ctx context.Context, limit int) ([]domain.SyncLogEntry, error)
}

// HealthChecker reports whether the record store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}
