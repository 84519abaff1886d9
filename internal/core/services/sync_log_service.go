package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	portsrepo "github.com/SscSPs/market_prices_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
)

// DefaultSyncLogLimit is the number of entries returned when no limit is given.
const DefaultSyncLogLimit = 10

// MaxSyncLogLimit caps the number of entries a single call returns.
const MaxSyncLogLimit = 500

type syncLogService struct {
	BaseService
	repo portsrepo.SyncLogReader
}

// NewSyncLogService creates a new sync log service
func NewSyncLogService(repo portsrepo.SyncLogReader, storeTimeout time.Duration) portssvc.SyncLogSvc {
	return &syncLogService{BaseService: BaseService{StoreTimeout: storeTimeout}, repo: repo}
}

// ListSyncLogs returns the newest entries of the ingestion job log.
func (s *syncLogService) ListSyncLogs(ctx context.Context, limit int) ([]domain.SyncLogEntry, error) {
	if limit <= 0 {
		limit = DefaultSyncLogLimit
	}
	if limit > MaxSyncLogLimit {
		limit = MaxSyncLogLimit
	}

	storeCtx, cancel := s.StoreContext(ctx)
	defer cancel()

	entries, err := s.repo.FetchSyncLog(storeCtx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch sync logs", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to fetch sync logs: %w", err)
	}
	return entries, nil
}

type healthService struct {
	BaseService
	checker portsrepo.HealthChecker
	now     func() time.Time
}

// NewHealthService creates a new health service
func NewHealthService(checker portsrepo.HealthChecker, storeTimeout time.Duration) portssvc.HealthSvc {
	return &healthService{BaseService: BaseService{StoreTimeout: storeTimeout}, checker: checker, now: time.Now}
}

// Check pings the record store. A failed ping is reported, not returned.
func (s *healthService) Check(ctx context.Context) domain.HealthReport {
	report := domain.HealthReport{Database: domain.DatabaseConnected, CheckedAt: s.now()}

	storeCtx, cancel := s.StoreContext(ctx)
	defer cancel()

	if err := s.checker.Ping(storeCtx); err != nil {
		s.LogWarn(ctx, "Database health check failed", slog.String("error", err.Error()))
		report.Database = domain.DatabaseDisconnected
	}
	return report
}
