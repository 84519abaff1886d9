package pgsql

import (
	"context"
	"net/http"

	sq "github.com/Masterminds/squirrel"

	"github.com/SscSPs/market_prices_app/internal/apperrors"
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/SscSPs/market_prices_app/internal/models"
	"github.com/SscSPs/market_prices_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSyncLogRepository reads the sync_logs table written by the ingestion job.
type PgxSyncLogRepository struct {
	BaseRepository
}

// NewPgxSyncLogRepository creates a new PgxSyncLogRepository.
func NewPgxSyncLogRepository(db *pgxpool.Pool) *PgxSyncLogRepository {
	return &PgxSyncLogRepository{BaseRepository: BaseRepository{Pool: db}}
}

func syncLogQuery(limit int) sq.SelectBuilder {
	return psql.
		Select("id", "sync_type", "status", "metals_updated", "error_message", "duration_seconds", "created_at").
		From("sync_logs").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))
}

// FetchSyncLog retrieves the newest limit entries.
func (r *PgxSyncLogRepository) FetchSyncLog(ctx context.Context, limit int) ([]domain.SyncLogEntry, error) {
	if r.Pool == nil {
		return nil, apperrors.NewStoreUnavailableError("database pool not configured", nil)
	}
	query, args, err := syncLogQuery(limit).ToSql()
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build sync log query", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to query sync_logs", err)
	}
	defer rows.Close()

	entries := []domain.SyncLogEntry{}
	for rows.Next() {
		var m models.SyncLog
		if err := rows.Scan(&m.ID, &m.SyncType, &m.Status, &m.MetalsUpdated, &m.ErrorMessage, &m.DurationSeconds, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan sync log", err)
		}
		entries = append(entries, mapping.ToDomainSyncLogEntry(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("error iterating sync_logs", err)
	}

	return entries, nil
}
