package pgsql

import (
	"context"

	"github.com/SscSPs/market_prices_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks that the database answers within the context deadline.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if r.Pool == nil {
		return apperrors.NewStoreUnavailableError("database pool not configured", nil)
	}
	if err := r.Pool.Ping(ctx); err != nil {
		return apperrors.NewStoreUnavailableError("database ping failed", err)
	}
	return nil
}
