package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/market_prices_app/internal/apperrors"
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// seriesRepository implements the generic series reads over one table.
type seriesRepository[R any] struct {
	BaseRepository
	table seriesTable
	scan  func(row pgx.Row) (R, error)
}

// FetchLatestPerKey retrieves up to depth of the newest records for every key.
func (r *seriesRepository[R]) FetchLatestPerKey(ctx context.Context, depth int) ([]R, error) {
	query, args, err := r.table.latestPerKeyQuery(depth).ToSql()
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build latest query", err)
	}
	return r.queryRecords(ctx, query, args)
}

// FetchHistory retrieves records matching the query, newest first.
func (r *seriesRepository[R]) FetchHistory(ctx context.Context, q domain.SeriesQuery) ([]R, error) {
	query, args, err := r.table.historyQuery(q).ToSql()
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build history query", err)
	}
	return r.queryRecords(ctx, query, args)
}

// FetchStatistics retrieves the row count, the key count and the time range of the table.
func (r *seriesRepository[R]) FetchStatistics(ctx context.Context) (*domain.StoreStatistics, error) {
	if r.Pool == nil {
		return nil, apperrors.NewStoreUnavailableError("database pool not configured", nil)
	}
	query, args, err := r.table.statisticsQuery().ToSql()
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build statistics query", err)
	}

	var stats domain.StoreStatistics
	var first, last *time.Time
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&stats.TotalRecords, &stats.TotalKeys, &first, &last); err != nil {
		return nil, apperrors.NewStoreUnavailableError(fmt.Sprintf("failed to read %s statistics", r.table.name), err)
	}
	stats.FirstRecord = first
	stats.LastUpdate = last
	return &stats, nil
}

func (r *seriesRepository[R]) queryRecords(ctx context.Context, query string, args []any) ([]R, error) {
	if r.Pool == nil {
		return nil, apperrors.NewStoreUnavailableError("database pool not configured", nil)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError(fmt.Sprintf("failed to query %s", r.table.name), err)
	}
	defer rows.Close()

	records := []R{}
	for rows.Next() {
		record, err := r.scan(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to scan %s row", r.table.name), err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError(fmt.Sprintf("error iterating %s", r.table.name), err)
	}

	return records, nil
}
