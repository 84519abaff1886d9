package pgsql

import (
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/SscSPs/market_prices_app/internal/models"
	"github.com/SscSPs/market_prices_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository reads the exchange_rates table using pgxpool.
type PgxExchangeRateRepository struct {
	seriesRepository[domain.RateRecord]
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		seriesRepository: seriesRepository[domain.RateRecord]{
			BaseRepository: BaseRepository{Pool: db},
			table:          exchangeRatesTable,
			scan:           scanExchangeRate,
		},
	}
}

func scanExchangeRate(row pgx.Row) (domain.RateRecord, error) {
	var m models.ExchangeRate
	err := row.Scan(&m.ID, &m.BaseCurrency, &m.QuoteCurrency, &m.RefDate, &m.Rate, &m.Metadata, &m.CreatedAt)
	if err != nil {
		return domain.RateRecord{}, err
	}
	return mapping.ToDomainRateRecord(m), nil
}
