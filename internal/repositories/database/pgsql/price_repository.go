package pgsql

import (
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/SscSPs/market_prices_app/internal/models"
	"github.com/SscSPs/market_prices_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPriceRepository reads the metal_prices table using pgxpool.
type PgxPriceRepository struct {
	seriesRepository[domain.PriceRecord]
}

// NewPgxPriceRepository creates a new PgxPriceRepository.
func NewPgxPriceRepository(db *pgxpool.Pool) *PgxPriceRepository {
	return &PgxPriceRepository{
		seriesRepository: seriesRepository[domain.PriceRecord]{
			BaseRepository: BaseRepository{Pool: db},
			table:          metalPricesTable,
			scan:           scanMetalPrice,
		},
	}
}

func scanMetalPrice(row pgx.Row) (domain.PriceRecord, error) {
	var m models.MetalPrice
	err := row.Scan(&m.ID, &m.MetalType, &m.Price, &m.Currency, &m.Unit, &m.SourceProductName, &m.CreatedAt)
	if err != nil {
		return domain.PriceRecord{}, err
	}
	return mapping.ToDomainPriceRecord(m), nil
}
