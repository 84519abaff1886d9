package pgsql

import (
	portsrepo "github.com/SscSPs/market_prices_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PriceRepo:   NewPgxPriceRepository(dbPool),
		RateRepo:    NewPgxExchangeRateRepository(dbPool),
		SyncLogRepo: NewPgxSyncLogRepository(dbPool),
		Health:      &BaseRepository{Pool: dbPool},
	}
}

var (
	_ portsrepo.PriceRepositoryFacade = (*PgxPriceRepository)(nil)
	_ portsrepo.RateRepositoryFacade  = (*PgxExchangeRateRepository)(nil)
	_ portsrepo.SyncLogReader         = (*PgxSyncLogRepository)(nil)
	_ portsrepo.HealthChecker         = (*BaseRepository)(nil)
)
