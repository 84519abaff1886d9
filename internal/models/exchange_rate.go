package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the exchange_rates table. RefDate is the reference date
// published by the source.
type ExchangeRate struct {
	ID            int64           `db:"id"`
	BaseCurrency  string          `db:"base_currency"`
	QuoteCurrency string          `db:"quote_currency"`
	RefDate       time.Time       `db:"ref_date"`
	Rate          decimal.Decimal `db:"rate"`
	Metadata      []byte          `db:"metadata"`
	CreatedAt     time.Time       `db:"created_at"`
}
