package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetalPrice is a row of the metal_prices table.
type MetalPrice struct {
	ID                int64           `db:"id"`
	MetalType         string          `db:"metal_type"`
	Price             decimal.Decimal `db:"price"`
	Currency          *string         `db:"currency"`
	Unit              *string         `db:"unit"`
	SourceProductName *string         `db:"source_product_name"`
	CreatedAt         time.Time       `db:"created_at"`
}
