package mapping

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/SscSPs/market_prices_app/internal/models"
)

// ToDomainRateRecord converts an exchange_rates row to a domain RateRecord
func ToDomainRateRecord(m models.ExchangeRate) domain.RateRecord {
	var metadata json.RawMessage
	if len(m.Metadata) > 0 {
		metadata = json.RawMessage(m.Metadata)
	}
	y, mo, d := m.RefDate.Date()
	return domain.RateRecord{
		ID:            m.ID,
		BaseCurrency:  m.BaseCurrency,
		QuoteCurrency: m.QuoteCurrency,
		RefDate:       time.Date(y, mo, d, 0, 0, 0, 0, time.UTC),
		Rate:          m.Rate,
		Metadata:      metadata,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainRateRecords converts a slice of exchange_rates rows
func ToDomainRateRecords(ms []models.ExchangeRate) []domain.RateRecord {
	if ms == nil {
		return []domain.RateRecord{}
	}
	out := make([]domain.RateRecord, len(ms))
	for i, m := range ms {
		out[i] = ToDomainRateRecord(m)
	}
	return out
}
