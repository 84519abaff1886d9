package mapping

import (
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/SscSPs/market_prices_app/internal/models"
)

// ToDomainPriceRecord converts a metal_prices row to a domain PriceRecord
func ToDomainPriceRecord(m models.MetalPrice) domain.PriceRecord {
	return domain.PriceRecord{
		ID:        m.ID,
		Key:       m.MetalType,
		Timestamp: m.CreatedAt,
		Value:     m.Price,
		Currency:  deref(m.Currency),
		Unit:      deref(m.Unit),
		Source:    deref(m.SourceProductName),
	}
}

// ToDomainPriceRecords converts a slice of metal_prices rows
func ToDomainPriceRecords(ms []models.MetalPrice) []domain.PriceRecord {
	if ms == nil {
		return []domain.PriceRecord{}
	}
	out := make([]domain.PriceRecord, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPriceRecord(m)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
