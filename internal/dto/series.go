package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// PriceResponse defines the structure for API responses containing a metal price.
type PriceResponse struct {
	ID                int64     `json:"id"`
	MetalType         string    `json:"metal_type"`
	Price             float64   `json:"price"`
	Currency          string    `json:"currency,omitempty"`
	Unit              string    `json:"unit,omitempty"`
	SourceProductName string    `json:"source_product_name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToPriceResponse converts a domain.PriceRecord to PriceResponse DTO
func ToPriceResponse(p domain.PriceRecord) PriceResponse {
	return PriceResponse{
		ID:                p.ID,
		MetalType:         p.Key,
		Price:             toFloat(p.Value),
		Currency:          p.Currency,
		Unit:              p.Unit,
		SourceProductName: p.Source,
		CreatedAt:         p.Timestamp,
	}
}

// ToListPriceResponse converts a slice of domain.PriceRecord to PriceResponse DTOs.
func ToListPriceResponse(prices []domain.PriceRecord) []PriceResponse {
	responses := make([]PriceResponse, len(prices))
	for i, p := range prices {
		responses[i] = ToPriceResponse(p)
	}
	return responses
}

// RateResponse defines the structure for API responses containing an exchange rate.
type RateResponse struct {
	ID            int64           `json:"id"`
	BaseCurrency  string          `json:"base_currency"`
	QuoteCurrency string          `json:"quote_currency"`
	RefDate       string          `json:"ref_date"`
	Rate          float64         `json:"rate"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToRateResponse converts a domain.RateRecord to RateResponse DTO
func ToRateResponse(r domain.RateRecord) RateResponse {
	return RateResponse{
		ID:            r.ID,
		BaseCurrency:  r.BaseCurrency,
		QuoteCurrency: r.QuoteCurrency,
		RefDate:       r.RefDate.Format(domain.DayLayout),
		Rate:          toFloat(r.Rate),
		Metadata:      r.Metadata,
		CreatedAt:     r.CreatedAt,
	}
}

// ToListRateResponse converts a slice of domain.RateRecord to RateResponse DTOs.
func ToListRateResponse(rates []domain.RateRecord) []RateResponse {
	responses := make([]RateResponse, len(rates))
	for i, r := range rates {
		responses[i] = ToRateResponse(r)
	}
	return responses
}
