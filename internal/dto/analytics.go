package dto

import (
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// VariationResponse compares the latest value of a key to the value before it.
type VariationResponse struct {
	Key              string     `json:"key"`
	CurrentValue     float64    `json:"current_value"`
	CurrentAt        time.Time  `json:"current_at"`
	PreviousValue    *float64   `json:"previous_value"`
	PreviousAt       *time.Time `json:"previous_at"`
	VariationPercent *float64   `json:"variation_percent"`
}

// ToVariationResponse converts a domain.VariationResult to VariationResponse DTO
func ToVariationResponse(v domain.VariationResult) VariationResponse {
	return VariationResponse{
		Key:              v.Key,
		CurrentValue:     toFloat(v.CurrentValue),
		CurrentAt:        v.CurrentAt,
		PreviousValue:    toFloatPtr(v.PreviousValue),
		PreviousAt:       v.PreviousAt,
		VariationPercent: toFloatPtr(v.VariationPercent),
	}
}

// ToListVariationResponse converts variations to DTOs.
func ToListVariationResponse(vs []domain.VariationResult) []VariationResponse {
	responses := make([]VariationResponse, len(vs))
	for i, v := range vs {
		responses[i] = ToVariationResponse(v)
	}
	return responses
}

// MonthlySummaryResponse is the month-closing view of one key.
type MonthlySummaryResponse struct {
	Key                  string     `json:"key"`
	Period               string     `json:"period"`
	Currency             string     `json:"currency,omitempty"`
	Unit                 string     `json:"unit,omitempty"`
	ClosingValue         float64    `json:"closing_value"`
	ClosingDate          time.Time  `json:"closing_date"`
	PreviousClosingValue *float64   `json:"previous_closing_value"`
	PreviousClosingDate  *time.Time `json:"previous_closing_date"`
	YTDAverage           float64    `json:"ytd_average"`
	YTDCount             int        `json:"ytd_count"`
}

// ToListMonthlySummaryResponse converts summaries of period to DTOs.
func ToListMonthlySummaryResponse(period domain.Period, summaries []domain.MonthlySummary) []MonthlySummaryResponse {
	responses := make([]MonthlySummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = MonthlySummaryResponse{
			Key:                  s.Key,
			Period:               period.String(),
			Currency:             s.Meta.Currency,
			Unit:                 s.Meta.Unit,
			ClosingValue:         toFloat(s.ClosingValue),
			ClosingDate:          s.ClosingDate,
			PreviousClosingValue: toFloatPtr(s.PeriodValue),
			PreviousClosingDate:  s.PeriodDate,
			YTDAverage:           toFloat(s.YTDAverage),
			YTDCount:             s.YTDCount,
		}
	}
	return responses
}

// StatisticsResponse reports table-wide counters and current variations.
type StatisticsResponse struct {
	TotalRecords int64               `json:"total_records"`
	TotalKeys    int64               `json:"total_keys"`
	FirstRecord  *time.Time          `json:"first_record"`
	LastUpdate   *time.Time          `json:"last_update"`
	Variations   []VariationResponse `json:"variations"`
}

// ToStatisticsResponse converts domain.Statistics to StatisticsResponse DTO
func ToStatisticsResponse(s *domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalRecords: s.TotalRecords,
		TotalKeys:    s.TotalKeys,
		FirstRecord:  s.FirstRecord,
		LastUpdate:   s.LastUpdate,
		Variations:   ToListVariationResponse(s.Variations),
	}
}
