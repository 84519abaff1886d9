package dto

import (
	"strconv"
	"strings"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// WindowQuery holds the time window parameters shared by history, variation and
// export endpoints. Values are kept as text so the filter normalizer decides how
// malformed input is treated.
type WindowQuery struct {
	Days      string `form:"days"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Month     string `form:"month"`
}

// HasAny reports whether any window parameter was supplied.
func (q WindowQuery) HasAny() bool {
	return q.Days != "" || q.StartDate != "" || q.EndDate != "" || q.Month != ""
}

func (q WindowQuery) filter(key string) domain.HistoryFilter {
	f := domain.HistoryFilter{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Month:     q.Month,
		Key:       key,
	}
	if days := strings.TrimSpace(q.Days); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil {
			// Unparseable counts as an invalid day count.
			n = -1
		}
		f.Days = n
	}
	return f
}

// PriceFilterQuery filters the metal price series.
type PriceFilterQuery struct {
	WindowQuery
	MetalType string `form:"metal_type" binding:"omitempty,serieskey"`
}

// Filter converts the query to a domain.HistoryFilter.
func (q PriceFilterQuery) Filter() domain.HistoryFilter {
	return q.filter(q.MetalType)
}

// HasAny reports whether any filter parameter was supplied.
func (q PriceFilterQuery) HasAny() bool {
	return q.WindowQuery.HasAny() || q.MetalType != ""
}

// RateFilterQuery filters the exchange rate series.
type RateFilterQuery struct {
	WindowQuery
	Currency string `form:"currency" binding:"omitempty,serieskey"`
}

// Filter converts the query to a domain.HistoryFilter.
func (q RateFilterQuery) Filter() domain.HistoryFilter {
	return q.filter(strings.ToUpper(q.Currency))
}

// HasAny reports whether any filter parameter was supplied.
func (q RateFilterQuery) HasAny() bool {
	return q.WindowQuery.HasAny() || q.Currency != ""
}

// PageQuery holds cursor pagination parameters.
type PageQuery struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	PageToken string `form:"page_token"`
}

// MonthlySummaryQuery selects a calendar month and optionally a key. Missing year
// or month default to the current month.
type MonthlySummaryQuery struct {
	Year      int    `form:"year" binding:"omitempty,min=1,max=9999"`
	Month     int    `form:"month" binding:"omitempty,min=1,max=12"`
	MetalType string `form:"metal_type" binding:"omitempty,serieskey"`
	Currency  string `form:"currency" binding:"omitempty,serieskey"`
}

// ExportQuery selects the export file format.
type ExportQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=xlsx csv XLSX CSV"`
}

// SyncLogQuery limits the number of sync log entries returned.
type SyncLogQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}
