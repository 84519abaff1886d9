package timeseries_test

import (
	"time"
	_ "time/tzdata"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func price(id int64, key string, ts time.Time, value string) domain.PriceRecord {
	return domain.PriceRecord{
		ID:        id,
		Key:       key,
		Timestamp: ts,
		Value:     dec(value),
		Currency:  "USD",
		Unit:      "t",
		Source:    key + " LME Cash",
	}
}

func rate(id int64, quote string, ref time.Time, value string) domain.RateRecord {
	return domain.RateRecord{
		ID:            id,
		BaseCurrency:  "EUR",
		QuoteCurrency: quote,
		RefDate:       ref,
		Rate:          dec(value),
	}
}
