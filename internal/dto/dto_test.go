package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowQuery_Filter(t *testing.T) {
	q := PriceFilterQuery{WindowQuery: WindowQuery{Days: "14", StartDate: "2025-01-01"}, MetalType: "Copper"}
	assert.Equal(t, domain.HistoryFilter{Days: 14, StartDate: "2025-01-01", Key: "Copper"}, q.Filter())
	assert.True(t, q.HasAny())

	bad := PriceFilterQuery{WindowQuery: WindowQuery{Days: "week"}}
	assert.Equal(t, -1, bad.Filter().Days)

	assert.False(t, RateFilterQuery{}.HasAny())
	assert.Equal(t, "USD", RateFilterQuery{Currency: "usd"}.Filter().Key)
}

func TestSeriesKeyValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidations(v))

	for _, ok := range []string{"Copper", "USD", "LME Copper Cash (3M)", "Aluminium-Alloy", "all"} {
		assert.NoError(t, v.Var(ok, "serieskey"), ok)
	}
	for _, bad := range []string{"", "Copper;DROP TABLE", "<script>"} {
		assert.Error(t, v.Var(bad, "serieskey"), bad)
	}
}

func TestEnvelope(t *testing.T) {
	body, err := json.Marshal(EmptyFailure("record store unavailable"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","data":[],"count":0,"error":"record store unavailable"}`, string(body))

	body, err = json.Marshal(SuccessList([]int{1, 2}, 2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","data":[1,2],"count":2}`, string(body))
}

func TestToVariationResponse_DecimalsAsNumbers(t *testing.T) {
	prev := decimal.RequireFromString("9000")
	pct := decimal.RequireFromString("2")
	at := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	body, err := json.Marshal(ToVariationResponse(domain.VariationResult{
		Key:              "Copper",
		CurrentValue:     decimal.RequireFromString("9180.5"),
		CurrentAt:        at,
		PreviousValue:    &prev,
		VariationPercent: &pct,
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"key":"Copper",
		"current_value":9180.5,
		"current_at":"2025-03-14T10:00:00Z",
		"previous_value":9000,
		"previous_at":null,
		"variation_percent":2
	}`, string(body))
}

func TestToRateResponse_DateOnly(t *testing.T) {
	r := ToRateResponse(domain.RateRecord{
		QuoteCurrency: "USD",
		RefDate:       time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Rate:          decimal.RequireFromString("1.0825"),
	})
	assert.Equal(t, "2025-03-14", r.RefDate)
	assert.Equal(t, 1.0825, r.Rate)
}
