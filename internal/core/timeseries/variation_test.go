package timeseries_test

import (
	"testing"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/SscSPs/market_prices_app/internal/core/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariationPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{name: "increase", current: "110", previous: "100", want: "10"},
		{name: "decrease", current: "90", previous: "100", want: "-10"},
		{name: "rounded to two places", current: "1", previous: "3", want: "-66.67"},
		{name: "negative previous", current: "-5", previous: "-10", want: "-50"},
		{name: "crossing zero from negative", current: "5", previous: "-10", want: "-150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timeseries.VariationPercent(dec(tt.current), dec(tt.previous))
			require.NotNil(t, got)
			assert.True(t, dec(tt.want).Equal(*got), "got %s want %s", got, tt.want)
		})
	}
}

func TestVariationPercent_ZeroPreviousIsNil(t *testing.T) {
	assert.Nil(t, timeseries.VariationPercent(dec("10"), dec("0")))
	assert.Nil(t, timeseries.VariationPercent(dec("0"), dec("0.000")))
}

func TestComputeVariations(t *testing.T) {
	records := []domain.PriceRecord{
		price(1, "Copper", at("2025-01-01T08:00:00Z"), "100"),
		price(2, "Copper", at("2025-01-02T08:00:00Z"), "110"),
		price(3, "Nickel", at("2025-01-01T08:00:00Z"), "50"),
		price(4, "Zinc", at("2025-01-01T08:00:00Z"), "0"),
		price(5, "Zinc", at("2025-01-02T08:00:00Z"), "20"),
	}

	got := timeseries.ComputeVariations(records)

	require.Len(t, got, 3)

	copper := got[0]
	assert.Equal(t, "Copper", copper.Key)
	assert.True(t, dec("110").Equal(copper.CurrentValue))
	require.NotNil(t, copper.PreviousValue)
	assert.True(t, dec("100").Equal(*copper.PreviousValue))
	require.NotNil(t, copper.VariationPercent)
	assert.True(t, dec("10").Equal(*copper.VariationPercent))

	nickel := got[1]
	assert.Equal(t, "Nickel", nickel.Key)
	assert.Nil(t, nickel.PreviousValue, "single observation has no baseline")
	assert.Nil(t, nickel.VariationPercent)

	zinc := got[2]
	require.NotNil(t, zinc.PreviousValue)
	assert.True(t, zinc.PreviousValue.IsZero())
	assert.Nil(t, zinc.VariationPercent, "zero baseline must not divide")
}

// The previous value is the second most recent observation, not the value from a fixed
// calendar offset: a 30-day gap and a 1-minute gap are treated the same way.
func TestComputeVariations_PreviousIsSecondMostRecentNotTwentyFourHoursAgo(t *testing.T) {
	records := []domain.PriceRecord{
		price(1, "Tin", at("2025-01-01T08:00:00Z"), "200"),
		price(2, "Tin", at("2025-01-31T08:00:00Z"), "210"),
		price(3, "Tin", at("2025-01-31T08:01:00Z"), "220"),
	}

	got := timeseries.ComputeVariations(records)

	require.Len(t, got, 1)
	require.NotNil(t, got[0].PreviousAt)
	assert.Equal(t, at("2025-01-31T08:00:00Z"), *got[0].PreviousAt)
	assert.True(t, dec("4.76").Equal(*got[0].VariationPercent))
}

func TestComputeVariations_TieUsesSequence(t *testing.T) {
	ts := at("2025-01-02T08:00:00Z")
	records := []domain.RateRecord{
		rate(8, "USD", ts, "1.10"),
		rate(7, "USD", ts, "1.00"),
	}

	got := timeseries.ComputeVariations(records)

	require.Len(t, got, 1)
	assert.True(t, dec("1.10").Equal(got[0].CurrentValue))
	assert.True(t, dec("10").Equal(*got[0].VariationPercent))
}

func TestComputeVariations_DoesNotReorderInput(t *testing.T) {
	records := []domain.PriceRecord{
		price(1, "Copper", at("2025-01-01T08:00:00Z"), "100"),
		price(2, "Copper", at("2025-01-02T08:00:00Z"), "110"),
	}
	before := append([]domain.PriceRecord(nil), records...)

	timeseries.ComputeVariations(records)

	assert.Equal(t, before, records)
}
