package timeseries_test

import (
	"testing"

	"github.com/SscSPs/market_prices_app/internal/core/timeseries"
	"github.com/stretchr/testify/assert"
)

func TestValueFormat(t *testing.T) {
	tests := []struct {
		name     string
		places   int32
		in       string
		want     string
		decimals int
	}{
		{name: "integral", places: 8, in: "100", want: "100", decimals: 0},
		{name: "integral with trailing zeros", places: 8, in: "100.000", want: "100", decimals: 0},
		{name: "metal precision", places: 8, in: "9123.123456789", want: "9123.12345679", decimals: 8},
		{name: "rate precision", places: 4, in: "1.0412345", want: "1.0412", decimals: 4},
		{name: "short fraction kept as is", places: 4, in: "1.5", want: "1.5", decimals: 1},
		{name: "negative", places: 4, in: "-0.25", want: "-0.25", decimals: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := timeseries.ValueFormat{Places: tt.places}
			assert.Equal(t, tt.want, f.Format(dec(tt.in)))
			assert.Equal(t, tt.decimals, f.Decimals(dec(tt.in)))
		})
	}
}
