package timeseries

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Default number of decimal places per domain.
const (
	PricePlaces int32 = 8
	RatePlaces  int32 = 4
)

// ValueFormat renders pivot values. Integral values render without decimals; other
// values are rounded to Places and trailing zeros are dropped.
type ValueFormat struct {
	Places int32
}

// Format renders v as text.
func (f ValueFormat) Format(v decimal.Decimal) string {
	if v.IsInteger() {
		return v.StringFixed(0)
	}
	return v.Round(f.Places).String()
}

// Decimals returns how many fractional digits Format produces for v.
func (f ValueFormat) Decimals(v decimal.Decimal) int {
	s := f.Format(v)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
