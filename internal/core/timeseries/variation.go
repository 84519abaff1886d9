package timeseries

import (
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PercentPlaces is the number of decimal places variation percentages are rounded to.
const PercentPlaces int32 = 2

var hundred = decimal.NewFromInt(100)

// ComputeVariations compares, per key, the most recent record with the one right before
// it in chronological order. "Previous" is the second most recent observation, whatever
// its age: it is not a "24 hours ago" comparison. Callers that need a minimum distance
// between the two values must narrow the input window before calling.
func ComputeVariations[R Series](records []R) []domain.VariationResult {
	groups, keys := groupByKey(records)
	out := make([]domain.VariationResult, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		sortNewestFirst(group)

		current := group[0]
		result := domain.VariationResult{
			Key:          key,
			CurrentValue: current.Amount(),
			CurrentAt:    current.ObservedAt(),
		}
		if len(group) > 1 {
			previous := group[1]
			value := previous.Amount()
			at := previous.ObservedAt()
			result.PreviousValue = &value
			result.PreviousAt = &at
			result.VariationPercent = VariationPercent(current.Amount(), value)
		}
		out = append(out, result)
	}
	return out
}

// VariationPercent returns ((current - previous) / previous) * 100 rounded to
// PercentPlaces, or nil when previous is zero. Negative previous values are accepted and
// the sign of the result follows the direction of the move.
func VariationPercent(current, previous decimal.Decimal) *decimal.Decimal {
	if previous.IsZero() {
		return nil
	}
	pct := current.Sub(previous).Div(previous).Mul(hundred).Round(PercentPlaces)
	return &pct
}
