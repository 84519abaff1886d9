package timeseries

import (
	"slices"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildMonthlySummaries computes, per key, the closing value of period, the closing value
// of the month before it and the year-to-date average.
//
// yearToDate must cover January 1st of period.Year through the end of period;
// previousMonth must cover period.Previous(). Both are filtered again here, so wider
// inputs are safe. Keys with no record inside period are left out.
func BuildMonthlySummaries[R Series](yearToDate, previousMonth []R, period domain.Period, loc *time.Location) []domain.MonthlySummary {
	loc = orUTC(loc)

	closing := closingByKey(yearToDate, period, loc)
	prior := closingByKey(previousMonth, period.Previous(), loc)

	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, r := range yearToDate {
		t := localTime(r, loc)
		if t.Year() != period.Year || t.Month() > period.Month {
			continue
		}
		sums[r.SeriesKey()] = sums[r.SeriesKey()].Add(r.Amount())
		counts[r.SeriesKey()]++
	}

	keys := make([]string, 0, len(closing))
	for k := range closing {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]domain.MonthlySummary, 0, len(keys))
	for _, key := range keys {
		last := closing[key]
		summary := domain.MonthlySummary{
			Key:          key,
			Meta:         last.Meta(),
			ClosingValue: last.Amount(),
			ClosingDate:  last.ObservedAt(),
			YTDCount:     counts[key],
		}
		if counts[key] > 0 {
			summary.YTDAverage = sums[key].Div(decimal.NewFromInt(int64(counts[key])))
		}
		if p, ok := prior[key]; ok {
			value := p.Amount()
			at := p.ObservedAt()
			summary.PeriodValue = &value
			summary.PeriodDate = &at
		}
		out = append(out, summary)
	}
	return out
}

// ClosingValues returns the last record of each key inside period.
func ClosingValues[R Series](records []R, period domain.Period, loc *time.Location) map[string]R {
	return closingByKey(records, period, orUTC(loc))
}

func closingByKey[R Series](records []R, period domain.Period, loc *time.Location) map[string]R {
	out := make(map[string]R)
	for _, r := range records {
		if !period.Contains(localTime(r, loc), loc) {
			continue
		}
		current, ok := out[r.SeriesKey()]
		if !ok || newer(r, current) {
			out[r.SeriesKey()] = r
		}
	}
	return out
}
