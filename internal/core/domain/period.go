package domain

import (
	"fmt"
	"time"
)

// Period is a calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod validates and builds a Period.
func NewPeriod(year int, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("year out of range: %d", year)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// PeriodOf returns the period containing t in loc.
func PeriodOf(t time.Time, loc *time.Location) Period {
	t = t.In(loc)
	return Period{Year: t.Year(), Month: t.Month()}
}

// Previous returns the preceding calendar month; January rolls back to December of the prior year.
func (p Period) Previous() Period {
	if p.Month == time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Start returns midnight of the first day of the period in loc.
func (p Period) Start(loc *time.Location) time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
}

// End returns midnight of the first day of the following month in loc (exclusive bound).
func (p Period) End(loc *time.Location) time.Time {
	return p.Start(loc).AddDate(0, 1, 0)
}

// LastDay returns the last calendar day of the period.
func (p Period) LastDay(loc *time.Location) time.Time {
	return p.End(loc).AddDate(0, 0, -1)
}

// YearStart returns January 1st of the period's year in loc.
func (p Period) YearStart(loc *time.Location) time.Time {
	return time.Date(p.Year, time.January, 1, 0, 0, 0, 0, loc)
}

// Contains reports whether t falls inside the period in loc.
func (p Period) Contains(t time.Time, loc *time.Location) bool {
	t = t.In(loc)
	return t.Year() == p.Year && t.Month() == p.Month
}

// String formats the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
