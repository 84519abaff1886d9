package timeseries

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/market_prices_app/internal/apperrors"
	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

// Input layouts accepted by NormalizeFilter.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// allKeys is the key filter value meaning "every key".
const allKeys = "all"

// Window is the history window applied when a filter carries no date bounds at all.
// The zero value is not a valid window: callers must pick LastDays or Unbounded.
type Window struct {
	days int
	set  bool
}

// LastDays is a rolling window of n days ending now. n <= 0 means Unbounded.
func LastDays(n int) Window {
	return Window{days: n, set: true}
}

// Unbounded returns the whole history.
func Unbounded() Window {
	return Window{set: true}
}

// IsUnbounded reports whether the window has no lower bound.
func (w Window) IsUnbounded() bool {
	return w.days <= 0
}

// NormalizeOptions configures NormalizeFilter.
type NormalizeOptions struct {
	// Now anchors relative windows. Zero means time.Now().
	Now time.Time
	// Location interprets calendar dates. Nil means UTC.
	Location *time.Location
	// DefaultWindow applies when the filter has no month, dates or days.
	DefaultWindow Window
	// Strict rejects malformed values with ErrValidation instead of ignoring them.
	Strict bool
	// Limit caps the number of rows the store returns; 0 means no cap.
	Limit int
}

// FilterIssue describes a filter value that was ignored in permissive mode.
type FilterIssue struct {
	Field  string
	Value  string
	Reason string
}

func (i FilterIssue) String() string {
	return fmt.Sprintf("%s=%q: %s", i.Field, i.Value, i.Reason)
}

// NormalizeFilter turns caller parameters into a canonical SeriesQuery.
//
// Precedence: Month beats the explicit StartDate/EndDate pair, which beats Days, which
// beats opts.DefaultWindow. EndDate covers its whole day. A key of "all" in any case
// means no key filter.
func NormalizeFilter(f domain.HistoryFilter, opts NormalizeOptions) (domain.SeriesQuery, []FilterIssue, error) {
	if !opts.DefaultWindow.set {
		return domain.SeriesQuery{}, nil, fmt.Errorf("%w: default history window must be stated", apperrors.ErrValidation)
	}
	loc := orUTC(opts.Location)
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	q := domain.SeriesQuery{Key: normalizeKey(f.Key), Limit: opts.Limit}
	var issues []FilterIssue
	reject := func(field, value, reason string) error {
		if opts.Strict {
			return apperrors.NewValidationError(fmt.Sprintf("invalid %s %q: %s", field, value, reason))
		}
		issues = append(issues, FilterIssue{Field: field, Value: value, Reason: reason})
		return nil
	}

	if month := strings.TrimSpace(f.Month); month != "" {
		start, err := time.ParseInLocation(MonthLayout, month, loc)
		if err == nil {
			until := start.AddDate(0, 1, 0)
			q.From, q.Until = &start, &until
			return q, issues, nil
		}
		if err := reject("month", month, "expected YYYY-MM"); err != nil {
			return domain.SeriesQuery{}, nil, err
		}
	}

	from, err := parseDay("start_date", f.StartDate, loc, reject)
	if err != nil {
		return domain.SeriesQuery{}, nil, err
	}
	end, err := parseDay("end_date", f.EndDate, loc, reject)
	if err != nil {
		return domain.SeriesQuery{}, nil, err
	}
	if from != nil && end != nil && from.After(*end) {
		if err := reject("start_date", f.StartDate, "after end_date "+f.EndDate); err != nil {
			return domain.SeriesQuery{}, nil, err
		}
		from, end = nil, nil
	}
	if from != nil || end != nil {
		q.From = from
		if end != nil {
			until := end.AddDate(0, 0, 1)
			q.Until = &until
		}
		return q, issues, nil
	}

	days := f.Days
	if days < 0 {
		if err := reject("days", fmt.Sprint(days), "must be positive"); err != nil {
			return domain.SeriesQuery{}, nil, err
		}
		days = 0
	}
	if days == 0 && !opts.DefaultWindow.IsUnbounded() {
		days = opts.DefaultWindow.days
	}
	if days > 0 {
		start := now.In(loc).AddDate(0, 0, -days)
		q.From = &start
	}
	return q, issues, nil
}

func parseDay(field, value string, loc *time.Location, reject func(field, value, reason string) error) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return nil, reject(field, value, "expected YYYY-MM-DD")
	}
	return &t, nil
}

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if strings.EqualFold(key, allKeys) {
		return ""
	}
	return key
}
