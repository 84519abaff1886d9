package pgsql

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// seriesTable describes how a time series is laid out in a table.
type seriesTable struct {
	name       string
	keyColumn  string
	timeColumn string
	columns    []string
	// dateOnly marks a DATE time column.
	dateOnly bool
}

var (
	metalPricesTable = seriesTable{
		name:       "metal_prices",
		keyColumn:  "metal_type",
		timeColumn: "created_at",
		columns:    []string{"id", "metal_type", "price", "currency", "unit", "source_product_name", "created_at"},
	}
	exchangeRatesTable = seriesTable{
		name:       "exchange_rates",
		keyColumn:  "quote_currency",
		timeColumn: "ref_date",
		columns:    []string{"id", "base_currency", "quote_currency", "ref_date", "rate", "metadata", "created_at"},
		dateOnly:   true,
	}
)

// bound renders a time bound for the time column. A DATE column is compared with the
// calendar date of v in v's own location.
func (t seriesTable) bound(v time.Time) any {
	if t.dateOnly {
		return v.Format(domain.DayLayout)
	}
	return v
}

func (t seriesTable) newestFirst() []string {
	return []string{t.timeColumn + " DESC", "id DESC"}
}

// historyQuery selects the rows matching q, newest first.
func (t seriesTable) historyQuery(q domain.SeriesQuery) sq.SelectBuilder {
	b := psql.Select(t.columns...).From(t.name)
	if q.From != nil {
		b = b.Where(sq.GtOrEq{t.timeColumn: t.bound(*q.From)})
	}
	if q.Until != nil {
		b = b.Where(sq.Lt{t.timeColumn: t.bound(*q.Until)})
	}
	if q.Key != "" {
		b = b.Where(sq.Eq{t.keyColumn: q.Key})
	}
	if q.Before != nil {
		b = b.Where(sq.Expr(fmt.Sprintf("(%s, id) < (?, ?)", t.timeColumn), t.bound(q.Before.Timestamp), q.Before.ID))
	}
	b = b.OrderBy(t.newestFirst()...)
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}
	return b
}

// latestPerKeyQuery selects up to depth of the newest rows of every key.
func (t seriesTable) latestPerKeyQuery(depth int) sq.SelectBuilder {
	if depth < 1 {
		depth = 1
	}
	rank := fmt.Sprintf("ROW_NUMBER() OVER (PARTITION BY %s ORDER BY %s DESC, id DESC) AS rn", t.keyColumn, t.timeColumn)
	ranked := sq.Select(append(append([]string{}, t.columns...), rank)...).From(t.name)

	return psql.Select(t.columns...).
		FromSelect(ranked, "ranked").
		Where(sq.LtOrEq{"rn": depth}).
		OrderBy(append([]string{t.keyColumn}, t.newestFirst()...)...)
}

// statisticsQuery counts rows and keys and finds the time range of the table.
func (t seriesTable) statisticsQuery() sq.SelectBuilder {
	return psql.Select(
		"COUNT(*)",
		fmt.Sprintf("COUNT(DISTINCT %s)", t.keyColumn),
		fmt.Sprintf("MIN(%s)", t.timeColumn),
		fmt.Sprintf("MAX(%s)", t.timeColumn),
	).From(t.name)
}
