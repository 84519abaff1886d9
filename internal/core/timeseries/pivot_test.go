package timeseries_test

import (
	"testing"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/SscSPs/market_prices_app/internal/core/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPivot_RoundTrip(t *testing.T) {
	records := []domain.PriceRecord{
		price(1, "Copper", at("2025-01-01T09:00:00Z"), "100"),
		price(2, "Copper", at("2025-01-02T09:00:00Z"), "110"),
		price(3, "Nickel", at("2025-01-01T09:00:00Z"), "50"),
	}

	table, err := timeseries.BuildPivot(records, timeseries.PivotOptions[domain.PriceRecord]{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Copper", "Nickel"}, table.RowKeys)
	require.Len(t, table.ColumnDates, 2)
	assert.Equal(t, "2025-01-01", table.ColumnDates[0].Format(domain.DayLayout))
	assert.Equal(t, "2025-01-02", table.ColumnDates[1].Format(domain.DayLayout))

	expect := [][]string{
		{"100", "110"},
		{"50", ""},
	}
	for r := range table.RowKeys {
		for c := range table.ColumnDates {
			cell := table.Cell(r, c)
			if expect[r][c] == "" {
				assert.False(t, cell.Present, "row %d col %d should be blank", r, c)
				continue
			}
			require.True(t, cell.Present)
			assert.True(t, dec(expect[r][c]).Equal(cell.Value))
		}
	}
	assert.Equal(t, 3, table.Filled())
	assert.Equal(t, domain.SeriesMeta{Currency: "USD", Unit: "t"}, table.RowMetadata["Copper"])
}

func TestBuildPivot_BlankIsNotZero(t *testing.T) {
	records := []domain.PriceRecord{
		price(1, "Copper", at("2025-01-01T09:00:00Z"), "0"),
		price(2, "Nickel", at("2025-01-02T09:00:00Z"), "7"),
	}

	table, err := timeseries.BuildPivot(records, timeseries.PivotOptions[domain.PriceRecord]{})
	require.NoError(t, err)

	zero, ok := table.Lookup("Copper", day("2025-01-01"))
	assert.True(t, ok)
	assert.True(t, zero.IsZero())

	_, ok = table.Lookup("Copper", day("2025-01-02"))
	assert.False(t, ok)
}

func TestBuildPivot_LookupNeverFaults(t *testing.T) {
	table, err := timeseries.BuildPivot([]domain.PriceRecord{}, timeseries.PivotOptions[domain.PriceRecord]{})
	require.NoError(t, err)

	assert.True(t, table.IsEmpty())
	assert.Empty(t, table.RowKeys)
	_, ok := table.Lookup("Unknown", day("2030-01-01"))
	assert.False(t, ok)
	assert.False(t, table.Cell(5, 5).Present)
	assert.False(t, table.Cell(-1, 0).Present)
}

func TestBuildPivot_OnlyDaysWithDataBecomeColumns(t *testing.T) {
	records := []domain.PriceRecord{
		price(1, "Copper", at("2025-01-01T09:00:00Z"), "1"),
		price(2, "Copper", at("2025-01-05T09:00:00Z"), "2"),
	}

	table, err := timeseries.BuildPivot(records, timeseries.PivotOptions[domain.PriceRecord]{})
	require.NoError(t, err)

	assert.Len(t, table.ColumnDates, 2)
}

func TestBuildPivot_RowOrder(t *testing.T) {
	records := []domain.PriceRecord{
		price(1, "Zinc", at("2025-01-01T09:00:00Z"), "1"),
		price(2, "Aluminium", at("2025-01-01T09:00:00Z"), "2"),
		price(3, "Lead", at("2025-01-01T09:00:00Z"), "3"),
	}

	alpha, err := timeseries.BuildPivot(records, timeseries.PivotOptions[domain.PriceRecord]{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Aluminium", "Lead", "Zinc"}, alpha.RowKeys)

	seen, err := timeseries.BuildPivot(records, timeseries.PivotOptions[domain.PriceRecord]{RowOrder: timeseries.RowOrderFirstSeen})
	require.NoError(t, err)
	assert.Equal(t, []string{"Zinc", "Aluminium", "Lead"}, seen.RowKeys)
}

func TestBuildPivot_DuplicatePolicies(t *testing.T) {
	records := []domain.PriceRecord{
		price(2, "Copper", at("2025-01-01T15:00:00Z"), "105"),
		price(1, "Copper", at("2025-01-01T09:00:00Z"), "100"),
		price(3, "Copper", at("2025-01-01T15:00:00Z"), "107"),
	}

	latest, err := timeseries.BuildPivot(records, timeseries.PivotOptions[domain.PriceRecord]{})
	require.NoError(t, err)
	v, ok := latest.Lookup("Copper", day("2025-01-01"))
	require.True(t, ok)
	assert.True(t, dec("107").Equal(v), "latest timestamp wins, ties go to the higher sequence")

	earliest, err := timeseries.BuildPivot(records, timeseries.PivotOptions[domain.PriceRecord]{Duplicates: timeseries.DuplicateKeepEarliest})
	require.NoError(t, err)
	v, ok = earliest.Lookup("Copper", day("2025-01-01"))
	require.True(t, ok)
	assert.True(t, dec("100").Equal(v))

	_, err = timeseries.BuildPivot(records, timeseries.PivotOptions[domain.PriceRecord]{Duplicates: timeseries.DuplicateReject})
	assert.ErrorIs(t, err, timeseries.ErrDuplicateCell)
}

func TestBuildPivot_CustomRowKeyAndLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	records := []domain.PriceRecord{
		price(1, "Copper", at("2025-01-01T20:00:00Z"), "100"),
	}

	table, err := timeseries.BuildPivot(records, timeseries.PivotOptions[domain.PriceRecord]{
		Location: tokyo,
		RowKey:   func(p domain.PriceRecord) string { return p.ProductLabel() },
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Copper LME Cash"}, table.RowKeys)
	require.Len(t, table.ColumnDates, 1)
	assert.Equal(t, "2025-01-02", table.ColumnDates[0].Format(domain.DayLayout))
}

func TestBuildPivot_RateDaysIgnoreLocationOffset(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	records := []domain.RateRecord{
		rate(1, "USD", day("2025-01-01"), "1.04"),
		rate(2, "USD", day("2025-01-02"), "1.03"),
	}

	table, err := timeseries.BuildPivot(records, timeseries.PivotOptions[domain.RateRecord]{Location: saoPaulo})
	require.NoError(t, err)

	require.Len(t, table.ColumnDates, 2)
	assert.Equal(t, "2025-01-01", table.ColumnDates[0].Format(domain.DayLayout))
	assert.Equal(t, "2025-01-02", table.ColumnDates[1].Format(domain.DayLayout))
}
