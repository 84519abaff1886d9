package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/SscSPs/market_prices_app/internal/core/timeseries"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func day(s string) time.Time {
	t, err := time.Parse(timeseries.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// copperNickel has a Copper value on both days and a Nickel value on the second day only.
func copperNickel() *domain.PivotTable {
	d1, d2 := day("2025-01-01"), day("2025-01-02")
	table := domain.NewPivotTable([]string{"Copper", "Nickel"}, []time.Time{d1, d2})
	table.Set("Copper", d1, decimal.NewFromInt(9000))
	table.Set("Copper", d2, decimal.RequireFromString("9100.5"))
	table.Set("Nickel", d2, decimal.RequireFromString("16000.123456789"))
	return table
}

func TestWriteXLSX_Layout(t *testing.T) {
	data, err := WriteXLSX(copperNickel(), Options{
		SheetName:   "Prices",
		HeaderLabel: "Product / Date",
		DateLayout:  "02/01",
		Format:      timeseries.ValueFormat{Places: timeseries.PricePlaces},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Prices"}, f.GetSheetList())

	raw := excelize.Options{RawCellValue: true}
	get := func(ref string) string {
		v, err := f.GetCellValue("Prices", ref, raw)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Product / Date", get("A1"))
	assert.Equal(t, "01/01", get("B1"))
	assert.Equal(t, "02/01", get("C1"))
	assert.Equal(t, "Copper", get("A2"))
	assert.Equal(t, "Nickel", get("A3"))
	assert.Equal(t, "9000", get("B2"))
	assert.Equal(t, "9100.5", get("C2"))
	assert.Equal(t, "", get("B3"), "missing observation stays blank")
	assert.Equal(t, "16000.12345679", get("C3"))
}

func TestWriteXLSX_ZeroIsNotBlank(t *testing.T) {
	d := day("2025-03-03")
	table := domain.NewPivotTable([]string{"USD"}, []time.Time{d})
	table.Set("USD", d, decimal.Zero)

	data, err := WriteXLSX(table, Options{HeaderLabel: "Currency / Date"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Sheet1", "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "0", v)

	header, err := f.GetCellValue("Sheet1", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03", header, "default layout is ISO date")
}

func TestWriteCSV(t *testing.T) {
	data, err := WriteCSV(copperNickel(), Options{
		HeaderLabel: "Product / Date",
		Format:      timeseries.ValueFormat{Places: 4},
	})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Product / Date", "2025-01-01", "2025-01-02"},
		{"Copper", "9000", "9100.5"},
		{"Nickel", "", "16000.1235"},
	}, records)
}

func TestWriteCSV_BOM(t *testing.T) {
	data, err := WriteCSV(copperNickel(), Options{BOMPrefix: true})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, utf8BOM))
}

func TestNumberFormat(t *testing.T) {
	assert.Equal(t, "#,##0", numberFormat(0))
	assert.Equal(t, "#,##0.00", numberFormat(2))
}
