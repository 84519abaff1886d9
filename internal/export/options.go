package export

import (
	"github.com/SscSPs/market_prices_app/internal/core/timeseries"
)

// Options configures how a pivot table is rendered.
type Options struct {
	// SheetName names the single worksheet of an xlsx document.
	SheetName string
	// HeaderLabel is written to the top-left cell, e.g. "Product / Date".
	HeaderLabel string
	// DateLayout formats the column headers.
	DateLayout string
	// Format controls the rendered precision of values.
	Format timeseries.ValueFormat
	// BOMPrefix prepends a UTF-8 BOM to CSV output so Excel detects the encoding.
	BOMPrefix bool
}

func (o Options) withDefaults() Options {
	if o.SheetName == "" {
		o.SheetName = "Sheet1"
	}
	if o.DateLayout == "" {
		o.DateLayout = timeseries.DateLayout
	}
	return o
}
