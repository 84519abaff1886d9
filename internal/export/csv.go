package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV renders the table as CSV with the same layout as WriteXLSX. Values are
// written with ValueFormat and cells without an observation are empty strings.
func WriteCSV(table *domain.PivotTable, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	if opts.BOMPrefix {
		buf.Write(utf8BOM)
	}

	writer := csv.NewWriter(&buf)

	header := make([]string, 0, len(table.ColumnDates)+1)
	header = append(header, opts.HeaderLabel)
	for _, day := range table.ColumnDates {
		header = append(header, day.Format(opts.DateLayout))
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write headers: %w", err)
	}

	for r, rowKey := range table.RowKeys {
		record := make([]string, 0, len(table.ColumnDates)+1)
		record = append(record, rowKey)
		for c := range table.ColumnDates {
			cell := table.Cell(r, c)
			if !cell.Present {
				record = append(record, "")
				continue
			}
			record = append(record, opts.Format.Format(cell.Value))
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write record %d: %w", r+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
