package export

import (
	"fmt"
	"strings"

	"github.com/SscSPs/market_prices_app/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const (
	headerFillColor = "FFC000"
	labelFillColor  = "FFFF00"
	labelColWidth   = 35
	valueColWidth   = 12
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

var centered = &excelize.Alignment{Horizontal: "center", Vertical: "center"}

// xlsxStyles caches the style IDs of a workbook. Value styles are keyed by the number
// of decimals they display.
type xlsxStyles struct {
	f      *excelize.File
	header int
	label  int
	blank  int
	values map[int]int
}

func newXLSXStyles(f *excelize.File) (*xlsxStyles, error) {
	s := &xlsxStyles{f: f, values: make(map[int]int)}
	var err error
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Border:    thinBorder,
		Alignment: centered,
	}); err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{labelFillColor}},
		Border: thinBorder,
	}); err != nil {
		return nil, fmt.Errorf("failed to create label style: %w", err)
	}
	if s.blank, err = f.NewStyle(&excelize.Style{Border: thinBorder, Alignment: centered}); err != nil {
		return nil, fmt.Errorf("failed to create blank cell style: %w", err)
	}
	return s, nil
}

func (s *xlsxStyles) value(decimals int) (int, error) {
	if id, ok := s.values[decimals]; ok {
		return id, nil
	}
	numFmt := numberFormat(decimals)
	id, err := s.f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Border:       thinBorder,
		Alignment:    centered,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create number style: %w", err)
	}
	s.values[decimals] = id
	return id, nil
}

// numberFormat returns a grouped number format showing exactly decimals fractional digits.
func numberFormat(decimals int) string {
	if decimals <= 0 {
		return "#,##0"
	}
	return "#,##0." + strings.Repeat("0", decimals)
}

// WriteXLSX renders the table as an xlsx workbook with a single sheet. Row labels go in
// column A, dates in row 1 and the value of (row, day) at their intersection. Cells
// without an observation are left empty.
func WriteXLSX(table *domain.PivotTable, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	f := excelize.NewFile()
	defer f.Close()

	sheet := opts.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	styles, err := newXLSXStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeXLSXHeader(f, sheet, table, opts, styles); err != nil {
		return nil, err
	}

	for r, rowKey := range table.RowKeys {
		labelRef, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStr(sheet, labelRef, rowKey); err != nil {
			return nil, fmt.Errorf("failed to write row label %q: %w", rowKey, err)
		}
		if err := f.SetCellStyle(sheet, labelRef, labelRef, styles.label); err != nil {
			return nil, err
		}

		for c := range table.ColumnDates {
			ref, err := excelize.CoordinatesToCellName(c+2, r+2)
			if err != nil {
				return nil, err
			}
			cell := table.Cell(r, c)
			if !cell.Present {
				if err := f.SetCellStyle(sheet, ref, ref, styles.blank); err != nil {
					return nil, err
				}
				continue
			}

			decimals := opts.Format.Decimals(cell.Value)
			if err := f.SetCellFloat(sheet, ref, cell.Value.InexactFloat64(), decimals, 64); err != nil {
				return nil, fmt.Errorf("failed to write value at %s: %w", ref, err)
			}
			styleID, err := styles.value(decimals)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheet, ref, ref, styleID); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", labelColWidth); err != nil {
		return nil, err
	}
	if n := len(table.ColumnDates); n > 0 {
		last, err := excelize.ColumnNumberToName(n + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "B", last, valueColWidth); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeXLSXHeader(f *excelize.File, sheet string, table *domain.PivotTable, opts Options, styles *xlsxStyles) error {
	if err := f.SetCellStr(sheet, "A1", opts.HeaderLabel); err != nil {
		return fmt.Errorf("failed to write header label: %w", err)
	}
	for c, day := range table.ColumnDates {
		ref, err := excelize.CoordinatesToCellName(c+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, ref, day.Format(opts.DateLayout)); err != nil {
			return fmt.Errorf("failed to write column header %s: %w", ref, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(table.ColumnDates)+1, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, styles.header)
}
