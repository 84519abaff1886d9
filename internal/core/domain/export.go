package domain

import (
	"fmt"
	"strings"
)

// DefaultExportDateLayout labels pivot columns day/month/year, so columns from different
// years never share a header.
const DefaultExportDateLayout = "02/01/2006"

// ExportFormat is the file format of a pivot export.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
)

// ParseExportFormat accepts "xlsx" and "csv" in any case; empty means xlsx.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", ExportXLSX:
		return ExportXLSX, nil
	case ExportCSV:
		return ExportCSV, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the MIME type of the format.
func (f ExportFormat) ContentType() string {
	if f == ExportCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ExportDocument is a rendered export ready to be streamed to a client.
type ExportDocument struct {
	Filename    string
	ContentType string
	Body        []byte
	Rows        int
	Columns     int
}
