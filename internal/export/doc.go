// Package export renders pivot tables as spreadsheet documents.
//
// WriteXLSX produces a styled workbook with one row per series key and one column
// per calendar day; WriteCSV produces the same grid as plain text. Both leave cells
// without an observation empty, so a blank cell never reads as a zero value.
package export
