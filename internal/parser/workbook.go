// Package parser transforms decoded survey workbooks into structured
// documents. It is pure: the spreadsheet file format is decoded by the caller
// (see internal/service/excel) and supplied here as a grid of cell text.
package parser

// Workbook is a decoded spreadsheet: an ordered sequence of sheets.
type Workbook struct {
	Sheets []Sheet
}

// Sheet is an ordered grid of cell values. Row 0 of a data sheet is the
// header row.
type Sheet struct {
	Name string
	Rows [][]string
}
