// Package excel decodes xlsx files into the parser's workbook grid. The
// choice of decoding library lives here so the transformer core stays free of
// it.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/wayfarerboy/lintstock-cli/internal/parser"
)

// LoadWorkbook decodes an xlsx stream into ordered sheets of cell text.
func LoadWorkbook(r io.Reader) (*parser.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	return readWorkbook(f)
}

// LoadWorkbookFile decodes an xlsx file on disk.
func LoadWorkbookFile(path string) (*parser.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) (*parser.Workbook, error) {
	wb := &parser.Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, parser.Sheet{Name: name, Rows: rows})
	}
	return wb, nil
}
