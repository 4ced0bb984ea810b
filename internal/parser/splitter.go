package parser

import (
	"regexp"
	"strings"
	"time"
)

// documentMeta holds the two mandatory fields read from the metadata sheet.
type documentMeta struct {
	ClientName  string
	CreatedDate string
}

// splitWorkbook separates the metadata sheet (sheet 0) from the data sheets
// (sheet 1..N). A workbook needs at least one of each.
func splitWorkbook(wb *Workbook) (documentMeta, []Sheet, error) {
	if wb == nil || len(wb.Sheets) < 2 {
		return documentMeta{}, nil, &StructuralError{
			Reason: "workbook must contain a metadata sheet and at least one data sheet",
		}
	}

	meta, err := scanMetadataSheet(wb.Sheets[0])
	if err != nil {
		return documentMeta{}, nil, err
	}

	return meta, wb.Sheets[1:], nil
}

// scanMetadataSheet reads the first sheet as (field, value) rows taken from
// the first two columns.
func scanMetadataSheet(sheet Sheet) (documentMeta, error) {
	var meta documentMeta

	for _, row := range sheet.Rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		value := ""
		if len(row) > 1 {
			value = strings.TrimSpace(row[1])
		}

		switch name {
		case "Client Name":
			meta.ClientName = value
		case "Created":
			meta.CreatedDate = FormatCreatedDate(value)
		}
	}

	if meta.ClientName == "" {
		return meta, &StructuralError{Reason: "metadata sheet has no Client Name"}
	}
	if meta.CreatedDate == "" {
		return meta, &StructuralError{Reason: "metadata sheet has no Created date"}
	}

	return meta, nil
}

// createdDateLayouts are the date renderings seen in survey exports. Excel
// cell text varies with the workbook's number formats, so several layouts are
// tried before giving up.
var createdDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"1/2/2006",
	"1/2/06",
	"01-02-06",
	"2-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	time.RFC3339,
}

// FormatCreatedDate normalizes a created-date cell to ISO YYYY-MM-DD. A value
// that parses as no known calendar layout passes through unchanged.
func FormatCreatedDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range createdDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

var (
	reLowerUpper = regexp.MustCompile(`([a-z])([A-Z])`)
	reUpperRun   = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
)

// ReportName derives a display name from a data sheet identifier by inserting
// spaces at case boundaries: "BoardPerformance" becomes "Board Performance",
// "CEOReview" becomes "CEO Review".
func ReportName(sheetID string) string {
	s := reUpperRun.ReplaceAllString(sheetID, "$1 $2")
	s = reLowerUpper.ReplaceAllString(s, "$1 $2")
	return strings.TrimSpace(s)
}
