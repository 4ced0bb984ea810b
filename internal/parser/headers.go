package parser

import "strings"

// Semantic field names produced by the header table.
const (
	FieldClientName     = "client_name"
	FieldCreatedDate    = "created_date"
	FieldQuestionNumber = "question_number"
	FieldQuestionText   = "question_text"
	FieldSubQuestion    = "sub_question_text"
	FieldRespondent     = "respondent"
	FieldPosition       = "position"
	FieldScore          = "score"
	FieldResponse       = "response"
	FieldComment        = "comment"
	FieldSkipReason     = "skip_reason"
)

type headerEntry struct {
	key   string // normalized header variant
	field string
}

// headerTable lists every known header variant, already normalized. The order
// is significant: when no exact match exists, the first key that is a
// substring of the normalized header wins, so more specific keys must come
// before their prefixes ("subquestion" before "question", "question" before
// "q"). The bare "q" entry is the normalized form of the "Q#" variant.
//
// Note the column headed "Response" carries the overloaded score-or-text
// value and therefore maps to the score field; a genuine free-text column is
// recognized as "Response Text" / "Text Response".
var headerTable = []headerEntry{
	{"clientname", FieldClientName},
	{"createddate", FieldCreatedDate},
	{"created", FieldCreatedDate},
	{"questionnumber", FieldQuestionNumber},
	{"questionno", FieldQuestionNumber},
	{"qnumber", FieldQuestionNumber},
	{"qno", FieldQuestionNumber},
	{"subquestion", FieldSubQuestion},
	{"questiontext", FieldQuestionText},
	{"question", FieldQuestionText},
	{"q", FieldQuestionNumber},
	{"respondent", FieldRespondent},
	{"position", FieldPosition},
	{"responsetext", FieldResponse},
	{"textresponse", FieldResponse},
	{"response", FieldScore},
	{"score", FieldScore},
	{"comment", FieldComment},
	{"skipreason", FieldSkipReason},
}

// exactHeaders is the exact-match index over headerTable. Built first-entry
// wins so the table order stays the single source of truth.
var exactHeaders = func() map[string]string {
	m := make(map[string]string, len(headerTable))
	for _, e := range headerTable {
		if _, ok := m[e.key]; !ok {
			m[e.key] = e.field
		}
	}
	return m
}()

// NormalizeHeader lower-cases a raw column header and strips every rune
// outside [a-z0-9], making headers comparable across files.
func NormalizeHeader(header string) string {
	var b strings.Builder
	b.Grow(len(header))
	for _, r := range strings.ToLower(header) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MapHeader resolves a raw column header to a semantic field name, exact
// match first, then ordered substring fallback. Returns false when no table
// key matches; an unmatched header is data, not an error.
func MapHeader(header string) (string, bool) {
	key := NormalizeHeader(header)
	if key == "" {
		return "", false
	}
	if field, ok := exactHeaders[key]; ok {
		return field, true
	}
	for _, e := range headerTable {
		if strings.Contains(key, e.key) {
			return e.field, true
		}
	}
	return "", false
}

// columnMap is the per-sheet resolution of header row to semantic fields.
type columnMap struct {
	fields    []string // field per column index, "" when unmapped
	unmatched []string // headers with no mapping, in column order
}

// mapColumns resolves a data sheet's header row. Blank headers are skipped
// silently; non-blank headers that match no table key are collected so the
// assembler can surface them as unmatched_headers.
func mapColumns(header []string) columnMap {
	cm := columnMap{fields: make([]string, len(header))}
	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			continue
		}
		field, ok := MapHeader(h)
		if !ok {
			cm.unmatched = append(cm.unmatched, h)
			continue
		}
		cm.fields[i] = field
	}
	return cm
}
