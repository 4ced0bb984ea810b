package parser

import "testing"

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Client Name", "clientname"},
		{"  Question #  ", "question"},
		{"Q#", "q"},
		{"Sub-Question", "subquestion"},
		{"Skip Reason", "skipreason"},
		{"RESPONDENT", "respondent"},
		{"Header 2024!", "header2024"},
		{"", ""},
		{"###", ""},
	}

	for _, tc := range cases {
		if got := NormalizeHeader(tc.in); got != tc.want {
			t.Fatalf("NormalizeHeader(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapHeader_ExactVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		header string
		field  string
	}{
		{"Client Name", FieldClientName},
		{"Created", FieldCreatedDate},
		{"Created Date", FieldCreatedDate},
		{"Question Number", FieldQuestionNumber},
		{"Question No", FieldQuestionNumber},
		{"Q Number", FieldQuestionNumber},
		{"Q No", FieldQuestionNumber},
		{"Q#", FieldQuestionNumber},
		{"Sub-Question", FieldSubQuestion},
		{"Sub Question", FieldSubQuestion},
		{"Question", FieldQuestionText},
		{"Question Text", FieldQuestionText},
		{"Respondent", FieldRespondent},
		{"Position", FieldPosition},
		{"Response", FieldScore},
		{"Score", FieldScore},
		{"Response Text", FieldResponse},
		{"Text Response", FieldResponse},
		{"Comment", FieldComment},
		{"Skip Reason", FieldSkipReason},
	}

	for _, tc := range cases {
		got, ok := MapHeader(tc.header)
		if !ok {
			t.Fatalf("MapHeader(%q) unmatched, want %s", tc.header, tc.field)
		}
		if got != tc.field {
			t.Fatalf("MapHeader(%q) = %s, want %s", tc.header, got, tc.field)
		}
	}
}

// The substring fallback walks headerTable in declaration order, so the
// resolution of ambiguous headers is fixed and must not drift.
func TestMapHeader_SubstringFallbackOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		header string
		field  string
	}{
		// "q1" has no exact entry; the bare "q" key catches it.
		{"Q#1", FieldQuestionNumber},
		// "subquestion" is checked before "question".
		{"Sub-Questions", FieldSubQuestion},
		{"Sub Question Text", FieldSubQuestion},
		// "question" is checked before "q".
		{"Questions", FieldQuestionText},
		// contains both "question" and "questionnumber"; the longer key
		// comes first in the table.
		{"Question Number (1-10)", FieldQuestionNumber},
		{"Respondent Name", FieldRespondent},
		{"Overall Score", FieldScore},
		// Any stray "q" pulls a header to question_number. Deliberate cost
		// of the fixed-order table; pinned here so a reorder is noticed.
		{"Frequency", FieldQuestionNumber},
	}

	for _, tc := range cases {
		got, ok := MapHeader(tc.header)
		if !ok {
			t.Fatalf("MapHeader(%q) unmatched, want %s", tc.header, tc.field)
		}
		if got != tc.field {
			t.Fatalf("MapHeader(%q) = %s, want %s", tc.header, got, tc.field)
		}
	}
}

func TestMapHeader_Unmatched(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"", "   ", "Notes", "Board Term", "%%%"} {
		if field, ok := MapHeader(header); ok {
			t.Fatalf("MapHeader(%q) = %s, want unmatched", header, field)
		}
	}
}

func TestMapColumns_CollectsUnmatched(t *testing.T) {
	t.Parallel()

	cm := mapColumns([]string{"Question", "Respondent", "Board Term", "", "Notes"})

	if cm.fields[0] != FieldQuestionText || cm.fields[1] != FieldRespondent {
		t.Fatalf("unexpected field mapping: %v", cm.fields)
	}
	if cm.fields[2] != "" || cm.fields[3] != "" || cm.fields[4] != "" {
		t.Fatalf("expected columns 2-4 unmapped, got %v", cm.fields)
	}
	if len(cm.unmatched) != 2 || cm.unmatched[0] != "Board Term" || cm.unmatched[1] != "Notes" {
		t.Fatalf("unexpected unmatched headers: %v", cm.unmatched)
	}
}
