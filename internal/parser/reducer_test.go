package parser

import "testing"

// headers for most reducer tests: number, question, sub, respondent,
// position, overloaded score/text, comment, skip reason.
func testColumns(t *testing.T) columnMap {
	t.Helper()
	return mapColumns([]string{
		"Question Number", "Question", "Sub-Question",
		"Respondent", "Position", "Response", "Comment", "Skip Reason",
	})
}

func TestReduceRow_FirstRowOfBlock(t *testing.T) {
	t.Parallel()
	cm := testColumns(t)

	state, ent := reduceRow(rowState{}, cm, []string{
		"1", "How effective is the board? [clientName]", "Composition",
		"Jane Doe", "Chair", "4", "", "",
	})

	if ent == nil {
		t.Fatal("expected a materialized row")
	}
	if ent.questionNumber == nil || *ent.questionNumber != 1 {
		t.Fatalf("question number = %v, want 1", ent.questionNumber)
	}
	if ent.questionText != "How effective is the board?" {
		t.Fatalf("question text = %q (bracketed token should be stripped)", ent.questionText)
	}
	if ent.subQuestionText != "Composition" {
		t.Fatalf("sub question = %q", ent.subQuestionText)
	}
	if ent.score == nil || *ent.score != 4 {
		t.Fatalf("score = %v, want 4", ent.score)
	}
	if ent.response != "" {
		t.Fatalf("response should be empty for a numeric cell, got %q", ent.response)
	}

	if state.questionText != "How effective is the board?" || state.subQuestionText != "Composition" {
		t.Fatalf("state not updated: %+v", state)
	}
	if state.questionNumber == nil || *state.questionNumber != 1 {
		t.Fatalf("state number = %v, want 1", state.questionNumber)
	}
}

func TestReduceRow_CarryForward(t *testing.T) {
	t.Parallel()
	cm := testColumns(t)

	one := 1
	state := rowState{questionNumber: &one, questionText: "How effective is the board?", subQuestionText: "Composition"}

	// Sparse continuation row: number/question/sub cells are blank.
	next, ent := reduceRow(state, cm, []string{
		"", "", "", "John Smith", "NED", "5", "", "",
	})

	if ent == nil {
		t.Fatal("expected a materialized row")
	}
	if ent.questionNumber == nil || *ent.questionNumber != 1 {
		t.Fatalf("inherited number = %v, want 1", ent.questionNumber)
	}
	if ent.questionText != "How effective is the board?" || ent.subQuestionText != "Composition" {
		t.Fatalf("inherited text/sub = %q / %q", ent.questionText, ent.subQuestionText)
	}
	if next.questionText != state.questionText {
		t.Fatalf("state should be unchanged, got %+v", next)
	}
}

func TestReduceRow_NewQuestionClearsSubQuestion(t *testing.T) {
	t.Parallel()
	cm := testColumns(t)

	one := 1
	state := rowState{questionNumber: &one, questionText: "Old question", subQuestionText: "Old sub"}

	next, ent := reduceRow(state, cm, []string{
		"2", "New question", "", "Jane Doe", "", "3", "", "",
	})

	if ent == nil {
		t.Fatal("expected a materialized row")
	}
	if ent.subQuestionText != "" {
		t.Fatalf("boundary row without a sub-question must not inherit %q", ent.subQuestionText)
	}
	if next.subQuestionText != "" {
		t.Fatalf("carried sub-question should be cleared, got %q", next.subQuestionText)
	}
	if next.questionNumber == nil || *next.questionNumber != 2 {
		t.Fatalf("carried number = %v, want 2", next.questionNumber)
	}
}

func TestReduceRow_BoundaryWithoutNumberResetsToNil(t *testing.T) {
	t.Parallel()
	cm := testColumns(t)

	one := 1
	state := rowState{questionNumber: &one, questionText: "Old question"}

	next, ent := reduceRow(state, cm, []string{
		"", "New question", "", "Jane Doe", "", "", "", "",
	})

	if ent == nil {
		t.Fatal("expected a materialized row")
	}
	if ent.questionNumber != nil {
		t.Fatalf("boundary without explicit number must resolve null, got %d", *ent.questionNumber)
	}
	if next.questionNumber != nil {
		t.Fatalf("carried number must be re-seeded to nil, got %d", *next.questionNumber)
	}
}

func TestReduceRow_ExplicitNumberWithoutBoundary(t *testing.T) {
	t.Parallel()
	cm := testColumns(t)

	state := rowState{questionText: "Same question"}

	next, ent := reduceRow(state, cm, []string{
		"7", "Same question", "", "Jane Doe", "", "", "", "",
	})

	if ent == nil || ent.questionNumber == nil || *ent.questionNumber != 7 {
		t.Fatalf("explicit number should apply without a text boundary: %+v", ent)
	}
	if next.questionNumber == nil || *next.questionNumber != 7 {
		t.Fatalf("explicit number should persist, got %v", next.questionNumber)
	}
}

// A populated sub-question cell on a non-boundary row always overrides the
// carried value. Longstanding behavior the downstream data depends on; a
// trailing sub-question can leak into an oddly ordered block, and that is
// accepted.
func TestReduceRow_DirectSubQuestionOverridesMidBlock(t *testing.T) {
	t.Parallel()
	cm := testColumns(t)

	state := rowState{questionText: "Same question", subQuestionText: "First sub"}

	next, ent := reduceRow(state, cm, []string{
		"", "", "Second sub", "Jane Doe", "", "", "", "",
	})

	if ent == nil || ent.subQuestionText != "Second sub" {
		t.Fatalf("direct sub-question cell must override, got %+v", ent)
	}
	if next.subQuestionText != "Second sub" {
		t.Fatalf("carried sub-question = %q, want Second sub", next.subQuestionText)
	}
}

func TestReduceRow_OverloadedField(t *testing.T) {
	t.Parallel()
	cm := testColumns(t)

	cases := []struct {
		cell         string
		wantScore    *int
		wantResponse string
	}{
		{"4", intp(4), ""},
		{"4.8", intp(4), ""}, // truncated, not rounded
		{"0", intp(0), ""},
		{"-2", intp(-2), ""},
		{"N/A", nil, "N/A"},
		{"Strongly agree", nil, "Strongly agree"},
	}

	for _, tc := range cases {
		_, ent := reduceRow(rowState{questionText: "Q"}, cm, []string{
			"", "", "", "Jane Doe", "", tc.cell, "", "",
		})
		if ent == nil {
			t.Fatalf("cell %q: expected a materialized row", tc.cell)
		}
		if (ent.score == nil) != (tc.wantScore == nil) {
			t.Fatalf("cell %q: score = %v, want %v", tc.cell, ent.score, tc.wantScore)
		}
		if ent.score != nil && *ent.score != *tc.wantScore {
			t.Fatalf("cell %q: score = %d, want %d", tc.cell, *ent.score, *tc.wantScore)
		}
		if ent.response != tc.wantResponse {
			t.Fatalf("cell %q: response = %q, want %q", tc.cell, ent.response, tc.wantResponse)
		}
	}
}

func TestReduceRow_ResponseColumnYieldsToOverloaded(t *testing.T) {
	t.Parallel()
	cm := mapColumns([]string{"Question", "Respondent", "Response", "Response Text"})

	// Overloaded column numeric: the dedicated text column must not fill.
	_, ent := reduceRow(rowState{}, cm, []string{"Q1", "Jane Doe", "4", "see notes"})
	if ent == nil || ent.score == nil || *ent.score != 4 {
		t.Fatalf("expected score 4, got %+v", ent)
	}
	if ent.response != "" {
		t.Fatalf("response column must yield to the overloaded field, got %q", ent.response)
	}

	// Overloaded column empty: the dedicated text column fills.
	_, ent = reduceRow(rowState{questionText: "Q1"}, cm, []string{"", "Jane Doe", "", "see notes"})
	if ent == nil || ent.response != "see notes" {
		t.Fatalf("expected response from dedicated column, got %+v", ent)
	}
}

func TestReduceRow_MissingRespondentDropsRowKeepsState(t *testing.T) {
	t.Parallel()
	cm := testColumns(t)

	state, ent := reduceRow(rowState{}, cm, []string{
		"3", "Fully populated question", "Sub", "", "CFO", "5", "a comment", "",
	})

	if ent != nil {
		t.Fatalf("row without respondent must not materialize, got %+v", ent)
	}
	if state.questionText != "Fully populated question" || state.subQuestionText != "Sub" {
		t.Fatalf("dropped row must still advance state, got %+v", state)
	}
	if state.questionNumber == nil || *state.questionNumber != 3 {
		t.Fatalf("dropped row must still carry the number, got %v", state.questionNumber)
	}

	// The next row inherits everything the dropped row established.
	_, ent = reduceRow(state, cm, []string{"", "", "", "John Smith", "", "4", "", ""})
	if ent == nil || ent.questionText != "Fully populated question" || *ent.questionNumber != 3 {
		t.Fatalf("carry-forward corrupted by dropped row: %+v", ent)
	}
}

func TestReduceRow_UnparsableNumberIgnored(t *testing.T) {
	t.Parallel()
	cm := testColumns(t)

	five := 5
	state := rowState{questionNumber: &five, questionText: "Q"}

	_, ent := reduceRow(state, cm, []string{"n/a", "", "", "Jane Doe", "", "", "", ""})
	if ent == nil {
		t.Fatal("expected a materialized row")
	}
	if ent.questionNumber == nil || *ent.questionNumber != 5 {
		t.Fatalf("unparsable number cell must inherit, got %v", ent.questionNumber)
	}
}

func TestParseQuestionNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12", 12, true},
		{"3.0", 3, true},
		{"", 0, false},
		{"Q1", 0, false},
		{"twelve", 0, false},
	}

	for _, tc := range cases {
		got, ok := parseQuestionNumber(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseQuestionNumber(%q) = %d,%v want %d,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCleanQuestionText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"How effective is [clientName]'s board?", "How effective is 's board?"},
		{"[tag_1] Plain question", "Plain question"},
		{"No tokens here", "No tokens here"},
		{"  padded  ", "padded"},
		{"[not a token]", "[not a token]"}, // spaces break the token pattern
	}

	for _, tc := range cases {
		if got := cleanQuestionText(tc.in); got != tc.want {
			t.Fatalf("cleanQuestionText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func intp(n int) *int { return &n }
