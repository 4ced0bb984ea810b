package model

// ClientSummary is the per-client roster compiled over a batch of documents.
// Respondents and Years are deduplicated and sorted.
type ClientSummary struct {
	ClientName  string   `json:"client_name"`
	Respondents []string `json:"respondents"`
	Years       []string `json:"years"`
}

// SubQuestionSummary records the years a sub-question appeared.
type SubQuestionSummary struct {
	SubQuestionText string   `json:"sub_question_text"`
	Years           []string `json:"years"`
}

// QuestionSummary is the per-question roster compiled over a batch of
// documents, grouped by question text across all reports.
type QuestionSummary struct {
	QuestionText string               `json:"question_text"`
	Years        []string             `json:"years"`
	SubQuestions []SubQuestionSummary `json:"sub_questions,omitempty"`
}
