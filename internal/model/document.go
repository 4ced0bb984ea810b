package model

// Document is the root of one parsed survey workbook. Field order matches the
// serialized JSON layout; optional fields are omitted rather than emitted as
// empty strings or nulls.
type Document struct {
	ClientName       string      `json:"client_name"`
	CreatedDate      string      `json:"created_date"`
	Reports          []Report    `json:"reports"`
	Respondees       []Respondee `json:"respondees"`
	UnmatchedHeaders []string    `json:"unmatched_headers,omitempty"`
}

// Report holds one data sheet's questions in first-seen row order.
type Report struct {
	ReportName string     `json:"report_name"`
	Questions  []Question `json:"questions"`
}

// Question groups the responses sharing a (number, text, sub-text) key.
// QuestionNumber serializes as null when no number could be determined.
type Question struct {
	QuestionNumber  *int       `json:"question_number"`
	QuestionText    string     `json:"question_text"`
	SubQuestionText string     `json:"sub_question_text,omitempty"`
	Responses       []Response `json:"responses"`
}

// Response is one respondent's answer to one question. At most one of
// Score/Response is set for a given overloaded column value.
type Response struct {
	Respondent string `json:"respondent"`
	Score      *int   `json:"score,omitempty"`
	Response   string `json:"response,omitempty"`
	Comment    string `json:"comment,omitempty"`
	SkipReason string `json:"skip_reason,omitempty"`
}

// Respondee is a distinct respondent within one document. Position comes from
// the first row in which the name appears.
type Respondee struct {
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
}
