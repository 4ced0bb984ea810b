package parser

import "github.com/wayfarerboy/lintstock-cli/internal/model"

// FilterByQuestionNumber returns a copy of doc restricted to questions whose
// number equals n, dropping reports left with no questions. Post-processing
// over an already-validated document, not a parser mode.
func FilterByQuestionNumber(doc *model.Document, n int) *model.Document {
	out := *doc
	out.Reports = make([]model.Report, 0, len(doc.Reports))

	for _, report := range doc.Reports {
		kept := make([]model.Question, 0, len(report.Questions))
		for _, q := range report.Questions {
			if q.QuestionNumber != nil && *q.QuestionNumber == n {
				kept = append(kept, q)
			}
		}
		if len(kept) == 0 {
			continue
		}
		report.Questions = kept
		out.Reports = append(out.Reports, report)
	}

	return &out
}
