// Package summary compiles read-only rosters over batches of parsed
// documents. Both compilers are pure: given the same input sequence they
// produce identical output, and they hold no state across calls.
package summary

import (
	"sort"

	"github.com/wayfarerboy/lintstock-cli/internal/model"
)

// Clients groups documents by client name, accumulating the distinct
// respondent names and survey years seen for each client. Entries appear in
// first-seen client order; respondents and years are sorted. Documents with
// an empty client name are skipped.
func Clients(docs []*model.Document) []model.ClientSummary {
	var order []string
	respondents := make(map[string]map[string]bool)
	years := make(map[string]map[string]bool)

	for _, doc := range docs {
		if doc == nil || doc.ClientName == "" {
			continue
		}
		name := doc.ClientName
		if _, ok := respondents[name]; !ok {
			order = append(order, name)
			respondents[name] = make(map[string]bool)
			years[name] = make(map[string]bool)
		}
		for _, r := range doc.Respondees {
			respondents[name][r.Name] = true
		}
		if y := yearOf(doc.CreatedDate); y != "" {
			years[name][y] = true
		}
	}

	out := make([]model.ClientSummary, 0, len(order))
	for _, name := range order {
		out = append(out, model.ClientSummary{
			ClientName:  name,
			Respondents: sortedKeys(respondents[name]),
			Years:       sortedKeys(years[name]),
		})
	}
	return out
}

// Questions groups questions by text across all reports of all documents,
// accumulating the years each question appeared and, per distinct
// sub-question text, the years that sub-question appeared. Questions with
// empty text are skipped.
func Questions(docs []*model.Document) []model.QuestionSummary {
	var order []string
	years := make(map[string]map[string]bool)
	subOrder := make(map[string][]string)
	subYears := make(map[string]map[string]map[string]bool)

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		y := yearOf(doc.CreatedDate)
		for _, report := range doc.Reports {
			for _, q := range report.Questions {
				text := q.QuestionText
				if text == "" {
					continue
				}
				if _, ok := years[text]; !ok {
					order = append(order, text)
					years[text] = make(map[string]bool)
					subYears[text] = make(map[string]map[string]bool)
				}
				if y != "" {
					years[text][y] = true
				}
				sub := q.SubQuestionText
				if sub == "" {
					continue
				}
				if _, ok := subYears[text][sub]; !ok {
					subOrder[text] = append(subOrder[text], sub)
					subYears[text][sub] = make(map[string]bool)
				}
				if y != "" {
					subYears[text][sub][y] = true
				}
			}
		}
	}

	out := make([]model.QuestionSummary, 0, len(order))
	for _, text := range order {
		qs := model.QuestionSummary{
			QuestionText: text,
			Years:        sortedKeys(years[text]),
		}
		for _, sub := range subOrder[text] {
			qs.SubQuestions = append(qs.SubQuestions, model.SubQuestionSummary{
				SubQuestionText: sub,
				Years:           sortedKeys(subYears[text][sub]),
			})
		}
		out = append(out, qs)
	}
	return out
}

// yearOf takes the leading four characters of a created date, which is the
// year for ISO dates and a best effort for raw pass-through values.
func yearOf(created string) string {
	if len(created) < 4 {
		return ""
	}
	return created[:4]
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
