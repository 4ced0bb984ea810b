package parser

import (
	"github.com/wayfarerboy/lintstock-cli/internal/model"
)

// questionKey identifies a question inside one report. A structured key keeps
// equality well-defined even when question text contains delimiter characters
// a joined string key would trip over.
type questionKey struct {
	number    int
	hasNumber bool
	text      string
	sub       string
}

func keyOf(ent *rowEntity) questionKey {
	k := questionKey{text: ent.questionText, sub: ent.subQuestionText}
	if ent.questionNumber != nil {
		k.number = *ent.questionNumber
		k.hasNumber = true
	}
	return k
}

// Parse transforms a decoded workbook into a validated document. Structural
// and schema failures are fatal for this workbook: no partial document is
// ever returned.
func Parse(wb *Workbook) (*model.Document, error) {
	meta, dataSheets, err := splitWorkbook(wb)
	if err != nil {
		return nil, err
	}

	doc := &model.Document{
		ClientName:  meta.ClientName,
		CreatedDate: meta.CreatedDate,
		Reports:     make([]model.Report, 0, len(dataSheets)),
		Respondees:  []model.Respondee{},
	}

	seenRespondee := make(map[string]bool)
	seenUnmatched := make(map[string]bool)
	var unmatched []string

	for _, sheet := range dataSheets {
		report, entities, cm := assembleSheet(sheet)
		doc.Reports = append(doc.Reports, report)

		for _, ent := range entities {
			if seenRespondee[ent.respondent] {
				continue
			}
			seenRespondee[ent.respondent] = true
			doc.Respondees = append(doc.Respondees, model.Respondee{
				Name:     ent.respondent,
				Position: ent.position,
			})
		}

		for _, h := range cm.unmatched {
			if seenUnmatched[h] {
				continue
			}
			seenUnmatched[h] = true
			unmatched = append(unmatched, h)
		}
	}

	if len(unmatched) > 0 {
		doc.UnmatchedHeaders = unmatched
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// assembleSheet runs the row reducer over one data sheet and groups the
// accepted rows into questions, preserving first-seen order.
func assembleSheet(sheet Sheet) (model.Report, []*rowEntity, columnMap) {
	report := model.Report{
		ReportName: ReportName(sheet.Name),
		Questions:  []model.Question{},
	}
	if len(sheet.Rows) == 0 {
		return report, nil, columnMap{}
	}

	cm := mapColumns(sheet.Rows[0])
	index := make(map[questionKey]int)
	state := rowState{}
	var accepted []*rowEntity

	for _, row := range sheet.Rows[1:] {
		var ent *rowEntity
		state, ent = reduceRow(state, cm, row)
		if ent == nil {
			continue
		}
		accepted = append(accepted, ent)

		key := keyOf(ent)
		qi, ok := index[key]
		if !ok {
			report.Questions = append(report.Questions, model.Question{
				QuestionNumber:  ent.questionNumber,
				QuestionText:    ent.questionText,
				SubQuestionText: ent.subQuestionText,
				Responses:       []model.Response{},
			})
			qi = len(report.Questions) - 1
			index[key] = qi
		}

		report.Questions[qi].Responses = append(report.Questions[qi].Responses, model.Response{
			Respondent: ent.respondent,
			Score:      ent.score,
			Response:   ent.response,
			Comment:    ent.comment,
			SkipReason: ent.skipReason,
		})
	}

	return report, accepted, cm
}
