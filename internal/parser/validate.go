package parser

import (
	"fmt"
	"strings"

	"github.com/wayfarerboy/lintstock-cli/internal/model"
)

// Validate enforces the structural contract of an assembled document. The
// first violation found is returned as a SchemaError; a document that fails
// here is discarded by the caller.
func Validate(doc *model.Document) error {
	if doc == nil {
		return &SchemaError{Path: "document", Constraint: "must not be nil"}
	}
	if strings.TrimSpace(doc.ClientName) == "" {
		return &SchemaError{Path: "client_name", Constraint: "must be a non-empty string"}
	}
	if strings.TrimSpace(doc.CreatedDate) == "" {
		return &SchemaError{Path: "created_date", Constraint: "must be a non-empty string"}
	}
	if doc.Reports == nil {
		return &SchemaError{Path: "reports", Constraint: "must be an array"}
	}
	if doc.Respondees == nil {
		return &SchemaError{Path: "respondees", Constraint: "must be an array"}
	}

	for i, report := range doc.Reports {
		if strings.TrimSpace(report.ReportName) == "" {
			return &SchemaError{
				Path:       fmt.Sprintf("reports[%d].report_name", i),
				Constraint: "must be a non-empty string",
			}
		}
		if report.Questions == nil {
			return &SchemaError{
				Path:       fmt.Sprintf("reports[%d].questions", i),
				Constraint: "must be an array",
			}
		}
		for j, q := range report.Questions {
			if q.Responses == nil {
				return &SchemaError{
					Path:       fmt.Sprintf("reports[%d].questions[%d].responses", i, j),
					Constraint: "must be an array",
				}
			}
			for k, resp := range q.Responses {
				if strings.TrimSpace(resp.Respondent) == "" {
					return &SchemaError{
						Path:       fmt.Sprintf("reports[%d].questions[%d].responses[%d].respondent", i, j, k),
						Constraint: "must be a non-empty string",
					}
				}
			}
		}
	}

	seen := make(map[string]bool, len(doc.Respondees))
	for i, r := range doc.Respondees {
		if strings.TrimSpace(r.Name) == "" {
			return &SchemaError{
				Path:       fmt.Sprintf("respondees[%d].name", i),
				Constraint: "must be a non-empty string",
			}
		}
		if seen[r.Name] {
			return &SchemaError{
				Path:       fmt.Sprintf("respondees[%d].name", i),
				Constraint: "must be unique within the document",
			}
		}
		seen[r.Name] = true
	}

	return nil
}
