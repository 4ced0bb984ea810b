package parser

import "fmt"

// StructuralError indicates the workbook cannot yield a document at all:
// fewer than two sheets, or the metadata sheet lacks a client name or
// created date. Fatal for the document being parsed.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s", e.Reason)
}

// SchemaError indicates the assembled document violates the output contract.
// Path locates the offending field; Constraint names the violated rule.
type SchemaError struct {
	Path       string
	Constraint string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error at %s: %s", e.Path, e.Constraint)
}
