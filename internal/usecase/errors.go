package usecase

import "fmt"

// InvalidFieldError marks a mutation that targeted a field or list name
// outside the entity shape. It is always a programming error on the caller
// side, never surfaced to end users.
type InvalidFieldError struct {
	Entity string
	Field  string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q for %s", e.Field, e.Entity)
}

// UnparsableImportError marks an import payload that is not structured data
// at all. Callers recover by falling back to an empty document and surfacing
// a soft warning.
type UnparsableImportError struct {
	Cause error
}

func (e *UnparsableImportError) Error() string {
	return fmt.Sprintf("resume data could not be parsed: %v", e.Cause)
}

func (e *UnparsableImportError) Unwrap() error { return e.Cause }
