package fieldval

import (
	"fmt"
	"strings"
)

// CodeTransformError is the code attached to errors produced when a
// transform fails during Parse.
const CodeTransformError = "TRANSFORM_ERROR"

// FieldError describes a single validation failure. Path always carries
// concrete array indices ("items[2].price"), never wildcard markers.
type FieldError struct {
	Path    string
	Code    string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Errors is a collection of field errors. It implements the error
// interface so a whole failed validation can travel as one error value.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error was recorded for the given path.
func (e Errors) Has(path string) bool {
	for _, fe := range e {
		if fe.Path == path {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for the given path.
func (e Errors) Get(path string) []string {
	var messages []string
	for _, fe := range e {
		if fe.Path == path {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

// Fields returns the distinct paths that have errors, in first-seen order.
func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(e))
	for _, fe := range e {
		if !seen[fe.Path] {
			fields = append(fields, fe.Path)
			seen[fe.Path] = true
		}
	}
	return fields
}

// Result is the outcome of a validate pass: Valid is true exactly when
// Errors is empty.
type Result struct {
	Valid  bool
	Errors Errors
}

func validResult() Result { return Result{Valid: true} }

func invalidResult(errs Errors) Result { return Result{Valid: len(errs) == 0, Errors: errs} }

// ParseResult extends Result with the transformed data. Data is non-nil
// only when the whole pass was valid.
type ParseResult struct {
	Result
	Data map[string]any
}
