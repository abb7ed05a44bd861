package rules

import (
	"fmt"

	"github.com/dmitrymomot/fieldval"
)

// Array validates that a present value is an array. Absent values pass.
func Array() fieldval.Validator {
	return fieldval.Validator{
		Code: "array",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			if value == nil {
				return true
			}
			_, ok := value.([]any)
			return ok
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return "must be an array"
		},
	}
}

// MinItems validates that an array has at least min elements.
func MinItems(min int) fieldval.Validator {
	return fieldval.Validator{
		Code: "arrayMin",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			arr, ok := value.([]any)
			return ok && len(arr) >= min
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return fmt.Sprintf("must contain at least %d items", min)
		},
		Params: map[string]any{"min": min},
	}
}

// MaxItems validates that an array has at most max elements.
func MaxItems(max int) fieldval.Validator {
	return fieldval.Validator{
		Code: "arrayMax",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			arr, ok := value.([]any)
			return ok && len(arr) <= max
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return fmt.Sprintf("must contain at most %d items", max)
		},
		Params: map[string]any{"max": max},
	}
}
