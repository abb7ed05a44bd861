package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/fieldval"
)

// Required fails on absent (nil) values and on strings that are empty
// after trimming whitespace. Non-string, non-nil values pass.
func Required() fieldval.Validator {
	return fieldval.Validator{
		Code: "required",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			switch v := value.(type) {
			case nil:
				return false
			case string:
				return strings.TrimSpace(v) != ""
			default:
				return true
			}
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return "field is required"
		},
	}
}

// String validates that a present value is a string. Absent values pass;
// combine with Required to reject them.
func String() fieldval.Validator {
	return fieldval.Validator{
		Code: "string",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			if value == nil {
				return true
			}
			_, ok := value.(string)
			return ok
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return "must be a string"
		},
	}
}

// MinLen validates that a string is at least min characters long.
func MinLen(min int) fieldval.Validator {
	return fieldval.Validator{
		Code: "stringMin",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			s, ok := value.(string)
			return ok && len(s) >= min
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return fmt.Sprintf("must be at least %d characters long", min)
		},
		Params: map[string]any{"min": min},
	}
}

// MaxLen validates that a string is at most max characters long.
func MaxLen(max int) fieldval.Validator {
	return fieldval.Validator{
		Code: "stringMax",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			s, ok := value.(string)
			return ok && len(s) <= max
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return fmt.Sprintf("must be at most %d characters long", max)
		},
		Params: map[string]any{"max": max},
	}
}

// Matches validates a string against a compiled pattern.
func Matches(re *regexp.Regexp) fieldval.Validator {
	return fieldval.Validator{
		Code: "pattern",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			s, ok := value.(string)
			return ok && re.MatchString(s)
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return fmt.Sprintf("must match pattern %s", re.String())
		},
		Params: map[string]any{"pattern": re.String()},
	}
}

// OneOf validates that a string is one of the allowed values.
func OneOf(allowed ...string) fieldval.Validator {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return fieldval.Validator{
		Code: "oneOf",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			_, ok = set[s]
			return ok
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", "))
		},
		Params: map[string]any{"allowed": allowed},
	}
}
