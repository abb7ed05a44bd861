package rules

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldval"
)

// UUID validates standard UUID format with pre-validation to avoid
// expensive parsing for obviously malformed values.
func UUID() fieldval.Validator {
	return fieldval.Validator{
		Code: "uuid",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			s, ok := value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}

			// Fast rejection: check length and hyphen positions before parsing.
			if len(s) != 36 {
				return false
			}
			if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}

			_, err := uuid.Parse(s)
			return err == nil
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return "must be a valid UUID"
		},
	}
}

// NonNilUUID validates that a string is a valid, non-zero UUID.
func NonNilUUID() fieldval.Validator {
	return fieldval.Validator{
		Code: "uuidNotNil",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			id, err := uuid.Parse(s)
			return err == nil && id != uuid.Nil
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return "must be a non-nil UUID"
		},
	}
}
