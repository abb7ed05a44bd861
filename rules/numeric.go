package rules

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/fieldval"
)

// MinNum validates that a numeric value is at least min. Decoded JSON
// numbers arrive as float64, but int and json.Number values are accepted
// too; anything non-numeric fails.
func MinNum(min float64) fieldval.Validator {
	return fieldval.Validator{
		Code: "numberMin",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			n, ok := toFloat(value)
			return ok && n >= min
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return fmt.Sprintf("must be at least %v", min)
		},
		Params: map[string]any{"min": min},
	}
}

// MaxNum validates that a numeric value is at most max.
func MaxNum(max float64) fieldval.Validator {
	return fieldval.Validator{
		Code: "numberMax",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			n, ok := toFloat(value)
			return ok && n <= max
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return fmt.Sprintf("must be at most %v", max)
		},
		Params: map[string]any{"max": max},
	}
}

// Number validates that a present value is numeric. Absent values pass.
func Number() fieldval.Validator {
	return fieldval.Validator{
		Code: "number",
		Check: func(value any, _ map[string]any, _ *fieldval.ArrayContext) bool {
			if value == nil {
				return true
			}
			_, ok := toFloat(value)
			return ok
		},
		Message: func(_ any, _ string, _ map[string]any, _ *fieldval.ArrayContext) string {
			return "must be a number"
		},
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
