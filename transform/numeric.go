package transform

import (
	"math"

	"github.com/dmitrymomot/fieldval"
)

// numberFunc lifts a float mapper into a type-tolerant Transformer.
// Decoded JSON numbers are float64; other types pass through unchanged.
func numberFunc(fn func(float64) float64) fieldval.Transformer {
	return fieldval.TransformFunc(func(value any, _ *fieldval.Context) (any, error) {
		if n, ok := value.(float64); ok {
			return fn(n), nil
		}
		return value, nil
	})
}

// Clamp constrains a number to the inclusive [min, max] range.
func Clamp(min, max float64) fieldval.Transformer {
	return numberFunc(func(n float64) float64 {
		if n < min {
			return min
		}
		if n > max {
			return max
		}
		return n
	})
}

// Round rounds a number to the nearest integer, half away from zero.
func Round() fieldval.Transformer {
	return numberFunc(math.Round)
}
