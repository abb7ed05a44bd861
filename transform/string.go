package transform

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldval"
)

// stringFunc lifts a string mapper into a type-tolerant Transformer.
func stringFunc(fn func(string) string) fieldval.Transformer {
	return fieldval.TransformFunc(func(value any, _ *fieldval.Context) (any, error) {
		if s, ok := value.(string); ok {
			return fn(s), nil
		}
		return value, nil
	})
}

// Trim removes leading and trailing whitespace.
func Trim() fieldval.Transformer {
	return stringFunc(strings.TrimSpace)
}

// Lower converts a string to lowercase.
func Lower() fieldval.Transformer {
	return stringFunc(strings.ToLower)
}

// Upper converts a string to uppercase.
func Upper() fieldval.Transformer {
	return stringFunc(strings.ToUpper)
}

// TitleCase converts a string to title case with Unicode-correct word
// mapping.
func TitleCase() fieldval.Transformer {
	caser := cases.Title(language.Und)
	return stringFunc(caser.String)
}

// CollapseWhitespace trims the string and replaces every internal
// whitespace run with a single space.
func CollapseWhitespace() fieldval.Transformer {
	return stringFunc(func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	})
}
