package transform

import "github.com/dmitrymomot/fieldval"

// Chain composes transformers into one reusable pipeline, applied left to
// right. Preferred over repeating the same transformer list across fields.
func Chain(transformers ...fieldval.Transformer) fieldval.Transformer {
	return fieldval.TransformFunc(func(value any, ctx *fieldval.Context) (any, error) {
		out := value
		for _, t := range transformers {
			next, err := t.Apply(out, ctx)
			if err != nil {
				return nil, err
			}
			out = next
		}
		return out, nil
	})
}
