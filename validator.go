package fieldval

import "fmt"

// CheckFunc is a validator predicate. It receives the value under test, the
// whole input root for cross-field conditions, and the enclosing array
// context when the value belongs to an array element field.
type CheckFunc func(value any, root map[string]any, actx *ArrayContext) bool

// MessageFunc builds a human-readable message for a failed check. It is
// only invoked when an error is actually surfaced, so it may be expensive.
type MessageFunc func(value any, path string, root map[string]any, actx *ArrayContext) string

// Validator is an opaque capability record supplied by an external plugin
// catalog. The engine only relies on the documented contract: Check is a
// callable predicate, Code identifies the rule in errors, Message (when
// present) renders the failure, and Skip marks conditional-skip rules.
type Validator struct {
	// Code identifies the failing rule in FieldError entries, e.g.
	// "stringMin" or "required".
	Code string
	// Check reports whether the value passes the rule.
	Check CheckFunc
	// Message renders the failure text. Optional; a generic message is
	// used when nil or when rendering panics.
	Message MessageFunc
	// Params holds the rule's configuration for introspection by message
	// renderers and tooling. The engine never reads it.
	Params map[string]any
	// Skip marks a conditional-skip rule: when its Check returns true the
	// remainder of the field's validator chain is bypassed for that value.
	Skip bool
}

// validate fails fast on malformed records. A validator without a callable
// check is a broken plugin, not bad input data.
func (v Validator) validate() error {
	if v.Check == nil {
		if v.Code != "" {
			return fmt.Errorf("%w (code %q)", ErrMissingCheck, v.Code)
		}
		return ErrMissingCheck
	}
	if v.Code == "" {
		return ErrMissingCode
	}
	return nil
}

// Transformer converts a validated value into its parsed form. Transforms
// run strictly after all validators for a field pass, in declaration
// order, each consuming the previous transform's output. A returned error
// (or a panic) becomes a single transform-error result entry.
type Transformer interface {
	Apply(value any, ctx *Context) (any, error)
}

// TransformFunc adapts a bare function to the Transformer interface.
type TransformFunc func(value any, ctx *Context) (any, error)

// Apply implements Transformer.
func (f TransformFunc) Apply(value any, ctx *Context) (any, error) {
	return f(value, ctx)
}

// NormalizeTransform accepts the shapes external plugins supply transforms
// in (a Transformer, a contextual function, or a plain value mapper) and
// returns a uniform Transformer.
func NormalizeTransform(t any) (Transformer, error) {
	switch tt := t.(type) {
	case nil:
		return nil, ErrInvalidTransform
	case Transformer:
		return tt, nil
	case func(value any, ctx *Context) (any, error):
		return TransformFunc(tt), nil
	case func(value any) any:
		return TransformFunc(func(value any, _ *Context) (any, error) {
			return tt(value), nil
		}), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidTransform, t)
	}
}
