package fieldval

import "fmt"

// Validate runs the field's validator chain against a single value. The
// per-field abort knob (WithAbortEarlyOnEachField, default true) controls
// whether the chain stops at the first failing validator.
func (f *Field) Validate(value any, root map[string]any, opts ...Option) Result {
	o := newCallOptions(opts)
	ctx := &Context{Original: value, Value: value, Root: root, Path: f.path.String()}
	return f.validateValue(value, ctx, o.abortEarlyOnEachField)
}

// Parse validates a single value and, only when fully valid, applies the
// field's transforms in declaration order. The second return value is the
// transformed value; it is nil unless the result is valid.
func (f *Field) Parse(value any, root map[string]any, opts ...Option) (Result, any) {
	o := newCallOptions(opts)
	ctx := &Context{Original: value, Value: value, Root: root, Path: f.path.String()}
	return f.parseValue(value, ctx, o.abortEarlyOnEachField)
}

// ValidateDeferred is the hoisted fast path: it returns the pass/fail
// decision and the indices of failing validators without building error
// messages. Use ReconstructErrors to materialize FieldError values on
// demand; most successful validations never pay for message construction.
func (f *Field) ValidateDeferred(value any, root map[string]any) (bool, []int) {
	ctx := &Context{Original: value, Value: value, Root: root, Path: f.path.String()}
	return f.validateHoisted(value, ctx)
}

// ReconstructErrors rebuilds full errors from the indices returned by
// ValidateDeferred, run against the same value and root.
func (f *Field) ReconstructErrors(value any, root map[string]any, failed []int) Errors {
	ctx := &Context{Original: value, Value: value, Root: root, Path: f.path.String()}
	errs := make(Errors, 0, len(failed))
	for _, i := range failed {
		if i < 0 || i >= len(f.validators) {
			continue
		}
		errs = append(errs, f.errorFor(f.validators[i], value, ctx))
	}
	return errs
}

// validateValue executes the chain for one value. Skip-conditional rules
// run first: any that fires bypasses the rest of the chain entirely.
func (f *Field) validateValue(value any, ctx *Context, abortEarly bool) Result {
	switch len(f.validators) {
	case 0:
		return validResult()
	case 1:
		// Single-validator fast path: no slice bookkeeping.
		v := f.validators[0]
		if v.Skip {
			// A lone skip conditional leaves nothing to validate either way.
			return validResult()
		}
		if runCheck(v, value, ctx) {
			return validResult()
		}
		return Result{Errors: Errors{f.errorFor(v, value, ctx)}}
	}

	for _, v := range f.validators {
		if v.Skip && runSkipCheck(v, value, ctx) {
			return validResult()
		}
	}

	var errs Errors
	for _, v := range f.validators {
		if v.Skip {
			continue
		}
		if runCheck(v, value, ctx) {
			continue
		}
		errs = append(errs, f.errorFor(v, value, ctx))
		if abortEarly {
			break
		}
	}
	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return validResult()
}

// validateHoisted mirrors validateValue but records failing validator
// indices instead of building errors.
func (f *Field) validateHoisted(value any, ctx *Context) (bool, []int) {
	if len(f.validators) == 0 {
		return true, nil
	}

	for _, v := range f.validators {
		if v.Skip && runSkipCheck(v, value, ctx) {
			return true, nil
		}
	}

	var failed []int
	for i, v := range f.validators {
		if v.Skip {
			continue
		}
		if !runCheck(v, value, ctx) {
			failed = append(failed, i)
		}
	}
	return len(failed) == 0, failed
}

func (f *Field) parseValue(value any, ctx *Context, abortEarly bool) (Result, any) {
	res := f.validateValue(value, ctx, abortEarly)
	if !res.Valid {
		return res, nil
	}

	out, ferr := f.applyTransforms(value, ctx)
	if ferr != nil {
		return Result{Errors: Errors{*ferr}}, nil
	}
	return validResult(), out
}

// applyTransforms threads the value through the transform chain. A failing
// transform halts the chain for this field and surfaces as a single
// transform-error entry; it never crashes the batch.
func (f *Field) applyTransforms(value any, ctx *Context) (any, *FieldError) {
	out := value
	for _, t := range f.transforms {
		ctx.Value = out
		next, err := safeApply(t, out, ctx)
		if err != nil {
			return nil, &FieldError{
				Path:    ctx.Path,
				Code:    CodeTransformError,
				Message: fmt.Sprintf("transform failed for %s: %v", ctx.Path, err),
			}
		}
		out = next
	}
	ctx.Value = out
	return out, nil
}

// runCheck invokes an external plugin predicate. A panic is contained and
// treated as a failed validation; plugin bugs must not crash the caller.
func runCheck(v Validator, value any, ctx *Context) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return v.Check(value, ctx.Root, ctx.Array)
}

// runSkipCheck invokes a skip conditional. A panic means "do not skip":
// normal validation continues.
func runSkipCheck(v Validator, value any, ctx *Context) (skip bool) {
	defer func() {
		if recover() != nil {
			skip = false
		}
	}()
	return v.Check(value, ctx.Root, ctx.Array)
}

func safeApply(t Transformer, value any, ctx *Context) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return t.Apply(value, ctx)
}

func (f *Field) errorFor(v Validator, value any, ctx *Context) FieldError {
	return FieldError{Path: ctx.Path, Code: v.Code, Message: renderMessage(v, value, ctx)}
}

// renderMessage falls back to a generic message when the validator has no
// renderer, renders an empty string, or panics while rendering.
func renderMessage(v Validator, value any, ctx *Context) (msg string) {
	defer func() {
		if recover() != nil {
			msg = genericMessage(ctx.Path)
		}
	}()
	if v.Message == nil {
		return genericMessage(ctx.Path)
	}
	if m := v.Message(value, ctx.Path, ctx.Root, ctx.Array); m != "" {
		return m
	}
	return genericMessage(ctx.Path)
}

func genericMessage(path string) string {
	return "validation failed for " + path
}
