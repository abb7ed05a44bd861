package fieldval

// Option configures a single Validate or Parse call.
type Option func(*callOptions)

// callOptions carries the two orthogonal abort knobs: abortEarly stops the
// whole batch at the first failing field, abortEarlyOnEachField stops a
// single field's chain at its first failing validator.
type callOptions struct {
	abortEarly            bool
	abortEarlyOnEachField bool
}

func defaultCallOptions() callOptions {
	return callOptions{abortEarlyOnEachField: true}
}

func newCallOptions(opts []Option) callOptions {
	o := defaultCallOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAbortEarly stops the batch at the first field that produces any
// error. Off by default.
func WithAbortEarly() Option {
	return func(o *callOptions) { o.abortEarly = true }
}

// WithAbortEarlyOnEachField controls whether a field's validator chain
// stops at its first failure. On by default; pass false to collect every
// failing validator per field.
func WithAbortEarlyOnEachField(v bool) Option {
	return func(o *callOptions) { o.abortEarlyOnEachField = v }
}
