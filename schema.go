package fieldval

import (
	"context"
	"fmt"
	"log/slog"
)

// Schema is a compiled validator for one field set. Compilation analyzes
// the fields once, picks the cheapest correct execution strategy, and
// precompiles every accessor, setter, and batch group; Validate and Parse
// then reuse that work for the life of the schema.
//
// A Schema holds no mutable state after construction, so concurrent
// Validate and Parse calls are safe as long as the caller does not mutate
// the input concurrently; the engine itself never writes to the input.
type Schema struct {
	fields   []*Field
	units    []executionUnit
	analysis Analysis
	defaults callOptions
	hoisted  bool
}

// executionUnit is one step of the declaration-order plan: either a scalar
// field or a whole element batch, placed at the position of its first
// declared field.
type executionUnit struct {
	field *Field
	batch *ArrayBatch
}

// SchemaOption configures schema compilation.
type SchemaOption func(*schemaConfig)

type schemaConfig struct {
	deferred bool
	log      *slog.Logger
	defaults []Option
}

// WithDeferredErrors compiles the schema with hoisted error construction:
// the validate hot path records failing validator indices only and builds
// messages on demand. Ignored when the field set needs definition-order
// execution, which forfeits the optimization.
func WithDeferredErrors() SchemaOption {
	return func(c *schemaConfig) { c.deferred = true }
}

// WithLogger emits a build-time debug record describing the chosen
// strategy. The engine never logs during Validate or Parse.
func WithLogger(log *slog.Logger) SchemaOption {
	return func(c *schemaConfig) { c.log = log }
}

// WithDefaults sets call options applied to every Validate and Parse call;
// per-call options still override them.
func WithDefaults(opts ...Option) SchemaOption {
	return func(c *schemaConfig) { c.defaults = append(c.defaults, opts...) }
}

// NewSchema compiles a field set. Construction fails on nil or duplicate
// fields and on element fields that do not extend their array path; these
// are programmer errors from the builder layer, caught at build time so
// Validate and Parse never throw.
func NewSchema(fields []*Field, opts ...SchemaOption) (*Schema, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	cfg := schemaConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f == nil {
			return nil, ErrNilField
		}
		if seen[f.Path()] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Path())
		}
		seen[f.Path()] = true
	}

	analysis := Analyze(fields)

	s := &Schema{
		fields:   fields,
		analysis: analysis,
		defaults: defaultCallOptions(),
	}
	for _, opt := range cfg.defaults {
		opt(&s.defaults)
	}
	if cfg.deferred && analysis.CanOptimize {
		s.hoisted = true
		s.analysis.Strategy = StrategyHoistedOptimized
	}

	if err := s.plan(); err != nil {
		return nil, err
	}

	if cfg.log != nil {
		cfg.log.LogAttrs(context.Background(), slog.LevelDebug, "schema compiled",
			slog.String("strategy", s.analysis.Strategy.String()),
			slog.String("reason", s.analysis.Reason),
			slog.Int("fields", s.analysis.FieldCount),
			slog.Bool("optimizable", s.analysis.CanOptimize),
		)
	}
	return s, nil
}

// MustSchema is NewSchema for statically known field sets; it panics on a
// construction error.
func MustSchema(fields []*Field, opts ...SchemaOption) *Schema {
	s, err := NewSchema(fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// plan builds the declaration-order execution plan, grouping element
// fields into one batch per array path so each array is traversed once.
func (s *Schema) plan() error {
	groups := make(map[string][]*Field)
	order := make([]string, 0)

	for _, f := range s.fields {
		arrayPath := elementGroupOf(f, s.fields)
		if arrayPath == "" {
			s.units = append(s.units, executionUnit{field: f})
			continue
		}
		if _, ok := groups[arrayPath]; !ok {
			order = append(order, arrayPath)
			// Placeholder keeps the batch at its first field's position.
			s.units = append(s.units, executionUnit{})
		}
		groups[arrayPath] = append(groups[arrayPath], f)
	}

	next := 0
	for i := range s.units {
		if s.units[i].field != nil {
			continue
		}
		arrayPath := order[next]
		next++
		batch, err := NewArrayBatch(arrayPath, groups[arrayPath])
		if err != nil {
			return err
		}
		s.units[i].batch = batch
	}
	return nil
}

// Analysis returns the build-time strategy classification.
func (s *Schema) Analysis() Analysis { return s.analysis }

// Validate runs the whole field set against root. Fields execute in
// declaration order; element groups execute as one array traversal at the
// position of their first field. WithAbortEarly stops at the first field
// (or batch) that produced any error.
func (s *Schema) Validate(root map[string]any, opts ...Option) Result {
	o := s.callOptions(opts)

	var errs Errors
	for _, u := range s.units {
		var res Result
		switch {
		case u.batch != nil:
			res = u.batch.validate(root, o)
		case s.hoisted:
			res = s.validateDeferred(u.field, root, o)
		default:
			res = s.validateScalar(u.field, root, o)
		}
		if res.Valid {
			continue
		}
		errs = append(errs, res.Errors...)
		if o.abortEarly {
			break
		}
	}
	return invalidResult(errs)
}

// Parse validates like Validate and additionally applies transforms,
// writing each field's transformed value into a deep clone of root made
// once up front. Data is present only when the whole pass is valid; on
// abort the partial error set is returned with no data.
func (s *Schema) Parse(root map[string]any, opts ...Option) ParseResult {
	o := s.callOptions(opts)
	data := cloneRoot(root)

	var errs Errors
	for _, u := range s.units {
		if u.batch != nil {
			batchErrs := u.batch.parseInto(root, data, o)
			if len(batchErrs) > 0 {
				errs = append(errs, batchErrs...)
				if o.abortEarly {
					return ParseResult{Result: Result{Errors: errs}}
				}
			}
			continue
		}

		f := u.field
		value, _ := f.get(root)
		ctx := &Context{Original: value, Value: value, Root: root, Path: f.Path()}
		res, out := f.parseValue(value, ctx, o.abortEarlyOnEachField)
		if !res.Valid {
			errs = append(errs, res.Errors...)
			if o.abortEarly {
				return ParseResult{Result: Result{Errors: errs}}
			}
			continue
		}
		if f.HasTransforms() {
			f.set(data, out)
		}
	}

	if len(errs) > 0 {
		return ParseResult{Result: Result{Errors: errs}}
	}
	return ParseResult{Result: validResult(), Data: data}
}

func (s *Schema) validateScalar(f *Field, root map[string]any, o callOptions) Result {
	value, _ := f.get(root)
	ctx := &Context{Original: value, Value: value, Root: root, Path: f.Path()}
	return f.validateValue(value, ctx, o.abortEarlyOnEachField)
}

// validateDeferred takes the hoisted path: a cheap index-only decision,
// with errors reconstructed only when the field actually failed.
func (s *Schema) validateDeferred(f *Field, root map[string]any, o callOptions) Result {
	value, _ := f.get(root)
	ctx := &Context{Original: value, Value: value, Root: root, Path: f.Path()}
	ok, failed := f.validateHoisted(value, ctx)
	if ok {
		return validResult()
	}
	if o.abortEarlyOnEachField && len(failed) > 1 {
		failed = failed[:1]
	}
	return Result{Errors: f.ReconstructErrors(value, root, failed)}
}

func (s *Schema) callOptions(opts []Option) callOptions {
	o := s.defaults
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
