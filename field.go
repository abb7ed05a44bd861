package fieldval

import (
	"fmt"

	"github.com/dmitrymomot/fieldval/cache"
	"github.com/dmitrymomot/fieldval/fieldpath"
)

// Field is one declared validation target: a dotted path, an ordered
// validator chain, and an optional transform chain. Fields are compiled
// once at build time and are immutable afterwards; the accessor and setter
// closures they own are reused for every subsequent Validate and Parse
// call.
type Field struct {
	path       fieldpath.Path
	validators []Validator
	transforms []Transformer

	// isArray marks a field whose own value is the array addressed by the
	// path (set by the builder when array-shape rules are attached).
	isArray bool
	// elementOf, when non-empty, is the path of the array this field
	// validates one key of per element.
	elementOf string

	get fieldpath.Accessor
	set fieldpath.Setter
}

// FieldOption configures field construction.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	isArray   bool
	elementOf string
	accessors *cache.LRU[string, fieldpath.Accessor]
}

// AsArray marks the field's value as an array, making fields whose paths
// extend this one eligible for element batching.
func AsArray() FieldOption {
	return func(c *fieldConfig) { c.isArray = true }
}

// ElementOf declares the field as validating one key of every element of
// the array at arrayPath. The field's path must extend arrayPath.
func ElementOf(arrayPath string) FieldOption {
	return func(c *fieldConfig) { c.elementOf = arrayPath }
}

// WithAccessorCache supplies an explicit bounded cache for compiled
// accessors, letting builders that declare many fields over shared paths
// reuse closures. The cache's lifetime is the caller's concern; the engine
// never creates or shares one on its own.
func WithAccessorCache(c *cache.LRU[string, fieldpath.Accessor]) FieldOption {
	return func(fc *fieldConfig) { fc.accessors = c }
}

// NewField compiles a validation field. It fails fast on an invalid path,
// a malformed validator record, or an unsupported transform shape; these
// are build-time programmer errors, distinct from validation failures.
// Transforms may be given in any of the shapes NormalizeTransform accepts.
func NewField(path string, validators []Validator, transforms []any, opts ...FieldOption) (*Field, error) {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return nil, err
	}

	for i, v := range validators {
		if err := v.validate(); err != nil {
			return nil, fmt.Errorf("field %q, validator %d: %w", path, i, err)
		}
	}

	normalized := make([]Transformer, 0, len(transforms))
	for i, t := range transforms {
		tr, err := NormalizeTransform(t)
		if err != nil {
			return nil, fmt.Errorf("field %q, transform %d: %w", path, i, err)
		}
		normalized = append(normalized, tr)
	}

	cfg := fieldConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.elementOf != "" {
		arrayPath, err := fieldpath.Parse(cfg.elementOf)
		if err != nil {
			return nil, fmt.Errorf("field %q: array path: %w", path, err)
		}
		if _, ok := p.StripPrefix(arrayPath); !ok {
			return nil, fmt.Errorf("field %q, array %q: %w", path, cfg.elementOf, ErrNotElementField)
		}
	}

	f := &Field{
		path:       p,
		validators: validators,
		transforms: normalized,
		isArray:    cfg.isArray,
		elementOf:  cfg.elementOf,
		set:        fieldpath.CompileSetterPath(p),
	}
	if cfg.accessors != nil {
		f.get = cfg.accessors.GetOrCompute(path, func() fieldpath.Accessor {
			return fieldpath.CompilePath(p)
		})
	} else {
		f.get = fieldpath.CompilePath(p)
	}
	return f, nil
}

// MustField is NewField for statically known definitions; it panics on a
// construction error.
func MustField(path string, validators []Validator, transforms []any, opts ...FieldOption) *Field {
	f, err := NewField(path, validators, transforms, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Path returns the field's dotted path.
func (f *Field) Path() string { return f.path.String() }

// HasTransforms reports whether the field carries any transform.
func (f *Field) HasTransforms() bool { return len(f.transforms) > 0 }

// IsArray reports whether the field's value is declared as an array.
func (f *Field) IsArray() bool { return f.isArray }

// ArrayPath returns the array path this field is an element field of, or
// the empty string for scalar fields.
func (f *Field) ArrayPath() string { return f.elementOf }

// Value reads the field's value from root via the precompiled accessor.
func (f *Field) Value(root map[string]any) (any, bool) { return f.get(root) }
