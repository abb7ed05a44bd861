package fieldval

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/fieldval/fieldpath"
)

// elementField is one element rule of an ArrayBatch with its
// element-relative accessor and setter precompiled, so iteration never
// parses or manipulates path strings per element.
type elementField struct {
	field *Field
	key   string
	get   fieldpath.Accessor
	set   fieldpath.Setter
}

// ArrayBatch validates a set of element fields against every item of one
// array in a single traversal: O(n) iterations covering m element rules,
// instead of m separate walks. Error paths carry concrete element indices
// ("items[2].price").
//
// One ArrayBatch handles one level of element iteration. Element sub-paths
// that cross a further array are still validated per inner element (with
// doubly indexed paths), but transforms on such fields are reported as
// transform errors rather than written back.
type ArrayBatch struct {
	arrayPath string
	getArray  fieldpath.Accessor
	elems     []elementField
}

// NewArrayBatch compiles a batch strategy for the array at arrayPath.
// Every field's path must strictly extend arrayPath; the remainder is the
// element key validated per item.
func NewArrayBatch(arrayPath string, fields []*Field) (*ArrayBatch, error) {
	ap, err := fieldpath.Parse(arrayPath)
	if err != nil {
		return nil, err
	}

	b := &ArrayBatch{
		arrayPath: arrayPath,
		getArray:  fieldpath.CompilePath(ap),
		elems:     make([]elementField, 0, len(fields)),
	}
	for _, f := range fields {
		if f == nil {
			return nil, ErrNilField
		}
		rel, ok := f.path.StripPrefix(ap)
		if !ok {
			return nil, fmt.Errorf("field %q, array %q: %w", f.Path(), arrayPath, ErrNotElementField)
		}
		b.elems = append(b.elems, elementField{
			field: f,
			key:   rel.String(),
			get:   fieldpath.CompileArrayAwarePath(rel),
			set:   fieldpath.CompileSetterPath(rel),
		})
	}
	return b, nil
}

// Validate resolves the array and runs every element rule against every
// item. A missing value, a non-array value, or an empty array is vacuously
// valid: array-level presence and shape are a separate scalar field's
// concern.
func (b *ArrayBatch) Validate(root map[string]any, opts ...Option) Result {
	return b.validate(root, newCallOptions(opts))
}

// Parse mirrors Validate but deep-clones the root up front and writes each
// element field's transformed value into the clone's matching element, so
// output never aliases the caller's input. On abort it returns the partial
// error set with no data.
func (b *ArrayBatch) Parse(root map[string]any, opts ...Option) ParseResult {
	o := newCallOptions(opts)
	data := cloneRoot(root)
	errs := b.parseInto(root, data, o)
	if len(errs) > 0 {
		return ParseResult{Result: Result{Errors: errs}}
	}
	return ParseResult{Result: validResult(), Data: data}
}

func (b *ArrayBatch) validate(root map[string]any, o callOptions) Result {
	arr, ok := b.resolveArray(root)
	if !ok {
		return validResult()
	}

	var errs Errors
	for i, el := range arr {
		elMap, _ := el.(map[string]any)
		for _, ef := range b.elems {
			res := b.validateElement(ef, elMap, arr, i, root, o)
			if res.Valid {
				continue
			}
			errs = append(errs, res.Errors...)
			if o.abortEarly {
				return Result{Errors: errs}
			}
		}
	}
	return invalidResult(errs)
}

func (b *ArrayBatch) parseInto(root, data map[string]any, o callOptions) Errors {
	arr, ok := b.resolveArray(root)
	if !ok {
		return nil
	}

	var cloneArr []any
	if raw, found := b.getArray(data); found {
		cloneArr, _ = raw.([]any)
	}

	var errs Errors
	for i, el := range arr {
		elMap, _ := el.(map[string]any)
		for _, ef := range b.elems {
			var value any
			if elMap != nil {
				value, _ = ef.get(elMap)
			}

			if batch, nested := value.(fieldpath.ElementBatch); nested {
				res := b.runNested(ef, batch, i, root, o, true)
				if !res.Valid {
					errs = append(errs, res.Errors...)
					if o.abortEarly {
						return errs
					}
				}
				continue
			}

			path := fieldpath.ElementPath(b.arrayPath, i, ef.key)
			ctx := &Context{
				Original: value,
				Value:    value,
				Root:     root,
				Path:     path,
				Array:    &ArrayContext{ArrayPath: b.arrayPath, Index: i, Array: arr},
			}
			res, out := ef.field.parseValue(value, ctx, o.abortEarlyOnEachField)
			if !res.Valid {
				errs = append(errs, res.Errors...)
				if o.abortEarly {
					return errs
				}
				continue
			}
			if ef.field.HasTransforms() && i < len(cloneArr) {
				if elClone, isMap := cloneArr[i].(map[string]any); isMap {
					ef.set(elClone, out)
				}
			}
		}
	}
	return errs
}

func (b *ArrayBatch) resolveArray(root map[string]any) ([]any, bool) {
	raw, ok := b.getArray(root)
	if !ok {
		return nil, false
	}
	arr, ok := raw.([]any)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	return arr, true
}

func (b *ArrayBatch) validateElement(ef elementField, el map[string]any, arr []any, i int, root map[string]any, o callOptions) Result {
	var value any
	if el != nil {
		value, _ = ef.get(el)
	}

	if batch, nested := value.(fieldpath.ElementBatch); nested {
		return b.runNested(ef, batch, i, root, o, false)
	}

	path := fieldpath.ElementPath(b.arrayPath, i, ef.key)
	ctx := &Context{
		Original: value,
		Value:    value,
		Root:     root,
		Path:     path,
		Array:    &ArrayContext{ArrayPath: b.arrayPath, Index: i, Array: arr},
	}
	return ef.field.validateValue(value, ctx, o.abortEarlyOnEachField)
}

// runNested validates an element field whose sub-path crossed an inner
// array, one inner element at a time with doubly indexed paths. Depth
// beyond one inner level is out of contract and skipped. In parse mode a
// field with transforms is rejected: element setters address exactly one
// index level.
func (b *ArrayBatch) runNested(ef elementField, batch fieldpath.ElementBatch, i int, root map[string]any, o callOptions, parsing bool) Result {
	innerBase := fieldpath.ElementPath(b.arrayPath, i, batch.ArrayPath)

	if parsing && ef.field.HasTransforms() {
		return Result{Errors: Errors{{
			Path:    innerBase,
			Code:    CodeTransformError,
			Message: fmt.Sprintf("transform failed for %s: %v", innerBase, ErrNestedArrayTransform),
		}}}
	}

	remainder := strings.TrimPrefix(ef.key, batch.ArrayPath+".")

	var errs Errors
	for j, inner := range batch.Values {
		if _, deeper := inner.(fieldpath.ElementBatch); deeper {
			continue
		}
		path := fieldpath.ElementPath(innerBase, j, remainder)
		ctx := &Context{
			Original: inner,
			Value:    inner,
			Root:     root,
			Path:     path,
			Array:    &ArrayContext{ArrayPath: innerBase, Index: j, Array: batch.Array},
		}
		res := ef.field.validateValue(inner, ctx, o.abortEarlyOnEachField)
		if !res.Valid {
			errs = append(errs, res.Errors...)
			if o.abortEarly {
				break
			}
		}
	}
	return invalidResult(errs)
}
