package fieldval

import "strings"

// Strategy identifies the execution algorithm chosen for a field set. The
// choice is made once, when the schema is compiled, and amortized over
// every subsequent call.
type Strategy uint8

const (
	// StrategyFastSeparated runs each field's validators with minimal
	// per-field ceremony. Only safe when no ordering-sensitive side effect
	// (a transform) exists.
	StrategyFastSeparated Strategy = iota
	// StrategyDefinitionOrder preserves strict validator-then-transform
	// ordering per field, required whenever any field carries a transform.
	StrategyDefinitionOrder
	// StrategyArrayBatch iterates each declared array once, validating
	// every element field per item.
	StrategyArrayBatch
	// StrategyHoistedOptimized is FastSeparated or ArrayBatch compiled
	// with deferred error construction: the hot path returns failing
	// indices only and messages are built on demand.
	StrategyHoistedOptimized
)

func (s Strategy) String() string {
	switch s {
	case StrategyFastSeparated:
		return "fast-separated"
	case StrategyDefinitionOrder:
		return "definition-order"
	case StrategyArrayBatch:
		return "array-batch"
	case StrategyHoistedOptimized:
		return "hoisted-optimized"
	default:
		return "unknown"
	}
}

// Analysis is the build-time classification of a field set. It is computed
// once per schema and drives which executor path Validate and Parse use.
type Analysis struct {
	Strategy       Strategy
	Reason         string
	CanOptimize    bool
	HasTransforms  bool
	HasArrayFields bool
	FieldCount     int
}

// Analyze classifies a field set. Array element groups take priority over
// everything (they need batched traversal); otherwise any transform forces
// definition order, since reordering would break value threading; a field
// set with neither gets the fast separated path.
func Analyze(fields []*Field) Analysis {
	a := Analysis{FieldCount: len(fields)}

	for _, f := range fields {
		if f.HasTransforms() {
			a.HasTransforms = true
		}
		if isElementField(f, fields) {
			a.HasArrayFields = true
		}
	}

	switch {
	case a.HasArrayFields:
		a.Strategy = StrategyArrayBatch
		a.Reason = "array element fields require batched traversal"
		a.CanOptimize = true
	case a.HasTransforms:
		a.Strategy = StrategyDefinitionOrder
		a.Reason = "transforms require definition-order execution"
		a.CanOptimize = false
	default:
		a.Strategy = StrategyFastSeparated
		a.Reason = "no transforms or array fields"
		a.CanOptimize = true
	}
	return a
}

// isElementField reports whether f validates a key of array elements:
// either declared explicitly, or inferred because its path extends the
// path of a field declared as an array.
func isElementField(f *Field, fields []*Field) bool {
	if f.ArrayPath() != "" {
		return true
	}
	return inferredArrayPath(f, fields) != ""
}

// inferredArrayPath returns the outermost declared array path that f's path
// strictly extends, or "". Batches group under the outermost array: their
// top-level accessor cannot cross an enclosing array, while the per-element
// accessor resolves any further arrays inside each element.
func inferredArrayPath(f *Field, fields []*Field) string {
	best := ""
	for _, g := range fields {
		if g == f || !g.IsArray() {
			continue
		}
		prefix := g.Path() + "."
		if strings.HasPrefix(f.Path(), prefix) && (best == "" || len(g.Path()) < len(best)) {
			best = g.Path()
		}
	}
	return best
}

// elementGroupOf resolves the array path a field batches under, or "" for
// scalar fields.
func elementGroupOf(f *Field, fields []*Field) string {
	if f.ArrayPath() != "" {
		return f.ArrayPath()
	}
	return inferredArrayPath(f, fields)
}
