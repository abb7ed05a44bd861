package fieldval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldval"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	scalar := func(path string) *fieldval.Field {
		return fieldval.MustField(path, []fieldval.Validator{notEmpty()}, nil)
	}

	t.Run("plain fields take the fast path", func(t *testing.T) {
		t.Parallel()

		a := fieldval.Analyze([]*fieldval.Field{scalar("name"), scalar("email")})
		assert.Equal(t, fieldval.StrategyFastSeparated, a.Strategy)
		assert.True(t, a.CanOptimize)
		assert.False(t, a.HasTransforms)
		assert.False(t, a.HasArrayFields)
		assert.Equal(t, 2, a.FieldCount)
	})

	t.Run("any transform forces definition order", func(t *testing.T) {
		t.Parallel()

		withTransform := fieldval.MustField("email", nil, []any{lowercase()})
		a := fieldval.Analyze([]*fieldval.Field{scalar("name"), withTransform})
		assert.Equal(t, fieldval.StrategyDefinitionOrder, a.Strategy)
		assert.False(t, a.CanOptimize)
		assert.True(t, a.HasTransforms)
	})

	t.Run("element fields win over transforms", func(t *testing.T) {
		t.Parallel()

		a := fieldval.Analyze([]*fieldval.Field{
			fieldval.MustField("items.name", nil, []any{lowercase()},
				fieldval.ElementOf("items")),
		})
		assert.Equal(t, fieldval.StrategyArrayBatch, a.Strategy)
		assert.True(t, a.CanOptimize)
		assert.True(t, a.HasTransforms)
		assert.True(t, a.HasArrayFields)
	})

	t.Run("element fields are inferred from declared arrays", func(t *testing.T) {
		t.Parallel()

		a := fieldval.Analyze([]*fieldval.Field{
			fieldval.MustField("items", []fieldval.Validator{notEmpty()}, nil, fieldval.AsArray()),
			scalar("items.name"),
		})
		assert.Equal(t, fieldval.StrategyArrayBatch, a.Strategy)
		assert.True(t, a.HasArrayFields)
	})

	t.Run("path nesting alone does not imply an array", func(t *testing.T) {
		t.Parallel()

		a := fieldval.Analyze([]*fieldval.Field{scalar("user"), scalar("user.name")})
		assert.Equal(t, fieldval.StrategyFastSeparated, a.Strategy)
		assert.False(t, a.HasArrayFields)
	})
}

func TestStrategy_String(t *testing.T) {
	t.Parallel()

	cases := map[fieldval.Strategy]string{
		fieldval.StrategyFastSeparated:    "fast-separated",
		fieldval.StrategyDefinitionOrder:  "definition-order",
		fieldval.StrategyArrayBatch:       "array-batch",
		fieldval.StrategyHoistedOptimized: "hoisted-optimized",
		fieldval.Strategy(99):             "unknown",
	}
	for s, want := range cases {
		assert.Equal(t, want, s.String())
	}
}

func TestSchema_NestedDeclaredArrays(t *testing.T) {
	t.Parallel()

	// sku is empty in the first line only.
	data := map[string]any{"order": []any{
		map[string]any{"lines": []any{
			map[string]any{"sku": ""},
			map[string]any{"sku": "A-1"},
		}},
	}}

	build := func(declareInner bool) *fieldval.Schema {
		fields := []*fieldval.Field{
			fieldval.MustField("order", []fieldval.Validator{requiredAny()}, nil, fieldval.AsArray()),
		}
		if declareInner {
			fields = append(fields,
				fieldval.MustField("order.lines", []fieldval.Validator{requiredAny()}, nil, fieldval.AsArray()))
		}
		fields = append(fields,
			fieldval.MustField("order.lines.sku", []fieldval.Validator{notEmpty()}, nil))
		return fieldval.MustSchema(fields)
	}

	t.Run("inner elements validated without inner declaration", func(t *testing.T) {
		t.Parallel()

		res := build(false).Validate(data)
		require.False(t, res.Valid)
		assert.Equal(t, []string{"order[0].lines[0].sku"}, res.Errors.Fields())
	})

	t.Run("declaring the inner array keeps the same failures", func(t *testing.T) {
		t.Parallel()

		s := build(true)
		require.Equal(t, fieldval.StrategyArrayBatch, s.Analysis().Strategy)

		res := s.Validate(data)
		require.False(t, res.Valid)
		assert.Equal(t, []string{"order[0].lines[0].sku"}, res.Errors.Fields())
	})
}
