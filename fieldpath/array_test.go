package fieldpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldval/fieldpath"
)

func TestCompileArrayAware(t *testing.T) {
	t.Run("behaves like Compile on object paths", func(t *testing.T) {
		get, err := fieldpath.CompileArrayAware("user.name")
		require.NoError(t, err)

		v, ok := get(map[string]any{"user": map[string]any{"name": "Ada"}})
		assert.True(t, ok)
		assert.Equal(t, "Ada", v)
	})

	t.Run("terminal array is returned as-is", func(t *testing.T) {
		get, err := fieldpath.CompileArrayAware("items")
		require.NoError(t, err)

		v, ok := get(map[string]any{"items": []any{1, 2}})
		assert.True(t, ok)
		assert.Equal(t, []any{1, 2}, v)
	})

	t.Run("non-terminal array yields an element batch", func(t *testing.T) {
		get, err := fieldpath.CompileArrayAware("items.name")
		require.NoError(t, err)

		v, ok := get(map[string]any{"items": []any{
			map[string]any{"name": "a"},
			map[string]any{"other": true},
			map[string]any{"name": "c"},
		}})
		require.True(t, ok)

		batch, isBatch := v.(fieldpath.ElementBatch)
		require.True(t, isBatch)
		assert.Equal(t, "items", batch.ArrayPath)
		assert.Equal(t, []any{"a", nil, "c"}, batch.Values)
		assert.Len(t, batch.Array, 3)
	})

	t.Run("array behind an object prefix", func(t *testing.T) {
		get, err := fieldpath.CompileArrayAware("order.items.price")
		require.NoError(t, err)

		v, ok := get(map[string]any{"order": map[string]any{"items": []any{
			map[string]any{"price": 10},
		}}})
		require.True(t, ok)

		batch, isBatch := v.(fieldpath.ElementBatch)
		require.True(t, isBatch)
		assert.Equal(t, "order.items", batch.ArrayPath)
		assert.Equal(t, []any{10}, batch.Values)
	})

	t.Run("nested arrays yield nested batches", func(t *testing.T) {
		get, err := fieldpath.CompileArrayAware("orders.lines.qty")
		require.NoError(t, err)

		v, ok := get(map[string]any{"orders": []any{
			map[string]any{"lines": []any{
				map[string]any{"qty": 1},
				map[string]any{"qty": 2},
			}},
		}})
		require.True(t, ok)

		outer, isBatch := v.(fieldpath.ElementBatch)
		require.True(t, isBatch)
		assert.Equal(t, "orders", outer.ArrayPath)
		require.Len(t, outer.Values, 1)

		inner, isBatch := outer.Values[0].(fieldpath.ElementBatch)
		require.True(t, isBatch)
		assert.Equal(t, "lines", inner.ArrayPath)
		assert.Equal(t, []any{1, 2}, inner.Values)
	})

	t.Run("missing array path", func(t *testing.T) {
		get, err := fieldpath.CompileArrayAware("items.name")
		require.NoError(t, err)

		_, ok := get(map[string]any{})
		assert.False(t, ok)
	})
}

func TestElementPath(t *testing.T) {
	assert.Equal(t, "items[0].name", fieldpath.ElementPath("items", 0, "name"))
	assert.Equal(t, "a.b[12].c.d", fieldpath.ElementPath("a.b", 12, "c.d"))
	assert.Equal(t, "items[3]", fieldpath.ElementPath("items", 3, ""))
}
