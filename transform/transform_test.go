package transform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldval"
	"github.com/dmitrymomot/fieldval/transform"
)

func apply(t *testing.T, tr fieldval.Transformer, value any) any {
	t.Helper()
	out, err := tr.Apply(value, &fieldval.Context{Original: value, Value: value})
	require.NoError(t, err)
	return out
}

func TestStringTransforms(t *testing.T) {
	t.Parallel()

	t.Run("trim", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hello", apply(t, transform.Trim(), "  hello\t"))
		assert.Equal(t, "", apply(t, transform.Trim(), "   "))
	})

	t.Run("lower and upper", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "test", apply(t, transform.Lower(), "TeST"))
		assert.Equal(t, "TEST", apply(t, transform.Upper(), "TeST"))
	})

	t.Run("title case", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello World", apply(t, transform.TitleCase(), "hello world"))
	})

	t.Run("collapse whitespace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a b c", apply(t, transform.CollapseWhitespace(), "  a \t b\n\nc "))
	})

	t.Run("non-strings pass through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 42, apply(t, transform.Lower(), 42))
		assert.Nil(t, apply(t, transform.Trim(), nil))
	})
}

func TestNumericTransforms(t *testing.T) {
	t.Parallel()

	t.Run("clamp", func(t *testing.T) {
		t.Parallel()
		tr := transform.Clamp(0, 10)
		assert.Equal(t, 0.0, apply(t, tr, -5.0))
		assert.Equal(t, 10.0, apply(t, tr, 99.0))
		assert.Equal(t, 7.0, apply(t, tr, 7.0))
	})

	t.Run("round", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 2.0, apply(t, transform.Round(), 1.5))
		assert.Equal(t, -2.0, apply(t, transform.Round(), -1.5))
	})

	t.Run("non-floats pass through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "7", apply(t, transform.Round(), "7"))
	})
}

func TestChain(t *testing.T) {
	t.Parallel()

	t.Run("applies left to right", func(t *testing.T) {
		t.Parallel()
		tr := transform.Chain(transform.Trim(), transform.Lower())
		assert.Equal(t, "hello", apply(t, tr, "  HELLO "))
	})

	t.Run("stops on the first error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		failing := fieldval.TransformFunc(func(any, *fieldval.Context) (any, error) {
			return nil, boom
		})
		var called bool
		spy := fieldval.TransformFunc(func(v any, _ *fieldval.Context) (any, error) {
			called = true
			return v, nil
		})

		_, err := transform.Chain(failing, spy).Apply("x", &fieldval.Context{})
		require.ErrorIs(t, err, boom)
		assert.False(t, called)
	})

	t.Run("empty chain is identity", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "x", apply(t, transform.Chain(), "x"))
	})
}

func TestTransformsInField(t *testing.T) {
	t.Parallel()

	field := fieldval.MustField("email", nil, []any{
		transform.Chain(transform.Trim(), transform.Lower()),
	})

	res, out := field.Parse("  ADA@EXAMPLE.COM ", nil)
	require.True(t, res.Valid)
	assert.Equal(t, "ada@example.com", out)
}
