package fieldval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldval"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without environment", func(t *testing.T) {
		cfg, err := fieldval.LoadConfig()
		require.NoError(t, err)
		assert.False(t, cfg.AbortEarly)
		assert.True(t, cfg.AbortEarlyOnEachField)
		assert.False(t, cfg.DeferredErrors)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("FIELDVAL_ABORT_EARLY", "true")
		t.Setenv("FIELDVAL_ABORT_EARLY_ON_EACH_FIELD", "false")
		t.Setenv("FIELDVAL_DEFERRED_ERRORS", "true")

		cfg, err := fieldval.LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.AbortEarly)
		assert.False(t, cfg.AbortEarlyOnEachField)
		assert.True(t, cfg.DeferredErrors)
	})

	t.Run("invalid boolean fails", func(t *testing.T) {
		t.Setenv("FIELDVAL_ABORT_EARLY", "not-a-bool")

		_, err := fieldval.LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, fieldval.ErrParsingConfig)
	})
}

func TestWithConfig(t *testing.T) {
	fields := func() []*fieldval.Field {
		return []*fieldval.Field{
			fieldval.MustField("a", []fieldval.Validator{requiredAny()}, nil),
			fieldval.MustField("b", []fieldval.Validator{requiredAny()}, nil),
		}
	}

	t.Run("abort early from config", func(t *testing.T) {
		cfg := fieldval.Config{AbortEarly: true, AbortEarlyOnEachField: true}
		schema := fieldval.MustSchema(fields(), fieldval.WithConfig(cfg))

		res := schema.Validate(map[string]any{})
		assert.Len(t, res.Errors, 1)
	})

	t.Run("deferred errors from config", func(t *testing.T) {
		cfg := fieldval.Config{DeferredErrors: true, AbortEarlyOnEachField: true}
		schema := fieldval.MustSchema(fields(), fieldval.WithConfig(cfg))
		assert.Equal(t, fieldval.StrategyHoistedOptimized, schema.Analysis().Strategy)
	})
}
