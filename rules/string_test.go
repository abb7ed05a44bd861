package rules_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldval"
	"github.com/dmitrymomot/fieldval/rules"
)

func pass(t *testing.T, v fieldval.Validator, value any) {
	t.Helper()
	assert.True(t, v.Check(value, nil, nil), "value %#v should pass %s", value, v.Code)
}

func fail(t *testing.T, v fieldval.Validator, value any) {
	t.Helper()
	assert.False(t, v.Check(value, nil, nil), "value %#v should fail %s", value, v.Code)
}

func TestRequired(t *testing.T) {
	t.Parallel()
	v := rules.Required()

	pass(t, v, "hello")
	pass(t, v, 0)
	pass(t, v, false)
	pass(t, v, []any{})
	fail(t, v, nil)
	fail(t, v, "")
	fail(t, v, "   ")
	fail(t, v, "\t\n")

	assert.Equal(t, "required", v.Code)
	assert.Equal(t, "field is required", v.Message(nil, "name", nil, nil))
}

func TestString(t *testing.T) {
	t.Parallel()
	v := rules.String()

	pass(t, v, "hello")
	pass(t, v, "")
	pass(t, v, nil)
	fail(t, v, 42)
	fail(t, v, []any{"x"})
}

func TestMinLen(t *testing.T) {
	t.Parallel()
	v := rules.MinLen(3)

	pass(t, v, "abc")
	pass(t, v, "abcd")
	fail(t, v, "ab")
	fail(t, v, "")
	fail(t, v, nil)
	fail(t, v, 123)

	assert.Equal(t, "stringMin", v.Code)
	assert.Equal(t, 3, v.Params["min"])
}

func TestMaxLen(t *testing.T) {
	t.Parallel()
	v := rules.MaxLen(3)

	pass(t, v, "abc")
	pass(t, v, "")
	fail(t, v, "abcd")
	fail(t, v, nil)
}

func TestMatches(t *testing.T) {
	t.Parallel()
	v := rules.Matches(regexp.MustCompile(`^[a-z]+$`))

	pass(t, v, "abc")
	fail(t, v, "ABC")
	fail(t, v, "")
	fail(t, v, 42)
}

func TestOneOf(t *testing.T) {
	t.Parallel()
	v := rules.OneOf("draft", "published")

	pass(t, v, "draft")
	pass(t, v, "published")
	fail(t, v, "archived")
	fail(t, v, nil)

	assert.Equal(t, "must be one of: draft, published", v.Message(nil, "status", nil, nil))
}
