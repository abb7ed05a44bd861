package rules_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldval/rules"
)

func TestUUID(t *testing.T) {
	t.Parallel()
	v := rules.UUID()

	pass(t, v, "550e8400-e29b-41d4-a716-446655440000")
	pass(t, v, uuid.Nil.String())
	pass(t, v, uuid.New().String())
	fail(t, v, "550e8400e29b41d4a716446655440000") // no hyphens
	fail(t, v, "550e8400-e29b-41d4-a716-44665544000")
	fail(t, v, "550e8400-e29b-41d4-a716-4466554400zz")
	fail(t, v, "")
	fail(t, v, "   ")
	fail(t, v, nil)
	fail(t, v, 42)
}

func TestNonNilUUID(t *testing.T) {
	t.Parallel()
	v := rules.NonNilUUID()

	pass(t, v, uuid.New().String())
	fail(t, v, uuid.Nil.String())
	fail(t, v, "not-a-uuid")
	fail(t, v, nil)
}
