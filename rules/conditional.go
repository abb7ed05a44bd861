package rules

import (
	"github.com/dmitrymomot/fieldval"
	"github.com/dmitrymomot/fieldval/fieldpath"
)

// SkipIf builds a conditional-skip rule: when the predicate holds for the
// input root, the remainder of the field's validator chain is bypassed for
// that value. A panicking predicate means "do not skip".
func SkipIf(pred func(root map[string]any) bool) fieldval.Validator {
	return fieldval.Validator{
		Code: "skipIf",
		Skip: true,
		Check: func(_ any, root map[string]any, _ *fieldval.ArrayContext) bool {
			return pred(root)
		},
	}
}

// SkipUnless is SkipIf with the predicate negated.
func SkipUnless(pred func(root map[string]any) bool) fieldval.Validator {
	return fieldval.Validator{
		Code: "skipUnless",
		Skip: true,
		Check: func(_ any, root map[string]any, _ *fieldval.ArrayContext) bool {
			return !pred(root)
		},
	}
}

// SkipWhenEquals skips the field's chain when the value at path in the
// input root equals expected. Covers the common "skip when type is X"
// rule without a hand-written predicate.
func SkipWhenEquals(path string, expected any) fieldval.Validator {
	get, err := fieldpath.Compile(path)
	return fieldval.Validator{
		Code: "skipWhenEquals",
		Skip: true,
		Check: func(_ any, root map[string]any, _ *fieldval.ArrayContext) bool {
			if err != nil {
				return false
			}
			v, ok := get(root)
			return ok && v == expected
		},
		Params: map[string]any{"path": path, "expected": expected},
	}
}
