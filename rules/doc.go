// Package rules provides ready-made validator capability records for the
// fieldval engine: presence, string and numeric bounds, collections,
// patterns, UUIDs, and conditional skips.
//
// Each source file groups a family of rules for a specific domain
// (string.go, numeric.go, collection.go, ...). Every exported function
// simply constructs and returns a fieldval.Validator; the package holds no
// state and is goroutine-safe. The engine treats these records exactly
// like any externally supplied plugin; nothing here is privileged.
//
// Rules are value-shape tolerant: a bound rule applied to a value of the
// wrong type fails rather than panics, so a missing or malformed field
// reports a validation error instead of crashing the pass.
package rules
