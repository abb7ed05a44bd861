// Package transform provides ready-made transformers for the fieldval
// engine: string normalization, case mapping, and numeric adjustments.
//
// Transformers run only after a field's validators have all passed, in
// declaration order, each consuming the previous output. All transformers
// here are type-tolerant: applied to a value of another type they return
// it unchanged rather than failing, so an optional absent field flows
// through a parse untouched.
//
// Chain composes several transformers into one reusable pipeline.
package transform
