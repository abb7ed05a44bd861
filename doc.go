// Package fieldval is a declarative field-validation engine for
// decoded-JSON-shaped data. Consumers describe per-field rules as opaque
// validator and transform capability records attached to dotted paths;
// the engine compiles them once into a Schema and executes validate and
// parse passes against arbitrary nested input objects.
//
// # Architecture
//
// A Schema is compiled from a list of Field definitions. Compilation does
// all the expensive work exactly once: paths are parsed and turned into
// direct accessor/setter closures (package fieldpath), element fields are
// grouped into single-traversal array batches, and the field set is
// classified into an execution strategy: array batching when element
// fields are present, strict definition order when any field carries a
// transform, and a fast separated path otherwise. Validate and Parse then
// run allocation-light over the precompiled plan.
//
// There is no global state: every compiled schema owns its closures, and
// accessor caching only happens through an explicit bounded cache the
// caller supplies (see WithAccessorCache and package cache).
//
// # Usage
//
//	schema, err := fieldval.NewSchema([]*fieldval.Field{
//		fieldval.MustField("name", []fieldval.Validator{rules.Required()}, nil),
//		fieldval.MustField("email", []fieldval.Validator{rules.Required()}, []any{transform.Lower()}),
//	})
//	if err != nil {
//		// a malformed field definition is a build-time error
//	}
//
//	res := schema.Validate(data)
//	if !res.Valid {
//		for _, fe := range res.Errors {
//			// fe.Path, fe.Code, fe.Message
//		}
//	}
//
//	parsed := schema.Parse(data)
//	if parsed.Valid {
//		// parsed.Data is a transformed deep clone; data is untouched
//	}
//
// # Error Handling
//
// Malformed definitions (a validator without a check function, an invalid
// path) fail at construction. Everything that happens during a call is
// contained: a panicking check counts as a failed validation, a panicking
// message renderer falls back to a generic message, and a failing
// transform becomes a single TRANSFORM_ERROR entry. Validate and Parse
// never panic because of plugin code.
//
// # Performance Considerations
//
// Validate never allocates error values for passing fields, and a schema
// compiled with WithDeferredErrors defers message construction entirely
// until a failure is actually inspected. Array element rules are batched
// so each array is traversed once regardless of how many element fields
// are declared.
package fieldval
