// Package fieldpath compiles dotted field paths into direct accessors and
// setters for decoded-JSON-shaped data (map[string]any objects and []any
// arrays).
//
// A path such as "user.address.city" is split into segments once, at
// compile time, and turned into a closure that chains map lookups without
// re-parsing the path string. Shallow paths (one to five segments) get
// depth-specialized closures; deeper paths fall back to a loop.
//
// # Architecture
//
// The package is deliberately cache-free: every Compile call re-derives the
// closure from the path string. Callers are expected to compile once when
// they build a validation field or batch strategy and hold the resulting
// closure for its lifetime. Process-wide accessor caches were rejected
// because they grow without bound in long-lived servers handling many
// distinct schemas; callers that want reuse across fields can supply an
// explicit bounded cache instead.
//
// # Usage
//
//	get, err := fieldpath.Compile("user.address.city")
//	if err != nil {
//		// invalid path
//	}
//	city, ok := get(data)
//
// Setters create missing intermediate objects on demand and never panic:
//
//	set, _ := fieldpath.CompileSetter("user.address.city")
//	set(data, "Lisbon") // creates data["user"]["address"] if absent
//
// CompileArrayAware returns an accessor that, when the path crosses an
// array before its final segment, resolves the remaining sub-path against
// every element and yields an ElementBatch instead of a scalar. Batch
// processors use this to discover per-element values in a single pass.
package fieldpath
