package fieldval

// Context carries the per-value state of one validation or parse pass over
// one field. A fresh Context is built for every field on every call and
// discarded afterwards.
type Context struct {
	// Original is the value as read from the input, before any transform.
	Original any
	// Value is the current value, updated as transforms thread it forward.
	Value any
	// Root is the whole input object, for cross-field conditions.
	Root map[string]any
	// Path is the externally visible dotted path of the value, with
	// concrete array indices for element fields ("items[2].price").
	Path string
	// Array identifies the enclosing array element when the value belongs
	// to an array element field, nil otherwise.
	Array *ArrayContext
}

// ArrayContext pins a value being validated to a specific array element so
// error paths and element setters can locate it.
type ArrayContext struct {
	// ArrayPath is the dotted path of the array itself.
	ArrayPath string
	// Index is the element index within the array.
	Index int
	// Array is the array being iterated.
	Array []any
}
