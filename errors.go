package fieldval

import "errors"

// Construction-time errors. These indicate a broken builder or plugin, not
// bad input data, and are returned when fields and schemas are compiled,
// never from Validate or Parse.
var (
	// ErrMissingCheck indicates a validator record without a check function.
	ErrMissingCheck = errors.New("fieldval: validator has no check function")
	// ErrMissingCode indicates a validator record without an error code.
	ErrMissingCode = errors.New("fieldval: validator has no code")
	// ErrInvalidTransform indicates a value that cannot be normalized into a
	// Transformer.
	ErrInvalidTransform = errors.New("fieldval: unsupported transform shape")
	// ErrNilField indicates a nil *Field in a schema's field list.
	ErrNilField = errors.New("fieldval: nil field")
	// ErrNoFields indicates an attempt to compile a schema without fields.
	ErrNoFields = errors.New("fieldval: schema requires at least one field")
	// ErrDuplicateField indicates two fields declared for the same path.
	ErrDuplicateField = errors.New("fieldval: duplicate field path")
	// ErrNotElementField indicates an element field whose path does not
	// extend the array path it was grouped under.
	ErrNotElementField = errors.New("fieldval: field path does not extend array path")
	// ErrNestedArrayTransform indicates transforms declared on an element
	// field whose sub-path crosses a further array; writing those back is
	// not supported.
	ErrNestedArrayTransform = errors.New("fieldval: transforms on nested array element fields are not supported")
)
