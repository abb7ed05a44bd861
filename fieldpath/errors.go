package fieldpath

import "errors"

var (
	// ErrEmptyPath indicates an empty path string was given to Parse.
	ErrEmptyPath = errors.New("fieldpath: empty path")
	// ErrEmptySegment indicates a path with an empty segment, such as "a..b".
	ErrEmptySegment = errors.New("fieldpath: empty path segment")
)
