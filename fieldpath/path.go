package fieldpath

import "strings"

// Path is an immutable ordered sequence of segments derived from a dotted
// path string. Segments are never empty.
type Path struct {
	raw      string
	segments []string
}

// Parse splits a dotted path into its segments. It rejects empty paths and
// paths containing empty segments ("a..b", ".a", "a.").
func Parse(path string) (Path, error) {
	if path == "" {
		return Path{}, ErrEmptyPath
	}

	segments := strings.Split(path, ".")
	for _, s := range segments {
		if s == "" {
			return Path{}, ErrEmptySegment
		}
	}

	return Path{raw: path, segments: segments}, nil
}

// MustParse is like Parse but panics on an invalid path. Intended for
// statically known paths.
func MustParse(path string) Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the original dotted path.
func (p Path) String() string { return p.raw }

// Depth returns the number of segments.
func (p Path) Depth() int { return len(p.segments) }

// Segment returns the segment at index i.
func (p Path) Segment(i int) string { return p.segments[i] }

// Segments returns a copy of the segment list.
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// IsZero reports whether the path is the zero value (not produced by Parse).
func (p Path) IsZero() bool { return p.raw == "" }

// HasPrefix reports whether p starts with the given prefix path on segment
// boundaries. "ab.c" does not have prefix "a".
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.segments) > len(p.segments) {
		return false
	}
	for i, s := range prefix.segments {
		if p.segments[i] != s {
			return false
		}
	}
	return true
}

// StripPrefix returns the remainder of p after removing prefix. The second
// return value is false when prefix is not a strict prefix of p.
func (p Path) StripPrefix(prefix Path) (Path, bool) {
	if !p.HasPrefix(prefix) || len(prefix.segments) >= len(p.segments) {
		return Path{}, false
	}
	rest := p.segments[len(prefix.segments):]
	return Path{raw: strings.Join(rest, "."), segments: rest}, true
}
