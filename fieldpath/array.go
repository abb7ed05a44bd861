package fieldpath

import "strings"

// ElementBatch is returned by an array-aware accessor when the path crosses
// an array before its final segment. Values holds one entry per array
// element: the remaining sub-path resolved against that element, or nil
// when the element lacks it. ArrayPath is the dotted path of the array
// itself, relative to the root the accessor was invoked on; Array is the
// array value it addressed.
type ElementBatch struct {
	ArrayPath string
	Array     []any
	Values    []any
}

// CompileArrayAware builds an accessor that behaves like Compile for purely
// object-shaped paths but, on encountering a []any at a non-terminal
// segment, maps the remaining sub-path over every element and returns an
// ElementBatch. Nested arrays yield nested ElementBatch values.
func CompileArrayAware(path string) (Accessor, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return CompileArrayAwarePath(p), nil
}

// CompileArrayAwarePath is CompileArrayAware for an already parsed path.
func CompileArrayAwarePath(p Path) Accessor {
	segs := p.segments
	return func(root map[string]any) (any, bool) {
		return resolveArrayAware(root, segs)
	}
}

// resolveArrayAware walks segs from cur. Array paths in nested batches are
// relative to the element they were resolved against.
func resolveArrayAware(cur any, segs []string) (any, bool) {
	for i, seg := range segs {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}

		if i == len(segs)-1 {
			break
		}

		arr, isArray := cur.([]any)
		if !isArray {
			continue
		}

		// Non-terminal array: resolve the rest of the path per element.
		rest := segs[i+1:]
		values := make([]any, len(arr))
		for j, el := range arr {
			if v, found := resolveArrayAware(el, rest); found {
				values[j] = v
			}
		}
		return ElementBatch{
			ArrayPath: strings.Join(segs[:i+1], "."),
			Array:     arr,
			Values:    values,
		}, true
	}
	return cur, true
}

// ElementPath synthesizes the externally visible path of one element field,
// in the form "arrayPath[index].key". Key may itself be dotted.
func ElementPath(arrayPath string, index int, key string) string {
	var b strings.Builder
	b.Grow(len(arrayPath) + len(key) + 8)
	b.WriteString(arrayPath)
	b.WriteByte('[')
	writeInt(&b, index)
	b.WriteByte(']')
	if key != "" {
		b.WriteByte('.')
		b.WriteString(key)
	}
	return b.String()
}

// writeInt appends a non-negative integer without the strconv allocation
// for the common small-index case.
func writeInt(b *strings.Builder, n int) {
	if n < 10 {
		b.WriteByte(byte('0' + n))
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	b.Write(buf[i:])
}
