package fieldpath

// Accessor reads the value at a fixed path from a root object. The boolean
// is false when any link along the path is missing or not an object.
type Accessor func(root map[string]any) (any, bool)

// Setter writes a value at a fixed path into a root object, creating
// intermediate objects as needed. A nil root is a no-op.
type Setter func(root map[string]any, value any)

// Compile builds a direct accessor for the given dotted path. Depths one
// through five get specialized closures; deeper paths use a loop. The
// accessor returns (nil, false) the moment any link is absent.
func Compile(path string) (Accessor, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return CompilePath(p), nil
}

// CompilePath is Compile for an already parsed path.
func CompilePath(p Path) Accessor {
	segs := p.segments

	switch len(segs) {
	case 1:
		k0 := segs[0]
		return func(root map[string]any) (any, bool) {
			v, ok := root[k0]
			return v, ok
		}
	case 2:
		k0, k1 := segs[0], segs[1]
		return func(root map[string]any) (any, bool) {
			m0, ok := root[k0].(map[string]any)
			if !ok {
				return nil, false
			}
			v, ok := m0[k1]
			return v, ok
		}
	case 3:
		k0, k1, k2 := segs[0], segs[1], segs[2]
		return func(root map[string]any) (any, bool) {
			m0, ok := root[k0].(map[string]any)
			if !ok {
				return nil, false
			}
			m1, ok := m0[k1].(map[string]any)
			if !ok {
				return nil, false
			}
			v, ok := m1[k2]
			return v, ok
		}
	case 4:
		k0, k1, k2, k3 := segs[0], segs[1], segs[2], segs[3]
		return func(root map[string]any) (any, bool) {
			m0, ok := root[k0].(map[string]any)
			if !ok {
				return nil, false
			}
			m1, ok := m0[k1].(map[string]any)
			if !ok {
				return nil, false
			}
			m2, ok := m1[k2].(map[string]any)
			if !ok {
				return nil, false
			}
			v, ok := m2[k3]
			return v, ok
		}
	case 5:
		k0, k1, k2, k3, k4 := segs[0], segs[1], segs[2], segs[3], segs[4]
		return func(root map[string]any) (any, bool) {
			m0, ok := root[k0].(map[string]any)
			if !ok {
				return nil, false
			}
			m1, ok := m0[k1].(map[string]any)
			if !ok {
				return nil, false
			}
			m2, ok := m1[k2].(map[string]any)
			if !ok {
				return nil, false
			}
			m3, ok := m2[k3].(map[string]any)
			if !ok {
				return nil, false
			}
			v, ok := m3[k4]
			return v, ok
		}
	}

	// Deep fallback for paths beyond the specialized depths.
	return func(root map[string]any) (any, bool) {
		var cur any = root
		for _, seg := range segs {
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			cur, ok = m[seg]
			if !ok {
				return nil, false
			}
		}
		return cur, true
	}
}

// CompileSetter builds a setter for the given dotted path. Intermediate
// segments that are absent or hold non-object values are replaced with
// fresh objects; the final segment is then assigned.
func CompileSetter(path string) (Setter, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return CompileSetterPath(p), nil
}

// CompileSetterPath is CompileSetter for an already parsed path.
func CompileSetterPath(p Path) Setter {
	segs := p.segments

	if len(segs) == 1 {
		k0 := segs[0]
		return func(root map[string]any, value any) {
			if root == nil {
				return
			}
			root[k0] = value
		}
	}

	intermediate := segs[:len(segs)-1]
	last := segs[len(segs)-1]
	return func(root map[string]any, value any) {
		if root == nil {
			return
		}
		cur := root
		for _, seg := range intermediate {
			next, ok := cur[seg].(map[string]any)
			if !ok {
				next = make(map[string]any)
				cur[seg] = next
			}
			cur = next
		}
		cur[last] = value
	}
}
