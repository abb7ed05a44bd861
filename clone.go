package fieldval

// cloneRoot deep-clones a decoded-JSON-shaped root so Parse can write
// transformed values without aliasing the caller's input. Scalars are
// copied by value; maps and slices are rebuilt recursively. An
// encoding/json round trip would be simpler but mangles numeric types.
func cloneRoot(root map[string]any) map[string]any {
	if root == nil {
		return nil
	}
	return cloneMap(root)
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		return cloneMap(vv)
	case []any:
		return cloneSlice(vv)
	default:
		return v
	}
}
