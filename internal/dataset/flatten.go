package dataset

// Flatten walks a nested feature map and returns a single-level map whose
// keys are the path segments joined by sep. Leaf values are kept as-is.
func Flatten(m map[string]any, parentKey, sep string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key := k
		if parentKey != "" {
			key = parentKey + sep + k
		}
		if nested, ok := v.(map[string]any); ok {
			for nk, nv := range Flatten(nested, key, sep) {
				out[nk] = nv
			}
			continue
		}
		out[key] = v
	}
	return out
}
