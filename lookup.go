package linkage

// BatchLookup resolves each key through mapping, substituting def for keys
// that are absent. Input order and duplicates are preserved; the output
// always has len(keys) elements. O(len(keys)) with average O(1) map access.
func BatchLookup[K comparable, V any](keys []K, mapping map[K]V, def V) []V {
	values := make([]V, len(keys))
	for i, k := range keys {
		if v, ok := mapping[k]; ok {
			values[i] = v
		} else {
			values[i] = def
		}
	}
	return values
}
