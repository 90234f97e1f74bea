package linkage

// PriorityEntry is one record in a MultiKeyIndex bucket together with the
// zero-based position of the key function that produced it. Lower priority
// values come from earlier, more specific key functions.
type PriorityEntry[T any] struct {
	Priority int
	Item     T
}

// MultiKeyIndex is a layered index over several alternative key-extraction
// functions, for datasets where records can be correlated through more than
// one identifier scheme (e.g. a primary accession plus legacy aliases).
//
// The same key may legitimately be produced by several key functions and/or
// several records; every occurrence is retained in extraction order.
type MultiKeyIndex[T any, K comparable] struct {
	entries map[K][]PriorityEntry[T]
}

// BuildMultiKeyIndex indexes items under each of the supplied key functions.
//
// Key functions are tried in order for every item; the function's position
// in keys becomes the entry's Priority. A key function reporting ok == false
// skips only that (item, function) combination, never the rest of the item's
// functions or the rest of the batch.
func BuildMultiKeyIndex[T any, K comparable](items []T, keys []KeyFunc[T, K]) *MultiKeyIndex[T, K] {
	idx := &MultiKeyIndex[T, K]{entries: make(map[K][]PriorityEntry[T], len(items))}
	for _, item := range items {
		for priority, key := range keys {
			if key == nil {
				continue
			}
			k, ok := key(item)
			if !ok {
				continue
			}
			idx.entries[k] = append(idx.entries[k], PriorityEntry[T]{Priority: priority, Item: item})
		}
	}
	return idx
}

// Lookup returns every entry recorded under a key, in extraction order.
// The returned slice is the index's own storage; callers must not modify it.
func (idx *MultiKeyIndex[T, K]) Lookup(k K) []PriorityEntry[T] {
	return idx.entries[k]
}

// Best returns the entry with the lowest Priority recorded under a key.
// Ties are resolved in favor of the earliest extraction. The second return
// is false when the key is not indexed.
func (idx *MultiKeyIndex[T, K]) Best(k K) (T, bool) {
	entries := idx.entries[k]
	if len(entries) == 0 {
		var zero T
		return zero, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Priority < best.Priority {
			best = e
		}
	}
	return best.Item, true
}

// Len returns the number of distinct keys in the index.
func (idx *MultiKeyIndex[T, K]) Len() int {
	return len(idx.entries)
}
