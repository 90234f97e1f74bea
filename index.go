package linkage

// Index is a hash lookup structure mapping each key to the ordered bucket
// of records that produced it.
//
// Buckets preserve the insertion order of BuildIndex's input and retain
// every record, so duplicate keys across distinct records are all
// recorded. Records inside buckets are the caller's values, never copied.
//
// An Index is immutable after BuildIndex returns and safe for concurrent
// lookups.
type Index[T any, K comparable] struct {
	buckets map[K][]T
	items   int
}

// BuildIndex constructs an Index over items using the supplied key function.
//
// Records whose key function reports ok == false carry no key and are
// skipped; they never appear in any bucket. Complexity is O(len(items)).
func BuildIndex[T any, K comparable](items []T, key KeyFunc[T, K]) *Index[T, K] {
	idx := &Index[T, K]{buckets: make(map[K][]T, len(items))}
	for _, item := range items {
		k, ok := key(item)
		if !ok {
			continue
		}
		idx.buckets[k] = append(idx.buckets[k], item)
		idx.items++
	}
	return idx
}

// Lookup returns the full bucket for a key in insertion order, or nil if the
// key is not indexed. The returned slice is the index's own storage; callers
// must not modify it.
func (idx *Index[T, K]) Lookup(k K) []T {
	return idx.buckets[k]
}

// Len returns the number of distinct keys in the index.
func (idx *Index[T, K]) Len() int {
	return len(idx.buckets)
}

// NumItems returns the total number of indexed records across all buckets.
func (idx *Index[T, K]) NumItems() int {
	return idx.items
}

// MatchWithIndex scans source records against a prebuilt index.
//
// For each source record whose key is present in the index, exactly one
// Match is emitted, pairing the record with the first record in the key's
// bucket. When a bucket holds several candidates, callers wanting all of
// them should use MatchAllWithIndex or re-query idx.Lookup directly; the
// first-candidate default keeps output size bounded by len(source).
//
// Matches carry Score 1.0 and Type "exact" unless overridden via options.
// Output order follows source order. Complexity is O(len(source)) given the
// prebuilt index, O(n+m) end to end including BuildIndex.
func MatchWithIndex[S, T any, K comparable](source []S, idx *Index[T, K], key KeyFunc[S, K], opts ...MatchOption) []Match[S, T] {
	cfg := defaultMatchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	var matches []Match[S, T]
	for _, item := range source {
		k, ok := key(item)
		if !ok {
			continue
		}
		bucket := idx.buckets[k]
		if len(bucket) == 0 {
			continue
		}
		matches = append(matches, Match[S, T]{
			Source: item,
			Target: bucket[0],
			Score:  cfg.score,
			Type:   cfg.matchType,
		})
	}
	return matches
}

// MatchAllWithIndex is the cartesian variant of MatchWithIndex: each source
// record is paired with every record in its key's bucket, in bucket order.
// With duplicate target keys the output can exceed len(source).
func MatchAllWithIndex[S, T any, K comparable](source []S, idx *Index[T, K], key KeyFunc[S, K], opts ...MatchOption) []Match[S, T] {
	cfg := defaultMatchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	var matches []Match[S, T]
	for _, item := range source {
		k, ok := key(item)
		if !ok {
			continue
		}
		for _, candidate := range idx.buckets[k] {
			matches = append(matches, Match[S, T]{
				Source: item,
				Target: candidate,
				Score:  cfg.score,
				Type:   cfg.matchType,
			})
		}
	}
	return matches
}
