package linkage

import "cmp"

// KeyValue is one (key, value) element of a key-sorted input sequence for
// SortedMergeJoin.
type KeyValue[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// SortedMergeJoin merge-joins two sequences that are already sorted by key.
//
// The function does not sort; passing unsorted input silently produces an
// incomplete join, mirroring the classic merge-join precondition. Two
// cursors advance in lockstep: when the heads differ, the cursor with the
// smaller key advances alone; when they agree, every source value sharing
// the key is paired with every target value sharing it (the cartesian
// product per key group) before both cursors move past the group. For a
// source rows and b target rows sharing one key the output therefore holds
// exactly a*b pairs.
//
// Matches carry Score 1.0 and Type "exact" unless overridden via options,
// ordered by key, then source position, then target position. Complexity is
// O(n+m+len(output)).
func SortedMergeJoin[K cmp.Ordered, S, T any](source []KeyValue[K, S], target []KeyValue[K, T], opts ...MatchOption) []Match[S, T] {
	cfg := defaultMatchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	var matches []Match[S, T]
	i, j := 0, 0
	for i < len(source) && j < len(target) {
		switch {
		case source[i].Key < target[j].Key:
			i++
		case source[i].Key > target[j].Key:
			j++
		default:
			k := source[i].Key
			iEnd := i
			for iEnd < len(source) && source[iEnd].Key == k {
				iEnd++
			}
			jEnd := j
			for jEnd < len(target) && target[jEnd].Key == k {
				jEnd++
			}
			for si := i; si < iEnd; si++ {
				for tj := j; tj < jEnd; tj++ {
					matches = append(matches, Match[S, T]{
						Source: source[si].Value,
						Target: target[tj].Value,
						Score:  cfg.score,
						Type:   cfg.matchType,
					})
				}
			}
			i, j = iEnd, jEnd
		}
	}
	return matches
}
