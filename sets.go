package linkage

// SetPartition is the three-way split produced by SetIntersectionMatch.
//
// The sets are pairwise disjoint, Matched ∪ SourceOnly is the deduplicated
// source collection, and Matched ∪ TargetOnly is the deduplicated target
// collection.
type SetPartition[T comparable] struct {
	Matched    map[T]struct{}
	SourceOnly map[T]struct{}
	TargetOnly map[T]struct{}
}

// SetIntersectionMatch partitions two collections set-theoretically into
// shared, source-only, and target-only values.
//
// Both inputs are deduplicated first, so multiplicity is not preserved.
// Complexity is O(len(source) + len(target)).
func SetIntersectionMatch[T comparable](source, target []T) SetPartition[T] {
	sourceSet := make(map[T]struct{}, len(source))
	for _, v := range source {
		sourceSet[v] = struct{}{}
	}
	targetSet := make(map[T]struct{}, len(target))
	for _, v := range target {
		targetSet[v] = struct{}{}
	}

	p := SetPartition[T]{
		Matched:    make(map[T]struct{}),
		SourceOnly: make(map[T]struct{}),
		TargetOnly: make(map[T]struct{}),
	}
	for v := range sourceSet {
		if _, ok := targetSet[v]; ok {
			p.Matched[v] = struct{}{}
		} else {
			p.SourceOnly[v] = struct{}{}
		}
	}
	for v := range targetSet {
		if _, ok := sourceSet[v]; !ok {
			p.TargetOnly[v] = struct{}{}
		}
	}
	return p
}
