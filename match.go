package linkage

// Default Match field values used by every matcher unless overridden via
// WithMatchScore / WithMatchType.
const (
	// DefaultScore is the score assigned to key-equality matches.
	DefaultScore = 1.0

	// DefaultType is the type tag assigned to key-equality matches.
	DefaultType = "exact"
)

// Match is one correlated (source, target) record pair.
//
// Matches are created fresh by every algorithm and never mutated after
// construction. Source and Target are the caller's own values; the engine
// does not copy them. Score defaults to 1.0 and Type to "exact"; both are
// free-form so callers layering fuzzy or partial matching on top can tag
// results accordingly. The engine itself never enforces a score range.
type Match[S, T any] struct {
	Source S
	Target T
	Score  float64
	Type   string
}

// KeyFunc extracts a comparable key from a record.
//
// Returning ok == false means the record has no usable key and must be
// excluded from indexes and match results. Implementations are expected to
// absorb their own failure modes (missing fields, malformed values) and
// report them as ok == false rather than panicking; the matchers perform no
// recovery.
type KeyFunc[T any, K comparable] func(item T) (key K, ok bool)

// Identity returns a KeyFunc that uses the record itself as its key.
// The zero value (e.g. the empty string) is treated as "no key".
func Identity[K comparable]() KeyFunc[K, K] {
	var zero K
	return func(item K) (K, bool) {
		return item, item != zero
	}
}
