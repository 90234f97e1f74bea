package linkage

import (
	"fmt"
	"slices"
	"testing"
)

// protein is the opaque record shape used across matcher tests. Records
// with an empty Accession have no usable key.
type protein struct {
	Accession string
	Gene      string
}

// accessionKey extracts the UniProt-style accession, reporting no key for
// records that lack one.
func accessionKey(p protein) (string, bool) {
	return p.Accession, p.Accession != ""
}

// generateIDs produces identifiers prefix_from .. prefix_(to-1).
func generateIDs(prefix string, from, to int) []string {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, fmt.Sprintf("%s_%d", prefix, i))
	}
	return ids
}

// pairsOf flattens matches into (source, target) string pairs for
// order-insensitive comparison.
func pairsOf(matches []Match[string, string]) [][2]string {
	pairs := make([][2]string, len(matches))
	for i, m := range matches {
		pairs[i] = [2]string{m.Source, m.Target}
	}
	return pairs
}

// sortPairs orders pairs lexicographically, for comparing match sets that
// may legitimately differ in order.
func sortPairs(pairs [][2]string) {
	slices.SortFunc(pairs, func(a, b [2]string) int {
		if a[0] != b[0] {
			if a[0] < b[0] {
				return -1
			}
			return 1
		}
		if a[1] < b[1] {
			return -1
		}
		if a[1] > b[1] {
			return 1
		}
		return 0
	})
}

// requireExactDefaults fails the test unless every match carries the
// default score and type tag.
func requireExactDefaults(t *testing.T, matches []Match[string, string]) {
	t.Helper()
	for _, m := range matches {
		if m.Score != DefaultScore {
			t.Fatalf("match %v: score = %v, want %v", m, m.Score, DefaultScore)
		}
		if m.Type != DefaultType {
			t.Fatalf("match %v: type = %q, want %q", m, m.Type, DefaultType)
		}
	}
}

// sortedKVs converts identifiers into a key-sorted KeyValue sequence using
// the identifier as both key and value.
func sortedKVs(ids []string) []KeyValue[string, string] {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	kvs := make([]KeyValue[string, string], len(sorted))
	for i, id := range sorted {
		kvs[i] = KeyValue[string, string]{Key: id, Value: id}
	}
	return kvs
}

// setOf builds a set from identifiers.
func setOf(ids ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// requireSameSet fails the test unless got and want hold the same members.
func requireSameSet(t *testing.T, name string, got, want map[string]struct{}) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: size = %d, want %d (got %v, want %v)", name, len(got), len(want), got, want)
	}
	for v := range want {
		if _, ok := got[v]; !ok {
			t.Fatalf("%s: missing %q", name, v)
		}
	}
}
