// merge_test.go tests the sorted-merge joiner: lockstep cursor advance and
// the cartesian product per duplicate-key group.
package linkage

import (
	"slices"
	"testing"
)

func kv(key, value string) KeyValue[string, string] {
	return KeyValue[string, string]{Key: key, Value: value}
}

// TestSortedMergeJoin_CartesianPerKeyGroup verifies that a source rows and
// b target rows sharing one key yield exactly a*b pairs.
func TestSortedMergeJoin_CartesianPerKeyGroup(t *testing.T) {
	source := []KeyValue[string, string]{kv("A", "s1"), kv("A", "s2")}
	target := []KeyValue[string, string]{kv("A", "t1"), kv("A", "t2")}

	matches := SortedMergeJoin(source, target)
	if len(matches) != 4 {
		t.Fatalf("len(matches) = %d, want 4", len(matches))
	}
	requireExactDefaults(t, matches)

	got := pairsOf(matches)
	sortPairs(got)
	want := [][2]string{{"s1", "t1"}, {"s1", "t2"}, {"s2", "t1"}, {"s2", "t2"}}
	if !slices.Equal(got, want) {
		t.Fatalf("pairs = %v, want %v", got, want)
	}
}

// TestSortedMergeJoin_LockstepAdvance verifies the cursor behavior over
// interleaved shared and one-sided keys.
func TestSortedMergeJoin_LockstepAdvance(t *testing.T) {
	source := []KeyValue[string, string]{
		kv("A", "sA"), kv("C", "sC"), kv("D", "sD1"), kv("D", "sD2"), kv("F", "sF"),
	}
	target := []KeyValue[string, string]{
		kv("B", "tB"), kv("C", "tC"), kv("D", "tD"), kv("E", "tE"),
	}

	matches := SortedMergeJoin(source, target)
	got := pairsOf(matches)
	want := [][2]string{{"sC", "tC"}, {"sD1", "tD"}, {"sD2", "tD"}}
	if !slices.Equal(got, want) {
		t.Fatalf("pairs = %v, want %v", got, want)
	}
}

// TestSortedMergeJoin_EdgeInputs covers empty and disjoint sequences.
func TestSortedMergeJoin_EdgeInputs(t *testing.T) {
	cases := []struct {
		name           string
		source, target []KeyValue[string, string]
	}{
		{"both_empty", nil, nil},
		{"empty_source", nil, []KeyValue[string, string]{kv("A", "t")}},
		{"empty_target", []KeyValue[string, string]{kv("A", "s")}, nil},
		{"disjoint", []KeyValue[string, string]{kv("A", "s")}, []KeyValue[string, string]{kv("B", "t")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if matches := SortedMergeJoin(tc.source, tc.target); len(matches) != 0 {
				t.Fatalf("len(matches) = %d, want 0", len(matches))
			}
		})
	}
}

// TestSortedMergeJoin_IntKeys verifies the joiner over a non-string ordered
// key type.
func TestSortedMergeJoin_IntKeys(t *testing.T) {
	source := []KeyValue[int, string]{
		{Key: 1, Value: "s1"}, {Key: 3, Value: "s3"}, {Key: 5, Value: "s5"},
	}
	target := []KeyValue[int, string]{
		{Key: 3, Value: "t3"}, {Key: 4, Value: "t4"}, {Key: 5, Value: "t5"},
	}
	matches := SortedMergeJoin(source, target)
	got := pairsOf(matches)
	want := [][2]string{{"s3", "t3"}, {"s5", "t5"}}
	if !slices.Equal(got, want) {
		t.Fatalf("pairs = %v, want %v", got, want)
	}
}

// TestSortedMergeJoin_MatchesAgreeWithIndexMatch cross-checks the merge
// join against MatchAllWithIndex on the same key-overlapping data.
func TestSortedMergeJoin_MatchesAgreeWithIndexMatch(t *testing.T) {
	source := generateIDs("protein", 0, 120)
	target := generateIDs("protein", 80, 200)
	key := Identity[string]()

	merged := pairsOf(SortedMergeJoin(sortedKVs(source), sortedKVs(target)))
	indexed := pairsOf(MatchAllWithIndex(source, BuildIndex(target, key), key))
	sortPairs(merged)
	sortPairs(indexed)
	if !slices.Equal(merged, indexed) {
		t.Fatalf("merge join and index match disagree: %d vs %d pairs", len(merged), len(indexed))
	}
}
