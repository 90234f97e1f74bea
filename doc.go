// Package linkage implements key-based record-linkage algorithms for
// correlating records between two heterogeneous collections.
//
// The two collections do not need to share a schema: callers supply
// key-extraction functions that map an opaque record to a comparable key,
// and every algorithm in this package is agnostic to what the records
// actually contain. The package covers the classic join algorithm family
// (index match, sorted-merge join, hash-partitioned match, and pure set
// intersection) plus a cost estimator for choosing between them.
//
// # Basic Usage
//
// Building an index and matching against it:
//
//	idx := linkage.BuildIndex(proteins, func(p Protein) (string, bool) {
//	    return p.UniProtID, p.UniProtID != ""
//	})
//	matches := linkage.MatchWithIndex(samples, idx, func(s Sample) (string, bool) {
//	    return s.Accession, s.Accession != ""
//	})
//	for _, m := range matches {
//	    fmt.Println(m.Source, m.Target, m.Score, m.Type)
//	}
//
// Partitioned matching for large collections:
//
//	matches, err := linkage.HashPartitionMatch(source, target, keyFn, 16,
//	    linkage.WithWorkers(8))
//
// # Key Functions
//
// A KeyFunc returns (key, ok). Returning ok == false means "no key
// available" for that record; the record is silently excluded from indexes
// and match results. This is the only failure channel for key extraction:
// algorithms never panic on malformed records, they skip them.
//
// # Duplicate Keys
//
// When several target records share a key, MatchWithIndex pairs each source
// record with the first record in the bucket; MatchAllWithIndex pairs it
// with every record in the bucket. SortedMergeJoin always produces the full
// cartesian product per key group, mirroring relational merge-join
// semantics.
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Matching: index.go (BuildIndex, MatchWithIndex), multikey.go
//     (BuildMultiKeyIndex), merge.go (SortedMergeJoin), sets.go
//     (SetIntersectionMatch), partition.go (HashPartitionMatch)
//   - Utilities: chunk.go (ChunkedProcess), lookup.go (BatchLookup)
//   - Cost model: estimate.go (EstimatePerformance)
//   - Configuration: options.go (MatchOption, With* functions)
//   - Tables: table/ (column-oriented join engine)
//   - Errors: errors/ (exported sentinels)
//
// # Concurrency
//
// Every function is pure with respect to its inputs: caller collections are
// read, never mutated, and all intermediate structures are transient.
// Concurrent calls are safe as long as the caller does not mutate inputs
// mid-call. HashPartitionMatch optionally runs its partitions on a worker
// pool via WithWorkers; output is identical to the sequential run.
package linkage
