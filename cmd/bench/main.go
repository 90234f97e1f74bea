// Bench is a benchmarking tool for measuring linkage matching throughput
// across the algorithm family, side by side with the analytic cost model.
//
// Usage:
//
//	go run ./cmd/bench -source 1000000 -target 1000000 -overlap 0.5
//
// Flags:
//
//	-source      Number of source records (default: 1,000,000)
//	-target      Number of target records (default: 1,000,000)
//	-overlap     Fraction of target records sharing keys with source (default: 0.5)
//	-partitions  Partition count for the hash-partitioned matcher (default: 16)
//	-workers     Number of parallel workers for partitioned matching (default: 1)
//	-hash        Partition hash: xxh3, xxhash64 or murmur3 (default: xxh3)
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/arpanauts/linkage"
)

func main() {
	sourceFlag := flag.Int("source", 1_000_000, "number of source records")
	targetFlag := flag.Int("target", 1_000_000, "number of target records")
	overlapFlag := flag.Float64("overlap", 0.5, "fraction of target records sharing keys with source")
	partitionsFlag := flag.Int("partitions", 16, "partition count for the hash-partitioned matcher")
	workersFlag := flag.Int("workers", 1, "number of parallel workers for partitioned matching")
	hashFlag := flag.String("hash", "xxh3", "partition hash: xxh3, xxhash64 or murmur3")
	flag.Parse()

	nSource := *sourceFlag
	nTarget := *targetFlag
	if *overlapFlag < 0 || *overlapFlag > 1 {
		fmt.Fprintln(os.Stderr, "overlap must be in [0, 1]")
		os.Exit(1)
	}
	hashAlgo, err := linkage.ParseHashAlgorithm(*hashFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Generating records...")
	// Target keys overlap the tail of the source key space by the requested
	// fraction; the rest of the target is disjoint.
	shared := int(float64(nTarget) * *overlapFlag)
	source := make([]string, nSource)
	for i := range source {
		source[i] = fmt.Sprintf("protein_%d", i)
	}
	target := make([]string, nTarget)
	for i := range target {
		if i < shared {
			target[i] = fmt.Sprintf("protein_%d", nSource-shared+i)
		} else {
			target[i] = fmt.Sprintf("protein_%d", nSource+i)
		}
	}
	key := linkage.Identity[string]()

	fmt.Println()
	fmt.Println("Cost model:")
	for _, algo := range []linkage.Algorithm{
		linkage.AlgoNestedLoop,
		linkage.AlgoHashIndex,
		linkage.AlgoSortedMerge,
		linkage.AlgoSetIntersection,
	} {
		est, err := linkage.EstimatePerformance(nSource, nTarget, algo)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("  %-17s %-22s %14.0f ops  recommended=%v\n",
			est.Algorithm, est.Complexity, est.Operations, est.Recommended)
	}
	fmt.Println()

	start := time.Now()
	idx := linkage.BuildIndex(target, key)
	matches := linkage.MatchWithIndex(source, idx, key)
	report("hash_index", len(matches), nSource+nTarget, time.Since(start))

	start = time.Now()
	partitioned, err := linkage.HashPartitionMatch(source, target, key, *partitionsFlag,
		linkage.WithWorkers(*workersFlag), linkage.WithHashAlgorithm(hashAlgo))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	report(fmt.Sprintf("partitioned/%s", hashAlgo), len(partitioned), nSource+nTarget, time.Since(start))

	start = time.Now()
	sourcePairs := sortedPairs(source)
	targetPairs := sortedPairs(target)
	merged := linkage.SortedMergeJoin(sourcePairs, targetPairs)
	report("sorted_merge", len(merged), nSource+nTarget, time.Since(start))

	start = time.Now()
	parts := linkage.SetIntersectionMatch(source, target)
	report("set_intersection", len(parts.Matched), nSource+nTarget, time.Since(start))
}

// sortedPairs converts identity-keyed records into a key-sorted KeyValue
// sequence, the precondition of SortedMergeJoin.
func sortedPairs(records []string) []linkage.KeyValue[string, string] {
	sorted := slices.Clone(records)
	slices.Sort(sorted)
	pairs := make([]linkage.KeyValue[string, string], len(sorted))
	for i, r := range sorted {
		pairs[i] = linkage.KeyValue[string, string]{Key: r, Value: r}
	}
	return pairs
}

func report(name string, matched, processed int, elapsed time.Duration) {
	rate := float64(processed) / elapsed.Seconds()
	fmt.Printf("%-22s %9d matches in %12v  (%.0f records/s)\n", name, matched, elapsed, rate)
}
