package linkage

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	linkerrors "github.com/arpanauts/linkage/errors"
)

// HashAlgorithmID identifies the hash used to route keys to partitions.
type HashAlgorithmID uint16

const (
	// HashXXH3 uses xxHash3-64. Default; fastest on typical identifier keys.
	HashXXH3 HashAlgorithmID = 0

	// HashXXHash64 uses xxHash64.
	HashXXHash64 HashAlgorithmID = 1

	// HashMurmur3 uses Murmur3-64.
	HashMurmur3 HashAlgorithmID = 2
)

// String returns the algorithm name.
func (a HashAlgorithmID) String() string {
	switch a {
	case HashXXH3:
		return "xxh3"
	case HashXXHash64:
		return "xxhash64"
	case HashMurmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// ParseHashAlgorithm maps an algorithm name to its ID.
func ParseHashAlgorithm(name string) (HashAlgorithmID, error) {
	switch name {
	case "xxh3":
		return HashXXH3, nil
	case "xxhash64":
		return HashXXHash64, nil
	case "murmur3":
		return HashMurmur3, nil
	}
	return 0, fmt.Errorf("%w: %q", linkerrors.ErrUnknownHashAlgorithm, name)
}

// sum64 hashes a key with the selected algorithm. Unknown IDs are rejected
// by HashPartitionMatch before any key is hashed.
func (a HashAlgorithmID) sum64(key string) uint64 {
	switch a {
	case HashXXHash64:
		return xxhash.Sum64String(key)
	case HashMurmur3:
		return murmur3.Sum64([]byte(key))
	default:
		return xxh3.HashString(key)
	}
}

// valid reports whether a is a known algorithm ID.
func (a HashAlgorithmID) valid() bool {
	return a == HashXXH3 || a == HashXXHash64 || a == HashMurmur3
}

// HashPartitionMatch buckets both collections into numPartitions partitions
// by hash(key) mod numPartitions and runs an independent index match per
// partition, concatenating the results in partition order.
//
// Both sides use the same hash and modulus, so records sharing a key always
// land in the same partition and no true match is lost to partitioning. The
// result equals a single MatchWithIndex over the full inputs (up to match
// order); partitioning exists to bound per-index working-set size and to
// make the work parallelizable. By default partitions run sequentially; use
// WithWorkers(n) to process them on n goroutines. Parallel runs produce
// byte-identical output because each partition writes only its own result
// slot.
//
// Records without a key (ok == false) are excluded, as in MatchWithIndex.
// Keys must be strings (or a string-derived type); pre-render compound or
// non-string keys into strings before partitioning.
//
// Returns ErrInvalidPartitionCount when numPartitions < 1,
// ErrInvalidWorkerCount when a negative worker count is configured, and
// ErrUnknownHashAlgorithm for an unknown WithHashAlgorithm ID.
func HashPartitionMatch[T any, K ~string](source, target []T, key KeyFunc[T, K], numPartitions int, opts ...MatchOption) ([]Match[T, T], error) {
	if numPartitions < 1 {
		return nil, fmt.Errorf("%w: %d", linkerrors.ErrInvalidPartitionCount, numPartitions)
	}
	cfg := defaultMatchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers < 0 {
		return nil, fmt.Errorf("%w: %d", linkerrors.ErrInvalidWorkerCount, cfg.workers)
	}
	if !cfg.algorithm.valid() {
		return nil, fmt.Errorf("%w: ID %d", linkerrors.ErrUnknownHashAlgorithm, cfg.algorithm)
	}

	sourceParts := partitionRecords(source, key, numPartitions, cfg.algorithm)
	targetParts := partitionRecords(target, key, numPartitions, cfg.algorithm)

	matchOpts := []MatchOption{WithMatchScore(cfg.score), WithMatchType(cfg.matchType)}
	matchPartition := func(p int) []Match[T, T] {
		if len(sourceParts[p]) == 0 || len(targetParts[p]) == 0 {
			return nil
		}
		idx := BuildIndex(targetParts[p], key)
		if cfg.allPairs {
			return MatchAllWithIndex(sourceParts[p], idx, key, matchOpts...)
		}
		return MatchWithIndex(sourceParts[p], idx, key, matchOpts...)
	}

	perPartition := make([][]Match[T, T], numPartitions)
	if cfg.workers > 1 {
		var g errgroup.Group
		g.SetLimit(cfg.workers)
		for p := 0; p < numPartitions; p++ {
			p := p
			g.Go(func() error {
				perPartition[p] = matchPartition(p)
				return nil
			})
		}
		// Workers never return errors; Wait only synchronizes completion.
		_ = g.Wait()
	} else {
		for p := 0; p < numPartitions; p++ {
			perPartition[p] = matchPartition(p)
		}
	}

	var total int
	for _, part := range perPartition {
		total += len(part)
	}
	matches := make([]Match[T, T], 0, total)
	for _, part := range perPartition {
		matches = append(matches, part...)
	}
	return matches, nil
}

// partitionRecords splits records into hash(key) mod numPartitions buckets,
// preserving input order within each bucket. Keyless records are dropped.
func partitionRecords[T any, K ~string](items []T, key KeyFunc[T, K], numPartitions int, algo HashAlgorithmID) [][]T {
	parts := make([][]T, numPartitions)
	for _, item := range items {
		k, ok := key(item)
		if !ok {
			continue
		}
		p := algo.sum64(string(k)) % uint64(numPartitions)
		parts[p] = append(parts[p], item)
	}
	return parts
}
