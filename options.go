package linkage

// MatchOption is a functional option for configuring matching calls.
type MatchOption func(*matchConfig)

type matchConfig struct {
	score     float64
	matchType string
	workers   int // 0 or 1 means sequential
	algorithm HashAlgorithmID
	allPairs  bool // pair each source record with every bucket member
}

func defaultMatchConfig() *matchConfig {
	return &matchConfig{
		score:     DefaultScore,
		matchType: DefaultType,
		workers:   0, // Default to single-threaded; use WithWorkers(n) to parallelize
		algorithm: HashXXH3,
	}
}

// WithMatchScore sets the Score field stamped on emitted Matches.
func WithMatchScore(score float64) MatchOption {
	return func(c *matchConfig) {
		c.score = score
	}
}

// WithMatchType sets the Type tag stamped on emitted Matches.
func WithMatchType(matchType string) MatchOption {
	return func(c *matchConfig) {
		c.matchType = matchType
	}
}

// WithWorkers sets the number of parallel workers for HashPartitionMatch.
// Each worker processes whole partitions; output order is unchanged.
func WithWorkers(n int) MatchOption {
	return func(c *matchConfig) {
		c.workers = n
	}
}

// WithHashAlgorithm selects the partition hash for HashPartitionMatch.
// Default is HashXXH3.
func WithHashAlgorithm(algo HashAlgorithmID) MatchOption {
	return func(c *matchConfig) {
		c.algorithm = algo
	}
}

// WithAllPairs makes HashPartitionMatch pair each source record with every
// target record sharing its key instead of the first one only, matching the
// MatchAllWithIndex behavior per partition.
func WithAllPairs() MatchOption {
	return func(c *matchConfig) {
		c.allPairs = true
	}
}
