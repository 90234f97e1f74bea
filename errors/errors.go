// Package errors defines all exported error sentinels for the linkage library.
//
// This is the single source of truth for error values. Both the top-level
// linkage package and the table subpackage import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Matching errors
var (
	ErrInvalidPartitionCount = errors.New("linkage: partition count must be positive")
	ErrInvalidChunkSize      = errors.New("linkage: chunk size must be positive")
	ErrInvalidWorkerCount    = errors.New("linkage: worker count must not be negative")
	ErrUnknownHashAlgorithm  = errors.New("linkage: unknown hash algorithm")
)

// Estimator errors
var (
	ErrUnknownAlgorithm = errors.New("linkage: unknown algorithm")
)

// Table errors
var (
	ErrUnknownJoinKind     = errors.New("linkage: unknown join kind")
	ErrUnknownColumn       = errors.New("linkage: column not found")
	ErrDuplicateColumn     = errors.New("linkage: duplicate column name")
	ErrColumnCountMismatch = errors.New("linkage: row width does not match column count")
	ErrNoJoinColumns       = errors.New("linkage: at least one join column is required")
)
