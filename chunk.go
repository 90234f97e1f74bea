package linkage

import (
	"fmt"

	linkerrors "github.com/arpanauts/linkage/errors"
)

// ChunkedProcess applies fn to items in contiguous chunks of at most
// chunkSize elements and concatenates the per-chunk results in order. The
// final chunk may be shorter.
//
// This bounds peak memory for oversized collections without changing the
// logical result: for any stateless, order-preserving fn the output equals
// fn(items) regardless of chunk size. Chunks are subslices of items, not
// copies; fn must not retain or mutate them.
//
// Returns ErrInvalidChunkSize when chunkSize < 1.
func ChunkedProcess[T, R any](items []T, fn func([]T) []R, chunkSize int) ([]R, error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("%w: %d", linkerrors.ErrInvalidChunkSize, chunkSize)
	}
	var results []R
	for start := 0; start < len(items); start += chunkSize {
		end := min(start+chunkSize, len(items))
		results = append(results, fn(items[start:end])...)
	}
	return results, nil
}
