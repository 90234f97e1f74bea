package table

import (
	"fmt"

	linkerrors "github.com/arpanauts/linkage/errors"
)

// Kind selects the relational semantics of Join.
type Kind uint8

const (
	// Inner keeps only key-matched row pairs.
	Inner Kind = iota

	// Left keeps every left row, matched or not.
	Left

	// Right keeps every right row, matched or not.
	Right

	// Outer keeps every row of both sides.
	Outer
)

// String returns the join kind name.
func (k Kind) String() string {
	switch k {
	case Inner:
		return "inner"
	case Left:
		return "left"
	case Right:
		return "right"
	case Outer:
		return "outer"
	default:
		return "unknown"
	}
}

// Suffixes appended to colliding column names in join output. The key
// columns of a self-named join collide too, so no column is ever silently
// dropped.
const (
	sourceSuffix = "_source"
	targetSuffix = "_target"
)

// Join hash-joins two tables on one key column per side.
//
// The output carries every left column followed by every right column. A
// name present on both sides is suffixed "_source" on the left copy and
// "_target" on the right copy. Cells of an unmatched side are empty
// strings. Rows whose key cell is empty never match; Left/Right/Outer kinds
// still carry them through as unmatched rows of their own side.
//
// Row order: matched and unmatched left rows in left-row order (Inner,
// Left, Outer), with unmatched right rows appended in right-row order
// (Outer). Right joins are ordered by right row. Duplicate keys produce the
// full pairing of both sides' rows for that key.
//
// Returns ErrUnknownColumn when a key column is missing and
// ErrUnknownJoinKind for an out-of-range kind. Complexity is
// O(rows(left) + rows(right) + rows(output)).
func Join(left, right *Table, leftKey, rightKey string, kind Kind) (*Table, error) {
	if kind > Outer {
		return nil, fmt.Errorf("%w: Kind(%d)", linkerrors.ErrUnknownJoinKind, kind)
	}
	leftKeys, err := left.Column(leftKey)
	if err != nil {
		return nil, err
	}
	rightKeys, err := right.Column(rightKey)
	if err != nil {
		return nil, err
	}

	out, err := New(joinColumnNames(left, right)...)
	if err != nil {
		return nil, err
	}
	leftCells := columnSlices(left)
	rightCells := columnSlices(right)
	emit := func(leftRow, rightRow int) {
		row := make([]string, 0, len(leftCells)+len(rightCells))
		for _, col := range leftCells {
			if leftRow < 0 {
				row = append(row, "")
			} else {
				row = append(row, col[leftRow])
			}
		}
		for _, col := range rightCells {
			if rightRow < 0 {
				row = append(row, "")
			} else {
				row = append(row, col[rightRow])
			}
		}
		// Append cannot fail: row width equals the output column count.
		_ = out.Append(row...)
	}

	switch kind {
	case Right:
		leftIndex := buildRowIndex(leftKeys)
		for j, key := range rightKeys {
			matches := leftIndex[key]
			if key == "" || len(matches) == 0 {
				emit(-1, j)
				continue
			}
			for _, i := range matches {
				emit(i, j)
			}
		}
	default:
		rightIndex := buildRowIndex(rightKeys)
		rightMatched := make([]bool, len(rightKeys))
		for i, key := range leftKeys {
			matches := rightIndex[key]
			if key == "" || len(matches) == 0 {
				if kind == Left || kind == Outer {
					emit(i, -1)
				}
				continue
			}
			for _, j := range matches {
				rightMatched[j] = true
				emit(i, j)
			}
		}
		if kind == Outer {
			for j := range rightKeys {
				if !rightMatched[j] {
					emit(-1, j)
				}
			}
		}
	}
	return out, nil
}

// joinColumnNames builds the output schema: left columns then right
// columns, with collisions suffixed per side.
func joinColumnNames(left, right *Table) []string {
	names := make([]string, 0, len(left.columns)+len(right.columns))
	for _, name := range left.columns {
		if right.HasColumn(name) {
			name += sourceSuffix
		}
		names = append(names, name)
	}
	for _, name := range right.columns {
		if left.HasColumn(name) {
			name += targetSuffix
		}
		names = append(names, name)
	}
	return names
}

// buildRowIndex maps each non-empty key cell to the rows holding it, in row
// order. Empty cells represent missing keys and are never indexed.
func buildRowIndex(keys []string) map[string][]int {
	index := make(map[string][]int, len(keys))
	for row, key := range keys {
		if key == "" {
			continue
		}
		index[key] = append(index[key], row)
	}
	return index
}

// columnSlices returns the table's column storage in declaration order.
func columnSlices(t *Table) [][]string {
	cols := make([][]string, len(t.columns))
	for i, name := range t.columns {
		cols[i] = t.data[name]
	}
	return cols
}
