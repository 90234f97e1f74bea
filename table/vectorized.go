package table

import (
	"fmt"
	"strings"

	linkerrors "github.com/arpanauts/linkage/errors"
)

// compoundKeySep separates column values inside a compound join key. The
// ASCII unit separator does not occur in identifier data.
const compoundKeySep = "\x1f"

// MultiColumnJoin equality-joins two tables on several columns at once,
// treated as one compound key.
//
// The output keeps the left table's matching rows: every left column in
// declaration order, with the join columns suffixed "_source" (their values
// are the left side's), followed by the right table's non-join columns,
// suffixed "_target" where the name collides with a left column. Join
// semantics are inner; duplicate compound keys produce the full pairing of
// both sides' rows. A row with any empty join cell has an incomplete key
// and never matches.
//
// Returns ErrNoJoinColumns for an empty joinColumns list and
// ErrUnknownColumn when a join column is missing from either table. Hash
// based, O(rows(left) + rows(right) + rows(output)).
func MultiColumnJoin(left, right *Table, joinColumns []string) (*Table, error) {
	if len(joinColumns) == 0 {
		return nil, linkerrors.ErrNoJoinColumns
	}
	joinSet := make(map[string]struct{}, len(joinColumns))
	for _, name := range joinColumns {
		if !left.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q in left table", linkerrors.ErrUnknownColumn, name)
		}
		if !right.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q in right table", linkerrors.ErrUnknownColumn, name)
		}
		joinSet[name] = struct{}{}
	}

	// Output schema: left columns (join ones suffixed), then right
	// non-join columns.
	outNames := make([]string, 0, len(left.columns)+len(right.columns))
	for _, name := range left.columns {
		if _, ok := joinSet[name]; ok {
			name += sourceSuffix
		}
		outNames = append(outNames, name)
	}
	var rightCarry []string // right columns carried into the output
	for _, name := range right.columns {
		if _, ok := joinSet[name]; ok {
			continue
		}
		rightCarry = append(rightCarry, name)
		if left.HasColumn(name) {
			name += targetSuffix
		}
		outNames = append(outNames, name)
	}
	out, err := New(outNames...)
	if err != nil {
		return nil, err
	}

	// Build phase: index right rows by compound key.
	rightIndex := make(map[string][]int, right.rows)
	for row := 0; row < right.rows; row++ {
		key, ok := compoundKey(right, joinColumns, row)
		if !ok {
			continue
		}
		rightIndex[key] = append(rightIndex[key], row)
	}

	// Probe phase: scan left rows against the index.
	leftCells := columnSlices(left)
	for row := 0; row < left.rows; row++ {
		key, ok := compoundKey(left, joinColumns, row)
		if !ok {
			continue
		}
		for _, rightRow := range rightIndex[key] {
			values := make([]string, 0, len(outNames))
			for _, col := range leftCells {
				values = append(values, col[row])
			}
			for _, name := range rightCarry {
				values = append(values, right.column(name)[rightRow])
			}
			_ = out.Append(values...)
		}
	}
	return out, nil
}

// compoundKey concatenates a row's join cells. ok is false when any cell is
// empty: an incomplete compound key offers no correlation point.
func compoundKey(t *Table, joinColumns []string, row int) (string, bool) {
	parts := make([]string, len(joinColumns))
	for i, name := range joinColumns {
		v := t.column(name)[row]
		if v == "" {
			return "", false
		}
		parts[i] = v
	}
	return strings.Join(parts, compoundKeySep), true
}
