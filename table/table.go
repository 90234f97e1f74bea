// Package table implements a small column-oriented join engine for
// identifier tables.
//
// A Table holds named string columns of equal length. The package provides
// a single-column hash join with inner/left/right/outer semantics (Join)
// and a multi-column equality join over a compound key (MultiColumnJoin).
// Both are hash based, O(rows(left) + rows(right)) regardless of table
// size; neither ever compares rows pairwise.
//
// Missing values are empty strings. A row whose join key is empty has no
// correlation point: it never matches the other side, though outer-style
// joins still carry it through unmatched.
package table

import (
	"fmt"

	linkerrors "github.com/arpanauts/linkage/errors"
)

// Table is an immutable-width, append-only collection of named string
// columns of equal length.
type Table struct {
	columns []string
	data    map[string][]string
	rows    int
}

// New creates an empty table with the given column names.
// Returns ErrDuplicateColumn when a name repeats.
func New(columns ...string) (*Table, error) {
	t := &Table{
		columns: append([]string(nil), columns...),
		data:    make(map[string][]string, len(columns)),
	}
	for _, name := range columns {
		if _, ok := t.data[name]; ok {
			return nil, fmt.Errorf("%w: %q", linkerrors.ErrDuplicateColumn, name)
		}
		t.data[name] = nil
	}
	return t, nil
}

// Append adds one row. values must match the column count and order of New.
// Returns ErrColumnCountMismatch otherwise.
func (t *Table) Append(values ...string) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("%w: got %d values for %d columns",
			linkerrors.ErrColumnCountMismatch, len(values), len(t.columns))
	}
	for i, name := range t.columns {
		t.data[name] = append(t.data[name], values[i])
	}
	t.rows++
	return nil
}

// Columns returns the column names in declaration order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.data[name]
	return ok
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// Column returns the cells of a column in row order.
// The returned slice is the table's own storage; callers must not modify it.
// Returns ErrUnknownColumn for an unknown name.
func (t *Table) Column(name string) ([]string, error) {
	cells, ok := t.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", linkerrors.ErrUnknownColumn, name)
	}
	return cells, nil
}

// Cell returns the value at (column, row). Returns ErrUnknownColumn for an
// unknown column name; row must be in [0, NumRows()).
func (t *Table) Cell(column string, row int) (string, error) {
	cells, ok := t.data[column]
	if !ok {
		return "", fmt.Errorf("%w: %q", linkerrors.ErrUnknownColumn, column)
	}
	return cells[row], nil
}

// column returns a column's cells for call sites that have already
// validated the name.
func (t *Table) column(name string) []string {
	return t.data[name]
}
