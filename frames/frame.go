// Package frames provides a small string-typed tabular structure for staging
// data, with pandas-style type coercion and fully-quoted CSV read/write.
//
// Cells are always strings; a [Schema] describes the logical type of each
// column and [Frame.Coerce] normalizes cell values to canonical renderings,
// blanking anything unparsable rather than failing the batch.
package frames

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/blast-analytics-marketing/blast-developer-tools/dates"
)

// PullDateColumn is stamped onto every coerced frame with the pull timestamp.
const PullDateColumn = "etl_pull_date"

// Frame is an ordered set of named string columns.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty Frame with the given column order.
func New(columns ...string) *Frame {
	return &Frame{Columns: slices.Clone(columns)}
}

// Append adds one row. The cell count must match the column count.
func (f *Frame) Append(row ...string) error {
	if len(row) != len(f.Columns) {
		return fmt.Errorf("frames: row has %d cells, frame has %d columns", len(row), len(f.Columns))
	}
	f.Rows = append(f.Rows, slices.Clone(row))
	return nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.Rows) }

// Col returns the index of the named column, or -1.
func (f *Frame) Col(name string) int {
	return slices.Index(f.Columns, name)
}

// Column returns a copy of the named column's cells, or nil if absent.
func (f *Frame) Column(name string) []string {
	idx := f.Col(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		out[i] = row[idx]
	}
	return out
}

// AddColumn appends a column filled with the given value on every row.
// An existing column of the same name is overwritten in place instead.
func (f *Frame) AddColumn(name, fill string) {
	if idx := f.Col(name); idx >= 0 {
		for i := range f.Rows {
			f.Rows[i][idx] = fill
		}
		return
	}
	f.Columns = append(f.Columns, name)
	for i := range f.Rows {
		f.Rows[i] = append(f.Rows[i], fill)
	}
}

// Coerce normalizes every cell to its schema type's canonical rendering and
// stamps the PullDateColumn with the current pull timestamp. Columns absent
// from the schema are left untouched; unparsable cells become empty, in the
// manner of pandas' errors="coerce".
func (f *Frame) Coerce(schema Schema) {
	for idx, name := range f.Columns {
		dt, ok := schema[name]
		if !ok || dt == String {
			continue
		}
		for i := range f.Rows {
			f.Rows[i][idx] = coerceValue(f.Rows[i][idx], dt)
		}
	}
	f.AddColumn(PullDateColumn, dates.PullTimestamp())
}

// Diff returns the sorted set difference a minus b: values present in a and
// absent from b.
func Diff[T cmp.Ordered](a, b []T) []T {
	drop := make(map[T]struct{}, len(b))
	for _, v := range b {
		drop[v] = struct{}{}
	}

	seen := make(map[T]struct{}, len(a))
	var out []T
	for _, v := range a {
		if _, ok := drop[v]; ok {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
