/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package dataset holds the in-memory table model shared by all
// grouping operations: ordered named columns of equal length, addressed
// by row index. Tables are treated as immutable snapshots; every
// operation returns a new Table and never mutates its input.
package dataset

import (
	"fmt"
	"reflect"
)

// Column is a named ordered sequence of scalar values.
type Column struct {
	Name   string
	Values []interface{}
}

// NewColumn creates a column from a name and its values.
func NewColumn(name string, values ...interface{}) Column {
	return Column{Name: name, Values: values}
}

// Table is an ordered sequence of equally sized named columns.
// Row order is significant: row indices are the unit of addressing for
// every grouping operation.
type Table struct {
	cols  []Column
	index map[string]int
	nrows int
}

// New creates a table from the given columns. All columns must have the
// same length and distinct names.
func New(cols ...Column) (*Table, error) {
	t := &Table{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, col := range cols {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if _, exists := t.index[col.Name]; exists {
			return nil, fmt.Errorf("duplicate column name %q", col.Name)
		}
		if i == 0 {
			t.nrows = len(col.Values)
		} else if len(col.Values) != t.nrows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, len(col.Values), t.nrows)
		}
		t.index[col.Name] = len(t.cols)
		t.cols = append(t.cols, col)
	}
	return t, nil
}

// MustNew is like New but panics on error. Intended for literals in
// examples and tests.
func MustNew(cols ...Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// Height returns the number of rows.
func (t *Table) Height() int {
	return t.nrows
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.cols)
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, &UnknownColumnError{Name: name}
	}
	return t.cols[i], nil
}

// Columns returns the columns in table order. The returned slice is a
// copy; the value slices are shared.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// Row returns row i as a name-to-value map, usable as an expression
// environment.
func (t *Table) Row(i int) map[string]interface{} {
	row := make(map[string]interface{}, len(t.cols))
	for _, col := range t.cols {
		row[col.Name] = col.Values[i]
	}
	return row
}

// Select builds a new table containing exactly the given rows, in the
// given order. Row indices may repeat; each out-of-range index is an
// error.
func (t *Table) Select(rows []int) (*Table, error) {
	cols := make([]Column, len(t.cols))
	for ci, col := range t.cols {
		values := make([]interface{}, len(rows))
		for ri, r := range rows {
			if r < 0 || r >= t.nrows {
				return nil, fmt.Errorf("row index %d out of range [0, %d)", r, t.nrows)
			}
			values[ri] = col.Values[r]
		}
		cols[ci] = Column{Name: col.Name, Values: values}
	}
	return New(cols...)
}

// WithColumn returns a new table with the given column appended, or
// replaced if a column with the same name exists.
func (t *Table) WithColumn(col Column) (*Table, error) {
	if len(col.Values) != t.nrows && len(t.cols) > 0 {
		return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, len(col.Values), t.nrows)
	}
	cols := t.Columns()
	if i, ok := t.index[col.Name]; ok {
		cols[i] = col
		return New(cols...)
	}
	return New(append(cols, col)...)
}

// Schema returns the ordered column names, the unit of schema
// comparison for Concat and the apply bridge.
func (t *Table) Schema() []string {
	return t.Names()
}

// SameSchema reports whether two tables have identical column names in
// identical order.
func SameSchema(a, b *Table) bool {
	if a.Width() != b.Width() {
		return false
	}
	for i := range a.cols {
		if a.cols[i].Name != b.cols[i].Name {
			return false
		}
	}
	return true
}

// Concat vertically concatenates the given tables in order. All tables
// must share an identical schema.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return New()
	}
	first := tables[0]
	total := 0
	for i, tbl := range tables {
		if !SameSchema(first, tbl) {
			return nil, &SchemaMismatchError{
				Expected: first.Schema(),
				Got:      tbl.Schema(),
				Position: i,
			}
		}
		total += tbl.Height()
	}
	cols := make([]Column, first.Width())
	for ci, col := range first.cols {
		values := make([]interface{}, 0, total)
		for _, tbl := range tables {
			values = append(values, tbl.cols[ci].Values...)
		}
		cols[ci] = Column{Name: col.Name, Values: values}
	}
	return New(cols...)
}

// Equal reports whether two tables have the same schema and the same
// values in the same row order. Values compare with reflect.DeepEqual.
func (t *Table) Equal(other *Table) bool {
	if other == nil || !SameSchema(t, other) || t.nrows != other.nrows {
		return false
	}
	for ci := range t.cols {
		for ri := 0; ri < t.nrows; ri++ {
			if !reflect.DeepEqual(t.cols[ci].Values[ri], other.cols[ci].Values[ri]) {
				return false
			}
		}
	}
	return true
}
