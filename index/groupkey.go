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

// Package index computes group indexes: ordered mappings from group key
// to member row indices, under three strategies. KeySpec groups by
// discrete composite keys, RollingSpec by row-anchored time windows,
// DynamicSpec by stride-anchored time windows. A computed GroupIndex is
// a snapshot; it is never mutated and must be recomputed when the
// source table changes.
package index

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jdanford/polars/dataset"
	"github.com/jdanford/polars/interval"
)

// GroupKey identifies one group. Whether the key is a bare scalar or a
// fixed-arity tuple is decided when the grouping spec is constructed,
// not inferred from the value shape.
type GroupKey struct {
	values []interface{}
	scalar bool
}

// ScalarKey creates a single-value key.
func ScalarKey(v interface{}) GroupKey {
	return GroupKey{values: []interface{}{v}, scalar: true}
}

// TupleKey creates a fixed-arity tuple key.
func TupleKey(values ...interface{}) GroupKey {
	return GroupKey{values: values}
}

// IsScalar reports whether the key is a bare scalar.
func (k GroupKey) IsScalar() bool {
	return k.scalar
}

// Value returns the scalar value. For tuple keys it returns the first
// component.
func (k GroupKey) Value() interface{} {
	if len(k.values) == 0 {
		return nil
	}
	return k.values[0]
}

// Values returns the key components in order.
func (k GroupKey) Values() []interface{} {
	return k.values
}

// Len returns the number of key components.
func (k GroupKey) Len() int {
	return len(k.values)
}

// Equal compares keys by value, not identity.
func (k GroupKey) Equal(other GroupKey) bool {
	return k.scalar == other.scalar && reflect.DeepEqual(k.values, other.values)
}

func (k GroupKey) String() string {
	if k.scalar {
		return fmt.Sprintf("%v", k.Value())
	}
	parts := make([]string, len(k.values))
	for i, v := range k.values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Entry is one group: its key and the member row indices. For windowed
// grouping, Bounds carries the window interval.
type Entry struct {
	Key    GroupKey
	Rows   []int
	Bounds *interval.TimeSlot
}

// GroupIndex is the ordered sequence of group entries.
type GroupIndex []Entry

// Spec computes a GroupIndex from a table snapshot. Implementations are
// the three grouping strategies; selection happens by constructing the
// matching spec value.
type Spec interface {
	// Compute derives the group index. It either returns a complete
	// index or an error, never a partial one.
	Compute(tbl *dataset.Table) (GroupIndex, error)
	// KeyColumns names the key components, aligned with the values of
	// every entry's GroupKey.
	KeyColumns() []string
}

// encodeValues builds a hashable composite key string from the value
// tuple. The type prefix keeps 1 and "1" in separate groups.
func encodeValues(vals []interface{}) string {
	var b strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&b, "%T:%v|", v, v)
	}
	return b.String()
}

// makeKey builds a scalar key for single-component groupings and a
// tuple key otherwise.
func makeKey(vals []interface{}) GroupKey {
	if len(vals) == 1 {
		return ScalarKey(vals[0])
	}
	return TupleKey(vals...)
}
