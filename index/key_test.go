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

package index

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdanford/polars/dataset"
)

func keyTable() *dataset.Table {
	return dataset.MustNew(
		dataset.NewColumn("g", "b", "a", "b", "a", "c"),
		dataset.NewColumn("v", 1, 2, 3, 4, 5),
	)
}

func TestKeyComputeMaintainOrder(t *testing.T) {
	idx, err := KeySpec{By: []string{"g"}, MaintainOrder: true}.Compute(keyTable())
	require.NoError(t, err)
	require.Len(t, idx, 3)

	assert.Equal(t, ScalarKey("b"), idx[0].Key)
	assert.Equal(t, []int{0, 2}, idx[0].Rows)
	assert.Equal(t, ScalarKey("a"), idx[1].Key)
	assert.Equal(t, []int{1, 3}, idx[1].Rows)
	assert.Equal(t, ScalarKey("c"), idx[2].Key)
	assert.Equal(t, []int{4}, idx[2].Rows)
}

func TestKeyComputePartitionsRows(t *testing.T) {
	tbl := keyTable()
	idx, err := KeySpec{By: []string{"g"}}.Compute(tbl)
	require.NoError(t, err)

	// Every row lands in exactly one group, rows ascending within each.
	seen := make(map[int]bool)
	for _, entry := range idx {
		for i, row := range entry.Rows {
			assert.False(t, seen[row], "row %d appears twice", row)
			seen[row] = true
			if i > 0 {
				assert.Greater(t, row, entry.Rows[i-1])
			}
		}
	}
	assert.Len(t, seen, tbl.Height())
}

func TestKeyComputeTupleKeys(t *testing.T) {
	tbl := dataset.MustNew(
		dataset.NewColumn("a", "x", "x", "y"),
		dataset.NewColumn("b", 1, 2, 1),
	)
	idx, err := KeySpec{By: []string{"a", "b"}, MaintainOrder: true}.Compute(tbl)
	require.NoError(t, err)
	require.Len(t, idx, 3)

	assert.False(t, idx[0].Key.IsScalar())
	assert.Equal(t, []interface{}{"x", 1}, idx[0].Key.Values())
	assert.True(t, TupleKey("x", 1).Equal(idx[0].Key))
}

func TestKeyComputeTypeDistinguishesValues(t *testing.T) {
	tbl := dataset.MustNew(dataset.NewColumn("g", 1, "1", 1))
	idx, err := KeySpec{By: []string{"g"}, MaintainOrder: true}.Compute(tbl)
	require.NoError(t, err)
	require.Len(t, idx, 2, "int 1 and string \"1\" are distinct keys")
	assert.Equal(t, []int{0, 2}, idx[0].Rows)
}

func TestKeyComputeExpression(t *testing.T) {
	tbl := dataset.MustNew(dataset.NewColumn("v", 1, 2, 3, 4))
	idx, err := KeySpec{By: []string{"v % 2"}, MaintainOrder: true}.Compute(tbl)
	require.NoError(t, err)
	require.Len(t, idx, 2)
	assert.Equal(t, []int{0, 2}, idx[0].Rows, "odd values group together")
	assert.Equal(t, []int{1, 3}, idx[1].Rows)
}

func TestKeyComputeErrors(t *testing.T) {
	tbl := keyTable()

	_, err := KeySpec{}.Compute(tbl)
	var empty *EmptyGroupingKeyError
	assert.True(t, errors.As(err, &empty))

	_, err = KeySpec{By: []string{"(("}}.Compute(tbl)
	var unknown *dataset.UnknownColumnError
	assert.True(t, errors.As(err, &unknown), "unparseable identifier reports as unknown column")
}

func TestGroupKeyAccessors(t *testing.T) {
	s := ScalarKey("a")
	assert.True(t, s.IsScalar())
	assert.Equal(t, "a", s.Value())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "a", s.String())

	tup := TupleKey("a", 1)
	assert.False(t, tup.IsScalar())
	assert.Equal(t, 2, tup.Len())
	assert.Equal(t, "(a, 1)", tup.String())

	// Scalar and single-component tuple are not equal.
	assert.False(t, s.Equal(TupleKey("a")))
}
