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

package polars

import (
	"fmt"

	"github.com/jdanford/polars/aggregator"
	"github.com/jdanford/polars/dataset"
	"github.com/jdanford/polars/index"
)

// GroupBy groups a table by one or more discrete key columns or
// expressions.
type GroupBy struct {
	tbl           *dataset.Table
	by            []string
	maintainOrder bool
}

// Group starts a key grouping over the given columns or expressions.
//
// Example:
//
//	g := polars.Group(tbl, []string{"region"}, polars.WithMaintainOrder())
//	out, err := g.Agg(aggregator.SumOf("sales"))
func Group(tbl *dataset.Table, by []string, opts ...GroupOption) *GroupBy {
	g := &GroupBy{tbl: tbl, by: by}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GroupBy) spec() index.KeySpec {
	return index.KeySpec{By: g.by, MaintainOrder: g.maintainOrder}
}

// Groups computes the group index and returns a cursor over the
// groups.
func (g *GroupBy) Groups() (*Cursor, error) {
	return newCursor(g.tbl, g.spec())
}

// Agg evaluates the aggregation expressions per group in one batched
// engine call. The result has one row per group: the key columns
// first, then one column per expression.
func (g *GroupBy) Agg(exprs ...aggregator.Expression) (*dataset.Table, error) {
	return aggregator.Evaluate(g.tbl, g.spec(), exprs)
}

// Apply invokes fn once per group, in group order, on the group's
// materialized sub-table, and concatenates the returned tables. A
// non-nil schema pins the expected output column names.
func (g *GroupBy) Apply(fn ApplyFunc, schema []string) (*dataset.Table, error) {
	return applyIndex(g.tbl, g.spec(), fn, schema)
}

// nonKeyColumns returns the table columns that are not grouping keys,
// in table order.
func (g *GroupBy) nonKeyColumns() []string {
	keys := make(map[string]struct{}, len(g.by))
	for _, b := range g.by {
		keys[b] = struct{}{}
	}
	var out []string
	for _, name := range g.tbl.Names() {
		if _, isKey := keys[name]; !isKey {
			out = append(out, name)
		}
	}
	return out
}

// aggEach applies the same aggregation to every non-key column.
func (g *GroupBy) aggEach(build func(string) aggregator.Expression) (*dataset.Table, error) {
	cols := g.nonKeyColumns()
	exprs := make([]aggregator.Expression, len(cols))
	for i, name := range cols {
		exprs[i] = build(name)
	}
	return g.Agg(exprs...)
}

// Count counts the rows of each group.
func (g *GroupBy) Count() (*dataset.Table, error) {
	return g.Agg(aggregator.CountAll())
}

// Sum reduces every non-key column to its per-group sum.
func (g *GroupBy) Sum() (*dataset.Table, error) {
	return g.aggEach(aggregator.SumOf)
}

// Mean reduces every non-key column to its per-group mean.
func (g *GroupBy) Mean() (*dataset.Table, error) {
	return g.aggEach(aggregator.MeanOf)
}

// Median reduces every non-key column to its per-group median.
func (g *GroupBy) Median() (*dataset.Table, error) {
	return g.aggEach(aggregator.MedianOf)
}

// Min reduces every non-key column to its per-group minimum.
func (g *GroupBy) Min() (*dataset.Table, error) {
	return g.aggEach(aggregator.MinOf)
}

// Max reduces every non-key column to its per-group maximum.
func (g *GroupBy) Max() (*dataset.Table, error) {
	return g.aggEach(aggregator.MaxOf)
}

// First takes the first value of every non-key column per group.
func (g *GroupBy) First() (*dataset.Table, error) {
	return g.aggEach(aggregator.FirstOf)
}

// Last takes the last value of every non-key column per group.
func (g *GroupBy) Last() (*dataset.Table, error) {
	return g.aggEach(aggregator.LastOf)
}

// NUnique counts the distinct values of every non-key column per
// group.
func (g *GroupBy) NUnique() (*dataset.Table, error) {
	return g.aggEach(aggregator.NUniqueOf)
}

// Quantile reduces every non-key column to its per-group q-quantile.
func (g *GroupBy) Quantile(q float64) (*dataset.Table, error) {
	return g.aggEach(func(name string) aggregator.Expression {
		return aggregator.QuantileOf(name, q)
	})
}

// All gathers every non-key column's group values into lists.
func (g *GroupBy) All() (*dataset.Table, error) {
	return g.aggEach(aggregator.CollectOf)
}

// Head returns the first n rows of each group, groups in group order.
func (g *GroupBy) Head(n int) (*dataset.Table, error) {
	return g.slice(n, func(rows []int) []int {
		if len(rows) > n {
			return rows[:n]
		}
		return rows
	})
}

// Tail returns the last n rows of each group, groups in group order.
func (g *GroupBy) Tail(n int) (*dataset.Table, error) {
	return g.slice(n, func(rows []int) []int {
		if len(rows) > n {
			return rows[len(rows)-n:]
		}
		return rows
	})
}

func (g *GroupBy) slice(n int, take func([]int) []int) (*dataset.Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("group slice length must be non-negative, got %d", n)
	}
	idx, err := g.spec().Compute(g.tbl)
	if err != nil {
		return nil, err
	}
	var rows []int
	for _, entry := range idx {
		rows = append(rows, take(entry.Rows)...)
	}
	return g.tbl.Select(rows)
}
