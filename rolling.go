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
	"time"

	"github.com/jdanford/polars/aggregator"
	"github.com/jdanford/polars/dataset"
	"github.com/jdanford/polars/index"
	"github.com/jdanford/polars/interval"
)

// RollingGroupBy groups a table by row-anchored sliding windows over a
// chronological index column: one window per row, ending at (by
// default) the row's own index value.
type RollingGroupBy struct {
	tbl         *dataset.Table
	indexColumn string
	period      interval.Duration
	offset      interface{}
	closed      interval.Closed
	by          []string
	checkSorted bool
	timeUnit    time.Duration
}

// Rolling starts a rolling grouping over the index column. The period
// accepts a time.Duration or a duration literal such as "90m" or
// "1mo"; it must be strictly positive. The index column must be
// non-decreasing (within each partition when partitioning) unless the
// sorted check is explicitly disabled.
func Rolling(tbl *dataset.Table, indexColumn string, period interface{}, opts ...RollingOption) (*RollingGroupBy, error) {
	p, err := interval.Normalize(period)
	if err != nil {
		return nil, err
	}
	r := &RollingGroupBy{
		tbl:         tbl,
		indexColumn: indexColumn,
		period:      p,
		closed:      interval.ClosedRight,
		checkSorted: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *RollingGroupBy) spec() (index.RollingSpec, error) {
	spec := index.RollingSpec{
		IndexColumn: r.indexColumn,
		Period:      r.period,
		Closed:      r.closed,
		By:          r.by,
		CheckSorted: r.checkSorted,
		TimeUnit:    r.timeUnit,
	}
	if r.offset != nil {
		offset, err := interval.Normalize(r.offset)
		if err != nil {
			return index.RollingSpec{}, err
		}
		spec.Offset = &offset
	}
	return spec, nil
}

// Groups computes the group index and returns a cursor over the
// windows, one per row.
func (r *RollingGroupBy) Groups() (*Cursor, error) {
	spec, err := r.spec()
	if err != nil {
		return nil, err
	}
	return newCursor(r.tbl, spec)
}

// Agg evaluates the aggregation expressions per window in one batched
// engine call. The result carries the partition columns, the index
// column, then one column per expression.
func (r *RollingGroupBy) Agg(exprs ...aggregator.Expression) (*dataset.Table, error) {
	spec, err := r.spec()
	if err != nil {
		return nil, err
	}
	return aggregator.Evaluate(r.tbl, spec, exprs)
}

// Apply invokes fn once per window, in window order, on the window's
// materialized sub-table, and concatenates the returned tables.
func (r *RollingGroupBy) Apply(fn ApplyFunc, schema []string) (*dataset.Table, error) {
	spec, err := r.spec()
	if err != nil {
		return nil, err
	}
	return applyIndex(r.tbl, spec, fn, schema)
}
