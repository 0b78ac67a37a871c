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

// DynamicGroupBy groups a table by stride-anchored fixed-length
// windows over a chronological index column. Windows are generated on
// a fixed grid independent of any specific row and may overlap or
// leave gaps.
type DynamicGroupBy struct {
	tbl               *dataset.Table
	indexColumn       string
	every             interval.Duration
	period            interface{}
	offset            interface{}
	closed            interval.Closed
	by                []string
	startBy           index.StartBy
	truncate          bool
	includeBoundaries bool
	includeEmpty      bool
	checkSorted       bool
	timeUnit          time.Duration
}

// Dynamic starts a dynamic grouping over the index column with the
// given window stride. The stride accepts a time.Duration or a
// duration literal; calendar literals such as "1mo" stay
// calendar-aware, so monthly windows land on month boundaries of
// varying physical length.
func Dynamic(tbl *dataset.Table, indexColumn string, every interface{}, opts ...DynamicOption) (*DynamicGroupBy, error) {
	e, err := interval.Normalize(every)
	if err != nil {
		return nil, err
	}
	d := &DynamicGroupBy{
		tbl:         tbl,
		indexColumn: indexColumn,
		every:       e,
		closed:      interval.ClosedLeft,
		startBy:     index.StartByWindow,
		truncate:    true,
		checkSorted: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *DynamicGroupBy) spec() (index.DynamicSpec, error) {
	spec := index.DynamicSpec{
		IndexColumn:       d.indexColumn,
		Every:             d.every,
		Closed:            d.closed,
		By:                d.by,
		StartBy:           d.startBy,
		Truncate:          d.truncate,
		IncludeBoundaries: d.includeBoundaries,
		IncludeEmpty:      d.includeEmpty,
		CheckSorted:       d.checkSorted,
		TimeUnit:          d.timeUnit,
	}
	if d.period != nil {
		period, err := interval.Normalize(d.period)
		if err != nil {
			return index.DynamicSpec{}, err
		}
		spec.Period = &period
	}
	if d.offset != nil {
		offset, err := interval.Normalize(d.offset)
		if err != nil {
			return index.DynamicSpec{}, err
		}
		spec.Offset = &offset
	}
	return spec, nil
}

// Groups computes the group index and returns a cursor over the
// windows, in window start order (partition by partition when
// partitioning).
func (d *DynamicGroupBy) Groups() (*Cursor, error) {
	spec, err := d.spec()
	if err != nil {
		return nil, err
	}
	return newCursor(d.tbl, spec)
}

// Agg evaluates the aggregation expressions per window in one batched
// engine call. The result carries the partition columns, the window
// boundaries when requested, the index column, then one column per
// expression.
func (d *DynamicGroupBy) Agg(exprs ...aggregator.Expression) (*dataset.Table, error) {
	spec, err := d.spec()
	if err != nil {
		return nil, err
	}
	return aggregator.Evaluate(d.tbl, spec, exprs)
}

// Apply invokes fn once per window, in window order, on the window's
// materialized sub-table, and concatenates the returned tables.
func (d *DynamicGroupBy) Apply(fn ApplyFunc, schema []string) (*dataset.Table, error) {
	spec, err := d.spec()
	if err != nil {
		return nil, err
	}
	return applyIndex(d.tbl, spec, fn, schema)
}
