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
	"github.com/jdanford/polars/dataset"
	"github.com/jdanford/polars/expr"
)

// ResolveValues evaluates one grouping identifier into a value column
// aligned row-for-row with the table. A plain column name reads the
// column directly; anything else is compiled as a row expression.
func ResolveValues(tbl *dataset.Table, identifier string) ([]interface{}, error) {
	if col, err := tbl.Column(identifier); err == nil {
		return col.Values, nil
	}
	program, err := expr.Compile(identifier)
	if err != nil {
		return nil, &dataset.UnknownColumnError{Name: identifier}
	}
	values := make([]interface{}, tbl.Height())
	for i := 0; i < tbl.Height(); i++ {
		v, err := program.Evaluate(tbl.Row(i))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// resolveBy evaluates every grouping identifier, one value column per
// identifier.
func resolveBy(tbl *dataset.Table, by []string) ([][]interface{}, error) {
	cols := make([][]interface{}, len(by))
	for i, identifier := range by {
		values, err := ResolveValues(tbl, identifier)
		if err != nil {
			return nil, err
		}
		cols[i] = values
	}
	return cols, nil
}

// partition is one secondary-key slice of the table: the shared key
// values and the member rows in ascending table order.
type partition struct {
	keyVals []interface{}
	rows    []int
}

// partitionRows splits the table rows by the secondary partition
// columns, in first-appearance order. With no partition columns the
// whole table is a single partition.
func partitionRows(tbl *dataset.Table, by []string) ([]partition, error) {
	if len(by) == 0 {
		rows := make([]int, tbl.Height())
		for i := range rows {
			rows[i] = i
		}
		return []partition{{rows: rows}}, nil
	}
	cols, err := resolveBy(tbl, by)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]int)
	parts := make([]partition, 0)
	for i := 0; i < tbl.Height(); i++ {
		vals := make([]interface{}, len(cols))
		for c := range cols {
			vals[c] = cols[c][i]
		}
		k := encodeValues(vals)
		pos, ok := seen[k]
		if !ok {
			pos = len(parts)
			seen[k] = pos
			parts = append(parts, partition{keyVals: vals})
		}
		parts[pos].rows = append(parts[pos].rows, i)
	}
	return parts, nil
}
