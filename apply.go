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

	"github.com/jdanford/polars/dataset"
	"github.com/jdanford/polars/index"
)

// ApplyFunc transforms one group's sub-table into a result table.
type ApplyFunc func(*dataset.Table) (*dataset.Table, error)

// applyIndex materializes every group in entry order, invokes fn on
// each, and concatenates the results. This path forces full
// materialization of every group; prefer Agg whenever the per-group
// logic fits an aggregation expression.
//
// A non-nil schema pins the expected column names of every returned
// table; otherwise the first returned table sets them. A mismatch or
// an fn error aborts the whole operation immediately.
func applyIndex(tbl *dataset.Table, spec index.Spec, fn ApplyFunc, schema []string) (*dataset.Table, error) {
	idx, err := spec.Compute(tbl)
	if err != nil {
		return nil, err
	}
	results := make([]*dataset.Table, 0, len(idx))
	for i, entry := range idx {
		sub, err := tbl.Select(entry.Rows)
		if err != nil {
			return nil, err
		}
		out, err := fn(sub)
		if err != nil {
			return nil, fmt.Errorf("apply on group %s: %w", entry.Key, err)
		}
		if schema != nil && !sameNames(schema, out.Schema()) {
			return nil, &dataset.SchemaMismatchError{Expected: schema, Got: out.Schema(), Position: i}
		}
		results = append(results, out)
	}
	if len(results) == 0 && schema != nil {
		cols := make([]dataset.Column, len(schema))
		for i, name := range schema {
			cols[i] = dataset.Column{Name: name}
		}
		return dataset.New(cols...)
	}
	return dataset.Concat(results...)
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
