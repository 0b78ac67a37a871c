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
	"github.com/jdanford/polars/logger"
)

// KeySpec groups rows by one or more discrete key columns or
// expressions. Every row lands in exactly one entry; row indices within
// an entry stay in ascending table order.
type KeySpec struct {
	// By lists the grouping columns or expressions, in key order.
	By []string
	// MaintainOrder emits entries in the order each key first appears
	// in the table. Without it the entry order follows map iteration
	// and is not stable across runs.
	MaintainOrder bool
}

func (s KeySpec) KeyColumns() []string {
	return s.By
}

func (s KeySpec) Compute(tbl *dataset.Table) (GroupIndex, error) {
	if len(s.By) == 0 {
		return nil, &EmptyGroupingKeyError{}
	}
	cols, err := resolveBy(tbl, s.By)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int)
	entries := make(GroupIndex, 0)
	for i := 0; i < tbl.Height(); i++ {
		vals := make([]interface{}, len(cols))
		for c := range cols {
			vals[c] = cols[c][i]
		}
		k := encodeValues(vals)
		pos, ok := seen[k]
		if !ok {
			pos = len(entries)
			seen[k] = pos
			entries = append(entries, Entry{Key: makeKey(vals)})
		}
		entries[pos].Rows = append(entries[pos].Rows, i)
	}
	logger.Debug("key index computed: %d groups over %d rows", len(entries), tbl.Height())

	if s.MaintainOrder {
		return entries, nil
	}
	// Unordered mode: map iteration order, deliberately unstable.
	out := make(GroupIndex, 0, len(entries))
	for _, pos := range seen {
		out = append(out, entries[pos])
	}
	return out, nil
}
