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
	"github.com/jdanford/polars/dataset"
	"github.com/jdanford/polars/index"
)

// Cursor walks a computed group index one group at a time, yielding
// the group key and a materialized sub-table per entry. Each call to
// Groups() on a grouper returns an independent cursor; a single cursor
// is not safe for concurrent advancement.
type Cursor struct {
	tbl  *dataset.Table
	spec index.Spec
	idx  index.GroupIndex
	pos  int
	err  error
}

func newCursor(tbl *dataset.Table, spec index.Spec) (*Cursor, error) {
	idx, err := spec.Compute(tbl)
	if err != nil {
		return nil, err
	}
	return &Cursor{tbl: tbl, spec: spec, idx: idx}, nil
}

// Next returns the next group's key and its rows as a new table, built
// by selecting exactly the entry's row indices in their stored order.
// It returns ok=false once the cursor is exhausted or a selection
// failed; Err distinguishes the two.
func (c *Cursor) Next() (index.GroupKey, *dataset.Table, bool) {
	if c.err != nil || c.pos >= len(c.idx) {
		return index.GroupKey{}, nil, false
	}
	entry := c.idx[c.pos]
	sub, err := c.tbl.Select(entry.Rows)
	if err != nil {
		c.err = err
		return index.GroupKey{}, nil, false
	}
	c.pos++
	return entry.Key, sub, true
}

// Reset recomputes the group index against the current table and
// rewinds the cursor. Callable any number of times; after a reset on
// an unchanged table the cursor reproduces its previous sequence.
func (c *Cursor) Reset() error {
	idx, err := c.spec.Compute(c.tbl)
	if err != nil {
		return err
	}
	c.idx = idx
	c.pos = 0
	c.err = nil
	return nil
}

// Len returns the number of groups.
func (c *Cursor) Len() int {
	return len(c.idx)
}

// Err reports a selection failure encountered by Next.
func (c *Cursor) Err() error {
	return c.err
}
