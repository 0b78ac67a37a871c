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

/*
Package polars groups rows of an in-memory table under three
strategies and exposes each group for iteration, aggregation or
per-group functions.

  - Group: discrete composite keys, optionally in first-appearance
    order.
  - Rolling: row-anchored sliding time windows around each row's own
    timestamp.
  - Dynamic: stride-anchored fixed-length time windows, optionally
    aligned to calendar boundaries.

All three produce the same shape, a group index of (key, row indices)
entries, and share three consumers: a restartable cursor yielding one
materialized sub-table per group, a one-shot aggregation dispatch, and
a per-group apply bridge.

Key grouping with aggregation:

	tbl := dataset.MustNew(
		dataset.NewColumn("g", "a", "a", "b"),
		dataset.NewColumn("v", 1, 2, 3),
	)
	out, err := polars.Group(tbl, []string{"g"}, polars.WithMaintainOrder()).
		Agg(aggregator.SumOf("v"))

Rolling windows over a time column:

	rolled, err := polars.Rolling(tbl, "ts", "2s", polars.WithRollingClosed(interval.ClosedRight))
	out, err := rolled.Agg(aggregator.MeanOf("v"))

Iterating groups:

	cursor, err := polars.Group(tbl, []string{"g"}).Groups()
	for {
		key, sub, ok := cursor.Next()
		if !ok {
			break
		}
		// one sub-table per group
	}

Durations accept either time.Duration values or literal strings such as
"90m", "1mo15d" or "-2s"; calendar units (months, years) stay calendar
units and are not flattened to a fixed number of hours.

The package is synchronous and single threaded. Tables are read-only
snapshots for the duration of a call; a grouper never mutates its
table, and a computed group index is discarded and recomputed rather
than patched when the table changes.
*/
package polars
