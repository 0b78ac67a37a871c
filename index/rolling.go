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
	"time"

	"github.com/jdanford/polars/dataset"
	"github.com/jdanford/polars/interval"
	"github.com/jdanford/polars/logger"
)

// RollingSpec groups rows by row-anchored time windows: one window per
// row, spanning [t+offset, t+offset+period] around the row's own index
// value t, with boundary inclusivity from Closed. Rows may belong to
// zero, one or many windows.
type RollingSpec struct {
	// IndexColumn is the chronological column the windows anchor on.
	IndexColumn string
	// Period is the window length; must be strictly positive.
	Period interval.Duration
	// Offset shifts the window start relative to the row's index
	// value. Nil defaults to -Period, so the window ends at the row.
	Offset *interval.Duration
	// Closed selects which window boundaries are inclusive.
	Closed interval.Closed
	// By optionally partitions the table before windowing; windows
	// never cross partitions.
	By []string
	// CheckSorted verifies the index column is non-decreasing within
	// each partition. Disabling the check on unsorted data yields
	// undefined membership.
	CheckSorted bool
	// TimeUnit scales numeric index values; zero means milliseconds.
	TimeUnit time.Duration
}

func (s RollingSpec) KeyColumns() []string {
	return append(append([]string{}, s.By...), s.IndexColumn)
}

func (s RollingSpec) Compute(tbl *dataset.Table) (GroupIndex, error) {
	if !s.Period.IsPositive() {
		return nil, &interval.InvalidDurationError{Input: s.Period.String(), Reason: "rolling period must be positive"}
	}
	offset := s.Period.Negate()
	if s.Offset != nil {
		offset = *s.Offset
	}

	col, err := tbl.Column(s.IndexColumn)
	if err != nil {
		return nil, err
	}
	times, err := timeValues(col, s.TimeUnit)
	if err != nil {
		return nil, err
	}
	parts, err := partitionRows(tbl, s.By)
	if err != nil {
		return nil, err
	}
	if s.CheckSorted {
		for _, part := range parts {
			if err := checkSorted(s.IndexColumn, times, part.rows); err != nil {
				return nil, err
			}
		}
	}

	out := make(GroupIndex, 0, tbl.Height())
	for _, part := range parts {
		out = append(out, s.sweep(col, times, part, offset)...)
	}
	logger.Debug("rolling index computed: %d windows over %d rows", len(out), tbl.Height())
	return out, nil
}

// sweep emits one entry per partition row. Window starts and ends are
// non-decreasing along sorted rows, so both boundaries advance with
// monotonic pointers: O(n) per partition after the sort check.
func (s RollingSpec) sweep(col dataset.Column, times []time.Time, part partition, offset interval.Duration) GroupIndex {
	rows := part.rows
	entries := make(GroupIndex, 0, len(rows))
	lo, hi := 0, 0
	for _, anchor := range rows {
		start := offset.Add(times[anchor])
		end := s.Period.Add(start)
		slot := interval.NewTimeSlot(start, end, s.Closed)

		for lo < len(rows) && beforeWindow(times[rows[lo]], slot) {
			lo++
		}
		if hi < lo {
			hi = lo
		}
		for hi < len(rows) && !afterWindow(times[rows[hi]], slot) {
			hi++
		}

		members := make([]int, hi-lo)
		copy(members, rows[lo:hi])
		key := makeKey(append(append([]interface{}{}, part.keyVals...), col.Values[anchor]))
		entries = append(entries, Entry{Key: key, Rows: members, Bounds: slot})
	}
	return entries
}

// beforeWindow reports whether t falls below the window's lower bound.
func beforeWindow(t time.Time, slot *interval.TimeSlot) bool {
	if slot.Closed.IncludesLower() {
		return t.Before(slot.Start)
	}
	return !t.After(slot.Start)
}

// afterWindow reports whether t falls above the window's upper bound.
func afterWindow(t time.Time, slot *interval.TimeSlot) bool {
	if slot.Closed.IncludesUpper() {
		return t.After(slot.End)
	}
	return !t.Before(slot.End)
}
