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
	"fmt"
	"time"

	"github.com/jdanford/polars/dataset"
	"github.com/jdanford/polars/interval"
	"github.com/jdanford/polars/logger"
	"github.com/jdanford/polars/utils/timex"
)

// Column names attached to the key tuple when window boundaries are
// requested.
const (
	LowerBoundaryColumn = "_lower_boundary"
	UpperBoundaryColumn = "_upper_boundary"
)

// StartBy fixes where the first dynamic window begins.
type StartBy int

const (
	// StartByWindow anchors at the data's minimum index value
	// truncated down onto the Every grid.
	StartByWindow StartBy = iota
	// StartByDatapoint anchors at the data's minimum index value.
	StartByDatapoint
	// StartByMonday through StartBySunday anchor at the nearest
	// earlier occurrence of that weekday.
	StartByMonday
	StartByTuesday
	StartByWednesday
	StartByThursday
	StartByFriday
	StartBySaturday
	StartBySunday
)

// ParseStartBy parses a start_by anchor name.
func ParseStartBy(s string) (StartBy, error) {
	switch s {
	case "window":
		return StartByWindow, nil
	case "datapoint":
		return StartByDatapoint, nil
	case "monday":
		return StartByMonday, nil
	case "tuesday":
		return StartByTuesday, nil
	case "wednesday":
		return StartByWednesday, nil
	case "thursday":
		return StartByThursday, nil
	case "friday":
		return StartByFriday, nil
	case "saturday":
		return StartBySaturday, nil
	case "sunday":
		return StartBySunday, nil
	default:
		return 0, fmt.Errorf("unknown start_by %q", s)
	}
}

func (sb StartBy) String() string {
	switch sb {
	case StartByWindow:
		return "window"
	case StartByDatapoint:
		return "datapoint"
	case StartByMonday:
		return "monday"
	case StartByTuesday:
		return "tuesday"
	case StartByWednesday:
		return "wednesday"
	case StartByThursday:
		return "thursday"
	case StartByFriday:
		return "friday"
	case StartBySaturday:
		return "saturday"
	case StartBySunday:
		return "sunday"
	default:
		return "unknown"
	}
}

// anchor derives the window origin from the partition's minimum index
// value.
func (sb StartBy) anchor(min time.Time, every interval.Duration) time.Time {
	switch sb {
	case StartByDatapoint:
		return min
	case StartByMonday, StartByTuesday, StartByWednesday, StartByThursday, StartByFriday, StartBySaturday, StartBySunday:
		weekday := time.Monday + time.Weekday(sb-StartByMonday)
		if weekday > time.Saturday {
			weekday = time.Sunday
		}
		return timex.PriorWeekday(min, weekday)
	default:
		return every.Truncate(min)
	}
}

// DynamicSpec groups rows by stride-anchored fixed-length windows:
// windows [anchor + k*every + offset, ... + period] for every k whose
// window intersects the partition's data range. Windows are independent
// of any specific row; they may overlap (period > every) or leave gaps
// (period < every).
type DynamicSpec struct {
	// IndexColumn is the chronological column the windows run over.
	IndexColumn string
	// Every is the window stride; must be strictly positive.
	Every interval.Duration
	// Period is the window length. Nil defaults to Every, giving
	// adjacent non-overlapping windows.
	Period *interval.Duration
	// Offset shifts every window start. Nil defaults to zero.
	Offset *interval.Duration
	// Closed selects which window boundaries are inclusive.
	Closed interval.Closed
	// By optionally partitions the table before windowing; the whole
	// windowing procedure runs independently per partition.
	By []string
	// StartBy fixes the anchor of the k=0 window.
	StartBy StartBy
	// Truncate labels each entry with the window's start boundary.
	// When false the label is the index value of the window's first
	// member row.
	Truncate bool
	// IncludeBoundaries attaches the window's start and end as extra
	// key fields (_lower_boundary, _upper_boundary).
	IncludeBoundaries bool
	// IncludeEmpty retains windows with no member rows. By default
	// empty windows are dropped.
	IncludeEmpty bool
	// CheckSorted verifies the index column is non-decreasing within
	// each partition.
	CheckSorted bool
	// TimeUnit scales numeric index values; zero means milliseconds.
	TimeUnit time.Duration
}

func (s DynamicSpec) KeyColumns() []string {
	cols := append([]string{}, s.By...)
	if s.IncludeBoundaries {
		cols = append(cols, LowerBoundaryColumn, UpperBoundaryColumn)
	}
	return append(cols, s.IndexColumn)
}

func (s DynamicSpec) Compute(tbl *dataset.Table) (GroupIndex, error) {
	if !s.Every.IsPositive() {
		return nil, &interval.InvalidDurationError{Input: s.Every.String(), Reason: "dynamic every must be positive"}
	}
	period := s.Every
	if s.Period != nil {
		period = *s.Period
	}
	if !period.IsPositive() {
		return nil, &interval.InvalidDurationError{Input: period.String(), Reason: "dynamic period must be positive"}
	}
	offset := interval.Duration{}
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

	out := make(GroupIndex, 0)
	for _, part := range parts {
		entries, err := s.window(col, times, part, period, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	logger.Debug("dynamic index computed: %d windows over %d rows", len(out), tbl.Height())
	return out, nil
}

// window generates the window entries for one partition, in window
// start order. Row membership advances with monotonic pointers over the
// sorted partition rows.
func (s DynamicSpec) window(col dataset.Column, times []time.Time, part partition, period, offset interval.Duration) (GroupIndex, error) {
	rows := part.rows
	if len(rows) == 0 {
		return nil, nil
	}
	minT, maxT := times[rows[0]], times[rows[0]]
	for _, r := range rows[1:] {
		if times[r].Before(minT) {
			minT = times[r]
		}
		if times[r].After(maxT) {
			maxT = times[r]
		}
	}
	anchor := s.StartBy.anchor(minT, s.Every)

	entries := make(GroupIndex, 0)
	lo, hi := 0, 0
	for k := int64(0); ; k++ {
		stride := interval.Duration{Months: s.Every.Months * k, Days: s.Every.Days * k, Nanos: s.Every.Nanos * k}
		start := offset.Add(stride.Add(anchor))
		end := period.Add(start)
		if start.After(maxT) {
			break
		}
		if end.Before(minT) {
			continue
		}
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
		if len(members) == 0 && !s.IncludeEmpty {
			continue
		}

		label := interface{}(start)
		if !s.Truncate && len(members) > 0 {
			label = col.Values[members[0]]
		}
		vals := append([]interface{}{}, part.keyVals...)
		if s.IncludeBoundaries {
			vals = append(vals, start, end)
		}
		vals = append(vals, label)
		entries = append(entries, Entry{Key: makeKey(vals), Rows: members, Bounds: slot})
	}
	return entries, nil
}
