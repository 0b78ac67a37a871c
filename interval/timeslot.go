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

package interval

import (
	"fmt"
	"time"
)

// Closed selects which boundaries of a window are inclusive.
type Closed int

const (
	// ClosedLeft includes the lower boundary only.
	ClosedLeft Closed = iota
	// ClosedRight includes the upper boundary only.
	ClosedRight
	// ClosedBoth includes both boundaries.
	ClosedBoth
	// ClosedNone includes neither boundary.
	ClosedNone
)

// ParseClosed parses a closed-interval policy name.
func ParseClosed(s string) (Closed, error) {
	switch s {
	case "left":
		return ClosedLeft, nil
	case "right":
		return ClosedRight, nil
	case "both":
		return ClosedBoth, nil
	case "none":
		return ClosedNone, nil
	default:
		return 0, fmt.Errorf("unknown closed policy %q, expected left, right, both or none", s)
	}
}

// String returns the policy name.
func (c Closed) String() string {
	switch c {
	case ClosedLeft:
		return "left"
	case ClosedRight:
		return "right"
	case ClosedBoth:
		return "both"
	case ClosedNone:
		return "none"
	default:
		return "unknown"
	}
}

// IncludesLower reports whether the lower boundary is inclusive.
func (c Closed) IncludesLower() bool {
	return c == ClosedLeft || c == ClosedBoth
}

// IncludesUpper reports whether the upper boundary is inclusive.
func (c Closed) IncludesUpper() bool {
	return c == ClosedRight || c == ClosedBoth
}

// TimeSlot is one window interval with its boundary policy.
type TimeSlot struct {
	Start  time.Time
	End    time.Time
	Closed Closed
}

func NewTimeSlot(start, end time.Time, closed Closed) *TimeSlot {
	return &TimeSlot{
		Start:  start,
		End:    end,
		Closed: closed,
	}
}

// Contains checks if given time is within the slot under its boundary
// policy.
func (ts *TimeSlot) Contains(t time.Time) bool {
	switch {
	case t.After(ts.Start) && t.Before(ts.End):
		return true
	case t.Equal(ts.Start):
		return ts.Closed.IncludesLower() || (ts.Closed.IncludesUpper() && ts.End.Equal(ts.Start))
	case t.Equal(ts.End):
		return ts.Closed.IncludesUpper()
	default:
		return false
	}
}

func (ts *TimeSlot) WindowStart() int64 {
	if ts == nil {
		return 0
	}
	return ts.Start.UnixNano()
}

func (ts *TimeSlot) WindowEnd() int64 {
	if ts == nil {
		return 0
	}
	return ts.End.UnixNano()
}
