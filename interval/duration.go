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

// Package interval models calendar-aware durations and window
// intervals. A Duration keeps calendar components (months) apart from
// fixed-length components (days, nanoseconds) because a month has no
// fixed physical length; adding "1mo" to a timestamp is not the same
// operation as adding 30 days.
package interval

import (
	"fmt"
	"strings"
	"time"

	"github.com/jdanford/polars/utils/timex"
)

// Duration is a signed calendar-aware interval.
type Duration struct {
	Months int64
	Days   int64
	Nanos  int64
}

// InvalidDurationError reports a duration literal or value that cannot
// be normalized.
type InvalidDurationError struct {
	Input  string
	Reason string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration %q: %s", e.Input, e.Reason)
}

// unitFactors maps literal units onto duration components.
var unitFactors = map[string]Duration{
	"ns": {Nanos: 1},
	"us": {Nanos: int64(time.Microsecond)},
	"ms": {Nanos: int64(time.Millisecond)},
	"s":  {Nanos: int64(time.Second)},
	"m":  {Nanos: int64(time.Minute)},
	"h":  {Nanos: int64(time.Hour)},
	"d":  {Days: 1},
	"w":  {Days: 7},
	"mo": {Months: 1},
	"y":  {Months: 12},
}

// Parse parses a duration literal: one or more <digits><unit> tokens,
// units ns, us, ms, s, m, h, d, w, mo, y, e.g. "1mo15d" or "2h30m".
// A single leading "-" negates the whole literal.
func Parse(s string) (Duration, error) {
	input := s
	var d Duration
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	if s == "" {
		return Duration{}, &InvalidDurationError{Input: input, Reason: "empty literal"}
	}
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i {
			return Duration{}, &InvalidDurationError{Input: input, Reason: fmt.Sprintf("expected digits at position %d", i)}
		}
		var n int64
		for _, c := range s[start:i] {
			n = n*10 + int64(c-'0')
		}
		unitStart := i
		for i < len(s) && (s[i] < '0' || s[i] > '9') {
			i++
		}
		unit := s[unitStart:i]
		factor, ok := unitFactors[unit]
		if !ok {
			return Duration{}, &InvalidDurationError{Input: input, Reason: fmt.Sprintf("unknown unit %q", unit)}
		}
		d.Months += n * factor.Months
		d.Days += n * factor.Days
		d.Nanos += n * factor.Nanos
	}
	if negative {
		d = d.Negate()
	}
	return d, nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// examples and tests.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Normalize accepts a Duration, a time.Duration or a duration literal
// string and returns the canonical Duration.
func Normalize(v interface{}) (Duration, error) {
	switch x := v.(type) {
	case Duration:
		return x, nil
	case *Duration:
		if x == nil {
			return Duration{}, &InvalidDurationError{Input: "<nil>", Reason: "nil duration"}
		}
		return *x, nil
	case time.Duration:
		return Duration{Nanos: int64(x)}, nil
	case string:
		return Parse(x)
	default:
		return Duration{}, &InvalidDurationError{Input: fmt.Sprintf("%v", v), Reason: fmt.Sprintf("unsupported type %T", v)}
	}
}

// Add shifts t by the duration: calendar months first, then days, then
// fixed nanoseconds.
func (d Duration) Add(t time.Time) time.Time {
	if d.Months != 0 || d.Days != 0 {
		t = t.AddDate(0, int(d.Months), int(d.Days))
	}
	if d.Nanos != 0 {
		t = t.Add(time.Duration(d.Nanos))
	}
	return t
}

// Negate returns the duration with every component negated.
func (d Duration) Negate() Duration {
	return Duration{Months: -d.Months, Days: -d.Days, Nanos: -d.Nanos}
}

// IsZero reports whether every component is zero.
func (d Duration) IsZero() bool {
	return d.Months == 0 && d.Days == 0 && d.Nanos == 0
}

// IsPositive reports whether the duration moves strictly forward from
// any instant: no component negative and at least one positive.
func (d Duration) IsPositive() bool {
	return d.Months >= 0 && d.Days >= 0 && d.Nanos >= 0 && !d.IsZero()
}

// Fixed returns the duration as a fixed physical length. The second
// return is false for calendar durations (non-zero months), which have
// no fixed length.
func (d Duration) Fixed() (time.Duration, bool) {
	if d.Months != 0 {
		return 0, false
	}
	return time.Duration(d.Days)*24*time.Hour + time.Duration(d.Nanos), true
}

// Truncate aligns t down onto the grid spanned by the duration: the
// month grid for calendar durations, the ISO-Monday week grid for whole
// weeks, the epoch-anchored grid otherwise.
func (d Duration) Truncate(t time.Time) time.Time {
	if d.Months > 0 {
		return timex.AlignToMonths(t, int(d.Months))
	}
	if d.Nanos == 0 && d.Days > 0 && d.Days%7 == 0 {
		return timex.AlignToWeeks(t, int(d.Days/7))
	}
	if fixed, ok := d.Fixed(); ok && fixed > 0 {
		return timex.AlignTimeToWindow(t, fixed)
	}
	return t
}

// String renders the canonical literal form, e.g. "1mo2w3d4h".
func (d Duration) String() string {
	if d.IsZero() {
		return "0s"
	}
	neg := d.Months <= 0 && d.Days <= 0 && d.Nanos <= 0
	months, days, nanos := d.Months, d.Days, d.Nanos
	if neg {
		months, days, nanos = -months, -days, -nanos
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	appendPart := func(n int64, unit string) {
		if n != 0 {
			fmt.Fprintf(&b, "%d%s", n, unit)
		}
	}
	appendPart(months/12, "y")
	appendPart(months%12, "mo")
	appendPart(days/7, "w")
	appendPart(days%7, "d")
	appendPart(nanos/int64(time.Hour), "h")
	nanos %= int64(time.Hour)
	appendPart(nanos/int64(time.Minute), "m")
	nanos %= int64(time.Minute)
	appendPart(nanos/int64(time.Second), "s")
	nanos %= int64(time.Second)
	appendPart(nanos/int64(time.Millisecond), "ms")
	nanos %= int64(time.Millisecond)
	appendPart(nanos/int64(time.Microsecond), "us")
	appendPart(nanos%int64(time.Microsecond), "ns")
	return b.String()
}
