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

	"github.com/jdanford/polars/index"
	"github.com/jdanford/polars/interval"
	"github.com/jdanford/polars/logger"
)

// SetLogger installs a custom logger for the package.
func SetLogger(log logger.Logger) {
	logger.SetDefault(log)
}

// SetLogLevel adjusts the default logger's level.
func SetLogLevel(level logger.Level) {
	logger.GetDefault().SetLevel(level)
}

// GroupOption configures key grouping.
type GroupOption func(*GroupBy)

// WithMaintainOrder emits groups in the order each key first appears in
// the table. Slower than the default unordered grouping.
func WithMaintainOrder() GroupOption {
	return func(g *GroupBy) {
		g.maintainOrder = true
	}
}

// RollingOption configures rolling grouping.
type RollingOption func(*RollingGroupBy)

// WithRollingOffset shifts each window start relative to the row's own
// index value. Accepts a time.Duration or a duration literal; the
// default is the negated period, so windows end at the row.
func WithRollingOffset(offset interface{}) RollingOption {
	return func(r *RollingGroupBy) {
		r.offset = offset
	}
}

// WithRollingClosed selects which window boundaries are inclusive.
// The default is right-closed.
func WithRollingClosed(closed interval.Closed) RollingOption {
	return func(r *RollingGroupBy) {
		r.closed = closed
	}
}

// WithRollingBy partitions the table by secondary key columns before
// windowing.
func WithRollingBy(by ...string) RollingOption {
	return func(r *RollingGroupBy) {
		r.by = by
	}
}

// WithRollingCheckSorted toggles the sorted-index check. Disabling it
// on unsorted data yields undefined window membership.
func WithRollingCheckSorted(check bool) RollingOption {
	return func(r *RollingGroupBy) {
		r.checkSorted = check
	}
}

// WithRollingTimeUnit scales numeric index values. The default is
// milliseconds.
func WithRollingTimeUnit(unit time.Duration) RollingOption {
	return func(r *RollingGroupBy) {
		r.timeUnit = unit
	}
}

// DynamicOption configures dynamic grouping.
type DynamicOption func(*DynamicGroupBy)

// WithDynamicPeriod sets the window length. The default equals the
// stride, giving adjacent non-overlapping windows.
func WithDynamicPeriod(period interface{}) DynamicOption {
	return func(d *DynamicGroupBy) {
		d.period = period
	}
}

// WithDynamicOffset shifts every window start. The default is zero.
func WithDynamicOffset(offset interface{}) DynamicOption {
	return func(d *DynamicGroupBy) {
		d.offset = offset
	}
}

// WithDynamicClosed selects which window boundaries are inclusive.
// The default is left-closed.
func WithDynamicClosed(closed interval.Closed) DynamicOption {
	return func(d *DynamicGroupBy) {
		d.closed = closed
	}
}

// WithDynamicBy partitions the table by secondary key columns; the
// whole windowing procedure runs independently per partition.
func WithDynamicBy(by ...string) DynamicOption {
	return func(d *DynamicGroupBy) {
		d.by = by
	}
}

// WithStartBy fixes where the first window begins. The default
// truncates the data's minimum index value down onto the stride grid.
func WithStartBy(startBy index.StartBy) DynamicOption {
	return func(d *DynamicGroupBy) {
		d.startBy = startBy
	}
}

// WithTruncate controls the window label: the window's start boundary
// when true (the default), the first member row's index value when
// false.
func WithTruncate(truncate bool) DynamicOption {
	return func(d *DynamicGroupBy) {
		d.truncate = truncate
	}
}

// WithIncludeBoundaries attaches each window's boundaries as extra key
// fields.
func WithIncludeBoundaries() DynamicOption {
	return func(d *DynamicGroupBy) {
		d.includeBoundaries = true
	}
}

// WithIncludeEmpty retains windows with no member rows instead of
// dropping them.
func WithIncludeEmpty() DynamicOption {
	return func(d *DynamicGroupBy) {
		d.includeEmpty = true
	}
}

// WithDynamicCheckSorted toggles the sorted-index check.
func WithDynamicCheckSorted(check bool) DynamicOption {
	return func(d *DynamicGroupBy) {
		d.checkSorted = check
	}
}

// WithDynamicTimeUnit scales numeric index values. The default is
// milliseconds.
func WithDynamicTimeUnit(unit time.Duration) DynamicOption {
	return func(d *DynamicGroupBy) {
		d.timeUnit = unit
	}
}
