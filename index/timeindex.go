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

	"github.com/spf13/cast"

	"github.com/jdanford/polars/dataset"
)

// DefaultTimeUnit scales numeric index values that carry no unit of
// their own.
const DefaultTimeUnit = time.Millisecond

// timeValues converts the index column into timestamps, row-aligned.
// time.Time values pass through; integers and floats are scaled by
// unit; strings go through cast.ToTimeE.
func timeValues(col dataset.Column, unit time.Duration) ([]time.Time, error) {
	if unit <= 0 {
		unit = DefaultTimeUnit
	}
	times := make([]time.Time, len(col.Values))
	for i, v := range col.Values {
		switch x := v.(type) {
		case time.Time:
			times[i] = x
		case int:
			times[i] = time.Unix(0, int64(x)*int64(unit))
		case int32:
			times[i] = time.Unix(0, int64(x)*int64(unit))
		case int64:
			times[i] = time.Unix(0, x*int64(unit))
		case uint:
			times[i] = time.Unix(0, int64(x)*int64(unit))
		case uint32:
			times[i] = time.Unix(0, int64(x)*int64(unit))
		case uint64:
			times[i] = time.Unix(0, int64(x)*int64(unit))
		case float32:
			times[i] = time.Unix(0, int64(float64(x)*float64(unit)))
		case float64:
			times[i] = time.Unix(0, int64(x*float64(unit)))
		case string:
			t, err := cast.ToTimeE(x)
			if err != nil {
				return nil, &TypeError{Column: col.Name, Value: v}
			}
			times[i] = t
		default:
			return nil, &TypeError{Column: col.Name, Value: v}
		}
	}
	return times, nil
}

// checkSorted verifies the index values are non-decreasing over the
// given rows. Reported row numbers refer to the original table.
func checkSorted(column string, times []time.Time, rows []int) error {
	for i := 1; i < len(rows); i++ {
		if times[rows[i]].Before(times[rows[i-1]]) {
			return &UnsortedIndexError{Column: column, Row: rows[i]}
		}
	}
	return nil
}
