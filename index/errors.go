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
)

// UnsortedIndexError reports a time-index column that decreases where a
// sorted one is required.
type UnsortedIndexError struct {
	Column string
	Row    int
}

func (e *UnsortedIndexError) Error() string {
	return fmt.Sprintf("index column %q is not sorted: value at row %d decreases", e.Column, e.Row)
}

// TypeError reports a column value that is not usable as a
// chronological index.
type TypeError struct {
	Column string
	Value  interface{}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("column %q is not a chronological type: cannot interpret %T value %v as a timestamp",
		e.Column, e.Value, e.Value)
}

// EmptyGroupingKeyError reports a key grouping with zero grouping
// columns.
type EmptyGroupingKeyError struct{}

func (e *EmptyGroupingKeyError) Error() string {
	return "at least one grouping column or expression is required"
}
