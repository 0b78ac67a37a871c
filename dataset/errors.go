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

package dataset

import (
	"fmt"
	"strings"
)

// UnknownColumnError reports a reference to a column the table does not
// have.
type UnknownColumnError struct {
	Name string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Name)
}

// SchemaMismatchError reports a table whose schema differs from the
// expected one during concatenation or per-group apply.
type SchemaMismatchError struct {
	Expected []string
	Got      []string
	Position int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch at table %d: expected [%s], got [%s]",
		e.Position, strings.Join(e.Expected, ", "), strings.Join(e.Got, ", "))
}
