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

// String renders the table as an aligned text grid, one line per row
// plus a header and separator. Intended for logs and examples, not for
// machine consumption.
func (t *Table) String() string {
	if t.Width() == 0 {
		return fmt.Sprintf("shape: (%d, 0)\n", t.nrows)
	}

	widths := make([]int, len(t.cols))
	cells := make([][]string, t.nrows)
	for ci, col := range t.cols {
		widths[ci] = len(col.Name)
	}
	for ri := 0; ri < t.nrows; ri++ {
		cells[ri] = make([]string, len(t.cols))
		for ci, col := range t.cols {
			s := formatCell(col.Values[ri])
			cells[ri][ci] = s
			if len(s) > widths[ci] {
				widths[ci] = len(s)
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "shape: (%d, %d)\n", t.nrows, t.Width())
	writeRow := func(fields []string) {
		for ci, s := range fields {
			if ci > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", widths[ci]-len(s)))
		}
		b.WriteString("\n")
	}
	writeRow(t.Names())
	sep := make([]string, len(t.cols))
	for ci, w := range widths {
		sep[ci] = strings.Repeat("-", w)
	}
	writeRow(sep)
	for ri := 0; ri < t.nrows; ri++ {
		writeRow(cells[ri])
	}
	return b.String()
}

func formatCell(v interface{}) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
