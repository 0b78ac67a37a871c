/*
 * Copyright 2024 The RuleGo Authors.
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

package cast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	assert.Equal(t, 1.5, ToFloat64(1.5, 0))
	assert.Equal(t, 2.0, ToFloat64(2, 0))
	assert.Equal(t, 3.0, ToFloat64(int64(3), 0))
	assert.Equal(t, 4.0, ToFloat64(uint8(4), 0))
	assert.Equal(t, 5.5, ToFloat64("5.5", 0))
	assert.Equal(t, -1.0, ToFloat64("not a number", -1))
	assert.Equal(t, -1.0, ToFloat64(nil, -1))
	assert.Equal(t, -1.0, ToFloat64(struct{}{}, -1))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "x", ToString("x"))
	assert.Equal(t, "<nil>", ToString(nil))
}
