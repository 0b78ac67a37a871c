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

// Package expr bridges the expression engine: grouping keys and
// aggregation inputs that are not plain column names are compiled once
// and evaluated row by row against a column-name environment.
package expr

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expression is a compiled row expression.
type Expression struct {
	source  string
	program *vm.Program
}

// Compile compiles the given source once. Column names are free
// variables resolved from the row environment at evaluation time.
func Compile(source string) (*Expression, error) {
	program, err := expr.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", source, err)
	}
	return &Expression{source: source, program: program}, nil
}

// Evaluate runs the expression against one row environment.
func (e *Expression) Evaluate(env map[string]interface{}) (interface{}, error) {
	result, err := expr.Run(e.program, env)
	if err != nil {
		return nil, fmt.Errorf("evaluate expression %q: %w", e.source, err)
	}
	return result, nil
}

// Source returns the original expression text, used as the default
// output column name.
func (e *Expression) Source() string {
	return e.source
}
