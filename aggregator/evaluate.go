// Package aggregator is the evaluation engine for grouped
// aggregations: incremental kernels plus a single batched entry point
// that partitions a table by a grouping spec and reduces caller-chosen
// expressions per group.
package aggregator

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/jdanford/polars/dataset"
	"github.com/jdanford/polars/index"
	"github.com/jdanford/polars/logger"
)

// Evaluate computes the group index for the spec and reduces every
// expression over every group in one pass. The result has one row per
// group entry, the key columns first (named by spec.KeyColumns()),
// then one column per expression.
func Evaluate(tbl *dataset.Table, spec index.Spec, exprs []Expression) (*dataset.Table, error) {
	idx, err := spec.Compute(tbl)
	if err != nil {
		return nil, err
	}
	return EvaluateIndex(tbl, idx, spec.KeyColumns(), exprs)
}

// EvaluateIndex reduces the expressions over an already computed group
// index.
func EvaluateIndex(tbl *dataset.Table, idx index.GroupIndex, keyColumns []string, exprs []Expression) (*dataset.Table, error) {
	names := make(map[string]struct{}, len(keyColumns)+len(exprs))
	for _, name := range keyColumns {
		names[name] = struct{}{}
	}
	for _, e := range exprs {
		name := e.OutputName()
		if _, dup := names[name]; dup {
			return nil, fmt.Errorf("duplicate output column %q, use an alias", name)
		}
		names[name] = struct{}{}
	}

	// Resolve each expression's input once, row-aligned with the table.
	inputs := make([][]interface{}, len(exprs))
	for i, e := range exprs {
		if e.Input == "" {
			continue
		}
		values, err := index.ResolveValues(tbl, e.Input)
		if err != nil {
			return nil, err
		}
		inputs[i] = values
	}

	keyCols := make([]dataset.Column, len(keyColumns))
	for i, name := range keyColumns {
		keyCols[i] = dataset.Column{Name: name, Values: make([]interface{}, len(idx))}
	}
	aggCols := make([]dataset.Column, len(exprs))
	for i, e := range exprs {
		aggCols[i] = dataset.Column{Name: e.OutputName(), Values: make([]interface{}, len(idx))}
	}

	for ei, entry := range idx {
		if entry.Key.Len() != len(keyColumns) {
			return nil, fmt.Errorf("group key has %d components, expected %d", entry.Key.Len(), len(keyColumns))
		}
		for i, v := range entry.Key.Values() {
			keyCols[i].Values[ei] = v
		}
		for xi, e := range exprs {
			fn, err := e.kernel()
			if err != nil {
				return nil, err
			}
			for _, row := range entry.Rows {
				var v interface{}
				if inputs[xi] != nil {
					v = inputs[xi][row]
				} else {
					v = 1
				}
				if v == nil {
					// Nulls never feed a kernel.
					continue
				}
				if isNumericAggregator(e.Op) {
					num, err := cast.ToFloat64E(v)
					if err != nil {
						return nil, fmt.Errorf("cannot aggregate %q: value %v is not numeric: %w", e.OutputName(), v, err)
					}
					fn.Add(num)
				} else {
					fn.Add(v)
				}
			}
			aggCols[xi].Values[ei] = fn.Result()
		}
	}

	logger.Debug("aggregation evaluated: %d groups, %d expressions", len(idx), len(exprs))
	return dataset.New(append(keyCols, aggCols...)...)
}
