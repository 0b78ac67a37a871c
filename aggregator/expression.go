package aggregator

import (
	"fmt"
)

// Expression is one aggregation to evaluate per group: an input column
// or row expression, a kernel, and an optional output alias.
type Expression struct {
	// Input is the column name or row expression whose values feed the
	// kernel. Empty for Count.
	Input string
	// Op selects the aggregation kernel.
	Op AggregateType
	// As overrides the output column name. Empty keeps the default:
	// the input name, or the kernel name when there is no input.
	As string
	// Arg parameterizes the kernel (the quantile level).
	Arg float64
}

// Alias returns a copy of the expression with the output renamed.
func (e Expression) Alias(name string) Expression {
	e.As = name
	return e
}

// OutputName returns the result column name.
func (e Expression) OutputName() string {
	if e.As != "" {
		return e.As
	}
	if e.Input != "" {
		return e.Input
	}
	return string(e.Op)
}

// SumOf aggregates the sum of the input values.
func SumOf(input string) Expression {
	return Expression{Input: input, Op: Sum}
}

// CountAll counts the rows of each group, named "count".
func CountAll() Expression {
	return Expression{Op: Count}
}

// CountOf counts the values of one input, named after it.
func CountOf(input string) Expression {
	return Expression{Input: input, Op: Count}
}

// MeanOf aggregates the arithmetic mean of the input values.
func MeanOf(input string) Expression {
	return Expression{Input: input, Op: Mean}
}

// MinOf aggregates the minimum of the input values.
func MinOf(input string) Expression {
	return Expression{Input: input, Op: Min}
}

// MaxOf aggregates the maximum of the input values.
func MaxOf(input string) Expression {
	return Expression{Input: input, Op: Max}
}

// MedianOf aggregates the median of the input values.
func MedianOf(input string) Expression {
	return Expression{Input: input, Op: Median}
}

// QuantileOf aggregates the q-quantile of the input values.
func QuantileOf(input string, q float64) Expression {
	return Expression{Input: input, Op: Quantile, Arg: q}
}

// StdDevOf aggregates the sample standard deviation of the input
// values.
func StdDevOf(input string) Expression {
	return Expression{Input: input, Op: StdDev}
}

// NUniqueOf counts the distinct input values.
func NUniqueOf(input string) Expression {
	return Expression{Input: input, Op: NUnique}
}

// FirstOf takes the first input value of each group.
func FirstOf(input string) Expression {
	return Expression{Input: input, Op: First}
}

// LastOf takes the last input value of each group.
func LastOf(input string) Expression {
	return Expression{Input: input, Op: Last}
}

// CollectOf gathers the input values of each group into a list.
func CollectOf(input string) Expression {
	return Expression{Input: input, Op: Collect}
}

// kernel builds a fresh kernel instance for the expression. The
// registry is consulted first, so a registered kernel shadows any
// builtin, the parameterized quantile included.
func (e Expression) kernel() (AggregatorFunction, error) {
	if fn, ok := CreateBuiltinAggregator(e.Op); ok {
		return fn, nil
	}
	if e.Op == Quantile {
		if e.Arg < 0 || e.Arg > 1 {
			return nil, fmt.Errorf("quantile level %v out of range [0, 1]", e.Arg)
		}
		return NewQuantileAggregator(e.Arg), nil
	}
	return nil, fmt.Errorf("unknown aggregation %q", e.Op)
}

// encodeScalar builds a hashable representation of one value.
func encodeScalar(v interface{}) string {
	return fmt.Sprintf("%T:%v", v, v)
}
