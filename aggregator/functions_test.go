package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(fn AggregatorFunction, values ...interface{}) interface{} {
	for _, v := range values {
		fn.Add(v)
	}
	return fn.Result()
}

func TestNumericKernels(t *testing.T) {
	tests := []struct {
		op     AggregateType
		values []interface{}
		want   interface{}
	}{
		{Sum, []interface{}{1, 2.5, 3}, 6.5},
		{Count, []interface{}{1, "x", 3}, int64(3)},
		{Mean, []interface{}{2, 4}, 3.0},
		{Min, []interface{}{5, -2, 3}, -2.0},
		{Max, []interface{}{5, -2, 3}, 5.0},
		{Median, []interface{}{3, 1, 2}, 2.0},
		{Median, []interface{}{4, 1, 2, 3}, 2.5},
		{NUnique, []interface{}{1, 1, 2, "2"}, int64(3)},
		{First, []interface{}{"a", "b"}, "a"},
		{Last, []interface{}{"a", "b"}, "b"},
	}
	for _, tc := range tests {
		fn, ok := CreateBuiltinAggregator(tc.op)
		require.True(t, ok, tc.op)
		assert.Equal(t, tc.want, feed(fn, tc.values...), tc.op)
	}
}

func TestStdDevKernel(t *testing.T) {
	fn, _ := CreateBuiltinAggregator(StdDev)
	got := feed(fn, 2, 4, 4, 4, 5, 5, 7, 9)
	assert.InDelta(t, 2.138, got.(float64), 0.001)

	single, _ := CreateBuiltinAggregator(StdDev)
	assert.Equal(t, 0.0, feed(single, 42), "fewer than two values has no spread")
}

func TestQuantileKernel(t *testing.T) {
	q := NewQuantileAggregator(0.5)
	assert.Equal(t, 3.0, feed(q, 5, 1, 3, 2, 4))

	hi := NewQuantileAggregator(1.0)
	assert.Equal(t, 5.0, feed(hi, 5, 1, 3))

	lo := NewQuantileAggregator(0.0)
	assert.Equal(t, 1.0, feed(lo, 5, 1, 3))
}

func TestCollectKernel(t *testing.T) {
	fn, _ := CreateBuiltinAggregator(Collect)
	got := feed(fn, "a", 2, nil)
	assert.Equal(t, []interface{}{"a", 2, nil}, got)
}

func TestKernelNewResets(t *testing.T) {
	fn, _ := CreateBuiltinAggregator(Sum)
	feed(fn, 1, 2)

	fresh := fn.New()
	assert.Equal(t, 0.0, fresh.Result(), "New returns an empty kernel")
	assert.Equal(t, 3.0, fn.Result(), "the original is untouched")

	q := NewQuantileAggregator(0.25)
	feed(q, 1, 2, 3)
	assert.Empty(t, q.New().(*QuantileAggregator).values, "New keeps the level but drops the samples")
}

func TestRegisterCustomAggregator(t *testing.T) {
	Register("always_seven", func() AggregatorFunction {
		return &constantAggregator{}
	})

	fn, ok := CreateBuiltinAggregator("always_seven")
	require.True(t, ok)
	assert.Equal(t, 7, feed(fn, 1, 2, 3))

	_, ok = CreateBuiltinAggregator("no_such_kernel")
	assert.False(t, ok)

	Unregister("always_seven")
	_, ok = CreateBuiltinAggregator("always_seven")
	assert.False(t, ok)
}

func TestRegisterShadowsQuantile(t *testing.T) {
	Register(string(Quantile), func() AggregatorFunction {
		return &constantAggregator{}
	})
	defer Unregister(string(Quantile))

	fn, err := QuantileOf("v", 0.5).kernel()
	require.NoError(t, err)
	assert.Equal(t, 7, feed(fn, 1, 2, 3), "a registered kernel shadows the quantile builtin like any other")
}

type constantAggregator struct{}

func (c *constantAggregator) New() AggregatorFunction { return &constantAggregator{} }
func (c *constantAggregator) Add(interface{})         {}
func (c *constantAggregator) Result() interface{}     { return 7 }
