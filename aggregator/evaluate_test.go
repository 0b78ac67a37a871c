package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdanford/polars/dataset"
	"github.com/jdanford/polars/index"
)

func aggTable() *dataset.Table {
	return dataset.MustNew(
		dataset.NewColumn("g", "a", "a", "b"),
		dataset.NewColumn("v", 1, 2, 3),
	)
}

func orderedSpec(by ...string) index.KeySpec {
	return index.KeySpec{By: by, MaintainOrder: true}
}

func TestEvaluateSum(t *testing.T) {
	out, err := Evaluate(aggTable(), orderedSpec("g"), []Expression{SumOf("v")})
	require.NoError(t, err)

	assert.True(t, out.Equal(dataset.MustNew(
		dataset.NewColumn("g", "a", "b"),
		dataset.NewColumn("v", 3.0, 3.0),
	)), "one row per group, keys first, in first-appearance order")
}

func TestEvaluateMultipleExpressions(t *testing.T) {
	out, err := Evaluate(aggTable(), orderedSpec("g"), []Expression{
		CountAll(),
		MinOf("v").Alias("lo"),
		MaxOf("v").Alias("hi"),
		CollectOf("v").Alias("all"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"g", "count", "lo", "hi", "all"}, out.Names())

	row := out.Row(0)
	assert.Equal(t, "a", row["g"])
	assert.Equal(t, int64(2), row["count"])
	assert.Equal(t, 1.0, row["lo"])
	assert.Equal(t, 2.0, row["hi"])
	assert.Equal(t, []interface{}{1, 2}, row["all"])
}

func TestEvaluateIdempotent(t *testing.T) {
	tbl := aggTable()
	spec := orderedSpec("g")
	exprs := []Expression{SumOf("v"), MeanOf("v").Alias("avg")}

	first, err := Evaluate(tbl, spec, exprs)
	require.NoError(t, err)
	second, err := Evaluate(tbl, spec, exprs)
	require.NoError(t, err)
	assert.True(t, first.Equal(second), "re-evaluating the same table gives the same result")
}

func TestEvaluateExpressionInput(t *testing.T) {
	out, err := Evaluate(aggTable(), orderedSpec("g"), []Expression{SumOf("v * 2").Alias("doubled")})
	require.NoError(t, err)

	assert.Equal(t, 6.0, out.Row(0)["doubled"])
	assert.Equal(t, 6.0, out.Row(1)["doubled"])
}

func TestEvaluateSkipsNulls(t *testing.T) {
	tbl := dataset.MustNew(
		dataset.NewColumn("g", "a", "a", "a"),
		dataset.NewColumn("v", 1, nil, 3),
	)
	out, err := Evaluate(tbl, orderedSpec("g"), []Expression{SumOf("v"), CountOf("v").Alias("n")})
	require.NoError(t, err)

	row := out.Row(0)
	assert.Equal(t, 4.0, row["v"])
	assert.Equal(t, int64(2), row["n"], "nulls never feed a kernel")
}

func TestEvaluateDuplicateOutputName(t *testing.T) {
	_, err := Evaluate(aggTable(), orderedSpec("g"), []Expression{SumOf("v"), MeanOf("v")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate output column")

	// A key column name collides too.
	_, err = Evaluate(aggTable(), orderedSpec("g"), []Expression{SumOf("v").Alias("g")})
	assert.Error(t, err)
}

func TestEvaluateNonNumericInput(t *testing.T) {
	tbl := dataset.MustNew(
		dataset.NewColumn("g", "a"),
		dataset.NewColumn("v", "not a number"),
	)
	_, err := Evaluate(tbl, orderedSpec("g"), []Expression{SumOf("v")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")

	// Order-insensitive kernels take any type.
	out, err := Evaluate(tbl, orderedSpec("g"), []Expression{FirstOf("v")})
	require.NoError(t, err)
	assert.Equal(t, "not a number", out.Row(0)["v"])
}

func TestEvaluateQuantileRange(t *testing.T) {
	_, err := Evaluate(aggTable(), orderedSpec("g"), []Expression{QuantileOf("v", 1.5)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestEvaluateTupleKeys(t *testing.T) {
	tbl := dataset.MustNew(
		dataset.NewColumn("a", "x", "x", "y"),
		dataset.NewColumn("b", 1, 1, 2),
		dataset.NewColumn("v", 10, 20, 30),
	)
	out, err := Evaluate(tbl, orderedSpec("a", "b"), []Expression{SumOf("v")})
	require.NoError(t, err)

	assert.True(t, out.Equal(dataset.MustNew(
		dataset.NewColumn("a", "x", "y"),
		dataset.NewColumn("b", 1, 2),
		dataset.NewColumn("v", 30.0, 30.0),
	)))
}
