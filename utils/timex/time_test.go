package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAlignTimeToWindow(t *testing.T) {
	ts := time.Date(2023, 5, 17, 13, 42, 7, 123, time.UTC)

	aligned := AlignTimeToWindow(ts, time.Hour)
	assert.Equal(t, time.Date(2023, 5, 17, 13, 0, 0, 0, time.UTC), aligned)

	// Pre-epoch timestamps still align downward.
	old := time.Date(1969, 12, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(1969, 12, 31, 23, 0, 0, 0, time.UTC), AlignTimeToWindow(old, time.Hour))

	assert.True(t, AlignTimeToWindow(time.Time{}, time.Hour).IsZero())
}

func TestAlignTime(t *testing.T) {
	ts := time.Date(2023, 5, 17, 13, 42, 7, 0, time.UTC)

	down := AlignTime(ts, time.Hour, false)
	assert.Equal(t, time.Date(2023, 5, 17, 13, 0, 0, 0, time.UTC), down)

	up := AlignTime(ts, time.Hour, true)
	assert.Equal(t, time.Date(2023, 5, 17, 14, 0, 0, 0, time.UTC), up)

	exact := time.Date(2023, 5, 17, 13, 0, 0, 0, time.UTC)
	assert.Equal(t, exact, AlignTime(exact, time.Hour, true), "already aligned times stay put")
}

func TestAlignToWeeks(t *testing.T) {
	// 2023-05-17 is a Wednesday.
	wed := time.Date(2023, 5, 17, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), AlignToWeeks(wed, 1))

	// A Monday aligns to itself.
	mon := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, AlignToWeeks(mon, 1))

	// The grid is anchored at 1970-01-05, the epoch's first Monday.
	assert.Equal(t, time.Date(1970, 1, 5, 0, 0, 0, 0, time.UTC), AlignToWeeks(time.Date(1970, 1, 8, 0, 0, 0, 0, time.UTC), 1))

	// Multi-week grids stay Monday-anchored.
	two := AlignToWeeks(wed, 2)
	assert.Equal(t, time.Monday, two.Weekday())
	assert.False(t, two.After(wed))
}

func TestAlignToMonths(t *testing.T) {
	ts := time.Date(2023, 5, 17, 13, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), AlignToMonths(ts, 1))
	assert.Equal(t, time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), AlignToMonths(ts, 3), "quarter grid anchored at January 1970")
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), AlignToMonths(ts, 12))

	pre := time.Date(1969, 11, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(1969, 10, 1, 0, 0, 0, 0, time.UTC), AlignToMonths(pre, 3))
}

func TestPriorWeekday(t *testing.T) {
	// 2023-05-17 is a Wednesday.
	wed := time.Date(2023, 5, 17, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), PriorWeekday(wed, time.Monday))
	assert.Equal(t, time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC), PriorWeekday(wed, time.Wednesday))
	assert.Equal(t, time.Date(2023, 5, 11, 0, 0, 0, 0, time.UTC), PriorWeekday(wed, time.Thursday))
	assert.Equal(t, time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC), PriorWeekday(wed, time.Sunday))
}
