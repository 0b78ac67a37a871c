package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClosed(t *testing.T) {
	for name, want := range map[string]Closed{
		"left":  ClosedLeft,
		"right": ClosedRight,
		"both":  ClosedBoth,
		"none":  ClosedNone,
	} {
		got, err := ParseClosed(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseClosed("open")
	assert.Error(t, err)
}

func TestTimeSlotContains(t *testing.T) {
	start := time.Unix(100, 0)
	end := time.Unix(200, 0)
	inside := time.Unix(150, 0)
	below := time.Unix(99, 0)
	above := time.Unix(201, 0)

	tests := []struct {
		closed     Closed
		start, end bool
	}{
		{ClosedLeft, true, false},
		{ClosedRight, false, true},
		{ClosedBoth, true, true},
		{ClosedNone, false, false},
	}
	for _, tc := range tests {
		slot := NewTimeSlot(start, end, tc.closed)
		assert.True(t, slot.Contains(inside), tc.closed)
		assert.False(t, slot.Contains(below), tc.closed)
		assert.False(t, slot.Contains(above), tc.closed)
		assert.Equal(t, tc.start, slot.Contains(start), "%v lower bound", tc.closed)
		assert.Equal(t, tc.end, slot.Contains(end), "%v upper bound", tc.closed)
	}
}

func TestTimeSlotAccessors(t *testing.T) {
	start := time.Unix(1, 0)
	end := time.Unix(2, 0)
	slot := NewTimeSlot(start, end, ClosedLeft)

	assert.Equal(t, start.UnixNano(), slot.WindowStart())
	assert.Equal(t, end.UnixNano(), slot.WindowEnd())

	var missing *TimeSlot
	assert.Zero(t, missing.WindowStart(), "nil bounds read as zero")
	assert.Zero(t, missing.WindowEnd())
}
