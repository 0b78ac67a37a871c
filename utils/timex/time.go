package timex

import (
	"time"
)

// AlignTimeToWindow aligns time down onto an epoch-anchored grid of the
// given size.
func AlignTimeToWindow(t time.Time, size time.Duration) time.Time {
	// Handle zero time
	if t.IsZero() {
		return t
	}
	offset := t.UnixNano() % int64(size)
	if offset < 0 {
		offset += int64(size)
	}
	return t.Add(time.Duration(-offset))
}

// AlignTime aligns time to specified time unit. When roundUp is true, rounds up; when false, rounds down
func AlignTime(t time.Time, timeUnit time.Duration, roundUp bool) time.Time {
	trunc := t.Truncate(timeUnit)
	if roundUp && !t.Equal(trunc) {
		return trunc.Add(timeUnit)
	}
	return trunc
}

// AlignToWeeks aligns time down onto a week grid anchored at ISO Monday
// 1970-01-05 (the first Monday of the Unix epoch), in UTC.
func AlignToWeeks(t time.Time, weeks int) time.Time {
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	// Days since the epoch Monday.
	days := int(day.Unix() / 86400)
	days -= 4 // 1970-01-01 was a Thursday; shift so Monday is day 0
	span := weeks * 7
	rem := days % span
	if rem < 0 {
		rem += span
	}
	return day.AddDate(0, 0, -rem)
}

// AlignToMonths aligns time down onto a month grid anchored at January
// 1970, in UTC.
func AlignToMonths(t time.Time, months int) time.Time {
	u := t.UTC()
	idx := (u.Year()-1970)*12 + int(u.Month()) - 1
	rem := idx % months
	if rem < 0 {
		rem += months
	}
	idx -= rem
	return time.Date(1970+idx/12, time.Month(idx%12+1), 1, 0, 0, 0, 0, time.UTC)
}

// PriorWeekday returns the latest occurrence of the given weekday at or
// before t, at midnight UTC.
func PriorWeekday(t time.Time, weekday time.Weekday) time.Time {
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(day.Weekday() - weekday)
	if diff < 0 {
		diff += 7
	}
	return day.AddDate(0, 0, -diff)
}
