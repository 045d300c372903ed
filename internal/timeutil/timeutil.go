// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := int(val)

	return total / secondsInAMinute, total % secondsInAMinute
}

// Clock formats a duration as HH:MM:SS. Negative durations are treated as
// zero.
func Clock(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}

	hours := total / secondsInAnHour
	minutes := (total % secondsInAnHour) / secondsInAMinute
	seconds := total % secondsInAMinute

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Countdown formats a duration as MM:SS, letting minutes grow past 59.
func Countdown(d time.Duration) string {
	m, s := SecsToMinsAndSecs(math.Max(d.Seconds(), 0))

	return fmt.Sprintf("%02d:%02d", m, s)
}

// SaturatingAdd adds two durations, clamping at the largest representable
// duration instead of overflowing.
func SaturatingAdd(a, b time.Duration) time.Duration {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}

	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}

	return a + b
}

// ToSeconds converts a duration to whole seconds for persistence.
func ToSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

// FromSeconds converts persisted whole seconds back to a duration.
func FromSeconds(secs int64) time.Duration {
	if secs > math.MaxInt64/int64(time.Second) {
		return math.MaxInt64
	}

	return time.Duration(secs) * time.Second
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// PeriodRange returns the start and end time of the specified period
// relative to now.
func PeriodRange(period Period, now time.Time) (start, end time.Time) {
	start = RoundToStart(now)

	end = RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case PeriodToday:
		return
	case PeriodYesterday:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))
		end = RoundToEnd(start)

		return
	case PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))
	}

	return
}

// keyLayout is RFC 3339 with a fixed-width fraction so keys sort in time
// order.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
