// Package timeline is the scheduling engine behind the quote editor's
// cronoprogramma: it assigns start times to work slots across days,
// re-chains dependent slots when an earlier one changes, derives the
// crew arrival time per day, and projects the result onto a horizontal
// time axis.
//
// All functions are pure and operate on integer minutes from midnight.
// Parsing is deliberately forgiving: a half-typed time field falls back
// to the start of the work day instead of failing, so a recompute
// triggered mid-edit never breaks.
package timeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	workDayStartHour = 8
	workDayEndHour   = 19

	// Fixed buffer between crew arrival and the first billable slot.
	setupOffsetMinutes = 15
)

// ParseClock converts a 24-hour "HH:MM" string to minutes from
// midnight. Malformed or empty input returns the start of the work day.
func ParseClock(s string) int {
	h, m, ok := splitClock(s)
	if !ok {
		return workDayStartHour * 60
	}
	return h*60 + m
}

func splitClock(s string) (h, m int, ok bool) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(s[:i])
	if err != nil || h < 0 {
		return 0, 0, false
	}
	m, err = strconv.Atoi(s[i+1:])
	if err != nil || m < 0 {
		return 0, 0, false
	}
	return h, m, true
}

// FormatClock renders minutes from midnight as "HH:MM". Negative input
// returns the start of the work day. Hours are not wrapped past 24;
// callers that need day rollover use EndOfWork.
func FormatClock(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = workDayStartHour * 60
	}
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// durationMinutes converts an hour duration to whole minutes. Rounding
// keeps quarter-hour fractions (0.25, 0.5) minute-exact.
func durationMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}

// EndOfWork advances durationHours from start on startDay, confined to
// the work-day window [08:00, 19:00). Whatever does not fit before
// 19:00 carries over to the next day at 08:00, repeating until the
// duration is exhausted. A start at or past 19:00 moves the whole
// duration to the next day.
func EndOfWork(startDay int, start string, durationHours float64) (endDay int, end string) {
	cur := ParseClock(start)
	day := startDay
	remaining := durationMinutes(durationHours)

	dayEnd := workDayEndHour * 60
	dayStart := workDayStartHour * 60

	if cur >= dayEnd {
		day++
		cur = dayStart
	}

	for remaining > 0 {
		left := dayEnd - cur
		if remaining <= left {
			cur += remaining
			remaining = 0
		} else {
			remaining -= left
			day++
			cur = dayStart
		}
	}

	return day, FormatClock(cur)
}
