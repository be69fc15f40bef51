// Package workday implements the Monday-to-Friday calendar arithmetic
// behind task deadlines.
//
// All functions are pure. Dates are time.Time values at midnight; inputs
// carrying a time of day are normalized first.
package workday

import (
	"math"
	"time"
)

// HoursPerDay is the number of work-hours in one workday.
const HoursPerDay = 6

// Midnight strips the time component of t in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWorkday reports whether t falls on Monday through Friday.
func IsWorkday(t time.Time) bool {
	return !IsWeekend(t)
}

// NextDay returns the calendar date after t, at midnight.
// Calendar arithmetic keeps DST transitions from shifting the time of day.
func NextDay(t time.Time) time.Time {
	return Midnight(t).AddDate(0, 0, 1)
}

// MaxHours is the largest hour budget a task may carry: a thousand years
// of workdays.
const MaxHours = HoursPerDay * 5 * 52 * 1000

// maxWorkdays caps WorkdaysNeeded so the week arithmetic in EndDate stays
// well inside the range of int and time.Time.
const maxWorkdays = 1 << 30

// WorkdaysNeeded converts an hour budget into whole workdays, rounding up.
// Non-positive budgets need no workdays. Budgets beyond any calendar are
// clamped, so the result never decreases as hours grow.
func WorkdaysNeeded(hours float64) int {
	if !(hours > 0) {
		return 0
	}
	days := math.Ceil(hours / HoursPerDay)
	if days >= maxWorkdays {
		return maxWorkdays
	}
	return int(days)
}

// EndDate returns the date on which a task started on start with the given
// hour budget completes, counting only workdays.
//
// A workday start counts as day 1. A weekend start moves to the following
// Monday, which then counts as day 1. A non-positive budget returns start.
func EndDate(start time.Time, hours float64) time.Time {
	current := Midnight(start)
	needed := WorkdaysNeeded(hours)
	if needed == 0 {
		return current
	}

	for IsWeekend(current) {
		current = NextDay(current)
	}

	// Five workdays always span one calendar week.
	extra := needed - 1
	current = current.AddDate(0, 0, 7*(extra/5))
	for left := extra % 5; left > 0; {
		current = NextDay(current)
		if IsWorkday(current) {
			left--
		}
	}
	return current
}

// Remaining counts the workdays in [today, end], both ends inclusive.
// It is zero once today is past end.
func Remaining(end, today time.Time) int {
	first, last := dayNumber(today), dayNumber(end)
	if first > last {
		return 0
	}

	span := last - first + 1
	n := int(span/7) * 5
	wd := today.Weekday()
	for i := int64(0); i < span%7; i++ {
		if d := (wd + time.Weekday(i)) % 7; d != time.Saturday && d != time.Sunday {
			n++
		}
	}
	return n
}

// dayNumber returns the count of calendar days between 1970-01-01 and the
// date of t, ignoring its time of day and zone offset.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
