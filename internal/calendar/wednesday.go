// Package calendar computes the navigable window of Wednesdays the game is
// played on. Every function works on calendar days in the location of its
// time.Time arguments; time of day is ignored.
package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of an event date.
const DateLayout = "2006-01-02"

const daysPerWeek = 7

// MaxDates bounds how many dates a single window or extension may hold.
const MaxDates = 52

// Day truncates t to midnight of its calendar day, keeping its location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func IsWednesday(t time.Time) bool {
	return t.Weekday() == time.Wednesday
}

// CurrentOrNextWednesday returns ref's day when it is a Wednesday and the
// nearest upcoming Wednesday otherwise.
func CurrentOrNextWednesday(ref time.Time) time.Time {
	day := Day(ref)
	offset := (int(time.Wednesday) - int(day.Weekday()) + daysPerWeek) % daysPerWeek
	return day.AddDate(0, 0, offset)
}

// Window returns n ascending Wednesdays around the anchor returned by
// CurrentOrNextWednesday: n/2 strictly before it, the rest starting at it.
func Window(ref time.Time, n int) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}

	anchor := CurrentOrNextWednesday(ref)
	past := n / 2

	dates := make([]time.Time, 0, n)
	for i := -past; i < n-past; i++ {
		dates = append(dates, anchor.AddDate(0, 0, i*daysPerWeek))
	}
	return dates
}

// ExtendPast returns count dates strictly before from, one week apart,
// in ascending order.
func ExtendPast(from time.Time, count int) []time.Time {
	if count <= 0 {
		return []time.Time{}
	}

	start := Day(from)
	dates := make([]time.Time, 0, count)
	for i := count; i >= 1; i-- {
		dates = append(dates, start.AddDate(0, 0, -i*daysPerWeek))
	}
	return dates
}

// ExtendFuture returns count dates strictly after from, one week apart,
// in ascending order.
func ExtendFuture(from time.Time, count int) []time.Time {
	if count <= 0 {
		return []time.Time{}
	}

	start := Day(from)
	dates := make([]time.Time, 0, count)
	for i := 1; i <= count; i++ {
		dates = append(dates, start.AddDate(0, 0, i*daysPerWeek))
	}
	return dates
}

// IsPast reports whether d's calendar day is strictly before ref's.
func IsPast(d, ref time.Time) bool {
	return Day(d).Before(Day(ref.In(d.Location())))
}

// IsToday reports whether d and ref fall on the same calendar day.
func IsToday(d, ref time.Time) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := ref.In(d.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
