package utils

import (
	"fmt"
	"time"
)

// ISODateLayout is the wire format for calendar dates.
const ISODateLayout = "2006-01-02"

var italianWeekdays = [7]string{
	"Domenica", "Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato",
}

// StartOfDay returns midnight of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddWeeks returns t shifted by n calendar weeks.
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, 7*n)
}

// At places a wall-clock time of day on d's calendar date.
func At(d time.Time, hour, minute int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
}

// ParseISODate parses a "YYYY-MM-DD" date in the local location.
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(ISODateLayout, s, time.Local)
}

// FormatISODate formats t's calendar date as "YYYY-MM-DD".
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// RelativeDayLabel renders a day for message text: "Oggi", "Domani",
// or the weekday name plus day/month (e.g. "Lunedì 03/06").
func RelativeDayLabel(t, now time.Time) string {
	switch {
	case SameDay(t, now):
		return "Oggi"
	case SameDay(t, AddDays(now, 1)):
		return "Domani"
	default:
		return fmt.Sprintf("%s %s", italianWeekdays[int(t.Weekday())], t.Format("02/01"))
	}
}
