package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the DD.MM.YYYY layout used for birthdays on input and output
const DateLayout = "02.01.2006"

// DateLayoutHint is the human readable form of DateLayout
const DateLayoutHint = "DD.MM.YYYY"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// IsLeapYear reports whether year has a February 29
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Anniversary returns the occurrence of date's month and day in the given year.
// February 29 falls back to February 28 when year is not a leap year.
func Anniversary(date time.Time, year int, loc *time.Location) time.Time {
	day := date.Day()
	if date.Month() == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return time.Date(year, date.Month(), day, 0, 0, 0, 0, loc)
}

// NextAnniversary returns the first anniversary of date that is not before today
func NextAnniversary(date, today time.Time) time.Time {
	today = StartOfDay(today)
	next := Anniversary(date, today.Year(), today.Location())
	if next.Before(today) {
		next = Anniversary(date, today.Year()+1, today.Location())
	}
	return next
}

// DaysBetween returns the number of calendar days from one date to another.
// Clock time and DST offsets are ignored.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// CelebrationWeekday returns the weekday of date, moving Saturday and Sunday to Monday
func CelebrationWeekday(date time.Time) time.Weekday {
	if IsWeekend(date) {
		return time.Monday
	}
	return date.Weekday()
}

// WeekFromMonday returns weekdays in Monday..Sunday order
func WeekFromMonday() []time.Weekday {
	return []time.Weekday{
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
		time.Saturday,
		time.Sunday,
	}
}

// ParseDate parses a DD.MM.YYYY date string.
// Day and month must be two digits and the date must exist in the calendar.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate formats date as DD.MM.YYYY
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
