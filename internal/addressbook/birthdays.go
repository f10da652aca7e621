package addressbook

import (
	"strings"
	"time"

	"github.com/username/address-book-bot/pkg/dateutil"
)

// WindowDays is the size of the upcoming birthdays window, today included
const WindowDays = 7

// NoUpcomingBirthdays is returned when no anniversary falls inside the window
const NoUpcomingBirthdays = "No birthdays on next week"

// BirthdayEntry pairs a contact name with its birthday
type BirthdayEntry struct {
	Name     string
	Birthday time.Time
}

// GroupUpcoming groups names by the weekday their next anniversary is
// celebrated on, for anniversaries less than WindowDays days from today.
// Weekend anniversaries are celebrated on Monday.
func GroupUpcoming(today time.Time, entries []BirthdayEntry) map[time.Weekday][]string {
	today = dateutil.StartOfDay(today)
	groups := make(map[time.Weekday][]string)

	for _, entry := range entries {
		next := dateutil.NextAnniversary(entry.Birthday, today)
		if dateutil.DaysBetween(today, next) >= WindowDays {
			continue
		}
		weekday := dateutil.CelebrationWeekday(next)
		groups[weekday] = append(groups[weekday], entry.Name)
	}

	return groups
}

// UpcomingBirthdays renders the birthdays of the next WindowDays days as
// "Weekday: name1, name2" lines ordered from Monday.
func UpcomingBirthdays(today time.Time, entries []BirthdayEntry) (string, error) {
	if len(entries) == 0 {
		return "", &Error{Kind: KindEmptyBirthdayList}
	}

	groups := GroupUpcoming(today, entries)

	var lines []string
	for _, weekday := range dateutil.WeekFromMonday() {
		names, ok := groups[weekday]
		if !ok {
			continue
		}
		lines = append(lines, weekday.String()+": "+strings.Join(names, ", "))
	}

	if len(lines) == 0 {
		return NoUpcomingBirthdays, nil
	}
	return strings.Join(lines, "\n"), nil
}
