package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is weekend", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), true},
		{"Monday is not weekend", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not weekend", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2025, false},
		{1900, false},
		{2000, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestAnniversary(t *testing.T) {
	tests := []struct {
		name     string
		birthday time.Time
		year     int
		want     time.Time
	}{
		{
			name:     "Regular date",
			birthday: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
			year:     2025,
			want:     time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Feb 29 in leap year",
			birthday: time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
			year:     2024,
			want:     time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Feb 29 in non-leap year falls back to Feb 28",
			birthday: time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
			year:     2025,
			want:     time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Anniversary(tt.birthday, tt.year, time.UTC)

			if !got.Equal(tt.want) {
				t.Errorf("Anniversary(%v, %d) = %v, want %v",
					tt.birthday.Format("2006-01-02"), tt.year,
					got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestNextAnniversary(t *testing.T) {
	today := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday time.Time
		want     time.Time
	}{
		{
			name:     "Later this year",
			birthday: time.Date(1990, 6, 12, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Today counts as this year",
			birthday: time.Date(1990, 6, 10, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Already passed moves to next year",
			birthday: time.Date(1990, 6, 9, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextAnniversary(tt.birthday, today)

			if !got.Equal(tt.want) {
				t.Errorf("NextAnniversary(%v) = %v, want %v",
					tt.birthday.Format("2006-01-02"),
					got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			"Same day",
			time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 1, 0, 0, 0, time.UTC),
			0,
		},
		{
			"Across year boundary",
			time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC),
			6,
		},
		{
			"Across DST change",
			time.Date(2025, 3, 28, 0, 0, 0, 0, berlin),
			time.Date(2025, 4, 4, 0, 0, 0, 0, berlin),
			7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCelebrationWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Weekday
	}{
		{"Tuesday stays Tuesday", time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), time.Tuesday},
		{"Friday stays Friday", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), time.Friday},
		{"Saturday moves to Monday", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), time.Monday},
		{"Sunday moves to Monday", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), time.Monday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CelebrationWeekday(tt.input); got != tt.want {
				t.Errorf("CelebrationWeekday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestWeekFromMonday(t *testing.T) {
	week := WeekFromMonday()

	if len(week) != 7 {
		t.Fatalf("WeekFromMonday() len = %d, want 7", len(week))
	}
	if week[0] != time.Monday || week[6] != time.Sunday {
		t.Errorf("WeekFromMonday() = %v, want Monday..Sunday", week)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"DD.MM.YYYY",
			"15.01.2025",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Leap day",
			"29.02.2024",
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			false,
		},
		{"Dash separators", "31-02-2024", time.Time{}, true},
		{"Nonexistent day", "31.02.2024", time.Time{}, true},
		{"Leap day in common year", "29.02.2025", time.Time{}, true},
		{"Single digit day", "5.01.2025", time.Time{}, true},
		{"ISO format", "2025-01-15", time.Time{}, true},
		{"Empty string", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	input := time.Date(2025, 1, 5, 10, 30, 45, 0, time.UTC)

	if got := FormatDate(input); got != "05.01.2025" {
		t.Errorf("FormatDate(%v) = %v, want %v", input, got, "05.01.2025")
	}
}
