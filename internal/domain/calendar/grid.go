// Package calendar lays out a month as a Sunday-first date grid.
package calendar

import (
	"fmt"
	"time"

	"restaurant-booking/internal/domain/availability"
)

type Mode string

const (
	// ModeSingle is the guest picker: past and blocked days cannot be chosen.
	ModeSingle Mode = "single"
	// ModeMultiple is the staff picker: every day can be toggled.
	ModeMultiple Mode = "multiple"
)

type Day struct {
	Date      string
	Day       int
	IsToday   bool
	IsPast    bool
	IsBlocked bool
	Disabled  bool
}

type Month struct {
	Year  int
	Month time.Month
	// LeadingBlanks is the number of empty cells before the 1st.
	LeadingBlanks int
	Days          []Day
}

// MonthGrid builds the grid for year/month. today is compared by calendar day only.
func MonthGrid(year int, month time.Month, today time.Time, blocked availability.Lookup, mode Mode) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayKey := dayKey(today.Year(), today.Month(), today.Day())

	days := make([]Day, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		key := dayKey(year, month, d)
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), d)
		isBlocked := blocked != nil && blocked.Contains(date)
		isPast := key < todayKey

		days = append(days, Day{
			Date:      date,
			Day:       d,
			IsToday:   key == todayKey,
			IsPast:    isPast,
			IsBlocked: isBlocked,
			Disabled:  mode != ModeMultiple && (isPast || isBlocked),
		})
	}

	return Month{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          days,
	}
}

// ParseMonth reads a YYYY-MM value.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("month must be formatted as YYYY-MM: %w", err)
	}
	return t.Year(), t.Month(), nil
}

func dayKey(year int, month time.Month, day int) int {
	return year*10000 + int(month)*100 + day
}
