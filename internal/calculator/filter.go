package calculator

import (
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// DateLayout is the calendar-day format used for range bounds and reports.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date range bound cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// DateRange is an inclusive range of calendar days.
// Time-of-day on either bound is ignored.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DefaultDateRange returns the last month up to and including today.
func DefaultDateRange(now time.Time) DateRange {
	return DateRange{
		Start: now.AddDate(0, -1, 0),
		End:   now,
	}
}

// ParseDateRange parses YYYY-MM-DD bounds. An empty bound falls back to the
// matching bound of DefaultDateRange(now).
func ParseDateRange(start, end string, now time.Time) (DateRange, error) {
	r := DefaultDateRange(now)
	if start != "" {
		t, err := time.Parse(DateLayout, start)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: start date %q", ErrInvalidDate, start)
		}
		r.Start = t
	}
	if end != "" {
		t, err := time.Parse(DateLayout, end)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: end date %q", ErrInvalidDate, end)
		}
		r.End = t
	}
	return r, nil
}

// Contains reports whether t falls on a day within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := calendarDay(t)
	return !d.Before(calendarDay(r.Start)) && !d.After(calendarDay(r.End))
}

// Inverted reports whether the start day is after the end day.
func (r DateRange) Inverted() bool {
	return calendarDay(r.Start).After(calendarDay(r.End))
}

// FilterByDate returns the expenses dated within r, in their original order.
// An inverted range yields an empty result.
func FilterByDate(expenses []models.Expense, r DateRange) []models.Expense {
	filtered := make([]models.Expense, 0, len(expenses))
	if r.Inverted() {
		return filtered
	}
	for _, expense := range expenses {
		if r.Contains(expense.Date) {
			filtered = append(filtered, expense)
		}
	}
	return filtered
}

// calendarDay strips the time of day, keeping the day as seen in t's own location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
