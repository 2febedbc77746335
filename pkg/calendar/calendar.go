package calendar

import (
	"fmt"
	"time"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

// DefaultWeekdayNames are the three-letter labels, Monday first
var DefaultWeekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// InvalidDateError is returned for a year or month outside the calendar
type InvalidDateError struct {
	Year  int
	Month int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: year %d month %d", e.Year, e.Month)
}

// Calendar formats day labels with a fixed weekday name table
type Calendar struct {
	names [7]string
}

// New creates a calendar using the given weekday names
func New(names [7]string) *Calendar {
	return &Calendar{names: names}
}

// Compute returns the length and starting weekday of a month
func Compute(year, month int) (models.CalendarContext, error) {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return models.CalendarContext{}, &InvalidDateError{Year: year, Month: month}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return models.CalendarContext{
		DaysInMonth: last.Day(),
		// time.Weekday counts from Sunday
		StartWeekday: (int(first.Weekday()) + 6) % 7,
	}, nil
}

// NextMonth returns the year and month following now
func NextMonth(now time.Time) (int, int) {
	if now.Month() == time.December {
		return now.Year() + 1, 1
	}
	return now.Year(), int(now.Month()) + 1
}

// WeekdayName returns the label of a weekday index (Monday=0)
func (c *Calendar) WeekdayName(weekday int) string {
	return c.names[((weekday%7)+7)%7]
}

// Labels returns one "[day|Wkd]" label per day of the month
func (c *Calendar) Labels(ctx models.CalendarContext) []string {
	labels := make([]string, ctx.DaysInMonth)
	for day := 0; day < ctx.DaysInMonth; day++ {
		labels[day] = fmt.Sprintf("[%d|%s]", day+1, c.WeekdayName(ctx.Weekday(day)))
	}
	return labels
}
