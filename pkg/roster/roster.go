// Package roster turns the positional record list collected from users into
// typed workers, a weekly staffing plan and schedule metadata.
package roster

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

// MalformedInputError is returned when the record list does not have the expected shape or values
type MalformedInputError struct {
	Record int
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Field == "" {
		return "malformed input: " + e.Reason
	}
	return fmt.Sprintf("malformed input: record %d field %q: %s", e.Record, e.Field, e.Reason)
}

// Model is the typed input of one scheduling run
type Model struct {
	Workers []models.Worker
	Plan    models.WeeklyStaffingPlan
	Meta    models.Metadata
}

// Build converts records into a Model. The first record carries the metadata,
// the last one the seven weekly counts (Monday first), everything in between is a worker.
func Build(records []models.Record, cal models.CalendarContext) (*Model, error) {
	if len(records) < 2 {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("expected at least 2 records, got %d", len(records))}
	}

	last := len(records) - 1
	plan, err := parsePlan(last, records[last].Week)
	if err != nil {
		return nil, err
	}

	workers := make([]models.Worker, 0, last-1)
	for i, rec := range records[1:last] {
		pos := i + 1

		target, err := strconv.Atoi(strings.TrimSpace(string(rec.Days)))
		if err != nil || target < 0 {
			return nil, &MalformedInputError{Record: pos, Field: "days", Reason: fmt.Sprintf("%q is not a non-negative integer", rec.Days)}
		}

		offDays, err := ParseOffDays(rec.Personal, cal.DaysInMonth)
		if err != nil {
			return nil, &MalformedInputError{Record: pos, Field: "personal", Reason: err.Error()}
		}

		name := strings.TrimSpace(rec.Name)
		if name == "" {
			name = fmt.Sprintf("Worker %d", i+1)
		}

		workers = append(workers, models.Worker{
			Index:         i,
			Name:          name,
			OffDays:       offDays,
			TargetDaysOff: target,
		})
	}

	return &Model{
		Workers: workers,
		Plan:    plan,
		Meta: models.Metadata{
			Author:       records[0].Creator,
			Organization: records[0].FirmName,
		},
	}, nil
}

// ParseOffDays parses a comma separated list of day numbers in 1..daysInMonth.
// An empty field yields no days; duplicates are collapsed.
func ParseOffDays(field string, daysInMonth int) ([]int, error) {
	if strings.TrimSpace(field) == "" {
		return []int{}, nil
	}

	seen := make(map[int]bool)
	var days []int
	for _, tok := range strings.Split(field, ",") {
		tok = strings.TrimSpace(tok)
		day, err := strconv.Atoi(tok)
		if err != nil || day < 1 || day > daysInMonth {
			return nil, fmt.Errorf("%q is not a day between 1 and %d", tok, daysInMonth)
		}
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Ints(days)
	return days, nil
}

func parsePlan(pos int, week []int) (models.WeeklyStaffingPlan, error) {
	var plan models.WeeklyStaffingPlan
	if len(week) != len(plan) {
		return plan, &MalformedInputError{Record: pos, Field: "week", Reason: fmt.Sprintf("expected 7 counts, got %d", len(week))}
	}
	for i, n := range week {
		if n < 0 {
			return plan, &MalformedInputError{Record: pos, Field: "week", Reason: fmt.Sprintf("negative count %d at position %d", n, i)}
		}
		plan[i] = n
	}
	return plan, nil
}
