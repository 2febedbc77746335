package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/arnavshah/roster-api-go/pkg/calendar"
	"github.com/arnavshah/roster-api-go/pkg/models"
	"github.com/arnavshah/roster-api-go/pkg/output"
	"github.com/arnavshah/roster-api-go/pkg/roster"
	"github.com/arnavshah/roster-api-go/pkg/scheduler"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RosterService runs complete roster generations
type RosterService struct {
	Calendar      *calendar.Calendar
	StrictOffDays bool
	Log           *logrus.Logger
	Now           func() time.Time
}

// NewRosterService creates a service with the given weekday names and default strictness
func NewRosterService(names [7]string, strict bool, log *logrus.Logger) *RosterService {
	return &RosterService{
		Calendar:      calendar.New(names),
		StrictOffDays: strict,
		Log:           log,
		Now:           time.Now,
	}
}

// Prepared is a validated input ready to be scheduled
type Prepared struct {
	Year     int
	Month    int
	Calendar models.CalendarContext
	Model    *roster.Model
}

// Prepare resolves the target month and builds the typed model.
// A request without year and month targets the month after now.
func (s *RosterService) Prepare(input models.RosterInput) (*Prepared, error) {
	year, month := input.Year, input.Month
	if year == 0 && month == 0 {
		year, month = calendar.NextMonth(s.Now())
	}

	cal, err := calendar.Compute(year, month)
	if err != nil {
		return nil, err
	}

	model, err := roster.Build(input.Records, cal)
	if err != nil {
		return nil, err
	}

	return &Prepared{Year: year, Month: month, Calendar: cal, Model: model}, nil
}

// Generate schedules one month and assembles the labelled result
func (s *RosterService) Generate(input models.RosterInput) (*models.RosterResponse, error) {
	p, err := s.Prepare(input)
	if err != nil {
		return nil, err
	}

	strict := s.StrictOffDays
	if input.StrictOffDays != nil {
		strict = *input.StrictOffDays
	}
	opts := []scheduler.Option{scheduler.WithStrictOffDays(strict)}
	if input.Seed != nil {
		opts = append(opts, scheduler.WithRand(rand.New(rand.NewSource(*input.Seed))))
	}

	sched := scheduler.NewScheduler(p.Model.Workers, p.Model.Plan, p.Calendar, opts...)
	grid := sched.Run()

	table, err := output.Assemble(grid, p.Model.Workers, s.Calendar.Labels(p.Calendar), p.Model.Meta)
	if err != nil {
		return nil, fmt.Errorf("assemble roster: %w", err)
	}

	resp := &models.RosterResponse{
		RunID:         uuid.NewString(),
		Year:          p.Year,
		Month:         p.Month,
		Columns:       table.Columns,
		Rows:          table.Rows,
		Shortfalls:    sched.Shortfalls(),
		CoverageScore: sched.CoverageScore(),
		FairnessScore: sched.FairnessScore(),
	}

	s.Log.WithFields(logrus.Fields{
		"run_id":       resp.RunID,
		"month":        fmt.Sprintf("%04d-%02d", p.Year, p.Month),
		"workers":      len(p.Model.Workers),
		"days":         p.Calendar.DaysInMonth,
		"understaffed": len(resp.Shortfalls),
		"strict":       strict,
	}).Info("Roster generated")

	return resp, nil
}
