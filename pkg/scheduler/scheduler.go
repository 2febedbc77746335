package scheduler

import (
	"math"
	"math/rand"
	"time"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

const (
	// WorkdayCap is the number of Working marks in the trailing window that forces a day off
	WorkdayCap = 5
	// capWindow is the length of the trailing window in days
	capWindow = 5
)

// Option configures a Scheduler
type Option func(*Scheduler)

// WithRand sets the random source used for tie-breaking
func WithRand(r *rand.Rand) Option {
	return func(s *Scheduler) {
		s.rng = r
	}
}

// WithStrictOffDays keeps explicit off days Off during balancing.
// When false (the default) balancing may turn any Off cell back into Working.
func WithStrictOffDays(strict bool) Option {
	return func(s *Scheduler) {
		s.Strict = strict
	}
}

// Scheduler assigns workers to the days of one month
type Scheduler struct {
	Workers  []models.Worker
	Plan     models.WeeklyStaffingPlan
	Calendar models.CalendarContext
	Grid     *models.ScheduleGrid
	Strict   bool

	rng        *rand.Rand
	explicit   [][]bool
	shortfalls []models.Shortfall
	done       bool
}

// NewScheduler creates a new scheduler instance owning a fresh grid
func NewScheduler(workers []models.Worker, plan models.WeeklyStaffingPlan, cal models.CalendarContext, opts ...Option) *Scheduler {
	s := &Scheduler{
		Workers:  workers,
		Plan:     plan,
		Calendar: cal,
		Grid:     models.NewScheduleGrid(len(workers), cal.DaysInMonth),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.explicit = make([][]bool, len(workers))
	for w, worker := range workers {
		s.explicit[w] = make([]bool, cal.DaysInMonth)
		for _, day := range worker.OffDays {
			if day >= 1 && day <= cal.DaysInMonth {
				s.explicit[w][day-1] = true
			}
		}
	}
	return s
}

// Run executes allocation, balancing and shortfall flagging once and returns the grid.
// Calling Run again returns the same grid without re-running any phase.
func (s *Scheduler) Run() *models.ScheduleGrid {
	if s.done {
		return s.Grid
	}
	s.allocateDays()
	s.balanceDaysOff()
	s.flagShortfalls()
	s.done = true
	return s.Grid
}

// Required returns the headcount needed on a zero-based day
func (s *Scheduler) Required(day int) int {
	return s.Plan.Required(s.Calendar.Weekday(day))
}

// allocateDays fills the grid day by day, respecting explicit off days and the workday cap
func (s *Scheduler) allocateDays() {
	for day := 0; day < s.Calendar.DaysInMonth; day++ {
		required := s.Required(day)

		pool := make([]int, 0, len(s.Workers))
		for w := range s.Workers {
			switch {
			case s.explicit[w][day]:
				s.Grid.Set(w, day, models.Off)
			case s.Grid.CountRange(w, day-capWindow, day, models.Working) >= WorkdayCap:
				s.Grid.Set(w, day, models.Off)
			default:
				pool = append(pool, w)
			}
		}

		s.shuffle(pool)
		for i, w := range pool {
			if i < required {
				s.Grid.Set(w, day, models.Working)
			} else {
				s.Grid.Set(w, day, models.Off)
			}
		}

		short := required - s.Grid.CountDay(day, models.Working)
		if short <= 0 {
			continue
		}
		var spare []int
		for _, w := range pool {
			if s.Grid.At(w, day) != models.Working {
				spare = append(spare, w)
			}
		}
		for _, w := range s.pick(spare, short) {
			s.Grid.Set(w, day, models.Working)
		}
	}
}

// balanceDaysOff moves each worker's Off count onto their target
func (s *Scheduler) balanceDaysOff() {
	for w, worker := range s.Workers {
		off := s.Grid.CountWorker(w, models.Off)

		switch {
		case off < worker.TargetDaysOff:
			var working []int
			for day := 0; day < s.Calendar.DaysInMonth; day++ {
				if s.Grid.At(w, day) == models.Working {
					working = append(working, day)
				}
			}
			for _, day := range s.pick(working, worker.TargetDaysOff-off) {
				s.Grid.Set(w, day, models.Off)
			}

		case off > worker.TargetDaysOff:
			var rest []int
			for day := 0; day < s.Calendar.DaysInMonth; day++ {
				if s.Grid.At(w, day) != models.Off {
					continue
				}
				if s.Strict && s.explicit[w][day] {
					continue
				}
				rest = append(rest, day)
			}
			for _, day := range s.pick(rest, off-worker.TargetDaysOff) {
				s.Grid.Set(w, day, models.Working)
			}
		}
	}
}

// flagShortfalls marks every non-working cell of an understaffed day
func (s *Scheduler) flagShortfalls() {
	s.shortfalls = nil
	for day := 0; day < s.Calendar.DaysInMonth; day++ {
		required := s.Required(day)
		working := s.Grid.CountDay(day, models.Working)
		if working >= required {
			continue
		}

		for w := range s.Workers {
			if s.Grid.At(w, day) != models.Working {
				s.Grid.Set(w, day, models.Understaffed)
			}
		}
		s.shortfalls = append(s.shortfalls, models.Shortfall{
			Day:      day + 1,
			Weekday:  s.Calendar.Weekday(day),
			Required: required,
			Working:  working,
		})
	}
}

// Shortfalls lists the understaffed days found by the last run
func (s *Scheduler) Shortfalls() []models.Shortfall {
	return append([]models.Shortfall(nil), s.shortfalls...)
}

// CoverageScore returns the percentage (0-100) of required slots that were filled
func (s *Scheduler) CoverageScore() float64 {
	required, filled := 0, 0
	for day := 0; day < s.Calendar.DaysInMonth; day++ {
		r := s.Required(day)
		required += r
		filled += min(r, s.Grid.CountDay(day, models.Working))
	}
	if required == 0 {
		return 100.0
	}
	return float64(filled) / float64(required) * 100.0
}

// FairnessScore returns a percentage (0-100) representing how evenly
// workdays are distributed. 100% is perfectly fair (Standard Deviation = 0).
func (s *Scheduler) FairnessScore() float64 {
	if len(s.Workers) == 0 {
		return 100.0
	}

	var sum float64
	for w := range s.Workers {
		sum += float64(s.Grid.CountWorker(w, models.Working))
	}
	if sum == 0 {
		return 100.0
	}

	mean := sum / float64(len(s.Workers))

	var varianceSum float64
	for w := range s.Workers {
		diff := float64(s.Grid.CountWorker(w, models.Working)) - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(s.Workers)))

	score := (1.0 - (stdDev / mean)) * 100.0
	if score < 0 {
		return 0.0
	}
	return score
}

func (s *Scheduler) shuffle(xs []int) {
	s.rng.Shuffle(len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}

// pick returns up to n elements of xs chosen uniformly at random
func (s *Scheduler) pick(xs []int, n int) []int {
	s.shuffle(xs)
	n = max(0, min(n, len(xs)))
	return xs[:n]
}
