package scheduler

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

func newTestScheduler(workers []models.Worker, plan models.WeeklyStaffingPlan, cal models.CalendarContext, seed int64, opts ...Option) *Scheduler {
	opts = append([]Option{WithRand(rand.New(rand.NewSource(seed)))}, opts...)
	return NewScheduler(workers, plan, cal, opts...)
}

func everyDay(n int) models.WeeklyStaffingPlan {
	return models.WeeklyStaffingPlan{n, n, n, n, n, n, n}
}

func randomRoster(r *rand.Rand, n, days int) []models.Worker {
	workers := make([]models.Worker, n)
	for i := range workers {
		var off []int
		for d := 1; d <= days; d++ {
			if r.Intn(8) == 0 {
				off = append(off, d)
			}
		}
		workers[i] = models.Worker{
			Index:         i,
			Name:          fmt.Sprintf("w%d", i),
			OffDays:       off,
			TargetDaysOff: r.Intn(days + 1),
		}
	}
	return workers
}

func TestRun_ThreeWorkers(t *testing.T) {
	week := models.CalendarContext{DaysInMonth: 7, StartWeekday: 0}

	for seed := int64(1); seed <= 50; seed++ {
		workers := []models.Worker{
			{Index: 0, Name: "A", OffDays: []int{1}, TargetDaysOff: 2},
			{Index: 1, Name: "B", TargetDaysOff: 2},
			{Index: 2, Name: "C", TargetDaysOff: 3},
		}
		s := newTestScheduler(workers, everyDay(1), week, seed)

		s.allocateDays()
		if s.Grid.At(0, 0) != models.Off {
			t.Fatalf("seed %d: expected A to be off on day 1", seed)
		}
		if s.Grid.At(1, 0) == s.Grid.At(2, 0) {
			t.Fatalf("seed %d: expected exactly one of B/C working on day 1", seed)
		}
		for day := 0; day < 7; day++ {
			if got := s.Grid.CountDay(day, models.Working); got != 1 {
				t.Fatalf("seed %d: expected 1 worker on day %d, got %d", seed, day+1, got)
			}
		}

		s.balanceDaysOff()
		for w, expected := range []int{2, 2, 3} {
			if got := s.Grid.CountWorker(w, models.Off); got != expected {
				t.Errorf("seed %d: expected %s to have %d days off, got %d", seed, workers[w].Name, expected, got)
			}
		}

		s.flagShortfalls()
		for day := 0; day < 7; day++ {
			covered := s.Grid.CountDay(day, models.Working) >= 1
			flagged := s.Grid.CountDay(day, models.Understaffed)
			if covered && flagged != 0 {
				t.Errorf("seed %d: day %d is covered but has %d understaffed cells", seed, day+1, flagged)
			}
			if !covered && flagged != 3 {
				t.Errorf("seed %d: day %d is short but only %d cells are flagged", seed, day+1, flagged)
			}
		}
	}
}

func TestRun_SingleWorkerUnderstaffed(t *testing.T) {
	workers := []models.Worker{{Index: 0, Name: "Solo", TargetDaysOff: 2}}
	s := newTestScheduler(workers, everyDay(2), models.CalendarContext{DaysInMonth: 7}, 7)

	grid := s.Run()

	shortfalls := s.Shortfalls()
	if len(shortfalls) != 7 {
		t.Fatalf("Expected every day to be short, got %d shortfalls", len(shortfalls))
	}
	for _, sf := range shortfalls {
		if sf.Required != 2 || sf.Working > 1 {
			t.Errorf("Unexpected shortfall %+v", sf)
		}
	}
	if grid.CountWorker(0, models.Off) != 0 {
		t.Errorf("Expected no plain Off cells on understaffed days")
	}
	if got := grid.CountWorker(0, models.Understaffed); got != 2 {
		t.Errorf("Expected 2 understaffed cells, got %d", got)
	}
	if got := grid.CountWorker(0, models.Working); got != 5 {
		t.Errorf("Expected 5 working cells, got %d", got)
	}
}

func TestAllocate_WorkdayCapAtMonthStart(t *testing.T) {
	workers := []models.Worker{{Index: 0, Name: "Solo"}}
	s := newTestScheduler(workers, everyDay(1), models.CalendarContext{DaysInMonth: 12}, 1)

	s.allocateDays()

	W, O := models.Working, models.Off
	expected := []models.CellState{W, W, W, W, W, O, W, W, W, W, W, O}
	if row := s.Grid.Row(0); !reflect.DeepEqual(row, expected) {
		t.Errorf("Expected %v, got %v", expected, row)
	}
}

func TestAllocate_WorkdayCapWindow(t *testing.T) {
	cal := models.CalendarContext{DaysInMonth: 31, StartWeekday: 3}
	plan := models.WeeklyStaffingPlan{4, 4, 5, 5, 6, 2, 1}

	for seed := int64(1); seed <= 30; seed++ {
		r := rand.New(rand.NewSource(seed))
		s := newTestScheduler(randomRoster(r, 6, 31), plan, cal, seed)
		s.allocateDays()

		for w := range s.Workers {
			for day := 0; day < 31; day++ {
				if s.Grid.At(w, day) != models.Working {
					continue
				}
				if prior := s.Grid.CountRange(w, day-5, day, models.Working); prior >= WorkdayCap {
					t.Fatalf("seed %d: worker %d works day %d after %d workdays", seed, w, day+1, prior)
				}
			}
		}
	}
}

func TestAllocate_ExplicitOffDays(t *testing.T) {
	cal := models.CalendarContext{DaysInMonth: 30, StartWeekday: 6}
	plan := models.WeeklyStaffingPlan{3, 3, 3, 3, 3, 5, 5}

	for seed := int64(1); seed <= 30; seed++ {
		r := rand.New(rand.NewSource(seed))
		workers := randomRoster(r, 5, 30)
		s := newTestScheduler(workers, plan, cal, seed)
		s.allocateDays()

		for w, worker := range workers {
			for _, day := range worker.OffDays {
				if s.Grid.At(w, day-1) == models.Working {
					t.Fatalf("seed %d: worker %d scheduled on explicit off day %d", seed, w, day)
				}
			}
		}
	}
}

func TestAllocate_MeetsRequirement(t *testing.T) {
	workers := make([]models.Worker, 10)
	for i := range workers {
		workers[i] = models.Worker{Index: i, Name: fmt.Sprintf("w%d", i)}
	}
	cal := models.CalendarContext{DaysInMonth: 31, StartWeekday: 2}
	plan := models.WeeklyStaffingPlan{3, 2, 3, 1, 3, 2, 0}

	for seed := int64(1); seed <= 20; seed++ {
		s := newTestScheduler(workers, plan, cal, seed)
		s.allocateDays()

		for day := 0; day < 31; day++ {
			if got, want := s.Grid.CountDay(day, models.Working), s.Required(day); got != want {
				t.Fatalf("seed %d: day %d has %d workers, expected %d", seed, day+1, got, want)
			}
		}
	}
}

func TestAllocate_MoreRequiredThanWorkers(t *testing.T) {
	workers := []models.Worker{{Index: 0, Name: "a"}, {Index: 1, Name: "b"}}
	s := newTestScheduler(workers, everyDay(4), models.CalendarContext{DaysInMonth: 14}, 3)
	s.allocateDays()

	for day := 0; day < 14; day++ {
		if got := s.Grid.CountDay(day, models.Working); got > len(workers) {
			t.Errorf("day %d has %d workers out of %d", day+1, got, len(workers))
		}
	}
	if s.Grid.CountDay(0, models.Working) != 2 {
		t.Errorf("Expected both workers on day 1")
	}
}

func TestBalance_TargetsMetExactly(t *testing.T) {
	cal := models.CalendarContext{DaysInMonth: 28, StartWeekday: 0}
	plan := models.WeeklyStaffingPlan{2, 3, 3, 3, 3, 1, 1}

	for seed := int64(1); seed <= 30; seed++ {
		r := rand.New(rand.NewSource(seed))
		workers := randomRoster(r, 4, 28)
		s := newTestScheduler(workers, plan, cal, seed)
		s.allocateDays()
		s.balanceDaysOff()

		for w, worker := range workers {
			if got := s.Grid.CountWorker(w, models.Off); got != worker.TargetDaysOff {
				t.Fatalf("seed %d: worker %d has %d days off, expected %d", seed, w, got, worker.TargetDaysOff)
			}
		}
	}
}

// Legacy balancing may schedule a worker on a day they asked off;
// strict balancing never does and leaves the target unmet instead.
func TestRun_ExplicitOffDaysDuringBalancing(t *testing.T) {
	cal := models.CalendarContext{DaysInMonth: 10}
	worker := models.Worker{Index: 0, Name: "Solo", OffDays: []int{1, 2, 3}, TargetDaysOff: 0}

	legacy := newTestScheduler([]models.Worker{worker}, everyDay(1), cal, 5)
	grid := legacy.Run()
	if got := grid.CountWorker(0, models.Working); got != 10 {
		t.Errorf("legacy: expected every day worked, got %d", got)
	}
	if len(legacy.Shortfalls()) != 0 {
		t.Errorf("legacy: expected no shortfalls, got %v", legacy.Shortfalls())
	}

	strict := newTestScheduler([]models.Worker{worker}, everyDay(1), cal, 5, WithStrictOffDays(true))
	grid = strict.Run()
	for day := 0; day < 3; day++ {
		if grid.At(0, day) != models.Understaffed {
			t.Errorf("strict: expected day %d to stay off and be flagged, got %v", day+1, grid.At(0, day))
		}
	}
	if got := grid.CountWorker(0, models.Working); got != 7 {
		t.Errorf("strict: expected 7 worked days, got %d", got)
	}

	days := []int{}
	for _, sf := range strict.Shortfalls() {
		days = append(days, sf.Day)
	}
	if !reflect.DeepEqual(days, []int{1, 2, 3}) {
		t.Errorf("strict: expected shortfalls on days 1-3, got %v", days)
	}
}

func TestRun_StrictNeverSchedulesExplicitOffDays(t *testing.T) {
	cal := models.CalendarContext{DaysInMonth: 31, StartWeekday: 4}
	plan := models.WeeklyStaffingPlan{2, 2, 2, 2, 2, 3, 3}

	for seed := int64(1); seed <= 30; seed++ {
		r := rand.New(rand.NewSource(seed))
		workers := randomRoster(r, 5, 31)
		grid := newTestScheduler(workers, plan, cal, seed, WithStrictOffDays(true)).Run()

		for w, worker := range workers {
			for _, day := range worker.OffDays {
				if grid.At(w, day-1) == models.Working {
					t.Fatalf("seed %d: worker %d scheduled on explicit off day %d", seed, w, day)
				}
			}
		}
	}
}

func TestRun_FlagsOnlyShortDays(t *testing.T) {
	cal := models.CalendarContext{DaysInMonth: 30, StartWeekday: 1}
	plan := models.WeeklyStaffingPlan{3, 3, 4, 4, 4, 2, 2}

	for seed := int64(1); seed <= 30; seed++ {
		r := rand.New(rand.NewSource(seed))
		s := newTestScheduler(randomRoster(r, 5, 30), plan, cal, seed)
		grid := s.Run()

		short := map[int]bool{}
		for _, sf := range s.Shortfalls() {
			short[sf.Day] = true
		}

		for day := 0; day < 30; day++ {
			working := grid.CountDay(day, models.Working)
			flagged := grid.CountDay(day, models.Understaffed)
			if working < s.Required(day) {
				if flagged != len(s.Workers)-working || !short[day+1] {
					t.Fatalf("seed %d: short day %d not fully flagged", seed, day+1)
				}
			} else if flagged != 0 || short[day+1] {
				t.Fatalf("seed %d: staffed day %d has understaffed cells", seed, day+1)
			}
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	cal := models.CalendarContext{DaysInMonth: 31, StartWeekday: 2}
	workers := randomRoster(rand.New(rand.NewSource(42)), 6, 31)
	plan := models.WeeklyStaffingPlan{2, 2, 3, 3, 3, 1, 1}

	a := newTestScheduler(workers, plan, cal, 99)
	b := newTestScheduler(workers, plan, cal, 99)
	ga, gb := a.Run(), b.Run()

	for w := range workers {
		if !reflect.DeepEqual(ga.Row(w), gb.Row(w)) {
			t.Fatalf("Row %d differs between runs with the same seed", w)
		}
	}

	before := ga.Row(0)
	if again := a.Run(); !reflect.DeepEqual(again.Row(0), before) {
		t.Errorf("Second Run changed the grid")
	}
}

func TestScores(t *testing.T) {
	empty := newTestScheduler(nil, everyDay(1), models.CalendarContext{DaysInMonth: 7}, 1)
	empty.Run()
	if empty.CoverageScore() != 0 {
		t.Errorf("Expected 0 coverage without workers, got %f", empty.CoverageScore())
	}
	if empty.FairnessScore() != 100 {
		t.Errorf("Expected 100 fairness without workers, got %f", empty.FairnessScore())
	}
	if len(empty.Shortfalls()) != 7 {
		t.Errorf("Expected 7 shortfalls, got %d", len(empty.Shortfalls()))
	}

	idle := newTestScheduler([]models.Worker{{Index: 0, Name: "a", TargetDaysOff: 7}}, everyDay(0), models.CalendarContext{DaysInMonth: 7}, 1)
	idle.Run()
	if idle.CoverageScore() != 100 {
		t.Errorf("Expected full coverage when nothing is required, got %f", idle.CoverageScore())
	}

	workers := []models.Worker{{Index: 0, Name: "a"}, {Index: 1, Name: "b"}}
	s := newTestScheduler(workers, everyDay(1), models.CalendarContext{DaysInMonth: 7}, 1)
	s.Grid.Set(0, 0, models.Working)
	s.Grid.Set(1, 1, models.Working)
	if s.FairnessScore() != 100 {
		t.Errorf("Expected 100 fairness for equal workdays, got %f", s.FairnessScore())
	}
	if got := s.CoverageScore(); got < 28.5 || got > 28.6 {
		t.Errorf("Expected 2/7 coverage, got %f", got)
	}
}
