package models

// CellState is the value of one worker/day cell of a schedule grid
type CellState int

const (
	// Off means the worker is not scheduled that day
	Off CellState = iota
	// Working means the worker is scheduled that day
	Working
	// Understaffed marks a non-working cell on a day that did not reach its required headcount
	Understaffed
)

// Symbol returns the marker used in tabular output
func (c CellState) Symbol() string {
	switch c {
	case Working:
		return "X"
	case Understaffed:
		return "?"
	}
	return ""
}

func (c CellState) String() string {
	switch c {
	case Working:
		return "working"
	case Understaffed:
		return "understaffed"
	}
	return "off"
}

// Worker represents one roster entry
type Worker struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	OffDays       []int  `json:"off_days"`
	TargetDaysOff int    `json:"target_days_off"`
}

// WeeklyStaffingPlan holds the minimum headcount per weekday, Monday first
type WeeklyStaffingPlan [7]int

// Required returns the headcount for a weekday index (Monday=0)
func (p WeeklyStaffingPlan) Required(weekday int) int {
	return p[((weekday%7)+7)%7]
}

// CalendarContext describes the month being scheduled
type CalendarContext struct {
	DaysInMonth  int `json:"days_in_month"`
	StartWeekday int `json:"start_weekday"`
}

// Weekday returns the weekday index (Monday=0) of a zero-based day offset
func (c CalendarContext) Weekday(day int) int {
	return (day + c.StartWeekday) % 7
}

// Metadata identifies who the schedule was made by
type Metadata struct {
	Author       string `json:"creator"`
	Organization string `json:"firm_name"`
}

// Shortfall describes a day that ended below its required headcount
type Shortfall struct {
	Day      int `json:"day"`
	Weekday  int `json:"weekday"`
	Required int `json:"required"`
	Working  int `json:"working"`
}
