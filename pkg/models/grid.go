package models

// ScheduleGrid is the worker-by-day assignment table of one run
type ScheduleGrid struct {
	cells [][]CellState
}

// NewScheduleGrid creates a grid with every cell Off
func NewScheduleGrid(workers, days int) *ScheduleGrid {
	cells := make([][]CellState, workers)
	for i := range cells {
		cells[i] = make([]CellState, days)
	}
	return &ScheduleGrid{cells: cells}
}

// At returns the state of one cell
func (g *ScheduleGrid) At(worker, day int) CellState {
	return g.cells[worker][day]
}

// Set overwrites the state of one cell
func (g *ScheduleGrid) Set(worker, day int, state CellState) {
	g.cells[worker][day] = state
}

// CountDay counts the cells of a day column in the given state
func (g *ScheduleGrid) CountDay(day int, state CellState) int {
	n := 0
	for w := range g.cells {
		if g.cells[w][day] == state {
			n++
		}
	}
	return n
}

// CountWorker counts the cells of a worker row in the given state
func (g *ScheduleGrid) CountWorker(worker int, state CellState) int {
	n := 0
	for _, c := range g.cells[worker] {
		if c == state {
			n++
		}
	}
	return n
}

// CountRange counts the cells of a worker row in state over days [from, to)
func (g *ScheduleGrid) CountRange(worker, from, to int, state CellState) int {
	if from < 0 {
		from = 0
	}
	n := 0
	for d := from; d < to && d < len(g.cells[worker]); d++ {
		if g.cells[worker][d] == state {
			n++
		}
	}
	return n
}

// Row returns a copy of one worker row
func (g *ScheduleGrid) Row(worker int) []CellState {
	return append([]CellState(nil), g.cells[worker]...)
}
