package output

import (
	"errors"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

// MetadataLabel is the row label of the trailing metadata row
const MetadataLabel = "Data"

// ErrEmptyGrid is returned when there are no day columns to attach metadata to
var ErrEmptyGrid = errors.New("schedule grid has no days")

// Assemble builds the label-indexed table for a finished grid: one row per worker,
// followed by a metadata row carrying the creator and company.
func Assemble(grid *models.ScheduleGrid, workers []models.Worker, labels []string, meta models.Metadata) (*models.Table, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyGrid
	}

	table := &models.Table{
		Columns: labels,
		Rows:    make([]models.Row, 0, len(workers)+1),
	}

	for w, worker := range workers {
		cells := make([]string, len(labels))
		for day := range cells {
			cells[day] = grid.At(w, day).Symbol()
		}
		table.Rows = append(table.Rows, models.Row{Label: worker.Name, Cells: cells})
	}

	table.Rows = append(table.Rows, MetadataRow(meta, len(labels)))
	return table, nil
}

// MetadataRow returns the creator/company row padded with blanks to width cells
func MetadataRow(meta models.Metadata, width int) models.Row {
	cells := make([]string, width)
	fields := []string{"Creator: " + meta.Author, "Company: " + meta.Organization}
	copy(cells, fields)
	return models.Row{Label: MetadataLabel, Cells: cells}
}
