package main

import (
	"fmt"
	"io"

	"github.com/arnavshah/roster-api-go/pkg/calendar"
	"github.com/arnavshah/roster-api-go/pkg/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func render(w io.Writer, resp *models.RosterResponse, cal *calendar.Calendar) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.SetTitle(fmt.Sprintf("Roster %04d-%02d", resp.Year, resp.Month))

	header := table.Row{""}
	for _, c := range resp.Columns {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for i, row := range resp.Rows {
		if i == len(resp.Rows)-1 {
			t.AppendSeparator()
		}
		r := table.Row{row.Label}
		for _, cell := range row.Cells {
			r = append(r, cell)
		}
		t.AppendRow(r)
	}
	t.Render()

	if len(resp.Shortfalls) == 0 {
		fmt.Fprintf(w, "All days staffed. Fairness %.1f%%\n", resp.FairnessScore)
		return
	}
	fmt.Fprintf(w, "Understaffed days (coverage %.1f%%):\n", resp.CoverageScore)
	for _, sf := range resp.Shortfalls {
		fmt.Fprintf(w, "  %2d %s: %d of %d\n", sf.Day, cal.WeekdayName(sf.Weekday), sf.Working, sf.Required)
	}
}
