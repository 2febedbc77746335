package models

import (
	"bytes"
	"encoding/json"
)

// DaysOff is a days-off target as clients send it: either a JSON number or a
// string. The raw text is kept so the roster builder can reject bad values.
type DaysOff string

// UnmarshalJSON accepts 8, "8" and null
func (d *DaysOff) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*d = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = DaysOff(s)
	default:
		*d = DaysOff(b)
	}
	return nil
}

// Record is one entry of the positional roster input: the first record carries
// Creator/FirmName, middle records carry one worker each and the last carries Week.
type Record struct {
	Creator  string  `json:"creator,omitempty"`
	FirmName string  `json:"firm_name,omitempty"`
	Name     string  `json:"name,omitempty"`
	Days     DaysOff `json:"days,omitempty"`
	Personal string  `json:"personal,omitempty"`
	Week     []int   `json:"week,omitempty"`
}

// RosterInput is the data structure for the roster endpoint
type RosterInput struct {
	Year          int      `json:"year,omitempty"`
	Month         int      `json:"month,omitempty"`
	StrictOffDays *bool    `json:"strict_off_days,omitempty"`
	Seed          *int64   `json:"seed,omitempty"`
	Records       []Record `json:"records"`
}

// Row is one labelled line of an assembled roster table
type Row struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
}

// Table is the label-indexed roster handed to renderers and exporters
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// RosterResponse is the data structure for the roster result
type RosterResponse struct {
	RunID         string      `json:"run_id"`
	Year          int         `json:"year"`
	Month         int         `json:"month"`
	Columns       []string    `json:"columns"`
	Rows          []Row       `json:"rows"`
	Shortfalls    []Shortfall `json:"shortfalls,omitempty"`
	CoverageScore float64     `json:"coverage_score"`
	FairnessScore float64     `json:"fairness_score"`
}
