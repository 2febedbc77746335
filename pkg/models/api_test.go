package models

import (
	"encoding/json"
	"testing"
)

func TestRecord_DaysAcceptsNumbersAndStrings(t *testing.T) {
	body := `{"records":[
		{"creator":"c","firm_name":"f"},
		{"name":"Alice","days":8,"personal":"1"},
		{"name":"Bob","days":"9"},
		{"name":"Carol","days":-2},
		{"name":"Dan","days":null},
		{"name":"Eve","days":2.5},
		{"week":[1,1,1,1,1,1,1]}
	]}`

	var input RosterInput
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	expected := []DaysOff{"", "8", "9", "-2", "", "2.5", ""}
	for i, rec := range input.Records {
		if rec.Days != expected[i] {
			t.Errorf("record %d: expected days %q, got %q", i, expected[i], rec.Days)
		}
	}
}
