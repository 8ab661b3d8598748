package models

import "time"

// Source identifies where a raw record came from.
type Source string

const (
	SourceManual Source = "manual"
	SourceTable  Source = "table"
)

// RawRecord is one unparsed (start, end) pair, tagged for diagnostics.
type RawRecord struct {
	Source Source `json:"source"`
	Index  int    `json:"index"` // 0-based position within its source
	Start  string `json:"start"`
	End    string `json:"end"`
}

// FailureInterval is a validated failure window. End is never before Start.
type FailureInterval struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Source Source    `json:"source"`
	Index  int       `json:"index"`
}

// RepairDurationHours is (End - Start) expressed in fractional hours.
// Timestamps carry whole seconds, so the difference is taken in seconds.
func (i FailureInterval) RepairDurationHours() float64 {
	return float64(i.End.Unix()-i.Start.Unix()) / 3600
}

// IntervalView is the presentation shape of a FailureInterval.
type IntervalView struct {
	Start               string  `json:"start"`
	End                 string  `json:"end"`
	RepairDurationHours float64 `json:"repair_duration_hours"`
	Source              Source  `json:"source"`
}

// Table is an uploaded tabular input: a header row and data rows.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
