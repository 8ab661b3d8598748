package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoData is reported when no valid interval survives ingestion.
var ErrNoData = errors.New("no valid failure records yet; enter at least one start/end pair or upload a table")

// ParseError is returned when a timestamp does not match TimestampLayout.
type ParseError struct {
	Field string // "start" or "end"
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s time %q: use YYYY-MM-DD HH:MM:SS", e.Field, e.Value)
}

// OrderingError is returned when a repair ends before the failure starts.
type OrderingError struct {
	Start string
	End   string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("repair end %s is before failure start %s", e.End, e.Start)
}

// StructuralError is returned when an uploaded table lacks required columns.
type StructuralError struct {
	Missing []string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("table is missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// NegativeUptimeError is returned when total repair time exceeds the
// observation period, usually because repair windows overlap.
type NegativeUptimeError struct {
	ObservationHours float64
	RepairHours      float64
}

func (e *NegativeUptimeError) Error() string {
	return fmt.Sprintf(
		"total operational time is negative (observation %.4fh, repair %.4fh); repair windows overlap, MTBF not computed",
		e.ObservationHours, e.RepairHours,
	)
}
