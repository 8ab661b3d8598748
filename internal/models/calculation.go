package models

import "time"

// Calculation is the audit summary of one computation. It never carries the
// submitted intervals themselves.
type Calculation struct {
	ID           string         `json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	Status       string         `json:"status"`
	FailureCount int            `json:"failure_count"`
	MTTRHours    *float64       `json:"mttr_hours,omitempty"`
	MTBFHours    *float64       `json:"mtbf_hours,omitempty"`
	MTBFStatus   string         `json:"mtbf_status,omitempty"`
	Diagnostics  map[string]int `json:"diagnostics,omitempty"` // code -> count
}
