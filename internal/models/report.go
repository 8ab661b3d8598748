package models

// MTBF states.
const (
	MTBFOK        = "ok"
	MTBFUndefined = "undefined" // fewer than two failures
	MTBFInvalid   = "invalid"   // negative operational time
)

// Report statuses.
const (
	StatusOK     = "ok"
	StatusNoData = "no_data"
)

// MetricsResult holds the reliability figures for one IntervalSet.
// MTBFHours is nil unless MTBFStatus is MTBFOK.
type MetricsResult struct {
	FailureCount           int      `json:"failure_count"`
	IntervalCount          int      `json:"interval_count"`
	MTTRHours              float64  `json:"mttr_hours"`
	TotalRepairHours       float64  `json:"total_repair_hours"`
	ObservationPeriodHours float64  `json:"observation_period_hours"`
	TotalOperationalHours  float64  `json:"total_operational_hours"`
	MTBFHours              *float64 `json:"mtbf_hours,omitempty"`
	MTBFStatus             string   `json:"mtbf_status"`
}

// Report is the full response of one calculation request.
type Report struct {
	CalculationID string         `json:"calculation_id,omitempty"`
	Status        string         `json:"status"`
	Intervals     []IntervalView `json:"intervals"`
	Metrics       *MetricsResult `json:"metrics,omitempty"`
	Diagnostics   []Diagnostic   `json:"diagnostics"`
}
