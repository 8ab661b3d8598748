package service

import (
	"errors"
	"fmt"

	"reliability_calc/internal/models"
)

// ComputeMetrics derives MTTR and MTBF from an ordered, duplicate-free set.
// It returns nil metrics and ErrNoData for an empty set. A negative
// operational time yields a *NegativeUptimeError and an invalid MTBF, while
// MTTR is still reported.
func ComputeMetrics(set []models.FailureInterval) (*models.MetricsResult, error) {
	n := len(set)
	if n == 0 {
		return nil, ErrNoData
	}

	var repairSecs int64
	minStart, maxEnd := set[0].Start, set[0].End
	for _, iv := range set {
		repairSecs += iv.End.Unix() - iv.Start.Unix()
		if iv.Start.Before(minStart) {
			minStart = iv.Start
		}
		if iv.End.After(maxEnd) {
			maxEnd = iv.End
		}
	}

	// Totals stay in whole seconds; hours are derived for reporting only.
	obsSecs := maxEnd.Unix() - minStart.Unix()
	opSecs := obsSecs - repairSecs

	totalRepair := secondsToHours(repairSecs)
	observation := secondsToHours(obsSecs)
	res := &models.MetricsResult{
		FailureCount:           n,
		IntervalCount:          n - 1,
		MTTRHours:              totalRepair / float64(n),
		TotalRepairHours:       totalRepair,
		ObservationPeriodHours: observation,
		TotalOperationalHours:  secondsToHours(opSecs),
	}

	if n < 2 {
		res.MTBFStatus = models.MTBFUndefined
		return res, nil
	}
	if opSecs < 0 {
		res.MTBFStatus = models.MTBFInvalid
		return res, &NegativeUptimeError{ObservationHours: observation, RepairHours: totalRepair}
	}
	mtbf := res.TotalOperationalHours / float64(n-1)
	res.MTBFHours = &mtbf
	res.MTBFStatus = models.MTBFOK
	return res, nil
}

// secondsToHours converts Unix-second differences directly, avoiding
// time.Duration which saturates at roughly 292 years.
func secondsToHours(secs int64) float64 {
	return float64(secs) / 3600
}

// metricsDiagnostics turns the engine outcome into user-facing messages.
func metricsDiagnostics(res *models.MetricsResult, err error) []models.Diagnostic {
	var nue *NegativeUptimeError
	switch {
	case errors.Is(err, ErrNoData):
		return []models.Diagnostic{{
			Severity: models.SeverityInfo,
			Code:     models.CodeNoData,
			Index:    -1,
			Message:  err.Error(),
		}}
	case errors.As(err, &nue):
		return []models.Diagnostic{{
			Severity: models.SeverityError,
			Code:     models.CodeNegativeUptime,
			Index:    -1,
			Message:  err.Error(),
		}}
	case res != nil && res.MTBFStatus == models.MTBFUndefined:
		return []models.Diagnostic{{
			Severity: models.SeverityInfo,
			Code:     models.CodeMTBFUndefined,
			Index:    -1,
			Message:  fmt.Sprintf("MTBF needs at least 2 failure records, have %d", res.FailureCount),
		}}
	}
	return nil
}
