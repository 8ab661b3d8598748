package service

import (
	"context"
	"strconv"
	"time"

	"reliability_calc/internal/models"
	"reliability_calc/internal/repository"

	"github.com/google/uuid"
)

// CalculatorService runs the ingestion -> validation -> merge -> metrics
// pipeline. It keeps no state between calls; the audit repo is write-only.
type CalculatorService struct {
	calcRepo repository.CalculationRepo // nil disables the audit trail
}

func NewCalculatorService(calcRepo repository.CalculationRepo) *CalculatorService {
	return &CalculatorService{calcRepo: calcRepo}
}

// Validate checks a single manual pair without computing anything.
func (s *CalculatorService) Validate(startText, endText string) ParseResult {
	return SubmitManualInterval(0, startText, endText)
}

// Calculate always returns a report. The error is non-nil only when the
// audit record could not be written; the report is still valid then.
func (s *CalculatorService) Calculate(ctx context.Context, in CalculationInput) (models.Report, error) {
	report := BuildReport(in)
	report.CalculationID = uuid.NewString()

	if s.calcRepo == nil {
		return report, nil
	}
	return report, s.calcRepo.Append(ctx, summarize(report, time.Now().UTC()))
}

// BuildReport is the pure pipeline behind Calculate.
func BuildReport(in CalculationInput) models.Report {
	manual, diags := IngestManual(in.Manual)
	var table []models.FailureInterval
	if in.TableErr != nil {
		diags = append(diags, unreadableTable(in.TableErr)...)
	} else {
		var tableDiags []models.Diagnostic
		table, tableDiags = SubmitTable(in.Table)
		diags = append(diags, tableDiags...)
	}

	set, dups := Merge(manual, table)
	if dups > 0 {
		diags = append(diags, models.Diagnostic{
			Severity: models.SeverityInfo,
			Code:     models.CodeDuplicates,
			Index:    -1,
			Message:  pluralize(dups, "duplicate record was", "duplicate records were") + " removed",
		})
	}

	res, err := ComputeMetrics(set)
	diags = append(diags, metricsDiagnostics(res, err)...)

	report := models.Report{
		Status:      models.StatusOK,
		Intervals:   viewIntervals(set),
		Metrics:     res,
		Diagnostics: diags,
	}
	if res == nil {
		report.Status = models.StatusNoData
	}
	if report.Diagnostics == nil {
		report.Diagnostics = []models.Diagnostic{}
	}
	return report
}

func viewIntervals(set []models.FailureInterval) []models.IntervalView {
	out := make([]models.IntervalView, 0, len(set))
	for _, iv := range set {
		out = append(out, models.IntervalView{
			Start:               FormatTimestamp(iv.Start),
			End:                 FormatTimestamp(iv.End),
			RepairDurationHours: iv.RepairDurationHours(),
			Source:              iv.Source,
		})
	}
	return out
}

// summarize builds the audit record for a report. Intervals are left out.
func summarize(r models.Report, now time.Time) models.Calculation {
	c := models.Calculation{
		ID:        r.CalculationID,
		CreatedAt: now,
		Status:    r.Status,
	}
	if r.Metrics != nil {
		mttr := r.Metrics.MTTRHours
		c.FailureCount = r.Metrics.FailureCount
		c.MTTRHours = &mttr
		c.MTBFHours = r.Metrics.MTBFHours
		c.MTBFStatus = r.Metrics.MTBFStatus
	}
	if len(r.Diagnostics) > 0 {
		c.Diagnostics = make(map[string]int, len(r.Diagnostics))
		for _, d := range r.Diagnostics {
			c.Diagnostics[d.Code]++
		}
	}
	return c
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
