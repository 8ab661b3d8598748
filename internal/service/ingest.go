package service

import (
	"errors"
	"fmt"
	"strings"

	"reliability_calc/internal/models"
)

// Required table column names.
const (
	ColumnStartTime = "Start Time"
	ColumnEndTime   = "End Time"
)

const utf8BOM = "\ufeff"

// ManualEntry is one manually entered pair; either field may still be empty.
type ManualEntry struct {
	Start string `json:"start" form:"start"`
	End   string `json:"end" form:"end"`
}

// CalculationInput is everything one calculation request supplies.
// TableErr records an upload that could not be read as a table at all.
type CalculationInput struct {
	Manual   []ManualEntry
	Table    *models.Table
	TableErr error
}

// IngestManual validates manual entries one by one. Incomplete entries are
// skipped, invalid ones produce a per-record diagnostic.
func IngestManual(entries []ManualEntry) ([]models.FailureInterval, []models.Diagnostic) {
	var (
		out   []models.FailureInterval
		diags []models.Diagnostic
	)
	for i, e := range entries {
		res := SubmitManualInterval(i, e.Start, e.End)
		switch res.Status {
		case ParseAccepted:
			out = append(out, *res.Interval)
		case ParseRejected:
			diags = append(diags, *res.Diagnostic)
		}
	}
	return out, diags
}

// SubmitTable validates an uploaded table. A table missing a required column
// contributes nothing. Bad rows are dropped and reported as counts.
func SubmitTable(t *models.Table) ([]models.FailureInterval, []models.Diagnostic) {
	if t == nil {
		return nil, nil
	}
	startCol, endCol, err := locateColumns(t.Columns)
	if err != nil {
		return nil, []models.Diagnostic{{
			Severity: models.SeverityError,
			Code:     models.CodeStructuralError,
			Source:   models.SourceTable,
			Index:    -1,
			Message:  err.Error(),
		}}
	}

	var (
		out         []models.FailureInterval
		unparseable int
		misordered  int
	)
	for i, row := range t.Rows {
		rec := models.RawRecord{Source: models.SourceTable, Index: i}
		if startCol < len(row) {
			rec.Start = row[startCol]
		}
		if endCol < len(row) {
			rec.End = row[endCol]
		}
		iv, err := ParseRecord(rec)
		if err != nil {
			var oe *OrderingError
			if errors.As(err, &oe) {
				misordered++
			} else {
				unparseable++
			}
			continue
		}
		out = append(out, iv)
	}

	var diags []models.Diagnostic
	if unparseable > 0 {
		diags = append(diags, models.Diagnostic{
			Severity: models.SeverityWarning,
			Code:     models.CodeRowsDropped,
			Source:   models.SourceTable,
			Index:    -1,
			Message: fmt.Sprintf("%d of %d table rows dropped: timestamps must use YYYY-MM-DD HH:MM:SS",
				unparseable, len(t.Rows)),
		})
	}
	if misordered > 0 {
		diags = append(diags, models.Diagnostic{
			Severity: models.SeverityWarning,
			Code:     models.CodeOrderingError,
			Source:   models.SourceTable,
			Index:    -1,
			Message: fmt.Sprintf("%d of %d table rows dropped: %s is before %s",
				misordered, len(t.Rows), ColumnEndTime, ColumnStartTime),
		})
	}
	return out, diags
}

// unreadableTable reports an upload that never became a table.
func unreadableTable(err error) []models.Diagnostic {
	return []models.Diagnostic{{
		Severity: models.SeverityError,
		Code:     models.CodeStructuralError,
		Source:   models.SourceTable,
		Index:    -1,
		Message:  "uploaded table ignored: " + err.Error(),
	}}
}

// locateColumns returns the positions of the required columns.
func locateColumns(cols []string) (int, int, error) {
	startCol, endCol := -1, -1
	for i, c := range cols {
		if i == 0 {
			c = strings.TrimPrefix(c, utf8BOM)
		}
		switch c {
		case ColumnStartTime:
			if startCol < 0 {
				startCol = i
			}
		case ColumnEndTime:
			if endCol < 0 {
				endCol = i
			}
		}
	}
	var missing []string
	if startCol < 0 {
		missing = append(missing, ColumnStartTime)
	}
	if endCol < 0 {
		missing = append(missing, ColumnEndTime)
	}
	if len(missing) > 0 {
		return -1, -1, &StructuralError{Missing: missing}
	}
	return startCol, endCol, nil
}
