package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"reliability_calc/internal/models"
)

// TimestampLayout is the only accepted timestamp format (YYYY-MM-DD HH:MM:SS).
const TimestampLayout = "2006-01-02 15:04:05"

// time.Parse tolerates an unpadded hour and trailing fractional seconds,
// so the shape is checked first.
var timestampShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

// ParseTimestamp parses s strictly against TimestampLayout, in UTC.
func ParseTimestamp(field, s string) (time.Time, error) {
	if !timestampShape.MatchString(s) {
		return time.Time{}, &ParseError{Field: field, Value: s}
	}
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Field: field, Value: s}
	}
	return t, nil
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseRecord validates one raw record. Equal start and end is a valid
// zero-duration repair.
func ParseRecord(r models.RawRecord) (models.FailureInterval, error) {
	start, err := ParseTimestamp("start", r.Start)
	if err != nil {
		return models.FailureInterval{}, err
	}
	end, err := ParseTimestamp("end", r.End)
	if err != nil {
		return models.FailureInterval{}, err
	}
	if end.Before(start) {
		return models.FailureInterval{}, &OrderingError{Start: r.Start, End: r.End}
	}
	return models.FailureInterval{Start: start, End: end, Source: r.Source, Index: r.Index}, nil
}

// ParseStatus values for ParseResult.
const (
	ParseAccepted = "accepted"
	ParseSkipped  = "skipped"
	ParseRejected = "rejected"
)

// ParseResult is the outcome of submitting one manual pair.
type ParseResult struct {
	Status     string                  `json:"status"`
	Interval   *models.FailureInterval `json:"interval,omitempty"`
	Diagnostic *models.Diagnostic      `json:"diagnostic,omitempty"`
}

// SubmitManualInterval validates one manually entered pair. A pair with an
// empty field is skipped without a diagnostic.
func SubmitManualInterval(index int, startText, endText string) ParseResult {
	if startText == "" || endText == "" {
		return ParseResult{Status: ParseSkipped}
	}
	iv, err := ParseRecord(models.RawRecord{
		Source: models.SourceManual,
		Index:  index,
		Start:  startText,
		End:    endText,
	})
	if err != nil {
		d := recordDiagnostic(models.SourceManual, index, err)
		return ParseResult{Status: ParseRejected, Diagnostic: &d}
	}
	return ParseResult{Status: ParseAccepted, Interval: &iv}
}

// recordDiagnostic converts a per-record error into a Diagnostic.
// Ordering errors are errors, malformed input is a warning.
func recordDiagnostic(src models.Source, index int, err error) models.Diagnostic {
	d := models.Diagnostic{
		Severity: models.SeverityWarning,
		Code:     models.CodeParseError,
		Source:   src,
		Index:    index,
		Message:  fmt.Sprintf("%s record #%d: %v", src, index+1, err),
	}
	var oe *OrderingError
	if errors.As(err, &oe) {
		d.Severity = models.SeverityError
		d.Code = models.CodeOrderingError
	}
	return d
}
