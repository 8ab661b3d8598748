package service

import (
	"errors"
	"testing"
	"time"

	"reliability_calc/internal/models"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	valid := []string{
		"2024-01-01 10:00:00",
		"2024-02-29 23:59:59",
		"0001-01-01 00:00:00",
		"9999-12-31 23:59:59",
	}
	for _, s := range valid {
		got, err := ParseTimestamp("start", s)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", s, err)
		}
		if FormatTimestamp(got) != s {
			t.Fatalf("round trip %q -> %q", s, FormatTimestamp(got))
		}
	}

	invalid := []string{
		"",
		"2024/01/01 10:00:00",
		"2024-01-01T10:00:00",
		"2024-1-01 10:00:00",
		"2024-01-01 9:00:00",
		"2024-01-01 10:00",
		" 2024-01-01 10:00:00",
		"2024-01-01 10:00:00 ",
		"2024-01-01  10:00:00",
		"2024-01-01 10:00:00.5",
		"2024-13-01 10:00:00",
		"2023-02-29 10:00:00",
		"2024-01-01 24:00:00",
		"24-01-01 10:00:00",
	}
	for _, s := range invalid {
		_, err := ParseTimestamp("end", s)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("ParseTimestamp(%q): want *ParseError, got %v", s, err)
		}
		if pe.Field != "end" || pe.Value != s {
			t.Fatalf("unexpected ParseError: %+v", pe)
		}
	}
}

func TestParseRecord(t *testing.T) {
	t.Parallel()

	iv, err := ParseRecord(models.RawRecord{Start: "2024-01-01 10:00:00", End: "2024-01-01 10:30:00"})
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if iv.RepairDurationHours() != 0.5 {
		t.Fatalf("duration=%v, want 0.5", iv.RepairDurationHours())
	}

	iv, err = ParseRecord(models.RawRecord{Start: "2024-01-01 10:00:00", End: "2024-01-01 10:00:00"})
	if err != nil {
		t.Fatalf("equal start/end must be valid: %v", err)
	}
	if iv.RepairDurationHours() != 0 {
		t.Fatalf("zero-duration repair, got %v", iv.RepairDurationHours())
	}

	_, err = ParseRecord(models.RawRecord{Start: "2024-01-01 10:00:00", End: "2024-01-01 09:59:59"})
	var oe *OrderingError
	if !errors.As(err, &oe) {
		t.Fatalf("want *OrderingError, got %v", err)
	}
}

func TestRepairDurationNonNegative(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, d := range []time.Duration{0, time.Second, 90 * time.Minute, 400 * 24 * time.Hour} {
		rec := models.RawRecord{Start: FormatTimestamp(base), End: FormatTimestamp(base.Add(d))}
		iv, err := ParseRecord(rec)
		if err != nil {
			t.Fatalf("ParseRecord(%+v): %v", rec, err)
		}
		if got := iv.RepairDurationHours(); got < 0 || got != d.Seconds()/3600 {
			t.Fatalf("duration for %v = %v", d, got)
		}
	}
}

func TestSubmitManualInterval(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		start, end string
		wantStatus string
		wantCode   string
		wantSev    models.Severity
	}{
		{"both empty", "", "", ParseSkipped, "", ""},
		{"end missing", "2024-01-01 10:00:00", "", ParseSkipped, "", ""},
		{"start missing", "", "2024-01-01 10:00:00", ParseSkipped, "", ""},
		{"valid", "2024-01-01 10:00:00", "2024-01-01 10:30:00", ParseAccepted, "", ""},
		{"malformed", "2024/01/01 10:00:00", "2024-01-01 10:30:00", ParseRejected, models.CodeParseError, models.SeverityWarning},
		{"reversed", "2024-01-01 10:30:00", "2024-01-01 10:00:00", ParseRejected, models.CodeOrderingError, models.SeverityError},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := SubmitManualInterval(3, tc.start, tc.end)
			if res.Status != tc.wantStatus {
				t.Fatalf("status=%q, want %q", res.Status, tc.wantStatus)
			}
			switch tc.wantStatus {
			case ParseAccepted:
				if res.Interval == nil || res.Diagnostic != nil {
					t.Fatalf("unexpected result: %+v", res)
				}
				if res.Interval.Source != models.SourceManual || res.Interval.Index != 3 {
					t.Fatalf("interval not tagged: %+v", res.Interval)
				}
			case ParseRejected:
				d := res.Diagnostic
				if d == nil || d.Code != tc.wantCode || d.Severity != tc.wantSev || d.Index != 3 || d.Source != models.SourceManual {
					t.Fatalf("unexpected diagnostic: %+v", d)
				}
			default:
				if res.Interval != nil || res.Diagnostic != nil {
					t.Fatalf("skipped pair should carry nothing: %+v", res)
				}
			}
		})
	}
}
