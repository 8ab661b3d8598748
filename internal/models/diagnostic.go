package models

// Severity of a Diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic codes surfaced to callers.
const (
	CodeParseError      = "parse_error"
	CodeOrderingError   = "ordering_error"
	CodeStructuralError = "structural_error"
	CodeRowsDropped     = "rows_dropped"
	CodeDuplicates      = "duplicates_removed"
	CodeNegativeUptime  = "negative_uptime"
	CodeMTBFUndefined   = "mtbf_undefined"
	CodeNoData          = "no_data"
)

// Diagnostic is a user-visible message attached to a record or to the
// aggregate computation. Index is -1 when not tied to a single record.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Source   Source   `json:"source,omitempty"`
	Index    int      `json:"index"`
	Message  string   `json:"message"`
}
