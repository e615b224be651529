package entities

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single finding produced by a check.
type Diagnostic struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Advisory errors are reported as errors but do not fail the run.
	Advisory bool `json:"advisory,omitempty"`
}

// Fails reports whether the diagnostic marks the run as failed.
func (d Diagnostic) Fails() bool {
	return d.Severity == SeverityError && !d.Advisory
}
