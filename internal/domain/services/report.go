package services

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/famplex/famplex/internal/domain/entities"
)

// Rule names attached to diagnostics.
const (
	RuleRows                = "rows"
	RuleDuplicates          = "duplicates"
	RuleEntityIdentity      = "entity-identity"
	RuleGroundingFamPlex    = "grounding-fplx"
	RuleRelationFamPlex     = "relation-fplx"
	RuleRelationNamespaces  = "relation-namespaces"
	RuleEquivalenceFamPlex  = "equivalence-fplx"
	RuleDuplicateEquivalent = "duplicate-equivalences"
	RuleOrphans             = "orphans"
	RuleMultiGrounding      = "multi-grounding"
	RuleChEBIMissing        = "chebi_missing"
	RulePubChemMissing      = "pubchem_missing"
	RuleChemicalPairs       = "chemical-pairs"
	RuleHGNC                = "hgnc"
	RuleHGNCRelations       = "hgnc-relations"
	RuleHGNCGroundings      = "hgnc-groundings"
	RuleChEBI               = "chebi"
	RulePubChem             = "pubchem"
)

// Report accumulates the diagnostics of one run and streams them as text.
type Report struct {
	RunID string

	w           io.Writer
	err         error
	sections    int
	diagnostics []entities.Diagnostic
	skipped     []string
}

// NewReport creates a report writing to w.
func NewReport(w io.Writer) *Report {
	return &Report{
		RunID: uuid.New().String(),
		w:     w,
	}
}

// Section starts a new titled block.
func (r *Report) Section(title string) {
	if r.sections > 0 {
		r.println("")
	}
	r.sections++
	r.println("-- " + title + " --")
}

// Errorf records an error that fails the run.
func (r *Report) Errorf(check, format string, args ...any) {
	r.add(entities.Diagnostic{Check: check, Severity: entities.SeverityError, Message: fmt.Sprintf(format, args...)})
}

// Advisoryf records an error that is reported but does not fail the run.
func (r *Report) Advisoryf(check, format string, args ...any) {
	r.add(entities.Diagnostic{Check: check, Severity: entities.SeverityError, Message: fmt.Sprintf(format, args...), Advisory: true})
}

// Warnf records a warning.
func (r *Report) Warnf(check, format string, args ...any) {
	r.add(entities.Diagnostic{Check: check, Severity: entities.SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

// Printf writes a plain line that is not a diagnostic.
func (r *Report) Printf(format string, args ...any) {
	r.println(fmt.Sprintf(format, args...))
}

// Skip notes that a check could not be performed.
func (r *Report) Skip(check, reason string) {
	r.skipped = append(r.skipped, check)
	if r.sections > 0 {
		r.println("")
	}
	r.sections++
	r.println(reason)
}

// Failed reports whether any failing error was recorded.
func (r *Report) Failed() bool {
	for _, d := range r.diagnostics {
		if d.Fails() {
			return true
		}
	}
	return false
}

// Counts returns the number of errors (advisory included) and warnings.
func (r *Report) Counts() (errs, warnings int) {
	for _, d := range r.diagnostics {
		switch d.Severity {
		case entities.SeverityError:
			errs++
		case entities.SeverityWarning:
			warnings++
		}
	}
	return errs, warnings
}

// Diagnostics returns everything recorded so far.
func (r *Report) Diagnostics() []entities.Diagnostic {
	return r.diagnostics
}

// Skipped returns the checks that could not be performed.
func (r *Report) Skipped() []string {
	return r.skipped
}

// Err returns the first write error, if any.
func (r *Report) Err() error {
	return r.err
}

func (r *Report) add(d entities.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
	prefix := "ERROR: "
	if d.Severity == entities.SeverityWarning {
		prefix = "WARNING: "
	}
	r.println(prefix + d.Message)
}

func (r *Report) println(line string) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintln(r.w, line); err != nil {
		r.err = fmt.Errorf("writing report: %w", err)
	}
}
