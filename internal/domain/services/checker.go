package services

import (
	"context"
	"fmt"
	"io"

	"github.com/famplex/famplex/internal/domain/entities"
)

// Pass is one independent validation step over the shared resources.
type Pass struct {
	Name string
	Run  func(ctx context.Context, res *Resources, rep *Report) error
}

// Result summarizes a finished run.
type Result struct {
	RunID       string
	Failed      bool
	Errors      int
	Warnings    int
	Skipped     []string
	Diagnostics []entities.Diagnostic
}

// Checker runs the integrity passes in a fixed order.
type Checker struct {
	passes []Pass
}

// NewChecker creates a checker running the table passes followed by the
// external passes of ext.
func NewChecker(ext *ExternalValidator) *Checker {
	passes := []Pass{
		{Name: RuleRows, Run: CheckTableRows},
		{Name: RuleDuplicates, Run: CheckDuplicateRows},
		{Name: RuleEntityIdentity, Run: CheckEntityUniqueness},
		{Name: RuleDuplicateEquivalent, Run: CheckDuplicateEquivalences},
		{Name: RuleGroundingFamPlex, Run: CheckGroundingFamPlexIDs},
		{Name: RuleRelationFamPlex, Run: CheckRelationFamPlexIDs},
		{Name: RuleEquivalenceFamPlex, Run: CheckEquivalenceFamPlexIDs},
		{Name: RuleRelationNamespaces, Run: CheckRelationTermNamespaces},
		{Name: RuleOrphans, Run: CheckOrphanEntities},
		{Name: RuleMultiGrounding, Run: CheckMultiGroundings},
		{Name: RuleChemicalPairs, Run: CheckChemicalPairs},
	}
	if ext != nil {
		passes = append(passes,
			Pass{Name: RuleHGNCRelations, Run: ext.CheckHGNCRelations},
			Pass{Name: RuleHGNCGroundings, Run: ext.CheckHGNCGroundings},
			Pass{Name: RuleChEBI, Run: ext.CheckChEBIIDs},
			Pass{Name: RulePubChem, Run: ext.CheckPubChemIDs},
		)
	}
	return &Checker{passes: passes}
}

// Passes returns the configured passes in run order.
func (c *Checker) Passes() []Pass {
	return c.passes
}

// Run executes every pass against res and streams the report to w.
func (c *Checker) Run(ctx context.Context, res *Resources, w io.Writer) (*Result, error) {
	rep := NewReport(w)

	for _, p := range c.passes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.Run(ctx, res, rep); err != nil {
			return nil, fmt.Errorf("running %s check: %w", p.Name, err)
		}
	}

	if err := rep.Err(); err != nil {
		return nil, err
	}

	errs, warnings := rep.Counts()
	return &Result{
		RunID:       rep.RunID,
		Failed:      rep.Failed(),
		Errors:      errs,
		Warnings:    warnings,
		Skipped:     rep.Skipped(),
		Diagnostics: rep.Diagnostics(),
	}, nil
}
