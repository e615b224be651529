package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famplex/famplex/internal/domain/entities"
)

func cleanResources() *Resources {
	return NewResources(
		[]entities.Entity{entity("ERK"), entity("MAPK")},
		[]entities.Relationship{
			isa(hgnc("6871", "MAPK1"), fplx("ERK")),
			isa(fplx("ERK"), fplx("MAPK")),
		},
		[]entities.Equivalence{{Namespace: entities.NamespaceMESH, ID: "D048049", FplxID: "ERK", FplxName: "ERK"}},
		[]entities.Grounding{grounding("ERK", entities.NamespaceFPLX, "ERK", "ERK")},
		nil,
	)
}

func TestChecker_PassOrder(t *testing.T) {
	names := func(c *Checker) []string {
		var out []string
		for _, p := range c.Passes() {
			out = append(out, p.Name)
		}
		return out
	}

	local := names(NewChecker(nil))
	assert.Equal(t, []string{
		RuleRows, RuleDuplicates, RuleEntityIdentity, RuleDuplicateEquivalent,
		RuleGroundingFamPlex, RuleRelationFamPlex, RuleEquivalenceFamPlex, RuleRelationNamespaces,
		RuleOrphans, RuleMultiGrounding, RuleChemicalPairs,
	}, local)

	full := names(NewChecker(NewExternalValidator(unavailableDeps("offline"))))
	assert.Equal(t, local, full[:len(local)])
	assert.Equal(t, []string{"hgnc-relations", "hgnc-groundings", RuleChEBI, RulePubChem}, full[len(local):])
}

func TestChecker_Run_CleanWithUnavailableDeps(t *testing.T) {
	var buf bytes.Buffer
	checker := NewChecker(NewExternalValidator(unavailableDeps("offline mode")))

	result, err := checker.Run(context.Background(), cleanResources(), &buf)

	require.NoError(t, err)
	assert.False(t, result.Failed)
	assert.Zero(t, result.Errors)
	assert.Zero(t, result.Warnings)
	assert.Equal(t, []string{RuleHGNCRelations, RuleHGNCGroundings, RuleChEBI, RulePubChem}, result.Skipped)
	assert.NotEmpty(t, result.RunID)
	assert.Contains(t, buf.String(), "PubChem ID check could not be performed: offline mode")
	assert.NotContains(t, buf.String(), "ERROR:")
}

func TestChecker_Run_WarningsDoNotFail(t *testing.T) {
	res := NewResources(
		[]entities.Entity{entity("001"), entity("002")},
		[]entities.Relationship{isa(fplx("001"), fplx("001"))},
		nil, nil, nil,
	)

	var buf bytes.Buffer
	result, err := NewChecker(nil).Run(context.Background(), res, &buf)

	require.NoError(t, err)
	assert.False(t, result.Failed)
	assert.Equal(t, 1, result.Warnings)
	assert.Contains(t, buf.String(), "WARNING: ID 002 has no known relations.")
}

func TestChecker_Run_Failure(t *testing.T) {
	res := NewResources(
		[]entities.Entity{entity("ERK")},
		[]entities.Relationship{isa(fplx("ERK"), fplx("MAPK"))},
		nil, nil,
		[]error{errors.New("Line 2 in file relations.csv has 6 columns, should be 7")},
	)

	var buf bytes.Buffer
	result, err := NewChecker(nil).Run(context.Background(), res, &buf)

	require.NoError(t, err)
	assert.True(t, result.Failed)
	assert.Equal(t, 2, result.Errors)

	out := buf.String()
	rows := strings.Index(out, "Line 2 in file relations.csv")
	missing := strings.Index(out, "ID MAPK referenced in relations is not in entities list.")
	require.NotEqual(t, -1, rows)
	require.NotEqual(t, -1, missing)
	assert.Less(t, rows, missing)
}

func TestChecker_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewChecker(nil).Run(ctx, cleanResources(), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChecker_Run_PassError(t *testing.T) {
	boom := errors.New("boom")
	checker := &Checker{passes: []Pass{{
		Name: "explode",
		Run:  func(context.Context, *Resources, *Report) error { return boom },
	}}}

	_, err := checker.Run(context.Background(), cleanResources(), &bytes.Buffer{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "running explode check")
}
