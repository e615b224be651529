package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/famplex/famplex/internal/domain/entities"
)

func TestFindDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []Duplicate[string]
	}{
		{name: "empty", input: nil, want: nil},
		{name: "unique", input: []string{"a", "b", "c"}, want: nil},
		{
			name:  "first occurrence order",
			input: []string{"b", "a", "b", "c", "a", "b"},
			want: []Duplicate[string]{
				{Record: "b", Count: 3},
				{Record: "a", Count: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindDuplicates(tt.input))
		})
	}
}

func TestFindDuplicates_Structs(t *testing.T) {
	rel := isa(hgnc("6840", "MAPK1"), fplx("ERK"))
	dups := FindDuplicates([]entities.Relationship{rel, isa(fplx("ERK"), fplx("MAPK")), rel})

	assert.Equal(t, []Duplicate[entities.Relationship]{{Record: rel, Count: 2}}, dups)
}

func TestCheckTableRows(t *testing.T) {
	res := NewResources(nil, nil, nil, nil, []error{
		errors.New("Line 3 in file entities.csv has 3 columns, should be 4"),
	})

	rep, lines := runPass(t, CheckTableRows, res)

	assert.True(t, rep.Failed())
	assert.Equal(t, []string{
		"-- Checking table rows --",
		"ERROR: Line 3 in file entities.csv has 3 columns, should be 4",
	}, lines)
}

func TestCheckDuplicateRows(t *testing.T) {
	g := grounding("ERK", entities.NamespaceFPLX, "ERK", "ERK")
	res := NewResources(
		[]entities.Entity{entity("ERK")},
		nil, nil,
		[]entities.Grounding{g, g},
		nil,
	)

	rep, lines := runPass(t, CheckDuplicateRows, res)

	assert.True(t, rep.Failed())
	assert.Contains(t, lines, "-- Checking for duplicate entities --")
	assert.Contains(t, lines, "-- Checking for duplicate relationships --")
	assert.Contains(t, lines, "-- Checking for duplicate equivalences --")
	assert.Contains(t, lines, "ERROR: Duplicate (ERK, FPLX, ERK, ERK) in groundings (2 occurrences).")
	assert.Len(t, rep.Diagnostics(), 1)
}

func TestCheckEntityUniqueness(t *testing.T) {
	res := NewResources([]entities.Entity{
		{ID: "AMPK", Name: "AMPK"},
		{ID: "AMPK", Name: "AMPK_alpha"},
		{ID: "ERK", Name: "ERK"},
		{ID: "ERK2", Name: "ERK"},
	}, nil, nil, nil, nil)

	rep, _ := runPass(t, CheckEntityUniqueness, res)

	assert.Equal(t, []string{
		"Entity ID AMPK is declared 2 times.",
		"Entity name ERK is declared 2 times.",
	}, messages(rep))
}

func TestCheckDuplicateEquivalences(t *testing.T) {
	eq := entities.Equivalence{Namespace: entities.NamespaceMESH, ID: "D048049", FplxID: "ERK", FplxName: "ERK"}

	t.Run("none", func(t *testing.T) {
		rep, lines := runPass(t, CheckDuplicateEquivalences, NewResources(nil, nil, []entities.Equivalence{eq}, nil, nil))
		assert.False(t, rep.Failed())
		assert.Equal(t, []string{"-- Checking for duplicate equivalences --"}, lines)
	})

	t.Run("listed", func(t *testing.T) {
		rep, lines := runPass(t, CheckDuplicateEquivalences, NewResources(nil, nil, []entities.Equivalence{eq, eq}, nil, nil))
		assert.True(t, rep.Failed())
		assert.Equal(t, []string{
			"-- Checking for duplicate equivalences --",
			"ERROR: Duplicate equivalences found:",
			"(MESH, D048049, ERK, ERK)",
		}, lines)
	})
}
