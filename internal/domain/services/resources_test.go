package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famplex/famplex/internal/domain/entities"
)

func TestNewResources_EntityIndex(t *testing.T) {
	res := NewResources([]entities.Entity{{ID: "AMPK", Name: "AMPK"}, {ID: "ERK", Name: "ERK"}}, nil, nil, nil, nil)

	name, ok := res.EntityName("ERK")
	require.True(t, ok)
	assert.Equal(t, "ERK", name)
	assert.True(t, res.IsDeclared("AMPK"))
	assert.False(t, res.IsDeclared("MEK"))
}

func TestNewResources_TextGroundings_LastRowWins(t *testing.T) {
	res := NewResources(nil, nil, nil, []entities.Grounding{
		grounding("EGFR", entities.NamespaceHGNC, "3236", "EGFR"),
		grounding("EGFR", entities.NamespaceUP, "P00533", "EGFR_HUMAN"),
		grounding("EGFR", entities.NamespaceHGNC, "3237", "EGFR2"),
		grounding("ERK", entities.NamespaceFPLX, "ERK", "ERK"),
	}, nil)

	tgs := res.TextGroundings()
	require.Len(t, tgs, 2)
	assert.Equal(t, "EGFR", tgs[0].Text)
	assert.Equal(t, "ERK", tgs[1].Text)

	egfr, ok := res.GroundingsFor("EGFR")
	require.True(t, ok)
	assert.Equal(t, []entities.Ref{
		{Namespace: entities.NamespaceHGNC, ID: "3237"},
		{Namespace: entities.NamespaceUP, ID: "P00533"},
	}, egfr.Refs)

	_, ok = egfr.Get(entities.NamespaceCHEBI)
	assert.False(t, ok)
}

func TestNewResources_MultiValuedIndex(t *testing.T) {
	res := NewResources(nil, nil, nil, []entities.Grounding{
		grounding("EGFR", entities.NamespaceHGNC, "3236", "EGFR"),
		grounding("EGFR", entities.NamespaceUP, "P00533", "EGFR_HUMAN"),
		grounding("EGFR", entities.NamespaceHGNC, "3237", "EGFR2"),
	}, nil)

	rows := res.GroundingRows("EGFR", entities.NamespaceHGNC)
	require.Len(t, rows, 2)
	assert.Equal(t, "3236", rows[0].ID)
	assert.Equal(t, "3237", rows[1].ID)

	assert.Equal(t, []TextNamespace{
		{Text: "EGFR", Namespace: entities.NamespaceHGNC},
		{Text: "EGFR", Namespace: entities.NamespaceUP},
	}, res.TextNamespaces())
}

func TestResources_GroundedIDs(t *testing.T) {
	res := NewResources(nil, nil, nil, []entities.Grounding{
		grounding("aspirin", entities.NamespaceCHEBI, "CHEBI:15365", ""),
		grounding("acetylsalicylic acid", entities.NamespaceCHEBI, "CHEBI:15365", ""),
		grounding("caffeine", entities.NamespaceCHEBI, "CHEBI:27732", ""),
		grounding("caffeine", entities.NamespacePUBCHEM, "2519", ""),
	}, nil)

	assert.Equal(t, []string{"CHEBI:15365", "CHEBI:27732"}, res.GroundedIDs(entities.NamespaceCHEBI))
	assert.Equal(t, []string{"2519"}, res.GroundedIDs(entities.NamespacePUBCHEM))
	assert.Empty(t, res.GroundedIDs(entities.NamespaceHGNC))
}

func TestResources_GroundedIDs_KeepsEarlierRows(t *testing.T) {
	res := NewResources(nil, nil, nil, []entities.Grounding{
		grounding("x", entities.NamespaceCHEBI, "CHEBI:BAD", ""),
		grounding("x", entities.NamespaceCHEBI, "CHEBI:1", ""),
		grounding("x", entities.NamespacePUBCHEM, "BAD", ""),
		grounding("x", entities.NamespacePUBCHEM, "2", ""),
	}, nil)

	assert.Equal(t, []string{"CHEBI:BAD", "CHEBI:1"}, res.GroundedIDs(entities.NamespaceCHEBI))
	assert.Equal(t, []string{"BAD", "2"}, res.GroundedIDs(entities.NamespacePUBCHEM))
}
