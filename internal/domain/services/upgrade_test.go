package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famplex/famplex/internal/domain/entities"
	"github.com/famplex/famplex/internal/domain/mocks"
	"github.com/famplex/famplex/internal/domain/ports"
	"github.com/famplex/famplex/internal/infrastructure/parsers"
)

func legacyRows() []parsers.LegacyGrounding {
	return []parsers.LegacyGrounding{
		{Text: "ERK", Refs: []entities.Ref{{Namespace: entities.NamespaceFPLX, ID: "ERK_family"}}},
		{Text: "EGFR", Refs: []entities.Ref{
			{Namespace: entities.NamespaceHGNC, ID: "EGFR"},
			{Namespace: entities.NamespaceUP, ID: "P00533"},
		}},
		{Text: "aspirin", Refs: []entities.Ref{
			{Namespace: entities.NamespaceCHEBI, ID: "15365"},
			{Namespace: entities.NamespacePUBCHEM, ID: "2244"},
		}},
		{Text: "cytoplasm", Refs: []entities.Ref{{Namespace: entities.NamespaceGO, ID: "GO:0005737"}}},
	}
}

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		ns   entities.Namespace
		id   string
		want string
	}{
		{entities.NamespaceGO, "0005737", "GO:0005737"},
		{entities.NamespaceGO, "GO:0005737", "GO:0005737"},
		{entities.NamespaceCHEBI, "15365", "CHEBI:15365"},
		{entities.NamespaceCHEBI, "CHEBI:15365", "CHEBI:15365"},
		{entities.NamespaceCHEMBL, "25", "CHEMBL25"},
		{entities.NamespaceCHEMBL, "CHEMBL25", "CHEMBL25"},
		{entities.NamespaceMESH, "D000001", "D000001"},
	}

	for _, tt := range tests {
		t.Run(string(tt.ns)+"/"+tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePrefix(tt.ns, tt.id))
		})
	}
}

func TestGroundingUpgrader_Upgrade(t *testing.T) {
	resolver := &mocks.HGNCResolver{Symbols: map[string]string{"3236": "EGFR"}}
	upgrader := NewGroundingUpgrader(
		[]entities.Entity{{ID: "ERK", Name: "ERK_family"}},
		ports.Available[ports.HGNCResolver](resolver),
		nil,
	)

	result, err := upgrader.Upgrade(context.Background(), legacyRows(), UpgradeOptions{NormalizePrefixes: true})

	require.NoError(t, err)
	assert.Equal(t, []entities.Grounding{
		{Text: "ERK", Namespace: entities.NamespaceFPLX, ID: "ERK", Name: "ERK_family"},
		{Text: "EGFR", Namespace: entities.NamespaceHGNC, ID: "3236", Name: "EGFR"},
		{Text: "EGFR", Namespace: entities.NamespaceUP, ID: "P00533"},
		{Text: "aspirin", Namespace: entities.NamespaceCHEBI, ID: "CHEBI:15365"},
		{Text: "aspirin", Namespace: entities.NamespacePUBCHEM, ID: "2244"},
		{Text: "cytoplasm", Namespace: entities.NamespaceGO, ID: "GO:0005737"},
	}, result.Groundings)
	assert.Equal(t, []UnlabelledCount{
		{Namespace: entities.NamespaceCHEBI, Count: 1},
		{Namespace: entities.NamespaceGO, Count: 1},
		{Namespace: entities.NamespacePUBCHEM, Count: 1},
		{Namespace: entities.NamespaceUP, Count: 1},
	}, result.Unlabelled)
}

func TestGroundingUpgrader_HGNCUnavailable(t *testing.T) {
	upgrader := NewGroundingUpgrader(nil, ports.Unavailable[ports.HGNCResolver]("offline mode"), nil)

	rows := []parsers.LegacyGrounding{
		{Text: "EGFR", Refs: []entities.Ref{{Namespace: entities.NamespaceHGNC, ID: "EGFR"}}},
		{Text: "ErbB1", Refs: []entities.Ref{{Namespace: entities.NamespaceHGNC, ID: "EGFR"}}},
		{Text: "ERK", Refs: []entities.Ref{{Namespace: entities.NamespaceFPLX, ID: "ERK"}}},
	}
	result, err := upgrader.Upgrade(context.Background(), rows, UpgradeOptions{})

	require.NoError(t, err)
	require.Len(t, result.Groundings, 3)
	assert.Equal(t, "EGFR", result.Groundings[0].ID)
	assert.Empty(t, result.Groundings[0].Name)
	assert.Equal(t, []UnlabelledCount{
		{Namespace: entities.NamespaceFPLX, Count: 1},
		{Namespace: entities.NamespaceHGNC, Count: 1},
	}, result.Unlabelled)
}

func TestGroundingUpgrader_NoNormalization(t *testing.T) {
	upgrader := NewGroundingUpgrader(nil, ports.Unavailable[ports.HGNCResolver]("n/a"), nil)
	rows := []parsers.LegacyGrounding{
		{Text: "aspirin", Refs: []entities.Ref{{Namespace: entities.NamespaceCHEBI, ID: "15365"}}},
	}

	result, err := upgrader.Upgrade(context.Background(), rows, UpgradeOptions{})

	require.NoError(t, err)
	assert.Equal(t, "15365", result.Groundings[0].ID)
}

func TestGroundingUpgrader_ResolverError(t *testing.T) {
	resolver := &mocks.HGNCResolver{Err: errors.New("service down")}
	upgrader := NewGroundingUpgrader(nil, ports.Available[ports.HGNCResolver](resolver), nil)

	_, err := upgrader.Upgrade(context.Background(), legacyRows(), UpgradeOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HGNC:EGFR")
}
