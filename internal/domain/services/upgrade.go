package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/famplex/famplex/internal/domain/entities"
	"github.com/famplex/famplex/internal/domain/ports"
	"github.com/famplex/famplex/internal/infrastructure/logging"
	"github.com/famplex/famplex/internal/infrastructure/parsers"
)

// UpgradeOptions tunes the legacy grounding conversion.
type UpgradeOptions struct {
	// NormalizePrefixes adds the GO:, CHEBI: and CHEMBL prefixes to bare ids.
	NormalizePrefixes bool
}

// UnlabelledCount is the number of distinct unlabelled ids in one namespace.
type UnlabelledCount struct {
	Namespace entities.Namespace
	Count     int
}

// UpgradeResult is the output of a grounding upgrade.
type UpgradeResult struct {
	Groundings []entities.Grounding
	// Unlabelled is ordered by descending count, then namespace.
	Unlabelled []UnlabelledCount
}

// GroundingUpgrader converts legacy interleaved grounding rows to 4-column groundings.
type GroundingUpgrader struct {
	entityIDs map[string]string
	hgnc      ports.Capability[ports.HGNCResolver]
	logger    *log.Logger
}

// NewGroundingUpgrader creates an upgrader. Entity names are resolved to
// FamPlex ids through ents; HGNC symbols through the resolver when available.
func NewGroundingUpgrader(ents []entities.Entity, hgnc ports.Capability[ports.HGNCResolver], logger *log.Logger) *GroundingUpgrader {
	ids := make(map[string]string, len(ents))
	for _, e := range ents {
		ids[e.Name] = e.ID
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &GroundingUpgrader{entityIDs: ids, hgnc: hgnc, logger: logger}
}

// Upgrade converts every legacy row, one grounding per namespace/id pair.
func (u *GroundingUpgrader) Upgrade(ctx context.Context, rows []parsers.LegacyGrounding, opts UpgradeOptions) (*UpgradeResult, error) {
	if _, ok := u.hgnc.Get(); !ok {
		u.logger.Warn("HGNC symbols will not be labelled", "reason", u.hgnc.Reason())
	}

	result := &UpgradeResult{}
	unlabelled := make(map[entities.Ref]bool)

	for _, row := range rows {
		for _, ref := range row.Refs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			id := ref.ID
			if opts.NormalizePrefixes {
				id = NormalizePrefix(ref.Namespace, id)
			}

			id, name, err := u.label(ctx, ref.Namespace, id)
			if err != nil {
				return nil, fmt.Errorf("labelling %s:%s: %w", ref.Namespace, ref.ID, err)
			}
			if name == "" {
				unlabelled[entities.Ref{Namespace: ref.Namespace, ID: id}] = true
			}

			result.Groundings = append(result.Groundings, entities.Grounding{
				Text:      row.Text,
				Namespace: ref.Namespace,
				ID:        id,
				Name:      name,
			})
		}
	}

	result.Unlabelled = countUnlabelled(unlabelled)
	return result, nil
}

// label maps a legacy id to its new id and label.
func (u *GroundingUpgrader) label(ctx context.Context, ns entities.Namespace, id string) (string, string, error) {
	switch ns {
	case entities.NamespaceFPLX:
		if fplxID, ok := u.entityIDs[id]; ok {
			return fplxID, id, nil
		}
		return id, "", nil
	case entities.NamespaceHGNC:
		resolver, ok := u.hgnc.Get()
		if !ok {
			return id, "", nil
		}
		hgncID, err := resolver.ID(ctx, id)
		if errors.Is(err, ports.ErrNotFound) {
			u.logger.Debug("unknown HGNC symbol", "symbol", id)
			return id, "", nil
		}
		if err != nil {
			return "", "", err
		}
		return hgncID, id, nil
	default:
		return id, "", nil
	}
}

// NormalizePrefix adds the conventional prefix to bare GO, CHEBI and CHEMBL ids.
func NormalizePrefix(ns entities.Namespace, id string) string {
	var prefix string
	switch ns {
	case entities.NamespaceGO:
		prefix = "GO:"
	case entities.NamespaceCHEBI:
		prefix = "CHEBI:"
	case entities.NamespaceCHEMBL:
		prefix = "CHEMBL"
	default:
		return id
	}
	if strings.HasPrefix(id, prefix) {
		return id
	}
	return prefix + id
}

func countUnlabelled(refs map[entities.Ref]bool) []UnlabelledCount {
	counts := make(map[entities.Namespace]int)
	for ref := range refs {
		counts[ref.Namespace]++
	}

	out := make([]UnlabelledCount, 0, len(counts))
	for ns, n := range counts {
		out = append(out, UnlabelledCount{Namespace: ns, Count: n})
	}
	slices.SortFunc(out, func(a, b UnlabelledCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Namespace, b.Namespace)
	})
	return out
}
