package services

import (
	"context"

	"github.com/famplex/famplex/internal/domain/entities"
)

// CheckGroundingFamPlexIDs flags FPLX groundings that point at undeclared entities.
func CheckGroundingFamPlexIDs(_ context.Context, res *Resources, rep *Report) error {
	rep.Section("Checking for undeclared FamPlex IDs in grounding map")
	for _, id := range res.GroundedIDs(entities.NamespaceFPLX) {
		if !res.IsDeclared(id) {
			rep.Errorf(RuleGroundingFamPlex, "ID %s referenced in grounding map is not in entities list.", id)
		}
	}
	return nil
}

// CheckRelationFamPlexIDs flags FPLX relationship terms that point at undeclared entities.
func CheckRelationFamPlexIDs(_ context.Context, res *Resources, rep *Report) error {
	rep.Section("Checking for undeclared FamPlex IDs in relationships file")
	for _, rel := range res.Relationships {
		for _, term := range rel.Terms() {
			if term.Namespace == entities.NamespaceFPLX && !res.IsDeclared(term.ID) {
				rep.Errorf(RuleRelationFamPlex, "ID %s referenced in relations is not in entities list.", term.ID)
			}
		}
	}
	return nil
}

// CheckRelationTermNamespaces flags relationship terms outside FPLX, HGNC and UP.
func CheckRelationTermNamespaces(_ context.Context, res *Resources, rep *Report) error {
	rep.Section("Checking for valid namespaces in relations")
	for i, rel := range res.Relationships {
		for _, term := range rel.Terms() {
			if !term.Namespace.IsRelationNamespace() {
				rep.Errorf(RuleRelationNamespaces, "row %d: Invalid namespace in relations: %s", i+1, term.Namespace)
			}
		}
	}
	return nil
}

// CheckEquivalenceFamPlexIDs flags equivalences mapped onto undeclared entities.
func CheckEquivalenceFamPlexIDs(_ context.Context, res *Resources, rep *Report) error {
	rep.Section("Checking for non-existent FamPlexes in equivalences")
	for _, eq := range res.Equivalences {
		if !res.IsDeclared(eq.FplxID) {
			rep.Errorf(RuleEquivalenceFamPlex, "ID %s referenced in equivalences is not in entities list.", eq.FplxID)
		}
	}
	return nil
}

// CheckOrphanEntities warns about entities that take part in no relationship.
func CheckOrphanEntities(_ context.Context, res *Resources, rep *Report) error {
	rep.Section("Checking for FamPlexes whose relationships are undefined")

	related := make(map[string]bool)
	for _, rel := range res.Relationships {
		for _, term := range rel.Terms() {
			if term.Namespace == entities.NamespaceFPLX {
				related[term.ID] = true
			}
		}
	}

	warned := make(map[string]bool)
	for _, e := range res.Entities {
		if related[e.ID] || warned[e.ID] {
			continue
		}
		warned[e.ID] = true
		rep.Warnf(RuleOrphans, "ID %s has no known relations.", e.ID)
	}
	return nil
}
