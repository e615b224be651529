package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/famplex/famplex/internal/domain/entities"
)

// CheckMultiGroundings warns when a text is grounded to several ids in one namespace.
func CheckMultiGroundings(_ context.Context, res *Resources, rep *Report) error {
	rep.Section("Checking for doubly grounded text in grounding map")
	for _, key := range res.TextNamespaces() {
		rows := distinctIDs(res.GroundingRows(key.Text, key.Namespace))
		if len(rows) < 2 {
			continue
		}
		labels := make([]string, len(rows))
		for i, g := range rows {
			labels[i] = fmt.Sprintf("%s:%s ! %s", g.Namespace, g.ID, g.Name)
		}
		rep.Warnf(RuleMultiGrounding, "%q has multiple %s groundings: %s",
			key.Text, key.Namespace, strings.Join(labels, ", "))
	}
	return nil
}

// distinctIDs keeps the first row for each id.
func distinctIDs(rows []entities.Grounding) []entities.Grounding {
	seen := make(map[string]bool, len(rows))
	out := make([]entities.Grounding, 0, len(rows))
	for _, g := range rows {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		out = append(out, g)
	}
	return out
}

// ChemicalPairing classifies a text's CHEBI/PUBCHEM coverage. It returns
// RuleChEBIMissing, RulePubChemMissing, or "" when both or neither are present.
func ChemicalPairing(tg *TextGrounding) string {
	pubchemID, hasPubChem := tg.Get(entities.NamespacePUBCHEM)
	chebiID, hasChEBI := tg.Get(entities.NamespaceCHEBI)
	hasPubChem = hasPubChem && pubchemID != ""
	hasChEBI = hasChEBI && chebiID != ""

	switch {
	case hasPubChem && !hasChEBI:
		return RuleChEBIMissing
	case hasChEBI && !hasPubChem:
		return RulePubChemMissing
	default:
		return ""
	}
}

// CheckChemicalPairs warns about texts grounded to only one of CHEBI and PUBCHEM.
func CheckChemicalPairs(_ context.Context, res *Resources, rep *Report) error {
	rep.Section("Checking for CHEBI/PUBCHEM IDs")
	for _, tg := range res.TextGroundings() {
		switch ChemicalPairing(tg) {
		case RuleChEBIMissing:
			id, _ := tg.Get(entities.NamespacePUBCHEM)
			rep.Warnf(RuleChEBIMissing, "%s has PubChem ID (%s) but no CHEBI ID.", tg.Text, id)
		case RulePubChemMissing:
			id, _ := tg.Get(entities.NamespaceCHEBI)
			rep.Warnf(RulePubChemMissing, "%s has ChEBI ID (%s) but no PUBCHEM ID.", tg.Text, id)
		}
	}
	return nil
}
