package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespace_IsRelationNamespace(t *testing.T) {
	tests := []struct {
		name      string
		namespace Namespace
		expected  bool
	}{
		{name: "FPLX is allowed", namespace: NamespaceFPLX, expected: true},
		{name: "HGNC is allowed", namespace: NamespaceHGNC, expected: true},
		{name: "UP is allowed", namespace: NamespaceUP, expected: true},
		{name: "CHEBI is not allowed", namespace: NamespaceCHEBI, expected: false},
		{name: "lowercase is not allowed", namespace: Namespace("fplx"), expected: false},
		{name: "empty is not allowed", namespace: Namespace(""), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.namespace.IsRelationNamespace())
		})
	}
}

func TestRecordStrings(t *testing.T) {
	ent := Entity{ID: "000001", Name: "ERBB", Description: "ErbB receptors", References: "PMID:1"}
	assert.Equal(t, "(000001, ERBB, ErbB receptors, PMID:1)", ent.String())

	rel := Relationship{
		Subject:   Term{Namespace: NamespaceHGNC, ID: "3236", Name: "EGFR"},
		Predicate: PredicateIsA,
		Object:    Term{Namespace: NamespaceFPLX, ID: "000001", Name: "ERBB"},
	}
	assert.Equal(t, "(HGNC, 3236, EGFR, isa, FPLX, 000001, ERBB)", rel.String())

	eq := Equivalence{Namespace: "BEL", ID: "ERBB Family", FplxID: "000001", FplxName: "ERBB"}
	assert.Equal(t, "(BEL, ERBB Family, 000001, ERBB)", eq.String())

	g := Grounding{Text: "ErbB", Namespace: NamespaceFPLX, ID: "000001", Name: "ERBB"}
	assert.Equal(t, "(ErbB, FPLX, 000001, ERBB)", g.String())
}

func TestRelationship_Terms(t *testing.T) {
	rel := Relationship{
		Subject: Term{Namespace: NamespaceUP, ID: "P00533"},
		Object:  Term{Namespace: NamespaceFPLX, ID: "000001"},
	}
	terms := rel.Terms()
	assert.Equal(t, NamespaceUP, terms[0].Namespace)
	assert.Equal(t, NamespaceFPLX, terms[1].Namespace)
}

func TestDiagnostic_Fails(t *testing.T) {
	assert.True(t, Diagnostic{Severity: SeverityError}.Fails())
	assert.False(t, Diagnostic{Severity: SeverityError, Advisory: true}.Fails())
	assert.False(t, Diagnostic{Severity: SeverityWarning}.Fails())
}
