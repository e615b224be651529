package entities

// Namespace identifies the database an identifier belongs to.
type Namespace string

const (
	NamespaceFPLX    Namespace = "FPLX"
	NamespaceHGNC    Namespace = "HGNC"
	NamespaceUP      Namespace = "UP"
	NamespaceCHEBI   Namespace = "CHEBI"
	NamespacePUBCHEM Namespace = "PUBCHEM"
	NamespaceGO      Namespace = "GO"
	NamespaceMESH    Namespace = "MESH"
	NamespaceCHEMBL  Namespace = "CHEMBL"
	NamespaceMIRBASE Namespace = "MIRBASE"
)

// RelationNamespaces are the only namespaces allowed on either side of a relationship.
var RelationNamespaces = []Namespace{NamespaceFPLX, NamespaceHGNC, NamespaceUP}

// IsRelationNamespace reports whether ns may appear in the relations table.
func (ns Namespace) IsRelationNamespace() bool {
	for _, allowed := range RelationNamespaces {
		if ns == allowed {
			return true
		}
	}
	return false
}
