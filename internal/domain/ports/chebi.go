package ports

// ChEBIIndex answers membership questions against a local ChEBI compound list.
type ChEBIIndex interface {
	// Contains reports whether the ChEBI id is a known compound.
	Contains(chebiID string) bool

	// Len returns the number of known compounds.
	Len() int
}
