package mocks

// ChEBIIndex is a mock implementation of ports.ChEBIIndex.
type ChEBIIndex struct {
	IDs map[string]bool
}

// Contains reports whether id was configured.
func (m *ChEBIIndex) Contains(chebiID string) bool {
	return m.IDs[chebiID]
}

// Len returns the number of configured ids.
func (m *ChEBIIndex) Len() int {
	return len(m.IDs)
}
