package mocks

import (
	"context"
	"sync"
)

// PubChemClient is a mock implementation of ports.PubChemClient.
// It is safe for concurrent use.
type PubChemClient struct {
	// Known CIDs resolve; everything else does not.
	Known map[string]bool
	// Errs forces a lookup failure for specific CIDs.
	Errs map[string]error

	mu    sync.Mutex
	calls []string
}

// CompoundExists returns the configured outcome for cid.
func (m *PubChemClient) CompoundExists(ctx context.Context, cid string) (bool, error) {
	m.mu.Lock()
	m.calls = append(m.calls, cid)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err, ok := m.Errs[cid]; ok {
		return false, err
	}
	return m.Known[cid], nil
}

// Calls returns the CIDs queried so far.
func (m *PubChemClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
