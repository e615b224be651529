package mocks

import (
	"context"
	"sync"

	"github.com/famplex/famplex/internal/domain/entities"
	"github.com/famplex/famplex/internal/domain/ports"
)

// LookupCache is an in-memory implementation of ports.LookupCache.
type LookupCache struct {
	GetErr error
	PutErr error

	mu      sync.Mutex
	entries map[entities.Ref]ports.LookupEntry

	// Call tracking
	PutCallCount int
}

// Get returns a stored entry.
func (m *LookupCache) Get(ctx context.Context, ns entities.Namespace, id string) (ports.LookupEntry, bool, error) {
	if m.GetErr != nil {
		return ports.LookupEntry{}, false, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[entities.Ref{Namespace: ns, ID: id}]
	return entry, ok, nil
}

// Put stores an entry.
func (m *LookupCache) Put(ctx context.Context, entry ports.LookupEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCallCount++
	if m.PutErr != nil {
		return m.PutErr
	}
	if m.entries == nil {
		m.entries = make(map[entities.Ref]ports.LookupEntry)
	}
	m.entries[entities.Ref{Namespace: entry.Namespace, ID: entry.ID}] = entry
	return nil
}
