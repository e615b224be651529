// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/famplex/famplex/internal/domain/ports"
)

// HGNCResolver is a mock implementation of ports.HGNCResolver.
type HGNCResolver struct {
	// Symbols maps HGNC id to approved symbol.
	Symbols map[string]string
	Err     error

	// Call tracking
	SymbolCalls []string
	IDCalls     []string
}

// Symbol returns the configured symbol, ports.ErrNotFound, or Err.
func (m *HGNCResolver) Symbol(ctx context.Context, hgncID string) (string, error) {
	m.SymbolCalls = append(m.SymbolCalls, hgncID)
	if m.Err != nil {
		return "", m.Err
	}
	symbol, ok := m.Symbols[hgncID]
	if !ok {
		return "", ports.ErrNotFound
	}
	return symbol, nil
}

// ID searches the configured symbols in reverse.
func (m *HGNCResolver) ID(ctx context.Context, symbol string) (string, error) {
	m.IDCalls = append(m.IDCalls, symbol)
	if m.Err != nil {
		return "", m.Err
	}
	for id, s := range m.Symbols {
		if s == symbol {
			return id, nil
		}
	}
	return "", ports.ErrNotFound
}
