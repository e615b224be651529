// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
	"errors"
)

// ErrNotFound is returned by resolvers when an identifier is unknown.
var ErrNotFound = errors.New("not found")

// HGNCResolver maps between HGNC identifiers and approved gene symbols.
// Identifiers are bare numbers without the "HGNC:" prefix.
type HGNCResolver interface {
	// Symbol returns the approved symbol for an HGNC id, or ErrNotFound.
	Symbol(ctx context.Context, hgncID string) (string, error)

	// ID returns the HGNC id for an approved symbol, or ErrNotFound.
	ID(ctx context.Context, symbol string) (string, error)
}
