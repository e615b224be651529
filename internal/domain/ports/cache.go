package ports

import (
	"context"
	"time"

	"github.com/famplex/famplex/internal/domain/entities"
)

// LookupEntry is a remembered outcome of an external identifier lookup.
type LookupEntry struct {
	Namespace entities.Namespace
	ID        string
	Found     bool
	Label     string
	CheckedAt time.Time
}

// LookupCache persists external lookup outcomes between runs.
type LookupCache interface {
	// Get returns a non-expired entry. ok is false on a miss.
	Get(ctx context.Context, ns entities.Namespace, id string) (entry LookupEntry, ok bool, err error)

	// Put stores or replaces an entry.
	Put(ctx context.Context, entry LookupEntry) error
}

// RunHistory records check runs.
type RunHistory interface {
	RecordRun(ctx context.Context, run entities.RunSummary) error
	ListRuns(ctx context.Context, limit int) ([]entities.RunSummary, error)
}
