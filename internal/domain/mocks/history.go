package mocks

import (
	"context"

	"github.com/famplex/famplex/internal/domain/entities"
)

// RunHistory is a mock implementation of ports.RunHistory.
type RunHistory struct {
	Runs      []entities.RunSummary
	RecordErr error
}

// RecordRun appends run.
func (m *RunHistory) RecordRun(ctx context.Context, run entities.RunSummary) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.Runs = append(m.Runs, run)
	return nil
}

// ListRuns returns the most recent runs first.
func (m *RunHistory) ListRuns(ctx context.Context, limit int) ([]entities.RunSummary, error) {
	out := make([]entities.RunSummary, 0, len(m.Runs))
	for i := len(m.Runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.Runs[i])
	}
	return out, nil
}
