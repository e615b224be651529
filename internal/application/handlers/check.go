// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/famplex/famplex/internal/domain/entities"
	"github.com/famplex/famplex/internal/domain/ports"
	"github.com/famplex/famplex/internal/domain/services"
	"github.com/famplex/famplex/internal/infrastructure/config"
	"github.com/famplex/famplex/internal/infrastructure/logging"
	"github.com/famplex/famplex/internal/infrastructure/parsers"
)

// CheckHandler loads the resource tables and runs the integrity checks.
type CheckHandler struct {
	checker *services.Checker
	history ports.RunHistory
	logger  *log.Logger
}

// NewCheckHandler creates a new check handler. history may be nil.
func NewCheckHandler(checker *services.Checker, history ports.RunHistory, logger *log.Logger) *CheckHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &CheckHandler{
		checker: checker,
		history: history,
		logger:  logger,
	}
}

// Handle checks the tables under basePath and streams the report to w.
func (h *CheckHandler) Handle(ctx context.Context, basePath string, paths config.ResourcesConfig, w io.Writer) (*services.Result, error) {
	started := time.Now()

	res, err := LoadResources(basePath, paths)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("resources loaded",
		"entities", len(res.Entities),
		"relationships", len(res.Relationships),
		"equivalences", len(res.Equivalences),
		"groundings", len(res.Groundings),
		"row_errors", len(res.LoadErrors))

	result, err := h.checker.Run(ctx, res, w)
	if err != nil {
		return nil, err
	}

	if h.history != nil {
		run := entities.RunSummary{
			ID:        result.RunID,
			StartedAt: started,
			Failed:    result.Failed,
			Errors:    result.Errors,
			Warnings:  result.Warnings,
			Skipped:   result.Skipped,
		}
		if err := h.history.RecordRun(ctx, run); err != nil {
			h.logger.Warn("could not record run", "run_id", result.RunID, "err", err)
		}
	}

	return result, nil
}

// LoadResources reads the four resource tables. Paths are resolved against
// basePath and reported as configured.
func LoadResources(basePath string, paths config.ResourcesConfig) (*services.Resources, error) {
	var loadErrs []error

	ents, rowErrs, err := loadTable(basePath, paths.Entities, parsers.LoadEntities)
	if err != nil {
		return nil, err
	}
	loadErrs = append(loadErrs, rowErrs...)

	rels, rowErrs, err := loadTable(basePath, paths.Relations, parsers.LoadRelationships)
	if err != nil {
		return nil, err
	}
	loadErrs = append(loadErrs, rowErrs...)

	eqs, rowErrs, err := loadTable(basePath, paths.Equivalences, parsers.LoadEquivalences)
	if err != nil {
		return nil, err
	}
	loadErrs = append(loadErrs, rowErrs...)

	gms, rowErrs, err := loadTable(basePath, paths.GroundingMap, parsers.LoadGroundings)
	if err != nil {
		return nil, err
	}
	loadErrs = append(loadErrs, rowErrs...)

	return services.NewResources(ents, rels, eqs, gms, loadErrs), nil
}

// loadTable opens one table and releases the handle before returning.
func loadTable[T any](basePath, name string, load func(io.Reader, string) ([]T, []error, error)) ([]T, []error, error) {
	file, err := os.Open(config.Path(basePath, name))
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer file.Close()

	rows, rowErrs, err := load(file, name)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return rows, rowErrs, nil
}
