package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/famplex/famplex/internal/domain/entities"
	"github.com/famplex/famplex/internal/domain/ports"
	"github.com/famplex/famplex/internal/domain/services"
	"github.com/famplex/famplex/internal/infrastructure/logging"
	"github.com/famplex/famplex/internal/infrastructure/parsers"
)

// UpgradeHandler converts a legacy grounding map file to the 4-column format.
type UpgradeHandler struct {
	hgnc   ports.Capability[ports.HGNCResolver]
	logger *log.Logger
}

// NewUpgradeHandler creates a new upgrade handler.
func NewUpgradeHandler(hgnc ports.Capability[ports.HGNCResolver], logger *log.Logger) *UpgradeHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &UpgradeHandler{hgnc: hgnc, logger: logger}
}

// UpgradeRequest names the files of an upgrade.
type UpgradeRequest struct {
	LegacyPath string
	// EntitiesPath is optional; without it FamPlex names stay unlabelled.
	EntitiesPath      string
	OutputPath        string
	NormalizePrefixes bool
	// Overwrite allows replacing an existing output file.
	Overwrite bool
}

// Handle reads the legacy file, converts it and writes the output file.
func (h *UpgradeHandler) Handle(ctx context.Context, req UpgradeRequest) (*services.UpgradeResult, error) {
	if !req.Overwrite {
		if _, err := os.Stat(req.OutputPath); err == nil {
			return nil, fmt.Errorf("output file %s already exists", req.OutputPath)
		}
	}

	rows, err := readLegacy(req.LegacyPath)
	if err != nil {
		return nil, err
	}

	var ents []entities.Entity
	if req.EntitiesPath != "" {
		var rowErrs []error
		ents, rowErrs, err = loadTable("", req.EntitiesPath, parsers.LoadEntities)
		if err != nil {
			return nil, err
		}
		for _, rowErr := range rowErrs {
			h.logger.Warn("skipping entity row", "err", rowErr)
		}
	}

	upgrader := services.NewGroundingUpgrader(ents, h.hgnc, h.logger)
	result, err := upgrader.Upgrade(ctx, rows, services.UpgradeOptions{NormalizePrefixes: req.NormalizePrefixes})
	if err != nil {
		return nil, err
	}

	if err := writeGroundings(req.OutputPath, result.Groundings, req.Overwrite); err != nil {
		return nil, err
	}
	h.logger.Debug("groundings written", "path", req.OutputPath, "rows", len(result.Groundings))

	return result, nil
}

func readLegacy(path string) ([]parsers.LegacyGrounding, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening legacy grounding map: %w", err)
	}
	defer file.Close()

	rows, err := parsers.ReadLegacyGroundings(file)
	if err != nil {
		return nil, fmt.Errorf("reading legacy grounding map %s: %w", path, err)
	}
	return rows, nil
}

func writeGroundings(path string, groundings []entities.Grounding, overwrite bool) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return parsers.WriteGroundings(file, groundings)
}
