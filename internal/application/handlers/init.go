package handlers

import (
	"context"
	"fmt"

	"github.com/famplex/famplex/internal/infrastructure/config"
	"github.com/famplex/famplex/internal/infrastructure/lookupcache/sqlite"
)

// InitHandler writes a default configuration and prepares the lookup cache.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	// CachePath is empty when the cache is disabled.
	CachePath string
}

// Handle initializes famplex configuration in basePath.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("famplex already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{ConfigPath: config.ConfigFilePath(basePath)}
	if !cfg.Cache.Enabled {
		return result, nil
	}

	result.CachePath = config.Path(basePath, cfg.Cache.Path)
	store, err := sqlite.NewStore(result.CachePath, cfg.Cache.TTL)
	if err != nil {
		return nil, fmt.Errorf("opening lookup cache: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("creating lookup cache: %w", err)
	}

	return result, nil
}
