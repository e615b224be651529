package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/famplex/famplex/internal/application/handlers"
	"github.com/famplex/famplex/internal/domain/ports"
	"github.com/famplex/famplex/internal/domain/services"
	"github.com/famplex/famplex/internal/infrastructure/chebi"
	"github.com/famplex/famplex/internal/infrastructure/config"
	"github.com/famplex/famplex/internal/infrastructure/hgnc"
	"github.com/famplex/famplex/internal/infrastructure/logging"
	"github.com/famplex/famplex/internal/infrastructure/lookupcache/sqlite"
	"github.com/famplex/famplex/internal/infrastructure/pubchem"
)

const offlineReason = "offline mode"

// Deps holds high-level dependencies for commands.
// Only handlers are exposed; adapters are internal.
type Deps struct {
	Config       *config.Config
	BasePath     string
	Logger       *log.Logger
	CheckHandler *handlers.CheckHandler
}

// depOptions switch off optional dependencies.
type depOptions struct {
	offline bool
	noCache bool
}

// newLogger creates the stderr console logger.
func newLogger(g *globalFlags) *log.Logger {
	return logging.New(os.Stderr, logging.Options{Debug: g.debug})
}

// loadConfig resolves the base directory and loads its configuration.
func loadConfig(g *globalFlags, opts depOptions) (string, *config.Config, error) {
	basePath, err := filepath.Abs(g.dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving directory: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return "", nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.offline {
		cfg.Offline = true
	}
	return basePath, cfg, nil
}

// withCheckDeps loads config, probes the external dependencies and builds the
// check handler, then calls fn. It handles cleanup automatically.
func withCheckDeps(ctx context.Context, g *globalFlags, opts depOptions, fn func(*Deps) error) error {
	basePath, cfg, err := loadConfig(g, opts)
	if err != nil {
		return err
	}
	logger := newLogger(g)

	extDeps := services.ExternalDeps{
		HGNC:               probeHGNC(ctx, basePath, cfg, logger),
		ChEBI:              probeChEBI(basePath, cfg, logger),
		PubChem:            probePubChem(ctx, cfg, logger),
		PubChemConcurrency: cfg.PubChem.Concurrency,
		Logger:             logger,
	}

	var history ports.RunHistory
	if cfg.Cache.Enabled && !opts.noCache {
		store, err := openStore(ctx, basePath, cfg)
		if err != nil {
			logger.Warn("lookup cache unavailable", "err", err)
		} else {
			defer store.Close()
			if n, err := store.CountLookups(ctx); err == nil {
				logger.Debug("lookup cache opened", "path", store.Path(), "entries", n)
			}
			extDeps.Cache = store
			history = store
		}
	}

	checker := services.NewChecker(services.NewExternalValidator(extDeps))

	return fn(&Deps{
		Config:       cfg,
		BasePath:     basePath,
		Logger:       logger,
		CheckHandler: handlers.NewCheckHandler(checker, history, logger),
	})
}

// probeHGNC prefers a local HGNC export and falls back to the REST service.
func probeHGNC(ctx context.Context, basePath string, cfg *config.Config, logger *log.Logger) ports.Capability[ports.HGNCResolver] {
	if cfg.HGNC.File != "" {
		resolver, err := hgnc.LoadFile(config.Path(basePath, cfg.HGNC.File))
		if err != nil {
			logger.Warn("HGNC file unavailable", "err", err)
			return ports.Unavailable[ports.HGNCResolver](err.Error())
		}
		logger.Debug("HGNC file loaded", "genes", resolver.Len())
		return ports.Available[ports.HGNCResolver](resolver)
	}

	if cfg.Offline {
		return ports.Unavailable[ports.HGNCResolver](offlineReason)
	}
	if cfg.HGNC.RestURL == "" {
		return ports.Unavailable[ports.HGNCResolver]("no HGNC source configured")
	}

	resolver := hgnc.NewRESTResolver(cfg.HGNC.RestURL, cfg.HGNC.Timeout, logger)
	probeCtx, cancel := context.WithTimeout(ctx, cfg.HGNC.Timeout)
	defer cancel()
	if err := resolver.Probe(probeCtx); err != nil {
		logger.Warn("HGNC service unavailable", "err", err)
		return ports.Unavailable[ports.HGNCResolver](err.Error())
	}
	logger.Debug("HGNC service available", "url", cfg.HGNC.RestURL)
	return ports.Available[ports.HGNCResolver](resolver)
}

// probeChEBI loads the local compounds dump.
func probeChEBI(basePath string, cfg *config.Config, logger *log.Logger) ports.Capability[ports.ChEBIIndex] {
	if cfg.ChEBI.CompoundsFile == "" {
		return ports.Unavailable[ports.ChEBIIndex]("no ChEBI compounds file configured")
	}

	index, err := chebi.LoadFile(config.Path(basePath, cfg.ChEBI.CompoundsFile))
	if err != nil {
		logger.Debug("ChEBI compounds file unavailable", "err", err)
		return ports.Unavailable[ports.ChEBIIndex](err.Error())
	}
	logger.Debug("ChEBI compounds loaded", "compounds", index.Len())
	return ports.Available[ports.ChEBIIndex](index)
}

// probePubChem checks that PUG REST answers.
func probePubChem(ctx context.Context, cfg *config.Config, logger *log.Logger) ports.Capability[ports.PubChemClient] {
	if cfg.Offline {
		return ports.Unavailable[ports.PubChemClient](offlineReason)
	}

	client := pubchem.NewClient(pubchem.Config{
		BaseURL:           cfg.PubChem.BaseURL,
		RequestsPerSecond: cfg.PubChem.RequestsPerSecond,
		Timeout:           cfg.PubChem.Timeout,
	}, logger)

	probeCtx, cancel := context.WithTimeout(ctx, cfg.PubChem.ProbeTimeout)
	defer cancel()
	if err := client.Probe(probeCtx); err != nil {
		logger.Warn("PubChem unavailable", "err", err)
		return ports.Unavailable[ports.PubChemClient](err.Error())
	}
	return ports.Available[ports.PubChemClient](client)
}

// openStore opens the lookup cache, creating its schema and dropping expired entries.
func openStore(ctx context.Context, basePath string, cfg *config.Config) (*sqlite.Store, error) {
	path := config.Path(basePath, cfg.Cache.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	store, err := sqlite.NewStore(path, cfg.Cache.TTL)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("ensuring cache schema: %w", err)
	}
	if _, err := store.Purge(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
