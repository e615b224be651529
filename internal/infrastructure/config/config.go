// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for famplex configuration.
	DefaultConfigDir = ".famplex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultEnvFile is read from the config directory when present.
	DefaultEnvFile = ".env"
)

// Environment variables that override the config file.
const (
	EnvHGNCFile   = "FAMPLEX_HGNC_FILE"
	EnvChEBIFile  = "FAMPLEX_CHEBI_FILE"
	EnvPubChemURL = "FAMPLEX_PUBCHEM_URL"
	EnvOffline    = "FAMPLEX_OFFLINE"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Resources ResourcesConfig `yaml:"resources"`
	HGNC      HGNCConfig      `yaml:"hgnc"`
	ChEBI     ChEBIConfig     `yaml:"chebi"`
	PubChem   PubChemConfig   `yaml:"pubchem"`
	Cache     CacheConfig     `yaml:"cache"`

	// Offline disables every remote lookup.
	Offline bool `yaml:"offline,omitempty"`
}

// ResourcesConfig names the four resource tables, relative to the base directory.
type ResourcesConfig struct {
	Entities     string `yaml:"entities" validate:"required"`
	Relations    string `yaml:"relations" validate:"required"`
	Equivalences string `yaml:"equivalences" validate:"required"`
	GroundingMap string `yaml:"grounding_map" validate:"required"`
}

// HGNCConfig configures symbol resolution.
type HGNCConfig struct {
	// File is a local HGNC export. When set it takes precedence over the REST service.
	File    string        `yaml:"file,omitempty"`
	RestURL string        `yaml:"rest_url,omitempty" validate:"omitempty,url"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

// ChEBIConfig configures the local ChEBI compound list.
type ChEBIConfig struct {
	CompoundsFile string `yaml:"compounds_file,omitempty"`
}

// PubChemConfig configures the PubChem PUG REST client.
type PubChemConfig struct {
	BaseURL           string        `yaml:"base_url" validate:"required,url"`
	Concurrency       int           `yaml:"concurrency" validate:"min=1,max=32"`
	RequestsPerSecond float64       `yaml:"requests_per_second" validate:"gt=0"`
	Timeout           time.Duration `yaml:"timeout" validate:"gt=0"`
	ProbeTimeout      time.Duration `yaml:"probe_timeout" validate:"gt=0"`
}

// CacheConfig configures the persistent lookup cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Path    string        `yaml:"path"`
	TTL     time.Duration `yaml:"ttl" validate:"gt=0"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Resources: ResourcesConfig{
			Entities:     "entities.csv",
			Relations:    "relations.csv",
			Equivalences: "equivalences.csv",
			GroundingMap: "grounding_map.csv",
		},
		HGNC: HGNCConfig{
			RestURL: "https://rest.genenames.org",
			Timeout: 10 * time.Second,
		},
		ChEBI: ChEBIConfig{
			CompoundsFile: "chebi_compounds.tsv",
		},
		PubChem: PubChemConfig{
			BaseURL:           "https://pubchem.ncbi.nlm.nih.gov/rest/pug",
			Concurrency:       4,
			RequestsPerSecond: 5,
			Timeout:           15 * time.Second,
			ProbeTimeout:      5 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    filepath.Join(DefaultConfigDir, "lookups.db"),
			TTL:     7 * 24 * time.Hour,
		},
	}
}

// Load loads configuration from the .famplex directory in the given path.
// Defaults are used when no config file exists.
func Load(basePath string) (*Config, error) {
	envFile := filepath.Join(basePath, DefaultConfigDir, DefaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvHGNCFile); v != "" {
		c.HGNC.File = v
	}
	if v := os.Getenv(EnvChEBIFile); v != "" {
		c.ChEBI.CompoundsFile = v
	}
	if v := os.Getenv(EnvPubChemURL); v != "" {
		c.PubChem.BaseURL = v
	}
	if v := os.Getenv(EnvOffline); v != "" {
		offline, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvOffline, err)
		}
		c.Offline = offline
	}
	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Path resolves a configured path against basePath. Absolute paths are kept.
func Path(basePath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}

// ConfigDir returns the path to the .famplex config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
