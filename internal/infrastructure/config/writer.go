package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# FamPlex Configuration

resources:
  entities: entities.csv
  relations: relations.csv
  equivalences: equivalences.csv
  grounding_map: grounding_map.csv

hgnc:
  # file: hgnc_complete_set.txt (or set FAMPLEX_HGNC_FILE env var)
  rest_url: https://rest.genenames.org
  timeout: 10s

chebi:
  # ftp://ftp.ebi.ac.uk/pub/databases/chebi/Flat_file_tab_delimited/compounds.tsv.gz
  compounds_file: chebi_compounds.tsv

pubchem:
  base_url: https://pubchem.ncbi.nlm.nih.gov/rest/pug
  concurrency: 4
  requests_per_second: 5
  timeout: 15s
  probe_timeout: 5s

cache:
  enabled: true
  path: .famplex/lookups.db
  ttl: 168h
`

// WriteDefault creates the .famplex directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if Exists(basePath) {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a famplex config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile))
	return err == nil
}
