package main

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 1000
)

// Default output file for upgrade-groundings.
const defaultUpgradeOutput = "grounding_map_upgraded.csv"
