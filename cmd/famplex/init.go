package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/famplex/famplex/internal/application/handlers"
)

func newInitCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default famplex configuration",
		Long:  "Creates a .famplex directory with default configuration and an empty lookup cache.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, g)
		},
	}
}

func runInit(cmd *cobra.Command, g *globalFlags) error {
	out := cmd.OutOrStdout()

	basePath, err := filepath.Abs(g.dir)
	if err != nil {
		return fmt.Errorf("resolving directory: %w", err)
	}

	result, err := handlers.NewInitHandler().Handle(cmd.Context(), basePath)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
	if result.CachePath != "" {
		fmt.Fprintf(out, "Created %s\n", result.CachePath)
	}
	return nil
}
