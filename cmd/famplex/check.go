package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type checkFlags struct {
	offline bool
	noCache bool
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the resource tables for integrity problems",
		Long: "Checks entities, relations, equivalences and the grounding map for malformed rows, " +
			"duplicates and dangling references, then validates identifiers against HGNC, ChEBI and PubChem " +
			"where those are available. Exits with status 1 if any error was found.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, g, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.offline, "offline", false, "Skip remote HGNC and PubChem lookups")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "Do not read or write the lookup cache")

	return cmd
}

func runCheck(cmd *cobra.Command, g *globalFlags, flags checkFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withCheckDeps(ctx, g, depOptions{offline: flags.offline, noCache: flags.noCache}, func(d *Deps) error {
		result, err := d.CheckHandler.Handle(ctx, d.BasePath, d.Config.Resources, out)
		if err != nil {
			return fmt.Errorf("checking resources: %w", err)
		}

		d.Logger.Info("check finished",
			"run_id", result.RunID,
			"errors", result.Errors,
			"warnings", result.Warnings,
			"skipped", len(result.Skipped))

		if result.Failed {
			return errIntegrityFailed
		}
		return nil
	})
}
