package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd(g *globalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent check runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, g, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", DefaultHistoryLimit, "Number of runs to show")

	return cmd
}

func runHistory(cmd *cobra.Command, g *globalFlags, limit int) error {
	if limit < 1 || limit > MaxHistoryLimit {
		return fmt.Errorf("invalid --limit value %d (valid: 1-%d)", limit, MaxHistoryLimit)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	basePath, cfg, err := loadConfig(g, depOptions{})
	if err != nil {
		return err
	}
	if !cfg.Cache.Enabled {
		return errors.New("run history needs the lookup cache; set cache.enabled in the config")
	}

	store, err := openStore(ctx, basePath, cfg)
	if err != nil {
		return fmt.Errorf("opening lookup cache: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	for _, run := range runs {
		status := "ok"
		if run.Failed {
			status = "FAILED"
		}
		line := fmt.Sprintf("%s  %s  %-6s  %d errors, %d warnings",
			run.StartedAt.Local().Format(time.DateTime), run.ID, status, run.Errors, run.Warnings)
		if len(run.Skipped) > 0 {
			line += "  (skipped: " + strings.Join(run.Skipped, ", ") + ")"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
