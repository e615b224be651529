// Package main provides the entry point for the famplex CLI application.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

// errIntegrityFailed signals that the report contains failing errors.
// The report itself has already been printed.
var errIntegrityFailed = errors.New("integrity check failed")

// globalFlags are shared by every subcommand.
type globalFlags struct {
	dir   string
	debug bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, errIntegrityFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "famplex",
		Short:         "Integrity checks and maintenance for the FamPlex resource tables",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&g.dir, "dir", "d", ".", "Directory containing the resource tables")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newCheckCmd(g),
		newUpgradeCmd(g),
		newInitCmd(g),
		newHistoryCmd(g),
	)

	return rootCmd
}
