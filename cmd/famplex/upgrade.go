package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/famplex/famplex/internal/application/handlers"
	"github.com/famplex/famplex/internal/domain/services"
	"github.com/famplex/famplex/internal/infrastructure/config"
)

type upgradeFlags struct {
	entities          string
	output            string
	normalizePrefixes bool
	offline           bool
	force             bool
}

func newUpgradeCmd(g *globalFlags) *cobra.Command {
	var flags upgradeFlags

	cmd := &cobra.Command{
		Use:   "upgrade-groundings <legacy.csv>",
		Short: "Convert a legacy grounding map to the 4-column format",
		Long: "Reads rows of the form text,ns1,id1,ns2,id2,... and writes one text,ns,id,name row per pair. " +
			"FamPlex names are mapped to ids through the entities table and HGNC symbols through HGNC.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpgrade(cmd, g, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.entities, "entities", "e", "", "Entities table used to label FamPlex groundings (default: configured entities table)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultUpgradeOutput, "Output file")
	cmd.Flags().BoolVar(&flags.normalizePrefixes, "normalize-prefixes", false, "Add GO:, CHEBI: and CHEMBL prefixes to bare ids")
	cmd.Flags().BoolVar(&flags.offline, "offline", false, "Do not contact the HGNC service")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite the output file if it exists")

	return cmd
}

func runUpgrade(cmd *cobra.Command, g *globalFlags, legacyPath string, flags upgradeFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	basePath, cfg, err := loadConfig(g, depOptions{offline: flags.offline})
	if err != nil {
		return err
	}
	logger := newLogger(g)

	entitiesPath := flags.entities
	if entitiesPath == "" {
		entitiesPath = config.Path(basePath, cfg.Resources.Entities)
	}

	handler := handlers.NewUpgradeHandler(probeHGNC(ctx, basePath, cfg, logger), logger)
	result, err := handler.Handle(ctx, handlers.UpgradeRequest{
		LegacyPath:        legacyPath,
		EntitiesPath:      entitiesPath,
		OutputPath:        flags.output,
		NormalizePrefixes: flags.normalizePrefixes,
		Overwrite:         flags.force,
	})
	if err != nil {
		return fmt.Errorf("upgrading groundings: %w", err)
	}

	fmt.Fprintf(out, "Wrote %d groundings to %s\n", len(result.Groundings), flags.output)
	printUnlabelled(out, result.Unlabelled)
	return nil
}

// printUnlabelled prints per-namespace counts with namespaces right-aligned.
func printUnlabelled(w io.Writer, counts []services.UnlabelledCount) {
	if len(counts) == 0 {
		return
	}

	total, width := 0, 0
	for _, c := range counts {
		total += c.Count
		width = max(width, len(c.Namespace))
	}

	fmt.Fprintf(w, "\n%d groundings are unlabelled:\n", total)
	for _, c := range counts {
		fmt.Fprintf(w, "%*s unlabelled %d\n", width, c.Namespace, c.Count)
	}
}
