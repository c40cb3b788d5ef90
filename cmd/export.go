package cmd

import (
	"fmt"
	"log/slog"

	"github.com/allenv0/snowball/internal/catalog"
	"github.com/allenv0/snowball/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var catalogPath string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert a dimension catalog to Parquet or YAML",
		Long: `Reads a catalog JSON file previously written by scan and converts it to
a columnar or human-readable format for analysis. The output format is
selected by the output file extension.`,
		Example: `  # Export the default catalog to Parquet
  snowball export

  # Export to YAML
  snowball export --output catalog.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			if err := export.Write(cat, output); err != nil {
				return err
			}

			slog.Info("Catalog exported", "entries", len(cat), "output", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", defaultOutput, "Catalog JSON file written by scan")
	cmd.Flags().StringVar(&output, "output", "catalog.parquet", "Output file (.parquet, .yaml or .yml)")

	return cmd
}
