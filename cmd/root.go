package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "snowball",
		Short: "Catalog the pixel dimensions of a directory of media files",
		Long: `Snowball scans a directory of media files, decodes each one as an image
(JPEG, PNG, GIF, WebP, BMP, TIFF and HEIC/HEIF photos), and writes the
resulting list of [path, [width, height]] entries to a JSON catalog.

Running snowball with no subcommand scans the conventional media/
directory, falling back to the current directory when it does not exist.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			logLevel := slog.LevelInfo
			if verbose {
				logLevel = slog.LevelDebug
			}
			// Logs go to stderr; stdout carries only the scan summary.
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
			slog.SetDefault(logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation behaves exactly like `snowball scan`.
			return runScan(envOr("SNOWBALL_MEDIA_DIR", defaultMediaDir), envOr("SNOWBALL_OUTPUT", defaultOutput))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (reports skipped files)")

	// Add subcommands
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

// envOr resolves an environment fallback for a flag that was left at its
// default.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
