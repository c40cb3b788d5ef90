package cmd

import (
	"fmt"

	"github.com/allenv0/snowball/internal/catalog"
	"github.com/allenv0/snowball/internal/imaging"
	"github.com/allenv0/snowball/internal/scanner"
	"github.com/spf13/cobra"
)

const (
	defaultMediaDir = "media"
	defaultOutput   = "image_widths_heights.json"
)

func newScanCmd() *cobra.Command {
	var dir string
	var output string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a media directory and write the dimension catalog",
		Long: `Scans the immediate entries of the media directory (no recursion),
records the pixel width and height of every entry that decodes as an
image, and writes the catalog as a JSON array of [path, [width, height]]
pairs. Entries that do not decode (text files, subdirectories, broken
images) are skipped.

If the media directory does not exist, the current directory is scanned
instead and recorded paths carry no directory prefix.`,
		Example: `  # Scan ./media (or . if it does not exist)
  snowball scan

  # Scan a different directory into a different catalog file
  snowball scan --dir photos --output photos.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Env fallbacks apply only when the flag was not given; .env has
			// been loaded by the root command at this point.
			if !cmd.Flags().Changed("dir") {
				dir = envOr("SNOWBALL_MEDIA_DIR", dir)
			}
			if !cmd.Flags().Changed("output") {
				output = envOr("SNOWBALL_OUTPUT", output)
			}
			return runScan(dir, output)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultMediaDir, "Media subdirectory to prefer as the scan root")
	cmd.Flags().StringVar(&output, "output", defaultOutput, "Catalog filename to write in the working directory")

	return cmd
}

func runScan(dir, output string) error {
	// Verify HEIF decoding before touching the filesystem; a build without
	// it would silently drop every iPhone photo.
	if err := imaging.Ensure(); err != nil {
		return err
	}

	cat, err := scanner.Scan(dir)
	if err != nil {
		return err
	}

	if err := catalog.Write(output, cat); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	fmt.Printf("Successfully created %s with %d files.\n", output, len(cat))
	return nil
}
