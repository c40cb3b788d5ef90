package cmd

import (
	"fmt"

	"github.com/allenv0/snowball/internal/imaging"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Print the pixel dimensions of individual files",
		Long: `Decodes each named file and prints its pixel dimensions. Files that do
not decode as images are reported and skipped; they do not fail the
command.`,
		Example: `  snowball inspect media/IMG_0001.heic photo.jpg`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := imaging.Ensure(); err != nil {
				return err
			}

			for _, path := range args {
				width, height, err := imaging.Dimensions(path)
				if err != nil {
					fmt.Printf("%s: not a readable image\n", path)
					continue
				}
				fmt.Printf("%s: %dx%d\n", path, width, height)
			}
			return nil
		},
	}

	return cmd
}
