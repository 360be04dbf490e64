// Package cli provides the command-line interface for gradhash.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/gradhash/internal/image"
	"github.com/jmylchreest/gradhash/internal/version"
)

// NewRootCmd builds the gradhash command tree.
func NewRootCmd() *cobra.Command {
	opts := DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "gradhash <start_colour> <end_colour> <blocks_per_vector>",
		Short: "Generate a blocked gradient image named by its average hash",
		Long: `gradhash paints a 1024x1024 image as a grid of solid blocks whose colours
step from a start colour towards an end colour in reading order, then saves it
as <hash>.png where <hash> is the average hash of the finished image.

Colours are six hex digits without a leading '#'. The block count is the
number of blocks along each edge, so the image holds blocks_per_vector²
blocks. When 1024 is not a multiple of the block count a thin strip on the
right and bottom edges is left transparent.

Examples:
  # Black to white in a 4x4 grid, written to the current directory
  gradhash 000000 ffffff 4

  # Write into another directory as TIFF
  gradhash -o ~/Pictures -f tiff 1e1e2e f38ba8 8

  # Show the gradient in the terminal without writing anything
  gradhash --preview --dry-run ff8000 0000ff 6

  # Start from a random colour
  gradhash $(gradhash random) ffffff 5`,
		Args:         cobra.ExactArgs(3),
		Version:      version.Short(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	addOutputFlags(rootCmd.Flags(), opts)
	addLogFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRandomCmd())
	rootCmd.AddCommand(newVerifyCmd(opts))

	return rootCmd
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// supportedFormats lists output formats for help text.
func supportedFormats() []string {
	formats := make([]string, 0, len(image.Formats()))
	for _, f := range image.Formats() {
		formats = append(formats, f.String())
	}
	return formats
}
