package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/gradhash/internal/image"
)

// ErrHashMismatch is returned when a file's content does not hash to its name.
var ErrHashMismatch = errors.New("content hash does not match filename")

// newVerifyCmd represents the verify command
func newVerifyCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <image>...",
		Short: "Check that images are named after their average hash",
		Long: `Recompute the average hash of each image and compare it with the hash
in its filename. Exits non-zero if any file does not match.

Examples:
  gradhash verify 0f0f0f0f0f0f0f0f.png
  gradhash verify *.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts)

			var mismatched int
			for _, path := range args {
				named, err := image.HashFromFilename(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				img, err := image.Load(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				actual, err := image.AverageHash(img)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				if actual != named {
					mismatched++
					logger.Error("hash mismatch", "path", path, "named", named, "actual", actual, "distance", named.Distance(actual))
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s (content hashes to %s)\n", path, actual)
					continue
				}
				logger.Debug("hash verified", "path", path, "hash", actual)
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", path)
			}

			if mismatched > 0 {
				return fmt.Errorf("%w: %d of %d files", ErrHashMismatch, mismatched, len(args))
			}
			return nil
		},
	}
}
