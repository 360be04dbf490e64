package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/gradhash/internal/colour"
)

// newRandomCmd represents the random command
func newRandomCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random colour",
		Long: `Print a random colour as six hex digits, ready to pass as a start or end colour.

Examples:
  gradhash random
  gradhash random --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := rand.NewPCG(rand.Uint64(), rand.Uint64())
			if cmd.Flags().Changed("seed") {
				src = rand.NewPCG(seed, seed)
			}
			fmt.Fprintln(cmd.OutOrStdout(), colour.RandomRGB(rand.New(src)).Hex())
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible colour")
	return cmd
}
