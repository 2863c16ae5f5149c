package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubeforge/nxn/internal/alg"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [moves]",
	Short: "Optimize a sequence of moves",
	Long: `Optimize a sequence of moves by combining consecutive moves and removing cancellations.

Examples:
  cube optimize "R R"           # Outputs: R2
  cube optimize "R R'"          # Outputs: (empty - moves cancel)
  cube optimize "R U R' U'"     # Outputs: R U R' U' (no optimization possible)
  cube optimize "R R R"         # Outputs: R'
  cube optimize "F2 F2"         # Outputs: (empty - moves cancel)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves := args[0]

		parsed, err := alg.Parse(moves)
		if err != nil {
			return fmt.Errorf("error parsing moves: %v", err)
		}
		originalCount := len(parsed.Flatten())

		optimized := alg.Optimize(parsed)
		optimizedStr := optimized.String()
		optimizedCount := len(optimized.Flatten())

		fmt.Printf("Original:  %s (%d moves)\n", moves, originalCount)
		if optimizedStr == "" {
			fmt.Printf("Optimized: (empty - all moves cancel out)\n")
		} else {
			fmt.Printf("Optimized: %s (%d moves)\n", optimizedStr, optimizedCount)
		}

		if originalCount != optimizedCount {
			fmt.Printf("Saved %d move(s)\n", originalCount-optimizedCount)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}
