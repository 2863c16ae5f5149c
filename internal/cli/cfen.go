package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cfen"
	"github.com/cubeforge/nxn/internal/cube"
)

var parseCfenCmd = &cobra.Command{
	Use:   "parse-cfen <cfen-string>",
	Short: "Parse and display a CFEN string as a cube state",
	Long: `Parse a CFEN (Cube Forsyth-Edwards Notation) string and display the resulting cube state.

Examples:
  cube parse-cfen "YB|Y9/R9/B9/W9/O9/G9"                    # Solved 3x3
  cube parse-cfen "YB|?Y?YYY?Y?/?9/?9/?9/?9/?9"              # Yellow cross only
  cube parse-cfen "YB|Y16/R16/B16/W16/O16/G16"               # Solved 4x4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfenStr := args[0]

		cfenState, err := cfen.ParseCFEN(cfenStr)
		if err != nil {
			return fmt.Errorf("failed to parse CFEN: %v", err)
		}

		c, err := cfenState.ToCube()
		if err != nil {
			return fmt.Errorf("failed to convert CFEN to cube: %v", err)
		}

		useColor, _ := cmd.Flags().GetBool("color")

		fmt.Printf("CFEN: %s\n", cfenStr)
		fmt.Printf("Dimension: %dx%dx%d\n", cfenState.Dimension, cfenState.Dimension, cfenState.Dimension)
		fmt.Printf("Orientation: %s up, %s front\n",
			cfenState.Orientation.Up.String(),
			cfenState.Orientation.Front.String())
		fmt.Printf("Solved: %t\n\n", c.IsSolved())

		fmt.Print(c.UnfoldedString(useColor))

		return nil
	},
}

var generateCfenCmd = &cobra.Command{
	Use:   "generate-cfen <scramble>",
	Short: "Apply scramble moves and output the resulting CFEN string",
	Long: `Apply a scramble sequence to a solved cube and output the resulting state as a CFEN string.

Examples:
  cube generate-cfen "R U R' U'"                    # Simple scramble
  cube generate-cfen "R U R' U'" --dimension 4      # 4x4 cube
  cube generate-cfen "R U R' U'" --start "YB|..."   # Custom starting state`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := args[0]

		dimension, _ := cmd.Flags().GetInt("dimension")
		if dimension < 2 {
			dimension = 3
		}

		startCfen, _ := cmd.Flags().GetString("start")
		var c *cube.Cube

		if startCfen != "" {
			cfenState, err := cfen.ParseCFEN(startCfen)
			if err != nil {
				return fmt.Errorf("invalid starting CFEN: %v", err)
			}
			if dimension != 3 && cfenState.Dimension != dimension {
				return fmt.Errorf("CFEN dimension %d doesn't match specified dimension %d",
					cfenState.Dimension, dimension)
			}
			c, err = cfenState.ToCube()
			if err != nil {
				return fmt.Errorf("failed to convert starting CFEN to cube: %v", err)
			}
		} else {
			c = cube.NewCube(dimension)
		}

		if scramble != "" {
			moves, err := alg.Parse(scramble)
			if err != nil {
				return fmt.Errorf("invalid scramble: %v", err)
			}
			if err := alg.Play(c, moves); err != nil {
				return fmt.Errorf("failed to apply scramble: %v", err)
			}
		}

		cfenStr, err := cfen.GenerateCFEN(c)
		if err != nil {
			return fmt.Errorf("failed to generate CFEN: %v", err)
		}

		fmt.Println(cfenStr)
		return nil
	},
}

var verifyCfenCmd = &cobra.Command{
	Use:   "verify-cfen <scramble> <solution> --target <cfen>",
	Short: "Verify that a solution reaches the target CFEN state",
	Long: `Apply a scramble and solution, then verify the result matches the target CFEN pattern.
Supports wildcard matching where '?' positions are ignored.

Examples:
  cube verify-cfen "R U R' U'" "U R U' R'" --target "YB|?Y?YYY?Y?/?9/?9/?9/?9/?9"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := args[0]
		solution := args[1]

		targetCfen, _ := cmd.Flags().GetString("target")
		if targetCfen == "" {
			return fmt.Errorf("--target flag is required")
		}

		targetState, err := cfen.ParseCFEN(targetCfen)
		if err != nil {
			return fmt.Errorf("invalid target CFEN: %v", err)
		}

		dimension, _ := cmd.Flags().GetInt("dimension")
		if dimension < 2 {
			dimension = targetState.Dimension
		} else if dimension != targetState.Dimension {
			return fmt.Errorf("specified dimension %d doesn't match target CFEN dimension %d",
				dimension, targetState.Dimension)
		}

		testCube := cube.NewCube(dimension)

		if scramble != "" {
			scrambleMoves, err := alg.Parse(scramble)
			if err != nil {
				return fmt.Errorf("invalid scramble: %v", err)
			}
			if err := alg.Play(testCube, scrambleMoves); err != nil {
				return fmt.Errorf("failed to apply scramble: %v", err)
			}
		}

		if solution != "" {
			solutionMoves, err := alg.Parse(solution)
			if err != nil {
				return fmt.Errorf("invalid solution: %v", err)
			}
			if err := alg.Play(testCube, solutionMoves); err != nil {
				return fmt.Errorf("failed to apply solution: %v", err)
			}
		}

		matches, err := targetState.MatchesCube(testCube)
		if err != nil {
			return fmt.Errorf("failed to match against target: %v", err)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")

		if matches {
			fmt.Println("PASS: solution matches target CFEN pattern")
			if verbose {
				actualCfen, _ := cfen.GenerateCFEN(testCube)
				fmt.Printf("Target:  %s\n", targetCfen)
				fmt.Printf("Actual:  %s\n", actualCfen)
			}
			return nil
		}

		fmt.Println("FAIL: solution does not match target CFEN pattern")
		if verbose {
			actualCfen, _ := cfen.GenerateCFEN(testCube)
			fmt.Printf("Target:  %s\n", targetCfen)
			fmt.Printf("Actual:  %s\n", actualCfen)
		}
		return fmt.Errorf("verification failed")
	},
}

var matchCfenCmd = &cobra.Command{
	Use:   "match-cfen <current-cfen> <target-cfen>",
	Short: "Compare two CFEN strings and report whether they match",
	Long: `Compare two CFEN strings. Supports wildcard matching where '?' positions are ignored.

Examples:
  cube match-cfen "YB|Y9/R9/B9/W9/O9/G9" "YB|Y9/R9/B9/W9/O9/G9"     # Perfect match
  cube match-cfen "YB|YRY..." "YB|?R?..."                             # Partial match`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		currentCfen := args[0]
		targetCfen := args[1]

		currentState, err := cfen.ParseCFEN(currentCfen)
		if err != nil {
			return fmt.Errorf("invalid current CFEN: %v", err)
		}

		targetState, err := cfen.ParseCFEN(targetCfen)
		if err != nil {
			return fmt.Errorf("invalid target CFEN: %v", err)
		}

		if currentState.Dimension != targetState.Dimension {
			return fmt.Errorf("dimension mismatch: current %d vs target %d",
				currentState.Dimension, targetState.Dimension)
		}

		currentCube, err := currentState.ToCube()
		if err != nil {
			return fmt.Errorf("failed to convert current CFEN to cube: %v", err)
		}

		matches, err := targetState.MatchesCube(currentCube)
		if err != nil {
			return fmt.Errorf("failed to match: %v", err)
		}

		if matches {
			fmt.Println("MATCH: current state matches target pattern")
		} else {
			fmt.Println("NO MATCH: current state does not match target pattern")
		}

		fmt.Printf("Current: %s\n", currentCfen)
		fmt.Printf("Target:  %s\n", targetCfen)

		return nil
	},
}

func init() {
	parseCfenCmd.Flags().Bool("color", false, "Use colored output")

	generateCfenCmd.Flags().Int("dimension", 3, "Cube dimension (2-20)")
	generateCfenCmd.Flags().String("start", "", "Starting CFEN state (default: solved)")

	verifyCfenCmd.Flags().String("target", "", "Target CFEN pattern (required)")
	verifyCfenCmd.Flags().Int("dimension", 0, "Cube dimension (auto-detect from target if not specified)")
	verifyCfenCmd.Flags().Bool("verbose", false, "Show detailed comparison")
	verifyCfenCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(parseCfenCmd)
	rootCmd.AddCommand(generateCfenCmd)
	rootCmd.AddCommand(verifyCfenCmd)
	rootCmd.AddCommand(matchCfenCmd)
}
