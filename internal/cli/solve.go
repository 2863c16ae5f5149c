package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cfen"
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/logging"
	"github.com/cubeforge/nxn/internal/orchestrator"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube using the specified method.
The scramble should be provided as a string of moves.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		method, _ := cmd.Flags().GetString("method")
		dimension, _ := cmd.Flags().GetInt("dimension")
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")
		debug, _ := cmd.Flags().GetBool("debug")

		var c *cube.Cube
		if startCfen != "" {
			cfenState, err := cfen.ParseCFEN(startCfen)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing starting CFEN: %v\n", err)
				}
				os.Exit(1)
			}
			dimension = cfenState.Dimension

			c, err = cfenState.ToCube()
			if err != nil {
				if !headless {
					fmt.Printf("Error converting CFEN to cube: %v\n", err)
				}
				os.Exit(1)
			}
		} else {
			c = cube.NewCube(dimension)
		}

		if !headless {
			fmt.Printf("Solving %dx%dx%d cube with scramble: %s\n", dimension, dimension, dimension, scramble)
			fmt.Printf("Using method: %s\n", method)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		if scramble != "" {
			moves, err := alg.Parse(scramble)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing scramble: %v\n", err)
				}
				os.Exit(1)
			}
			if err := alg.Play(c, moves); err != nil {
				if !headless {
					fmt.Printf("Error applying scramble: %v\n", err)
				}
				os.Exit(1)
			}
		}

		if !headless {
			useColor, _ := cmd.Flags().GetBool("color")
			fmt.Printf("\nCube state after scramble:\n%s\n", c.UnfoldedString(useColor))
		}

		m := solver3MethodFromFlag(method)
		o := orchestrator.New(c, logging.New(debug)).WithMethod(m)
		result, err := o.Solve(orchestrator.All)
		if err != nil {
			if !headless {
				fmt.Printf("Error solving cube: %v\n", err)
			}
			os.Exit(1)
		}

		solutionStr := ""
		moveCount := 0
		if result.AppliedAlg != nil {
			solutionStr = result.AppliedAlg.String()
			moveCount = len(result.AppliedAlg.Flatten())
		}

		if useCfenOutput {
			cfenStr, err := cfen.GenerateCFEN(c)
			if err != nil {
				if !headless {
					fmt.Printf("Error generating CFEN: %v\n", err)
				}
				os.Exit(1)
			}
			fmt.Print(cfenStr)
		} else if headless {
			fmt.Print(solutionStr)
		} else {
			fmt.Printf("Solution: %s\n", solutionStr)
			fmt.Printf("Moves: %d\n", moveCount)
			fmt.Printf("Final state: %s\n", result.FinalState)
			if result.EdgeParityHit {
				fmt.Println("Edge parity was detected and repaired along the way.")
			}
			if result.CornerSwapHit {
				fmt.Println("Corner swap (PLL) parity was detected and repaired along the way.")
			}
		}
	},
}

func init() {
	solveCmd.Flags().StringP("method", "a", "cfop", "3x3 solving method to use (beginner, cfop)")
	solveCmd.Flags().IntP("dimension", "d", 3, "Cube dimension (2, 3, 4, etc.)")
	solveCmd.Flags().BoolP("color", "c", false, "Use colored output")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
	solveCmd.Flags().Bool("debug", false, "Emit structured solver trace logging to stderr")
}
