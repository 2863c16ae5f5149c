package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show cube state after applying a scramble",
	Long: `Show displays the cube state after applying a scramble.

Examples:
  cube show "R U R' U'"
  cube show "R U R' U'" --color
  cube show "" --by-face`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}

		dimension, _ := cmd.Flags().GetInt("dimension")
		useColor, _ := cmd.Flags().GetBool("color")
		byFace, _ := cmd.Flags().GetBool("by-face")

		c := cube.NewCube(dimension)

		if scramble != "" {
			moves, err := alg.Parse(scramble)
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				return
			}
			if err := alg.Play(c, moves); err != nil {
				fmt.Printf("Error applying scramble: %v\n", err)
				return
			}
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Solved cube state:")
		}

		if byFace {
			fmt.Println(c.FaceByFaceString(useColor))
		} else {
			fmt.Println(c.UnfoldedString(useColor))
		}
	},
}

func init() {
	showCmd.Flags().IntP("dimension", "d", 3, "Cube dimension (2, 3, 4, etc.)")
	showCmd.Flags().BoolP("color", "c", false, "Use colored output")
	showCmd.Flags().Bool("by-face", false, "List each face's grid separately instead of the unfolded net")
}
