package cfen

import (
	"fmt"

	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
)

// cfenFaceOrder is the CFEN wire order: U/R/F/D/L/B.
var cfenFaceOrder = [6]geom.Face{geom.U, geom.R, geom.F, geom.D, geom.L, geom.B}

// ToCube builds a Cube matching state's dimension and fills it from the
// CFEN faces. The cube's CubeLayout is derived from state's orientation
// field rather than taken verbatim, since geom's face topology (and
// therefore CubeLayout) only varies which color labels which face, never
// the adjacency frame itself - any Up/Front pair reachable by a
// whole-cube rotation from BOY still yields a valid layout.
func (state *CFENState) ToCube() (*cube.Cube, error) {
	layout, err := layoutFromOrientation(state.Orientation)
	if err != nil {
		return nil, err
	}
	c := cube.NewCubeWithLayout(state.Dimension, layout)
	mapping := getOrientationMapping(state.Orientation)

	for cfenIdx, face := range state.Faces {
		target := mapping[cfenIdx]
		if len(face.Stickers) != state.Dimension*state.Dimension {
			return nil, fmt.Errorf("cfen: face %d has %d stickers, want %d", cfenIdx, len(face.Stickers), state.Dimension*state.Dimension)
		}
		for idx, color := range face.Stickers {
			row := idx / state.Dimension
			col := idx % state.Dimension
			c.Face(target).At(row, col).Color = color
		}
	}
	return c, nil
}

// FromCube samples c's current colors into a CFENState, displayed under
// the given orientation.
func FromCube(c *cube.Cube, orientation CFENOrientation) (*CFENState, error) {
	if c == nil {
		return nil, fmt.Errorf("cube cannot be nil")
	}
	mapping := getOrientationMapping(orientation)

	var faces [6]CFENFace
	for cfenIdx := 0; cfenIdx < 6; cfenIdx++ {
		src := mapping[cfenIdx]
		face := c.Face(src)
		stickers := make([]cube.Color, c.N*c.N)
		for row := 0; row < c.N; row++ {
			for col := 0; col < c.N; col++ {
				stickers[row*c.N+col] = face.At(row, col).Color
			}
		}
		faces[cfenIdx] = CFENFace{Stickers: stickers, Size: c.N}
	}

	return &CFENState{
		Orientation: orientation,
		Faces:       faces,
		Dimension:   c.N,
	}, nil
}

// GenerateCFEN creates a CFEN string from a cube with the canonical
// default orientation (Yellow up, Blue front).
func GenerateCFEN(c *cube.Cube) (string, error) {
	orientation := CFENOrientation{
		Up:    cube.Yellow,
		Front: cube.Blue,
	}

	cfenState, err := FromCube(c, orientation)
	if err != nil {
		return "", err
	}

	return cfenState.String(), nil
}

// MatchesCube checks if the cube state matches a CFEN pattern with wildcards.
func (state *CFENState) MatchesCube(c *cube.Cube) (bool, error) {
	if c.N != state.Dimension {
		return false, fmt.Errorf("cube dimension %d doesn't match CFEN dimension %d", c.N, state.Dimension)
	}

	cubeState, err := FromCube(c, state.Orientation)
	if err != nil {
		return false, err
	}

	for faceIdx := 0; faceIdx < 6; faceIdx++ {
		patternFace := state.Faces[faceIdx]
		cubeFace := cubeState.Faces[faceIdx]

		if len(patternFace.Stickers) != len(cubeFace.Stickers) {
			return false, fmt.Errorf("face %d sticker count mismatch", faceIdx)
		}

		for stickerIdx := 0; stickerIdx < len(patternFace.Stickers); stickerIdx++ {
			patternColor := patternFace.Stickers[stickerIdx]
			cubeColor := cubeFace.Stickers[stickerIdx]

			if patternColor == cube.Grey {
				continue
			}

			if patternColor != cubeColor {
				return false, nil
			}
		}
	}

	return true, nil
}

// ValidateCFEN validates a CFEN string format and returns any errors.
func ValidateCFEN(cfenStr string) error {
	_, err := ParseCFEN(cfenStr)
	return err
}

// getOrientationMapping returns, for each CFEN face slot (U/R/F/D/L/B),
// the geom.Face currently displayed there under orientation. Only the
// four orientations reachable by a whole-cube rotation from the
// canonical YB frame are named explicitly; anything else falls back to
// YB, matching the original fallback behavior.
func getOrientationMapping(orientation CFENOrientation) [6]geom.Face {
	if orientation.Up == cube.Yellow && orientation.Front == cube.Blue {
		return [6]geom.Face{geom.U, geom.R, geom.F, geom.D, geom.L, geom.B}
	}

	if orientation.Up == cube.White && orientation.Front == cube.Green {
		return [6]geom.Face{geom.D, geom.L, geom.B, geom.U, geom.R, geom.F}
	}

	if orientation.Up == cube.White && orientation.Front == cube.Blue {
		return [6]geom.Face{geom.D, geom.R, geom.F, geom.U, geom.L, geom.B}
	}

	if orientation.Up == cube.Yellow && orientation.Front == cube.Green {
		return [6]geom.Face{geom.U, geom.L, geom.B, geom.D, geom.R, geom.F}
	}

	return [6]geom.Face{geom.U, geom.R, geom.F, geom.D, geom.L, geom.B}
}

// layoutFromOrientation builds a CubeLayout whose U/F colors match
// orientation and whose remaining four faces follow by the fixed
// opposite/adjacency topology.
func layoutFromOrientation(orientation CFENOrientation) (*cube.CubeLayout, error) {
	mapping := getOrientationMapping(orientation)
	boy := cube.BOYLayout()
	assignment := make(map[geom.Face]cube.Color, 6)
	for cfenIdx, face := range mapping {
		assignment[face] = boy.ColorOf(cfenFaceOrder[cfenIdx])
	}
	return cube.NewCubeLayout(assignment)
}
