package cube

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubeforge/nxn/internal/geom"
)

var colorStyles = map[Color]lipgloss.Style{
	White:  lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
	Yellow: lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
	Blue:   lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("15")),
	Green:  lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")),
	Red:    lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("15")),
	Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	Grey:   lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15")),
}

// Sticker renders one facelet: a letter by default, or a lipgloss-styled
// block when useColor is set.
func (c Color) Sticker(useColor bool) string {
	if !useColor {
		return string(c.Letter())
	}
	style, ok := colorStyles[c]
	if !ok {
		style = colorStyles[Grey]
	}
	return style.Render(" " + string(c.Letter()) + " ")
}

// netLayout places the six faces into an unfolded cross: U over the L-F-R-B
// strip, with D underneath F. Faces not reachable from U/F by the fixed BOY
// adjacency frame never occur since geom.Face enumerates exactly these six.
var netLayout = []struct {
	face   geom.Face
	rowOff int
	colOff int
}{
	{geom.U, 0, 1},
	{geom.L, 1, 0},
	{geom.F, 1, 1},
	{geom.R, 1, 2},
	{geom.B, 1, 3},
	{geom.D, 2, 1},
}

// UnfoldedString renders the cube as an unfolded net (spec display
// convention), one row of stickers per cube row, the L-F-R-B strip four
// face-columns wide.
func (c *Cube) UnfoldedString(useColor bool) string {
	var sb strings.Builder
	cellWidth := 2
	if useColor {
		cellWidth = 3
	}
	for blockRow := 0; blockRow < 3; blockRow++ {
		for sub := 0; sub < c.N; sub++ {
			nextCol := 0
			for _, slot := range netLayout {
				if slot.rowOff != blockRow {
					continue
				}
				for ; nextCol < slot.colOff; nextCol++ {
					sb.WriteString(strings.Repeat(" ", cellWidth*c.N))
				}
				nextCol++
				face := c.Face(slot.face)
				for col := 0; col < c.N; col++ {
					sb.WriteString(face.At(sub, col).Color.Sticker(useColor))
					if !useColor {
						sb.WriteString(" ")
					}
				}
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// FaceByFaceString lists each face's grid in turn, labeled by name - the
// flat, scriptable counterpart to UnfoldedString's net layout.
func (c *Cube) FaceByFaceString(useColor bool) string {
	var sb strings.Builder
	for _, f := range geom.AllFaces() {
		face := c.Face(f)
		sb.WriteString(f.String())
		sb.WriteString(" face:\n")
		for row := 0; row < c.N; row++ {
			for col := 0; col < c.N; col++ {
				sb.WriteString(face.At(row, col).Color.Sticker(useColor))
				if !useColor {
					sb.WriteString(" ")
				}
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
