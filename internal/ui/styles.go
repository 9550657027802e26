package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/vstamp/internal/models"
)

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorBlue     = lipgloss.Color("#5555FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

func ArtifactColor(kind models.ArtifactKind) lipgloss.Color {
	switch kind {
	case models.ArtifactTeX:
		return ColorBlue
	case models.ArtifactR:
		return ColorMagenta
	case models.ArtifactHeader:
		return ColorOrange
	default:
		return ColorWhite
	}
}
