package term

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

var (
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	selectBg  = lipgloss.Color("#243141")

	statusStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
)

// styles holds the cell style of every layer.
type styles struct {
	layers   [layerSeparator + 1]lipgloss.Style
	selected lipgloss.Style
}

func newStyles(fill, separator color.Color, grid string) styles {
	var s styles
	s.layers[layerNone] = lipgloss.NewStyle()
	s.layers[layerArea] = lipgloss.NewStyle().Foreground(lipglossColor(fill))
	s.layers[layerGrid] = lipgloss.NewStyle().Foreground(lipgloss.Color(grid))
	s.layers[layerSeparator] = lipgloss.NewStyle().Foreground(lipglossColor(separator))
	s.selected = lipgloss.NewStyle().Background(selectBg)
	return s
}

// lipglossColor converts c to a hex terminal color. A nil color leaves the
// foreground unset.
func lipglossColor(c color.Color) lipgloss.TerminalColor {
	if c == nil {
		return lipgloss.NoColor{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B))
}
