package render

import (
	"github.com/charmbracelet/lipgloss"

	"spectrox/analyzer"
)

var (
	colorDurianGreen = lipgloss.Color("#4d7c0f")
	colorMuted       = lipgloss.Color("#6C757D")
	colorBorder      = lipgloss.Color("#d6d3d1")

	bandColors = map[analyzer.Band]lipgloss.Color{
		analyzer.BandLow:  lipgloss.Color("#ef4444"),
		analyzer.BandMid:  colorDurianGreen,
		analyzer.BandHigh: lipgloss.Color("#b45309"),
	}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDurianGreen)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	recommendStyle = lipgloss.NewStyle().
			Foreground(colorDurianGreen).
			Bold(true)
)

func bandStyle(b analyzer.Band) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(bandColors[b]).Bold(true)
}
