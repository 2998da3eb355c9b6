// Package render draws an analysis result as a terminal dashboard.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"

	"spectrox/analyzer"
	"spectrox/models"
)

const (
	gaugeWidth    = 20
	barWidth      = 30
	sparkWidth    = 65
	sparkLevels   = "▁▂▃▄▅▆▇█"
	timelineGlyph = "●"
)

// Dashboard renders the gauge, spectrum and forecast panes.
func Dashboard(res *models.AnalysisResult) string {
	if res == nil {
		return mutedStyle.Render("รอข้อมูลการวิเคราะห์")
	}

	waveform := analyzer.ExpandWaveform(res.Spectrum)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Spectro-X"),
		paneStyle.Render(Gauge(res)),
		paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			labelStyle.Render("Spectral Response Signal"),
			SpectrumBars(res.Spectrum),
			"",
			Sparkline(analyzer.Envelope(waveform), sparkWidth),
			mutedStyle.Render(fmt.Sprintf("%dnm%s%dnm",
				analyzer.WaveformStartNm,
				strings.Repeat(" ", max(1, sparkWidth-12)),
				analyzer.WaveformEndNm)),
		)),
		paneStyle.Render(Timeline(res.Forecast)),
	)
}

// Gauge shows the ripeness percentage, status badge and texture note.
func Gauge(res *models.AnalysisResult) string {
	band := analyzer.GaugeBand(res.RipenessPercentage)
	style := bandStyle(band)

	filled := res.RipenessPercentage * gaugeWidth / 100
	bar := style.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", gaugeWidth-filled))

	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("ผลการวิเคราะห์"),
		fmt.Sprintf("%s %s ความสุก", bar, style.Render(fmt.Sprintf("%d%%", res.RipenessPercentage))),
		"สถานะ: "+style.Render(res.Status),
		mutedStyle.Render(fmt.Sprintf("\"%s\"", res.TextureDescription)),
	)
}

// SpectrumBars draws one coloured bar per channel.
func SpectrumBars(readings []models.SpectrumReading) string {
	lines := make([]string, 0, len(readings))
	for _, r := range readings {
		n := int(r.Value / 100 * barWidth)
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color)).Render(strings.Repeat("▇", n))
		lines = append(lines, fmt.Sprintf("%6s %s%s %5.1f", r.Channel, bar, strings.Repeat(" ", barWidth-n), r.Value))
	}
	return strings.Join(lines, "\n")
}

// Sparkline compresses values in [0, 1] into width block characters, taking
// the maximum of each bucket so narrow peaks survive.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if width > len(values) {
		width = len(values)
	}

	levels := []rune(sparkLevels)
	var b strings.Builder
	for i := 0; i < width; i++ {
		lo := i * len(values) / width
		hi := (i + 1) * len(values) / width
		v := floats.Max(values[lo:hi])
		v = min(1, max(0, v))
		b.WriteRune(levels[int(v*float64(len(levels)-1)+0.5)])
	}
	return b.String()
}

// Timeline lists the forecast day by day.
func Timeline(entries []models.ForecastEntry) string {
	lines := []string{labelStyle.Render("พยากรณ์ความสุก")}
	for _, e := range entries {
		rec := mutedStyle.Render(e.Recommendation)
		if e.Phase == analyzer.PhaseRipe.ForecastLabel() {
			rec = recommendStyle.Render(e.Recommendation)
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s (%d%%)  %s",
			timelineGlyph, e.Label, e.Description, e.Ripeness, rec))
	}
	return strings.Join(lines, "\n")
}
