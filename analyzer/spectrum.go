package analyzer

import (
	"math"
	"sort"
	"strconv"

	"spectrox/models"
)

// Channels are the centre wavelengths (nm) of the simulated 18-channel sensor.
var Channels = [...]int{
	410, 435, 460, 485, 510, 535,
	560, 585, 610, 645, 680, 705,
	730, 760, 810, 860, 900, 940,
}

// WavelengthColor returns the display colour for a channel centre.
func WavelengthColor(nm int) string {
	switch {
	case nm < 450:
		return "#3b82f6"
	case nm < 500:
		return "#06b6d4"
	case nm < 570:
		return "#22c55e"
	case nm < 600:
		return "#eab308"
	case nm < 700:
		return "#ef4444"
	default:
		return "#7f1d1d"
	}
}

// ChannelLabel formats a centre wavelength as "410nm".
func ChannelLabel(nm int) string {
	return strconv.Itoa(nm) + "nm"
}

// Synthesize produces one reading per channel, ordered by wavelength.
func Synthesize(seed string, baseRipeness int, jitter Jitter) []models.SpectrumReading {
	phase := float64(Hash(seed, 10)) / 10
	shift := math.Max(0, roundHalfUp(float64(baseRipeness-50)/10)*5)

	readings := make([]models.SpectrumReading, 0, len(Channels))
	for idx, nm := range Channels {
		base := roundHalfUp((math.Sin(float64(idx)/3+phase) + 1) * 40)
		value := clamp(base+shift+jitter.NextJitter(), 0, 100)
		readings = append(readings, models.SpectrumReading{
			Channel:      ChannelLabel(nm),
			WavelengthNm: nm,
			Value:        roundHalfUp(value*10) / 10,
			Color:        WavelengthColor(nm),
		})
	}

	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].WavelengthNm < readings[j].WavelengthNm
	})
	return readings
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
