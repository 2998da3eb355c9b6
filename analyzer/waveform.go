package analyzer

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"spectrox/models"
)

const (
	WaveformStartNm = 350
	WaveformEndNm   = 1000
	WaveformStepNm  = 5

	// ResponseSigma models a channel response of roughly 20nm FWHM.
	ResponseSigma = 8.5

	// intensityFloor zeroes the Gaussian tails.
	intensityFloor = 0.001
)

// WaveformSamples is the number of points ExpandWaveform produces.
const WaveformSamples = (WaveformEndNm-WaveformStartNm)/WaveformStepNm + 1

// ExpandWaveform turns discrete readings into one Gaussian response curve per
// channel, sampled every WaveformStepNm.
func ExpandWaveform(readings []models.SpectrumReading) models.Waveform {
	w := models.Waveform{
		Channels: make([]string, len(readings)),
		Points:   make([]models.WaveformPoint, 0, WaveformSamples),
	}
	for i, r := range readings {
		w.Channels[i] = r.Channel
	}
	if len(readings) == 0 {
		return w
	}

	for nm := WaveformStartNm; nm <= WaveformEndNm; nm += WaveformStepNm {
		p := models.WaveformPoint{
			WavelengthNm: nm,
			Intensities:  make(map[string]float64, len(readings)),
		}
		for _, r := range readings {
			p.Intensities[r.Channel] = ChannelResponse(r, nm)
		}
		w.Points = append(w.Points, p)
	}
	return w
}

// ChannelResponse is the intensity of one channel at wavelength nm, in [0, 1].
func ChannelResponse(r models.SpectrumReading, nm int) float64 {
	z := float64(nm-r.WavelengthNm) / ResponseSigma
	intensity := (r.Value / 100) * math.Exp(-0.5*z*z)
	if intensity <= intensityFloor {
		return 0
	}
	return clamp(intensity, 0, 1)
}

// Envelope returns the strongest channel intensity at every sample.
func Envelope(w models.Waveform) []float64 {
	env := make([]float64, len(w.Points))
	row := make([]float64, len(w.Channels))
	for i, p := range w.Points {
		if len(row) == 0 {
			continue
		}
		for j, ch := range w.Channels {
			row[j] = p.Intensities[ch]
		}
		env[i] = floats.Max(row)
	}
	return env
}

// Peak finds the sample and channel with the highest intensity. ok is false
// for an empty waveform.
func Peak(w models.Waveform) (nm int, channel string, ok bool) {
	env := Envelope(w)
	if len(env) == 0 {
		return 0, "", false
	}
	i := floats.MaxIdx(env)
	p := w.Points[i]

	best := -1.0
	for _, ch := range w.Channels {
		if v := p.Intensities[ch]; v > best {
			best = v
			channel = ch
		}
	}
	return p.WavelengthNm, channel, true
}
