package analyzer

import (
	"gonum.org/v1/gonum/stat"

	"spectrox/models"
)

// Summarize computes descriptive statistics of a spectrum and locates the
// peak of its expanded waveform.
func Summarize(readings []models.SpectrumReading) models.SpectrumSummary {
	var s models.SpectrumSummary
	if len(readings) == 0 {
		return s
	}

	values := make([]float64, len(readings))
	for i, r := range readings {
		values[i] = r.Value
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)

	if nm, ch, ok := Peak(ExpandWaveform(readings)); ok {
		s.PeakNm, s.PeakChannel = nm, ch
	}
	return s
}
