package analyzer

import (
	"math"
	"testing"

	"spectrox/models"
)

func TestExpandWaveformShape(t *testing.T) {
	readings := Synthesize("abc", 64, FixedJitter(0))
	w := ExpandWaveform(readings)

	if WaveformSamples != 131 {
		t.Fatalf("WaveformSamples = %d, want 131", WaveformSamples)
	}
	if len(w.Points) != WaveformSamples {
		t.Fatalf("got %d points, want %d", len(w.Points), WaveformSamples)
	}
	if w.Points[0].WavelengthNm != 350 || w.Points[len(w.Points)-1].WavelengthNm != 1000 {
		t.Errorf("range = %d..%d", w.Points[0].WavelengthNm, w.Points[len(w.Points)-1].WavelengthNm)
	}
	for _, p := range w.Points {
		if len(p.Intensities) != len(readings) {
			t.Fatalf("%dnm has %d channels, want %d", p.WavelengthNm, len(p.Intensities), len(readings))
		}
		for ch, v := range p.Intensities {
			if v < 0 || v > 1 {
				t.Errorf("%dnm %s = %v, out of [0,1]", p.WavelengthNm, ch, v)
			}
		}
	}
}

func TestChannelResponse(t *testing.T) {
	r := models.SpectrumReading{Channel: "410nm", WavelengthNm: 410, Value: 61}

	if got := ChannelResponse(r, 410); math.Abs(got-0.61) > 1e-12 {
		t.Errorf("response at centre = %v, want 0.61", got)
	}
	if got := ChannelResponse(r, 420); math.Abs(got-0.3053374) > 1e-6 {
		t.Errorf("response at +10nm = %v, want 0.3053", got)
	}
	// 0.0012 at +30nm survives the floor, +35nm does not.
	if got := ChannelResponse(r, 440); got == 0 {
		t.Errorf("response at +30nm should be above floor")
	}
	if got := ChannelResponse(r, 445); got != 0 {
		t.Errorf("response at +35nm = %v, want 0", got)
	}
	if got := ChannelResponse(r, 1000); got != 0 {
		t.Errorf("response far away = %v, want 0", got)
	}
}

func TestExpandWaveformKeepsChannelsSeparate(t *testing.T) {
	readings := []models.SpectrumReading{
		{Channel: "500nm", WavelengthNm: 500, Value: 100},
		{Channel: "505nm", WavelengthNm: 505, Value: 100},
	}
	w := ExpandWaveform(readings)
	for _, p := range w.Points {
		if p.WavelengthNm != 500 {
			continue
		}
		if p.Intensities["500nm"] != 1 {
			t.Errorf("500nm at 500 = %v, want 1", p.Intensities["500nm"])
		}
		if v := p.Intensities["505nm"]; v <= 0 || v >= 1 {
			t.Errorf("505nm at 500 = %v, want partial response", v)
		}
	}
}

func TestExpandWaveformEmpty(t *testing.T) {
	w := ExpandWaveform(nil)
	if len(w.Points) != 0 {
		t.Errorf("empty readings gave %d points", len(w.Points))
	}
	if _, _, ok := Peak(w); ok {
		t.Error("Peak of empty waveform reported ok")
	}
}

func TestEnvelopeAndPeak(t *testing.T) {
	readings := Synthesize("abc", 64, FixedJitter(0))
	w := ExpandWaveform(readings)

	env := Envelope(w)
	if len(env) != WaveformSamples {
		t.Fatalf("envelope has %d samples", len(env))
	}

	// 485nm and 510nm both read 84; the first one wins.
	nm, ch, ok := Peak(w)
	if !ok {
		t.Fatal("Peak not ok")
	}
	if nm != 485 || ch != "485nm" {
		t.Errorf("Peak = %d %s, want 485 485nm", nm, ch)
	}
}

func TestSummarize(t *testing.T) {
	readings := []models.SpectrumReading{
		{Channel: "410nm", WavelengthNm: 410, Value: 10},
		{Channel: "435nm", WavelengthNm: 435, Value: 30},
	}
	s := Summarize(readings)
	if s.Mean != 20 {
		t.Errorf("Mean = %v, want 20", s.Mean)
	}
	if math.Abs(s.StdDev-math.Sqrt(200)) > 1e-9 {
		t.Errorf("StdDev = %v, want %v", s.StdDev, math.Sqrt(200))
	}
	if s.PeakNm != 435 || s.PeakChannel != "435nm" {
		t.Errorf("peak = %d %s", s.PeakNm, s.PeakChannel)
	}
	if got := Summarize(nil); got != (models.SpectrumSummary{}) {
		t.Errorf("Summarize(nil) = %+v", got)
	}
}
