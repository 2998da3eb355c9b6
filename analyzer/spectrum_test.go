package analyzer

import (
	"math"
	"testing"
)

func TestSynthesizeWithoutJitter(t *testing.T) {
	expected := []float64{61, 72, 80, 84, 84, 80, 72, 61, 48, 35, 23, 13, 7, 5, 7, 14, 24, 36}

	readings := Synthesize("abc", 64, FixedJitter(0))
	if len(readings) != len(Channels) {
		t.Fatalf("got %d readings, want %d", len(readings), len(Channels))
	}
	for i, r := range readings {
		if r.Value != expected[i] {
			t.Errorf("channel %s = %v, want %v", r.Channel, r.Value, expected[i])
		}
		if r.WavelengthNm != Channels[i] {
			t.Errorf("reading %d at %dnm, want %dnm", i, r.WavelengthNm, Channels[i])
		}
		if r.Channel != ChannelLabel(Channels[i]) {
			t.Errorf("reading %d label %q", i, r.Channel)
		}
	}
}

func TestSynthesizeClampsJitter(t *testing.T) {
	readings := Synthesize("abc", 99, FixedJitter(JitterAmplitude))
	for _, r := range readings {
		if r.Value < 0 || r.Value > 100 {
			t.Errorf("channel %s = %v, out of range", r.Channel, r.Value)
		}
	}
	if readings[2].Value != 100 {
		t.Errorf("460nm = %v, want clamped 100", readings[2].Value)
	}

	low := Synthesize("abc", 30, FixedJitter(-JitterAmplitude))
	for _, r := range low {
		if r.Value < 0 {
			t.Errorf("channel %s = %v, below zero", r.Channel, r.Value)
		}
	}
}

func TestSynthesizeOneDecimal(t *testing.T) {
	readings := Synthesize("seed", 70, FixedJitter(1.234))
	for _, r := range readings {
		scaled := r.Value * 10
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Errorf("channel %s = %v, not rounded to one decimal", r.Channel, r.Value)
		}
	}
}

func TestSynthesizeAscending(t *testing.T) {
	readings := Synthesize("any", 50, NewUniformJitter(7))
	for i := 1; i < len(readings); i++ {
		if readings[i].WavelengthNm <= readings[i-1].WavelengthNm {
			t.Fatalf("readings not ascending at %d", i)
		}
	}
}

func TestWavelengthColor(t *testing.T) {
	tests := []struct {
		nm       int
		expected string
	}{
		{410, "#3b82f6"},
		{449, "#3b82f6"},
		{450, "#06b6d4"},
		{535, "#22c55e"},
		{585, "#eab308"},
		{680, "#ef4444"},
		{700, "#7f1d1d"},
		{940, "#7f1d1d"},
	}
	for _, tt := range tests {
		if got := WavelengthColor(tt.nm); got != tt.expected {
			t.Errorf("WavelengthColor(%d) = %s, want %s", tt.nm, got, tt.expected)
		}
	}
}

func TestUniformJitterRange(t *testing.T) {
	j := NewUniformJitter(42)
	for i := 0; i < 1000; i++ {
		v := j.NextJitter()
		if v < -JitterAmplitude || v >= JitterAmplitude {
			t.Fatalf("jitter %v out of range", v)
		}
	}

	a, b := NewUniformJitter(99), NewUniformJitter(99)
	for i := 0; i < 10; i++ {
		if x, y := a.NextJitter(), b.NextJitter(); x != y {
			t.Fatalf("seeded jitter diverged at %d: %v != %v", i, x, y)
		}
	}
}
