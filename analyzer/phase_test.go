package analyzer

import "testing"

func TestBucketBoundaries(t *testing.T) {
	tests := []struct {
		v        int
		expected Phase
	}{
		{0, PhaseRaw},
		{39, PhaseRaw},
		{40, PhaseSemiRipe},
		{59, PhaseSemiRipe},
		{60, PhaseRipe},
		{84, PhaseRipe},
		{85, PhaseOverripe},
		{100, PhaseOverripe},
	}
	for _, tt := range tests {
		if got := Bucket(tt.v); got != tt.expected {
			t.Errorf("Bucket(%d) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestPhaseLabels(t *testing.T) {
	tests := []struct {
		phase    Phase
		status   string
		forecast string
	}{
		{PhaseRaw, "ดิบ", "ดิบ"},
		{PhaseSemiRipe, "ห่าม", "ห่าม"},
		{PhaseRipe, "สุก", "สุกพอดี"},
		{PhaseOverripe, "งอม", "งอม"},
	}
	for _, tt := range tests {
		if got := tt.phase.StatusLabel(); got != tt.status {
			t.Errorf("%v.StatusLabel() = %q, want %q", tt.phase, got, tt.status)
		}
		if got := tt.phase.ForecastLabel(); got != tt.forecast {
			t.Errorf("%v.ForecastLabel() = %q, want %q", tt.phase, got, tt.forecast)
		}
	}
}

func TestGaugeBandIsIndependentOfBucket(t *testing.T) {
	tests := []struct {
		pct      int
		expected Band
	}{
		{29, BandLow},
		{30, BandMid},
		{35, BandMid}, // Bucket says Raw here
		{84, BandMid},
		{85, BandHigh},
	}
	for _, tt := range tests {
		if got := GaugeBand(tt.pct); got != tt.expected {
			t.Errorf("GaugeBand(%d) = %s, want %s", tt.pct, got, tt.expected)
		}
	}
	if Bucket(35) != PhaseRaw {
		t.Errorf("Bucket(35) = %v, want raw", Bucket(35))
	}
}
