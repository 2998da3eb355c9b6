package analyzer

// Phase is one of the four ordered maturity buckets.
type Phase int

const (
	PhaseRaw Phase = iota
	PhaseSemiRipe
	PhaseRipe
	PhaseOverripe
)

// Bucket maps a ripeness value onto a Phase.
func Bucket(v int) Phase {
	switch {
	case v < 40:
		return PhaseRaw
	case v < 60:
		return PhaseSemiRipe
	case v < 85:
		return PhaseRipe
	default:
		return PhaseOverripe
	}
}

// StatusLabel is the label shown on the result badge.
func (p Phase) StatusLabel() string {
	switch p {
	case PhaseRaw:
		return "ดิบ"
	case PhaseSemiRipe:
		return "ห่าม"
	case PhaseRipe:
		return "สุก"
	default:
		return "งอม"
	}
}

// ForecastLabel is the label used on the forecast timeline. Ripe reads
// "สุกพอดี" here, unlike the badge.
func (p Phase) ForecastLabel() string {
	if p == PhaseRipe {
		return "สุกพอดี"
	}
	return p.StatusLabel()
}

func (p Phase) String() string {
	switch p {
	case PhaseRaw:
		return "raw"
	case PhaseSemiRipe:
		return "semi_ripe"
	case PhaseRipe:
		return "ripe"
	default:
		return "overripe"
	}
}

// Band is the colour band of the ripeness gauge.
type Band string

const (
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandHigh Band = "high"
)

// GaugeBand picks the gauge colour. Its 30/85 cut points are independent of
// Bucket and only drive presentation.
func GaugeBand(pct int) Band {
	if pct < 30 {
		return BandLow
	}
	if pct < 85 {
		return BandMid
	}
	return BandHigh
}
