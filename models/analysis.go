package models

import (
	"time"
)

// SpectrumReading is one simulated sensor channel.
type SpectrumReading struct {
	Channel      string  `json:"name"`          // "410nm"
	WavelengthNm int     `json:"wavelength_nm"` // channel centre
	Value        float64 `json:"value"`         // 0 - 100, one decimal
	Color        string  `json:"fill"`          // hex display color
}

// WaveformPoint is one sample of the expanded spectrum curve.
// Intensities are per channel label and are never summed.
type WaveformPoint struct {
	WavelengthNm int                `json:"nm"`
	Intensities  map[string]float64 `json:"intensities"`
}

// Waveform is the dense curve built from the discrete readings.
type Waveform struct {
	Channels []string        `json:"channels"`
	Points   []WaveformPoint `json:"points"`
}

type ForecastEntry struct {
	DaysFromNow    int    `json:"daysFromNow"`
	Label          string `json:"label"`
	Phase          string `json:"phase"`
	Ripeness       int    `json:"ripeness"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

type AnalysisResult struct {
	RipenessPercentage int               `json:"ripenessPercentage"`
	Status             string            `json:"status"`
	TextureDescription string            `json:"textureDescription"`
	Spectrum           []SpectrumReading `json:"spectrumData"`
	Forecast           []ForecastEntry   `json:"predictions"`
}

// SpectrumSummary holds descriptive statistics over the channel values.
type SpectrumSummary struct {
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"std_dev"`
	PeakNm      int     `json:"peak_nm"`
	PeakChannel string  `json:"peak_channel"`
}

// Analysis is the stored record of one analyze request.
type Analysis struct {
	ID           string          `json:"id" gorm:"primaryKey"`
	Sequence     uint64          `json:"sequence" gorm:"uniqueIndex"`
	OriginalName string          `json:"original_name"`
	MimeType     string          `json:"mime_type"`
	Ripeness     int             `json:"ripeness" gorm:"index"`
	Status       string          `json:"status" gorm:"index"`
	GaugeBand    string          `json:"gauge_band"`
	Result       *AnalysisResult `json:"result" gorm:"serializer:json"`
	Summary      SpectrumSummary `json:"summary" gorm:"serializer:json"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type AnalysisRequest struct {
	ImageBase64 string `json:"image_base64,omitempty"`
	Filename    string `json:"filename,omitempty"`
}
