package analyzer

import (
	"fmt"
	"strconv"

	"spectrox/models"
)

// ForecastDays is the length of the forecast timeline.
const ForecastDays = 5

// Forecast predicts the phase for each of the next ForecastDays days.
func Forecast(seed string, baseRipeness int) []models.ForecastEntry {
	entries := make([]models.ForecastEntry, 0, ForecastDays)
	for i := 0; i < ForecastDays; i++ {
		days := i + 1
		ripeness := min(100, baseRipeness+days*2+Hash(seed+strconv.Itoa(i), 3))
		phase := Bucket(ripeness)
		label := phase.ForecastLabel()

		recommendation := "รออีกเล็กน้อย"
		if phase == PhaseRipe {
			recommendation = "พร้อมบริโภค"
		}

		entries = append(entries, models.ForecastEntry{
			DaysFromNow:    days,
			Label:          fmt.Sprintf("อีก %d วัน", days),
			Phase:          label,
			Ripeness:       ripeness,
			Description:    "คาดว่าอยู่ในสภาพ: " + label,
			Recommendation: recommendation,
		})
	}
	return entries
}
