package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spectrox/analyzer"
	"spectrox/models"
)

func (h *Handler) GetAllAnalyses(c *gin.Context) {
	var analyses []models.Analysis

	limitStr := c.DefaultQuery("limit", "50")
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50
	}

	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}

	result := h.DB.Order("sequence DESC").Limit(limit).Offset(offset).Find(&analyses)
	if result.Error != nil {
		respond(c, http.StatusInternalServerError, gin.H{"error": "Failed to fetch analyses"})
		return
	}

	var total int64
	h.DB.Model(&models.Analysis{}).Count(&total)

	respond(c, http.StatusOK, gin.H{
		"data":   analyses,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetLatest returns the analysis of the most recently started request. A slow
// request that finishes after a newer one never shadows it.
func (h *Handler) GetLatest(c *gin.Context) {
	var analysis models.Analysis
	err := h.DB.Order("sequence DESC").First(&analysis).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respond(c, http.StatusNotFound, gin.H{"error": "No analysis yet"})
		return
	}
	if err != nil {
		respond(c, http.StatusInternalServerError, gin.H{"error": "Failed to fetch analysis"})
		return
	}

	respond(c, http.StatusOK, analysis)
}

func (h *Handler) GetAnalysisById(c *gin.Context) {
	analysis, ok := h.find(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, analysis)
}

// GetWaveform expands the stored spectrum into its plotting curve.
func (h *Handler) GetWaveform(c *gin.Context) {
	analysis, ok := h.find(c)
	if !ok {
		return
	}

	var readings []models.SpectrumReading
	if analysis.Result != nil {
		readings = analysis.Result.Spectrum
	}
	waveform := analyzer.ExpandWaveform(readings)

	colors := make(map[string]string, len(readings))
	for _, r := range readings {
		colors[r.Channel] = r.Color
	}

	respond(c, http.StatusOK, gin.H{
		"id":       analysis.ID,
		"colors":   colors,
		"waveform": waveform,
		"envelope": analyzer.Envelope(waveform),
	})
}

func (h *Handler) DeleteAnalysis(c *gin.Context) {
	id := c.Param("id")

	result := h.DB.Delete(&models.Analysis{}, "id = ?", id)

	if result.Error != nil {
		respond(c, http.StatusInternalServerError, gin.H{"error": "Failed to delete analysis"})
		return
	}

	if result.RowsAffected == 0 {
		respond(c, http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	respond(c, http.StatusOK, gin.H{"message": "Analysis deleted successfully"})
}

// ResetHistory clears every stored analysis.
func (h *Handler) ResetHistory(c *gin.Context) {
	result := h.DB.Where("1 = 1").Delete(&models.Analysis{})
	if result.Error != nil {
		respond(c, http.StatusInternalServerError, gin.H{"error": "Failed to reset history"})
		return
	}

	h.Log.Infow("history reset", "deleted", result.RowsAffected)
	respond(c, http.StatusOK, gin.H{
		"message": "History cleared",
		"deleted": result.RowsAffected,
	})
}

func (h *Handler) GetStatistics(c *gin.Context) {
	var stats struct {
		TotalAnalyses int64            `json:"total_analyses"`
		ByStatus      map[string]int64 `json:"by_status"`
		AvgRipeness   float64          `json:"avg_ripeness"`
		MinRipeness   int              `json:"min_ripeness"`
		MaxRipeness   int              `json:"max_ripeness"`
	}
	stats.ByStatus = make(map[string]int64)

	if err := h.DB.Model(&models.Analysis{}).Count(&stats.TotalAnalyses).Error; err != nil {
		respond(c, http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := h.DB.Model(&models.Analysis{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		h.Log.Errorw("failed to group analyses by status", "error", err)
		respond(c, http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] = r.Count
	}

	var agg struct {
		Avg *float64
		Min *int
		Max *int
	}
	err := h.DB.Model(&models.Analysis{}).
		Select("AVG(ripeness) AS avg, MIN(ripeness) AS min, MAX(ripeness) AS max").
		Scan(&agg).Error
	if err != nil {
		h.Log.Errorw("failed to aggregate ripeness", "error", err)
		respond(c, http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	if agg.Avg != nil {
		stats.AvgRipeness = *agg.Avg
	}
	if agg.Min != nil {
		stats.MinRipeness = *agg.Min
	}
	if agg.Max != nil {
		stats.MaxRipeness = *agg.Max
	}

	respond(c, http.StatusOK, stats)
}

func (h *Handler) find(c *gin.Context) (models.Analysis, bool) {
	id := c.Param("id")

	var analysis models.Analysis
	result := h.DB.First(&analysis, "id = ?", id)

	if result.Error != nil {
		respond(c, http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return analysis, false
	}
	return analysis, true
}
