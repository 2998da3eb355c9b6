package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"spectrox/analyzer"
	"spectrox/database"
)

// Handler serves the analysis API.
type Handler struct {
	DB             *gorm.DB
	Analyzer       *analyzer.Analyzer
	Log            *zap.SugaredLogger
	MaxUploadBytes int64

	// seq orders analyze requests by arrival.
	seq atomic.Uint64
}

// New builds a Handler whose request sequence continues after any records
// already in db.
func New(db *gorm.DB, a *analyzer.Analyzer, log *zap.SugaredLogger, maxUploadBytes int64) (*Handler, error) {
	last, err := database.MaxSequence(db)
	if err != nil {
		return nil, fmt.Errorf("reading last sequence: %w", err)
	}
	h := &Handler{
		DB:             db,
		Analyzer:       a,
		Log:            log,
		MaxUploadBytes: maxUploadBytes,
	}
	h.seq.Store(last)
	return h, nil
}

// NewRouter wires the API routes.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(h.Log), CORS())
	router.MaxMultipartMemory = h.MaxUploadBytes

	api := router.Group("/api")
	{
		api.POST("/analyze", h.UploadAndAnalyze)
		api.GET("/analysis/latest", h.GetLatest)

		api.GET("/history", h.GetAllAnalyses)
		api.DELETE("/history", h.ResetHistory)
		api.GET("/history/:id", h.GetAnalysisById)
		api.GET("/history/:id/waveform", h.GetWaveform)
		api.DELETE("/history/:id", h.DeleteAnalysis)

		api.GET("/statistics", h.GetStatistics)
	}

	router.GET("/health", func(c *gin.Context) {
		respond(c, http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Spectro-X Ripeness API",
		})
	})

	return router
}

// respond writes data as MessagePack when ?format=msgpack, JSON otherwise.
func respond(c *gin.Context, status int, data any) {
	if c.Query("format") != "msgpack" {
		c.JSON(status, data)
		return
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode response"})
		return
	}
	c.Data(status, "application/x-msgpack", buf.Bytes())
}

func statusFor(kind analyzer.Kind) int {
	switch kind {
	case analyzer.KindInvalidImage:
		return http.StatusBadRequest
	case analyzer.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case analyzer.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// fail reports an analysis error with its user-facing message.
func (h *Handler) fail(c *gin.Context, err error) {
	kind := analyzer.KindOf(err)
	h.Log.Warnw("analysis failed", "kind", kind.String(), "error", err)
	respond(c, statusFor(kind), gin.H{
		"error": analyzer.UserMessage(err),
		"kind":  kind.String(),
	})
}
