package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spectrox/analyzer"
	"spectrox/models"
)

var errTooLarge = errors.New("image exceeds upload limit")

// UploadAndAnalyze accepts a multipart "image" field or a JSON body with
// image_base64, runs the analysis and stores the record.
func (h *Handler) UploadAndAnalyze(c *gin.Context) {
	seq := h.seq.Add(1)

	dataURL, mime, name, err := h.readImage(c)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			respond(c, http.StatusRequestEntityTooLarge, gin.H{"error": "Image is too large"})
			return
		}
		h.fail(c, err)
		return
	}
	h.Log.Debugw("image received", "sequence", seq, "name", name, "mime", mime)

	result, err := h.Analyzer.Analyze(c.Request.Context(), dataURL)
	if err != nil {
		h.fail(c, err)
		return
	}

	now := time.Now()
	analysis := models.Analysis{
		ID:           uuid.New().String(),
		Sequence:     seq,
		OriginalName: name,
		MimeType:     mime,
		Ripeness:     result.RipenessPercentage,
		Status:       result.Status,
		GaugeBand:    string(analyzer.GaugeBand(result.RipenessPercentage)),
		Result:       result,
		Summary:      analyzer.Summarize(result.Spectrum),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.DB.Create(&analysis).Error; err != nil {
		h.Log.Errorw("failed to save analysis", "error", err)
		respond(c, http.StatusInternalServerError, gin.H{"error": "Failed to save analysis"})
		return
	}

	h.Log.Infow("analysis stored",
		"id", analysis.ID,
		"sequence", seq,
		"ripeness", analysis.Ripeness,
		"status", analysis.Status)
	respond(c, http.StatusOK, analysis)
}

// bodyLimit bounds the request body: the image as base64 plus room for the
// multipart or JSON envelope.
func (h *Handler) bodyLimit() int64 {
	return h.MaxUploadBytes*4/3 + 1024
}

// sizeError turns a body read failure caused by the size limit into errTooLarge.
func sizeError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errTooLarge
	}
	return err
}

func (h *Handler) readImage(c *gin.Context) (dataURL, mime, name string, err error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.bodyLimit())

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req models.AnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			if sizeError(err) == errTooLarge {
				return "", "", "", errTooLarge
			}
			return "", "", "", &analyzer.Error{Kind: analyzer.KindInvalidImage, Msg: "invalid request body", Err: err}
		}
		dataURL, mime, err = analyzer.NormalizeDataURL(req.ImageBase64)
		return dataURL, mime, req.Filename, err
	}

	header, err := c.FormFile("image")
	if err != nil {
		if sizeError(err) == errTooLarge {
			return "", "", "", errTooLarge
		}
		return "", "", "", &analyzer.Error{Kind: analyzer.KindInvalidImage, Msg: "no image file provided", Err: err}
	}
	if header.Size > h.MaxUploadBytes {
		return "", "", "", errTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return "", "", "", &analyzer.Error{Kind: analyzer.KindInvalidImage, Msg: "opening upload", Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.MaxUploadBytes+1))
	if err != nil {
		return "", "", "", &analyzer.Error{Kind: analyzer.KindInvalidImage, Msg: "reading upload", Err: err}
	}
	if int64(len(data)) > h.MaxUploadBytes {
		return "", "", "", errTooLarge
	}

	dataURL, mime, err = analyzer.ImageDataURL(data)
	return dataURL, mime, header.Filename, err
}
