package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Gagana-kumar/quick-mom/errors"
	meetingdto "github.com/Gagana-kumar/quick-mom/internal/adapter/dto/meeting"
	aiuse "github.com/Gagana-kumar/quick-mom/internal/usecase/ai"
)

// AIController exposes the three assistant pipelines over HTTP.
type AIController struct {
	ai     aiuse.Service
	logger *zap.Logger
}

// NewAIController creates a new AI controller
func NewAIController(aiService aiuse.Service, logger *zap.Logger) *AIController {
	return &AIController{ai: aiService, logger: logger}
}

// Summarize generates and stores a meeting summary
// POST /api/meetings/:id/summary
func (h *AIController) Summarize(c echo.Context) error {
	summary, err := h.ai.GenerateSummary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, meetingdto.SummaryResponse{Summary: summary})
}

// ExtractActionItems extracts and stores structured action items
// POST /api/meetings/:id/extract-action-items
func (h *AIController) ExtractActionItems(c echo.Context) error {
	items, err := h.ai.ExtractActionItems(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, meetingdto.ExtractionResponse{ActionItems: items})
}

// Transcribe converts uploaded audio into a stored transcription
// POST /api/meetings/:id/transcribe
func (h *AIController) Transcribe(c echo.Context) error {
	var req meetingdto.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if req.AudioData == "" {
		return HandleError(h.logger, c, errors.ErrMissingAudioData())
	}

	transcription, err := h.ai.TranscribeAudio(c.Request().Context(), c.Param("id"), req.AudioData)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, meetingdto.TranscriptionResponse{Transcription: transcription})
}
