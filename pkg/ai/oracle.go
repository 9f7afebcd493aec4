package ai

import (
	"context"

	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
)

// Oracle is the language-model boundary for the three assistant features.
// Callers treat it as opaque: prompts, models and providers live behind it.
type Oracle interface {
	// Summarize turns a rendered meeting transcript into a prose summary.
	Summarize(ctx context.Context, transcript string) (string, error)

	// ExtractActionItems pulls structured action items out of meeting text.
	ExtractActionItems(ctx context.Context, meetingText string) ([]entities.ExtractedActionItem, error)

	// Transcribe converts raw meeting audio into text.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}
