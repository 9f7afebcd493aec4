package ai

import (
	"context"

	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
)

// providerOracle composes the Groq text features with AssemblyAI speech.
type providerOracle struct {
	groq   *GroqClient
	speech *AssemblyAIClient
}

// NewProviderOracle wires the production oracle from the two provider
// clients.
func NewProviderOracle(groq *GroqClient, speech *AssemblyAIClient) Oracle {
	return &providerOracle{groq: groq, speech: speech}
}

func (o *providerOracle) Summarize(ctx context.Context, transcript string) (string, error) {
	return o.groq.Summarize(ctx, transcript)
}

func (o *providerOracle) ExtractActionItems(ctx context.Context, meetingText string) ([]entities.ExtractedActionItem, error) {
	return o.groq.ExtractActionItems(ctx, meetingText)
}

func (o *providerOracle) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	return o.speech.Transcribe(ctx, audio, mimeType)
}
