package ai

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/Gagana-kumar/quick-mom/pkg/config"
)

// AssemblyAIClient wraps the official SDK for speech-to-text
type AssemblyAIClient struct {
	client       *aai.Client
	pollInterval time.Duration
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAIClient{
		client:       aai.NewClient(apiKey),
		pollInterval: 3 * time.Second,
	}
}

// Transcribe uploads the audio bytes and waits for the finished transcript.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	uploadURL, err := c.client.Upload(ctx, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("failed to upload audio: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}

	// TranscribeFromURL normally waits for a terminal status; poll for the
	// rare case where it returns early.
	for transcript.Status != aai.TranscriptStatusCompleted && transcript.Status != aai.TranscriptStatusError {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}
		if transcript.ID == nil {
			return "", fmt.Errorf("transcription job has no id")
		}
		transcript, err = c.client.Transcripts.Get(ctx, *transcript.ID)
		if err != nil {
			return "", fmt.Errorf("failed to poll transcription: %w", err)
		}
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "transcription failed"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai: %s", msg)
	}

	if transcript.Text == nil {
		return "", nil
	}
	return *transcript.Text, nil
}
