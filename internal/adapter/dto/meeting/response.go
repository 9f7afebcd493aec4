package meeting

import "github.com/Gagana-kumar/quick-mom/internal/domain/entities"

// ActionResult is the uniform mutation outcome. Message is "success" or a
// human-readable failure; Errors carries field-level validation messages;
// MeetingID is set when a mutation created a meeting.
type ActionResult struct {
	Message   string              `json:"message"`
	Errors    map[string][]string `json:"errors,omitempty"`
	MeetingID string              `json:"meetingId,omitempty"`
}

// SummaryResponse carries a generated meeting summary
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// ExtractionResponse carries extracted structured action items
type ExtractionResponse struct {
	ActionItems []entities.ExtractedActionItem `json:"actionItems"`
}

// TranscriptionResponse carries a transcription result
type TranscriptionResponse struct {
	Transcription string `json:"transcription"`
}
