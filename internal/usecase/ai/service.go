package ai

import (
	"context"
	"encoding/json"
	"mime"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Gagana-kumar/quick-mom/errors"
	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/internal/domain/repositories"
	"github.com/Gagana-kumar/quick-mom/internal/infrastructure/cache"
	pkgai "github.com/Gagana-kumar/quick-mom/pkg/ai"
	"github.com/Gagana-kumar/quick-mom/pkg/validator"
)

// Fallback strings the client renders when a pipeline cannot produce a
// real result. They are results, not errors: the assistant features must
// never break the page.
const (
	SummaryFallback       = "Failed to generate summary."
	TranscriptionFallback = "Failed to transcribe audio."
)

// AudioVault retains raw meeting audio. Optional; a nil vault skips
// retention.
type AudioVault interface {
	UploadAudio(ctx context.Context, objectName string, data []byte, contentType string) error
	AudioURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Service runs the three assistant pipelines against a meeting.
type Service interface {
	// GenerateSummary renders the meeting into a transcript, asks the
	// oracle for a summary and stores it. Oracle failure yields the
	// fallback string as a normal result.
	GenerateSummary(ctx context.Context, meetingID string) (string, error)

	// ExtractActionItems asks the oracle for structured action items from
	// the meeting text. Any failure, including malformed oracle output,
	// yields an empty list.
	ExtractActionItems(ctx context.Context, meetingID string) ([]entities.ExtractedActionItem, error)

	// TranscribeAudio decodes the audio data URI, retains the audio when a
	// vault is configured, and stores the oracle's transcription. Oracle
	// failure yields the fallback string; an empty successful
	// transcription is stored as-is.
	TranscribeAudio(ctx context.Context, meetingID, audioDataURI string) (string, error)
}

type service struct {
	store     repositories.MeetingStore
	directory repositories.UserDirectory
	oracle    pkgai.Oracle
	vault     AudioVault
	views     cache.ViewCache
	validate  *validator.CustomValidator
	logger    *zap.Logger
}

// NewService constructs the AI orchestration service. vault may be nil.
func NewService(
	store repositories.MeetingStore,
	directory repositories.UserDirectory,
	oracle pkgai.Oracle,
	vault AudioVault,
	views cache.ViewCache,
	validate *validator.CustomValidator,
	logger *zap.Logger,
) Service {
	return &service{
		store:     store,
		directory: directory,
		oracle:    oracle,
		vault:     vault,
		views:     views,
		validate:  validate,
		logger:    logger,
	}
}

// retry wraps an oracle call in a bounded exponential backoff.
func retry(ctx context.Context, op backoff.Operation) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	return backoff.Retry(op, policy)
}

func (s *service) loadMeeting(ctx context.Context, meetingID string) (*entities.Meeting, error) {
	m, err := s.store.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.ErrMeetingNotFound(meetingID)
	}
	return m, nil
}

func (s *service) GenerateSummary(ctx context.Context, meetingID string) (string, error) {
	m, err := s.loadMeeting(ctx, meetingID)
	if err != nil {
		return "", err
	}

	attendees, err := s.directory.GetAttendees(ctx)
	if err != nil {
		s.logger.Warn("failed to resolve attendees for summary", zap.Error(err))
	}
	transcript := BuildSummaryTranscript(m, attendees)

	var summary string
	err = retry(ctx, func() error {
		var oerr error
		summary, oerr = s.oracle.Summarize(ctx, transcript)
		return oerr
	})
	if err != nil {
		s.logger.Error("summary generation failed", zap.String("meeting_id", meetingID), zap.Error(err))
		return SummaryFallback, nil
	}

	if err := s.store.SetSummary(ctx, meetingID, summary); err != nil {
		s.logger.Warn("failed to store summary", zap.String("meeting_id", meetingID), zap.Error(err))
	}
	s.views.Invalidate(ctx, "/", "/meetings/"+meetingID)
	return summary, nil
}

func (s *service) ExtractActionItems(ctx context.Context, meetingID string) ([]entities.ExtractedActionItem, error) {
	m, err := s.loadMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	text := BuildExtractionText(m)

	var items []entities.ExtractedActionItem
	err = retry(ctx, func() error {
		var oerr error
		items, oerr = s.oracle.ExtractActionItems(ctx, text)
		return oerr
	})
	if err != nil {
		s.logger.Error("action item extraction failed", zap.String("meeting_id", meetingID), zap.Error(err))
		return []entities.ExtractedActionItem{}, nil
	}

	// The oracle's output is untrusted: every item needs all three fields.
	for _, item := range items {
		if err := s.validate.Validate(&item); err != nil {
			s.logger.Error("oracle returned incomplete action items",
				zap.String("meeting_id", meetingID),
				zap.Error(err))
			return []entities.ExtractedActionItem{}, nil
		}
	}
	if items == nil {
		items = []entities.ExtractedActionItem{}
	}

	raw, err := json.Marshal(items)
	if err == nil {
		if err := s.store.SetExtractedActionItems(ctx, meetingID, datatypes.JSON(raw)); err != nil {
			s.logger.Warn("failed to store extracted action items", zap.String("meeting_id", meetingID), zap.Error(err))
		}
	}
	s.views.Invalidate(ctx, "/", "/meetings/"+meetingID)
	return items, nil
}

func (s *service) TranscribeAudio(ctx context.Context, meetingID, audioDataURI string) (string, error) {
	if _, err := s.loadMeeting(ctx, meetingID); err != nil {
		return "", err
	}
	if audioDataURI == "" {
		return "", errors.ErrMissingAudioData()
	}

	audio, mimeType, err := pkgai.ParseDataURI(audioDataURI)
	if err != nil {
		return "", errors.ErrInvalidArgument("Audio must be a base64 data URI")
	}

	s.retainAudio(ctx, meetingID, audio, mimeType)

	var transcription string
	err = retry(ctx, func() error {
		var oerr error
		transcription, oerr = s.oracle.Transcribe(ctx, audio, mimeType)
		return oerr
	})
	if err != nil {
		s.logger.Error("transcription failed", zap.String("meeting_id", meetingID), zap.Error(err))
		return TranscriptionFallback, nil
	}

	// An empty transcription still counts as success and is stored as-is.
	if err := s.store.SetTranscription(ctx, meetingID, transcription); err != nil {
		s.logger.Warn("failed to store transcription", zap.String("meeting_id", meetingID), zap.Error(err))
	}
	s.views.Invalidate(ctx, "/", "/meetings/"+meetingID)
	return transcription, nil
}

// retainAudio uploads the decoded audio to the vault and records its
// location. Best-effort: retention never blocks transcription.
func (s *service) retainAudio(ctx context.Context, meetingID string, audio []byte, mimeType string) {
	if s.vault == nil {
		return
	}

	ext := ".bin"
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	objectName := meetingID + "/" + uuid.NewString() + ext

	if err := s.vault.UploadAudio(ctx, objectName, audio, mimeType); err != nil {
		s.logger.Warn("failed to retain audio", zap.String("meeting_id", meetingID), zap.Error(err))
		return
	}
	url, err := s.vault.AudioURL(ctx, objectName, 7*24*time.Hour)
	if err != nil {
		s.logger.Warn("failed to build recording URL", zap.String("meeting_id", meetingID), zap.Error(err))
		return
	}
	if err := s.store.SetRecordingURL(ctx, meetingID, url); err != nil {
		s.logger.Warn("failed to store recording URL", zap.String("meeting_id", meetingID), zap.Error(err))
	}
}
