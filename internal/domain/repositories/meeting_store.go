package repositories

import (
	"context"

	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"gorm.io/datatypes"
)

// MeetingStore is the data access boundary for meetings and their owned
// records. Three interchangeable implementations exist (in-memory, remote
// HTTP, postgres); all of them produce identical shapes. Read methods fail
// soft: a missing record is (nil, nil), and the remote variant degrades
// transport failures to empty results rather than propagating them.
type MeetingStore interface {
	// GetMeetings retrieves all meetings visible to the caller.
	GetMeetings(ctx context.Context) ([]*entities.Meeting, error)

	// GetMeetingByID retrieves one meeting; (nil, nil) when absent.
	GetMeetingByID(ctx context.Context, id string) (*entities.Meeting, error)

	// CreateMeeting persists a new meeting and assigns its id if the
	// backend mints ids itself.
	CreateMeeting(ctx context.Context, meeting *entities.Meeting) error

	// AddTopic appends a topic to the meeting.
	AddTopic(ctx context.Context, meetingID string, topic *entities.Topic) error

	// AddDiscussionPoint appends a point to the topic.
	AddDiscussionPoint(ctx context.Context, meetingID, topicID string, point *entities.DiscussionPoint) error

	// AddActionItem persists a new action item.
	AddActionItem(ctx context.Context, item *entities.ActionItem) error

	// GetActionItemsForMeeting retrieves the meeting's action items.
	GetActionItemsForMeeting(ctx context.Context, meetingID string) ([]*entities.ActionItem, error)

	// ToggleActionItemComplete flips the item's completed flag and
	// returns the new state. Implementations make the flip atomic where
	// the backend allows it; the remote backend exposes action items only
	// through their meeting, hence the meetingID.
	ToggleActionItemComplete(ctx context.Context, meetingID, itemID string) (bool, error)

	// SetSummary stores AI summary output on the meeting.
	SetSummary(ctx context.Context, meetingID, summary string) error

	// SetExtractedActionItems stores extraction output on the meeting.
	SetExtractedActionItems(ctx context.Context, meetingID string, items datatypes.JSON) error

	// SetTranscription stores transcription output on the meeting.
	SetTranscription(ctx context.Context, meetingID, transcription string) error

	// SetRecordingURL records where the transcribed audio was retained.
	SetRecordingURL(ctx context.Context, meetingID, url string) error
}
