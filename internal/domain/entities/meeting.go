package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting is the top-level aggregate of scheduling and discussion data.
// Topics and their discussion points are owned by the meeting; action items
// reference it by id. The summary, extractedActionItems and transcription
// fields hold AI pipeline output and are overwritten on each run.
type Meeting struct {
	ID          string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	OwnerID     string    `gorm:"type:uuid;index" json:"-"`

	// AttendeeIDs is the ordered attendee list every store variant exposes.
	// The postgres store persists the relation through Attendees and fills
	// this slice on load; the other stores carry it directly.
	AttendeeIDs []string `gorm:"-" json:"attendeeIds"`
	Attendees   []*User  `gorm:"many2many:meeting_attendees" json:"-"`

	Topics      []*Topic      `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"topics"`
	ActionItems []*ActionItem `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"actionItems,omitempty"`

	Summary              string         `gorm:"type:text" json:"summary,omitempty"`
	ExtractedActionItems datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"extractedActionItems,omitempty"`
	Transcription        string         `gorm:"type:text" json:"transcription,omitempty"`
	RecordingURL         string         `gorm:"type:text" json:"recordingUrl,omitempty"`

	CreatedAt time.Time `gorm:"default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"default:now()" json:"-"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting constructs a meeting with a fresh id.
func NewMeeting(title, description string, date time.Time, ownerID string, attendeeIDs []string) *Meeting {
	return &Meeting{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Date:        date,
		OwnerID:     ownerID,
		AttendeeIDs: attendeeIDs,
		Topics:      []*Topic{},
	}
}

// FindTopic returns the topic with the given id, nil when absent.
func (m *Meeting) FindTopic(topicID string) *Topic {
	for _, t := range m.Topics {
		if t.ID == topicID {
			return t
		}
	}
	return nil
}

// CanAccess reports whether the user owns or attends the meeting.
func (m *Meeting) CanAccess(userID string) bool {
	if m.OwnerID == userID {
		return true
	}
	for _, id := range m.AttendeeIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ExtractedActionItem is an advisory action item produced by the extraction
// pipeline. Its fields are free text and are not linked to any attendee id.
type ExtractedActionItem struct {
	Item     string `json:"item" validate:"required"`
	Assignee string `json:"assignee" validate:"required"`
	Deadline string `json:"deadline" validate:"required"`
}
