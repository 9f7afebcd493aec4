package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItem is a committed, assignable, completable task linked to a
// meeting. It references its meeting and topic by id rather than being
// embedded, so it can be queried independently.
type ActionItem struct {
	ID         string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Task       string    `gorm:"type:varchar(200);not null" json:"task"`
	AssigneeID string    `gorm:"type:varchar(64)" json:"assigneeId"`
	DueDate    time.Time `json:"dueDate"`
	Completed  bool      `gorm:"default:false" json:"completed"`
	MeetingID  string    `gorm:"type:uuid;not null;index" json:"meetingId"`
	TopicID    string    `gorm:"type:uuid;index" json:"topicId"`
	CreatedAt  time.Time `gorm:"default:now()" json:"-"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem constructs an incomplete action item with a fresh id.
func NewActionItem(meetingID, topicID, task, assigneeID string, dueDate time.Time) *ActionItem {
	return &ActionItem{
		ID:         uuid.NewString(),
		Task:       task,
		AssigneeID: assigneeID,
		DueDate:    dueDate,
		Completed:  false,
		MeetingID:  meetingID,
		TopicID:    topicID,
	}
}
