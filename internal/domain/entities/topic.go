package entities

import (
	"github.com/google/uuid"
)

// Topic is one agenda item inside a meeting.
type Topic struct {
	ID               string             `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title            string             `gorm:"type:varchar(100);not null" json:"title"`
	MeetingID        string             `gorm:"type:uuid;not null;index" json:"-"`
	DiscussionPoints []*DiscussionPoint `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"discussionPoints"`
}

// TableName specifies the table name for Topic
func (Topic) TableName() string {
	return "topics"
}

// NewTopic constructs a topic with a fresh id.
func NewTopic(meetingID, title string) *Topic {
	return &Topic{
		ID:               uuid.NewString(),
		Title:            title,
		MeetingID:        meetingID,
		DiscussionPoints: []*DiscussionPoint{},
	}
}

// DiscussionPoint is a single note under a topic. Immutable once created.
type DiscussionPoint struct {
	ID      string `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Text    string `gorm:"type:text;not null" json:"text"`
	TopicID string `gorm:"type:uuid;not null;index" json:"-"`
}

// TableName specifies the table name for DiscussionPoint
func (DiscussionPoint) TableName() string {
	return "discussion_points"
}

// NewDiscussionPoint constructs a discussion point with a fresh id.
func NewDiscussionPoint(topicID, text string) *DiscussionPoint {
	return &DiscussionPoint{
		ID:      uuid.NewString(),
		Text:    text,
		TopicID: topicID,
	}
}
