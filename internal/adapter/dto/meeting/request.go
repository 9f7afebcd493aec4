package meeting

// CreateMeetingRequest represents the submission for a new meeting
type CreateMeetingRequest struct {
	Title       string   `json:"title" form:"title" validate:"required,min=3"`
	Description string   `json:"description" form:"description" validate:"required,min=10"`
	Date        string   `json:"date" form:"date" validate:"required"`
	AttendeeIDs []string `json:"attendeeIds" form:"attendeeIds"`
}

// AddTopicRequest represents the submission for a new agenda topic
type AddTopicRequest struct {
	MeetingID string `json:"meetingId" form:"meetingId" validate:"required"`
	Title     string `json:"title" form:"title" validate:"required,min=3"`
}

// AddDiscussionPointRequest represents the submission for a discussion point
type AddDiscussionPointRequest struct {
	MeetingID string `json:"meetingId" form:"meetingId" validate:"required"`
	TopicID   string `json:"topicId" form:"topicId" validate:"required"`
	Text      string `json:"text" form:"text" validate:"required,min=5"`
}

// AddActionItemRequest represents the submission for an action item
type AddActionItemRequest struct {
	MeetingID  string `json:"meetingId" form:"meetingId" validate:"required"`
	TopicID    string `json:"topicId" form:"topicId" validate:"required"`
	Task       string `json:"task" form:"task" validate:"required,min=5"`
	AssigneeID string `json:"assigneeId" form:"assigneeId" validate:"required"`
	DueDate    string `json:"dueDate" form:"dueDate" validate:"required"`
}

// TranscribeRequest carries the recorded audio as a base64 data URI
type TranscribeRequest struct {
	AudioData string `json:"audioData" validate:"required"`
}
