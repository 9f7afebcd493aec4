package minutes

import (
	govalidator "github.com/go-playground/validator/v10"

	meetingdto "github.com/Gagana-kumar/quick-mom/internal/adapter/dto/meeting"
)

// fieldMessages maps struct field names to their client-facing validation
// message. Every constraint on a field shares one message, matching the
// form feedback the UI shows.
var fieldMessages = map[string]struct {
	key     string
	message string
}{
	"Title":       {"title", "Title must be at least 3 characters."},
	"Description": {"description", "Description must be at least 10 characters."},
	"Date":        {"date", "Date is required."},
	"Text":        {"text", "Discussion point must be at least 5 characters."},
	"Task":        {"task", "Task must be at least 5 characters."},
	"AssigneeID":  {"assigneeId", "Please select an assignee."},
	"DueDate":     {"dueDate", "Please select a due date."},
	"MeetingID":   {"meetingId", "Meeting is required."},
	"TopicID":     {"topicId", "Topic is required."},
	"AudioData":   {"audioData", "Audio data is required."},
}

// topicTitleMessage overrides the generic title message for topic forms.
const topicTitleMessage = "Topic title must be at least 3 characters."

// fieldErrors validates req and renders failures as a field -> messages
// map. A nil result means the request is valid.
func (s *service) fieldErrors(req interface{}) map[string][]string {
	err := s.validate.Validate(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(govalidator.ValidationErrors)
	if !ok {
		return map[string][]string{"_form": {err.Error()}}
	}

	_, isTopic := req.(*meetingdto.AddTopicRequest)
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		entry, known := fieldMessages[fe.StructField()]
		if !known {
			out[fe.Field()] = append(out[fe.Field()], "Invalid value.")
			continue
		}
		message := entry.message
		if isTopic && fe.StructField() == "Title" {
			message = topicTitleMessage
		}
		out[entry.key] = append(out[entry.key], message)
	}
	return out
}
