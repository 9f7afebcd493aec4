package minutes

import (
	"context"
	"time"

	"go.uber.org/zap"

	meetingdto "github.com/Gagana-kumar/quick-mom/internal/adapter/dto/meeting"
	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/internal/domain/repositories"
	"github.com/Gagana-kumar/quick-mom/internal/infrastructure/cache"
	"github.com/Gagana-kumar/quick-mom/pkg/requestctx"
	"github.com/Gagana-kumar/quick-mom/pkg/validator"
)

// Service owns reads and mutations of meeting minutes. Mutations never
// panic a form round-trip: validation problems and store failures both come
// back as an ActionResult the client can render.
type Service interface {
	ListMeetings(ctx context.Context) ([]*entities.Meeting, error)
	GetMeeting(ctx context.Context, id string) (*entities.Meeting, error)
	ListAttendees(ctx context.Context) ([]*entities.Attendee, error)
	ListActionItems(ctx context.Context, meetingID string) ([]*entities.ActionItem, error)

	CreateMeeting(ctx context.Context, req *meetingdto.CreateMeetingRequest) *meetingdto.ActionResult
	AddTopic(ctx context.Context, req *meetingdto.AddTopicRequest) *meetingdto.ActionResult
	AddDiscussionPoint(ctx context.Context, req *meetingdto.AddDiscussionPointRequest) *meetingdto.ActionResult
	AddActionItem(ctx context.Context, req *meetingdto.AddActionItemRequest) *meetingdto.ActionResult
	ToggleActionItem(ctx context.Context, meetingID, itemID string)
}

type service struct {
	store            repositories.MeetingStore
	directory        repositories.UserDirectory
	views            cache.ViewCache
	validate         *validator.CustomValidator
	requireAttendees bool
	logger           *zap.Logger
}

// NewService constructs the minutes service.
func NewService(
	store repositories.MeetingStore,
	directory repositories.UserDirectory,
	views cache.ViewCache,
	validate *validator.CustomValidator,
	requireAttendees bool,
	logger *zap.Logger,
) Service {
	return &service{
		store:            store,
		directory:        directory,
		views:            views,
		validate:         validate,
		requireAttendees: requireAttendees,
		logger:           logger,
	}
}

const (
	msgSuccess              = "success"
	msgCreateMeetingFailed  = "Failed to create meeting."
	msgAddTopicFailed       = "Failed to add topic."
	msgAddPointFailed       = "Failed to add point."
	msgAddActionItemFailed  = "Failed to add action item."
	msgAttendeesRequired    = "Please select at least one attendee."
	msgInvalidDate          = "Please provide a valid date."
	dashboardPath           = "/"
	newMeetingPath          = "/meetings/new"
)

func meetingPath(id string) string {
	return "/meetings/" + id
}

// ListMeetings returns all meetings visible to the caller.
func (s *service) ListMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	return s.store.GetMeetings(ctx)
}

// GetMeeting returns one meeting, nil when absent. An unknown id is a
// normal outcome, not an error.
func (s *service) GetMeeting(ctx context.Context, id string) (*entities.Meeting, error) {
	return s.store.GetMeetingByID(ctx, id)
}

// ListAttendees returns the attendee directory.
func (s *service) ListAttendees(ctx context.Context) ([]*entities.Attendee, error) {
	return s.directory.GetAttendees(ctx)
}

// ListActionItems returns a meeting's action items.
func (s *service) ListActionItems(ctx context.Context, meetingID string) ([]*entities.ActionItem, error) {
	return s.store.GetActionItemsForMeeting(ctx, meetingID)
}

// CreateMeeting validates the submission, persists the meeting and
// invalidates the dashboard views.
func (s *service) CreateMeeting(ctx context.Context, req *meetingdto.CreateMeetingRequest) *meetingdto.ActionResult {
	if errs := s.fieldErrors(req); errs != nil {
		return &meetingdto.ActionResult{Message: msgCreateMeetingFailed, Errors: errs}
	}
	if s.requireAttendees && len(req.AttendeeIDs) == 0 {
		return &meetingdto.ActionResult{
			Message: msgCreateMeetingFailed,
			Errors:  map[string][]string{"attendeeIds": {msgAttendeesRequired}},
		}
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return &meetingdto.ActionResult{
			Message: msgCreateMeetingFailed,
			Errors:  map[string][]string{"date": {msgInvalidDate}},
		}
	}

	ownerID, _ := requestctx.UserID(ctx)
	m := entities.NewMeeting(req.Title, req.Description, date, ownerID, req.AttendeeIDs)
	if err := s.store.CreateMeeting(ctx, m); err != nil {
		s.logger.Error("failed to create meeting", zap.Error(err))
		return &meetingdto.ActionResult{Message: msgCreateMeetingFailed}
	}

	s.views.Invalidate(ctx, dashboardPath, newMeetingPath)
	return &meetingdto.ActionResult{Message: msgSuccess, MeetingID: m.ID}
}

// AddTopic validates and appends an agenda topic.
func (s *service) AddTopic(ctx context.Context, req *meetingdto.AddTopicRequest) *meetingdto.ActionResult {
	if errs := s.fieldErrors(req); errs != nil {
		return &meetingdto.ActionResult{Message: msgAddTopicFailed, Errors: errs}
	}

	topic := entities.NewTopic(req.MeetingID, req.Title)
	if err := s.store.AddTopic(ctx, req.MeetingID, topic); err != nil {
		s.logger.Error("failed to add topic", zap.String("meeting_id", req.MeetingID), zap.Error(err))
		return &meetingdto.ActionResult{Message: msgAddTopicFailed}
	}

	s.views.Invalidate(ctx, dashboardPath, meetingPath(req.MeetingID))
	return &meetingdto.ActionResult{Message: msgSuccess}
}

// AddDiscussionPoint validates and appends a discussion point.
func (s *service) AddDiscussionPoint(ctx context.Context, req *meetingdto.AddDiscussionPointRequest) *meetingdto.ActionResult {
	if errs := s.fieldErrors(req); errs != nil {
		return &meetingdto.ActionResult{Message: msgAddPointFailed, Errors: errs}
	}

	point := entities.NewDiscussionPoint(req.TopicID, req.Text)
	if err := s.store.AddDiscussionPoint(ctx, req.MeetingID, req.TopicID, point); err != nil {
		s.logger.Error("failed to add discussion point",
			zap.String("meeting_id", req.MeetingID),
			zap.String("topic_id", req.TopicID),
			zap.Error(err))
		return &meetingdto.ActionResult{Message: msgAddPointFailed}
	}

	s.views.Invalidate(ctx, dashboardPath, meetingPath(req.MeetingID))
	return &meetingdto.ActionResult{Message: msgSuccess}
}

// AddActionItem validates and appends an action item.
func (s *service) AddActionItem(ctx context.Context, req *meetingdto.AddActionItemRequest) *meetingdto.ActionResult {
	if errs := s.fieldErrors(req); errs != nil {
		return &meetingdto.ActionResult{Message: msgAddActionItemFailed, Errors: errs}
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return &meetingdto.ActionResult{
			Message: msgAddActionItemFailed,
			Errors:  map[string][]string{"dueDate": {msgInvalidDate}},
		}
	}

	// The item form uses "general" as the no-topic choice.
	topicID := req.TopicID
	if topicID == "general" {
		topicID = ""
	}
	item := entities.NewActionItem(req.MeetingID, topicID, req.Task, req.AssigneeID, dueDate)
	if err := s.store.AddActionItem(ctx, item); err != nil {
		s.logger.Error("failed to add action item", zap.String("meeting_id", req.MeetingID), zap.Error(err))
		return &meetingdto.ActionResult{Message: msgAddActionItemFailed}
	}

	s.views.Invalidate(ctx, dashboardPath, meetingPath(req.MeetingID))
	return &meetingdto.ActionResult{Message: msgSuccess}
}

// ToggleActionItem flips an item's completed state. Failures are logged
// and swallowed; the views are refreshed either way so the client reads
// back whatever state the store holds.
func (s *service) ToggleActionItem(ctx context.Context, meetingID, itemID string) {
	if _, err := s.store.ToggleActionItemComplete(ctx, meetingID, itemID); err != nil {
		s.logger.Warn("failed to toggle action item",
			zap.String("meeting_id", meetingID),
			zap.String("item_id", itemID),
			zap.Error(err))
	}
	s.views.Invalidate(ctx, dashboardPath, meetingPath(meetingID))
}

// parseDate accepts RFC3339 timestamps and bare dates from form inputs.
func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
