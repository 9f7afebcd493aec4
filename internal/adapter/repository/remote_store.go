package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Gagana-kumar/quick-mom/errors"
	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/pkg/requestctx"
)

// RemoteStore talks to the legacy minutes backend over HTTP. The caller's
// session cookie travels on every request (the backend owns the session, we
// only forward it), numeric ids coming back are normalized to strings, and
// read failures degrade to empty results so a dead backend renders an empty
// dashboard instead of an error page.
type RemoteStore struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewRemoteStore creates a store against baseURL, e.g.
// "http://127.0.0.1:5000/api".
func NewRemoteStore(baseURL string, logger *zap.Logger) *RemoteStore {
	return &RemoteStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// wireID tolerates the backend's integer primary keys as well as string ids.
type wireID string

func (w *wireID) UnmarshalJSON(b []byte) error {
	*w = wireID(strings.Trim(string(b), `"`))
	return nil
}

type wireUser struct {
	ID       wireID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type wirePoint struct {
	ID   wireID `json:"id"`
	Text string `json:"text"`
}

type wireTopic struct {
	ID               wireID      `json:"id"`
	Title            string      `json:"title"`
	DiscussionPoints []wirePoint `json:"discussionPoints"`
}

type wireActionItem struct {
	ID         wireID `json:"id"`
	Task       string `json:"task"`
	AssigneeID wireID `json:"assigneeId"`
	DueDate    string `json:"dueDate"`
	Completed  bool   `json:"completed"`
}

type wireMeeting struct {
	ID            wireID           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Date          string           `json:"date"`
	OwnerID       wireID           `json:"owner_id"`
	Topics        []wireTopic      `json:"topics"`
	Attendees     []wireUser       `json:"attendees"`
	ActionItems   []wireActionItem `json:"actionItems"`
	Transcription string           `json:"transcription"`
}

func (m wireMeeting) toEntity() *entities.Meeting {
	out := &entities.Meeting{
		ID:            string(m.ID),
		Title:         m.Title,
		Description:   m.Description,
		Date:          parseRemoteTime(m.Date),
		OwnerID:       string(m.OwnerID),
		Transcription: m.Transcription,
		Topics:        make([]*entities.Topic, 0, len(m.Topics)),
		AttendeeIDs:   make([]string, 0, len(m.Attendees)),
		ActionItems:   make([]*entities.ActionItem, 0, len(m.ActionItems)),
	}
	for _, t := range m.Topics {
		topic := &entities.Topic{
			ID:               string(t.ID),
			Title:            t.Title,
			MeetingID:        out.ID,
			DiscussionPoints: make([]*entities.DiscussionPoint, 0, len(t.DiscussionPoints)),
		}
		for _, p := range t.DiscussionPoints {
			topic.DiscussionPoints = append(topic.DiscussionPoints, &entities.DiscussionPoint{
				ID:      string(p.ID),
				Text:    p.Text,
				TopicID: topic.ID,
			})
		}
		out.Topics = append(out.Topics, topic)
	}
	for _, a := range m.Attendees {
		out.AttendeeIDs = append(out.AttendeeIDs, string(a.ID))
	}
	for _, i := range m.ActionItems {
		out.ActionItems = append(out.ActionItems, i.toEntity(out.ID))
	}
	return out
}

func (i wireActionItem) toEntity(meetingID string) *entities.ActionItem {
	return &entities.ActionItem{
		ID:         string(i.ID),
		Task:       i.Task,
		AssigneeID: string(i.AssigneeID),
		DueDate:    parseRemoteTime(i.DueDate),
		Completed:  i.Completed,
		MeetingID:  meetingID,
	}
}

// parseRemoteTime accepts the backend's naive isoformat timestamps as well
// as RFC3339. A zero time stands in for anything unparseable.
func parseRemoteTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// do issues a JSON request with the caller's session cookie attached and
// decodes a 2xx body into out (when out is non-nil). Non-2xx responses
// surface the backend's error field when present.
func (s *RemoteStore) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.ErrInternal(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return errors.ErrInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cookie := requestctx.SessionCookie(ctx); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.ErrStoreFailed(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var remoteErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&remoteErr)
		msg := remoteErr.Error
		if msg == "" {
			msg = fmt.Sprintf("backend returned %s", resp.Status)
		}
		return errors.ErrStoreFailed(method+" "+path, fmt.Errorf("%s", msg))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.ErrStoreFailed(method+" "+path, err)
	}
	return nil
}

// GetMeetings lists the caller's meetings. A backend failure yields an
// empty list, never an error.
func (s *RemoteStore) GetMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	var wire []wireMeeting
	if err := s.do(ctx, http.MethodGet, "/meetings", nil, &wire); err != nil {
		s.logger.Warn("failed to fetch meetings from backend", zap.Error(err))
		return []*entities.Meeting{}, nil
	}
	out := make([]*entities.Meeting, 0, len(wire))
	for _, m := range wire {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// GetMeetingByID fetches one meeting. Any failure, including an unknown id,
// reads as absent.
func (s *RemoteStore) GetMeetingByID(ctx context.Context, id string) (*entities.Meeting, error) {
	var wire wireMeeting
	if err := s.do(ctx, http.MethodGet, "/meetings/"+url.PathEscape(id), nil, &wire); err != nil {
		s.logger.Warn("failed to fetch meeting from backend", zap.String("meeting_id", id), zap.Error(err))
		return nil, nil
	}
	return wire.toEntity(), nil
}

// CreateMeeting posts the meeting and adopts the backend-assigned id.
func (s *RemoteStore) CreateMeeting(ctx context.Context, meeting *entities.Meeting) error {
	payload := map[string]interface{}{
		"title":       meeting.Title,
		"description": meeting.Description,
		"date":        meeting.Date.Format(time.RFC3339),
		"attendeeIds": meeting.AttendeeIDs,
	}
	var wire wireMeeting
	if err := s.do(ctx, http.MethodPost, "/meetings", payload, &wire); err != nil {
		return err
	}
	meeting.ID = string(wire.ID)
	meeting.OwnerID = string(wire.OwnerID)
	return nil
}

// AddTopic posts the topic and adopts the backend-assigned id.
func (s *RemoteStore) AddTopic(ctx context.Context, meetingID string, topic *entities.Topic) error {
	var wire wireTopic
	path := "/meetings/" + url.PathEscape(meetingID) + "/topics"
	if err := s.do(ctx, http.MethodPost, path, map[string]string{"title": topic.Title}, &wire); err != nil {
		return err
	}
	topic.ID = string(wire.ID)
	topic.MeetingID = meetingID
	return nil
}

// AddDiscussionPoint posts the point and adopts the backend-assigned id.
func (s *RemoteStore) AddDiscussionPoint(ctx context.Context, meetingID, topicID string, point *entities.DiscussionPoint) error {
	var wire wirePoint
	path := "/meetings/" + url.PathEscape(meetingID) + "/topics/" + url.PathEscape(topicID) + "/points"
	if err := s.do(ctx, http.MethodPost, path, map[string]string{"text": point.Text}, &wire); err != nil {
		return err
	}
	point.ID = string(wire.ID)
	point.TopicID = topicID
	return nil
}

// AddActionItem posts the item. The backend treats the sentinel topic id
// "general" as no topic.
func (s *RemoteStore) AddActionItem(ctx context.Context, item *entities.ActionItem) error {
	topicID := item.TopicID
	if topicID == "" {
		topicID = "general"
	}
	payload := map[string]interface{}{
		"topicId":    topicID,
		"task":       item.Task,
		"assigneeId": item.AssigneeID,
		"dueDate":    item.DueDate.Format(time.RFC3339),
	}
	var wire wireActionItem
	path := "/meetings/" + url.PathEscape(item.MeetingID) + "/action-items"
	if err := s.do(ctx, http.MethodPost, path, payload, &wire); err != nil {
		return err
	}
	item.ID = string(wire.ID)
	return nil
}

// GetActionItemsForMeeting reads the items off the meeting detail. A
// backend failure yields an empty list.
func (s *RemoteStore) GetActionItemsForMeeting(ctx context.Context, meetingID string) ([]*entities.ActionItem, error) {
	m, err := s.GetMeetingByID(ctx, meetingID)
	if err != nil || m == nil {
		return []*entities.ActionItem{}, nil
	}
	return m.ActionItems, nil
}

// ToggleActionItemComplete reads the item's current state off the meeting
// and writes back the negation. The backend has no flip primitive, so two
// concurrent toggles can read the same state; that race lives at the
// backend boundary.
func (s *RemoteStore) ToggleActionItemComplete(ctx context.Context, meetingID, itemID string) (bool, error) {
	items, err := s.GetActionItemsForMeeting(ctx, meetingID)
	if err != nil {
		return false, err
	}
	var current *entities.ActionItem
	for _, item := range items {
		if item.ID == itemID {
			current = item
			break
		}
	}
	if current == nil {
		return false, errActionItemNotFound(itemID)
	}

	next := !current.Completed
	payload := map[string]bool{"completed": next}
	var wire wireActionItem
	if err := s.do(ctx, http.MethodPut, "/action-items/"+url.PathEscape(itemID), payload, &wire); err != nil {
		return false, err
	}
	return wire.Completed, nil
}

// The legacy backend does not persist AI output (it only simulates
// transcription internally), so the writeback half of the contract is a
// logged no-op in remote mode. Results still reach the caller through the
// pipeline's return value.

func (s *RemoteStore) SetSummary(ctx context.Context, meetingID, summary string) error {
	s.logger.Debug("backend does not persist summaries, skipping", zap.String("meeting_id", meetingID))
	return nil
}

func (s *RemoteStore) SetExtractedActionItems(ctx context.Context, meetingID string, items datatypes.JSON) error {
	s.logger.Debug("backend does not persist extracted action items, skipping", zap.String("meeting_id", meetingID))
	return nil
}

func (s *RemoteStore) SetTranscription(ctx context.Context, meetingID, transcription string) error {
	s.logger.Debug("backend does not persist external transcriptions, skipping", zap.String("meeting_id", meetingID))
	return nil
}

func (s *RemoteStore) SetRecordingURL(ctx context.Context, meetingID, url string) error {
	s.logger.Debug("backend does not persist recording locations, skipping", zap.String("meeting_id", meetingID))
	return nil
}

// UserDirectory implementation

// GetAttendees lists backend users projected to attendees. Fails soft.
func (s *RemoteStore) GetAttendees(ctx context.Context) ([]*entities.Attendee, error) {
	users, err := s.SearchUsers(ctx, "")
	if err != nil {
		return []*entities.Attendee{}, nil
	}
	out := make([]*entities.Attendee, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToAttendee())
	}
	return out, nil
}

// SearchUsers queries the backend user directory. Fails soft.
func (s *RemoteStore) SearchUsers(ctx context.Context, query string) ([]*entities.User, error) {
	var wire []wireUser
	if err := s.do(ctx, http.MethodGet, "/users/search?q="+url.QueryEscape(query), nil, &wire); err != nil {
		s.logger.Warn("failed to search backend users", zap.Error(err))
		return []*entities.User{}, nil
	}
	out := make([]*entities.User, 0, len(wire))
	for _, u := range wire {
		out = append(out, &entities.User{
			ID:       string(u.ID),
			Username: u.Username,
			Email:    u.Email,
		})
	}
	return out, nil
}
