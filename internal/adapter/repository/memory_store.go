package repository

import (
	"context"
	"sync"

	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/pkg/requestctx"
	"gorm.io/datatypes"
)

// MemoryStore is the in-process store used in mock mode. It keeps a
// process-lifetime mutable list of meetings; reads hand out references into
// that list and mutations are applied in place. It is an explicitly owned,
// injectable instance rather than a package-level singleton so tests can
// construct isolated stores.
//
// The mutex only guards list structure and the completed-flag flip. Callers
// holding references across goroutines can still interleave field writes;
// that is accepted for a development/demo backend.
type MemoryStore struct {
	mu          sync.RWMutex
	meetings    []*entities.Meeting
	actionItems []*entities.ActionItem
	users       []*entities.User
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetMeetings returns references to the meetings visible to the calling
// user. Unauthenticated contexts see everything, matching the SQL store.
func (s *MemoryStore) GetMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, scoped := requestctx.UserID(ctx)
	out := make([]*entities.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		if scoped && !m.CanAccess(userID) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// GetMeetingByID returns the stored meeting, (nil, nil) when absent or
// not visible to the calling user.
func (s *MemoryStore) GetMeetingByID(ctx context.Context, id string) (*entities.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := s.findMeeting(id)
	if m == nil {
		return nil, nil
	}
	if userID, scoped := requestctx.UserID(ctx); scoped && !m.CanAccess(userID) {
		return nil, nil
	}
	return m, nil
}

// findMeeting must be called with the lock held.
func (s *MemoryStore) findMeeting(id string) *entities.Meeting {
	for _, m := range s.meetings {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// CreateMeeting appends the meeting to the store.
func (s *MemoryStore) CreateMeeting(ctx context.Context, meeting *entities.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if meeting.Topics == nil {
		meeting.Topics = []*entities.Topic{}
	}
	s.meetings = append(s.meetings, meeting)
	return nil
}

// AddTopic appends the topic to the owning meeting in place.
func (s *MemoryStore) AddTopic(ctx context.Context, meetingID string, topic *entities.Topic) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findMeeting(meetingID)
	if m == nil {
		return errMeetingNotFound(meetingID)
	}
	topic.MeetingID = m.ID
	m.Topics = append(m.Topics, topic)
	return nil
}

// AddDiscussionPoint appends the point to the owning topic in place.
func (s *MemoryStore) AddDiscussionPoint(ctx context.Context, meetingID, topicID string, point *entities.DiscussionPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findMeeting(meetingID)
	if m == nil {
		return errMeetingNotFound(meetingID)
	}
	t := m.FindTopic(topicID)
	if t == nil {
		return errTopicNotFound(topicID)
	}
	point.TopicID = t.ID
	t.DiscussionPoints = append(t.DiscussionPoints, point)
	return nil
}

// AddActionItem appends the action item to the store.
func (s *MemoryStore) AddActionItem(ctx context.Context, item *entities.ActionItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findMeeting(item.MeetingID) == nil {
		return errMeetingNotFound(item.MeetingID)
	}
	s.actionItems = append(s.actionItems, item)
	return nil
}

// GetActionItemsForMeeting returns references to the meeting's action items.
func (s *MemoryStore) GetActionItemsForMeeting(ctx context.Context, meetingID string) ([]*entities.ActionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entities.ActionItem
	for _, item := range s.actionItems {
		if item.MeetingID == meetingID {
			out = append(out, item)
		}
	}
	return out, nil
}

// ToggleActionItemComplete flips the completed flag under the store lock,
// so two concurrent toggles always observe each other.
func (s *MemoryStore) ToggleActionItemComplete(ctx context.Context, meetingID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.actionItems {
		if item.ID == itemID {
			item.Completed = !item.Completed
			return item.Completed, nil
		}
	}
	return false, errActionItemNotFound(itemID)
}

// SetSummary stores AI summary output on the meeting.
func (s *MemoryStore) SetSummary(ctx context.Context, meetingID, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findMeeting(meetingID)
	if m == nil {
		return errMeetingNotFound(meetingID)
	}
	m.Summary = summary
	return nil
}

// SetExtractedActionItems stores extraction output on the meeting.
func (s *MemoryStore) SetExtractedActionItems(ctx context.Context, meetingID string, items datatypes.JSON) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findMeeting(meetingID)
	if m == nil {
		return errMeetingNotFound(meetingID)
	}
	m.ExtractedActionItems = items
	return nil
}

// SetTranscription stores transcription output on the meeting.
func (s *MemoryStore) SetTranscription(ctx context.Context, meetingID, transcription string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findMeeting(meetingID)
	if m == nil {
		return errMeetingNotFound(meetingID)
	}
	m.Transcription = transcription
	return nil
}

// SetRecordingURL records where the transcribed audio was retained.
func (s *MemoryStore) SetRecordingURL(ctx context.Context, meetingID, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findMeeting(meetingID)
	if m == nil {
		return errMeetingNotFound(meetingID)
	}
	m.RecordingURL = url
	return nil
}

// UserStore implementation

// GetAttendees projects all stored users to attendees.
func (s *MemoryStore) GetAttendees(ctx context.Context) ([]*entities.Attendee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.Attendee, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.ToAttendee())
	}
	return out, nil
}

// SearchUsers matches usernames by substring; empty query lists up to 20.
func (s *MemoryStore) SearchUsers(ctx context.Context, query string) ([]*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entities.User
	for _, u := range s.users {
		if query == "" || containsFold(u.Username, query) {
			out = append(out, u)
		}
		if query == "" && len(out) == 20 {
			break
		}
		if query != "" && len(out) == 10 {
			break
		}
	}
	return out, nil
}

// FindByID returns the stored user, (nil, nil) when absent.
func (s *MemoryStore) FindByID(ctx context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// FindByEmail returns the stored user, (nil, nil) when absent.
func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// FindByUsername returns the stored user, (nil, nil) when absent.
func (s *MemoryStore) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// CreateUser appends the user to the store.
func (s *MemoryStore) CreateUser(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user)
	return nil
}
