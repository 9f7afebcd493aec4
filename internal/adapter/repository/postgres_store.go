package repository

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Gagana-kumar/quick-mom/errors"
	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/pkg/requestctx"
)

// PostgresStore persists meetings and accounts through GORM. When the
// request context carries an authenticated user, reads are scoped to
// meetings that user owns or attends.
type PostgresStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewPostgresStore(db *gorm.DB, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{db: db, logger: logger}
}

func (s *PostgresStore) meetingQuery(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx).
		Preload("Topics.DiscussionPoints").
		Preload("ActionItems").
		Preload("Attendees")
	if userID, ok := requestctx.UserID(ctx); ok {
		q = q.Where(
			"meetings.owner_id = ? OR meetings.id IN (SELECT meeting_id FROM meeting_attendees WHERE user_id = ?)",
			userID, userID,
		)
	}
	return q
}

// GetMeetings lists meetings visible to the calling user.
func (s *PostgresStore) GetMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if err := s.meetingQuery(ctx).Order("meetings.date DESC").Find(&meetings).Error; err != nil {
		return nil, errors.ErrStoreFailed("list meetings", err)
	}
	for _, m := range meetings {
		fillAttendeeIDs(m)
	}
	return meetings, nil
}

// GetMeetingByID fetches one meeting; (nil, nil) when absent or not
// visible to the calling user.
func (s *PostgresStore) GetMeetingByID(ctx context.Context, id string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := s.meetingQuery(ctx).Where("meetings.id = ?", id).First(&meeting).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.ErrStoreFailed("get meeting", err)
	}
	fillAttendeeIDs(&meeting)
	return &meeting, nil
}

// CreateMeeting persists the meeting and links its attendees.
func (s *PostgresStore) CreateMeeting(ctx context.Context, meeting *entities.Meeting) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Attendees", "Topics", "ActionItems").Create(meeting).Error; err != nil {
			return errors.ErrStoreFailed("create meeting", err)
		}
		if len(meeting.AttendeeIDs) == 0 {
			return nil
		}
		var attendees []*entities.User
		if err := tx.Where("id IN ?", meeting.AttendeeIDs).Find(&attendees).Error; err != nil {
			return errors.ErrStoreFailed("resolve attendees", err)
		}
		if err := tx.Model(meeting).Association("Attendees").Replace(attendees); err != nil {
			return errors.ErrStoreFailed("link attendees", err)
		}
		return nil
	})
}

// AddTopic persists the topic under its meeting.
func (s *PostgresStore) AddTopic(ctx context.Context, meetingID string, topic *entities.Topic) error {
	m, err := s.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if m == nil {
		return errMeetingNotFound(meetingID)
	}
	topic.MeetingID = m.ID
	if err := s.db.WithContext(ctx).Omit("DiscussionPoints").Create(topic).Error; err != nil {
		return errors.ErrStoreFailed("create topic", err)
	}
	return nil
}

// AddDiscussionPoint persists the point under its topic.
func (s *PostgresStore) AddDiscussionPoint(ctx context.Context, meetingID, topicID string, point *entities.DiscussionPoint) error {
	m, err := s.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if m == nil {
		return errMeetingNotFound(meetingID)
	}
	if m.FindTopic(topicID) == nil {
		return errTopicNotFound(topicID)
	}
	point.TopicID = topicID
	if err := s.db.WithContext(ctx).Create(point).Error; err != nil {
		return errors.ErrStoreFailed("create discussion point", err)
	}
	return nil
}

// AddActionItem persists the item under its meeting.
func (s *PostgresStore) AddActionItem(ctx context.Context, item *entities.ActionItem) error {
	m, err := s.GetMeetingByID(ctx, item.MeetingID)
	if err != nil {
		return err
	}
	if m == nil {
		return errMeetingNotFound(item.MeetingID)
	}
	q := s.db.WithContext(ctx)
	if item.TopicID == "" {
		// Leave the uuid column NULL for untopiced items.
		q = q.Omit("TopicID")
	}
	if err := q.Create(item).Error; err != nil {
		return errors.ErrStoreFailed("create action item", err)
	}
	return nil
}

// GetActionItemsForMeeting retrieves the meeting's action items.
func (s *PostgresStore) GetActionItemsForMeeting(ctx context.Context, meetingID string) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := s.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, errors.ErrStoreFailed("list action items", err)
	}
	return items, nil
}

// ToggleActionItemComplete flips the flag in a single statement so two
// concurrent toggles always net out to two flips.
func (s *PostgresStore) ToggleActionItemComplete(ctx context.Context, meetingID, itemID string) (bool, error) {
	var completed []bool
	err := s.db.WithContext(ctx).Raw(
		"UPDATE action_items SET completed = NOT completed WHERE id = ? AND meeting_id = ? RETURNING completed",
		itemID, meetingID,
	).Scan(&completed).Error
	if err != nil {
		return false, errors.ErrStoreFailed("toggle action item", err)
	}
	if len(completed) == 0 {
		return false, errActionItemNotFound(itemID)
	}
	return completed[0], nil
}

func (s *PostgresStore) updateMeetingColumn(ctx context.Context, meetingID, column string, value interface{}) error {
	res := s.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", meetingID).
		Update(column, value)
	if res.Error != nil {
		return errors.ErrStoreFailed("update meeting "+column, res.Error)
	}
	if res.RowsAffected == 0 {
		return errMeetingNotFound(meetingID)
	}
	return nil
}

func (s *PostgresStore) SetSummary(ctx context.Context, meetingID, summary string) error {
	return s.updateMeetingColumn(ctx, meetingID, "summary", summary)
}

func (s *PostgresStore) SetExtractedActionItems(ctx context.Context, meetingID string, items datatypes.JSON) error {
	return s.updateMeetingColumn(ctx, meetingID, "extracted_action_items", items)
}

func (s *PostgresStore) SetTranscription(ctx context.Context, meetingID, transcription string) error {
	return s.updateMeetingColumn(ctx, meetingID, "transcription", transcription)
}

func (s *PostgresStore) SetRecordingURL(ctx context.Context, meetingID, url string) error {
	return s.updateMeetingColumn(ctx, meetingID, "recording_url", url)
}

// fillAttendeeIDs projects the loaded association onto the transport shape.
func fillAttendeeIDs(m *entities.Meeting) {
	m.AttendeeIDs = make([]string, 0, len(m.Attendees))
	for _, a := range m.Attendees {
		m.AttendeeIDs = append(m.AttendeeIDs, a.ID)
	}
}

// UserStore implementation

// GetAttendees lists all users projected to attendees.
func (s *PostgresStore) GetAttendees(ctx context.Context) ([]*entities.Attendee, error) {
	users, err := s.SearchUsers(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Attendee, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToAttendee())
	}
	return out, nil
}

// SearchUsers matches usernames case-insensitively; empty query lists up
// to 20 users.
func (s *PostgresStore) SearchUsers(ctx context.Context, query string) ([]*entities.User, error) {
	var users []*entities.User
	q := s.db.WithContext(ctx)
	if query == "" {
		q = q.Limit(20)
	} else {
		q = q.Where("username ILIKE ?", "%"+strings.ReplaceAll(query, "%", `\%`)+"%").Limit(10)
	}
	if err := q.Order("username ASC").Find(&users).Error; err != nil {
		return nil, errors.ErrStoreFailed("search users", err)
	}
	return users, nil
}

func (s *PostgresStore) findUser(ctx context.Context, column, value string) (*entities.User, error) {
	var user entities.User
	err := s.db.WithContext(ctx).Where(column+" = ?", value).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.ErrStoreFailed("find user", err)
	}
	return &user, nil
}

// FindByID retrieves one user; (nil, nil) when absent.
func (s *PostgresStore) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return s.findUser(ctx, "id", id)
}

// FindByEmail retrieves one user by email; (nil, nil) when absent.
func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return s.findUser(ctx, "email", email)
}

// FindByUsername retrieves one user by username; (nil, nil) when absent.
func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return s.findUser(ctx, "username", username)
}

// CreateUser persists a new account.
func (s *PostgresStore) CreateUser(ctx context.Context, user *entities.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.ErrStoreFailed("create user", err)
	}
	return nil
}
