package repository

import (
	"strings"
	"time"

	"github.com/Gagana-kumar/quick-mom/errors"
	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
)

// Seed loads the demo fixture: five users, two meetings with their topics
// and discussion points, and three action items. Mock mode starts from this
// data so the UI has something to render without a backend.
func (s *MemoryStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	s.users = []*entities.User{
		seedUser("user-1", "Alice Johnson", "alice@example.com"),
		seedUser("user-2", "Bob Williams", "bob@example.com"),
		seedUser("user-3", "Charlie Brown", "charlie@example.com"),
		seedUser("user-4", "Diana Miller", "diana@example.com"),
		seedUser("user-5", "Eve Davis", "eve@example.com"),
	}

	kickoff := &entities.Meeting{
		ID:          "meeting-1",
		Title:       "Q3 Project Kickoff",
		Description: "Initial meeting to align on goals and deliverables for the third quarter.",
		Date:        now.AddDate(0, 0, -2),
		OwnerID:     "user-1",
		AttendeeIDs: []string{"user-1", "user-2", "user-3"},
		Topics: []*entities.Topic{
			{
				ID:        "topic-1-1",
				MeetingID: "meeting-1",
				Title:     `Marketing Campaign "Ignite"`,
				DiscussionPoints: []*entities.DiscussionPoint{
					{ID: "dp-1-1-1", TopicID: "topic-1-1", Text: "Finalize the budget for social media ads."},
					{ID: "dp-1-1-2", TopicID: "topic-1-1", Text: "Review creative assets from the design team."},
				},
			},
			{
				ID:               "topic-1-2",
				MeetingID:        "meeting-1",
				Title:            "Website Redesign",
				DiscussionPoints: []*entities.DiscussionPoint{},
			},
		},
		CreatedAt: now.AddDate(0, 0, -2),
		UpdatedAt: now.AddDate(0, 0, -2),
	}

	techSync := &entities.Meeting{
		ID:          "meeting-2",
		Title:       "Weekly Tech Sync",
		Description: "Regular sync to discuss ongoing technical tasks and blockers.",
		Date:        now.AddDate(0, 0, -9),
		OwnerID:     "user-4",
		AttendeeIDs: []string{"user-1", "user-4", "user-5"},
		Topics: []*entities.Topic{
			{
				ID:               "topic-2-1",
				MeetingID:        "meeting-2",
				Title:            "API Performance",
				DiscussionPoints: []*entities.DiscussionPoint{},
			},
			{
				ID:               "topic-2-2",
				MeetingID:        "meeting-2",
				Title:            "Database Migration",
				DiscussionPoints: []*entities.DiscussionPoint{},
			},
		},
		CreatedAt: now.AddDate(0, 0, -9),
		UpdatedAt: now.AddDate(0, 0, -9),
	}

	s.meetings = []*entities.Meeting{kickoff, techSync}

	s.actionItems = []*entities.ActionItem{
		{
			ID:         "action-1",
			Task:       "Prepare budget report for Q3 marketing",
			AssigneeID: "user-2",
			DueDate:    now.AddDate(0, 0, 5),
			Completed:  false,
			MeetingID:  "meeting-1",
			TopicID:    "topic-1-1",
			CreatedAt:  now.AddDate(0, 0, -2),
		},
		{
			ID:         "action-2",
			Task:       "Gather user feedback on current website",
			AssigneeID: "user-3",
			DueDate:    now.AddDate(0, 0, 10),
			Completed:  true,
			MeetingID:  "meeting-1",
			TopicID:    "topic-1-2",
			CreatedAt:  now.AddDate(0, 0, -2),
		},
		{
			ID:         "action-3",
			Task:       "Profile the slow database queries",
			AssigneeID: "user-5",
			DueDate:    now.AddDate(0, 0, 3),
			Completed:  false,
			MeetingID:  "meeting-2",
			TopicID:    "topic-2-1",
			CreatedAt:  now.AddDate(0, 0, -9),
		},
	}
}

func seedUser(id, username, email string) *entities.User {
	return &entities.User{
		ID:        id,
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func errMeetingNotFound(id string) error {
	return errors.ErrMeetingNotFound(id)
}

func errTopicNotFound(id string) error {
	return errors.ErrTopicNotFound(id)
}

func errActionItemNotFound(id string) error {
	return errors.ErrActionItemNotFound(id)
}
