package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/pkg/requestctx"
)

func seededStore() *MemoryStore {
	s := NewMemoryStore()
	s.Seed()
	return s
}

func TestSeed_Fixture(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	meetings, err := s.GetMeetings(ctx)
	if err != nil {
		t.Fatalf("GetMeetings failed: %v", err)
	}
	if len(meetings) != 2 {
		t.Fatalf("expected 2 seeded meetings, got %d", len(meetings))
	}

	kickoff, err := s.GetMeetingByID(ctx, "meeting-1")
	if err != nil {
		t.Fatalf("GetMeetingByID failed: %v", err)
	}
	if kickoff == nil {
		t.Fatal("meeting-1 missing from seed")
	}
	if kickoff.Title != "Q3 Project Kickoff" {
		t.Fatalf("unexpected title %q", kickoff.Title)
	}
	if len(kickoff.Topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(kickoff.Topics))
	}
	if got := len(kickoff.Topics[0].DiscussionPoints); got != 2 {
		t.Fatalf("expected 2 discussion points on first topic, got %d", got)
	}

	attendees, err := s.GetAttendees(ctx)
	if err != nil {
		t.Fatalf("GetAttendees failed: %v", err)
	}
	if len(attendees) != 5 {
		t.Fatalf("expected 5 seeded users, got %d", len(attendees))
	}

	items, err := s.GetActionItemsForMeeting(ctx, "meeting-1")
	if err != nil {
		t.Fatalf("GetActionItemsForMeeting failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 action items for meeting-1, got %d", len(items))
	}
}

func TestGetMeetings_ScopedToCaller(t *testing.T) {
	s := seededStore()

	// user-2 only attends meeting-1; meeting-2 is invisible to them.
	ctx := requestctx.WithUserID(context.Background(), "user-2")
	meetings, err := s.GetMeetings(ctx)
	if err != nil {
		t.Fatalf("GetMeetings failed: %v", err)
	}
	if len(meetings) != 1 || meetings[0].ID != "meeting-1" {
		t.Fatalf("expected only meeting-1 for user-2, got %d meetings", len(meetings))
	}

	m, err := s.GetMeetingByID(ctx, "meeting-2")
	if err != nil {
		t.Fatalf("GetMeetingByID failed: %v", err)
	}
	if m != nil {
		t.Fatal("meeting-2 must be invisible to user-2")
	}

	// user-1 owns meeting-1 and attends meeting-2.
	ctx = requestctx.WithUserID(context.Background(), "user-1")
	meetings, _ = s.GetMeetings(ctx)
	if len(meetings) != 2 {
		t.Fatalf("expected both meetings for user-1, got %d", len(meetings))
	}
}

func TestGetMeetingByID_AbsentIsNilNil(t *testing.T) {
	s := seededStore()

	m, err := s.GetMeetingByID(context.Background(), "no-such-meeting")
	if err != nil {
		t.Fatalf("expected nil error for absent meeting, got %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil meeting, got %+v", m)
	}
}

func TestCreateMeeting_VisibleToReads(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	m := entities.NewMeeting("Planning", "Sprint planning for next iteration.", time.Now(), "user-1", []string{"user-1", "user-2"})
	if err := s.CreateMeeting(ctx, m); err != nil {
		t.Fatalf("CreateMeeting failed: %v", err)
	}
	if m.ID == "" {
		t.Fatal("expected a generated meeting id")
	}

	got, err := s.GetMeetingByID(ctx, m.ID)
	if err != nil || got == nil {
		t.Fatalf("created meeting not readable: %v %v", got, err)
	}
	if got.Topics == nil {
		t.Fatal("expected topics initialized to an empty slice")
	}
}

func TestAddTopicAndPoint_MutateInPlace(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	topic := entities.NewTopic("meeting-2", "Hiring")
	if err := s.AddTopic(ctx, "meeting-2", topic); err != nil {
		t.Fatalf("AddTopic failed: %v", err)
	}

	point := entities.NewDiscussionPoint(topic.ID, "Open two backend positions.")
	if err := s.AddDiscussionPoint(ctx, "meeting-2", topic.ID, point); err != nil {
		t.Fatalf("AddDiscussionPoint failed: %v", err)
	}

	m, _ := s.GetMeetingByID(ctx, "meeting-2")
	if len(m.Topics) != 3 {
		t.Fatalf("expected 3 topics after add, got %d", len(m.Topics))
	}
	added := m.FindTopic(topic.ID)
	if added == nil || len(added.DiscussionPoints) != 1 {
		t.Fatalf("discussion point not attached: %+v", added)
	}
}

func TestAddTopic_UnknownMeeting(t *testing.T) {
	s := seededStore()

	err := s.AddTopic(context.Background(), "missing", entities.NewTopic("missing", "T"))
	if err == nil {
		t.Fatal("expected error for unknown meeting")
	}
}

func TestToggleActionItemComplete_FlipsAndReturnsNewState(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	completed, err := s.ToggleActionItemComplete(ctx, "meeting-1", "action-1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !completed {
		t.Fatal("expected first toggle to complete the item")
	}

	completed, err = s.ToggleActionItemComplete(ctx, "meeting-1", "action-1")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if completed {
		t.Fatal("expected second toggle to reopen the item")
	}
}

func TestToggleActionItemComplete_Concurrent(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	// An even number of flips must land back on the seeded state.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ToggleActionItemComplete(ctx, "meeting-1", "action-1"); err != nil {
				t.Errorf("toggle failed: %v", err)
			}
		}()
	}
	wg.Wait()

	items, _ := s.GetActionItemsForMeeting(ctx, "meeting-1")
	for _, item := range items {
		if item.ID == "action-1" && item.Completed {
			t.Fatal("expected action-1 back to incomplete after an even number of toggles")
		}
	}
}

func TestSearchUsers_Limits(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	all, err := s.SearchUsers(ctx, "")
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("empty query should list the directory, got %d", len(all))
	}

	matched, err := s.SearchUsers(ctx, "aLiCe")
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if len(matched) != 1 || matched[0].Username != "Alice Johnson" {
		t.Fatalf("case-insensitive match failed: %+v", matched)
	}

	none, err := s.SearchUsers(ctx, "zzz")
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestFindUser_AbsentIsNilNil(t *testing.T) {
	s := seededStore()
	ctx := context.Background()

	u, err := s.FindByEmail(ctx, "nobody@example.com")
	if err != nil || u != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", u, err)
	}
	u, err = s.FindByUsername(ctx, "Nobody")
	if err != nil || u != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", u, err)
	}
}
