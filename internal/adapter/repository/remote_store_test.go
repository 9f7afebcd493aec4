package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/pkg/requestctx"
)

func remoteStore(t *testing.T, handler http.Handler) (*RemoteStore, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewRemoteStore(ts.URL+"/api", zap.NewNop()), ts
}

func TestRemoteGetMeetings_NormalizesNumericIDs(t *testing.T) {
	store, _ := remoteStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/meetings" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{
			"id": 7,
			"title": "Sprint Review",
			"description": "Review of sprint 12.",
			"date": "2026-08-20T10:00:00",
			"owner_id": 3,
			"topics": [{"id": 11, "title": "Demo", "discussionPoints": [{"id": 21, "text": "Show the new dashboard."}]}],
			"attendees": [{"id": 3, "username": "alice", "email": "alice@example.com"}],
			"actionItems": [{"id": 31, "task": "Ship it", "assigneeId": 3, "dueDate": "2026-08-25T00:00:00", "completed": false}]
		}]`))
	}))

	meetings, err := store.GetMeetings(context.Background())
	if err != nil {
		t.Fatalf("GetMeetings failed: %v", err)
	}
	if len(meetings) != 1 {
		t.Fatalf("expected 1 meeting, got %d", len(meetings))
	}

	m := meetings[0]
	if m.ID != "7" || m.OwnerID != "3" {
		t.Fatalf("ids not normalized to strings: id=%q owner=%q", m.ID, m.OwnerID)
	}
	if len(m.Topics) != 1 || m.Topics[0].ID != "11" {
		t.Fatalf("topic ids not normalized: %+v", m.Topics)
	}
	if len(m.Topics[0].DiscussionPoints) != 1 || m.Topics[0].DiscussionPoints[0].Text != "Show the new dashboard." {
		t.Fatalf("discussion points not mapped: %+v", m.Topics[0].DiscussionPoints)
	}
	if len(m.AttendeeIDs) != 1 || m.AttendeeIDs[0] != "3" {
		t.Fatalf("attendees not projected to ids: %+v", m.AttendeeIDs)
	}
	if len(m.ActionItems) != 1 || m.ActionItems[0].MeetingID != "7" {
		t.Fatalf("action items not attached to meeting: %+v", m.ActionItems)
	}
	if m.Date.IsZero() {
		t.Fatal("naive isoformat date should parse")
	}
}

func TestRemoteReads_FailSoft(t *testing.T) {
	store, ts := remoteStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	ctx := context.Background()

	meetings, err := store.GetMeetings(ctx)
	if err != nil {
		t.Fatalf("list read must not error: %v", err)
	}
	if len(meetings) != 0 {
		t.Fatalf("expected empty list, got %d", len(meetings))
	}

	m, err := store.GetMeetingByID(ctx, "1")
	if err != nil || m != nil {
		t.Fatalf("failed detail read must look absent, got (%+v, %v)", m, err)
	}

	items, err := store.GetActionItemsForMeeting(ctx, "1")
	if err != nil || len(items) != 0 {
		t.Fatalf("failed items read must be empty, got (%v, %v)", items, err)
	}

	// The same holds when the backend is down entirely.
	ts.Close()
	meetings, err = store.GetMeetings(ctx)
	if err != nil || len(meetings) != 0 {
		t.Fatalf("dead backend must read as empty, got (%v, %v)", meetings, err)
	}
}

func TestRemoteWrites_SurfaceBackendError(t *testing.T) {
	store, _ := remoteStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "Access denied"})
	}))

	err := store.AddTopic(context.Background(), "1", entities.NewTopic("1", "Budget"))
	if err == nil {
		t.Fatal("expected write error to surface")
	}
}

func TestRemoteDo_ForwardsSessionCookie(t *testing.T) {
	var gotCookie string
	store, _ := remoteStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`[]`))
	}))

	ctx := requestctx.WithSessionCookie(context.Background(), "session=abc123")
	if _, err := store.GetMeetings(ctx); err != nil {
		t.Fatalf("GetMeetings failed: %v", err)
	}
	if gotCookie != "session=abc123" {
		t.Fatalf("session cookie not forwarded, got %q", gotCookie)
	}
}

func TestRemoteCreateMeeting_AdoptsBackendID(t *testing.T) {
	store, _ := remoteStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/meetings" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["title"] != "Planning" {
			t.Fatalf("unexpected title %v", payload["title"])
		}
		if _, ok := payload["attendeeIds"]; !ok {
			t.Fatal("attendeeIds missing from payload")
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42, "owner_id": 3, "title": "Planning"}`))
	}))

	m := entities.NewMeeting("Planning", "Upcoming sprint planning.", time.Now(), "", []string{"3"})
	if err := store.CreateMeeting(context.Background(), m); err != nil {
		t.Fatalf("CreateMeeting failed: %v", err)
	}
	if m.ID != "42" || m.OwnerID != "3" {
		t.Fatalf("backend ids not adopted: id=%q owner=%q", m.ID, m.OwnerID)
	}
}

func TestRemoteAddActionItem_GeneralSentinel(t *testing.T) {
	var gotTopicID interface{}
	store, _ := remoteStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)
		gotTopicID = payload["topicId"]
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 9, "task": "Do it", "completed": false}`))
	}))

	item := entities.NewActionItem("1", "", "Do it", "3", time.Now())
	if err := store.AddActionItem(context.Background(), item); err != nil {
		t.Fatalf("AddActionItem failed: %v", err)
	}
	if gotTopicID != "general" {
		t.Fatalf("empty topic must be sent as the general sentinel, got %v", gotTopicID)
	}
	if item.ID != "9" {
		t.Fatalf("backend id not adopted: %q", item.ID)
	}
}

func TestRemoteToggle_ReadsThenWritesNegation(t *testing.T) {
	var putBody map[string]bool
	store, _ := remoteStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`{
				"id": 1, "title": "M", "topics": [], "attendees": [],
				"actionItems": [{"id": 31, "task": "T", "completed": true}]
			}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/action-items/31":
			json.NewDecoder(r.Body).Decode(&putBody)
			json.NewEncoder(w).Encode(map[string]interface{}{"id": 31, "task": "T", "completed": putBody["completed"]})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	completed, err := store.ToggleActionItemComplete(context.Background(), "1", "31")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if completed {
		t.Fatal("toggling a completed item must reopen it")
	}
	if got, ok := putBody["completed"]; !ok || got {
		t.Fatalf("expected PUT body {completed: false}, got %v", putBody)
	}
}

func TestRemoteSetters_AreNoOps(t *testing.T) {
	store, _ := remoteStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no request expected, got %s %s", r.Method, r.URL.Path)
	}))
	ctx := context.Background()

	if err := store.SetSummary(ctx, "1", "s"); err != nil {
		t.Fatalf("SetSummary: %v", err)
	}
	if err := store.SetTranscription(ctx, "1", "t"); err != nil {
		t.Fatalf("SetTranscription: %v", err)
	}
	if err := store.SetRecordingURL(ctx, "1", "u"); err != nil {
		t.Fatalf("SetRecordingURL: %v", err)
	}
}

func TestRemoteSearchUsers(t *testing.T) {
	store, _ := remoteStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/search" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("q"); q != "ali" {
			t.Fatalf("unexpected query %q", q)
		}
		w.Write([]byte(`[{"id": 3, "username": "alice", "email": "alice@example.com"}]`))
	}))

	users, err := store.SearchUsers(context.Background(), "ali")
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].ID != "3" || users[0].Username != "alice" {
		t.Fatalf("unexpected users: %+v", users)
	}
}
