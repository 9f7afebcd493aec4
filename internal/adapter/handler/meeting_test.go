package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Gagana-kumar/quick-mom/internal/adapter/dto/common"
	meetingdto "github.com/Gagana-kumar/quick-mom/internal/adapter/dto/meeting"
	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/internal/adapter/repository"
	"github.com/Gagana-kumar/quick-mom/internal/infrastructure/cache"
	"github.com/Gagana-kumar/quick-mom/internal/usecase/minutes"
	"github.com/Gagana-kumar/quick-mom/pkg/validator"
)

func seedExtraMeeting() *entities.Meeting {
	return entities.NewMeeting("Extra", "Added behind the cache's back.", time.Now(), "user-1", nil)
}

func newMeetingHandler() (*Meeting, *repository.MemoryStore, *echo.Echo) {
	store := repository.NewMemoryStore()
	store.Seed()
	views := cache.NewMemoryCache()
	svc := minutes.NewService(store, store, views, validator.New(), false, zap.NewNop())

	e := echo.New()
	e.Validator = validator.New()
	return NewMeeting(svc, views, zap.NewNop()), store, e
}

func doJSON(e *echo.Echo, method, target, body string, paramNames, paramValues []string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramNames...)
	c.SetParamValues(paramValues...)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestMeetingList_ServesAndCaches(t *testing.T) {
	h, store, e := newMeetingHandler()

	rec := doJSON(e, http.MethodGet, "/api/meetings", "", nil, nil, h.List)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	var meetings []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &meetings); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(meetings) != 2 {
		t.Fatalf("expected 2 meetings, got %d", len(meetings))
	}

	// A second read is served from the dashboard view cache: a meeting
	// added behind the cache's back stays invisible.
	store.CreateMeeting(context.Background(), seedExtraMeeting())
	rec = doJSON(e, http.MethodGet, "/api/meetings", "", nil, nil, h.List)
	json.Unmarshal(rec.Body.Bytes(), &meetings)
	if len(meetings) != 2 {
		t.Fatalf("expected cached view with 2 meetings, got %d", len(meetings))
	}
}

func TestMeetingList_RefreshesAfterTopicAdd(t *testing.T) {
	h, _, e := newMeetingHandler()

	// Prime the dashboard view cache.
	rec := doJSON(e, http.MethodGet, "/api/meetings", "", nil, nil, h.List)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	// Adding a topic through the handler invalidates the dashboard view,
	// so the next list read sees the new topic.
	body := `{"title":"Brand New Topic"}`
	rec = doJSON(e, http.MethodPost, "/api/meetings/meeting-1/topics", body, []string{"id"}, []string{"meeting-1"}, h.AddTopic)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodGet, "/api/meetings", "", nil, nil, h.List)
	var meetings []struct {
		ID     string `json:"id"`
		Topics []struct {
			Title string `json:"title"`
		} `json:"topics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &meetings); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	found := false
	for _, m := range meetings {
		if m.ID != "meeting-1" {
			continue
		}
		for _, topic := range m.Topics {
			if topic.Title == "Brand New Topic" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("list still serves the stale view: new topic missing\n%s", rec.Body.String())
	}
}

func TestMeetingGet_ServesAndCaches(t *testing.T) {
	h, store, e := newMeetingHandler()

	rec := doJSON(e, http.MethodGet, "/api/meetings/meeting-1", "", []string{"id"}, []string{"meeting-1"}, h.Get)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	var before struct {
		Topics []json.RawMessage `json:"topics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &before); err != nil {
		t.Fatalf("invalid body: %v", err)
	}

	// A second read is served from the detail view cache: a topic added
	// behind the cache's back stays invisible until an invalidation.
	store.AddTopic(context.Background(), "meeting-1", entities.NewTopic("meeting-1", "Backdoor"))
	rec = doJSON(e, http.MethodGet, "/api/meetings/meeting-1", "", []string{"id"}, []string{"meeting-1"}, h.Get)
	var after struct {
		Topics []json.RawMessage `json:"topics"`
	}
	json.Unmarshal(rec.Body.Bytes(), &after)
	if len(after.Topics) != len(before.Topics) {
		t.Fatalf("expected cached detail view with %d topics, got %d", len(before.Topics), len(after.Topics))
	}
}

func TestMeetingGet_UnknownIs404(t *testing.T) {
	h, _, e := newMeetingHandler()

	rec := doJSON(e, http.MethodGet, "/api/meetings/missing", "", []string{"id"}, []string{"missing"}, h.Get)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	var body common.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body.Error == "" || body.Code != "NOT_FOUND" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestMeetingCreate_ValidationFailureIs200(t *testing.T) {
	h, _, e := newMeetingHandler()

	rec := doJSON(e, http.MethodPost, "/api/meetings", `{"title":"ab","description":"short","date":"2026-09-15"}`, nil, nil, h.Create)
	if rec.Code != http.StatusOK {
		t.Fatalf("validation failures are normal results, got %d", rec.Code)
	}

	var result meetingdto.ActionResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if result.Message != "Failed to create meeting." {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if len(result.Errors["title"]) == 0 || len(result.Errors["description"]) == 0 {
		t.Fatalf("expected field errors, got %v", result.Errors)
	}
}

func TestMeetingCreate_Success(t *testing.T) {
	h, store, e := newMeetingHandler()

	body := `{"title":"Retro","description":"Retrospective for sprint 12.","date":"2026-09-15","attendeeIds":["user-1"]}`
	rec := doJSON(e, http.MethodPost, "/api/meetings", body, nil, nil, h.Create)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var result meetingdto.ActionResult
	json.Unmarshal(rec.Body.Bytes(), &result)
	if result.Message != "success" || result.MeetingID == "" {
		t.Fatalf("unexpected result %+v", result)
	}
	if m, _ := store.GetMeetingByID(context.Background(), result.MeetingID); m == nil {
		t.Fatal("meeting not persisted")
	}
}

func TestAddTopic_PathParamWins(t *testing.T) {
	h, store, e := newMeetingHandler()

	// The body carries a different meeting id; the path param is canonical.
	body := `{"meetingId":"meeting-2","title":"Budget"}`
	rec := doJSON(e, http.MethodPost, "/api/meetings/meeting-1/topics", body, []string{"id"}, []string{"meeting-1"}, h.AddTopic)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	m, _ := store.GetMeetingByID(context.Background(), "meeting-1")
	if len(m.Topics) != 3 {
		t.Fatalf("topic not added to path meeting, have %d", len(m.Topics))
	}
}

func TestToggle_RequiresMeetingID(t *testing.T) {
	h, _, e := newMeetingHandler()

	rec := doJSON(e, http.MethodPost, "/api/action-items/action-1/toggle", `{}`, []string{"id"}, []string{"action-1"}, h.Toggle)
	if rec.Code == http.StatusOK {
		t.Fatalf("expected a client error without meetingId, got %d", rec.Code)
	}
}

func TestToggle_Success(t *testing.T) {
	h, store, e := newMeetingHandler()

	rec := doJSON(e, http.MethodPost, "/api/action-items/action-1/toggle", `{"meetingId":"meeting-1"}`, []string{"id"}, []string{"action-1"}, h.Toggle)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	items, _ := store.GetActionItemsForMeeting(context.Background(), "meeting-1")
	for _, item := range items {
		if item.ID == "action-1" && !item.Completed {
			t.Fatal("toggle did not flip the item")
		}
	}
}

func TestUpdate_SetsExplicitState(t *testing.T) {
	h, store, e := newMeetingHandler()

	// action-2 is seeded completed; setting it completed again is a no-op.
	rec := doJSON(e, http.MethodPut, "/api/action-items/action-2", `{"meetingId":"meeting-1","completed":true}`, []string{"id"}, []string{"action-2"}, h.Update)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	items, _ := store.GetActionItemsForMeeting(context.Background(), "meeting-1")
	for _, item := range items {
		if item.ID == "action-2" && !item.Completed {
			t.Fatal("no-op update must not flip the item")
		}
	}

	// Setting it incomplete flips it.
	rec = doJSON(e, http.MethodPut, "/api/action-items/action-2", `{"meetingId":"meeting-1","completed":false}`, []string{"id"}, []string{"action-2"}, h.Update)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	items, _ = store.GetActionItemsForMeeting(context.Background(), "meeting-1")
	for _, item := range items {
		if item.ID == "action-2" && item.Completed {
			t.Fatal("update did not flip the item")
		}
	}
}

func TestUpdate_UnknownItemIs404(t *testing.T) {
	h, _, e := newMeetingHandler()

	rec := doJSON(e, http.MethodPut, "/api/action-items/missing", `{"meetingId":"meeting-1","completed":true}`, []string{"id"}, []string{"missing"}, h.Update)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}
