package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Gagana-kumar/quick-mom/errors"
	meetingdto "github.com/Gagana-kumar/quick-mom/internal/adapter/dto/meeting"
	"github.com/Gagana-kumar/quick-mom/internal/infrastructure/cache"
	"github.com/Gagana-kumar/quick-mom/internal/usecase/minutes"
)

const viewCacheTTL = time.Minute

// Meeting handles the minutes HTTP surface: meeting reads, mutation
// submissions and the action-item toggle.
type Meeting struct {
	minutes minutes.Service
	views   cache.ViewCache
	logger  *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(minutesService minutes.Service, views cache.ViewCache, logger *zap.Logger) *Meeting {
	return &Meeting{
		minutes: minutesService,
		views:   views,
		logger:  logger,
	}
}

// cachedJSON serves path from the view cache, falling back to load and
// re-populating on a miss.
func (h *Meeting) cachedJSON(c echo.Context, path string, load func() (interface{}, error)) error {
	ctx := c.Request().Context()

	if payload, ok := h.views.Get(ctx, path); ok {
		return c.JSONBlob(http.StatusOK, []byte(payload))
	}

	data, err := load()
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	body, err := json.Marshal(data)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	h.views.Set(ctx, path, string(body), viewCacheTTL)
	return c.JSONBlob(http.StatusOK, body)
}

// List returns every meeting visible to the caller
// GET /api/meetings
func (h *Meeting) List(c echo.Context) error {
	return h.cachedJSON(c, "/", func() (interface{}, error) {
		return h.minutes.ListMeetings(c.Request().Context())
	})
}

// Get returns one meeting with its topics, points and action items
// GET /api/meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	id := c.Param("id")
	return h.cachedJSON(c, "/meetings/"+id, func() (interface{}, error) {
		m, err := h.minutes.GetMeeting(c.Request().Context(), id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, errors.ErrMeetingNotFound(id)
		}
		return m, nil
	})
}

// Create validates and persists a new meeting
// POST /api/meetings
func (h *Meeting) Create(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	result := h.minutes.CreateMeeting(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, result)
}

// AddTopic validates and appends an agenda topic
// POST /api/meetings/:id/topics
func (h *Meeting) AddTopic(c echo.Context) error {
	var req meetingdto.AddTopicRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	req.MeetingID = c.Param("id")
	result := h.minutes.AddTopic(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, result)
}

// AddPoint validates and appends a discussion point
// POST /api/meetings/:id/topics/:topicId/points
func (h *Meeting) AddPoint(c echo.Context) error {
	var req meetingdto.AddDiscussionPointRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	req.MeetingID = c.Param("id")
	req.TopicID = c.Param("topicId")
	result := h.minutes.AddDiscussionPoint(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, result)
}

// AddActionItem validates and appends an action item
// POST /api/meetings/:id/action-items
func (h *Meeting) AddActionItem(c echo.Context) error {
	var req meetingdto.AddActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	req.MeetingID = c.Param("id")
	result := h.minutes.AddActionItem(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, result)
}

// ListActionItems returns a meeting's action items
// GET /api/meetings/:id/action-items
func (h *Meeting) ListActionItems(c echo.Context) error {
	items, err := h.minutes.ListActionItems(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Update sets an action item's completed state to an explicit value,
// matching the legacy backend's PUT shape. It only touches the store when
// the requested state differs from the current one.
// PUT /api/action-items/:id
func (h *Meeting) Update(c echo.Context) error {
	var req struct {
		MeetingID string `json:"meetingId"`
		Completed *bool  `json:"completed"`
	}
	if err := c.Bind(&req); err != nil || req.MeetingID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	itemID := c.Param("id")
	items, err := h.minutes.ListActionItems(c.Request().Context(), req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	for _, item := range items {
		if item.ID != itemID {
			continue
		}
		if req.Completed != nil && *req.Completed != item.Completed {
			h.minutes.ToggleActionItem(c.Request().Context(), req.MeetingID, itemID)
			item.Completed = *req.Completed
		}
		return c.JSON(http.StatusOK, item)
	}
	return HandleError(h.logger, c, errors.ErrActionItemNotFound(itemID))
}

// Toggle flips an action item's completed state. Failures are swallowed
// by the service; the client re-reads state from the store.
// POST /api/action-items/:id/toggle
func (h *Meeting) Toggle(c echo.Context) error {
	var req struct {
		MeetingID string `json:"meetingId"`
	}
	if err := c.Bind(&req); err != nil || req.MeetingID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	h.minutes.ToggleActionItem(c.Request().Context(), req.MeetingID, c.Param("id"))
	return c.JSON(http.StatusOK, meetingdto.ActionResult{Message: "success"})
}
