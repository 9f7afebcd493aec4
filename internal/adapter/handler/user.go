package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authdto "github.com/Gagana-kumar/quick-mom/internal/adapter/dto/auth"
	"github.com/Gagana-kumar/quick-mom/internal/domain/repositories"
)

// User handles the user directory endpoints the attendee picker relies on.
type User struct {
	directory repositories.UserDirectory
	logger    *zap.Logger
}

// NewUser creates a new user handler
func NewUser(directory repositories.UserDirectory, logger *zap.Logger) *User {
	return &User{directory: directory, logger: logger}
}

// Search lists users matching the username query; an empty query lists up
// to 20 users
// GET /api/users/search?q=
func (h *User) Search(c echo.Context) error {
	users, err := h.directory.SearchUsers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out := make([]*authdto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Attendees lists users projected to the attendee shape used by meeting
// forms
// GET /api/attendees
func (h *User) Attendees(c echo.Context) error {
	attendees, err := h.directory.GetAttendees(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, attendees)
}
