package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Gagana-kumar/quick-mom/errors"
	authdto "github.com/Gagana-kumar/quick-mom/internal/adapter/dto/auth"
	"github.com/Gagana-kumar/quick-mom/internal/adapter/dto/common"
	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/internal/usecase/auth"
	"github.com/Gagana-kumar/quick-mom/pkg/config"
)

// Auth handles local session authentication
type Auth struct {
	auth   auth.Service
	cfg    *config.SessionConfig
	logger *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService auth.Service, cfg *config.SessionConfig, logger *zap.Logger) *Auth {
	return &Auth{
		auth:   authService,
		cfg:    cfg,
		logger: logger,
	}
}

func toUserResponse(u *entities.User) *authdto.UserResponse {
	if u == nil {
		return nil
	}
	return &authdto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// Register creates an account and starts a session
// POST /api/auth/register
func (h *Auth) Register(c echo.Context) error {
	var req authdto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing required fields"))
	}

	user, token, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	setSessionCookie(c, h.cfg.CookieName, token, int(h.cfg.Expiry.Seconds()))
	return c.JSON(http.StatusCreated, authdto.SessionResponse{
		Message: "Registered successfully",
		User:    toUserResponse(user),
	})
}

// Login verifies credentials and starts a session
// POST /api/auth/login
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidCredentials())
	}

	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	setSessionCookie(c, h.cfg.CookieName, token, int(h.cfg.Expiry.Seconds()))
	return c.JSON(http.StatusOK, authdto.SessionResponse{
		Message: "Logged in successfully",
		User:    toUserResponse(user),
	})
}

// Logout ends the session by clearing the cookie
// POST /api/auth/logout
func (h *Auth) Logout(c echo.Context) error {
	clearSessionCookie(c, h.cfg.CookieName)
	return c.JSON(http.StatusOK, common.SuccessResponse{Message: "Logged out successfully"})
}

// Me returns the current account, or a null user when anonymous
// GET /api/auth/me
func (h *Auth) Me(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(h.cfg.CookieName); err == nil {
		token = cookie.Value
	}

	user, err := h.auth.CurrentUser(c.Request().Context(), token)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, authdto.MeResponse{User: toUserResponse(user)})
}
