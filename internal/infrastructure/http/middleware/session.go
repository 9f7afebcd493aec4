package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/internal/usecase/auth"
	"github.com/Gagana-kumar/quick-mom/pkg/requestctx"
)

// UserContextKey is the echo context key for the authenticated user
const UserContextKey = "user"

// SessionMiddleware resolves the session cookie. In local modes it
// validates the token and loads the account; in remote mode auth is nil
// and the middleware only captures the raw Cookie header so the store can
// forward it to the backend that owns the session.
type SessionMiddleware struct {
	cookieName string
	auth       auth.Service
	logger     *zap.Logger
}

// NewSessionMiddleware creates the middleware. auth may be nil (remote
// mode).
func NewSessionMiddleware(cookieName string, authService auth.Service, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		cookieName: cookieName,
		auth:       authService,
		logger:     logger,
	}
}

// Capture stores the raw Cookie header in the request context and, when a
// local auth service exists, resolves the session to a user. It never
// rejects: anonymous requests pass through for RequireUser to judge.
func (m *SessionMiddleware) Capture() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()

			if raw := req.Header.Get("Cookie"); raw != "" {
				ctx = requestctx.WithSessionCookie(ctx, raw)
			}

			if m.auth != nil {
				token := ""
				if cookie, err := c.Cookie(m.cookieName); err == nil {
					token = cookie.Value
				}
				if user, err := m.auth.CurrentUser(ctx, token); err == nil && user != nil {
					ctx = requestctx.WithUserID(ctx, user.ID)
					c.Set(UserContextKey, user)
				}
			}

			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// RequireUser rejects unauthenticated requests in local modes. In remote
// mode the backend owns the session, so requests pass through with their
// forwarded cookie.
func (m *SessionMiddleware) RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.auth == nil {
				return next(c)
			}
			if _, ok := UserFromContext(c); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			return next(c)
		}
	}
}

// UserFromContext retrieves the authenticated user set by Capture.
func UserFromContext(c echo.Context) (*entities.User, bool) {
	user, ok := c.Get(UserContextKey).(*entities.User)
	return user, ok && user != nil
}
