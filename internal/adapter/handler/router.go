package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Gagana-kumar/quick-mom/internal/infrastructure/http/middleware"
	"github.com/Gagana-kumar/quick-mom/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	session        *middleware.SessionMiddleware
	authHandler    *Auth      // local modes
	authProxy      *AuthProxy // remote mode
	userHandler    *User
	meetingHandler *Meeting
	aiController   *AIController
}

// NewRouter creates a new router with all handlers. Exactly one of
// authHandler and authProxy is non-nil, depending on the store mode.
func NewRouter(
	cfg *config.Config,
	session *middleware.SessionMiddleware,
	authHandler *Auth,
	authProxy *AuthProxy,
	userHandler *User,
	meetingHandler *Meeting,
	aiController *AIController,
) *Router {
	return &Router{
		cfg:            cfg,
		session:        session,
		authHandler:    authHandler,
		authProxy:      authProxy,
		userHandler:    userHandler,
		meetingHandler: meetingHandler,
		aiController:   aiController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", rt.session.Capture())

	rt.setupAuthRoutes(api)

	authed := api.Group("", rt.session.RequireUser())

	authed.GET("/users/search", rt.userHandler.Search)
	authed.GET("/attendees", rt.userHandler.Attendees)

	authed.GET("/meetings", rt.meetingHandler.List)
	authed.POST("/meetings", rt.meetingHandler.Create)
	authed.GET("/meetings/:id", rt.meetingHandler.Get)
	authed.POST("/meetings/:id/topics", rt.meetingHandler.AddTopic)
	authed.POST("/meetings/:id/topics/:topicId/points", rt.meetingHandler.AddPoint)
	authed.POST("/meetings/:id/action-items", rt.meetingHandler.AddActionItem)
	authed.GET("/meetings/:id/action-items", rt.meetingHandler.ListActionItems)
	authed.PUT("/action-items/:id", rt.meetingHandler.Update)
	authed.POST("/action-items/:id/toggle", rt.meetingHandler.Toggle)

	authed.POST("/meetings/:id/summary", rt.aiController.Summarize)
	authed.POST("/meetings/:id/extract-action-items", rt.aiController.ExtractActionItems)
	authed.POST("/meetings/:id/transcribe", rt.aiController.Transcribe)
}

// setupAuthRoutes wires local session auth, or the proxy in remote mode.
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	if rt.authHandler != nil {
		authGroup.POST("/register", rt.authHandler.Register)
		authGroup.POST("/login", rt.authHandler.Login)
		authGroup.POST("/logout", rt.authHandler.Logout)
		authGroup.GET("/me", rt.authHandler.Me)
		return
	}

	authGroup.POST("/register", rt.authProxy.Forward("/auth/register"))
	authGroup.POST("/login", rt.authProxy.Forward("/auth/login"))
	authGroup.POST("/logout", rt.authProxy.Forward("/auth/logout"))
	authGroup.GET("/me", rt.authProxy.Forward("/auth/me"))
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
		"store_mode":  string(rt.cfg.Store.Mode),
	})
}
