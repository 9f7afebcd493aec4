package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthProxy forwards auth requests to the legacy backend in remote mode.
// The backend owns the session: its Set-Cookie headers pass straight back
// to the client, and subsequent requests carry the cookie through the
// remote store.
type AuthProxy struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewAuthProxy creates a proxy against the backend base URL.
func NewAuthProxy(baseURL string, logger *zap.Logger) *AuthProxy {
	return &AuthProxy{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// Forward relays the request body, cookie and method to the backend path
// and mirrors the response including Set-Cookie headers.
func (p *AuthProxy) Forward(path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := c.Request()

		req, err := http.NewRequestWithContext(in.Context(), in.Method, p.baseURL+path, in.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, "backend unreachable")
		}
		req.Header.Set("Content-Type", "application/json")
		if cookie := in.Header.Get("Cookie"); cookie != "" {
			req.Header.Set("Cookie", cookie)
		}

		resp, err := p.client.Do(req)
		if err != nil {
			p.logger.Error("auth proxy request failed", zap.String("path", path), zap.Error(err))
			return echo.NewHTTPError(http.StatusBadGateway, "backend unreachable")
		}
		defer resp.Body.Close()

		for _, sc := range resp.Header.Values("Set-Cookie") {
			c.Response().Header().Add("Set-Cookie", sc)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, "backend unreachable")
		}
		return c.JSONBlob(resp.StatusCode, body)
	}
}
