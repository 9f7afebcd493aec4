package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authdto "github.com/Gagana-kumar/quick-mom/internal/adapter/dto/auth"
	"github.com/Gagana-kumar/quick-mom/internal/adapter/repository"
	"github.com/Gagana-kumar/quick-mom/internal/usecase/auth"
	"github.com/Gagana-kumar/quick-mom/pkg/config"
	"github.com/Gagana-kumar/quick-mom/pkg/jwt"
	"github.com/Gagana-kumar/quick-mom/pkg/validator"
)

func newAuthHandler() (*Auth, *echo.Echo) {
	store := repository.NewMemoryStore()
	tokens := jwt.NewManager("test-secret", time.Hour)
	svc := auth.NewService(store, tokens, zap.NewNop())
	cfg := &config.SessionConfig{Secret: "test-secret", Expiry: time.Hour, CookieName: "session"}

	e := echo.New()
	e.Validator = validator.New()
	return NewAuth(svc, cfg, zap.NewNop()), e
}

func sessionCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegister_SetsSessionCookie(t *testing.T) {
	h, e := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"frank","email":"frank@example.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var res authdto.SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if res.Message != "Registered successfully" || res.User == nil || res.User.Username != "frank" {
		t.Fatalf("unexpected response %+v", res)
	}

	cookie := sessionCookie(rec, "session")
	if cookie == nil || cookie.Value == "" {
		t.Fatal("session cookie not set")
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HTTP-only")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	h, e := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"frank"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h.Register(e.NewContext(req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginAndMe_RoundTrip(t *testing.T) {
	h, e := newAuthHandler()

	// Register first.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"frank","email":"frank@example.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h.Register(e.NewContext(req, rec))

	// Login.
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"frank@example.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cookie := sessionCookie(rec, "session")
	if cookie == nil {
		t.Fatal("login did not set the session cookie")
	}

	// Me with the session cookie.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	if err := h.Me(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	var me authdto.MeResponse
	json.Unmarshal(rec.Body.Bytes(), &me)
	if me.User == nil || me.User.Email != "frank@example.com" {
		t.Fatalf("session did not resolve, got %+v", me)
	}
}

func TestMe_AnonymousReturnsNullUser(t *testing.T) {
	h, e := newAuthHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	if err := h.Me(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Me failed: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous me must be 200, got %d", rec.Code)
	}
	var me authdto.MeResponse
	json.Unmarshal(rec.Body.Bytes(), &me)
	if me.User != nil {
		t.Fatalf("expected null user, got %+v", me.User)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	h, e := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h.Login(e.NewContext(req, rec))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h, e := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	cookie := sessionCookie(rec, "session")
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("expected an expired session cookie, got %+v", cookie)
	}
}
