package jwt

import (
	"testing"
	"time"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.GenerateSessionToken("user-1", "frank", "frank@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := m.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "frank" || claims.Email != "frank@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestSessionToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.GenerateSessionToken("user-1", "frank", "frank@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := m.ValidateSessionToken(token); err == nil {
		t.Fatal("expected an expired token to fail validation")
	}
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).GenerateSessionToken("user-1", "frank", "frank@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).ValidateSessionToken(token); err == nil {
		t.Fatal("expected a cross-secret token to fail validation")
	}

	if _, err := NewManager("secret-a", time.Hour).ValidateSessionToken("not-a-token"); err == nil {
		t.Fatal("expected garbage to fail validation")
	}
}
