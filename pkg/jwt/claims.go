package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session identity inside the signed token
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
