package auth

// UserResponse represents user information in responses
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SessionResponse represents the response after register or login
type SessionResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// MeResponse represents the current-user lookup; User is null when the
// session is absent or invalid
type MeResponse struct {
	User *UserResponse `json:"user"`
}
