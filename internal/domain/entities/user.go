package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Attendee is its read-side projection.
type User struct {
	ID           string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:varchar(80);unique;not null" json:"username"`
	Email        string    `gorm:"type:varchar(120);unique;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"default:now()" json:"-"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser constructs a user with a fresh id.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// Attendee is the meeting-facing view of a user.
type Attendee struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Email     string `json:"email,omitempty"`
}

// ToAttendee projects the user into its attendee shape. The avatar falls
// back to a deterministic generated image seeded by the username.
func (u *User) ToAttendee() *Attendee {
	name := u.Username
	if name == "" {
		name = "Unknown"
	}
	return &Attendee{
		ID:        u.ID,
		Name:      name,
		AvatarURL: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", u.Username),
		Email:     u.Email,
	}
}
