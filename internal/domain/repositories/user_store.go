package repositories

import (
	"context"

	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
)

// UserDirectory is the read-only attendee directory consumed by the
// meeting features. Every store variant provides it.
type UserDirectory interface {
	// GetAttendees lists users projected to their attendee shape. Fails
	// soft: transport problems yield an empty list.
	GetAttendees(ctx context.Context) ([]*entities.Attendee, error)

	// SearchUsers finds users by username fragment; an empty query lists
	// up to 20 users.
	SearchUsers(ctx context.Context, query string) ([]*entities.User, error)
}

// UserStore is the account boundary used by session auth. Only the local
// store variants implement it; in remote mode sessions belong to the
// upstream backend and auth requests are proxied instead.
type UserStore interface {
	UserDirectory

	// FindByID retrieves one user; (nil, nil) when absent.
	FindByID(ctx context.Context, id string) (*entities.User, error)

	// FindByEmail retrieves one user by email; (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindByUsername retrieves one user by username; (nil, nil) when absent.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// CreateUser persists a new account.
	CreateUser(ctx context.Context, user *entities.User) error
}
