package auth

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gagana-kumar/quick-mom/errors"
	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
	"github.com/Gagana-kumar/quick-mom/internal/domain/repositories"
	"github.com/Gagana-kumar/quick-mom/pkg/jwt"
)

// Service owns account registration and session issuance. Sessions are
// signed JWTs carried in an HTTP-only cookie by the handler.
type Service interface {
	// Register creates an account and returns it with a session token.
	Register(ctx context.Context, username, email, password string) (*entities.User, string, error)

	// Login verifies credentials and returns the user with a session token.
	Login(ctx context.Context, email, password string) (*entities.User, string, error)

	// CurrentUser resolves a session token to its account. Degrades to
	// (nil, nil) on any failure: an anonymous caller is a normal state.
	CurrentUser(ctx context.Context, token string) (*entities.User, error)
}

type service struct {
	users  repositories.UserStore
	tokens *jwt.Manager
	logger *zap.Logger
}

// NewService constructs the auth service.
func NewService(users repositories.UserStore, tokens *jwt.Manager, logger *zap.Logger) Service {
	return &service{users: users, tokens: tokens, logger: logger}
}

func (s *service) Register(ctx context.Context, username, email, password string) (*entities.User, string, error) {
	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", errors.ErrUserAlreadyExists(email)
	}
	if existing, err := s.users.FindByUsername(ctx, username); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", errors.ErrUserAlreadyExists(email).WithDetail("username", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.ErrInternal(err)
	}

	user := entities.NewUser(username, email, string(hash))
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateSessionToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, "", errors.ErrInternal(err)
	}
	return user, token, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errors.ErrInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials()
	}

	token, err := s.tokens.GenerateSessionToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, "", errors.ErrInternal(err)
	}
	return user, token, nil
}

func (s *service) CurrentUser(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := s.tokens.ValidateSessionToken(token)
	if err != nil {
		return nil, nil
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		s.logger.Warn("failed to resolve session user", zap.Error(err))
		return nil, nil
	}
	return user, nil
}
