package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loginapp/internal/logger"
	"loginapp/internal/models"
	"loginapp/internal/password"
	"loginapp/internal/repository"
	"loginapp/internal/token"
)

const minPasswordLen = 6

// Domain errors for auth flows.
var (
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = fmt.Errorf("password shorter than %d characters", minPasswordLen)
	// ErrInvalidCredentials is deliberately shared between "no such user"
	// and "wrong password" so responses cannot be used to enumerate
	// usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles user auth logic.
type AuthService struct {
	users  repository.Users
	hasher *password.Hasher
	tokens *token.Manager
	log    *logger.Logger
}

func NewAuthService(users repository.Users, hasher *password.Hasher, tokens *token.Manager, log *logger.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Register validates input, hashes the password and creates the user.
// Every check returns immediately; nothing runs past a failed validation.
func (s *AuthService) Register(ctx context.Context, name, username, plaintext string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", ErrInvalidUsername
	}
	if strings.TrimSpace(plaintext) == "" {
		return "", ErrInvalidPassword
	}
	if len(plaintext) < minPasswordLen {
		return "", ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, name, username, hash)
	if err != nil {
		if errors.Is(err, models.ErrUsernameTaken) {
			return "", err
		}
		return "", fmt.Errorf("create user %q: %w", username, err)
	}
	return u.ID, nil
}

// Login checks the credentials and issues a bearer token. An unknown
// username and a wrong password produce the identical error.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("look up user: %w", err)
	}
	if u == nil || !s.hasher.Verify(u.PasswordHash, plaintext) {
		return "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

// ChangePassword verifies the presented token and replaces the stored
// hash for its subject. The store is never touched on a bad token. The
// update is idempotent: a token whose subject no longer matches a row
// still reports success, matching zero rows is only logged.
func (s *AuthService) ChangePassword(ctx context.Context, rawToken, newPlaintext string) error {
	if strings.TrimSpace(newPlaintext) == "" {
		return ErrInvalidPassword
	}
	if len(newPlaintext) < minPasswordLen {
		return ErrPasswordTooShort
	}

	claims, err := s.tokens.Parse(rawToken)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPlaintext)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	n, err := s.users.UpdatePassword(ctx, claims.UserID, hash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n == 0 && s.log != nil {
		s.log.Infow("password update matched no user", "user_id", claims.UserID)
	}
	return nil
}

// ParseToken verifies a bearer token and returns its claims.
func (s *AuthService) ParseToken(raw string) (*token.Claims, error) {
	return s.tokens.Parse(raw)
}

// CurrentUser loads the record behind an authenticated id.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("look up user id %q: %w", id, err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
