package service

import (
	"context"

	"loginapp/internal/logger"
	"loginapp/internal/models"
	"loginapp/internal/password"
	"loginapp/internal/repository"
	"loginapp/internal/token"
)

// Authorization covers the three credential operations plus the token
// parsing the HTTP middleware needs.
type Authorization interface {
	Register(ctx context.Context, name, username, plaintext string) (string, error)
	Login(ctx context.Context, username, plaintext string) (string, error)
	ChangePassword(ctx context.Context, rawToken, newPlaintext string) error
	ParseToken(raw string) (*token.Claims, error)
	CurrentUser(ctx context.Context, id string) (*models.User, error)
}

type Service struct {
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, hasher *password.Hasher, tokens *token.Manager, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, hasher, tokens, log),
	}
}
