package repository

import (
	"context"
	"database/sql"

	"loginapp/internal/models"
)

// Users is the credential store: one record per username, keyed by a
// store-assigned id.
type Users interface {
	// Create inserts a new user, assigning id and timestamps. Returns
	// models.ErrUsernameTaken when the username is already present.
	Create(ctx context.Context, name, username, passwordHash string) (*models.User, error)
	// GetByUsername returns (nil, nil) when no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetByID returns (nil, nil) when no such user exists.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// UpdatePassword replaces the stored hash for id and reports how many
	// rows matched. Zero rows is not an error.
	UpdatePassword(ctx context.Context, id, passwordHash string) (int64, error)
}

type Repository struct {
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{Users: NewUserRepository(db)}
}
