package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"loginapp/internal/models"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, name, username, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`
	selectUserSQL = `SELECT id, name, username, password_hash, created_at, updated_at FROM users`

	selectUserByUsernameSQL = selectUserSQL + ` WHERE username = ?`
	selectUserByIDSQL       = selectUserSQL + ` WHERE id = ?`

	updatePasswordSQL = `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`
)

// Create inserts a new user, assigning a fresh id and timestamps.
// Username uniqueness is enforced by the storage index; a collision maps
// to models.ErrUsernameTaken so concurrent registers for the same name
// both fail the same way.
func (r *UserRepository) Create(ctx context.Context, name, username, passwordHash string) (*models.User, error) {
	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.Name, u.Username, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user %q: %w", username, err)
	}
	return u, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user id %q: %w", id, err)
	}
	return u, nil
}

// UpdatePassword replaces the stored hash and bumps updated_at. Reports
// affected rows; matching nothing is left to the caller to interpret.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx, updatePasswordSQL, passwordHash, time.Now().UTC(), id)
	if err != nil {
		return 0, fmt.Errorf("update password for user id %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for user id %q: %w", id, err)
	}
	return n, nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
