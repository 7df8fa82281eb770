package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tradevault/journal-backend/internal/apperrors"
	"github.com/tradevault/journal-backend/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// InsertUser persists a new user account.
// Returns apperrors.ErrUsernameTaken when the username is already in use.
func (r *UserRepository) InsertUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO user (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		FormatTime(user.CreatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves a user by username.
// Returns apperrors.ErrUserNotFound when no such user exists.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getUser(ctx, `SELECT id, username, password_hash, created_at FROM user WHERE username = ?`, username)
}

// GetUserByID retrieves a user by ID.
// Returns apperrors.ErrUserNotFound when no such user exists.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	return r.getUser(ctx, `SELECT id, username, password_hash, created_at FROM user WHERE id = ?`, id)
}

func (r *UserRepository) getUser(ctx context.Context, query string, arg any) (model.User, error) {
	var user model.User
	var createdAtStr string

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&createdAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to scan user results: %w", err)
	}

	user.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}
