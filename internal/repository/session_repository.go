package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tradevault/journal-backend/internal/apperrors"
	"github.com/tradevault/journal-backend/internal/model"
)

// SessionRepository provides data access methods for the session table.
// Sessions back refresh tokens: deleting a row revokes the token.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository with the provided database connection.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// InsertSession persists a new refresh session.
func (r *SessionRepository) InsertSession(ctx context.Context, session *model.Session) error {
	query := `
		INSERT INTO session (id, user_id, expires_at, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		FormatTime(session.ExpiresAt),
		FormatTime(session.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID.
// Returns apperrors.ErrSessionNotFound when the session does not exist.
func (r *SessionRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	query := `SELECT id, user_id, expires_at, created_at FROM session WHERE id = ?`

	var session model.Session
	var expiresAtStr, createdAtStr string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.UserID,
		&expiresAtStr,
		&createdAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Session{}, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to scan session results: %w", err)
	}

	session.ExpiresAt, err = ParseTime(expiresAtStr)
	if err != nil {
		return model.Session{}, err
	}
	session.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Session{}, err
	}

	return session, nil
}

// DeleteSession removes a session, revoking its refresh token.
// Deleting a missing session is not an error.
func (r *SessionRepository) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes all sessions whose expiry is before now.
// Returns the number of sessions removed.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE expires_at < ?`, FormatTime(now))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}

	return removed, nil
}
