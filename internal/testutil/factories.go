package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/tradevault/journal-backend/internal/model"
	"github.com/tradevault/journal-backend/internal/repository"
)

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	// Simple creation with defaults
//	user := testutil.NewUser().Build(t, db)
//
//	// Customized user
//	user := testutil.NewUser().
//	    WithUsername("trader-jane").
//	    Build(t, db)
type UserBuilder struct {
	ID           string
	Username     string
	PasswordHash string
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		ID:           MakeID(),
		Username:     MakeUsername("trader"),
		PasswordHash: "$2a$12$test-not-a-real-hash",
	}
}

// WithID sets a custom ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

// WithUsername sets a custom username.
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.Username = username
	return b
}

// WithPasswordHash sets a custom password hash.
func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.PasswordHash = hash
	return b
}

// Build inserts the user into the database and returns the model.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	user := model.User{
		ID:           b.ID,
		Username:     b.Username,
		PasswordHash: b.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := db.Exec(
		`INSERT INTO user (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		user.ID, user.Username, user.PasswordHash, repository.FormatTime(user.CreatedAt),
	)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}

	return user
}

// TradeBuilder provides a fluent interface for creating test trade logs.
//
// Example usage:
//
//	trade := testutil.NewTrade(user.ID).
//	    WithDate(time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)).
//	    WithResult(2.0).
//	    Build(t, db)
type TradeBuilder struct {
	ID       string
	UserID   string
	Pair     string
	Date     time.Time
	Session  string
	Position string
	Result   float64
	RR       float64
	Risk     float64
	Note     string
}

// NewTrade creates a TradeBuilder with sensible defaults for the given user.
func NewTrade(userID string) *TradeBuilder {
	return &TradeBuilder{
		ID:       MakeID(),
		UserID:   userID,
		Pair:     "EURUSD",
		Date:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Session:  model.SessionLondon,
		Position: model.PositionLong,
		Result:   1.5,
		RR:       3,
		Risk:     1,
	}
}

// WithID sets a custom ID.
func (b *TradeBuilder) WithID(id string) *TradeBuilder {
	b.ID = id
	return b
}

// WithPair sets a custom instrument pair.
func (b *TradeBuilder) WithPair(pair string) *TradeBuilder {
	b.Pair = pair
	return b
}

// WithDate sets a custom trade date.
func (b *TradeBuilder) WithDate(date time.Time) *TradeBuilder {
	b.Date = date
	return b
}

// WithSession sets a custom trading session.
func (b *TradeBuilder) WithSession(session string) *TradeBuilder {
	b.Session = session
	return b
}

// WithPosition sets a custom position.
func (b *TradeBuilder) WithPosition(position string) *TradeBuilder {
	b.Position = position
	return b
}

// WithResult sets a custom result percentage.
func (b *TradeBuilder) WithResult(result float64) *TradeBuilder {
	b.Result = result
	return b
}

// WithRR sets a custom risk-reward ratio.
func (b *TradeBuilder) WithRR(rr float64) *TradeBuilder {
	b.RR = rr
	return b
}

// WithRisk sets a custom risk percentage.
func (b *TradeBuilder) WithRisk(risk float64) *TradeBuilder {
	b.Risk = risk
	return b
}

// WithNote sets a custom note.
func (b *TradeBuilder) WithNote(note string) *TradeBuilder {
	b.Note = note
	return b
}

// Build inserts the trade into the database and returns the model.
func (b *TradeBuilder) Build(t *testing.T, db *sql.DB) model.TradeLog {
	t.Helper()

	trade := model.TradeLog{
		ID:        b.ID,
		UserID:    b.UserID,
		Pair:      b.Pair,
		Date:      b.Date,
		Session:   b.Session,
		Position:  b.Position,
		Result:    b.Result,
		RR:        b.RR,
		Risk:      b.Risk,
		Note:      b.Note,
		CreatedAt: time.Now().UTC(),
	}

	_, err := db.Exec(
		`INSERT INTO trade_log (id, user_id, pair, date, session, position, result, rr, risk, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trade.ID, trade.UserID, trade.Pair, repository.FormatTime(trade.Date), trade.Session,
		trade.Position, trade.Result, trade.RR, trade.Risk, trade.Note, repository.FormatTime(trade.CreatedAt),
	)
	if err != nil {
		t.Fatalf("Failed to insert test trade: %v", err)
	}

	return trade
}

// SessionBuilder provides a fluent interface for creating test refresh sessions.
type SessionBuilder struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// NewSession creates a SessionBuilder with sensible defaults for the given user.
func NewSession(userID string) *SessionBuilder {
	return &SessionBuilder{
		ID:        MakeID(),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
	}
}

// WithExpiresAt sets a custom expiry.
func (b *SessionBuilder) WithExpiresAt(expiresAt time.Time) *SessionBuilder {
	b.ExpiresAt = expiresAt
	return b
}

// Build inserts the session into the database and returns the model.
func (b *SessionBuilder) Build(t *testing.T, db *sql.DB) model.Session {
	t.Helper()

	session := model.Session{
		ID:        b.ID,
		UserID:    b.UserID,
		ExpiresAt: b.ExpiresAt,
		CreatedAt: time.Now().UTC(),
	}

	_, err := db.Exec(
		`INSERT INTO session (id, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)`,
		session.ID, session.UserID, repository.FormatTime(session.ExpiresAt), repository.FormatTime(session.CreatedAt),
	)
	if err != nil {
		t.Fatalf("Failed to insert test session: %v", err)
	}

	return session
}
