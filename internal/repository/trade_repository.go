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

// TradeRepository provides data access methods for the trade_log table.
// Every query is scoped by the owning user: a trade that exists but belongs
// to someone else behaves exactly like a missing trade.
type TradeRepository struct {
	db *sql.DB
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// InsertTrade persists a new trade log.
func (r *TradeRepository) InsertTrade(ctx context.Context, trade *model.TradeLog) error {
	query := `
		INSERT INTO trade_log (id, user_id, pair, date, session, position, result, rr, risk, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		trade.ID,
		trade.UserID,
		trade.Pair,
		FormatTime(trade.Date),
		trade.Session,
		trade.Position,
		trade.Result,
		trade.RR,
		trade.Risk,
		trade.Note,
		FormatTime(trade.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}

	return nil
}

// GetTrade retrieves a single trade by ID, scoped to the owning user.
// Returns apperrors.ErrTradeNotFound when the trade does not exist or is
// owned by a different user.
func (r *TradeRepository) GetTrade(ctx context.Context, userID, tradeID string) (model.TradeLog, error) {
	query := `
		SELECT id, user_id, pair, date, session, position, result, rr, risk, note, created_at
		FROM trade_log
		WHERE id = ? AND user_id = ?
	`

	var trade model.TradeLog
	var dateStr, createdAtStr string
	var position sql.NullString

	err := r.db.QueryRowContext(ctx, query, tradeID, userID).Scan(
		&trade.ID,
		&trade.UserID,
		&trade.Pair,
		&dateStr,
		&trade.Session,
		&position,
		&trade.Result,
		&trade.RR,
		&trade.Risk,
		&trade.Note,
		&createdAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TradeLog{}, apperrors.ErrTradeNotFound
	}
	if err != nil {
		return model.TradeLog{}, fmt.Errorf("failed to scan trade_log results: %w", err)
	}

	trade.Position = position.String

	trade.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.TradeLog{}, err
	}
	trade.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.TradeLog{}, err
	}

	return trade, nil
}

// GetTradesByDay retrieves all trades for one user on one calendar day,
// ordered by creation time ascending. Day boundaries are UTC.
func (r *TradeRepository) GetTradesByDay(ctx context.Context, userID string, day time.Time) ([]model.TradeLog, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)

	query := `
		SELECT id, user_id, pair, date, session, position, result, rr, risk, note, created_at
		FROM trade_log
		WHERE user_id = ?
		AND date >= ?
		AND date <= ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, FormatTime(start), FormatTime(end))
	if err != nil {
		return nil, fmt.Errorf("failed to query trade_log table: %w", err)
	}
	defer rows.Close()

	trades := []model.TradeLog{}

	for rows.Next() {
		var trade model.TradeLog
		var dateStr, createdAtStr string
		var position sql.NullString

		err := rows.Scan(
			&trade.ID,
			&trade.UserID,
			&trade.Pair,
			&dateStr,
			&trade.Session,
			&position,
			&trade.Result,
			&trade.RR,
			&trade.Risk,
			&trade.Note,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade_log results: %w", err)
		}

		trade.Position = position.String

		trade.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, err
		}
		trade.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}

		trades = append(trades, trade)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade_log table: %w", err)
	}

	return trades, nil
}

// UpdateTrade replaces all mutable fields of a trade, scoped to the owning
// user. Returns apperrors.ErrTradeNotFound when no row matches {id, userId};
// the stored record is untouched in that case.
func (r *TradeRepository) UpdateTrade(ctx context.Context, trade *model.TradeLog) error {
	query := `
		UPDATE trade_log
		SET pair = ?, date = ?, session = ?, position = ?, result = ?, rr = ?, risk = ?, note = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		trade.Pair,
		FormatTime(trade.Date),
		trade.Session,
		trade.Position,
		trade.Result,
		trade.RR,
		trade.Risk,
		trade.Note,
		trade.ID,
		trade.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trade: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}

	return nil
}

// DeleteTrade removes a trade, scoped to the owning user.
// Returns apperrors.ErrTradeNotFound when no row matches {id, userId}.
func (r *TradeRepository) DeleteTrade(ctx context.Context, userID, tradeID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trade_log WHERE id = ? AND user_id = ?`, tradeID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}

	return nil
}

// SummarizeRange groups one user's trades between start and end (inclusive)
// by day-of-month, summing results and counting rows, ordered by day
// ascending. Days without trades are absent from the result.
func (r *TradeRepository) SummarizeRange(ctx context.Context, userID string, start, end time.Time) ([]model.DaySummary, error) {
	query := `
		SELECT CAST(strftime('%d', date) AS INTEGER) AS day,
		       SUM(result) AS total_result,
		       COUNT(*) AS trade_count
		FROM trade_log
		WHERE user_id = ?
		AND date >= ?
		AND date <= ?
		GROUP BY day
		ORDER BY day ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, FormatTime(start), FormatTime(end))
	if err != nil {
		return nil, fmt.Errorf("failed to query trade_log summary: %w", err)
	}
	defer rows.Close()

	summaries := []model.DaySummary{}

	for rows.Next() {
		var s model.DaySummary
		if err := rows.Scan(&s.Day, &s.TotalResult, &s.TradeCount); err != nil {
			return nil, fmt.Errorf("failed to scan trade_log summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade_log summary: %w", err)
	}

	return summaries, nil
}
