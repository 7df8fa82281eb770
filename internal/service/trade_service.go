package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tradevault/journal-backend/internal/api/request"
	"github.com/tradevault/journal-backend/internal/model"
	"github.com/tradevault/journal-backend/internal/repository"
	"github.com/tradevault/journal-backend/internal/validation"
)

// YearInvalidator drops cached year summaries after a write. Implemented by
// CalendarService; split into an interface so the trade side does not depend
// on the view assembler.
type YearInvalidator interface {
	InvalidateYear(userID string, year int)
}

// noopInvalidator is used when no cache is wired (tests).
type noopInvalidator struct{}

func (noopInvalidator) InvalidateYear(string, int) {}

// TradeService handles trade-log business logic. Every operation is scoped
// to the calling user; writes invalidate the cached year summaries they
// touch.
type TradeService struct {
	tradeRepo   *repository.TradeRepository
	invalidator YearInvalidator
}

// NewTradeService creates a new TradeService with the provided repository dependency.
func NewTradeService(tradeRepo *repository.TradeRepository) *TradeService {
	return &TradeService{
		tradeRepo:   tradeRepo,
		invalidator: noopInvalidator{},
	}
}

// SetYearInvalidator wires the year-summary cache invalidation hook.
// Called once during startup; not safe for concurrent use with requests.
func (s *TradeService) SetYearInvalidator(inv YearInvalidator) {
	s.invalidator = inv
}

// GetTradesByDay retrieves all of the user's trades on one calendar day.
func (s *TradeService) GetTradesByDay(ctx context.Context, userID string, day time.Time) ([]model.TradeLog, error) {
	return s.tradeRepo.GetTradesByDay(ctx, userID, day)
}

// CreateTrade validates and persists a new trade log for the user.
func (s *TradeService) CreateTrade(ctx context.Context, userID string, req request.CreateTradeRequest) (*model.TradeLog, error) {
	values, err := validation.ValidateTradeRequest(req)
	if err != nil {
		return nil, err
	}

	trade := &model.TradeLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Pair:      values.Pair,
		Date:      values.Date,
		Session:   values.Session,
		Position:  values.Position,
		Result:    values.Result,
		RR:        values.RR,
		Risk:      values.Risk,
		Note:      values.Note,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.tradeRepo.InsertTrade(ctx, trade); err != nil {
		return nil, err
	}

	s.invalidator.InvalidateYear(userID, trade.Date.Year())

	return trade, nil
}

// UpdateTrade replaces all fields of an existing trade owned by the user.
// Returns apperrors.ErrTradeNotFound when the trade does not exist or
// belongs to another user; storage is untouched in that case.
func (s *TradeService) UpdateTrade(ctx context.Context, userID, tradeID string, req request.UpdateTradeRequest) (*model.TradeLog, error) {
	values, err := validation.ValidateTradeRequest(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.tradeRepo.GetTrade(ctx, userID, tradeID)
	if err != nil {
		return nil, err
	}

	trade := &model.TradeLog{
		ID:        tradeID,
		UserID:    userID,
		Pair:      values.Pair,
		Date:      values.Date,
		Session:   values.Session,
		Position:  values.Position,
		Result:    values.Result,
		RR:        values.RR,
		Risk:      values.Risk,
		Note:      values.Note,
		CreatedAt: existing.CreatedAt,
	}

	if err := s.tradeRepo.UpdateTrade(ctx, trade); err != nil {
		return nil, err
	}

	// A date edit can move the trade across years; drop both.
	s.invalidator.InvalidateYear(userID, existing.Date.Year())
	if trade.Date.Year() != existing.Date.Year() {
		s.invalidator.InvalidateYear(userID, trade.Date.Year())
	}

	return trade, nil
}

// DeleteTrade removes a trade owned by the user.
// Returns apperrors.ErrTradeNotFound when the trade does not exist or
// belongs to another user.
func (s *TradeService) DeleteTrade(ctx context.Context, userID, tradeID string) error {
	existing, err := s.tradeRepo.GetTrade(ctx, userID, tradeID)
	if err != nil {
		return err
	}

	if err := s.tradeRepo.DeleteTrade(ctx, userID, tradeID); err != nil {
		return err
	}

	s.invalidator.InvalidateYear(userID, existing.Date.Year())

	return nil
}
