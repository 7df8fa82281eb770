package service

import (
	"context"
	"time"

	"github.com/tradevault/journal-backend/internal/apperrors"
	"github.com/tradevault/journal-backend/internal/model"
	"github.com/tradevault/journal-backend/internal/repository"
)

// SummaryService is the summary aggregator: it turns one user's trades for a
// month into per-day totals. Days without trades are absent from the result;
// callers treat absence as zero.
type SummaryService struct {
	tradeRepo *repository.TradeRepository
	timeout   time.Duration
}

// NewSummaryService creates a new SummaryService. The timeout bounds every
// aggregation query so a stalled store cannot block a request indefinitely.
func NewSummaryService(tradeRepo *repository.TradeRepository, timeout time.Duration) *SummaryService {
	return &SummaryService{
		tradeRepo: tradeRepo,
		timeout:   timeout,
	}
}

// SummarizeMonth returns one DaySummary per day of the given month that has
// at least one trade for the user, ordered by day ascending. TotalResult is
// the exact signed sum of trade results; rounding is left to the
// presentation boundary.
//
// The month range is inclusive: a trade at 23:59:59.999 UTC on the last day
// belongs to the month, one millisecond later does not.
func (s *SummaryService) SummarizeMonth(ctx context.Context, userID string, year, month int) ([]model.DaySummary, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}

	start, end := MonthRange(year, time.Month(month))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.tradeRepo.SummarizeRange(ctx, userID, start, end)
}

// MonthRange returns the inclusive UTC bounds of a calendar month:
// [midnight of the 1st, 23:59:59.999 of the last day].
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}
