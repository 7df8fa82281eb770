package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tradevault/journal-backend/internal/apperrors"
	"github.com/tradevault/journal-backend/internal/service"
	"github.com/tradevault/journal-backend/internal/testutil"
)

func TestSummaryService_SummarizeMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	summaryService := testutil.NewTestSummaryService(t, db)
	ctx := context.Background()

	user := testutil.NewUser().Build(t, db)

	testutil.NewTrade(user.ID).
		WithDate(time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)).
		WithResult(2.0).
		Build(t, db)
	testutil.NewTrade(user.ID).
		WithDate(time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC)).
		WithResult(-1.0).
		Build(t, db)
	testutil.NewTrade(user.ID).
		WithDate(time.Date(2024, 1, 20, 11, 0, 0, 0, time.UTC)).
		WithResult(5.0).
		Build(t, db)

	t.Run("aggregates per day, ordered ascending", func(t *testing.T) {
		summaries, err := summaryService.SummarizeMonth(ctx, user.ID, 2024, 1)
		if err != nil {
			t.Fatalf("Failed to summarize month: %v", err)
		}

		if len(summaries) != 2 {
			t.Fatalf("Expected 2 day summaries, got %d", len(summaries))
		}
		if summaries[0].Day != 3 || summaries[0].TotalResult != 1.0 || summaries[0].TradeCount != 2 {
			t.Errorf("Day 3: expected total 1.0 over 2 trades, got %+v", summaries[0])
		}
		if summaries[1].Day != 20 || summaries[1].TotalResult != 5.0 || summaries[1].TradeCount != 1 {
			t.Errorf("Day 20: expected total 5.0 over 1 trade, got %+v", summaries[1])
		}
	})

	t.Run("is read-only and repeatable", func(t *testing.T) {
		first, err := summaryService.SummarizeMonth(ctx, user.ID, 2024, 1)
		if err != nil {
			t.Fatalf("Failed to summarize month: %v", err)
		}
		second, err := summaryService.SummarizeMonth(ctx, user.ID, 2024, 1)
		if err != nil {
			t.Fatalf("Failed to summarize month again: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("Expected identical results, got %d and %d summaries", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("Summary %d differs between calls: %+v vs %+v", i, first[i], second[i])
			}
		}
	})

	t.Run("rejects out-of-range months", func(t *testing.T) {
		for _, month := range []int{0, 13, -1} {
			_, err := summaryService.SummarizeMonth(ctx, user.ID, 2024, month)
			if !errors.Is(err, apperrors.ErrInvalidMonth) {
				t.Errorf("Month %d: expected ErrInvalidMonth, got %v", month, err)
			}
		}
	})
}

func TestMonthRange(t *testing.T) {
	t.Run("spans from midnight of the 1st to the last millisecond", func(t *testing.T) {
		start, end := service.MonthRange(2024, time.January)

		wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, 1, 31, 23, 59, 59, 999_000_000, time.UTC)
		if !start.Equal(wantStart) {
			t.Errorf("Expected start %v, got %v", wantStart, start)
		}
		if !end.Equal(wantEnd) {
			t.Errorf("Expected end %v, got %v", wantEnd, end)
		}
	})

	t.Run("handles leap February", func(t *testing.T) {
		_, end := service.MonthRange(2024, time.February)

		if end.Day() != 29 {
			t.Errorf("Expected February 2024 to end on the 29th, got %d", end.Day())
		}
	})

	t.Run("December rolls into the next year", func(t *testing.T) {
		_, end := service.MonthRange(2023, time.December)

		want := time.Date(2023, 12, 31, 23, 59, 59, 999_000_000, time.UTC)
		if !end.Equal(want) {
			t.Errorf("Expected end %v, got %v", want, end)
		}
	})
}
