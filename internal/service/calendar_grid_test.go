package service

import (
	"testing"
	"time"

	"github.com/tradevault/journal-backend/internal/model"
)

func TestBuildMonthGrid(t *testing.T) {
	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("month starting on Monday has no leading cells", func(t *testing.T) {
		// January 2024 starts on a Monday.
		cells := BuildMonthGrid(2024, time.January, nil, today)

		if len(cells) != MonthGridCells {
			t.Fatalf("Expected %d cells, got %d", MonthGridCells, len(cells))
		}
		if !cells[0].IsCurrentMonth || cells[0].DayOfMonth != 1 {
			t.Errorf("Expected cell 0 to be January 1, got day %d (current=%v)",
				cells[0].DayOfMonth, cells[0].IsCurrentMonth)
		}
		// 31 January days, then February fills the remaining 11 cells.
		if !cells[30].IsCurrentMonth || cells[30].DayOfMonth != 31 {
			t.Errorf("Expected cell 30 to be January 31, got day %d", cells[30].DayOfMonth)
		}
		if !cells[31].IsOtherMonth || cells[31].DayOfMonth != 1 {
			t.Errorf("Expected cell 31 to be February 1, got day %d (other=%v)",
				cells[31].DayOfMonth, cells[31].IsOtherMonth)
		}
		if !cells[41].IsOtherMonth || cells[41].DayOfMonth != 11 {
			t.Errorf("Expected cell 41 to be February 11, got day %d", cells[41].DayOfMonth)
		}
	})

	t.Run("month starting on Sunday gets six leading cells", func(t *testing.T) {
		// September 2024 starts on a Sunday, the last slot of a Monday-first week.
		cells := BuildMonthGrid(2024, time.September, nil, today)

		if len(cells) != MonthGridCells {
			t.Fatalf("Expected %d cells, got %d", MonthGridCells, len(cells))
		}
		for i := 0; i < 6; i++ {
			if !cells[i].IsOtherMonth {
				t.Errorf("Expected cell %d to be an other-month cell", i)
			}
		}
		// Leading cells are August 26 through 31.
		if cells[0].DayOfMonth != 26 {
			t.Errorf("Expected cell 0 to be August 26, got day %d", cells[0].DayOfMonth)
		}
		if !cells[6].IsCurrentMonth || cells[6].DayOfMonth != 1 {
			t.Errorf("Expected cell 6 to be September 1, got day %d", cells[6].DayOfMonth)
		}
	})

	t.Run("summaries are overlaid on their days", func(t *testing.T) {
		summaries := []model.DaySummary{
			{Day: 3, TotalResult: 1.0, TradeCount: 2},
			{Day: 20, TotalResult: -2.567, TradeCount: 1},
		}

		cells := BuildMonthGrid(2024, time.January, summaries, today)

		day3 := cells[2]
		if day3.Percentage != 1.0 || day3.TradeCount != 2 {
			t.Errorf("Day 3: expected 1.0%% over 2 trades, got %v%% over %d", day3.Percentage, day3.TradeCount)
		}
		day20 := cells[19]
		if day20.Percentage != -2.57 {
			t.Errorf("Day 20: expected rounded -2.57, got %v", day20.Percentage)
		}
		day4 := cells[3]
		if day4.Percentage != 0 || day4.TradeCount != 0 {
			t.Errorf("Day 4: expected zero cell, got %v%% over %d trades", day4.Percentage, day4.TradeCount)
		}
	})

	t.Run("today and future flags are relative to the reference day", func(t *testing.T) {
		cells := BuildMonthGrid(2024, time.January, nil, today)

		if !cells[14].IsToday {
			t.Error("Expected January 15 to be flagged as today")
		}
		if cells[14].IsFutureDay {
			t.Error("Expected today not to be a future day")
		}
		if cells[13].IsFutureDay {
			t.Error("Expected January 14 not to be a future day")
		}
		if !cells[15].IsFutureDay {
			t.Error("Expected January 16 to be a future day")
		}
	})

	t.Run("other-month cells carry dates but no flags or totals", func(t *testing.T) {
		summaries := []model.DaySummary{{Day: 1, TotalResult: 9.9, TradeCount: 3}}
		cells := BuildMonthGrid(2024, time.January, summaries, today)

		feb1 := cells[31]
		if !feb1.IsOtherMonth {
			t.Fatal("Expected cell 31 to be an other-month cell")
		}
		if feb1.Percentage != 0 || feb1.TradeCount != 0 {
			t.Errorf("Expected other-month cell without totals, got %v%% over %d trades",
				feb1.Percentage, feb1.TradeCount)
		}
		want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		if !feb1.Date.Equal(want) {
			t.Errorf("Expected date %v, got %v", want, feb1.Date)
		}
	})
}

func TestReduceMonth(t *testing.T) {
	t.Run("sums all days of a past month", func(t *testing.T) {
		today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		summaries := []model.DaySummary{
			{Day: 3, TotalResult: 1.0, TradeCount: 2},
			{Day: 20, TotalResult: 5.0, TradeCount: 1},
		}

		data := reduceMonth(2024, time.January, summaries, today)

		if data.TotalPercentage != 6.0 {
			t.Errorf("Expected total 6.0, got %v", data.TotalPercentage)
		}
		if data.TradeCount != 3 {
			t.Errorf("Expected 3 trades, got %d", data.TradeCount)
		}
		if data.IsFuture {
			t.Error("Expected past month not to be flagged as future")
		}
	})

	t.Run("skips days after the reference day", func(t *testing.T) {
		today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		summaries := []model.DaySummary{
			{Day: 3, TotalResult: 1.0, TradeCount: 2},
			{Day: 20, TotalResult: 5.0, TradeCount: 1},
		}

		data := reduceMonth(2024, time.January, summaries, today)

		if data.TotalPercentage != 1.0 {
			t.Errorf("Expected total 1.0, got %v", data.TotalPercentage)
		}
		if data.TradeCount != 2 {
			t.Errorf("Expected 2 trades, got %d", data.TradeCount)
		}
	})

	t.Run("flags a month that starts after the reference day", func(t *testing.T) {
		today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

		data := reduceMonth(2024, time.February, nil, today)

		if !data.IsFuture {
			t.Error("Expected February to be flagged as future")
		}
	})
}

func TestReduceYear(t *testing.T) {
	months := make([]model.MonthData, 12)
	for i := range months {
		months[i].Month = i + 1
	}
	months[0] = model.MonthData{Month: 1, TotalPercentage: 4.5, TradeCount: 10}
	months[1] = model.MonthData{Month: 2, TotalPercentage: -1.5, TradeCount: 4}
	// March traded to exactly zero; April had no trades at all.
	months[2] = model.MonthData{Month: 3, TotalPercentage: 0, TradeCount: 6}

	summary := reduceYear(2024, months)

	if summary.ProfitMonths != 1 {
		t.Errorf("Expected 1 profit month, got %d", summary.ProfitMonths)
	}
	if summary.LossMonths != 1 {
		t.Errorf("Expected 1 loss month, got %d", summary.LossMonths)
	}
	if summary.NeutralMonths != 1 {
		t.Errorf("Expected 1 neutral month, got %d", summary.NeutralMonths)
	}
	if summary.TotalPercentage != 3.0 {
		t.Errorf("Expected total 3.0, got %v", summary.TotalPercentage)
	}
	if summary.TotalTrades != 20 {
		t.Errorf("Expected 20 trades, got %d", summary.TotalTrades)
	}
}
