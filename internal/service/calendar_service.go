package service

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/tradevault/journal-backend/internal/model"
)

// MonthGridCells is the fixed size of a month grid: six Monday-first weeks.
const MonthGridCells = 42

const (
	yearCacheExpiration = 15 * time.Minute
	yearCacheCleanup    = 30 * time.Minute
)

// CalendarService is the view assembler: it overlays day summaries onto the
// calendar skeleton for the month view, and fans out twelve month
// aggregations for the year view. Year results are cached per (user, year)
// with a TTL; trade writes invalidate the years they touch.
type CalendarService struct {
	summaryService *SummaryService
	yearCache      *cache.Cache
	now            func() time.Time
}

// NewCalendarService creates a new CalendarService with the provided summary dependency.
func NewCalendarService(summaryService *SummaryService) *CalendarService {
	return &CalendarService{
		summaryService: summaryService,
		yearCache:      cache.New(yearCacheExpiration, yearCacheCleanup),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// MonthGrid assembles the 42-cell month view for one user.
func (s *CalendarService) MonthGrid(ctx context.Context, userID string, year, month int) (model.MonthGrid, error) {
	summaries, err := s.summaryService.SummarizeMonth(ctx, userID, year, month)
	if err != nil {
		return model.MonthGrid{}, err
	}

	return model.MonthGrid{
		Year:  year,
		Month: month,
		Days:  BuildMonthGrid(year, time.Month(month), summaries, s.now()),
	}, nil
}

// YearSummary assembles the twelve-month year view for one user. The twelve
// month aggregations run concurrently; each result is keyed by its own month
// index, so no ordering or shared state is involved beyond the join.
func (s *CalendarService) YearSummary(ctx context.Context, userID string, year int) (model.YearSummary, error) {
	key := yearCacheKey(userID, year)
	if cached, ok := s.yearCache.Get(key); ok {
		return cached.(model.YearSummary), nil
	}

	today := truncateToDay(s.now())
	months := make([]model.MonthData, 12)

	g, gctx := errgroup.WithContext(ctx)
	for m := 1; m <= 12; m++ {
		m := m
		g.Go(func() error {
			summaries, err := s.summaryService.SummarizeMonth(gctx, userID, year, m)
			if err != nil {
				return err
			}
			months[m-1] = reduceMonth(year, time.Month(m), summaries, today)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.YearSummary{}, err
	}

	summary := reduceYear(year, months)
	s.yearCache.Set(key, summary, cache.DefaultExpiration)

	return summary, nil
}

// InvalidateYear drops the cached year summary for one user and year.
// Implements YearInvalidator for the trade write path.
func (s *CalendarService) InvalidateYear(userID string, year int) {
	s.yearCache.Delete(yearCacheKey(userID, year))
}

func yearCacheKey(userID string, year int) string {
	return fmt.Sprintf("%s:%d", userID, year)
}

// BuildMonthGrid produces exactly MonthGridCells cells for the given month:
// trailing days of the previous month down to the nearest Monday, the month
// itself with summaries overlaid, then leading days of the next month
// filling up to the cap.
func BuildMonthGrid(year int, month time.Month, summaries []model.DaySummary, today time.Time) []model.CalendarDay {
	byDay := make(map[int]model.DaySummary, len(summaries))
	for _, s := range summaries {
		byDay[s.Day] = s
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	todayDate := truncateToDay(today)

	// Monday-first week: Sunday counts as weekday 7.
	firstDayOfWeek := int(first.Weekday())
	if firstDayOfWeek == 0 {
		firstDayOfWeek = 7
	}
	leading := firstDayOfWeek - 1

	cells := make([]model.CalendarDay, 0, MonthGridCells)

	for i := leading; i > 0; i-- {
		date := first.AddDate(0, 0, -i)
		cells = append(cells, otherMonthCell(date))
	}

	for day := 1; day <= daysInMonth && len(cells) < MonthGridCells; day++ {
		date := first.AddDate(0, 0, day-1)
		cell := model.CalendarDay{
			Date:           date,
			DayOfMonth:     day,
			IsCurrentMonth: true,
			IsToday:        date.Equal(todayDate),
			IsFutureDay:    date.After(todayDate),
		}
		if s, ok := byDay[day]; ok {
			cell.Percentage = round(s.TotalResult)
			cell.TradeCount = s.TradeCount
		}
		cells = append(cells, cell)
	}

	next := first.AddDate(0, 1, 0)
	for i := 0; len(cells) < MonthGridCells; i++ {
		cells = append(cells, otherMonthCell(next.AddDate(0, 0, i)))
	}

	return cells
}

func otherMonthCell(date time.Time) model.CalendarDay {
	return model.CalendarDay{
		Date:         date,
		DayOfMonth:   date.Day(),
		IsOtherMonth: true,
	}
}

// reduceMonth folds a month's day summaries into a single MonthData cell,
// counting only non-future days.
func reduceMonth(year int, month time.Month, summaries []model.DaySummary, today time.Time) model.MonthData {
	data := model.MonthData{
		Month:    int(month),
		IsFuture: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).After(today),
	}

	var total float64
	for _, s := range summaries {
		date := time.Date(year, month, s.Day, 0, 0, 0, 0, time.UTC)
		if date.After(today) {
			continue
		}
		total += s.TotalResult
		data.TradeCount += s.TradeCount
	}
	data.TotalPercentage = round(total)

	return data
}

// reduceYear folds twelve MonthData cells into the year totals. A month is
// neutral when it has trades that net to exactly zero.
func reduceYear(year int, months []model.MonthData) model.YearSummary {
	summary := model.YearSummary{
		Year:   year,
		Months: months,
	}

	var total float64
	for _, m := range months {
		total += m.TotalPercentage
		summary.TotalTrades += m.TradeCount

		switch {
		case m.TotalPercentage > 0:
			summary.ProfitMonths++
		case m.TotalPercentage < 0:
			summary.LossMonths++
		case m.TradeCount > 0:
			summary.NeutralMonths++
		}
	}
	summary.TotalPercentage = round(total)

	return summary
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
