package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tradevault/journal-backend/internal/api/handlers"
	"github.com/tradevault/journal-backend/internal/api/middleware"
	"github.com/tradevault/journal-backend/internal/model"
	"github.com/tradevault/journal-backend/internal/service"
	"github.com/tradevault/journal-backend/internal/testutil"
)

// TestCalendarHandler_MonthGrid tests the GET /api/calendar/month/{year}/{month} endpoint.
//
// WHY: The month grid is the main screen of the journal. The frontend renders
// it as a fixed six-week table and relies on all 42 cells always being
// present, with each cell carrying its own date.
func TestCalendarHandler_MonthGrid(t *testing.T) {
	t.Run("GET /api/calendar/month returns all 42 cells", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCalendarHandler(testutil.NewTestCalendarService(t, db))
		user := testutil.NewUser().Build(t, db)

		testutil.NewTrade(user.ID).
			WithDate(time.Date(2020, 3, 5, 9, 0, 0, 0, time.UTC)).
			WithResult(2.0).
			Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/calendar/month/2020/3",
			map[string]string{"year": "2020", "month": "3"})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		// Execute
		handler.MonthGrid(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var grid model.MonthGrid
		if err := json.NewDecoder(w.Body).Decode(&grid); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(grid.Days) != service.MonthGridCells {
			t.Fatalf("Expected %d cells, got %d", service.MonthGridCells, len(grid.Days))
		}

		var found bool
		for _, day := range grid.Days {
			if day.IsCurrentMonth && day.DayOfMonth == 5 {
				found = true
				if day.Percentage != 2.0 {
					t.Errorf("Expected March 5 total 2.0, got %v", day.Percentage)
				}
				if day.TradeCount != 1 {
					t.Errorf("Expected 1 trade on March 5, got %d", day.TradeCount)
				}
			}
		}
		if !found {
			t.Error("Expected March 5 in the grid")
		}
	})

	t.Run("GET /api/calendar/month returns 400 for month 13", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCalendarHandler(testutil.NewTestCalendarService(t, db))
		user := testutil.NewUser().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/calendar/month/2020/13",
			map[string]string{"year": "2020", "month": "13"})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		// Execute
		handler.MonthGrid(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("GET /api/calendar/month returns 400 for non-numeric parameters", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCalendarHandler(testutil.NewTestCalendarService(t, db))
		user := testutil.NewUser().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/calendar/month/twenty/three",
			map[string]string{"year": "twenty", "month": "three"})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		// Execute
		handler.MonthGrid(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestCalendarHandler_YearSummary tests the GET /api/calendar/year/{year} endpoint.
func TestCalendarHandler_YearSummary(t *testing.T) {
	t.Run("GET /api/calendar/year returns twelve months with totals", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCalendarHandler(testutil.NewTestCalendarService(t, db))
		user := testutil.NewUser().Build(t, db)

		testutil.NewTrade(user.ID).
			WithDate(time.Date(2020, 1, 10, 9, 0, 0, 0, time.UTC)).
			WithResult(1.5).
			Build(t, db)
		testutil.NewTrade(user.ID).
			WithDate(time.Date(2020, 7, 22, 9, 0, 0, 0, time.UTC)).
			WithResult(-0.5).
			Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/calendar/year/2020",
			map[string]string{"year": "2020"})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		// Execute
		handler.YearSummary(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var summary model.YearSummary
		if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(summary.Months) != 12 {
			t.Fatalf("Expected 12 months, got %d", len(summary.Months))
		}
		if summary.TotalTrades != 2 {
			t.Errorf("Expected 2 trades, got %d", summary.TotalTrades)
		}
		if summary.ProfitMonths != 1 || summary.LossMonths != 1 {
			t.Errorf("Expected 1 profit and 1 loss month, got %d and %d",
				summary.ProfitMonths, summary.LossMonths)
		}
		if summary.TotalPercentage != 1.0 {
			t.Errorf("Expected year total 1.0, got %v", summary.TotalPercentage)
		}
	})

	t.Run("GET /api/calendar/year returns 400 on a malformed year", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewCalendarHandler(testutil.NewTestCalendarService(t, db))
		user := testutil.NewUser().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/calendar/year/twenty",
			map[string]string{"year": "twenty"})
		req = req.WithContext(middleware.WithUserID(req.Context(), user.ID))
		w := httptest.NewRecorder()

		// Execute
		handler.YearSummary(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
