package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tradevault/journal-backend/internal/api/response"
	"github.com/tradevault/journal-backend/internal/apperrors"
	"github.com/tradevault/journal-backend/internal/service"
)

// CalendarHandler handles HTTP requests for the assembled calendar views.
type CalendarHandler struct {
	calendarService *service.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler with the provided service dependency.
func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
	}
}

// MonthGrid handles GET requests for the 42-cell month view.
//
// Endpoint: GET /api/calendar/month/{year}/{month}
// Response: 200 OK with MonthGrid (always exactly 42 cells)
// Error: 400 Bad Request if year/month are malformed or month is outside 1-12
// Error: 500 Internal Server Error if aggregation fails
func (h *CalendarHandler) MonthGrid(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	year, month, err := yearMonthParams(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid month parameters", err.Error())
		return
	}

	grid, err := h.calendarService.MonthGrid(r.Context(), userID, year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidMonth) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildCalendar.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, grid)
}

// YearSummary handles GET requests for the twelve-month year view.
//
// Endpoint: GET /api/calendar/year/{year}
// Response: 200 OK with YearSummary
// Error: 400 Bad Request if the year is malformed
// Error: 500 Internal Server Error if aggregation fails
func (h *CalendarHandler) YearSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid year", chi.URLParam(r, "year"))
		return
	}

	summary, err := h.calendarService.YearSummary(r.Context(), userID, year)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildYear.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}
