package handlers

import (
	"errors"
	"net/http"

	"github.com/tradevault/journal-backend/internal/api/response"
	"github.com/tradevault/journal-backend/internal/apperrors"
	"github.com/tradevault/journal-backend/internal/service"
)

// SummaryHandler handles HTTP requests for the month-summary endpoint.
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler with the provided service dependency.
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// MonthSummary handles GET requests for the caller's per-day trade totals in
// one month. Days without trades are omitted from the response.
//
// Endpoint: GET /api/trades/month/{year}/{month}
// Response: 200 OK with ordered array of DaySummary
// Error: 400 Bad Request if year/month are malformed or month is outside 1-12
// Error: 500 Internal Server Error if aggregation fails
func (h *SummaryHandler) MonthSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	year, month, err := yearMonthParams(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid month parameters", err.Error())
		return
	}

	summaries, err := h.summaryService.SummarizeMonth(r.Context(), userID, year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidMonth) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSummarizeMonth.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summaries)
}
