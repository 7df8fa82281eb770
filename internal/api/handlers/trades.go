package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tradevault/journal-backend/internal/api/request"
	"github.com/tradevault/journal-backend/internal/api/response"
	"github.com/tradevault/journal-backend/internal/apperrors"
	"github.com/tradevault/journal-backend/internal/service"
	"github.com/tradevault/journal-backend/internal/validation"
)

// TradeHandler handles HTTP requests for trade-log endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the tradeService.
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new TradeHandler with the provided service dependency.
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// TradesByDay handles GET requests to list the caller's trades on one day.
//
// Endpoint: GET /api/trades/day/{date}   (date in YYYY-MM-DD)
// Response: 200 OK with array of TradeLog
// Error: 400 Bad Request if the date is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) TradesByDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	day, err := validation.ParseTradeDate(chi.URLParam(r, "date"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	trades, err := h.tradeService.GetTradesByDay(r.Context(), userID, day)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// CreateTrade handles POST requests to create a new trade log.
// Numeric fields accept plain numbers or decorated strings ("12.5%", "1:3");
// decoration is stripped before persistence.
//
// Endpoint: POST /api/trades
// Request Body: CreateTradeRequest
// Response: 201 Created with TradeLog
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	req, err := parseJSON[request.CreateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	trade, err := h.tradeService.CreateTrade(r.Context(), userID, req)
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, trade)
}

// UpdateTrade handles PUT requests to replace an existing trade log.
// Updates are full field replacements; partial bodies fail validation.
//
// Endpoint: PUT /api/trades/{uuid}
// Request Body: UpdateTradeRequest
// Response: 200 OK with updated TradeLog
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if the trade does not exist or is not owned by the caller
// Error: 500 Internal Server Error if the update fails
func (h *TradeHandler) UpdateTrade(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	tradeID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	trade, err := h.tradeService.UpdateTrade(r.Context(), userID, tradeID, req)
	if err != nil {
		var validationErr *validation.Error
		switch {
		case errors.As(err, &validationErr):
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
		case errors.Is(err, apperrors.ErrTradeNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateTrade.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, trade)
}

// DeleteTrade handles DELETE requests to remove a trade log.
//
// Endpoint: DELETE /api/trades/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the trade does not exist or is not owned by the caller
// Error: 500 Internal Server Error if deletion fails
func (h *TradeHandler) DeleteTrade(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	tradeID := chi.URLParam(r, "uuid")

	if err := h.tradeService.DeleteTrade(r.Context(), userID, tradeID); err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
