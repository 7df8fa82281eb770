package handlers

import (
	"errors"
	"net/http"

	"github.com/tradevault/journal-backend/internal/api/request"
	"github.com/tradevault/journal-backend/internal/api/response"
	"github.com/tradevault/journal-backend/internal/apperrors"
	"github.com/tradevault/journal-backend/internal/service"
	"github.com/tradevault/journal-backend/internal/validation"
)

// UserHandler handles HTTP requests for account and session endpoints.
type UserHandler struct {
	authService *service.AuthService
}

// NewUserHandler creates a new UserHandler with the provided service dependency.
func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Register handles POST requests to create a new account.
//
// Endpoint: POST /api/users/register
// Request Body: RegisterRequest (username, password)
// Response: 201 Created with the new user (password hash omitted)
// Error: 400 Bad Request if validation fails
// Error: 409 Conflict if the username is already taken
// Error: 500 Internal Server Error if creation fails
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RegisterRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateRegister(req); err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrUsernameTaken.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRegisterUser.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, user)
}

// Login handles POST requests to authenticate and issue a token pair.
//
// Endpoint: POST /api/users/login
// Request Body: LoginRequest (username, password)
// Response: 200 OK with TokenPair
// Error: 401 Unauthorized on unknown username or wrong password
// Error: 500 Internal Server Error if login fails
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tokens, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoginUser.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, tokens)
}

// Refresh handles POST requests to exchange a refresh token for a new access token.
//
// Endpoint: POST /api/users/refresh
// Request Body: RefreshRequest (refreshToken)
// Response: 200 OK with TokenPair
// Error: 401 Unauthorized if the refresh token is invalid, expired, or revoked
// Error: 500 Internal Server Error if the refresh fails
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RefreshRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthenticationInvalid) {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrAuthenticationInvalid.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRefreshSession.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, tokens)
}

// Logout handles POST requests to revoke the session behind a refresh token.
//
// Endpoint: POST /api/users/logout
// Request Body: RefreshRequest (refreshToken)
// Response: 204 No Content
// Error: 401 Unauthorized if the refresh token is invalid or already revoked
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.RefreshRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.authService.Logout(r.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, apperrors.ErrAuthenticationInvalid) {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrAuthenticationInvalid.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to log out", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
