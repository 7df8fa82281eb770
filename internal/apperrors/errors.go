package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTradeNotFound indicates that a trade log with the given ID does not
	// exist or is not owned by the caller. Ownership failures deliberately
	// look identical to missing records.
	ErrTradeNotFound = errors.New("trade not found")

	// ErrUserNotFound indicates that a user with the given ID or username does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound indicates that a refresh session does not exist or was revoked.
	ErrSessionNotFound = errors.New("session not found")
)

// Authentication errors short-circuit request handling before any query runs.
var (
	// ErrAuthenticationMissing indicates that no credential was presented.
	ErrAuthenticationMissing = errors.New("authorization required")

	// ErrAuthenticationInvalid indicates that a credential was presented but
	// could not be verified or has expired.
	ErrAuthenticationInvalid = errors.New("invalid or expired credential")

	// ErrInvalidCredentials indicates a failed username/password login attempt.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidMonth indicates a month value outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrUsernameTaken indicates that an account with the same username already exists.
	ErrUsernameTaken = errors.New("username already taken")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. Handlers surface them as generic 500s; the frontend shows
// an empty state rather than crash.
var (
	ErrFailedToRetrieveTrades = errors.New("failed to retrieve trades")
	ErrFailedToCreateTrade    = errors.New("failed to create trade")
	ErrFailedToUpdateTrade    = errors.New("failed to update trade")
	ErrFailedToDeleteTrade    = errors.New("failed to delete trade")
	ErrFailedToSummarizeMonth = errors.New("failed to summarize month")
	ErrFailedToBuildCalendar  = errors.New("failed to build calendar")
	ErrFailedToBuildYear      = errors.New("failed to build year summary")
	ErrFailedToRegisterUser   = errors.New("failed to register user")
	ErrFailedToLoginUser      = errors.New("failed to log in")
	ErrFailedToRefreshSession = errors.New("failed to refresh session")
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
