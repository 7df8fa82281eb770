package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tradevault/journal-backend/internal/config"
	"github.com/tradevault/journal-backend/internal/repository"
	"github.com/tradevault/journal-backend/internal/service"
)

// MakeID generates a new UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// MakeUsername generates a unique username with the given base.
func MakeUsername(base string) string {
	if base == "" {
		base = "user"
	}
	return base + "-" + randomAlphanumeric(6)
}

// NewTestTradeService creates a TradeService wired to the given test database.
func NewTestTradeService(t *testing.T, db *sql.DB) *service.TradeService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)

	return service.NewTradeService(
		tradeRepo,
	)
}

// NewTestSummaryService creates a SummaryService wired to the given test database.
func NewTestSummaryService(t *testing.T, db *sql.DB) *service.SummaryService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)

	return service.NewSummaryService(
		tradeRepo,
		5*time.Second,
	)
}

// NewTestCalendarService creates a CalendarService wired to the given test database.
func NewTestCalendarService(t *testing.T, db *sql.DB) *service.CalendarService {
	t.Helper()

	return service.NewCalendarService(
		NewTestSummaryService(t, db),
	)
}

// NewTestAuthService creates an AuthService with throwaway signing keys
// wired to the given test database.
func NewTestAuthService(t *testing.T, db *sql.DB) *service.AuthService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	authService, err := service.NewAuthService(userRepo, sessionRepo, config.AuthConfig{
		JWTSecret:          "test-secret-test-secret-test-secret!",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("Failed to create test auth service: %v", err)
	}

	return authService
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// CommonPairs contains frequently used instrument pairs for test data.
var CommonPairs = []string{"EURUSD", "GBPUSD", "USDJPY", "XAUUSD", "NAS100", "US30"}

// RandomPair returns a random pair from CommonPairs.
func RandomPair() string {
	//nolint:gosec // G404: Using math/rand for test data generation is acceptable
	return CommonPairs[rand.Intn(len(CommonPairs))]
}
