package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tradevault/journal-backend/internal/api/handlers"
	custommiddleware "github.com/tradevault/journal-backend/internal/api/middleware"
	"github.com/tradevault/journal-backend/internal/config"
	"github.com/tradevault/journal-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	authService *service.AuthService,
	tradeService *service.TradeService,
	summaryService *service.SummaryService,
	calendarService *service.CalendarService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	loginLimiter := custommiddleware.NewLoginLimiter()

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		// Account and session namespace; credential endpoints are rate limited.
		r.Route("/users", func(r chi.Router) {
			r.Use(custommiddleware.RateLimit(loginLimiter))
			userHandler := handlers.NewUserHandler(authService)
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Post("/refresh", userHandler.Refresh)
			r.Post("/logout", userHandler.Logout)
		})

		// Everything below requires a bearer access token.
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.Authenticator(authService))

			r.Route("/trades", func(r chi.Router) {
				tradeHandler := handlers.NewTradeHandler(tradeService)
				summaryHandler := handlers.NewSummaryHandler(summaryService)

				r.Post("/", tradeHandler.CreateTrade)
				r.Get("/day/{date}", tradeHandler.TradesByDay)
				r.Get("/month/{year}/{month}", summaryHandler.MonthSummary)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", tradeHandler.UpdateTrade)
					r.Delete("/", tradeHandler.DeleteTrade)
				})
			})

			r.Route("/calendar", func(r chi.Router) {
				calendarHandler := handlers.NewCalendarHandler(calendarService)
				r.Get("/month/{year}/{month}", calendarHandler.MonthGrid)
				r.Get("/year/{year}", calendarHandler.YearSummary)
			})
		})
	})

	return r
}
