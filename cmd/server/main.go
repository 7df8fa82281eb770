package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tradevault/journal-backend/internal/api"
	"github.com/tradevault/journal-backend/internal/config"
	"github.com/tradevault/journal-backend/internal/database"
	"github.com/tradevault/journal-backend/internal/repository"
	"github.com/tradevault/journal-backend/internal/scheduler"
	"github.com/tradevault/journal-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.Auth.FernetKey == "" {
		log.Println("FERNET_KEY not set; refresh tokens will not survive a restart")
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	tradeRepo := repository.NewTradeRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	authService, err := service.NewAuthService(userRepo, sessionRepo, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}
	tradeService := service.NewTradeService(tradeRepo)
	summaryService := service.NewSummaryService(tradeRepo, cfg.Aggregation.Timeout)
	calendarService := service.NewCalendarService(summaryService)

	// Trade writes drop the cached year summaries they touch.
	tradeService.SetYearInvalidator(calendarService)

	// Start background session sweep
	sched, err := scheduler.New(sessionRepo)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Create router
	router := api.NewRouter(systemService, authService, tradeService, summaryService, calendarService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
