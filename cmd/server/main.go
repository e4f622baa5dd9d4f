package main

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Albab47/librarylog-server/internal"
	"github.com/Albab47/librarylog-server/internal/handler"
	"github.com/Albab47/librarylog-server/internal/metrics"
	"github.com/Albab47/librarylog-server/internal/middleware"
	"github.com/Albab47/librarylog-server/internal/repository"
	"github.com/Albab47/librarylog-server/internal/service"
	"github.com/Albab47/librarylog-server/internal/token"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize document store connection
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	client, err := repository.Connect(connectCtx, cfg.DatabaseUrl)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelDisconnect()
		_ = client.Disconnect(disconnectCtx)
	}()
	logger.Info("Document store ready", "database", cfg.DatabaseName)

	// Initialize repository
	store := repository.New(client.Database(cfg.DatabaseName))

	// Initialize token manager. An empty signing secret is fatal here, never
	// a per-request error.
	tokens, err := token.NewManager([]byte(cfg.AccessTokenSecret))
	if err != nil {
		return err
	}

	// Initialize services
	catalogService := service.NewCatalogService(store, logger)
	borrowService := service.NewBorrowService(store, logger)

	// Initialize middleware
	authMw := middleware.NewAuthMiddleware(tokens, logger)
	corsMw := middleware.NewCORSMiddleware(cfg.AllowedOrigins)
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)

	// Initialize handlers
	isProduction := cfg.IsProduction()
	authHandler := handler.NewAuthHandler(tokens, logger, isProduction)
	bookHandler := handler.NewBookHandler(catalogService, logger)
	borrowHandler := handler.NewBorrowHandler(borrowService, logger)
	categoryHandler := handler.NewCategoryHandler(catalogService, logger)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Liveness
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("libraryLog server is running"))
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics endpoint (basic auth when configured)
	mux.Handle("GET /metrics", metricsAuth(cfg, promhttp.Handler()))

	// Auth routes (credential issuance and revocation)
	authHandler.RegisterRoutes(mux)

	// Gate for identity-sensitive mutating routes
	gated := authMw.RequireToken

	// Categories
	mux.HandleFunc("GET /categories", categoryHandler.List)

	// Books
	mux.Handle("POST /books", gated(http.HandlerFunc(bookHandler.Create)))
	mux.HandleFunc("GET /books", bookHandler.List)
	mux.HandleFunc("GET /books/{id}", bookHandler.Get)
	mux.Handle("PATCH /update-book/{id}", gated(http.HandlerFunc(bookHandler.Update)))
	mux.HandleFunc("PATCH /books/{id}", bookHandler.Adjust)

	// Borrowed books
	mux.HandleFunc("POST /borrowed-books", borrowHandler.Create)
	mux.HandleFunc("GET /borrowed-books/{email}", borrowHandler.ListByBorrower)
	mux.HandleFunc("DELETE /borrowed-books/{id}", borrowHandler.Return)
	mux.HandleFunc("GET /borrowed-books/find/{id}", borrowHandler.Find)

	// Ambient middleware wraps the whole mux
	root := middleware.Stack(
		middleware.RequestID,
		loggingMw.Handler,
		metrics.Middleware,
		corsMw.Handler,
	)(mux)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: root,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

// metricsAuth protects the metrics endpoint with basic auth when credentials
// are configured; otherwise it serves the handler unprotected.
func metricsAuth(cfg *internal.Config, next http.Handler) http.Handler {
	if cfg.MetricsUsername == "" && cfg.MetricsPassword == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.MetricsUsername)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.MetricsPassword)) == 1
		if !ok || !userMatch || !passMatch {
			w.Header().Set("WWW-Authenticate", `Basic realm="metrics"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
