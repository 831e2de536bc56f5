package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/proteinmeals/backend/internal/config"
	"github.com/proteinmeals/backend/internal/handlers"
	"github.com/proteinmeals/backend/internal/middleware"
	"github.com/proteinmeals/backend/internal/repository"
	"github.com/proteinmeals/backend/internal/service"
	"github.com/proteinmeals/backend/pkg/logger"
	"github.com/proteinmeals/backend/pkg/metrics"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting protein meals api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Connect to the document store. A missing or unreachable store is not
	// fatal: the service boots anyway and the diagnostic endpoint reports
	// what is wrong.
	store := connectStore(cfg.Store, log)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			log.Error("failed to close store", "error", err)
		}
	}()

	// Initialize repositories
	mealRepo := repository.NewMealRepository(store)
	subscriptionRepo := repository.NewSubscriptionRepository(store)
	preferenceRepo := repository.NewPreferenceRepository(store)

	// Initialize services
	mealService := service.NewMealService(mealRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	preferenceService := service.NewPreferenceService(preferenceRepo)

	// Initialize metrics
	collector := metrics.New("proteinmeals")

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, log)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(store, cfg.Store, log)
	mealHandler := handlers.NewMealHandler(mealService, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, log)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(collector))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Service identity and diagnostics
	r.Get("/", diagnosticsHandler.Info)
	r.Get("/test", diagnosticsHandler.Diagnose)
	r.Get("/health", healthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	// Catalog endpoints
	r.Post("/seed", mealHandler.SeedCatalog)
	r.Get("/meals", mealHandler.ListMeals)
	r.Post("/meals/portion", mealHandler.PortionMacros)

	// Customer endpoints
	r.Post("/subscriptions", subscriptionHandler.CreateSubscription)
	r.Post("/preferences", preferenceHandler.UpsertPreference)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// connectStore dials the document store described by cfg. It returns an
// unavailable store when the configuration is incomplete or the dial fails.
func connectStore(cfg config.StoreConfig, log *slog.Logger) *repository.Store {
	if cfg.URL == "" || cfg.Database == "" {
		log.Warn("store not configured, running without persistence",
			"database_url_set", cfg.URL != "",
			"database_name_set", cfg.Database != "",
		)
		return repository.NewUnavailable()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	store, err := repository.Connect(ctx, cfg.URL, cfg.Database)
	if err != nil {
		log.Warn("store connection failed, running without persistence", "error", err)
		return repository.NewUnavailable()
	}

	log.Info("connected to document store", "database", cfg.Database)
	return store
}
