// Package main is the entry point for the Tahira Travels API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tahiratravels/backend/internal/auth"
	"github.com/tahiratravels/backend/internal/config"
	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/handler"
	"github.com/tahiratravels/backend/internal/middleware"
	"github.com/tahiratravels/backend/internal/repo"
	"github.com/tahiratravels/backend/internal/service"
	"github.com/tahiratravels/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if err := migrate(ctx, pool); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// --- Repos and services -------------------------------------------------
	users := repo.NewUserRepo(pool)
	tours := repo.NewTourRepo(pool)
	bookings := repo.NewBookingRepo(pool)
	reviews := repo.NewReviewRepo(pool)
	guides := repo.NewGuideRepo(pool)
	categories := repo.NewCategoryRepo(pool)
	favorites := repo.NewFavoriteRepo(pool)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	if err := service.NewSeeder(users, tours, logger).Run(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	server := handler.NewServer(handler.Services{
		Tours:      service.NewTourService(tours, favorites, categories),
		Bookings:   service.NewBookingService(bookings, tours),
		Reviews:    service.NewReviewService(reviews, bookings, tours),
		Guides:     service.NewTourGuideService(guides, tours),
		Categories: service.NewCategoryService(categories),
		Users:      service.NewUserService(users),
		Accounts:   service.NewAccountService(users, tokens),
	}, logger)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Recoverer → CORS →
	// body limit → metrics → rate limit. Authentication and the admin redirect
	// wrap only the API routes so /metrics stays anonymous.
	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go limiter.Run(sweepCtx, time.Minute, 10*time.Minute)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(metrics.Handler)
	r.Use(limiter.Handler)

	r.Handle("/metrics", promhttp.Handler())
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthenticator(tokens))
		r.Use(middleware.NewAdminRedirect(domain.RoleAdmin, "/admin/users"))
		r.Mount("/", server.Routes())
	})

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies every pending embedded migration through a database/sql
// handle borrowed from the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}
