// Package main is the entry point for the itinerary planner API server.
// Its sole responsibility is wiring dependencies together and starting
// the server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
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
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/boropappa/china-trip-solo/backend/internal/config"
	"github.com/boropappa/china-trip-solo/backend/internal/handler"
	"github.com/boropappa/china-trip-solo/backend/internal/middleware"
	"github.com/boropappa/china-trip-solo/backend/internal/repo"
	"github.com/boropappa/china-trip-solo/backend/internal/service"
	"github.com/boropappa/china-trip-solo/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog JSON handler writes machine-readable output suitable for
	// log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// Migrations run through database/sql (goose needs it); the server
	// itself uses a pgx pool.
	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Services ---------------------------------------------------------
	kv := repo.NewPostgresKV(pool)
	trips := service.NewTripService(repo.NewTripStore(kv, logger))
	locations := service.NewLocationService(repo.NewLocationStore(kv, logger))
	settings := service.NewSettingsService(repo.NewSettingsStore(kv, logger, cfg.DefaultTimezone))
	exporter := service.NewExportService(time.Now)
	data := service.NewDataService(kv, logger)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → SlogLogger → Recoverer →
	// CORS → Metrics → MaxBodySize. The logger needs the request ID;
	// the recoverer turns panics into 500s before anything user-visible.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMetrics())
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srv := handler.NewServer(trips, locations, settings, exporter, data)
	r.Mount("/", srv.Routes())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for an OS signal, then give in-flight
	// requests up to 15 seconds to complete.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies all pending embedded migrations at boot. The
// service owns a single table, so bundling migration into startup beats
// a separate deployment step.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return err
	}
	return nil
}
