// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

// Command api is the entry point for the Sellora HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/joho/godotenv"

	"github.com/sellora/sellora/internal/api"
	"github.com/sellora/sellora/internal/billing/invoice"
	"github.com/sellora/sellora/internal/billing/payment"
	"github.com/sellora/sellora/internal/catalog/product"
	"github.com/sellora/sellora/internal/crm/company"
	"github.com/sellora/sellora/internal/crm/customer"
	"github.com/sellora/sellora/internal/crm/task"
	"github.com/sellora/sellora/internal/platform/config"
	"github.com/sellora/sellora/internal/platform/constants"
	"github.com/sellora/sellora/internal/platform/migration"
	pgstore "github.com/sellora/sellora/internal/platform/postgres"
	redisstore "github.com/sellora/sellora/internal/platform/redis"
	"github.com/sellora/sellora/internal/platform/sec"
	"github.com/sellora/sellora/internal/users/account"
	"github.com/sellora/sellora/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "sellora"))
	slog.SetDefault(log)

	log.Info("[Sellora] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env file is optional; real deployments inject the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "sellora"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security Services ──────────────────────────────────────────────
	cipher, err := sec.NewCipher(cfg.EncryptionSecret)
	must(log, err, "initialize credential cipher")

	jwtSvc, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, resetTokenRepository, cipher, jwtSvc, cfg.TokenTTL)
	authHandler := auth.NewHandler(authService, cfg.TokenTTL)

	accountRepository := account.NewPostgresRepository(pool)
	accountService := account.NewService(accountRepository, sessionRepository, cipher, log)
	accountHandler := account.NewHandler(accountService)

	customerRepository := customer.NewPostgresRepository(pool)
	customerService := customer.NewService(customerRepository, log)
	customerHandler := customer.NewHandler(customerService)

	companyRepository := company.NewPostgresRepository(pool)
	companyService := company.NewService(companyRepository, log)
	companyHandler := company.NewHandler(companyService)

	taskRepository := task.NewPostgresRepository(pool)
	taskService := task.NewService(taskRepository, log)
	taskHandler := task.NewHandler(taskService)

	productRepository := product.NewPostgresRepository(pool)
	productService := product.NewService(productRepository, log)
	productHandler := product.NewHandler(productService)

	invoiceRepository := invoice.NewPostgresRepository(pool)
	invoiceService := invoice.NewService(invoiceRepository, productService, log)
	invoiceHandler := invoice.NewHandler(invoiceService)

	paymentRepository := payment.NewPostgresRepository(pool)
	paymentService := payment.NewService(paymentRepository, invoiceService, log)
	paymentHandler := payment.NewHandler(paymentService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Account:   accountHandler,
		Customer:  customerHandler,
		Company:   companyHandler,
		Task:      taskHandler,
		Product:   productHandler,
		Invoice:   invoiceHandler,
		Payment:   paymentHandler,
	}

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
