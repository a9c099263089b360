package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notekeep/internal/config"
	pgRepo "notekeep/internal/infra/adapter/persistence/postgres"
	"notekeep/internal/infra/db"
	"notekeep/internal/infra/summarizer"

	artUC "notekeep/internal/usecase/article"

	hhttp "notekeep/internal/handler/http"
	harticle "notekeep/internal/handler/http/article"
	hauth "notekeep/internal/handler/http/auth"
	"notekeep/internal/handler/http/requestid"
	authservice "notekeep/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.LogLevel)

	database := initDatabase(logger, cfg.DatabaseURL)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(logger, database, cfg)
	if err != nil {
		logger.Error("server setup failed", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, handler, cfg)
}

// initLogger initializes the JSON structured logger and installs it as the
// process default.
func initLogger(level string) *slog.Logger {
	logLevel := slog.LevelInfo
	if level == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the connection pool and runs migrations.
func initDatabase(logger *slog.Logger, dsn string) *sql.DB {
	database, err := db.Open(context.Background(), dsn)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires repositories, services, routes, and middleware into the
// final handler.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *config.Config) (http.Handler, error) {
	sum, err := summarizer.Select(cfg.SummarizerProvider, cfg.AnthropicAPIKey, cfg.OpenAIAPIKey)
	if err != nil {
		return nil, err
	}

	artSvc := artUC.NewService(pgRepo.NewArticleRepo(database), sum)
	authSvc := authservice.NewService(pgRepo.NewUserRepo(database), []byte(cfg.JWTSecret), cfg.TokenTTL)

	// Auth endpoints carry a tight per-IP limit to slow down credential
	// stuffing and signup abuse.
	authLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)

	publicMux := http.NewServeMux()
	publicMux.Handle("POST /auth/signup", authLimiter.Limit(hauth.SignupHandler(authSvc)))
	publicMux.Handle("POST /auth/token", authLimiter.Limit(hauth.TokenHandler(authSvc)))
	publicMux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: cfg.Version})
	publicMux.Handle("GET /metrics", hhttp.MetricsHandler())

	privateMux := http.NewServeMux()
	harticle.Register(privateMux, artSvc)
	protected := hauth.Authz(authSvc)(privateMux)

	rootMux := http.NewServeMux()
	rootMux.Handle("/auth/", publicMux)
	rootMux.Handle("/health", publicMux)
	rootMux.Handle("/metrics", publicMux)
	rootMux.Handle("/", protected)

	return applyMiddleware(logger, rootMux, cfg), nil
}

// applyMiddleware wraps the handler with the middleware chain, innermost
// first: metrics, body limit, logging, recovery, request ID, CORS.
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg *config.Config) http.Handler {
	chain := handler

	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.CORS(cfg.AllowedOrigins)(chain)

	return chain
}

// runServer starts the HTTP server and blocks until a shutdown signal.
func runServer(logger *slog.Logger, handler http.Handler, cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris guard
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
