// Package main is the entrypoint for the NyayaSetu API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nyayasetu/nyayasetu/internal/auth"
	"github.com/nyayasetu/nyayasetu/internal/cache"
	"github.com/nyayasetu/nyayasetu/internal/classifier"
	"github.com/nyayasetu/nyayasetu/internal/config"
	"github.com/nyayasetu/nyayasetu/internal/email"
	"github.com/nyayasetu/nyayasetu/internal/gateway"
	"github.com/nyayasetu/nyayasetu/internal/handler"
	"github.com/nyayasetu/nyayasetu/internal/metrics"
	"github.com/nyayasetu/nyayasetu/internal/middleware"
	"github.com/nyayasetu/nyayasetu/internal/repository"
	"github.com/nyayasetu/nyayasetu/internal/server"
	"github.com/nyayasetu/nyayasetu/internal/service"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize cache
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	// Build the legal-domain classifier
	cls, err := buildClassifier(cfg)
	if err != nil {
		logger.Error("failed to load classifier patterns",
			slog.String("file", cfg.ClassifierPatternsFile),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	logger.Info("classifier ready", "patterns", cls.Size())

	// Initialize the Gemini gateway
	gemini := gateway.NewClient(gateway.Options{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.GeminiTimeout,
	}, logger)
	if !gemini.Configured() {
		logger.Warn("GEMINI_API_KEY not set, chatbot queries will fail until configured")
	}

	// Initialize supporting components
	mailer := email.NewSender(
		cfg.EmailHost,
		cfg.EmailPort,
		cfg.EmailUser,
		cfg.EmailPassword,
		cfg.EmailFrom,
		logger,
	)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	metricsRecorder := metrics.NewInMemory()

	// Initialize services
	authService := service.NewAuthService(
		repo,
		tokens,
		mailer,
		cfg.FrontendURL,
		cfg.ResetTokenTTL,
		metricsRecorder,
		logger,
	)
	chatService := service.NewChatService(cls, gemini, repo, metricsRecorder, logger)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	metricsHandler := handler.NewMetricsHandler(metricsRecorder)
	authHandler := handler.NewAuthHandler(authService, logger)
	chatHandler := handler.NewChatHandler(chatService, logger)

	// Setup router
	r := setupRouter(h, healthHandler, metricsHandler, authHandler, chatHandler, tokens, cacheClient, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildClassifier constructs the classifier from the built-in pattern
// table or, when CLASSIFIER_PATTERNS_FILE is set, from a JSON file.
func buildClassifier(cfg *config.Config) (*classifier.Classifier, error) {
	if cfg.ClassifierPatternsFile == "" {
		return classifier.Default(), nil
	}
	patterns, err := classifier.LoadFile(cfg.ClassifierPatternsFile)
	if err != nil {
		return nil, err
	}
	return classifier.New(patterns)
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	metricsHandler *handler.MetricsHandler,
	authHandler *handler.AuthHandler,
	chatHandler *handler.ChatHandler,
	tokens *auth.TokenIssuer,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      cfg.IsDevelopment(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health and metrics endpoints (no rate limiting)
	r.Get("/health", healthHandler.Health)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:    logger,
		Cache:     cacheClient,
		Enabled:   cfg.RateLimitEnabled,
		PerMinute: cfg.RateLimitPerMinute,
		Burst:     cfg.RateLimitBurst,
	}

	// All API routes live under /auth, rate limited per client IP.
	// Bearer tokens are parsed when present but no route requires one.
	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.RateLimitIP(rateLimitCfg))
		r.Use(middleware.BearerAuth(tokens, logger))

		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/forgot-password", authHandler.ForgotPassword)
		r.Post("/reset-password", authHandler.ResetPassword)

		r.Post("/chatbot/query", chatHandler.Query)

		r.Post("/chat-history", chatHandler.SaveHistory)
		r.Get("/chat-history/{userID}", chatHandler.ListHistory)
		r.Delete("/chat-history/{userID}", chatHandler.DeleteHistory)
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
