// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/clients"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/clients/acl"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/handlers"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/storage/postgres"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/app"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/platform/config"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/platform/logging"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/platform/telemetry"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Apply schema migrations before opening the pool
	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.URL); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		logger.Info("database migrations applied")
	}

	// 6. Open the database pool
	db, err := postgres.New(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	// 7. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	if err := healthRegistry.Register(db); err != nil {
		return fmt.Errorf("registering database health check: %w", err)
	}

	// 8. Create the identity-provider client (ACL pattern)
	secretKey := cfg.Clerk.SecretKey
	clerkClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Clerk.BaseURL,
		ServiceName: "clerk",
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		AuthFunc: func(req *nethttp.Request) {
			req.Header.Set("Authorization", "Bearer "+secretKey)
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating clerk HTTP client: %w", err)
	}

	identity := acl.NewClerkAdapter(clerkClient)

	if err := healthRegistry.Register(identity); err != nil {
		return fmt.Errorf("registering clerk health check: %w", err)
	}

	// 9. Create repositories
	quoteRepo := postgres.NewQuoteRepo(db)
	itemRepo := postgres.NewItemRepo(db)
	permissionRepo := postgres.NewPermissionRepo(db)

	// 10. Create application services
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes:   quoteRepo,
		Items:    itemRepo,
		Identity: identity,
		Logger:   logger,
	})
	itemService := app.NewItemService(app.ItemServiceConfig{
		Quotes: quoteRepo,
		Items:  itemRepo,
		Logger: logger,
	})
	userService := app.NewUserService(app.UserServiceConfig{
		Identity:    identity,
		Permissions: permissionRepo,
		Logger:      logger,
	})

	// 11. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	quoteHandler := handlers.NewQuoteHandler(quoteService, permissionRepo)
	itemHandler := handlers.NewItemHandler(itemService, permissionRepo)
	userHandler := handlers.NewUserHandler(userService)
	webhookHandler := handlers.NewWebhookHandler(cfg.Clerk.WebhookSecret)

	// 12. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 13. Setup router with all middleware and routes
	routerCfg := http.RouterConfig{
		Logger:         logger,
		AppConfig:      &cfg.App,
		FrontendOrigin: cfg.CORS.FrontendOrigin,
		Identity:       identity,
		HealthHandler:  healthHandler,
		QuoteHandler:   quoteHandler,
		ItemHandler:    itemHandler,
		UserHandler:    userHandler,
		WebhookHandler: webhookHandler,
		Timeout:        http.DefaultRequestTimeout,
	}
	http.SetupRouter(server.Engine(), routerCfg)

	// 14. Start server (non-blocking)
	serverErr := server.Start()

	// 15. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
