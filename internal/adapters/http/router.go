package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/handlers"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/middleware"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/platform/config"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/platform/telemetry"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/ports"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// FrontendOrigin is the single origin allowed by CORS.
	FrontendOrigin string

	// Identity verifies bearer tokens for session middleware.
	Identity ports.IdentityProvider

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles quote endpoints.
	QuoteHandler *handlers.QuoteHandler

	// ItemHandler handles item endpoints.
	ItemHandler *handlers.ItemHandler

	// UserHandler handles current-user endpoints.
	UserHandler *handlers.UserHandler

	// WebhookHandler receives identity-provider webhook events.
	WebhookHandler *handlers.WebhookHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. CORS - single-origin policy with credentials
//  7. Timeout - request deadline (applied to business routes)
//
// Route groups:
//   - /-/ (internal): Health endpoints, no auth required
//   - /webhooks/: Signature-verified, no session required
//   - everything else: RequireSession, then per-route permissions
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
		middleware.CORS(cfg.FrontendOrigin),
	)

	// Register health endpoints (no auth, no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("")
	if cfg.Timeout > 0 {
		api.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	// Webhooks authenticate by signature, never by session
	if cfg.WebhookHandler != nil {
		cfg.WebhookHandler.RegisterWebhookRoutes(api)
	}

	// Everything else requires a verified session
	authed := api.Group("")
	authed.Use(middleware.RequireSession(cfg.Identity))

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(authed)
	}

	if cfg.ItemHandler != nil {
		cfg.ItemHandler.RegisterItemRoutes(authed)
	}

	if cfg.UserHandler != nil {
		cfg.UserHandler.RegisterUserRoutes(authed)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
