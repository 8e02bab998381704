package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/dto"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/platform/logging"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/ports"
)

// ContextKeyUserID is the gin context key for the authenticated user ID.
const ContextKeyUserID = "user_id"

const bearerPrefix = "Bearer "

// CurrentUserID retrieves the authenticated user ID from the gin context.
// Returns empty string if no session was established.
func CurrentUserID(c *gin.Context) string {
	if v, exists := c.Get(ContextKeyUserID); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}

	return ""
}

// RequireSession returns middleware that authenticates the request.
// It extracts the bearer token from the Authorization header, verifies it
// against the identity provider, and stores the resolved user ID in the
// gin context. Requests without a valid session are rejected with 401.
func RequireSession(identity ports.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		userID, err := identity.VerifyToken(c.Request.Context(), token)
		if err != nil {
			if domain.IsUnavailable(err) {
				logger := logging.FromContext(c.Request.Context())
				logger.Error("token verification unavailable", "error", err.Error())
				abortWithCode(c, dto.ErrorCodeUnavailable, "authentication service unavailable")

				return
			}

			abortUnauthorized(c, "invalid session")

			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// RequirePermission returns middleware that requires the authenticated user
// to hold the given permission. It must run after RequireSession.
func RequirePermission(permissions ports.PermissionRepository, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := CurrentUserID(c)
		if userID == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		allowed, err := permissions.Has(c.Request.Context(), userID, permission)
		if err != nil {
			logger := logging.FromContext(c.Request.Context())
			logger.Error("permission lookup failed",
				"permission", permission,
				"error", err.Error(),
			)
			abortWithCode(c, dto.ErrorCodeInternal, "an internal error occurred")

			return
		}

		if !allowed {
			abortWithCode(c, dto.ErrorCodeForbidden, "permission "+permission+" required")
			return
		}

		c.Next()
	}
}

// bearerToken extracts the bearer token from the Authorization header.
// Returns empty string if the header is missing or not a bearer scheme.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

// abortUnauthorized aborts with a 401 Unauthorized response.
func abortUnauthorized(c *gin.Context, message string) {
	errResp := dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message)

	// Add trace ID if available
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, errResp)
}

// abortWithCode aborts the request with the status mapped from the error code.
func abortWithCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message)

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), errResp)
}
