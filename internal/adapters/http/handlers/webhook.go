package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/dto"
)

// webhookTimestampTolerance bounds the accepted clock skew between the
// webhook sender and this service.
const webhookTimestampTolerance = 5 * time.Minute

// webhookSecretPrefix is the prefix the identity provider puts on signing secrets.
const webhookSecretPrefix = "whsec_"

// WebhookHandler receives identity-provider webhook events.
// Events are acknowledged but not acted upon; the service reads identity
// data on demand instead of mirroring it.
type WebhookHandler struct {
	signingKey []byte
	now        func() time.Time
}

// NewWebhookHandler creates a webhook handler. An empty secret disables
// signature verification. A malformed secret is treated the same way.
func NewWebhookHandler(secret string) *WebhookHandler {
	h := &WebhookHandler{now: time.Now}

	if secret != "" {
		raw := strings.TrimPrefix(secret, webhookSecretPrefix)
		if key, err := base64.StdEncoding.DecodeString(raw); err == nil {
			h.signingKey = key
		}
	}

	return h
}

// HandleEvent handles POST /webhooks/clerk
// Verifies the signature headers when a secret is configured and
// acknowledges every event.
//
// @Summary Receive identity-provider webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} dto.ErrorResponse
// @Router /webhooks/clerk [post]
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"unreadable request body",
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	if len(h.signingKey) > 0 && !h.verifySignature(c, body) {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.ErrorCodeUnauthorized,
			"invalid webhook signature",
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event not supported"})
}

// verifySignature checks the svix-id/svix-timestamp/svix-signature headers:
// HMAC-SHA256 over "{id}.{timestamp}.{body}" with the decoded secret,
// compared against every "v1,<sig>" candidate the sender supplied.
func (h *WebhookHandler) verifySignature(c *gin.Context, body []byte) bool {
	id := c.GetHeader("svix-id")
	timestamp := c.GetHeader("svix-timestamp")
	signatures := c.GetHeader("svix-signature")

	if id == "" || timestamp == "" || signatures == "" {
		return false
	}

	unix, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}

	sent := time.Unix(unix, 0)
	if delta := h.now().Sub(sent); delta > webhookTimestampTolerance || delta < -webhookTimestampTolerance {
		return false
	}

	mac := hmac.New(sha256.New, h.signingKey)
	mac.Write([]byte(id))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := mac.Sum(nil)

	// The header may carry several space-separated versioned signatures.
	for _, candidate := range strings.Fields(signatures) {
		version, sig, found := strings.Cut(candidate, ",")
		if !found || version != "v1" {
			continue
		}

		decoded, err := base64.StdEncoding.DecodeString(sig)
		if err != nil {
			continue
		}

		if hmac.Equal(decoded, expected) {
			return true
		}
	}

	return false
}

// RegisterWebhookRoutes registers webhook routes on the given router group.
// Webhook routes are unauthenticated; the signature is the credential.
func (h *WebhookHandler) RegisterWebhookRoutes(rg *gin.RouterGroup) {
	webhooks := rg.Group("/webhooks")
	webhooks.POST("/clerk", h.HandleEvent)
}
