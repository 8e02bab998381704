package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/dto"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/middleware"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/app"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/ports"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service     *app.QuoteService
	permissions ports.PermissionRepository
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService, permissions ports.PermissionRepository) *QuoteHandler {
	return &QuoteHandler{
		service:     service,
		permissions: permissions,
	}
}

// PartyResponse is the display identity of a quote participant.
type PartyResponse struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// QuoteResponse is the HTTP response structure for a quote.
type QuoteResponse struct {
	ID          int64     `json:"id"`
	CreatorID   string    `json:"creatorId"`
	ClientID    string    `json:"clientId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EnrichedQuoteResponse is a quote with resolved participant identities.
type EnrichedQuoteResponse struct {
	QuoteResponse
	Creator PartyResponse `json:"creator"`
	Client  PartyResponse `json:"client"`
}

// QuoteListResponse is the response for the quote list endpoint.
type QuoteListResponse struct {
	Quotes  []EnrichedQuoteResponse `json:"quotes"`
	HasMore bool                    `json:"hasMore"`
}

// QuoteEnvelope wraps a single quote response.
type QuoteEnvelope struct {
	Quote QuoteResponse `json:"quote"`
}

// QuoteDetailResponse is the response for the single quote endpoint.
type QuoteDetailResponse struct {
	Quote    EnrichedQuoteResponse `json:"quote"`
	ItemsSum float64               `json:"itemsSum"`
}

// CreateQuoteRequest is the request body for creating a quote.
type CreateQuoteRequest struct {
	Name        string `json:"name" validate:"required,notempty,max=255"`
	Description string `json:"description" validate:"required,notempty,max=255"`
	ClientEmail string `json:"email" validate:"required,email"`
}

// UpdateQuoteRequest is the request body for partially updating a quote.
// Absent fields are left unchanged.
type UpdateQuoteRequest struct {
	Name        *string `json:"name" validate:"omitempty,notempty,max=255"`
	Description *string `json:"description" validate:"omitempty,notempty,max=255"`
}

func toQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		CreatorID:   q.CreatorID,
		ClientID:    q.ClientID,
		Name:        q.Name,
		Description: q.Description,
		CreatedAt:   q.CreatedAt,
	}
}

func toPartyResponse(p domain.Party) PartyResponse {
	return PartyResponse{
		Name:   p.Name,
		Avatar: p.Avatar,
	}
}

func toEnrichedQuoteResponse(eq *domain.EnrichedQuote) EnrichedQuoteResponse {
	return EnrichedQuoteResponse{
		QuoteResponse: toQuoteResponse(&eq.Quote),
		Creator:       toPartyResponse(eq.Creator),
		Client:        toPartyResponse(eq.Client),
	}
}

// parseIDParam parses a path parameter as an int64 identifier.
// Non-numeric input maps to a 400 response, never a lookup.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"invalid "+name,
		).WithTraceID(dto.GetTraceID(c)))
		return 0, false
	}

	return id, true
}

// ListQuotes handles GET /quotes
// Returns one page of the caller's quotes, newest first.
//
// @Summary List quotes
// @Description Returns quotes visible to the caller with skip/take pagination
// @Tags quotes
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param take query int false "Page size" default(10)
// @Success 200 {object} QuoteListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	page := dto.ParsePageRequest(c.Request.URL.Query())

	result, err := h.service.List(c.Request.Context(), middleware.CurrentUserID(c), page.Skip, page.Take)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	quotes := make([]EnrichedQuoteResponse, 0, len(result.Quotes))
	for i := range result.Quotes {
		quotes = append(quotes, toEnrichedQuoteResponse(&result.Quotes[i]))
	}

	c.JSON(http.StatusOK, QuoteListResponse{
		Quotes:  quotes,
		HasMore: result.HasMore,
	})
}

// CreateQuote handles POST /quotes
// Creates a quote for the client resolved from the given email.
//
// @Summary Create a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Success 201 {object} QuoteEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	quote, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), req.Name, req.Description, req.ClientEmail)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, QuoteEnvelope{Quote: toQuoteResponse(quote)})
}

// GetQuote handles GET /quotes/:quoteId
// Returns the quote with its item amount aggregate.
//
// @Summary Get a quote
// @Tags quotes
// @Produce json
// @Param quoteId path int true "Quote ID"
// @Success 200 {object} QuoteDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{quoteId} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := parseIDParam(c, "quoteId")
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuoteDetailResponse{
		Quote:    toEnrichedQuoteResponse(&detail.EnrichedQuote),
		ItemsSum: detail.ItemsSum,
	})
}

// UpdateQuote handles PATCH /quotes/:quoteId
// Applies a partial update scoped to the creator.
//
// @Summary Update a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quoteId path int true "Quote ID"
// @Success 200 {object} QuoteEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{quoteId} [patch]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id, ok := parseIDParam(c, "quoteId")
	if !ok {
		return
	}

	var req UpdateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	patch := domain.QuotePatch{
		Name:        req.Name,
		Description: req.Description,
	}

	quote, err := h.service.Update(c.Request.Context(), middleware.CurrentUserID(c), id, patch)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuoteEnvelope{Quote: toQuoteResponse(quote)})
}

// DeleteQuote handles DELETE /quotes/:quoteId
// Removes an empty quote and returns the deleted record.
//
// @Summary Delete a quote
// @Tags quotes
// @Produce json
// @Param quoteId path int true "Quote ID"
// @Success 200 {object} QuoteEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{quoteId} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id, ok := parseIDParam(c, "quoteId")
	if !ok {
		return
	}

	quote, err := h.service.Delete(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuoteEnvelope{Quote: toQuoteResponse(quote)})
}

// RegisterQuoteRoutes registers quote routes on the given router group.
// Mutating routes require the matching permission grant on top of a session.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", middleware.RequirePermission(h.permissions, domain.PermQuotesCreate), h.CreateQuote)
	quotes.GET("/:quoteId", h.GetQuote)
	quotes.PATCH("/:quoteId", middleware.RequirePermission(h.permissions, domain.PermQuotesUpdate), h.UpdateQuote)
	quotes.DELETE("/:quoteId", middleware.RequirePermission(h.permissions, domain.PermQuotesDestroy), h.DeleteQuote)
}
