package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/dto"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/middleware"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/app"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/ports"
)

// ItemHandler handles item endpoints nested under a quote.
type ItemHandler struct {
	service     *app.ItemService
	permissions ports.PermissionRepository
}

// NewItemHandler creates a new item handler.
func NewItemHandler(service *app.ItemService, permissions ports.PermissionRepository) *ItemHandler {
	return &ItemHandler{
		service:     service,
		permissions: permissions,
	}
}

// ItemResponse is the HTTP response structure for an item.
type ItemResponse struct {
	ID          int64   `json:"id"`
	QuoteID     int64   `json:"quoteId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// ItemListResponse is the response for the item list endpoint.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// ItemEnvelope wraps a single item response.
type ItemEnvelope struct {
	Item ItemResponse `json:"item"`
}

// CreateItemRequest is the request body for creating an item.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,notempty,max=255"`
	Description string  `json:"description" validate:"required,notempty,max=255"`
	Amount      float64 `json:"amount" validate:"gte=0,lte=9999999999"`
}

// UpdateItemRequest is the request body for partially updating an item.
// Absent fields are left unchanged.
type UpdateItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,notempty,max=255"`
	Description *string  `json:"description" validate:"omitempty,notempty,max=255"`
	Amount      *float64 `json:"amount" validate:"omitempty,gte=0,lte=9999999999"`
}

func toItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		QuoteID:     i.QuoteID,
		Name:        i.Name,
		Description: i.Description,
		Amount:      i.Amount,
	}
}

// ListItems handles GET /quotes/:quoteId/items
// Returns all items under the quote, unpaginated.
//
// @Summary List items of a quote
// @Tags items
// @Produce json
// @Param quoteId path int true "Quote ID"
// @Success 200 {object} ItemListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{quoteId}/items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	quoteID, ok := parseIDParam(c, "quoteId")
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), middleware.CurrentUserID(c), quoteID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := make([]ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toItemResponse(&items[i]))
	}

	c.JSON(http.StatusOK, ItemListResponse{Items: resp})
}

// CreateItem handles POST /quotes/:quoteId/items
// Attaches a new item to the quote.
//
// @Summary Create an item
// @Tags items
// @Accept json
// @Produce json
// @Param quoteId path int true "Quote ID"
// @Success 201 {object} ItemEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{quoteId}/items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	quoteID, ok := parseIDParam(c, "quoteId")
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	item, err := h.service.Create(c.Request.Context(), middleware.CurrentUserID(c), quoteID, req.Name, req.Description, req.Amount)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ItemEnvelope{Item: toItemResponse(item)})
}

// UpdateItem handles PATCH /quotes/:quoteId/items/:itemId
// Applies a partial update to the item.
//
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Param quoteId path int true "Quote ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} ItemEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{quoteId}/items/{itemId} [patch]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	quoteID, ok := parseIDParam(c, "quoteId")
	if !ok {
		return
	}

	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleValidationErrors(c, dto.ValidationErrors(err))
		return
	}

	patch := domain.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
	}

	item, err := h.service.Update(c.Request.Context(), middleware.CurrentUserID(c), quoteID, itemID, patch)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ItemEnvelope{Item: toItemResponse(item)})
}

// DeleteItem handles DELETE /quotes/:quoteId/items/:itemId
// Removes the item. Responds 204 with no body.
//
// @Summary Delete an item
// @Tags items
// @Param quoteId path int true "Quote ID"
// @Param itemId path int true "Item ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{quoteId}/items/{itemId} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	quoteID, ok := parseIDParam(c, "quoteId")
	if !ok {
		return
	}

	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentUserID(c), quoteID, itemID); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterItemRoutes registers item routes on the given router group.
// Mutating routes require the matching permission grant on top of a session.
func (h *ItemHandler) RegisterItemRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/quotes/:quoteId/items")
	items.GET("", h.ListItems)
	items.POST("", middleware.RequirePermission(h.permissions, domain.PermItemsCreate), h.CreateItem)
	items.PATCH("/:itemId", middleware.RequirePermission(h.permissions, domain.PermItemsUpdate), h.UpdateItem)
	items.DELETE("/:itemId", middleware.RequirePermission(h.permissions, domain.PermItemsDestroy), h.DeleteItem)
}
