package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/dto"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/middleware"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/app"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
)

// UserHandler handles endpoints about the authenticated user.
type UserHandler struct {
	service *app.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service *app.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// EmailResponse is the primary email of a profile.
type EmailResponse struct {
	ID       string `json:"id"`
	Address  string `json:"address"`
	Verified bool   `json:"verified"`
}

// ProfileResponse is the identity-provider profile of the caller.
type ProfileResponse struct {
	ID          string         `json:"id"`
	ImageURL    string         `json:"imageUrl"`
	Email       *EmailResponse `json:"email"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	FullName    string         `json:"fullName"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	LastLoginAt time.Time      `json:"lastLoginAt"`
}

// PermissionResponse is one permission grant held by a user.
type PermissionResponse struct {
	UserID     string `json:"userId"`
	Permission string `json:"permission"`
}

// PermissionListResponse is the response for the permission list endpoint.
type PermissionListResponse struct {
	Permissions []PermissionResponse `json:"permissions"`
}

func toProfileResponse(p *domain.UserProfile) ProfileResponse {
	resp := ProfileResponse{
		ID:          p.ID,
		ImageURL:    p.AvatarURL,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    p.FullName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		LastLoginAt: p.LastLoginAt,
	}

	if p.Email != nil {
		resp.Email = &EmailResponse{
			ID:       p.Email.ID,
			Address:  p.Email.Address,
			Verified: p.Email.Verified,
		}
	}

	return resp
}

// GetProfile handles GET /user
// Returns the caller's identity-provider profile.
//
// @Summary Get current user profile
// @Tags user
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /user [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.Profile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// GetPermissions handles GET /user/permissions
// Returns every permission granted to the caller.
//
// @Summary List current user permissions
// @Tags user
// @Produce json
// @Success 200 {object} PermissionListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /user/permissions [get]
func (h *UserHandler) GetPermissions(c *gin.Context) {
	grants, err := h.service.Permissions(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	permissions := make([]PermissionResponse, 0, len(grants))
	for _, grant := range grants {
		permissions = append(permissions, PermissionResponse{
			UserID:     grant.UserID,
			Permission: grant.Permission,
		})
	}

	c.JSON(http.StatusOK, PermissionListResponse{Permissions: permissions})
}

// RegisterUserRoutes registers user routes on the given router group.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.GET("", h.GetProfile)
	user.GET("/permissions", h.GetPermissions)
}
