package app

import (
	"context"
	"log/slog"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/ports"
)

// UserService exposes the caller's own profile and permission grants.
type UserService struct {
	identity    ports.IdentityProvider
	permissions ports.PermissionRepository
	logger      *slog.Logger
}

// UserServiceConfig contains dependencies for the user service.
type UserServiceConfig struct {
	Identity    ports.IdentityProvider
	Permissions ports.PermissionRepository
	Logger      *slog.Logger
}

// NewUserService creates a new user service with the provided dependencies.
func NewUserService(cfg UserServiceConfig) *UserService {
	if cfg.Identity == nil || cfg.Permissions == nil {
		panic("UserService: Identity and Permissions are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &UserService{
		identity:    cfg.Identity,
		permissions: cfg.Permissions,
		logger:      logger,
	}
}

// Profile returns the identity-provider profile of the caller.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.identity.GetUser(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch profile",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return profile, nil
}

// Permissions returns every grant assigned to the caller.
func (s *UserService) Permissions(ctx context.Context, userID string) ([]domain.AssignedPermission, error) {
	grants, err := s.permissions.ListForUser(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list permissions",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return grants, nil
}
