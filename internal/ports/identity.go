package ports

import (
	"context"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
)

// IdentityProvider is the external authentication and profile service.
// The provider owns sessions, tokens and user records; this service only
// consumes them.
//
// Implementations should respect context deadlines, map provider errors
// to domain errors, and never leak provider DTOs.
type IdentityProvider interface {
	// VerifyToken validates a session token and returns the stable user ID
	// it belongs to. Returns domain.ErrUnauthenticated for invalid, expired
	// or revoked tokens.
	VerifyToken(ctx context.Context, token string) (string, error)

	// GetUser fetches the profile for a user ID.
	// Returns domain.ErrNotFound when the provider has no such user.
	GetUser(ctx context.Context, userID string) (*domain.UserProfile, error)

	// FindUserByEmail resolves an email address to a user profile.
	// Returns domain.ErrNotFound when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
}
