package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/clients"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
)

// ClerkAdapter talks to the Clerk backend API and translates its user and
// session DTOs into domain types. It implements ports.IdentityProvider and
// ports.HealthChecker.
type ClerkAdapter struct {
	BaseAdapter
}

// NewClerkAdapter creates a Clerk adapter on top of the given client.
func NewClerkAdapter(client *clients.Client) *ClerkAdapter {
	return &ClerkAdapter{
		BaseAdapter: NewBaseAdapter(client, "clerk"),
	}
}

// clerkEmailAddress is Clerk's email address DTO.
type clerkEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
	Verification *struct {
		Status string `json:"status"`
	} `json:"verification"`
}

// clerkUser is Clerk's user DTO. Timestamps are unix milliseconds.
type clerkUser struct {
	ID                    string              `json:"id"`
	FirstName             string              `json:"first_name"`
	LastName              string              `json:"last_name"`
	ImageURL              string              `json:"image_url"`
	PrimaryEmailAddressID string              `json:"primary_email_address_id"`
	EmailAddresses        []clerkEmailAddress `json:"email_addresses"`
	CreatedAt             int64               `json:"created_at"`
	UpdatedAt             int64               `json:"updated_at"`
	LastSignInAt          int64               `json:"last_sign_in_at"`
}

// clerkVerifiedToken is the response of the token verification endpoint.
type clerkVerifiedToken struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// VerifyToken validates a session token against Clerk and returns the user
// ID it belongs to. Any rejection from Clerk surfaces as an
// unauthenticated domain error; only transport failures surface as
// unavailable.
func (a *ClerkAdapter) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.NewUnauthenticatedError("empty session token")
	}

	payload, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return "", domain.NewUnavailableError(a.ServiceName(), fmt.Sprintf("encoding token request: %v", err))
	}

	body, err := a.Post(ctx, "/v1/tokens/verify", bytes.NewReader(payload), "verify token")
	if err != nil {
		if domain.IsUnavailable(err) {
			return "", err
		}

		// Clerk answers 4xx for expired, revoked or malformed tokens.
		return "", domain.NewUnauthenticatedError("session token rejected")
	}

	verified, err := DecodeResponse[clerkVerifiedToken](body)
	if err != nil {
		return "", domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	if verified.UserID == "" {
		return "", domain.NewUnauthenticatedError("session has no user")
	}

	return verified.UserID, nil
}

// GetUser fetches a user profile by Clerk user ID.
func (a *ClerkAdapter) GetUser(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if err := ValidateRequired(userID, "userID"); err != nil {
		return nil, err
	}

	body, err := a.Get(ctx, "/v1/users/"+url.PathEscape(userID), "get user")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponse[clerkUser](body)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	return translateClerkUser(ext)
}

// FindUserByEmail resolves an email address to a user profile. The first
// match wins; Clerk treats email addresses as unique across an instance.
func (a *ClerkAdapter) FindUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	if err := ValidateRequired(email, "email"); err != nil {
		return nil, err
	}

	query := url.Values{"email_address": {email}}

	body, err := a.Get(ctx, "/v1/users?"+query.Encode(), "find user by email")
	if err != nil {
		return nil, err
	}

	matches, err := DecodeResponse[[]clerkUser](body)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	if matches == nil || len(*matches) == 0 {
		return nil, domain.NewNotFoundError("user", email)
	}

	return translateClerkUser(&(*matches)[0])
}

// Name implements ports.HealthChecker.
func (a *ClerkAdapter) Name() string {
	return a.ServiceName()
}

// Check implements ports.HealthChecker by probing a cheap endpoint.
func (a *ClerkAdapter) Check(ctx context.Context) error {
	body, err := a.Get(ctx, "/v1/users/count", "health check")
	if err != nil {
		return err
	}

	return body.Close()
}

// translateClerkUser validates a Clerk user DTO and converts it into the
// domain profile representation.
func translateClerkUser(ext *clerkUser) (*domain.UserProfile, error) {
	if err := ValidateRequired(ext.ID, "user.id"); err != nil {
		return nil, err
	}

	profile := &domain.UserProfile{
		ID:          ext.ID,
		FirstName:   ext.FirstName,
		LastName:    ext.LastName,
		FullName:    joinName(ext.FirstName, ext.LastName),
		AvatarURL:   ext.ImageURL,
		Email:       primaryEmail(ext),
		CreatedAt:   millisToTime(ext.CreatedAt),
		UpdatedAt:   millisToTime(ext.UpdatedAt),
		LastLoginAt: millisToTime(ext.LastSignInAt),
	}

	return profile, nil
}

// primaryEmail picks the primary email from the Clerk DTO, falling back to
// the first listed address when no primary is marked.
func primaryEmail(ext *clerkUser) *domain.EmailAddress {
	if len(ext.EmailAddresses) == 0 {
		return nil
	}

	chosen := &ext.EmailAddresses[0]

	if ext.PrimaryEmailAddressID != "" {
		for i := range ext.EmailAddresses {
			if ext.EmailAddresses[i].ID == ext.PrimaryEmailAddressID {
				chosen = &ext.EmailAddresses[i]

				break
			}
		}
	}

	return &domain.EmailAddress{
		ID:       chosen.ID,
		Address:  chosen.EmailAddress,
		Verified: chosen.Verification != nil && chosen.Verification.Status == "verified",
	}
}

// joinName composes a display name from first and last name parts.
func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// millisToTime converts a unix-millisecond timestamp, zero stays zero.
func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}

	return time.UnixMilli(ms).UTC()
}
