// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrForbidden, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
)

// QuoteRepository persists quotes with ownership-scoped query helpers.
// "Ownership-scoped" means the predicate is part of the query: an update
// or delete that matches no row because the caller is not the creator is
// indistinguishable from the row not existing.
type QuoteRepository interface {
	// ListForUser returns quotes where the user is creator or client,
	// newest first, offset by skip and capped at take rows.
	ListForUser(ctx context.Context, userID string, skip, take int) ([]domain.Quote, error)

	// CountForUser returns the total number of quotes visible to the user.
	CountForUser(ctx context.Context, userID string) (int, error)

	// Create persists a new quote and fills in its ID and CreatedAt.
	Create(ctx context.Context, quote *domain.Quote) error

	// GetForUser returns the quote only when the user is its creator or
	// client. Returns domain.ErrNotFound otherwise, whether or not the
	// quote exists.
	GetForUser(ctx context.Context, id int64, userID string) (*domain.Quote, error)

	// UpdateByCreator applies the patch to the quote scoped to
	// id AND creatorId. Returns domain.ErrNotFound when no row matches.
	UpdateByCreator(ctx context.Context, id int64, creatorID string, patch domain.QuotePatch) (*domain.Quote, error)

	// DeleteByCreator removes the quote scoped to id AND creatorId and
	// returns the deleted record. Returns domain.ErrNotFound when no row
	// matches. Callers must check for items first; deletion never cascades.
	DeleteByCreator(ctx context.Context, id int64, creatorID string) (*domain.Quote, error)
}

// ItemRepository persists line items under their owning quote.
// Visibility checks belong to the caller: every method trusts that the
// parent quote has already been resolved for the current user.
type ItemRepository interface {
	// ListByQuote returns all items under the quote.
	ListByQuote(ctx context.Context, quoteID int64) ([]domain.Item, error)

	// CountByQuote returns the number of items under the quote.
	CountByQuote(ctx context.Context, quoteID int64) (int, error)

	// SumByQuote returns the sum of item amounts under the quote.
	// An itemless quote sums to zero.
	SumByQuote(ctx context.Context, quoteID int64) (float64, error)

	// Create persists a new item and fills in its ID.
	Create(ctx context.Context, item *domain.Item) error

	// Update applies the patch to the item scoped to id AND quoteId.
	// Returns domain.ErrNotFound when no row matches.
	Update(ctx context.Context, quoteID, itemID int64, patch domain.ItemPatch) (*domain.Item, error)

	// Delete removes the item scoped to id AND quoteId.
	// Returns domain.ErrNotFound when no row matches.
	Delete(ctx context.Context, quoteID, itemID int64) error
}

// PermissionRepository reads permission grants. Grants are written out of
// band; at request time the table is read-only.
type PermissionRepository interface {
	// Has reports whether the exact (userID, permission) grant exists.
	// Permission strings are not hierarchical.
	Has(ctx context.Context, userID, permission string) (bool, error)

	// ListForUser returns every grant assigned to the user.
	ListForUser(ctx context.Context, userID string) ([]domain.AssignedPermission, error)
}
