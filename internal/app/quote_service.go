// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// Application Layer Responsibilities:
//   - Orchestrate use cases (business workflows)
//   - Coordinate between domain and infrastructure
//   - Enforce ownership rules that span repositories
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters)
//   - Database queries (that's repository adapters)
package app

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/ports"
)

// QuoteService orchestrates quote use cases: ownership-scoped CRUD plus
// profile enrichment from the identity provider.
type QuoteService struct {
	quotes   ports.QuoteRepository
	items    ports.ItemRepository
	identity ports.IdentityProvider
	logger   *slog.Logger
}

// QuoteServiceConfig contains dependencies for the quote service.
type QuoteServiceConfig struct {
	Quotes   ports.QuoteRepository
	Items    ports.ItemRepository
	Identity ports.IdentityProvider
	Logger   *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics when a repository or the identity provider is missing; defaults the
// logger to slog.Default() if nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Quotes == nil || cfg.Items == nil || cfg.Identity == nil {
		panic("QuoteService: Quotes, Items and Identity are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		quotes:   cfg.Quotes,
		items:    cfg.Items,
		identity: cfg.Identity,
		logger:   logger,
	}
}

// List returns one page of the caller's quotes, newest first, each
// enriched with the creator and client display identity.
func (s *QuoteService) List(ctx context.Context, userID string, skip, take int) (*domain.QuotePage, error) {
	quotes, err := s.quotes.ListForUser(ctx, userID, skip, take)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	total, err := s.quotes.CountForUser(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count quotes",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	// Profiles are resolved serially, one quote at a time; the identity
	// provider is the only source for display names and avatars.
	enriched := make([]domain.EnrichedQuote, 0, len(quotes))

	for i := range quotes {
		eq, err := s.enrich(ctx, &quotes[i])
		if err != nil {
			return nil, err
		}

		enriched = append(enriched, *eq)
	}

	return &domain.QuotePage{
		Quotes:  enriched,
		HasMore: total > skip+take,
	}, nil
}

// Create persists a new quote authored by creatorID for the client
// resolved from the given email address.
func (s *QuoteService) Create(ctx context.Context, creatorID, name, description, clientEmail string) (*domain.Quote, error) {
	client, err := s.identity.FindUserByEmail(ctx, clientEmail)
	if err != nil {
		if domain.IsNotFound(err) {
			s.logger.InfoContext(ctx, "client email did not resolve",
				slog.String("creator_id", creatorID),
			)
			return nil, domain.NewNotFoundError("client", "")
		}

		return nil, err
	}

	quote := &domain.Quote{
		CreatorID:   creatorID,
		ClientID:    client.ID,
		Name:        name,
		Description: description,
	}

	if err := s.quotes.Create(ctx, quote); err != nil {
		s.logger.ErrorContext(ctx, "failed to create quote",
			slog.String("creator_id", creatorID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "quote created",
		slog.Int64("quote_id", quote.ID),
		slog.String("creator_id", quote.CreatorID),
		slog.String("client_id", quote.ClientID),
	)

	return quote, nil
}

// Get returns the quote with its item amount aggregate, enriched with
// profile data. Quotes the caller cannot see are reported as not found.
//
// The aggregate is read after the quote in a separate statement; the two
// reads are not transactional.
func (s *QuoteService) Get(ctx context.Context, userID string, id int64) (*domain.QuoteDetail, error) {
	quote, err := s.quotes.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	sum, err := s.items.SumByQuote(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to sum items",
			slog.Int64("quote_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	eq, err := s.enrich(ctx, quote)
	if err != nil {
		return nil, err
	}

	return &domain.QuoteDetail{
		EnrichedQuote: *eq,
		ItemsSum:      sum,
	}, nil
}

// Update applies a partial update scoped to id AND creator. A client with
// the update permission still cannot update: the ownership predicate is
// part of the query, so a non-creator caller gets not found.
func (s *QuoteService) Update(ctx context.Context, creatorID string, id int64, patch domain.QuotePatch) (*domain.Quote, error) {
	quote, err := s.quotes.UpdateByCreator(ctx, id, creatorID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "quote updated",
		slog.Int64("quote_id", quote.ID),
		slog.String("creator_id", creatorID),
	)

	return quote, nil
}

// Delete removes the quote scoped to id AND creator, blocked while any
// item exists under it. The quote is resolved before the items guard so a
// caller unrelated to the quote gets not found, never the item count. The
// count and the delete are separate statements; an item created in between
// is caught by the foreign key, not by us.
func (s *QuoteService) Delete(ctx context.Context, creatorID string, id int64) (*domain.Quote, error) {
	existing, err := s.quotes.GetForUser(ctx, id, creatorID)
	if err != nil {
		return nil, err
	}

	if existing.CreatorID != creatorID {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}

	count, err := s.items.CountByQuote(ctx, id)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		return nil, domain.NewHasItemsError(id, count)
	}

	quote, err := s.quotes.DeleteByCreator(ctx, id, creatorID)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "quote deleted",
		slog.Int64("quote_id", id),
		slog.String("creator_id", creatorID),
	)

	return quote, nil
}

// enrich resolves the creator and client profiles for a quote.
// Two serial identity-provider calls per quote.
func (s *QuoteService) enrich(ctx context.Context, quote *domain.Quote) (*domain.EnrichedQuote, error) {
	creator, err := s.identity.GetUser(ctx, quote.CreatorID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve creator profile",
			slog.Int64("quote_id", quote.ID),
			slog.String("creator_id", quote.CreatorID),
			slog.Any("error", err),
		)
		return nil, err
	}

	client, err := s.identity.GetUser(ctx, quote.ClientID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve client profile",
			slog.Int64("quote_id", quote.ID),
			slog.String("client_id", quote.ClientID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &domain.EnrichedQuote{
		Quote:   *quote,
		Creator: creator.Party(),
		Client:  client.Party(),
	}, nil
}
