package app

import (
	"context"
	"log/slog"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/ports"
)

// ItemService orchestrates item use cases. Every operation first resolves
// the parent quote for the caller; a quote that does not exist and a quote
// the caller cannot see produce the same not-found outcome.
type ItemService struct {
	quotes ports.QuoteRepository
	items  ports.ItemRepository
	logger *slog.Logger
}

// ItemServiceConfig contains dependencies for the item service.
type ItemServiceConfig struct {
	Quotes ports.QuoteRepository
	Items  ports.ItemRepository
	Logger *slog.Logger
}

// NewItemService creates a new item service with the provided dependencies.
// Panics when a repository is missing; defaults the logger if nil.
func NewItemService(cfg ItemServiceConfig) *ItemService {
	if cfg.Quotes == nil || cfg.Items == nil {
		panic("ItemService: Quotes and Items are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ItemService{
		quotes: cfg.Quotes,
		items:  cfg.Items,
		logger: logger,
	}
}

// List returns all items under the quote, after resolving quote access.
func (s *ItemService) List(ctx context.Context, userID string, quoteID int64) ([]domain.Item, error) {
	quote, err := s.quotes.GetForUser(ctx, quoteID, userID)
	if err != nil {
		return nil, err
	}

	return s.items.ListByQuote(ctx, quote.ID)
}

// Create attaches a new item to the quote. The quote id always comes from
// the resolved parent, never from the request body.
func (s *ItemService) Create(ctx context.Context, userID string, quoteID int64, name, description string, amount float64) (*domain.Item, error) {
	quote, err := s.quotes.GetForUser(ctx, quoteID, userID)
	if err != nil {
		return nil, err
	}

	item := &domain.Item{
		QuoteID:     quote.ID,
		Name:        name,
		Description: description,
		Amount:      amount,
	}

	if err := s.items.Create(ctx, item); err != nil {
		s.logger.ErrorContext(ctx, "failed to create item",
			slog.Int64("quote_id", quote.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "item created",
		slog.Int64("item_id", item.ID),
		slog.Int64("quote_id", quote.ID),
	)

	return item, nil
}

// Update applies a partial update to the item scoped to the resolved quote.
func (s *ItemService) Update(ctx context.Context, userID string, quoteID, itemID int64, patch domain.ItemPatch) (*domain.Item, error) {
	quote, err := s.quotes.GetForUser(ctx, quoteID, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.Update(ctx, quote.ID, itemID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item updated",
		slog.Int64("item_id", item.ID),
		slog.Int64("quote_id", quote.ID),
	)

	return item, nil
}

// Delete removes the item scoped to the resolved quote.
func (s *ItemService) Delete(ctx context.Context, userID string, quoteID, itemID int64) error {
	quote, err := s.quotes.GetForUser(ctx, quoteID, userID)
	if err != nil {
		return err
	}

	if err := s.items.Delete(ctx, quote.ID, itemID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "item deleted",
		slog.Int64("item_id", itemID),
		slog.Int64("quote_id", quote.ID),
	)

	return nil
}
