package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
)

const itemColumns = "id, quote_id, name, description, amount"

// ItemRepo implements ports.ItemRepository on PostgreSQL.
// Every mutating query is scoped to the owning quote id; callers are
// responsible for having resolved that quote for the current user.
type ItemRepo struct {
	db *DB
}

// NewItemRepo creates an item repository backed by the given pool.
func NewItemRepo(db *DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// ListByQuote returns all items under the quote.
func (r *ItemRepo) ListByQuote(ctx context.Context, quoteID int64) ([]domain.Item, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE quote_id = $1 ORDER BY id`,
		quoteID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}

	for rows.Next() {
		var item domain.Item

		err := rows.Scan(&item.ID, &item.QuoteID, &item.Name, &item.Description, &item.Amount)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	return items, nil
}

// CountByQuote returns the number of items under the quote.
func (r *ItemRepo) CountByQuote(ctx context.Context, quoteID int64) (int, error) {
	var count int

	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM items WHERE quote_id = $1`,
		quoteID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}

	return count, nil
}

// SumByQuote returns the sum of item amounts under the quote.
func (r *ItemRepo) SumByQuote(ctx context.Context, quoteID int64) (float64, error) {
	var sum float64

	err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM items WHERE quote_id = $1`,
		quoteID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("summing items: %w", err)
	}

	return sum, nil
}

// Create persists a new item and fills in its generated ID.
func (r *ItemRepo) Create(ctx context.Context, item *domain.Item) error {
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO items (quote_id, name, description, amount)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		item.QuoteID, item.Name, item.Description, item.Amount,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}

	return nil
}

// Update applies the patch scoped to id AND quote_id.
// Nil patch fields keep the stored value via COALESCE.
func (r *ItemRepo) Update(ctx context.Context, quoteID, itemID int64, patch domain.ItemPatch) (*domain.Item, error) {
	var item domain.Item

	err := r.db.Pool.QueryRow(ctx,
		`UPDATE items
		 SET name = COALESCE($3, name),
		     description = COALESCE($4, description),
		     amount = COALESCE($5, amount)
		 WHERE id = $1 AND quote_id = $2
		 RETURNING `+itemColumns,
		itemID, quoteID, patch.Name, patch.Description, patch.Amount,
	).Scan(&item.ID, &item.QuoteID, &item.Name, &item.Description, &item.Amount)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError("item", strconv.FormatInt(itemID, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	return &item, nil
}

// Delete removes the item scoped to id AND quote_id.
func (r *ItemRepo) Delete(ctx context.Context, quoteID, itemID int64) error {
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM items WHERE id = $1 AND quote_id = $2`,
		itemID, quoteID,
	)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("item", strconv.FormatInt(itemID, 10))
	}

	return nil
}
