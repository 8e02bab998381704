package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
)

// quoteColumns is the column list shared by every quote query.
const quoteColumns = "id, creator_id, client_id, name, description, created_at"

// QuoteRepo implements ports.QuoteRepository on PostgreSQL.
type QuoteRepo struct {
	db *DB
}

// NewQuoteRepo creates a quote repository backed by the given pool.
func NewQuoteRepo(db *DB) *QuoteRepo {
	return &QuoteRepo{db: db}
}

// ListForUser returns quotes where the user is creator or client,
// newest first, paginated by skip/take.
func (r *QuoteRepo) ListForUser(ctx context.Context, userID string, skip, take int) ([]domain.Quote, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+quoteColumns+`
		 FROM quotes
		 WHERE creator_id = $1 OR client_id = $1
		 ORDER BY created_at DESC, id DESC
		 OFFSET $2 LIMIT $3`,
		userID, skip, take,
	)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]domain.Quote, 0, take)

	for rows.Next() {
		var q domain.Quote

		err := rows.Scan(&q.ID, &q.CreatorID, &q.ClientID, &q.Name, &q.Description, &q.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}

		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	return quotes, nil
}

// CountForUser returns the total number of quotes visible to the user.
func (r *QuoteRepo) CountForUser(ctx context.Context, userID string) (int, error) {
	var count int

	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quotes WHERE creator_id = $1 OR client_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting quotes: %w", err)
	}

	return count, nil
}

// Create persists a new quote and fills in its generated ID and CreatedAt.
func (r *QuoteRepo) Create(ctx context.Context, quote *domain.Quote) error {
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO quotes (creator_id, client_id, name, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		quote.CreatorID, quote.ClientID, quote.Name, quote.Description,
	).Scan(&quote.ID, &quote.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting quote: %w", err)
	}

	return nil
}

// GetForUser returns the quote only when the user is creator or client.
// A quote the user cannot see is reported as not found.
func (r *QuoteRepo) GetForUser(ctx context.Context, id int64, userID string) (*domain.Quote, error) {
	var q domain.Quote

	err := r.db.Pool.QueryRow(ctx,
		`SELECT `+quoteColumns+`
		 FROM quotes
		 WHERE id = $1 AND (creator_id = $2 OR client_id = $2)`,
		id, userID,
	).Scan(&q.ID, &q.CreatorID, &q.ClientID, &q.Name, &q.Description, &q.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("fetching quote: %w", err)
	}

	return &q, nil
}

// UpdateByCreator applies the patch scoped to id AND creator_id.
// Nil patch fields keep the stored value via COALESCE.
func (r *QuoteRepo) UpdateByCreator(ctx context.Context, id int64, creatorID string, patch domain.QuotePatch) (*domain.Quote, error) {
	var q domain.Quote

	err := r.db.Pool.QueryRow(ctx,
		`UPDATE quotes
		 SET name = COALESCE($3, name), description = COALESCE($4, description)
		 WHERE id = $1 AND creator_id = $2
		 RETURNING `+quoteColumns,
		id, creatorID, patch.Name, patch.Description,
	).Scan(&q.ID, &q.CreatorID, &q.ClientID, &q.Name, &q.Description, &q.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("updating quote: %w", err)
	}

	return &q, nil
}

// DeleteByCreator removes the quote scoped to id AND creator_id and
// returns the deleted record.
func (r *QuoteRepo) DeleteByCreator(ctx context.Context, id int64, creatorID string) (*domain.Quote, error) {
	var q domain.Quote

	err := r.db.Pool.QueryRow(ctx,
		`DELETE FROM quotes
		 WHERE id = $1 AND creator_id = $2
		 RETURNING `+quoteColumns,
		id, creatorID,
	).Scan(&q.ID, &q.CreatorID, &q.ClientID, &q.Name, &q.Description, &q.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("deleting quote: %w", err)
	}

	return &q, nil
}
