package integration

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
)

// quoteStore is an in-memory QuoteRepository. It applies the same
// ownership scoping as the SQL implementation so visibility invariants
// hold across the full request path.
type quoteStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Quote
}

func newQuoteStore() *quoteStore {
	return &quoteStore{rows: make(map[int64]domain.Quote)}
}

func (s *quoteStore) ListForUser(_ context.Context, userID string, skip, take int) ([]domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := make([]domain.Quote, 0, len(s.rows))
	for _, q := range s.rows {
		if q.VisibleTo(userID) {
			visible = append(visible, q)
		}
	}
	// Newest first
	sort.Slice(visible, func(i, j int) bool { return visible[i].ID > visible[j].ID })

	if skip >= len(visible) {
		return []domain.Quote{}, nil
	}
	visible = visible[skip:]
	if take < len(visible) {
		visible = visible[:take]
	}
	return visible, nil
}

func (s *quoteStore) CountForUser(_ context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, q := range s.rows {
		if q.VisibleTo(userID) {
			count++
		}
	}
	return count, nil
}

func (s *quoteStore) Create(_ context.Context, quote *domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	quote.ID = s.nextID
	quote.CreatedAt = time.Now().UTC()
	s.rows[quote.ID] = *quote
	return nil
}

func (s *quoteStore) GetForUser(_ context.Context, id int64, userID string) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.rows[id]
	if !ok || !q.VisibleTo(userID) {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}
	return &q, nil
}

func (s *quoteStore) UpdateByCreator(_ context.Context, id int64, creatorID string, patch domain.QuotePatch) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.rows[id]
	if !ok || q.CreatorID != creatorID {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}
	if patch.Name != nil {
		q.Name = *patch.Name
	}
	if patch.Description != nil {
		q.Description = *patch.Description
	}
	s.rows[id] = q
	return &q, nil
}

func (s *quoteStore) DeleteByCreator(_ context.Context, id int64, creatorID string) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.rows[id]
	if !ok || q.CreatorID != creatorID {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}
	delete(s.rows, id)
	return &q, nil
}

// itemStore is an in-memory ItemRepository.
type itemStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Item
}

func newItemStore() *itemStore {
	return &itemStore{rows: make(map[int64]domain.Item)}
}

func (s *itemStore) ListByQuote(_ context.Context, quoteID int64) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.Item, 0)
	for _, it := range s.rows {
		if it.QuoteID == quoteID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *itemStore) CountByQuote(_ context.Context, quoteID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, it := range s.rows {
		if it.QuoteID == quoteID {
			count++
		}
	}
	return count, nil
}

func (s *itemStore) SumByQuote(_ context.Context, quoteID int64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	for _, it := range s.rows {
		if it.QuoteID == quoteID {
			sum += it.Amount
		}
	}
	return sum, nil
}

func (s *itemStore) Create(_ context.Context, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	item.ID = s.nextID
	s.rows[item.ID] = *item
	return nil
}

func (s *itemStore) Update(_ context.Context, quoteID, itemID int64, patch domain.ItemPatch) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.rows[itemID]
	if !ok || it.QuoteID != quoteID {
		return nil, domain.NewNotFoundError("item", strconv.FormatInt(itemID, 10))
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Amount != nil {
		it.Amount = *patch.Amount
	}
	s.rows[itemID] = it
	return &it, nil
}

func (s *itemStore) Delete(_ context.Context, quoteID, itemID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.rows[itemID]
	if !ok || it.QuoteID != quoteID {
		return domain.NewNotFoundError("item", strconv.FormatInt(itemID, 10))
	}
	delete(s.rows, itemID)
	return nil
}

// permStore is an in-memory PermissionRepository.
type permStore struct {
	mu     sync.Mutex
	grants map[string][]string
}

func newPermStore() *permStore {
	return &permStore{grants: make(map[string][]string)}
}

func (s *permStore) grant(userID string, permissions ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[userID] = append(s.grants[userID], permissions...)
}

func (s *permStore) Has(_ context.Context, userID, permission string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.grants[userID] {
		if p == permission {
			return true, nil
		}
	}
	return false, nil
}

func (s *permStore) ListForUser(_ context.Context, userID string) ([]domain.AssignedPermission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assigned := make([]domain.AssignedPermission, 0, len(s.grants[userID]))
	for _, p := range s.grants[userID] {
		assigned = append(assigned, domain.AssignedPermission{UserID: userID, Permission: p})
	}
	return assigned, nil
}

// identityStub is an in-memory IdentityProvider backed by a fixed set of
// token and user records.
type identityStub struct {
	tokens map[string]string
	users  map[string]*domain.UserProfile
}

func newIdentityStub() *identityStub {
	return &identityStub{
		tokens: make(map[string]string),
		users:  make(map[string]*domain.UserProfile),
	}
}

func (s *identityStub) addUser(token string, profile *domain.UserProfile) {
	s.tokens[token] = profile.ID
	s.users[profile.ID] = profile
}

func (s *identityStub) VerifyToken(_ context.Context, token string) (string, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return "", domain.NewUnauthenticatedError("session token rejected")
	}
	return userID, nil
}

func (s *identityStub) GetUser(_ context.Context, userID string) (*domain.UserProfile, error) {
	profile, ok := s.users[userID]
	if !ok {
		return nil, domain.NewNotFoundError("user", userID)
	}
	return profile, nil
}

func (s *identityStub) FindUserByEmail(_ context.Context, email string) (*domain.UserProfile, error) {
	for _, profile := range s.users {
		if profile.Email != nil && profile.Email.Address == email {
			return profile, nil
		}
	}
	return nil, domain.NewNotFoundError("user", email)
}
