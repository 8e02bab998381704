package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/mocks"
)

type itemServiceDeps struct {
	quotes *mocks.MockQuoteRepository
	items  *mocks.MockItemRepository
}

func newItemService(t *testing.T) (*ItemService, itemServiceDeps) {
	t.Helper()

	deps := itemServiceDeps{
		quotes: mocks.NewMockQuoteRepository(t),
		items:  mocks.NewMockItemRepository(t),
	}

	service := NewItemService(ItemServiceConfig{
		Quotes: deps.quotes,
		Items:  deps.items,
	})

	return service, deps
}

func (d *itemServiceDeps) expectQuoteAccess(quoteID int64, userID string) {
	d.quotes.EXPECT().GetForUser(mock.Anything, quoteID, userID).
		Return(&domain.Quote{ID: quoteID, CreatorID: testCreatorID, ClientID: testClientID}, nil)
}

func TestNewItemService_PanicsWithoutDeps(t *testing.T) {
	assert.Panics(t, func() {
		NewItemService(ItemServiceConfig{})
	})
}

func TestItemServiceList(t *testing.T) {
	service, deps := newItemService(t)

	deps.expectQuoteAccess(3, testClientID)
	deps.items.EXPECT().ListByQuote(mock.Anything, int64(3)).Return([]domain.Item{
		{ID: 1, QuoteID: 3, Name: "Design", Amount: 500},
	}, nil)

	items, err := service.List(context.Background(), testClientID, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Design", items[0].Name)
}

func TestItemServiceList_QuoteNotVisible(t *testing.T) {
	service, deps := newItemService(t)

	deps.quotes.EXPECT().GetForUser(mock.Anything, int64(3), "user_stranger").
		Return(nil, domain.NewNotFoundError("quote", "3"))

	_, err := service.List(context.Background(), "user_stranger", 3)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestItemServiceCreate(t *testing.T) {
	service, deps := newItemService(t)

	deps.expectQuoteAccess(3, testCreatorID)
	deps.items.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Item")).
		Run(func(_ context.Context, item *domain.Item) {
			item.ID = 11
		}).
		Return(nil)

	item, err := service.Create(context.Background(), testCreatorID, 3, "Design", "Mockups", 500)
	require.NoError(t, err)

	assert.Equal(t, int64(11), item.ID)
	assert.Equal(t, int64(3), item.QuoteID)
	assert.InDelta(t, 500, item.Amount, 0.0001)
}

func TestItemServiceCreate_QuoteNotVisible(t *testing.T) {
	service, deps := newItemService(t)

	deps.quotes.EXPECT().GetForUser(mock.Anything, int64(3), "user_stranger").
		Return(nil, domain.NewNotFoundError("quote", "3"))

	_, err := service.Create(context.Background(), "user_stranger", 3, "Design", "Mockups", 500)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestItemServiceUpdate(t *testing.T) {
	service, deps := newItemService(t)

	amount := 750.0
	patch := domain.ItemPatch{Amount: &amount}

	deps.expectQuoteAccess(3, testCreatorID)
	deps.items.EXPECT().Update(mock.Anything, int64(3), int64(11), patch).
		Return(&domain.Item{ID: 11, QuoteID: 3, Amount: amount}, nil)

	item, err := service.Update(context.Background(), testCreatorID, 3, 11, patch)
	require.NoError(t, err)
	assert.InDelta(t, amount, item.Amount, 0.0001)
}

func TestItemServiceUpdate_ItemNotFound(t *testing.T) {
	service, deps := newItemService(t)

	deps.expectQuoteAccess(3, testCreatorID)
	deps.items.EXPECT().Update(mock.Anything, int64(3), int64(99), domain.ItemPatch{}).
		Return(nil, domain.NewNotFoundError("item", "99"))

	_, err := service.Update(context.Background(), testCreatorID, 3, 99, domain.ItemPatch{})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestItemServiceDelete(t *testing.T) {
	service, deps := newItemService(t)

	deps.expectQuoteAccess(3, testCreatorID)
	deps.items.EXPECT().Delete(mock.Anything, int64(3), int64(11)).Return(nil)

	require.NoError(t, service.Delete(context.Background(), testCreatorID, 3, 11))
}

func TestItemServiceDelete_QuoteNotVisible(t *testing.T) {
	service, deps := newItemService(t)

	deps.quotes.EXPECT().GetForUser(mock.Anything, int64(3), "user_stranger").
		Return(nil, domain.NewNotFoundError("quote", "3"))

	err := service.Delete(context.Background(), "user_stranger", 3, 11)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
