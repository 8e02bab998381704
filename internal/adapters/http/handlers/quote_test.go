package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/dto"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/adapters/http/middleware"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/app"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/domain"
	"github.com/Im-Fran/quotes-api.franciscosolis.cl/internal/mocks"
)

const testUserID = "user_abc"

// quoteTestDeps bundles the mocks behind a quote handler router.
type quoteTestDeps struct {
	quotes      *mocks.MockQuoteRepository
	items       *mocks.MockItemRepository
	identity    *mocks.MockIdentityProvider
	permissions *mocks.MockPermissionRepository
}

// newQuoteTestRouter builds a router with quote routes and a fake session
// for testUserID.
func newQuoteTestRouter(t *testing.T) (*gin.Engine, quoteTestDeps) {
	t.Helper()

	deps := quoteTestDeps{
		quotes:      mocks.NewMockQuoteRepository(t),
		items:       mocks.NewMockItemRepository(t),
		identity:    mocks.NewMockIdentityProvider(t),
		permissions: mocks.NewMockPermissionRepository(t),
	}

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes:   deps.quotes,
		Items:    deps.items,
		Identity: deps.identity,
	})

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, testUserID)
		c.Next()
	})

	NewQuoteHandler(service, deps.permissions).RegisterQuoteRoutes(engine.Group(""))

	return engine, deps
}

func testProfile(id, name string) *domain.UserProfile {
	return &domain.UserProfile{
		ID:        id,
		FullName:  name,
		AvatarURL: "https://img.test/" + id + ".png",
	}
}

func decodeErrorResponse(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))

	return resp
}

func TestListQuotes(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	deps.quotes.EXPECT().ListForUser(mock.Anything, testUserID, 0, 10).Return([]domain.Quote{
		{ID: 1, CreatorID: testUserID, ClientID: "user_client", Name: "Website", Description: "Landing page", CreatedAt: created},
	}, nil)
	deps.quotes.EXPECT().CountForUser(mock.Anything, testUserID).Return(15, nil)
	deps.identity.EXPECT().GetUser(mock.Anything, testUserID).Return(testProfile(testUserID, "Ada Lovelace"), nil)
	deps.identity.EXPECT().GetUser(mock.Anything, "user_client").Return(testProfile("user_client", "Grace Hopper"), nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Quotes, 1)
	assert.Equal(t, int64(1), resp.Quotes[0].ID)
	assert.Equal(t, "Ada Lovelace", resp.Quotes[0].Creator.Name)
	assert.Equal(t, "Grace Hopper", resp.Quotes[0].Client.Name)
	assert.True(t, resp.HasMore)
}

func TestListQuotes_Pagination(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	deps.quotes.EXPECT().ListForUser(mock.Anything, testUserID, 20, 5).Return([]domain.Quote{}, nil)
	deps.quotes.EXPECT().CountForUser(mock.Anything, testUserID).Return(25, nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes?skip=20&take=5", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Quotes)
	assert.False(t, resp.HasMore)
}

func TestListQuotes_RepositoryError(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	deps.quotes.EXPECT().ListForUser(mock.Anything, testUserID, 0, 10).
		Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeErrorResponse(t, w.Body.Bytes())
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, assert.AnError.Error())
}

func TestCreateQuote(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	deps.permissions.EXPECT().Has(mock.Anything, testUserID, domain.PermQuotesCreate).Return(true, nil)
	deps.identity.EXPECT().FindUserByEmail(mock.Anything, "grace@example.com").
		Return(testProfile("user_client", "Grace Hopper"), nil)
	deps.quotes.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Quote")).
		Run(func(_ context.Context, quote *domain.Quote) {
			quote.ID = 7
			quote.CreatedAt = time.Now()
		}).
		Return(nil)

	body := `{"name":"Website","description":"Landing page","email":"grace@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp QuoteEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Quote.ID)
	assert.Equal(t, testUserID, resp.Quote.CreatorID)
	assert.Equal(t, "user_client", resp.Quote.ClientID)
}

func TestCreateQuote_UnknownClientEmail(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	deps.permissions.EXPECT().Has(mock.Anything, testUserID, domain.PermQuotesCreate).Return(true, nil)
	deps.identity.EXPECT().FindUserByEmail(mock.Anything, "nobody@example.com").
		Return(nil, domain.NewNotFoundError("user", "nobody@example.com"))

	body := `{"name":"Website","description":"Landing page","email":"nobody@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeNotFound, decodeErrorResponse(t, w.Body.Bytes()).Error.Code)
}

func TestCreateQuote_ValidationFails(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"description":"d","email":"a@b.com"}`},
		{name: "blank name", body: `{"name":"   ","description":"d","email":"a@b.com"}`},
		{name: "invalid email", body: `{"name":"n","description":"d","email":"not-an-email"}`},
		{name: "name too long", body: `{"name":"` + strings.Repeat("x", 256) + `","description":"d","email":"a@b.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, deps := newQuoteTestRouter(t)

			deps.permissions.EXPECT().Has(mock.Anything, testUserID, domain.PermQuotesCreate).Return(true, nil)

			req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, dto.ErrorCodeValidation, decodeErrorResponse(t, w.Body.Bytes()).Error.Code)
		})
	}
}

func TestCreateQuote_WithoutPermission(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	deps.permissions.EXPECT().Has(mock.Anything, testUserID, domain.PermQuotesCreate).Return(false, nil)

	body := `{"name":"Website","description":"Landing page","email":"grace@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, decodeErrorResponse(t, w.Body.Bytes()).Error.Code)
}

func TestGetQuote(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	quote := &domain.Quote{ID: 3, CreatorID: testUserID, ClientID: "user_client", Name: "Website"}
	deps.quotes.EXPECT().GetForUser(mock.Anything, int64(3), testUserID).Return(quote, nil)
	deps.items.EXPECT().SumByQuote(mock.Anything, int64(3)).Return(149.9, nil)
	deps.identity.EXPECT().GetUser(mock.Anything, testUserID).Return(testProfile(testUserID, "Ada Lovelace"), nil)
	deps.identity.EXPECT().GetUser(mock.Anything, "user_client").Return(testProfile("user_client", "Grace Hopper"), nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes/3", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Quote.ID)
	assert.InDelta(t, 149.9, resp.ItemsSum, 0.0001)
}

func TestGetQuote_NotFound(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	deps.quotes.EXPECT().GetForUser(mock.Anything, int64(99), testUserID).
		Return(nil, domain.NewNotFoundError("quote", "99"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes/99", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeNotFound, decodeErrorResponse(t, w.Body.Bytes()).Error.Code)
}

func TestGetQuote_InvalidID(t *testing.T) {
	engine, _ := newQuoteTestRouter(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes/abc", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeBadRequest, decodeErrorResponse(t, w.Body.Bytes()).Error.Code)
}

func TestUpdateQuote(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	newName := "Rebranding"
	deps.permissions.EXPECT().Has(mock.Anything, testUserID, domain.PermQuotesUpdate).Return(true, nil)
	deps.quotes.EXPECT().UpdateByCreator(mock.Anything, int64(3), testUserID, domain.QuotePatch{Name: &newName}).
		Return(&domain.Quote{ID: 3, CreatorID: testUserID, ClientID: "user_client", Name: newName}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/quotes/3", strings.NewReader(`{"name":"Rebranding"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Rebranding", resp.Quote.Name)
}

func TestUpdateQuote_NotCreator(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	newName := "Rebranding"
	deps.permissions.EXPECT().Has(mock.Anything, testUserID, domain.PermQuotesUpdate).Return(true, nil)
	deps.quotes.EXPECT().UpdateByCreator(mock.Anything, int64(3), testUserID, domain.QuotePatch{Name: &newName}).
		Return(nil, domain.NewNotFoundError("quote", "3"))

	req := httptest.NewRequest(http.MethodPatch, "/quotes/3", strings.NewReader(`{"name":"Rebranding"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteQuote(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	deps.permissions.EXPECT().Has(mock.Anything, testUserID, domain.PermQuotesDestroy).Return(true, nil)
	deps.quotes.EXPECT().GetForUser(mock.Anything, int64(3), testUserID).
		Return(&domain.Quote{ID: 3, CreatorID: testUserID, Name: "Website"}, nil)
	deps.items.EXPECT().CountByQuote(mock.Anything, int64(3)).Return(0, nil)
	deps.quotes.EXPECT().DeleteByCreator(mock.Anything, int64(3), testUserID).
		Return(&domain.Quote{ID: 3, CreatorID: testUserID, Name: "Website"}, nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/quotes/3", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Quote.ID)
}

func TestDeleteQuote_WithItems(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	deps.permissions.EXPECT().Has(mock.Anything, testUserID, domain.PermQuotesDestroy).Return(true, nil)
	deps.quotes.EXPECT().GetForUser(mock.Anything, int64(3), testUserID).
		Return(&domain.Quote{ID: 3, CreatorID: testUserID, Name: "Website"}, nil)
	deps.items.EXPECT().CountByQuote(mock.Anything, int64(3)).Return(2, nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/quotes/3", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeHasItems, decodeErrorResponse(t, w.Body.Bytes()).Error.Code)
}

func TestDeleteQuote_NotOwned(t *testing.T) {
	engine, deps := newQuoteTestRouter(t)

	// A caller with the destroy grant but no relation to the quote must see
	// not found, never the item count.
	deps.permissions.EXPECT().Has(mock.Anything, testUserID, domain.PermQuotesDestroy).Return(true, nil)
	deps.quotes.EXPECT().GetForUser(mock.Anything, int64(3), testUserID).
		Return(nil, domain.NewNotFoundError("quote", "3"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/quotes/3", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeNotFound, decodeErrorResponse(t, w.Body.Bytes()).Error.Code)
}
