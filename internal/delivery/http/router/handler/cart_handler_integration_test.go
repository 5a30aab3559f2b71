package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lanche/config"
	"lanche/internal/delivery/http/validator"
	"lanche/internal/domain/repository"
	"lanche/internal/infra/catalog"
	"lanche/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage is a throwaway in-memory CartStorage for handler tests.
type memStorage struct {
	data map[string][]byte
}

func (m *memStorage) Load(_ context.Context, key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, repository.ErrSlotNotFound
	}

	return data, nil
}

func (m *memStorage) Save(_ context.Context, key string, data []byte) error {
	m.data[key] = data

	return nil
}

func newTestCartHandler(t *testing.T) *CartHandler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cart.StorageKey = "test-cart"
	cfg.Toast.TTL = time.Minute

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalogRepo, err := catalog.NewCatalogRepository()
	require.NoError(t, err)

	return &CartHandler{
		cartUC:  impl.NewCartService(cfg, &memStorage{data: make(map[string][]byte)}, catalogRepo, logger),
		toastUC: impl.NewToastService(cfg, logger),
		logger:  logger,
	}
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCartHandler_AddItem_Integration(t *testing.T) {
	handler := newTestCartHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/cart/items",
		`{"product_id":1,"removed_ingredients":["Alface"],"addon_ids":[1],"observation":"bem passado","quantity":2}`)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Hambúrguer de Carne")
	assert.Contains(t, body, `"quantity":2`)

	items := handler.cartUC.Items()
	require.Len(t, items, 1)
	// 15.99 + bacon 4.50
	assert.InDelta(t, 20.49, items[0].FinalPrice, 1e-9)
	assert.Equal(t, 2, handler.cartUC.TotalItems())
}

func TestCartHandler_AddItem_UnknownProduct(t *testing.T) {
	handler := newTestCartHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/cart/items", `{"product_id":999}`)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestCartHandler_AddItem_MissingProductID(t *testing.T) {
	handler := newTestCartHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/cart/items", `{"quantity":1}`)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestCartHandler_GetCart_EmptyCart(t *testing.T) {
	handler := newTestCartHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/cart", "")

	require.NoError(t, handler.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalItems":0`)
	assert.Contains(t, rec.Body.String(), `"totalPrice":0`)
}

func TestCartHandler_IncrementDecrementRemove_Integration(t *testing.T) {
	handler := newTestCartHandler(t)

	// Seed one item through the usecase.
	item, err := handler.cartUC.AddProduct(context.Background(), 1, nil)
	require.NoError(t, err)

	c, _ := newJSONContext(t, http.MethodPost, "/cart/items/"+item.CartItemID+"/increment", "")
	c.SetParamNames("id")
	c.SetParamValues(item.CartItemID)
	require.NoError(t, handler.IncrementItem(c))
	assert.Equal(t, 2, handler.cartUC.TotalItems())

	c, _ = newJSONContext(t, http.MethodPost, "/cart/items/"+item.CartItemID+"/decrement", "")
	c.SetParamNames("id")
	c.SetParamValues(item.CartItemID)
	require.NoError(t, handler.DecrementItem(c))
	assert.Equal(t, 1, handler.cartUC.TotalItems())

	c, _ = newJSONContext(t, http.MethodDelete, "/cart/items/"+item.CartItemID, "")
	c.SetParamNames("id")
	c.SetParamValues(item.CartItemID)
	require.NoError(t, handler.RemoveItem(c))
	assert.Empty(t, handler.cartUC.Items())
}
