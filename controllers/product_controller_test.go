package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"online-shop/models"
	"online-shop/services"
)

type stubProductStore struct {
	products []models.Product
}

func (s *stubProductStore) FindAll(context.Context) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubProductStore) FindPage(_ context.Context, page, size int) ([]models.Product, int, error) {
	start := (page - 1) * size
	if start >= len(s.products) {
		return []models.Product{}, len(s.products), nil
	}
	end := start + size
	if end > len(s.products) {
		end = len(s.products)
	}
	return s.products[start:end], len(s.products), nil
}

func (s *stubProductStore) FindByID(context.Context, int) (*models.Product, error) {
	return nil, models.ErrNotFound
}

func (s *stubProductStore) FindByCode(context.Context, string) (*models.Product, error) {
	return nil, models.ErrNotFound
}

func (s *stubProductStore) FindByCategory(context.Context, string) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProductStore) FindByInventoryStatus(context.Context, models.InventoryStatus) ([]models.Product, error) {
	return nil, nil
}

func (s *stubProductStore) Create(context.Context, *models.Product) error { return nil }
func (s *stubProductStore) Update(context.Context, *models.Product) error { return nil }
func (s *stubProductStore) Delete(context.Context, int) error             { return nil }

func newProductListingRouter(count int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := &stubProductStore{}
	for i := 1; i <= count; i++ {
		store.products = append(store.products, models.Product{
			ID:              i,
			Code:            fmt.Sprintf("PROD%03d", i),
			Name:            fmt.Sprintf("Product %d", i),
			Price:           float64(i) * 10,
			InventoryStatus: models.InStock,
		})
	}

	ctrl := NewProductController(services.NewProductService(store, nil))
	r := gin.New()
	r.GET("/products", ctrl.GetAllProducts)
	return r
}

func listProducts(t *testing.T, r *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/products"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w
}

func TestProductController_ListUnpagedWithoutParams(t *testing.T) {
	r := newProductListingRouter(5)

	var body struct {
		Data []models.Product `json:"data"`
	}
	w := listProducts(t, r, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 5)
}

func TestProductController_ListUnpagedWithSingleParam(t *testing.T) {
	r := newProductListingRouter(5)

	// One of page/size alone does not page; the full collection comes back.
	for _, query := range []string{"?page=2", "?size=2"} {
		var body struct {
			Data []models.Product       `json:"data"`
			Meta *models.PaginationMeta `json:"meta"`
		}
		w := listProducts(t, r, query)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data, 5, "query %s", query)
		assert.Nil(t, body.Meta, "query %s", query)
	}
}

func TestProductController_ListPagedWithBothParams(t *testing.T) {
	r := newProductListingRouter(5)

	var body struct {
		Data []models.Product      `json:"data"`
		Meta models.PaginationMeta `json:"meta"`
	}
	w := listProducts(t, r, "?page=2&size=2")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 2, body.Meta.Size)
	assert.Equal(t, 5, body.Meta.TotalItems)
	assert.Equal(t, 3, body.Meta.TotalPages)
}
