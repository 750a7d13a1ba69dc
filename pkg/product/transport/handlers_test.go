package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsquare/pkg/product/model"
)

func TestDecrementStockEndpoint(t *testing.T) {
	svc := &stubProductService{}
	srv := httptest.NewServer(Router(svc))
	defer srv.Close()

	t.Run("Explicit quantity", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/products/7/decrement?qty=3", "", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 7, svc.lastID)
		assert.Equal(t, 3, svc.lastQty)
	})

	t.Run("Quantity defaults to one", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/products/7/decrement", "", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, svc.lastQty)
	})

	t.Run("Malformed quantity", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/products/7/decrement?qty=lots", "", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown product", func(t *testing.T) {
		svc.err = model.ErrProductNotFound
		resp, err := http.Post(srv.URL+"/api/products/9999/decrement", "", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		svc.err = nil
	})
}

type stubProductService struct {
	err     error
	lastID  int
	lastQty int
}

func (s *stubProductService) CreateProduct(_ context.Context, draft model.Product) (*model.Product, error) {
	return &draft, s.err
}

func (s *stubProductService) GetProductByID(_ context.Context, id int) (*model.Product, error) {
	return &model.Product{ID: id}, s.err
}

func (s *stubProductService) GetProductsByShopID(context.Context, int) ([]model.Product, error) {
	return nil, nil
}

func (s *stubProductService) GetAllProducts(context.Context) ([]model.Product, error) {
	return nil, nil
}

func (s *stubProductService) UpdateProduct(_ context.Context, id int, draft model.Product) (*model.Product, error) {
	draft.ID = id
	return &draft, s.err
}

func (s *stubProductService) DeleteProduct(context.Context, int) error { return s.err }

func (s *stubProductService) DecrementStock(_ context.Context, id, qty int) (*model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastID = id
	s.lastQty = qty
	return &model.Product{ID: id}, nil
}
