package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsquare/pkg/order/model"
)

func TestUpdateStatusEndpoint(t *testing.T) {
	svc := &stubOrderService{}
	srv := httptest.NewServer(Router(svc))
	defer srv.Close()

	send := func(t *testing.T, body string) *http.Response {
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/orders/5/status", strings.NewReader(body))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("Bare string body", func(t *testing.T) {
		resp := send(t, "SHIPPED")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "SHIPPED", svc.lastStatus)
		assert.Equal(t, 5, svc.lastID)
	})

	t.Run("JSON-quoted body", func(t *testing.T) {
		resp := send(t, "\n  \"PAID\"  \n")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "PAID", svc.lastStatus)
	})

	t.Run("Unknown order", func(t *testing.T) {
		svc.err = model.ErrOrderNotFound
		resp := send(t, "SHIPPED")
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		svc.err = nil
	})
}

type stubOrderService struct {
	err        error
	lastID     int
	lastStatus string
}

func (s *stubOrderService) CreateOrder(_ context.Context, draft model.Order) (*model.Order, error) {
	draft.ID = 1
	return &draft, s.err
}

func (s *stubOrderService) GetOrderByID(_ context.Context, id int) (*model.Order, error) {
	return &model.Order{ID: id}, s.err
}

func (s *stubOrderService) GetOrdersByUserID(context.Context, int) ([]model.Order, error) {
	return nil, nil
}

func (s *stubOrderService) GetOrdersByShopID(context.Context, int) ([]model.Order, error) {
	return nil, nil
}

func (s *stubOrderService) GetAllOrders(context.Context) ([]model.Order, error) { return nil, nil }

func (s *stubOrderService) UpdateOrder(_ context.Context, id int, draft model.Order) (*model.Order, error) {
	draft.ID = id
	return &draft, s.err
}

func (s *stubOrderService) UpdateOrderStatus(_ context.Context, id int, status string) (*model.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastID = id
	s.lastStatus = status
	return &model.Order{ID: id, Status: status}, nil
}

func (s *stubOrderService) DeleteOrder(context.Context, int) error { return s.err }
