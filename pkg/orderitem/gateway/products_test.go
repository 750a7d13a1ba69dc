package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecrementStock(t *testing.T) {
	t.Run("Hits the decrement endpoint", func(t *testing.T) {
		var gotMethod, gotPath, gotQty string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotQty = r.URL.Query().Get("qty")
			w.Write([]byte(`{"id":7,"stock":2}`))
		}))
		defer srv.Close()

		g := NewProductStockGatewayWithBase(srv.URL)
		err := g.DecrementStock(context.Background(), 7, 3)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/api/products/7/decrement", gotPath)
		assert.Equal(t, "3", gotQty)
	})

	t.Run("Non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "product not found", http.StatusNotFound)
		}))
		defer srv.Close()

		g := NewProductStockGatewayWithBase(srv.URL)
		err := g.DecrementStock(context.Background(), 404, 1)

		assert.Error(t, err)
	})

	t.Run("Unreachable service is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		g := NewProductStockGatewayWithBase(srv.URL)
		err := g.DecrementStock(context.Background(), 1, 1)

		assert.Error(t, err)
	})
}
